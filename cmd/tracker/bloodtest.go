package tracker

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var bloodTestCmd = &cobra.Command{
	Use:   "bloodtest",
	Short: "Record blood test results and get recommendations",
}

var (
	btDate     string
	btLeptin   float64
	btVitaminD float64
	btIron     float64
	btHomaIR   float64
	btNotes    string
)

var bloodTestAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add blood test results",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(btDate)
		if err != nil {
			return err
		}
		in := bloodTestInput{
			Date:     date,
			Leptin:   optionalFloat(cmd, "leptin", btLeptin),
			VitaminD: optionalFloat(cmd, "vitamin-d", btVitaminD),
			Iron:     optionalFloat(cmd, "iron", btIron),
			HomaIR:   optionalFloat(cmd, "homa-ir", btHomaIR),
		}
		if err := validateInput(in); err != nil {
			return err
		}
		entry := model.BloodTestEntry{
			ID:       dateutil.NewID(time.Now()),
			Date:     in.Date,
			Leptin:   in.Leptin,
			VitaminD: in.VitaminD,
			Iron:     in.Iron,
			HomaIR:   in.HomaIR,
			Notes:    strings.TrimSpace(btNotes),
		}
		return withStore(cmd, func(st *store.Store) error {
			st.AddBloodTest(entry)
			fmt.Fprintf(cmd.OutOrStdout(), "Added blood test %s\n", entry.ID)
			return nil
		})
	},
}

var bloodTestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blood tests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			tests := st.BloodTests()
			slices.SortStableFunc(tests, func(a, b model.BloodTestEntry) int { return strings.Compare(b.Date, a.Date) })
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tDATE\tLEPTIN\tVITAMIN_D\tIRON\tHOMA_IR\tNOTES")
			for _, b := range tests {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.Date, formatOptional(b.Leptin), formatOptional(b.VitaminD), formatOptional(b.Iron), formatOptional(b.HomaIR), b.Notes)
			}
			return nil
		})
	},
}

var bloodTestUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update blood test results (a negative marker value clears it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		patch := model.BloodTestPatch{}
		if flags.Changed("date") {
			if _, err := dateutil.ParseDate(btDate); err != nil {
				return err
			}
			patch.Date = model.Set(btDate)
		}
		markers := []struct {
			flag  string
			value float64
			dst   *model.Patch[*float64]
		}{
			{"leptin", btLeptin, &patch.Leptin},
			{"vitamin-d", btVitaminD, &patch.VitaminD},
			{"iron", btIron, &patch.Iron},
			{"homa-ir", btHomaIR, &patch.HomaIR},
		}
		for _, m := range markers {
			if !flags.Changed(m.flag) {
				continue
			}
			if m.value < 0 {
				*m.dst = model.Set[*float64](nil)
				continue
			}
			*m.dst = model.Set(model.Ptr(m.value))
		}
		if flags.Changed("notes") {
			patch.Notes = model.Set(strings.TrimSpace(btNotes))
		}
		return withStore(cmd, func(st *store.Store) error {
			if !st.UpdateBloodTest(args[0], patch) {
				return fmt.Errorf("blood test %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated blood test %s\n", args[0])
			return nil
		})
	},
}

var bloodTestDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a blood test",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			if !st.DeleteBloodTest(args[0]) {
				return fmt.Errorf("blood test %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted blood test %s\n", args[0])
			return nil
		})
	},
}

var bloodTestAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the latest blood test",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			report, ok := analytics.BloodTestReport(st.BloodTests())
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "No blood tests recorded")
				return nil
			}
			printBloodAnalysis(cmd, report)
			return nil
		})
	},
}

func printBloodAnalysis(cmd *cobra.Command, report analytics.BloodAnalysis) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Blood test: %s\n", report.Test.Date)
	if report.Healthy() {
		fmt.Fprintln(out, color.New(color.FgGreen).Sprint("All recorded markers are in range"))
		return
	}
	warn := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintln(out, "Warnings:")
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "  ! %s\n", warn(w))
	}
	fmt.Fprintln(out, "Recommendations:")
	for _, r := range report.Recommendations {
		fmt.Fprintf(out, "  - %s\n", r)
	}
}

func init() {
	rootCmd.AddCommand(bloodTestCmd)
	bloodTestCmd.AddCommand(bloodTestAddCmd, bloodTestListCmd, bloodTestUpdateCmd, bloodTestDeleteCmd, bloodTestAnalyzeCmd)

	for _, c := range []*cobra.Command{bloodTestAddCmd, bloodTestUpdateCmd} {
		c.Flags().StringVar(&btDate, "date", "", "Date YYYY-MM-DD (default today)")
		c.Flags().Float64Var(&btLeptin, "leptin", 0, "Leptin, ng/ml")
		c.Flags().Float64Var(&btVitaminD, "vitamin-d", 0, "25(OH) vitamin D, ng/ml")
		c.Flags().Float64Var(&btIron, "iron", 0, "Serum iron, mcg/dl")
		c.Flags().Float64Var(&btHomaIR, "homa-ir", 0, "HOMA-IR index")
		c.Flags().StringVar(&btNotes, "notes", "", "Free-form notes")
	}
}
