package tracker

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/catalog"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var supplementCmd = &cobra.Command{
	Use:     "supplement",
	Aliases: []string{"supp"},
	Short:   "Daily supplement checklist",
}

var supplementDate string

var supplementListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the checklist for a day (creates today's on first use)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(supplementDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			if dateutil.IsToday(date, time.Now()) {
				st.EnsureTodaySupplements()
			}
			data := st.Supplements()
			progress := analytics.SupplementProgress(data, date)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", date)
			fmt.Fprintln(out, "ID\tTAKEN\tSUPPLEMENT\tWHEN")
			for _, e := range analytics.SupplementsForDay(data, date) {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", e.ID, checkMark(e.Taken), catalog.SupplementLabel(e.Supplement), supplementTiming(e.Supplement))
			}
			line := fmt.Sprintf("Taken: %d/%d (%.0f%%)", progress.Done, progress.Total, progress.Percent)
			if progress.Total > 0 && progress.Done == progress.Total {
				line = color.New(color.FgGreen).Sprint(line)
			}
			fmt.Fprintln(out, line)
			return nil
		})
	},
}

var supplementInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the checklist for a day if it has none",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(supplementDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			n := st.EnsureSupplementChecklist(date)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d supplement entries for %s\n", n, date)
			return nil
		})
	},
}

var supplementToggleCmd = &cobra.Command{
	Use:   "toggle <id|kind>",
	Short: "Mark a supplement taken or not taken",
	Long:  "Toggle by entry id, or by kind (vitamin-d3, omega-3, magnesium) for the --date day.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(supplementDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			id := args[0]
			if kind := model.SupplementKind(id); kind.Valid() {
				found := false
				for _, e := range analytics.SupplementsForDay(st.Supplements(), date) {
					if e.Supplement == kind {
						id, found = e.ID, true
						break
					}
				}
				if !found {
					return fmt.Errorf("no %s entry on %s; run `supplement init --date %s` first", kind, date, date)
				}
			}
			if !st.ToggleSupplementTaken(id) {
				return fmt.Errorf("supplement entry %s not found", id)
			}
			for _, e := range st.Supplements() {
				if e.ID == id {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", catalog.SupplementLabel(e.Supplement), checkMark(e.Taken))
					break
				}
			}
			return nil
		})
	},
}

func supplementTiming(kind model.SupplementKind) string {
	for _, s := range catalog.Supplements {
		if s.Kind == kind {
			return s.Timing
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(supplementCmd)
	supplementCmd.AddCommand(supplementListCmd, supplementInitCmd, supplementToggleCmd)
	for _, c := range []*cobra.Command{supplementListCmd, supplementInitCmd, supplementToggleCmd} {
		c.Flags().StringVar(&supplementDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
}
