package tracker

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Record weight and body girths",
}

var (
	measureDate   string
	measureWeight float64
	measureWaist  float64
	measureHips   float64
	measureChest  float64
	measureLimit  int
)

var measureSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record a measurement for a day, replacing that day's entry if there is one",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(measureDate)
		if err != nil {
			return err
		}
		in := measurementInput{
			Date:   date,
			Weight: measureWeight,
			Waist:  optionalFloat(cmd, "waist", measureWaist),
			Hips:   optionalFloat(cmd, "hips", measureHips),
			Chest:  optionalFloat(cmd, "chest", measureChest),
		}
		if err := validateInput(in); err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			if existing, ok := analytics.FindMeasurement(st.Measurements(), date); ok {
				st.UpdateMeasurement(existing.ID, model.MeasurementPatch{
					Weight: model.Set(in.Weight),
					Waist:  model.Set(in.Waist),
					Hips:   model.Set(in.Hips),
					Chest:  model.Set(in.Chest),
				})
				fmt.Fprintf(cmd.OutOrStdout(), "Updated measurement for %s\n", date)
				return nil
			}
			st.AddMeasurement(model.MeasurementEntry{
				ID:     dateutil.NewID(time.Now()),
				Date:   date,
				Weight: in.Weight,
				Waist:  in.Waist,
				Hips:   in.Hips,
				Chest:  in.Chest,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded measurement for %s\n", date)
			return nil
		})
	},
}

var measureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List measurements, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			entries := st.Measurements()
			slices.SortStableFunc(entries, func(a, b model.MeasurementEntry) int { return strings.Compare(b.Date, a.Date) })
			if measureLimit > 0 && len(entries) > measureLimit {
				entries = entries[:measureLimit]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tDATE\tWEIGHT_KG\tWAIST_CM\tHIPS_CM\tCHEST_CM")
			for _, m := range entries {
				fmt.Fprintf(out, "%s\t%s\t%.1f\t%s\t%s\t%s\n", m.ID, m.Date, m.Weight, formatOptional(m.Waist), formatOptional(m.Hips), formatOptional(m.Chest))
			}
			if trend, ok := analytics.WeightTrend(st.Measurements()); ok {
				fmt.Fprintf(out, "Trend: %s %s kg (%s to %s)\n", trend.Direction, trend.Change, trend.From, trend.To)
			}
			return nil
		})
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			if !st.DeleteMeasurement(args[0]) {
				return fmt.Errorf("measurement %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted measurement %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(measureCmd)
	measureCmd.AddCommand(measureSetCmd, measureListCmd, measureDeleteCmd)

	measureSetCmd.Flags().StringVar(&measureDate, "date", "", "Date YYYY-MM-DD (default today)")
	measureSetCmd.Flags().Float64Var(&measureWeight, "weight", 0, "Weight in kg")
	measureSetCmd.Flags().Float64Var(&measureWaist, "waist", 0, "Waist in cm (optional)")
	measureSetCmd.Flags().Float64Var(&measureHips, "hips", 0, "Hips in cm (optional)")
	measureSetCmd.Flags().Float64Var(&measureChest, "chest", 0, "Chest in cm (optional)")
	measureListCmd.Flags().IntVar(&measureLimit, "limit", 30, "Max entries to show (0 = all)")
}
