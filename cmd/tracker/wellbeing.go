package tracker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/model"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var wellbeingCmd = &cobra.Command{
	Use:   "wellbeing",
	Short: "Rate energy, sleep, mood and stress for a day",
}

var (
	wbDate   string
	wbEnergy int
	wbSleep  int
	wbMood   int
	wbStress int
	wbLibido int
	wbNotes  string
	wbLimit  int
)

var wellbeingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record ratings for a day, replacing that day's entry if there is one",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(wbDate)
		if err != nil {
			return err
		}
		in := wellbeingInput{
			Date:   date,
			Energy: wbEnergy,
			Sleep:  wbSleep,
			Mood:   wbMood,
			Stress: wbStress,
			Libido: optionalInt(cmd, "libido", wbLibido),
		}
		if err := validateInput(in); err != nil {
			return err
		}
		notes := strings.TrimSpace(wbNotes)
		return withStore(cmd, func(st *store.Store) error {
			if existing, ok := analytics.FindWellbeing(st.Wellbeing(), date); ok {
				patch := model.WellbeingPatch{
					Energy: model.Set(in.Energy),
					Sleep:  model.Set(in.Sleep),
					Mood:   model.Set(in.Mood),
					Stress: model.Set(in.Stress),
					Libido: model.Set(in.Libido),
					Notes:  model.Set(notes),
				}
				st.UpdateWellbeing(existing.ID, patch)
				fmt.Fprintf(cmd.OutOrStdout(), "Updated wellbeing for %s\n", date)
				return nil
			}
			entry := model.WellbeingEntry{
				ID:     dateutil.NewID(time.Now()),
				Date:   date,
				Energy: in.Energy,
				Sleep:  in.Sleep,
				Mood:   in.Mood,
				Stress: in.Stress,
				Libido: in.Libido,
				Notes:  notes,
			}
			st.AddWellbeing(entry)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded wellbeing for %s\n", date)
			return nil
		})
	},
}

var wellbeingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wellbeing entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			entries := st.Wellbeing()
			slices.SortStableFunc(entries, func(a, b model.WellbeingEntry) int { return strings.Compare(b.Date, a.Date) })
			if wbLimit > 0 && len(entries) > wbLimit {
				entries = entries[:wbLimit]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tDATE\tENERGY\tSLEEP\tMOOD\tSTRESS\tLIBIDO\tNOTES")
			for _, w := range entries {
				libido := "-"
				if w.Libido != nil {
					libido = strconv.Itoa(*w.Libido)
				}
				fmt.Fprintf(out, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n", w.ID, w.Date, w.Energy, w.Sleep, w.Mood, w.Stress, libido, w.Notes)
			}
			if avg, ok := analytics.WellbeingAverages(st.Wellbeing()); ok {
				fmt.Fprintf(out, "Averages (last %d): energy %.1f | sleep %.1f | mood %.1f | stress %.1f\n", avg.Count, avg.Energy, avg.Sleep, avg.Mood, avg.Stress)
			}
			return nil
		})
	},
}

var wellbeingDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a wellbeing entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			if !st.DeleteWellbeing(args[0]) {
				return fmt.Errorf("wellbeing entry %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted wellbeing entry %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(wellbeingCmd)
	wellbeingCmd.AddCommand(wellbeingSetCmd, wellbeingListCmd, wellbeingDeleteCmd)

	wellbeingSetCmd.Flags().StringVar(&wbDate, "date", "", "Date YYYY-MM-DD (default today)")
	wellbeingSetCmd.Flags().IntVar(&wbEnergy, "energy", 0, "Energy 1-10")
	wellbeingSetCmd.Flags().IntVar(&wbSleep, "sleep", 0, "Sleep quality 1-10")
	wellbeingSetCmd.Flags().IntVar(&wbMood, "mood", 0, "Mood 1-10")
	wellbeingSetCmd.Flags().IntVar(&wbStress, "stress", 0, "Stress 1-10")
	wellbeingSetCmd.Flags().IntVar(&wbLibido, "libido", 0, "Libido 1-10 (optional)")
	wellbeingSetCmd.Flags().StringVar(&wbNotes, "notes", "", "Free-form notes")
	wellbeingListCmd.Flags().IntVar(&wbLimit, "limit", 30, "Max entries to show (0 = all)")
}
