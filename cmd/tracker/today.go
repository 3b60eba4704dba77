package tracker

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/catalog"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's meals, supplements, wellbeing and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(todayDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			if dateutil.IsToday(date, time.Now()) {
				st.EnsureTodaySupplements()
			}
			s := analytics.Dashboard(st.Snapshot(), date)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", s.Date)
			fmt.Fprintf(out, "Calories: %d kcal\n", s.Calories)
			fmt.Fprintf(out, "Meals: %d/%d\n", s.MealsCompleted, s.MealsPlanned)
			for _, m := range s.Meals {
				fmt.Fprintf(out, "  %s %-10s %s %s\n", checkMark(m.Completed), catalog.MealLabel(m.Type), m.Time, m.Description)
			}
			fmt.Fprintf(out, "Supplements: %d/%d\n", s.SupplementsTaken, s.SupplementsTotal)
			for _, e := range s.Supplements {
				fmt.Fprintf(out, "  %s %s\n", checkMark(e.Taken), catalog.SupplementLabel(e.Supplement))
			}
			if w := s.Wellbeing; w != nil {
				fmt.Fprintf(out, "Wellbeing: energy %d | sleep %d | mood %d | stress %d\n", w.Energy, w.Sleep, w.Mood, w.Stress)
			} else {
				fmt.Fprintln(out, "Wellbeing: not rated")
			}
			if m := s.LatestMeasurement; m != nil {
				fmt.Fprintf(out, "Weight: %.1f kg (%s)\n", m.Weight, m.Date)
			}
			fmt.Fprintf(out, "Streak: %d day(s)\n", s.Streak)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
