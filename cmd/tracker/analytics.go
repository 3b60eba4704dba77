package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/analytics"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var analyticsJSON bool

type analyticsReport struct {
	Streak          int                        `json:"streak"`
	WeightTrend     *analytics.Trend           `json:"weight_trend,omitempty"`
	Wellbeing       *analytics.Averages        `json:"wellbeing_averages,omitempty"`
	BloodTest       *analytics.BloodAnalysis   `json:"blood_test,omitempty"`
	WeightSeries    []analytics.WeightPoint    `json:"weight_series"`
	WellbeingSeries []analytics.WellbeingPoint `json:"wellbeing_series"`
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Streak, weight trend, wellbeing averages and blood test findings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			report := buildAnalyticsReport(st)
			out := cmd.OutOrStdout()
			if analyticsJSON {
				b, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal analytics json: %w", err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}

			fmt.Fprintf(out, "Streak: %d day(s)\n", report.Streak)
			if t := report.WeightTrend; t != nil {
				fmt.Fprintf(out, "Weight: %s %s kg over %d measurement(s)\n", t.Direction, t.Change, len(report.WeightSeries))
			} else {
				fmt.Fprintln(out, "Weight: need at least 2 measurements for a trend")
			}
			if a := report.Wellbeing; a != nil {
				fmt.Fprintf(out, "Wellbeing (last %d): energy %.1f | sleep %.1f | mood %.1f | stress %.1f\n", a.Count, a.Energy, a.Sleep, a.Mood, a.Stress)
			} else {
				fmt.Fprintln(out, "Wellbeing: no ratings yet")
			}
			if report.BloodTest != nil {
				printBloodAnalysis(cmd, *report.BloodTest)
			} else {
				fmt.Fprintln(out, color.New(color.FgHiBlack).Sprint("Blood test: none recorded"))
			}
			return nil
		})
	},
}

func buildAnalyticsReport(st *store.Store) analyticsReport {
	data := st.Snapshot()
	report := analyticsReport{
		Streak:          analytics.Streak(data.Meals),
		WeightSeries:    analytics.WeightSeries(data.Measurements),
		WellbeingSeries: analytics.WellbeingSeries(data.Wellbeing),
	}
	if t, ok := analytics.WeightTrend(data.Measurements); ok {
		report.WeightTrend = &t
	}
	if a, ok := analytics.WellbeingAverages(data.Wellbeing); ok {
		report.Wellbeing = &a
	}
	if b, ok := analytics.BloodTestReport(data.BloodTests); ok {
		report.BloodTest = &b
	}
	return report
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.Flags().BoolVar(&analyticsJSON, "json", false, "Print the report as JSON")
}
