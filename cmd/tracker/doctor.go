package tracker

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/service"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var doctorVerbose bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			report := service.RunDoctor(st.Snapshot())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duplicate ids: %d\n", report.DuplicateIDs)
			fmt.Fprintf(out, "Duplicate wellbeing/measurement dates: %d\n", report.DuplicateDates)
			fmt.Fprintf(out, "Invalid dates or times: %d\n", report.InvalidDates)
			fmt.Fprintf(out, "Ratings outside 1-10: %d\n", report.InvalidRatings)
			fmt.Fprintf(out, "Unknown meal types, supplements or categories: %d\n", report.UnknownValues)
			fmt.Fprintf(out, "Negative quantities: %d\n", report.NegativeQuantities)
			if doctorVerbose {
				for _, is := range report.Issues {
					fmt.Fprintf(out, "  %s %s: %s\n", is.Collection, is.ID, color.New(color.FgYellow).Sprint(is.Problem))
				}
			}
			if !report.OK() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorVerbose, "verbose", "v", false, "List every issue")
}
