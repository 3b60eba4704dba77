package tracker

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	dataDirFlag string
	backendFlag string
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "tracker logs meals, supplements, wellbeing and body data from your terminal",
	Long: "tracker is a local-first personal health log: meals, a daily supplement checklist, " +
		"wellbeing ratings, body measurements, blood tests and a recipe book, with streak and trend analytics.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config.yaml (default <user-config-dir>/tracker/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Data directory (overrides config and TRACKER_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend: sqlite or file")
}
