package tracker

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var (
	exportFormat string
	exportOut    string
	importIn     string
	resetYes     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON, or meals as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withStore(cmd, func(st *store.Store) error {
			switch strings.ToLower(strings.TrimSpace(exportFormat)) {
			case "json":
				b, err := st.ExportData()
				if err != nil {
					return err
				}
				if err := os.WriteFile(exportOut, b, 0o644); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
			case "csv":
				if err := writeMealsCSV(exportOut, st); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported --format %q (use json or csv)", exportFormat)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			return nil
		})
	},
}

func writeMealsCSV(path string, st *store.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export csv: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "date", "type", "time", "description", "calories", "completed"}); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for _, m := range st.Meals() {
		record := []string{m.ID, m.Date, string(m.Type), m.Time, m.Description, strconv.Itoa(m.Calories), strconv.FormatBool(m.Completed)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export csv: %w", err)
	}
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace all data with a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withStore(cmd, func(st *store.Store) error {
			if err := st.ImportData(raw); err != nil {
				return err
			}
			data := st.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d meals, %d supplements, %d wellbeing, %d measurements, %d blood tests, %d recipes\n",
				len(data.Meals), len(data.Supplements), len(data.Wellbeing), len(data.Measurements), len(data.BloodTests), len(data.Recipes))
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tracked data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("reset deletes every entry; pass --yes to confirm")
		}
		return withStore(cmd, func(st *store.Store) error {
			st.ResetAllData()
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or csv (meals only)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input JSON file path")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm deleting all data")
}
