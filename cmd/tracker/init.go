package tracker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/app"
	"github.com/PavelMelnik94/my-tracker/internal/config"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local tracker storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			if cfg.SeedRecipes {
				n, err := st.SeedRecipes()
				if err != nil {
					return err
				}
				if n > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Added %d built-in recipes\n", n)
				}
			}
			where := app.DBPath(cfg.DataDir)
			if cfg.Backend == config.BackendFile {
				where = app.StoreDir(cfg.DataDir)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s storage at %s\n", cfg.Backend, where)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
