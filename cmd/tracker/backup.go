package tracker

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/app"
	"github.com/PavelMelnik94/my-tracker/internal/service"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage data backups",
}

var (
	backupOut    string
	backupDir    string
	restoreFile  string
	restoreForce bool
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a checksummed backup of all tracker data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		now := time.Now()
		out := backupOut
		if out == "" {
			dir := backupDir
			if dir == "" {
				dir = app.BackupDir(cfg.DataDir)
			}
			out = filepath.Join(dir, service.BackupName(now))
		}
		return withStore(cmd, func(st *store.Store) error {
			info, err := service.CreateBackup(st, out, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s\n", info.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := backupDir
		if dir == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir = app.BackupDir(cfg.DataDir)
		}
		items, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tSIZE\tCREATED\tCHECKSUM")
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace all tracker data with a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		return withStore(cmd, func(st *store.Store) error {
			a, err := service.RestoreBackup(st, restoreFile, restoreForce)
			if err != nil {
				return err
			}
			if a.StorageKey != "" && a.StorageKey != st.Key() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Note: backup was taken from storage key %q\n", a.StorageKey)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s (taken %s)\n", restoreFile, a.CreatedAt.Local().Format(time.RFC3339))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup output file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (used when --out is empty)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default: <data-dir>/backups)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup file path")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Replace tracker data that already exists")
}
