package tracker

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavelMelnik94/my-tracker/internal/app"
	"github.com/PavelMelnik94/my-tracker/internal/config"
	"github.com/PavelMelnik94/my-tracker/internal/dateutil"
	"github.com/PavelMelnik94/my-tracker/internal/db"
	"github.com/PavelMelnik94/my-tracker/internal/storage"
	"github.com/PavelMelnik94/my-tracker/internal/store"
)

// loadConfig resolves settings from the config file, TRACKER_* variables and the
// persistent flags, in increasing priority.
func loadConfig() (config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, err
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	if backendFlag != "" {
		cfg.Backend = strings.ToLower(strings.TrimSpace(backendFlag))
	}
	if cfg.DataDir == "" {
		dir, err := app.DefaultDataDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func resolveConfigPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return app.DefaultConfigPath()
}

func openPersister(cfg config.Config) (storage.Persister, error) {
	if err := app.EnsureDir(cfg.DataDir); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BackendFile:
		return storage.NewFile(app.StoreDir(cfg.DataDir))
	default:
		sqldb, err := db.Open(app.DBPath(cfg.DataDir))
		if err != nil {
			return nil, err
		}
		if err := db.ApplyMigrations(sqldb); err != nil {
			sqldb.Close()
			return nil, err
		}
		return storage.NewSQLite(sqldb), nil
	}
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// withStore opens the configured store, runs fn and reports a failed write-back.
func withStore(cmd *cobra.Command, run func(*store.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := openPersister(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	st, err := store.Open(p, store.WithKey(cfg.StorageKey), store.WithLogger(newLogger(cmd, cfg)))
	if err != nil {
		return err
	}
	if err := run(st); err != nil {
		return err
	}
	if err := st.Err(); err != nil {
		return fmt.Errorf("changes were not saved: %w", err)
	}
	return nil
}

// resolveDate returns value or today's date when value is empty.
func resolveDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return dateutil.Today(time.Now()), nil
	}
	if _, err := dateutil.ParseDate(value); err != nil {
		return "", err
	}
	return value, nil
}

// optionalFloat returns nil when the flag was not given.
func optionalFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func optionalInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func checkMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// splitList splits a ";"-separated flag value and drops blank items.
func splitList(value string) []string {
	out := []string{}
	for _, item := range strings.Split(value, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
