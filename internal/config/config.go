// Package config loads the tracker's YAML settings file and applies environment
// overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"

	DefaultStorageKey = "health-tracker-storage"
)

const (
	EnvBackend    = "TRACKER_BACKEND"
	EnvDataDir    = "TRACKER_DATA_DIR"
	EnvStorageKey = "TRACKER_STORAGE_KEY"
	EnvLogLevel   = "TRACKER_LOG_LEVEL"
	EnvSeed       = "TRACKER_SEED_RECIPES"
)

type Config struct {
	// Backend is "sqlite" or "file".
	Backend string `yaml:"backend"`

	// DataDir holds the database, the file store and backups. Empty means the
	// default directory.
	DataDir string `yaml:"data_dir,omitempty"`

	StorageKey string `yaml:"storage_key"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// SeedRecipes fills an empty recipe book with the built-in catalog on init.
	SeedRecipes bool `yaml:"seed_recipes"`
}

func Default() Config {
	return Config{
		Backend:     BackendSQLite,
		StorageKey:  DefaultStorageKey,
		LogLevel:    "warn",
		SeedRecipes: true,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TRACKER_* variables that are set and non-empty.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get(EnvBackend); ok {
		c.Backend = strings.ToLower(v)
	}
	if v, ok := get(EnvDataDir); ok {
		c.DataDir = v
	}
	if v, ok := get(EnvStorageKey); ok {
		c.StorageKey = v
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := get(EnvSeed); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		c.SeedRecipes = b
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", BackendSQLite, BackendFile, c.Backend)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("storage_key is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log_level %q (expected debug, info, warn or error)", c.LogLevel)
}

func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
