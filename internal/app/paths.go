package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "tracker"
	dbFileName     = "tracker.db"
	configFileName = "config.yaml"
	storeDirName   = "store"
	backupDirName  = "backups"
)

// DefaultDataDir is <user-config-dir>/tracker.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func DefaultConfigPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func DBPath(dataDir string) string {
	return filepath.Join(dataDir, dbFileName)
}

// StoreDir holds one JSON file per key for the file backend.
func StoreDir(dataDir string) string {
	return filepath.Join(dataDir, storeDirName)
}

func BackupDir(dataDir string) string {
	return filepath.Join(dataDir, backupDirName)
}

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
