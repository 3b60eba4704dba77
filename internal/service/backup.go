package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/PavelMelnik94/my-tracker/internal/model"
)

const archiveVersion = 1

// Archive is a backup file: the exported collections plus the store state kept
// outside the snapshot.
type Archive struct {
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	StorageKey    string          `json:"storage_key"`
	RecipesSeeded bool            `json:"recipes_seeded"`
	Data          json.RawMessage `json:"data"`
}

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// BackupSource is what a backup reads from the store.
type BackupSource interface {
	Key() string
	ExportData() ([]byte, error)
	RecipesSeeded() bool
}

// RestoreTarget is what a restore writes back into the store.
type RestoreTarget interface {
	Snapshot() model.HealthData
	ImportData(payload []byte) error
	SetRecipesSeeded(seeded bool) error
}

// CreateBackup writes the store's archive to out with a .sha256 sidecar.
func CreateBackup(src BackupSource, out string, now time.Time) (BackupInfo, error) {
	if strings.TrimSpace(out) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	data, err := src.ExportData()
	if err != nil {
		return BackupInfo{}, err
	}
	raw, err := json.MarshalIndent(Archive{
		Version:       archiveVersion,
		CreatedAt:     now.UTC(),
		StorageKey:    src.Key(),
		RecipesSeeded: src.RecipesSeeded(),
		Data:          data,
	}, "", "  ")
	if err != nil {
		return BackupInfo{}, fmt.Errorf("encode backup: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	checksum := sha256Hex(raw)
	if err := os.WriteFile(out+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	return BackupInfo{Path: out, Checksum: checksum, CreatedAt: now, SizeBytes: int64(len(raw))}, nil
}

// ReadArchive loads a backup, checking its sidecar checksum when one exists.
func ReadArchive(path string) (Archive, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Archive{}, fmt.Errorf("read backup: %w", err)
	}
	if expected, err := os.ReadFile(path + ".sha256"); err == nil {
		if strings.TrimSpace(string(expected)) != sha256Hex(raw) {
			return Archive{}, fmt.Errorf("backup checksum mismatch")
		}
	}
	var a Archive
	if err := json.Unmarshal(raw, &a); err != nil {
		return Archive{}, fmt.Errorf("decode backup: %w", err)
	}
	if a.Version != archiveVersion {
		return Archive{}, fmt.Errorf("unsupported backup version %d", a.Version)
	}
	if len(a.Data) == 0 {
		return Archive{}, fmt.Errorf("backup has no data")
	}
	return a, nil
}

// RestoreBackup replaces the store contents and seed flag with the archive at path.
// A store that already holds entries is only replaced with force.
func RestoreBackup(dst RestoreTarget, path string, force bool) (Archive, error) {
	a, err := ReadArchive(path)
	if err != nil {
		return Archive{}, err
	}
	if !force && entryCount(dst.Snapshot()) > 0 {
		return Archive{}, fmt.Errorf("store already holds data; use --force to overwrite")
	}
	if err := dst.ImportData(a.Data); err != nil {
		return Archive{}, fmt.Errorf("restore data: %w", err)
	}
	if err := dst.SetRecipesSeeded(a.RecipesSeeded); err != nil {
		return Archive{}, err
	}
	return a, nil
}

// ListBackups returns backups in dir, newest first. A missing dir has none.
func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// BackupName is the default file name for a backup taken at t.
func BackupName(t time.Time) string {
	return fmt.Sprintf("tracker-%s.json", t.Format("20060102-150405"))
}

func entryCount(d model.HealthData) int {
	return len(d.Meals) + len(d.Supplements) + len(d.Wellbeing) + len(d.Measurements) + len(d.BloodTests) + len(d.Recipes)
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
