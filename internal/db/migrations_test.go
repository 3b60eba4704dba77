package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PavelMelnik94/my-tracker/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "tracker.db")
	sqldb, err := db.Open(dbPath)
	require.NoError(t, err, "open db")
	defer sqldb.Close()

	require.NoError(t, db.ApplyMigrations(sqldb), "first apply migrations")
	require.NoError(t, db.ApplyMigrations(sqldb), "second apply migrations")

	var migrationCount int
	require.NoError(t, sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount))
	require.Equal(t, 2, migrationCount)

	var kvTableCount int
	require.NoError(t, sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'`).Scan(&kvTableCount))
	require.Equal(t, 1, kvTableCount, "expected kv_store table to exist")

	version, err := db.SchemaVersion(sqldb)
	require.NoError(t, err)
	require.Equal(t, 2, version)
}

func TestSchemaVersionOnFreshDatabase(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	defer sqldb.Close()

	_, err = sqldb.Exec(`CREATE TABLE schema_migrations (version INTEGER PRIMARY KEY, name TEXT NOT NULL, applied_at DATETIME)`)
	require.NoError(t, err)

	version, err := db.SchemaVersion(sqldb)
	require.NoError(t, err)
	require.Zero(t, version)
}
