package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PavelMelnik94/my-tracker/internal/db"
	"github.com/PavelMelnik94/my-tracker/internal/storage"
)

func backends(t *testing.T) map[string]storage.Persister {
	t.Helper()

	file, err := storage.NewFile(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations(sqldb))
	sqlite := storage.NewSQLite(sqldb)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]storage.Persister{
		"memory": storage.NewMemory(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestPersisterRoundTrip(t *testing.T) {
	t.Parallel()
	for name, p := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := p.Load("health-tracker-storage")
			require.NoError(t, err)
			require.False(t, ok, "expected empty backend")

			require.NoError(t, p.Save("health-tracker-storage", []byte(`{"meals":[]}`)))
			require.NoError(t, p.Save("health-tracker-storage", []byte(`{"meals":[1]}`)))

			data, ok, err := p.Load("health-tracker-storage")
			require.NoError(t, err)
			require.True(t, ok)
			require.JSONEq(t, `{"meals":[1]}`, string(data))

			require.NoError(t, p.Delete("health-tracker-storage"))
			require.NoError(t, p.Delete("health-tracker-storage"), "delete of a missing key is a no-op")
			_, ok, err = p.Load("health-tracker-storage")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestPersisterRejectsEmptyKey(t *testing.T) {
	t.Parallel()
	for name, p := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.Error(t, p.Save(" ", []byte("x")))
			_, _, err := p.Load("")
			require.Error(t, err)
		})
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	t.Parallel()
	m := storage.NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Save("k", buf))
	buf[0] = 'z'

	data, _, err := m.Load("k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(data))
}

func TestFileSanitisesKeys(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	f, err := storage.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Save("health-tracker-storage:recipes-seeded", []byte("true")))
	require.Equal(t, filepath.Join(dir, "health-tracker-storage%3Arecipes-seeded.json"), f.Path("health-tracker-storage:recipes-seeded"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileKeysNeverShareAFile(t *testing.T) {
	t.Parallel()
	f, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	require.NotEqual(t, f.Path("a:b"), f.Path("a_b"))
	require.NotEqual(t, f.Path("a/b"), f.Path("a_b"))

	require.NoError(t, f.Save("a:b", []byte("colon")))
	require.NoError(t, f.Save("a_b", []byte("underscore")))

	data, ok, err := f.Load("a:b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "colon", string(data))

	data, ok, err = f.Load("a_b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "underscore", string(data))
}
