package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/core/internal/infrastructure/config"
	"github.com/ecotrack/core/internal/infrastructure/storage"
)

func TestNewInitializesEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "actions_data.json")

	store, err := storage.New(config.StorageConfig{FilePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestNewKeepsExistingContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions_data.json")
	existing := `[{"id":1,"action":"Recycling","date":"2025-01-08","points":25}]`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	store, err := storage.New(config.StorageConfig{FilePath: path})
	require.NoError(t, err)

	data, err := store.Read()
	require.NoError(t, err)
	assert.JSONEq(t, existing, string(data))
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := storage.New(config.StorageConfig{})
	assert.Error(t, err)
}

func TestWriteAtomicReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions_data.json")
	store, err := storage.New(config.StorageConfig{FilePath: path})
	require.NoError(t, err)

	payload := []byte(`[{"id":1,"action":"Recycling","date":"2025-01-08","points":25}]`)
	require.NoError(t, store.WriteAtomic(payload))

	data, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not survive a write")
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions_data.json")
	store, err := storage.New(config.StorageConfig{FilePath: path})
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	data, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestHealthCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions_data.json")
	store, err := storage.New(config.StorageConfig{FilePath: path})
	require.NoError(t, err)

	t.Run("fresh file", func(t *testing.T) {
		assert.NoError(t, store.HealthCheck())
	})

	t.Run("populated file", func(t *testing.T) {
		require.NoError(t, store.WriteAtomic([]byte(`[{"id":1,"action":"Recycling","date":"2025-01-08","points":25}]`)))
		assert.NoError(t, store.HealthCheck())
	})

	t.Run("corrupt file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))
		assert.Error(t, store.HealthCheck())
	})
}

func TestInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions_data.json")
	store, err := storage.New(config.StorageConfig{FilePath: path})
	require.NoError(t, err)
	require.NoError(t, store.WriteAtomic([]byte(`[{"id":1,"action":"Recycling","date":"2025-01-08","points":25}]`)))

	info := store.Info()
	assert.Equal(t, path, info["path"])
	assert.Equal(t, 1, info["records"])
	assert.NotZero(t, info["size_bytes"])
}
