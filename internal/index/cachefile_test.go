package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), CacheFileName)

	in := &CacheFile{
		Embeddings: map[string][]float32{
			"typescript/nextjs/auth/nextauth-google": {0.1, 0.2, 0.3},
			"python/fastapi/api/crud-service":        {0.4, 0.5, 0.6},
		},
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Model:       "text-embedding-3-small",
	}
	require.NoError(t, in.Save(path))

	out, err := LoadCacheFile(path)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Embeddings, out.Embeddings)
	assert.Equal(t, in.Model, out.Model)
	assert.True(t, in.GeneratedAt.Equal(out.GeneratedAt))
}

func TestLoadCacheFileAbsent(t *testing.T) {
	cache, err := LoadCacheFile(filepath.Join(t.TempDir(), CacheFileName))
	require.NoError(t, err)
	assert.Nil(t, cache)
}

func TestLoadCacheFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), CacheFileName)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := LoadCacheFile(path)
	assert.Error(t, err)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	cache := &CacheFile{Embeddings: map[string][]float32{}, Model: "m"}
	require.NoError(t, cache.Save(filepath.Join(dir, CacheFileName)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, CacheFileName, entries[0].Name())
}
