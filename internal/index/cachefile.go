package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timeNow is swapped in tests for deterministic snapshots
var timeNow = time.Now

// CacheFileName is the embedding snapshot stored at the corpus root.
// External tooling depends on this name.
const CacheFileName = "embeddings.json"

// CacheFile is the on-disk embedding snapshot: one vector per template id,
// plus provenance. It is point-in-time; nothing re-validates it against the
// live corpus beyond tolerating extra or missing keys at load time.
type CacheFile struct {
	Embeddings  map[string][]float32 `json:"embeddings"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Model       string               `json:"model"`
}

// LoadCacheFile reads the snapshot at path. A missing file returns (nil, nil)
// so callers can distinguish absence from corruption.
func LoadCacheFile(path string) (*CacheFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read embedding cache: %w", err)
	}

	var cache CacheFile
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parse embedding cache %s: %w", path, err)
	}
	return &cache, nil
}

// Save writes the snapshot atomically via a temp file and rename, so a
// concurrent reader never observes a half-written cache.
func (c *CacheFile) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal embedding cache: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".embeddings-*.json")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write embedding cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close embedding cache: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace embedding cache: %w", err)
	}
	return nil
}
