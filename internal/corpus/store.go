package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/launchkit/launchkit-mcp/pkg/types"
)

// Store translates between public template identifiers and the on-disk
// corpus hierarchy. Records are cached in memory by id for the process
// lifetime; code bodies are re-read from disk on every call so external
// edits to template files are always reflected.
type Store struct {
	root   string
	logger *slog.Logger

	mu      sync.RWMutex
	records map[string]*types.TemplateRecord
}

// NewStore creates a store over the corpus rooted at root
func NewStore(root string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		root:    root,
		logger:  logger,
		records: make(map[string]*types.TemplateRecord),
	}
}

// Root returns the corpus root directory
func (s *Store) Root() string {
	return s.root
}

// LoadRecord reads the metadata record for id, caching the result. A missing
// metadata file is ErrNotFound; a present but structurally invalid one is
// ErrInvalidRecord. If the stored id disagrees with the lookup key, the
// lookup key wins and the divergence is logged.
func (s *Store) LoadRecord(rawID string) (*types.TemplateRecord, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	key := id.String()

	s.mu.RLock()
	if rec, ok := s.records[key]; ok {
		s.mu.RUnlock()
		return rec, nil
	}
	s.mu.RUnlock()

	metaPath := filepath.Join(id.Path(s.root), MetadataFile)
	data, err := os.ReadFile(metaPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", metaPath, err)
	}

	var rec types.TemplateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, key, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, key, err)
	}

	// The lookup key is authoritative; a divergent stored id self-heals to
	// it rather than leaving the cache key and record id out of sync.
	if rec.ID != key {
		s.logger.Warn("template id mismatch, using lookup key",
			"path", metaPath, "stored", rec.ID, "key", key)
		rec.ID = key
	}

	s.mu.Lock()
	s.records[key] = &rec
	s.mu.Unlock()

	return &rec, nil
}

// LoadCode materializes the code body for id. A files/ directory is read
// recursively with paths relative to it preserved as keys; otherwise a
// single conventional code file is used; if neither exists the body is empty,
// which is not an error.
func (s *Store) LoadCode(rawID string) (types.TemplateCodeBody, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	dir := id.Path(s.root)

	body := types.TemplateCodeBody{}

	filesDir := filepath.Join(dir, CodeDir)
	if info, err := os.Stat(filesDir); err == nil && info.IsDir() {
		err := filepath.WalkDir(filesDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(filesDir, path)
			if err != nil {
				return err
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			body[filepath.ToSlash(rel)] = string(content)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("read code directory for %s: %w", id, err)
		}
		return body, nil
	}

	single := filepath.Join(dir, CodeFile)
	content, err := os.ReadFile(single)
	if os.IsNotExist(err) {
		return body, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read code file for %s: %w", id, err)
	}
	body[CodeFile] = string(content)
	return body, nil
}

// ListIDs walks the four-level hierarchy and yields the id of every leaf
// directory containing a metadata file, in traversal order. Directories
// without one are skipped, as are directories whose names fall outside the
// id grammar: those can never be addressed by an identifier, so they are not
// part of the corpus. The schema has no deeper nesting to descend into.
func (s *Store) ListIDs() ([]string, error) {
	var ids []string
	languages, err := readSubdirs(s.root)
	if err != nil {
		return nil, err
	}
	for _, lang := range languages {
		frameworks, err := readSubdirs(filepath.Join(s.root, lang))
		if err != nil {
			return nil, err
		}
		for _, fw := range frameworks {
			categories, err := readSubdirs(filepath.Join(s.root, lang, fw))
			if err != nil {
				return nil, err
			}
			for _, cat := range categories {
				names, err := readSubdirs(filepath.Join(s.root, lang, fw, cat))
				if err != nil {
					return nil, err
				}
				for _, name := range names {
					meta := filepath.Join(s.root, lang, fw, cat, name, MetadataFile)
					if _, err := os.Stat(meta); err != nil {
						continue
					}
					id := lang + "/" + fw + "/" + cat + "/" + name
					if _, err := ParseID(id); err != nil {
						s.logger.Warn("template directory name outside the id grammar, skipping",
							"path", filepath.Join(s.root, lang, fw, cat, name))
						continue
					}
					ids = append(ids, id)
				}
			}
		}
	}
	return ids, nil
}

// List loads every record in the corpus, in scan order, applying filters as
// an exact-match predicate on the loaded record. Templates that vanished
// between the scan and the load are skipped; invalid records propagate.
func (s *Store) List(filters types.Filters) ([]*types.TemplateRecord, error) {
	ids, err := s.ListIDs()
	if err != nil {
		return nil, err
	}
	records := make([]*types.TemplateRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.LoadRecord(id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if filters.Matches(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// ClearCache drops the in-memory record cache. Vector and lexical state is
// owned elsewhere and must be cleared independently if desired.
func (s *Store) ClearCache() {
	s.mu.Lock()
	s.records = make(map[string]*types.TemplateRecord)
	s.mu.Unlock()
}

// readSubdirs returns the names of subdirectories of dir, in directory order.
// A missing dir is an empty result, not an error, so scans tolerate holes.
func readSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
