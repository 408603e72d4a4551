package index

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/launchkit/launchkit-mcp/internal/corpus"
	"github.com/launchkit/launchkit-mcp/internal/embedder"
	"github.com/launchkit/launchkit-mcp/pkg/types"
)

// BatchSize bounds concurrent in-flight provider calls during generation:
// requests within a batch run concurrently, batches run sequentially.
const BatchSize = 10

// VectorIndex ranks template ids by semantic proximity to a query string.
// It owns the in-memory vector map, populated either from the on-disk
// embedding snapshot or by a generation pass against the provider.
type VectorIndex struct {
	store  *corpus.Store
	emb    embedder.Embedder // nil when no provider is configured
	logger *slog.Logger

	mu               sync.RWMutex
	initialized      bool
	vectorsAvailable bool
	records          []*types.TemplateRecord
	vectors          map[string][]float32
	model            string
}

// New creates an uninitialized index. emb may be nil; Init then marks
// vectors unavailable and callers rank lexically for the whole session.
func New(store *corpus.Store, emb embedder.Embedder, logger *slog.Logger) *VectorIndex {
	if logger == nil {
		logger = slog.Default()
	}
	return &VectorIndex{
		store:   store,
		emb:     emb,
		logger:  logger,
		vectors: make(map[string][]float32),
	}
}

// Init performs the full corpus scan and vector population. It is
// idempotent: once initialized, subsequent calls are no-ops. This is the one
// operation allowed to block on network I/O.
func (v *VectorIndex) Init(ctx context.Context) error {
	v.mu.RLock()
	done := v.initialized
	v.mu.RUnlock()
	if done {
		return nil
	}

	// Full record scan is required regardless of ranking strategy; filters
	// and result assembly need complete records.
	records, err := v.store.List(types.Filters{})
	if err != nil {
		return fmt.Errorf("scan corpus: %w", err)
	}

	vectors := make(map[string][]float32)
	model := ""

	cachePath := filepath.Join(v.store.Root(), CacheFileName)
	cache, err := LoadCacheFile(cachePath)
	if err != nil {
		// A corrupt cache is treated like an absent one
		v.logger.Warn("embedding cache unusable, regenerating", "error", err)
		cache = nil
	}

	switch {
	case v.emb == nil:
		// Vector ranking embeds every query at search time, so a snapshot
		// without a provider cannot serve it.
		if cache != nil {
			v.logger.Warn("embedding cache present but no provider configured, vector ranking unavailable")
		} else {
			v.logger.Info("no embedding cache or provider, vector ranking unavailable")
		}

	case cache != nil:
		// Stale keys (ids no longer in the corpus) are ignored, not pruned
		known := make(map[string]bool, len(records))
		for _, rec := range records {
			known[rec.ID] = true
		}
		for id, vec := range cache.Embeddings {
			if known[id] {
				vectors[id] = vec
			}
		}
		model = cache.Model
		v.logger.Info("embedding cache loaded",
			"path", cachePath, "vectors", len(vectors), "model", model)

	default:
		vectors, err = generateVectors(ctx, v.emb, records)
		if err != nil {
			return err
		}
		model = v.emb.Model()
		v.logger.Info("embeddings generated",
			"vectors", len(vectors), "model", model)
	}

	v.mu.Lock()
	v.records = records
	v.vectors = vectors
	v.model = model
	v.vectorsAvailable = len(vectors) > 0
	v.initialized = true
	v.mu.Unlock()

	return nil
}

// VectorsAvailable reports whether vector ranking can be used. The answer is
// fixed at initialization; a later provider failure surfaces as a search
// error, never as a strategy switch.
func (v *VectorIndex) VectorsAvailable() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.vectorsAvailable
}

// Records returns the records loaded during initialization, in scan order
func (v *VectorIndex) Records() []*types.TemplateRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.records
}

// Model returns the model the vector map was built with
func (v *VectorIndex) Model() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.model
}

// Rank embeds the query once and scores every filtered template by cosine
// similarity, descending, ties broken by scan order. All filtered templates
// are kept regardless of score. Results are truncated to limit.
func (v *VectorIndex) Rank(ctx context.Context, query string, filters types.Filters, limit int) ([]types.SearchResult, error) {
	v.mu.RLock()
	records := v.records
	vectors := v.vectors
	available := v.vectorsAvailable
	v.mu.RUnlock()

	if !available {
		return nil, fmt.Errorf("vector index has no vectors")
	}

	queryVec, err := v.emb.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results := make([]types.SearchResult, 0, len(records))
	for _, rec := range records {
		if !filters.Matches(rec) {
			continue
		}
		vec, ok := vectors[rec.ID]
		if !ok {
			// Corpus grew after the snapshot was taken
			v.logger.Debug("template has no cached vector, skipping", "id", rec.ID)
			continue
		}
		score, err := CosineSimilarity(queryVec, vec)
		if err != nil {
			return nil, fmt.Errorf("score %s: %w", rec.ID, err)
		}
		results = append(results, types.SearchResult{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Score:       score,
			Category:    rec.Category,
			Language:    rec.Language,
			Framework:   rec.Framework,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Rebuild regenerates every vector from the provider and writes a fresh
// snapshot to the corpus root. This is the explicit regeneration operation;
// nothing triggers it automatically on corpus drift.
func Rebuild(ctx context.Context, store *corpus.Store, emb embedder.Embedder, logger *slog.Logger) (*CacheFile, error) {
	if emb == nil {
		return nil, embedder.ErrNoProviderEnabled
	}
	if logger == nil {
		logger = slog.Default()
	}

	records, err := store.List(types.Filters{})
	if err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}

	vectors, err := generateVectors(ctx, emb, records)
	if err != nil {
		return nil, err
	}

	cache := &CacheFile{
		Embeddings:  vectors,
		GeneratedAt: timeNow(),
		Model:       emb.Model(),
	}
	path := filepath.Join(store.Root(), CacheFileName)
	if err := cache.Save(path); err != nil {
		return nil, err
	}
	logger.Info("embedding cache written",
		"path", path, "vectors", len(vectors), "model", cache.Model)
	return cache, nil
}

// generateVectors embeds each record's searchable text, BatchSize requests
// at a time. Requests within a batch run concurrently; batches run
// sequentially to bound load on the provider.
func generateVectors(ctx context.Context, emb embedder.Embedder, records []*types.TemplateRecord) (map[string][]float32, error) {
	vectors := make(map[string][]float32, len(records))
	var mu sync.Mutex

	for start := 0; start < len(records); start += BatchSize {
		end := start + BatchSize
		if end > len(records) {
			end = len(records)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, rec := range records[start:end] {
			g.Go(func() error {
				vec, err := emb.Embed(gctx, rec.SearchableText())
				if err != nil {
					return fmt.Errorf("embed %s: %w", rec.ID, err)
				}
				mu.Lock()
				vectors[rec.ID] = vec
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	return vectors, nil
}
