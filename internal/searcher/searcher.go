// Package searcher is the single entry point for template retrieval. It
// hides the vector-versus-lexical choice from callers: the strategy is
// decided once per initialization, never per query.
package searcher

import (
	"context"
	"log/slog"

	"github.com/launchkit/launchkit-mcp/internal/corpus"
	"github.com/launchkit/launchkit-mcp/internal/index"
	"github.com/launchkit/launchkit-mcp/pkg/types"
)

// Result limits observed by Search
const (
	DefaultLimit = 5
	MaxLimit     = 20
)

// Searcher routes queries to vector or lexical ranking and assembles the
// public result shapes.
type Searcher struct {
	store  *corpus.Store
	index  *index.VectorIndex
	logger *slog.Logger
}

// New creates a searcher over the given store and vector index
func New(store *corpus.Store, idx *index.VectorIndex, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{store: store, index: idx, logger: logger}
}

// Search ranks templates against a natural-language query. The first call
// triggers index initialization, which may block on a full corpus scan or
// provider calls; subsequent calls reuse the initialized state. Vector
// ranking is used iff the index reports vectors available; otherwise the
// lexical fallback handles every query in the session.
func (s *Searcher) Search(ctx context.Context, query string, filters types.Filters, limit int) ([]types.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if err := s.index.Init(ctx); err != nil {
		return nil, err
	}

	if s.index.VectorsAvailable() {
		return s.index.Rank(ctx, query, filters, limit)
	}
	return LexicalRank(s.index.Records(), query, filters, limit), nil
}

// ListTemplates returns lightweight summaries of every template passing the
// filters, in corpus scan order. Callers needing a stable display order must
// sort client-side.
func (s *Searcher) ListTemplates(filters types.Filters) ([]types.TemplateSummary, error) {
	records, err := s.store.List(filters)
	if err != nil {
		return nil, err
	}
	summaries := make([]types.TemplateSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, rec.Summary())
	}
	return summaries, nil
}

// GetTemplate fetches a single template by id, bypassing ranking. A missing
// template is corpus.ErrNotFound here, unlike scans: the caller supplied a
// specific id and must learn it does not resolve. includeExample=false strips
// the usage example block from the returned record.
func (s *Searcher) GetTemplate(id string, format types.ResponseFormat, includeExample bool) (*types.TemplateDetail, error) {
	rec, err := s.store.LoadRecord(id)
	if err != nil {
		return nil, err
	}

	detail := &types.TemplateDetail{ID: rec.ID}

	if format != types.FormatCodeOnly {
		// Copy before projecting so the cached record stays intact
		out := *rec
		if !includeExample {
			out.Usage.Example = ""
		}
		detail.Record = &out
	}

	if format != types.FormatMetadataOnly {
		code, err := s.store.LoadCode(id)
		if err != nil {
			return nil, err
		}
		detail.Code = code
	}

	return detail, nil
}
