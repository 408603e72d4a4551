package searcher

import (
	"sort"
	"strings"

	"github.com/launchkit/launchkit-mcp/pkg/types"
)

// LexicalRank scores templates by raw term overlap: the fraction of query
// tokens that appear as substrings of the template's searchable text. It is
// intentionally a cheap containment check rather than stemming or fuzzy
// matching; the corpus is tens of templates and queries are short sentences,
// where substring containment of individual words is a reasonable relevance
// proxy. Zero-score templates are excluded entirely, unlike the vector path.
func LexicalRank(records []*types.TemplateRecord, query string, filters types.Filters, limit int) []types.SearchResult {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	results := make([]types.SearchResult, 0, len(records))
	for _, rec := range records {
		if !filters.Matches(rec) {
			continue
		}
		text := strings.ToLower(rec.SearchableText())
		matched := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Score:       float64(matched) / float64(len(tokens)),
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
	return results
}
