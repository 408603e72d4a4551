package types

// Filters narrows search and listing to templates whose record matches every
// set field exactly. Unset fields match everything.
type Filters struct {
	Category  Category
	Language  string
	Framework string
}

// Matches reports whether the record passes the filter. Matching is done on
// the loaded record, never on raw path segments, so the authoritative
// metadata value always wins.
func (f Filters) Matches(r *TemplateRecord) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Language != "" && r.Language != f.Language {
		return false
	}
	if f.Framework != "" && r.Framework != f.Framework {
		return false
	}
	return true
}

// SearchResult is one ranked search entry: a denormalized projection of the
// matched record so callers never need a second lookup to display it.
type SearchResult struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Score       float64  `json:"score"`
	Category    Category `json:"category"`
	Language    string   `json:"language"`
	Framework   string   `json:"framework"`
}

// TemplateSummary is the lightweight listing projection
type TemplateSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Language    string   `json:"language"`
	Framework   string   `json:"framework"`
	Tags        []string `json:"tags,omitempty"`
	Version     string   `json:"version"`
}

// Summary projects a record to its listing shape
func (r *TemplateRecord) Summary() TemplateSummary {
	return TemplateSummary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Language:    r.Language,
		Framework:   r.Framework,
		Tags:        r.Tags,
		Version:     r.Version,
	}
}

// ResponseFormat selects the projection returned by a template fetch
type ResponseFormat string

const (
	FormatFull         ResponseFormat = "full"
	FormatCodeOnly     ResponseFormat = "code-only"
	FormatMetadataOnly ResponseFormat = "metadata-only"
)

// ValidFormat reports whether f is a known response format
func ValidFormat(f ResponseFormat) bool {
	switch f {
	case FormatFull, FormatCodeOnly, FormatMetadataOnly:
		return true
	}
	return false
}

// TemplateDetail is the result of a by-id fetch. Record is nil for code-only
// requests and Code is nil for metadata-only requests.
type TemplateDetail struct {
	ID     string           `json:"id"`
	Record *TemplateRecord  `json:"record,omitempty"`
	Code   TemplateCodeBody `json:"code,omitempty"`
}
