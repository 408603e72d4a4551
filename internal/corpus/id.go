package corpus

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Common errors
var (
	ErrInvalidIdentifier = errors.New("invalid template identifier")
	ErrNotFound          = errors.New("template not found")
	ErrInvalidRecord     = errors.New("invalid template record")
)

// Corpus layout conventions. External tooling depends on these names.
const (
	MetadataFile = "template.json"
	CodeDir      = "files"
	CodeFile     = "code.md"
	DocFile      = "README.md"
	segmentCount = 4
)

// segmentPattern is the only thing standing between a caller-supplied id and
// the filesystem. Rejecting anything outside it makes traversal segments
// (".", "..", absolute paths) unrepresentable.
var segmentPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ID is a parsed four-segment template identifier
type ID struct {
	Language  string
	Framework string
	Category  string
	Name      string
}

// String reassembles the canonical slash-joined form
func (id ID) String() string {
	return id.Language + "/" + id.Framework + "/" + id.Category + "/" + id.Name
}

// ParseID splits a template identifier into its four segments. It fails with
// ErrInvalidIdentifier unless exactly four non-empty segments are produced and
// every segment matches the safe-character pattern. This check must run
// before any filesystem access.
func ParseID(raw string) (ID, error) {
	segments := strings.Split(raw, "/")
	if len(segments) != segmentCount {
		return ID{}, fmt.Errorf("%w: %q must have exactly %d segments (language/framework/category/name)",
			ErrInvalidIdentifier, raw, segmentCount)
	}
	for _, seg := range segments {
		if !segmentPattern.MatchString(seg) {
			return ID{}, fmt.Errorf("%w: segment %q in %q contains disallowed characters",
				ErrInvalidIdentifier, seg, raw)
		}
	}
	return ID{
		Language:  segments[0],
		Framework: segments[1],
		Category:  segments[2],
		Name:      segments[3],
	}, nil
}

// Path joins the corpus root with the parsed segments. It performs no
// existence check; callers discover presence through the read itself.
func (id ID) Path(root string) string {
	return filepath.Join(root, id.Language, id.Framework, id.Category, id.Name)
}
