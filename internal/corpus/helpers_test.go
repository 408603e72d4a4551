package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchkit/launchkit-mcp/pkg/types"
)

// newTestRecord builds a minimal valid record for the given id
func newTestRecord(t *testing.T, id string) *types.TemplateRecord {
	t.Helper()
	parsed, err := ParseID(id)
	require.NoError(t, err)
	return &types.TemplateRecord{
		ID:          id,
		Name:        strings.ReplaceAll(parsed.Name, "-", " "),
		Description: "Test template " + parsed.Name,
		Category:    types.Category(parsed.Category),
		Language:    parsed.Language,
		Framework:   parsed.Framework,
		Version:     "1.0.0",
		CreatedAt:   "2025-01-15",
		UpdatedAt:   "2025-03-02",
	}
}

// writeTemplate writes a record's metadata file into the corpus at root,
// applying mutate (if non-nil) first. Returns the template directory.
func writeTemplate(t *testing.T, root, id string, mutate func(*types.TemplateRecord)) string {
	t.Helper()
	rec := newTestRecord(t, id)
	if mutate != nil {
		mutate(rec)
	}
	parsed, err := ParseID(id)
	require.NoError(t, err)
	dir := parsed.Path(root)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	data, err := json.MarshalIndent(rec, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFile), data, 0o644))
	return dir
}

// writeCodeFiles populates the files/ directory of a template
func writeCodeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(dir, CodeDir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}
