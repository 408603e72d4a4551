package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchkit/launchkit-mcp/internal/corpus"
	"github.com/launchkit/launchkit-mcp/internal/index"
	"github.com/launchkit/launchkit-mcp/internal/searcher"
	"github.com/launchkit/launchkit-mcp/pkg/types"
)

func writeTpl(t *testing.T, root, id string, tags []string, code map[string]string) {
	t.Helper()
	parsed, err := corpus.ParseID(id)
	require.NoError(t, err)
	dir := parsed.Path(root)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	rec := types.TemplateRecord{
		ID:          id,
		Name:        parsed.Name,
		Description: "Fixture " + parsed.Name,
		Category:    types.Category(parsed.Category),
		Language:    parsed.Language,
		Framework:   parsed.Framework,
		Tags:        tags,
		Version:     "1.0.0",
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, corpus.MetadataFile), data, 0o644))

	for path, content := range code {
		full := filepath.Join(dir, corpus.CodeDir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

// newTestServer builds a server over a fixture corpus without a provider, so
// searches exercise the lexical path.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()
	writeTpl(t, root, "typescript/nextjs/auth/nextauth-google",
		[]string{"auth", "nextauth", "google", "oauth"},
		map[string]string{"auth.ts": "export const auth = {}\n"})
	writeTpl(t, root, "typescript/nextjs/database/prisma-setup",
		[]string{"database", "prisma"}, nil)

	store := corpus.NewStore(root, nil)
	idx := index.New(store, nil, nil)
	return NewServer(store, searcher.New(store, idx, nil), nil)
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func assertMCPCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, code, mcpErr.Code)
}

func TestHandleSearchTemplates(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleSearchTemplates(context.Background(), callRequest(map[string]interface{}{
		"query": "google auth nextjs",
	}))
	require.NoError(t, err)

	var payload struct {
		Results []types.SearchResult `json:"results"`
		Count   int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	require.NotZero(t, payload.Count)
	assert.Equal(t, "typescript/nextjs/auth/nextauth-google", payload.Results[0].ID)
	assert.Greater(t, payload.Results[0].Score, 0.0)
}

func TestHandleSearchTemplatesValidation(t *testing.T) {
	s := newTestServer(t)

	t.Run("missing query", func(t *testing.T) {
		_, err := s.handleSearchTemplates(context.Background(), callRequest(map[string]interface{}{}))
		assertMCPCode(t, err, ErrorCodeInvalidParams)
	})

	t.Run("limit out of range", func(t *testing.T) {
		_, err := s.handleSearchTemplates(context.Background(), callRequest(map[string]interface{}{
			"query": "auth",
			"limit": float64(50),
		}))
		assertMCPCode(t, err, ErrorCodeInvalidParams)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := s.handleSearchTemplates(context.Background(), callRequest(map[string]interface{}{
			"query":    "auth",
			"category": "gaming",
		}))
		assertMCPCode(t, err, ErrorCodeInvalidParams)
	})
}

func TestHandleSearchTemplatesFilter(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleSearchTemplates(context.Background(), callRequest(map[string]interface{}{
		"query":    "setup",
		"category": "database",
	}))
	require.NoError(t, err)

	var payload struct {
		Results []types.SearchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	for _, r := range payload.Results {
		assert.Equal(t, types.CategoryDatabase, r.Category)
	}
}

func TestHandleGetTemplate(t *testing.T) {
	s := newTestServer(t)

	t.Run("full", func(t *testing.T) {
		res, err := s.handleGetTemplate(context.Background(), callRequest(map[string]interface{}{
			"templateId": "typescript/nextjs/auth/nextauth-google",
		}))
		require.NoError(t, err)

		var detail types.TemplateDetail
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &detail))
		require.NotNil(t, detail.Record)
		assert.NotEmpty(t, detail.Code)
	})

	t.Run("metadata-only", func(t *testing.T) {
		res, err := s.handleGetTemplate(context.Background(), callRequest(map[string]interface{}{
			"templateId": "typescript/nextjs/auth/nextauth-google",
			"format":     "metadata-only",
		}))
		require.NoError(t, err)

		var detail types.TemplateDetail
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &detail))
		require.NotNil(t, detail.Record)
		assert.Empty(t, detail.Code)
	})

	t.Run("code-only", func(t *testing.T) {
		res, err := s.handleGetTemplate(context.Background(), callRequest(map[string]interface{}{
			"templateId": "typescript/nextjs/auth/nextauth-google",
			"format":     "code-only",
		}))
		require.NoError(t, err)

		var detail types.TemplateDetail
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &detail))
		assert.Nil(t, detail.Record)
		assert.NotEmpty(t, detail.Code)
	})
}

// A nonexistent but well-formed id and a malformed id must map to
// distinguishable error codes.
func TestHandleGetTemplateErrorKinds(t *testing.T) {
	s := newTestServer(t)

	t.Run("not found", func(t *testing.T) {
		_, err := s.handleGetTemplate(context.Background(), callRequest(map[string]interface{}{
			"templateId": "typescript/nextjs/auth/no-such-template",
		}))
		assertMCPCode(t, err, ErrorCodeTemplateNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := s.handleGetTemplate(context.Background(), callRequest(map[string]interface{}{
			"templateId": "../../../etc/passwd",
		}))
		assertMCPCode(t, err, ErrorCodeInvalidParams)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := s.handleGetTemplate(context.Background(), callRequest(map[string]interface{}{
			"templateId": "typescript/nextjs/auth/nextauth-google",
			"format":     "yaml",
		}))
		assertMCPCode(t, err, ErrorCodeInvalidParams)
	})
}

func TestHandleListTemplates(t *testing.T) {
	s := newTestServer(t)

	t.Run("all", func(t *testing.T) {
		res, err := s.handleListTemplates(context.Background(), callRequest(map[string]interface{}{}))
		require.NoError(t, err)

		var payload struct {
			Templates []types.TemplateSummary `json:"templates"`
			Count     int                     `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
		assert.Equal(t, 2, payload.Count)
	})

	t.Run("filtered", func(t *testing.T) {
		res, err := s.handleListTemplates(context.Background(), callRequest(map[string]interface{}{
			"category": "auth",
		}))
		require.NoError(t, err)

		var payload struct {
			Templates []types.TemplateSummary `json:"templates"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
		require.Len(t, payload.Templates, 1)
		assert.Equal(t, "typescript/nextjs/auth/nextauth-google", payload.Templates[0].ID)
	})
}

func TestMCPErrorString(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "invalid params", nil)
	assert.Equal(t, "MCP error -32602: invalid params", err.Error())
}
