package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/launchkit/launchkit-mcp/internal/corpus"
	"github.com/launchkit/launchkit-mcp/internal/embedder"
	"github.com/launchkit/launchkit-mcp/internal/searcher"
	"github.com/launchkit/launchkit-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeTemplateNotFound = -32001 // Well-formed id with no template behind it
	ErrorCodeInvalidTemplate  = -32002 // Template metadata failed structural validation
	ErrorCodeEmbeddingFailed  = -32003 // Embedding provider call failed
)

// handleSearchTemplates handles the search_templates tool invocation
func (s *Server) handleSearchTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", searcher.DefaultLimit)
	if limit < 1 || limit > searcher.MaxLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, fmt.Sprintf("limit must be between 1 and %d", searcher.MaxLimit), map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	filters, mcpErr := parseFilters(args)
	if mcpErr != nil {
		return nil, mcpErr
	}

	results, err := s.searcher.Search(ctx, query, filters, limit)
	if err != nil {
		return nil, searchError(err)
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"results": results,
		"count":   len(results),
	})), nil
}

// handleGetTemplate handles the get_template tool invocation
func (s *Server) handleGetTemplate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	templateID, ok := args["templateId"].(string)
	if !ok || templateID == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "templateId parameter is required", map[string]interface{}{
			"param":  "templateId",
			"reason": "missing or empty",
		})
	}

	format := types.ResponseFormat(getStringDefault(args, "format", string(types.FormatFull)))
	if !types.ValidFormat(format) {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid format", map[string]interface{}{
			"param":   "format",
			"value":   string(format),
			"allowed": []string{"full", "code-only", "metadata-only"},
		})
	}

	includeExample := getBoolDefault(args, "includeExample", true)

	detail, err := s.searcher.GetTemplate(templateID, format, includeExample)
	if err != nil {
		switch {
		case errors.Is(err, corpus.ErrInvalidIdentifier):
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid template id", map[string]interface{}{
				"param":  "templateId",
				"reason": err.Error(),
			})
		case errors.Is(err, corpus.ErrNotFound):
			return nil, newMCPError(ErrorCodeTemplateNotFound, "template not found", map[string]interface{}{
				"templateId": templateID,
			})
		case errors.Is(err, corpus.ErrInvalidRecord):
			return nil, newMCPError(ErrorCodeInvalidTemplate, "template metadata is invalid", map[string]interface{}{
				"templateId": templateID,
				"reason":     err.Error(),
			})
		default:
			return nil, newMCPError(ErrorCodeInternalError, "failed to load template", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to encode template", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListTemplates handles the list_templates tool invocation
func (s *Server) handleListTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}

	filters, mcpErr := parseFilters(args)
	if mcpErr != nil {
		return nil, mcpErr
	}

	summaries, err := s.searcher.ListTemplates(filters)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list templates", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"templates": summaries,
		"count":     len(summaries),
	})), nil
}

// Helper functions

// parseFilters extracts the optional category/language/framework filter
// triple, validating the category against the closed enumeration.
func parseFilters(args map[string]interface{}) (types.Filters, error) {
	filters := types.Filters{
		Language:  getStringDefault(args, "language", ""),
		Framework: getStringDefault(args, "framework", ""),
	}
	if cat := getStringDefault(args, "category", ""); cat != "" {
		category := types.Category(cat)
		if !types.ValidCategory(category) {
			return types.Filters{}, newMCPError(ErrorCodeInvalidParams, "unknown category", map[string]interface{}{
				"param":   "category",
				"value":   cat,
				"allowed": categoryValues(),
			})
		}
		filters.Category = category
	}
	return filters, nil
}

// searchError maps a search failure to its MCP error code
func searchError(err error) error {
	if errors.Is(err, embedder.ErrProviderFailed) {
		return newMCPError(ErrorCodeEmbeddingFailed, "embedding provider failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value.
// JSON numbers arrive as float64.
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	switch val := args[key].(type) {
	case float64:
		return int(val)
	case int:
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok && val != "" {
		return val
	}
	return defaultValue
}
