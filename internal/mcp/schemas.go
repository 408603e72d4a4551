package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/launchkit/launchkit-mcp/internal/searcher"
	"github.com/launchkit/launchkit-mcp/pkg/types"
)

func categoryValues() []string {
	values := make([]string, len(types.Categories))
	for i, c := range types.Categories {
		values[i] = string(c)
	}
	return values
}

// searchTemplatesTool returns the tool definition for search_templates
func searchTemplatesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_templates",
		Description: "Search starter templates with a natural language query, optionally narrowed by language, framework or category",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural language description of what the template should do",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Filter by programming language (e.g. typescript, python)",
				},
				"framework": map[string]interface{}{
					"type":        "string",
					"description": "Filter by framework (e.g. nextjs, fastapi)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Filter by template category",
					"enum":        categoryValues(),
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-20)",
					"default":     searcher.DefaultLimit,
					"minimum":     1,
					"maximum":     searcher.MaxLimit,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getTemplateTool returns the tool definition for get_template
func getTemplateTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_template",
		Description: "Fetch a template by id, returning its metadata, code files, dependencies and setup instructions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"templateId": map[string]interface{}{
					"type":        "string",
					"description": "Template identifier in the form language/framework/category/name",
				},
				"includeExample": map[string]interface{}{
					"type":        "boolean",
					"description": "If false, omit the usage example block",
					"default":     true,
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Response projection",
					"enum":        []string{"full", "code-only", "metadata-only"},
					"default":     "full",
				},
			},
			Required: []string{"templateId"},
		},
	}
}

// listTemplatesTool returns the tool definition for list_templates
func listTemplatesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_templates",
		Description: "List available templates as lightweight summaries, optionally filtered by language, framework or category",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Filter by programming language",
				},
				"framework": map[string]interface{}{
					"type":        "string",
					"description": "Filter by framework",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Filter by template category",
					"enum":        categoryValues(),
				},
			},
		},
	}
}
