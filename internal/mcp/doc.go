// Package mcp exposes the template library over the Model Context Protocol.
//
// Three tools are registered for AI coding assistants:
//   - search_templates: rank templates against a natural-language query
//   - get_template: fetch one template by identifier
//   - list_templates: enumerate the corpus, optionally filtered
//
// Transport is stdio. stdout carries the JSON-RPC protocol, so all logging
// goes to stderr.
//
// # Tool: search_templates
//
//	Request:
//	{
//	  "name": "search_templates",
//	  "arguments": {
//	    "query": "google auth for nextjs",
//	    "category": "auth",
//	    "limit": 5
//	  }
//	}
//
//	Response:
//	{
//	  "results": [
//	    {
//	      "id": "typescript/nextjs/auth/nextauth-google",
//	      "name": "nextauth-google",
//	      "description": "NextAuth.js setup with Google sign-in",
//	      "score": 0.91,
//	      "category": "auth",
//	      "language": "typescript",
//	      "framework": "nextjs"
//	    }
//	  ],
//	  "count": 1
//	}
//
// # Tool: get_template
//
// templateId is required; format selects how much of the template is
// returned (full, code-only, metadata-only) and includeExample controls the
// usage example:
//
//	{
//	  "name": "get_template",
//	  "arguments": {
//	    "templateId": "typescript/nextjs/auth/nextauth-google",
//	    "format": "metadata-only",
//	    "includeExample": false
//	  }
//	}
//
// # Tool: list_templates
//
// Takes the same optional category, language and framework filters as
// search_templates and returns metadata summaries without code.
//
// # Error Handling
//
// Handlers return *MCPError with JSON-RPC style codes:
//
//	-32602  invalid params (bad arguments, malformed template id)
//	-32603  internal error
//	-32001  template not found
//	-32002  template metadata invalid
//	-32003  embedding provider failed
//
// A malformed identifier and a well-formed identifier that matches nothing
// map to different codes so clients can tell them apart.
package mcp
