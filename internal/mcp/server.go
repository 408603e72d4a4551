package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/launchkit/launchkit-mcp/internal/corpus"
	"github.com/launchkit/launchkit-mcp/internal/searcher"
)

const (
	// ServerName is the MCP server name
	ServerName = "launchkit-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	store    *corpus.Store
	searcher *searcher.Searcher
	logger   *slog.Logger
}

// NewServer creates an MCP server over an already-constructed store and
// searcher and registers the tool handlers.
func NewServer(store *corpus.Store, srch *searcher.Searcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		store:    store,
		searcher: srch,
		logger:   logger,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchTemplatesTool(), s.handleSearchTemplates)
	s.mcp.AddTool(getTemplateTool(), s.handleGetTemplate)
	s.mcp.AddTool(listTemplatesTool(), s.handleListTemplates)
}
