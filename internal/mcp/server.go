package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/dshills/fieldguide-mcp/internal/corpus"
	"github.com/dshills/fieldguide-mcp/internal/query"
)

const (
	// ServerName is the MCP server name
	ServerName = "fieldguide-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	engine *query.Engine
	logger *zap.Logger
}

// NewServer loads the bundled corpus and creates a new MCP server instance.
// A corrupt dataset fails here, before any query is accepted.
func NewServer(logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := corpus.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	logger.Info("corpus loaded",
		zap.Int("patterns", store.Len()),
		zap.String("dataset_version", store.Version()),
	)

	engine := query.New(store)

	// WithRecovery keeps a handler panic from taking down the process;
	// per-request failures must surface as structured errors instead.
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s := &Server{
		mcp:    mcpServer,
		engine: engine,
		logger: logger,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools. The tool table is static; the
// framework serves tools/list discovery from it.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchPatternsTool(), s.handleSearchPatterns)
	s.mcp.AddTool(getByCategoryTool(), s.handleGetByCategory)
	s.mcp.AddTool(getMistakesTool(), s.handleGetMistakes)
	s.mcp.AddTool(listCategoriesTool(), s.handleListCategories)
	s.mcp.AddTool(statsTool(), s.handleStats)
}
