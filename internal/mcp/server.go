// ABOUTME: MCP server implementation for newsroom
// ABOUTME: Provides read-only tools, resources, and prompts over the persisted news and press collections

package mcp

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/storage"
)

// Server wraps the MCP server with newsroom-specific context
type Server struct {
	mcpServer *server.MCPServer
	store     storage.Store
	sources   []models.Source
	now       func() time.Time
}

// NewServer creates a new MCP server instance
func NewServer(store storage.Store, sources []models.Source) *Server {
	s := &Server{
		store:   store,
		sources: sources,
		now:     time.Now,
	}

	s.mcpServer = server.NewMCPServer(
		"newsroom",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) source(name string) (models.Source, error) {
	for _, src := range s.sources {
		if src.Name == name {
			return src, nil
		}
	}
	return models.Source{}, fmt.Errorf("unknown source %q (want %s or %s)", name, models.SourceNews, models.SourcePress)
}

// registerTools is implemented in tools.go
// registerResources is implemented in resources.go
// registerPrompts is implemented in prompts.go
