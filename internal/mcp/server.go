// Package mcp exposes the flight lookup as a Model Context Protocol server
package mcp

import (
	"context"
	"io"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"

	"github.com/acme-air/flightinfo/internal/config"
)

// Server represents an MCP server that exposes the flight tools
type Server struct {
	server   *mcp.Server
	registry *ToolRegistry
	logger   *log.Logger
}

// NewServer creates a new MCP server. A nil cfg uses the built-in defaults.
func NewServer(cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, &mcp.ServerOptions{
		Instructions: cfg.Server.Instructions,
	})

	return &Server{
		server:   server,
		registry: NewToolRegistry(),
		logger:   logger,
	}
}

// Registry returns the tools this server exposes
func (s *Server) Registry() *ToolRegistry {
	return s.registry
}

// RegisterTools registers all tools with the MCP server
func (s *Server) RegisterTools() {
	tools := s.registry.ListTools()
	for _, tool := range tools {
		tool.Register(s.server)
	}
	s.logger.Printf("Registered %d tools", len(tools))
}

// Run serves on transport until the peer disconnects or ctx is done
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.logger.Printf("Serving MCP requests")
	err := s.server.Run(ctx, transport)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		s.logger.Printf("MCP session closed")
		return nil
	default:
		return errors.Wrap(err, "mcp server stopped")
	}
}

// Connect starts a single session on transport without blocking
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	session, err := s.server.Connect(ctx, transport)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect mcp session")
	}
	return session, nil
}
