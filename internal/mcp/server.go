// ABOUTME: MCP server setup for the fitness tracker.
// ABOUTME: Wraps the MCP server around the tracker service.
package mcp

import (
	"context"

	"github.com/harperreed/fitpace/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	svc       *tracker.Service
}

// NewServer creates a new MCP server around a tracker service.
func NewServer(svc *tracker.Service) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitpace",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
