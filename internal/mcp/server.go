// ABOUTME: MCP server setup for the care tracker.
// ABOUTME: Tools are scoped to the currently authenticated user.
package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eccahealth/ecca/internal/auth"
	"github.com/eccahealth/ecca/internal/storage"
)

// errNotLoggedIn is returned by tools when no session is active.
var errNotLoggedIn = errors.New("not logged in: run 'ecca login' first")

// Server wraps the MCP server with storage and session access.
type Server struct {
	mcpServer *mcp.Server
	db        *storage.DB
	auth      *auth.Service
}

// NewServer creates a new MCP server over the given storage and session.
func NewServer(db *storage.DB, authSvc *auth.Service) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ecca",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		db:        db,
		auth:      authSvc,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// currentUser resolves the active session's user id.
func (s *Server) currentUser() (int64, error) {
	id, ok := s.auth.CurrentUserID()
	if !ok {
		return 0, errNotLoggedIn
	}
	return id, nil
}
