package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"custview/internal/gateway"
	"custview/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const serverSubsystem = "MCPServer"

// NewServer builds an MCP server exposing the customer tools.
func NewServer(api gateway.API, version string) *server.MCPServer {
	if version == "" {
		version = "dev"
	}
	s := server.NewMCPServer(
		"custview",
		version,
		server.WithToolCapabilities(false),
	)
	s.AddTools(NewTools(api).ServerTools()...)
	return s
}

// ServeStdio serves s over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	logging.Info(serverSubsystem, "Serving MCP tools over stdio")
	return server.ServeStdio(s)
}

// ServeSSE serves s over HTTP server-sent events on addr until ctx ends.
func ServeSSE(ctx context.Context, s *server.MCPServer, addr string) error {
	sse := server.NewSSEServer(
		s,
		server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	errCh := make(chan error, 1)
	go func() {
		logging.Info(serverSubsystem, "Serving MCP tools over SSE on %s", addr)
		errCh <- sse.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sse.Shutdown(shutdownCtx); err != nil {
			logging.Error(serverSubsystem, err, "SSE shutdown failed")
			return err
		}
		return nil
	}
}
