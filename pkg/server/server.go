// Package server provides the MCP server implementation for bookstack-mcp.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/internal/version"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/config"
)

// Transport constants.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Service is the main MCP server service.
type Service interface {
	// Start initializes and starts the MCP server.
	Start(ctx context.Context) error
	// Stop gracefully shuts down the server.
	Stop() error
}

// service implements the Service interface.
type service struct {
	log        logrus.FieldLogger
	cfg        *config.Config
	runtime    *Runtime
	httpServer *http.Server
	mu         sync.Mutex
	done       chan struct{}
	running    bool
}

// NewService creates a new MCP server service. The runtime may be nil in HTTP
// transport mode, where every inbound request builds its own.
func NewService(log logrus.FieldLogger, cfg *config.Config, runtime *Runtime) Service {
	return &service{
		log:     log.WithField("component", "server"),
		cfg:     cfg,
		runtime: runtime,
		done:    make(chan struct{}),
	}
}

// Start initializes and starts the MCP server.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()

		return errors.New("server already running")
	}

	s.running = true
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"transport": s.cfg.Server.Transport,
		"version":   version.Version,
	}).Info("Starting MCP server")

	switch s.cfg.Server.Transport {
	case TransportStdio:
		return s.runStdio(ctx)
	case TransportHTTP:
		return s.runHTTP(ctx)
	default:
		return fmt.Errorf("unknown transport: %s", s.cfg.Server.Transport)
	}
}

// Stop gracefully shuts down the server. Shutdown is best-effort: failures
// are logged, not returned, and in-flight handler invocations are not
// cancelled.
func (s *service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	s.log.Info("Stopping MCP server")

	close(s.done)
	s.running = false

	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Error("Failed to shutdown HTTP server")
		}
	}

	s.log.Info("MCP server stopped")

	return nil
}

// newMCPServer creates an MCP protocol server wired to a runtime's
// dispatcher.
func newMCPServer(runtime *Runtime) *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer(
		"bookstack-mcp",
		version.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(true, true),
		mcpserver.WithLogging(),
	)

	registerTools(srv, runtime)
	registerResources(srv, runtime)

	return srv
}

// registerTools registers all tools with the MCP server, routing calls
// through the dispatcher.
func registerTools(srv *mcpserver.MCPServer, runtime *Runtime) {
	for _, def := range runtime.Tools.Definitions() {
		name := def.Tool.Name

		srv.AddTool(def.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return runtime.Dispatcher.CallTool(ctx, name, req.GetArguments())
		})
	}
}

// registerResources registers all resources with the MCP server, routing
// reads through the dispatcher. The dispatcher resolves every read against
// the registry's single ordered pattern list, so exact and templated entries
// share one matching pass.
func registerResources(srv *mcpserver.MCPServer, runtime *Runtime) {
	readHandler := func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return runtime.Dispatcher.ReadResource(ctx, req.Params.URI)
	}

	for _, res := range runtime.Resources.ListStatic() {
		srv.AddResource(res, readHandler)
	}

	for _, tmpl := range runtime.Resources.ListTemplates() {
		srv.AddResourceTemplate(tmpl, readHandler)
	}
}

// runStdio runs the server using stdio transport. Exactly one runtime lives
// for the process lifetime.
func (s *service) runStdio(ctx context.Context) error {
	s.log.Info("Running MCP server with stdio transport")

	errCh := make(chan error, 1)

	go func() {
		errCh <- mcpserver.ServeStdio(newMCPServer(s.runtime))
	}()

	select {
	case <-ctx.Done():
		return nil
	case <-s.done:
		return nil
	case err := <-errCh:
		return err
	}
}

// Compile-time interface compliance check.
var _ Service = (*service)(nil)
