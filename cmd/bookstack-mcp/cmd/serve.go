package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/config"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/observability"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/server"
)

var (
	transport string
	host      string
	port      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the MCP server with the specified transport.

Available transports:
  stdio - Standard input/output (default, for Claude Desktop)
  http  - HTTP POST endpoint with per-request BookStack credentials

Examples:
  # Start with stdio transport (for Claude Desktop)
  bookstack-mcp serve

  # Start with HTTP transport on port 3000
  bookstack-mcp serve --transport http --port 3000

  # Start with custom config
  bookstack-mcp serve -c /path/to/config.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&transport, "transport", "t", "",
		"Transport protocol (stdio, http)")
	serveCmd.Flags().StringVar(&host, "host", "",
		"Host to bind to (overrides config, only for HTTP transport)")
	serveCmd.Flags().IntVar(&port, "port", 0,
		"Port to bind to (overrides config, only for HTTP transport)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Apply CLI overrides
	if transport != "" {
		cfg.Server.Transport = transport

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validating config: %w", err)
		}
	}

	if host != "" {
		cfg.Server.Host = host
	}

	if port != 0 {
		cfg.Server.Port = port
	}

	log.WithFields(logrus.Fields{
		"transport": cfg.Server.Transport,
		"bookstack": cfg.BookStack.URL,
	}).Info("Starting bookstack-mcp server")

	// Start observability service
	obsSvc := observability.NewService(log, cfg.Observability)
	if err := obsSvc.Start(ctx); err != nil {
		return fmt.Errorf("starting observability: %w", err)
	}

	defer func() {
		if stopErr := obsSvc.Stop(); stopErr != nil {
			log.WithError(stopErr).Error("Failed to stop observability service")
		}
	}()

	// Stdio serves one runtime for the process lifetime; HTTP builds a fresh
	// one per request and needs none up front.
	var runtime *server.Runtime
	if cfg.Server.Transport == server.TransportStdio {
		runtime = server.NewBuilder(log, cfg).Build()
	}

	svc := server.NewService(log, cfg, runtime)

	// Start the server (this blocks until context is cancelled)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("running server: %w", err)
	}

	log.Info("Shutting down...")

	return svc.Stop()
}
