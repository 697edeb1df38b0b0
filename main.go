// Notion CMS MCP Server - A Model Context Protocol server for Notion CMS collections
// Provides read-only tools for listing, indexing and fetching content items
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/notion-cms-mcp-server/cms"
	"github.com/olgasafonova/notion-cms-mcp-server/internal/config"
	"github.com/olgasafonova/notion-cms-mcp-server/tools"
	"github.com/olgasafonova/notion-cms-mcp-server/tracing"
)

const (
	ServerName    = "notion-cms-mcp-server"
	ServerVersion = "1.0.0"
)

const instructionsHeader = `Notion CMS MCP Server provides read-only access to one content collection
(a Notion database published through the Notion CMS API).

Available tools:
`

const instructionsFooter = `
Configure via environment variables:
- NOTION_CMS_NAMESPACE: Account namespace (required)
- NOTION_CMS_API_PATH: Collection path, e.g. blog (required)
- NOTION_CMS_API_KEY: API key (optional)
- NOTION_CMS_BASE_URL: API origin override (optional)`

// serverInstructions lists the registered tools between the fixed header and footer.
func serverInstructions() string {
	return instructionsHeader + tools.Catalog() + instructionsFooter
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%s: %v", ServerName, err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Stdout carries the MCP protocol, so logs go to stderr
	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	client, err := cfg.NewClient(logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if cfg.MetricsAddr != "" {
		metricsServer := startMetricsServer(cfg.MetricsAddr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	server := newServer(client, logger)

	ccfg := client.Config()
	logger.Info("Starting Notion CMS MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", ccfg.BaseURL,
		"namespace", ccfg.Namespace,
		"api_path", ccfg.APIPath,
		"api_key_set", ccfg.APIKey != "",
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// newLogger returns a text logger on stderr at the given level.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newServer creates the MCP server with every tool registered.
func newServer(client *cms.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Instructions: serverInstructions(),
	})

	tools.NewHandlerRegistry(client, logger).RegisterAll(server)
	return server
}

// metricsHandler serves Prometheus metrics and a liveness check.
func metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func startMetricsServer(addr string, logger *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           metricsHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()
	return srv
}
