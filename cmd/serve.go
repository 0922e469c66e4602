package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	mcpSDK "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/koopa0/medium-mcp/internal/config"
	"github.com/koopa0/medium-mcp/internal/mcp"
	"github.com/koopa0/medium-mcp/internal/medium"
)

const serverName = "medium-mcp"

// runServe initializes and starts the MCP server on stdio transport.
// A missing or invalid configuration refuses to start the server rather
// than starting and failing every tool call.
func runServe(ctx context.Context) error {
	logger := initLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := medium.NewHTTPClient(medium.ClientConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:  logger.With("component", "medium"),
	})
	if err != nil {
		return fmt.Errorf("creating medium client: %w", err)
	}

	server, err := mcp.NewServer(mcp.Config{
		Name:        serverName,
		Version:     Version,
		Logger:      logger.With("component", "mcp"),
		Client:      client,
		MaxArticles: cfg.MaxArticles,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	logger.Info("MCP server ready",
		"name", serverName, "version", Version,
		"transport", "stdio", "max_articles", cfg.MaxArticles)

	if err := server.Run(ctx, &mcpSDK.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	logger.Info("MCP server shut down gracefully")
	return nil
}
