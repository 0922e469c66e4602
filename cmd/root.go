// Package cmd wires configuration, the upstream client and the MCP server
// into the medium-mcp command line interface.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/koopa0/medium-mcp/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "medium-mcp",
	Short: "MCP server for Medium articles, users, feeds and search",
	Long: `medium-mcp exposes the Medium content platform to AI assistants
through the Model Context Protocol.

Running without arguments starts the server on stdio, ready to be
registered with Claude Desktop, Cursor, or any other MCP client.

Environment variables:
  RAPIDAPI_KEY              Required. RapidAPI key for the Medium API.
  MAX_ARTICLES_PER_REQUEST  Optional. Article cap per tool call (1-100, default 3).
  MEDIUM_BASE_URL           Optional. Override the upstream endpoint.
  REQUEST_TIMEOUT_SECONDS   Optional. Upstream timeout (1-300, default 30).
  DEBUG                     Optional. Any value enables debug logging.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initLogger builds the process logger. The DEBUG environment variable
// switches to debug level. Logs go to stderr; stdout belongs to MCP.
func initLogger() log.Logger {
	cfg := log.Config{Level: slog.LevelInfo}
	if os.Getenv("DEBUG") != "" {
		cfg.Level = slog.LevelDebug
	}
	return log.New(cfg)
}
