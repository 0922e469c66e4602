// Package mcp exposes Medium read operations as MCP tools.
//
// Each tool handler follows the same sequence: validate and clamp the
// call's parameters, invoke the client adapter, render the result, respond.
// Validation failures never reach the adapter; adapter failures surface as
// a single-line "Error (<Kind>): <message>" payload with IsError set, so a
// calling assistant can detect failure from the prefix alone. A handler
// never returns a partial result and never lets an error escape raw.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/koopa0/medium-mcp/internal/log"
	"github.com/koopa0/medium-mcp/internal/medium"
)

// Config holds MCP server configuration.
type Config struct {
	Name    string
	Version string
	Logger  log.Logger

	// Client is the upstream adapter all tools call.
	Client medium.Client

	// MaxArticles caps the count parameter of every listing tool and is
	// the default when a call omits count.
	MaxArticles int
}

// Server wraps the MCP SDK server and the Medium client adapter.
type Server struct {
	mcpServer   *mcp.Server
	client      medium.Client
	logger      log.Logger
	maxArticles int
	name        string
	version     string
}

// NewServer creates an MCP server with all five Medium tools registered.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Client == nil {
		return nil, fmt.Errorf("medium client is required")
	}
	if cfg.MaxArticles < 1 {
		return nil, fmt.Errorf("max articles must be at least 1, got %d", cfg.MaxArticles)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	s := &Server{
		mcpServer:   mcpServer,
		client:      cfg.Client,
		logger:      cfg.Logger,
		maxArticles: cfg.MaxArticles,
		name:        cfg.Name,
		version:     cfg.Version,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server on the given transport. Blocks until the
// context is cancelled or the transport closes.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// registerTools registers every tool. Handlers live next to their input
// types in the per-tool files.
func (s *Server) registerTools() error {
	register := []struct {
		name string
		fn   func() error
	}{
		{"get_article_content", s.registerGetArticleContent},
		{"get_user_info", s.registerGetUserInfo},
		{"get_user_articles", s.registerGetUserArticles},
		{"get_top_feeds", s.registerGetTopFeeds},
		{"search_articles", s.registerSearchArticles},
	}

	for _, r := range register {
		if err := r.fn(); err != nil {
			return fmt.Errorf("register %s: %w", r.name, err)
		}
	}
	return nil
}

// resolveCount validates the count parameter. Zero means "not provided"
// and resolves to the configured maximum; anything outside [1, max] is
// rejected before any upstream call.
func (s *Server) resolveCount(count int) (int, *medium.Error) {
	if count == 0 {
		return s.maxArticles, nil
	}
	if count < 1 || count > s.maxArticles {
		return 0, medium.Errorf(medium.KindInvalidInput,
			"count must be between 1 and %d", s.maxArticles)
	}
	return count, nil
}
