package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/koopa0/medium-mcp/internal/format"
)

// SearchArticlesInput defines the input schema for search_articles.
type SearchArticlesInput struct {
	Query string `json:"query" jsonschema:"Search query string"`
	Count int    `json:"count,omitempty" jsonschema:"Number of results to return (defaults to the configured maximum)"`
}

func (s *Server) registerSearchArticles() error {
	inputSchema, err := jsonschema.For[SearchArticlesInput](nil)
	if err != nil {
		return fmt.Errorf("input schema: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "search_articles",
		Description: "Search Medium articles by keyword. " +
			"Each result costs one extra upstream request to resolve its metadata.",
		InputSchema: inputSchema,
	}, s.SearchArticles)

	return nil
}

// SearchArticles handles the search_articles tool call.
func (s *Server) SearchArticles(ctx context.Context, _ *mcp.CallToolRequest, in SearchArticlesInput) (*mcp.CallToolResult, any, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return invalidInput("query is required"), nil, nil
	}
	count, merr := s.resolveCount(in.Count)
	if merr != nil {
		return errorResult(merr), nil, nil
	}

	s.logger.Info("search_articles", "query", query, "count", count)

	articles, err := s.client.SearchArticles(ctx, query, count)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return textResult(format.ArticleList(articles)), nil, nil
}
