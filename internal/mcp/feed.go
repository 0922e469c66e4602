package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/koopa0/medium-mcp/internal/format"
	"github.com/koopa0/medium-mcp/internal/medium"
)

// TopFeedsInput defines the input schema for get_top_feeds.
type TopFeedsInput struct {
	Tag   string `json:"tag" jsonschema:"Tag to fetch the trending feed for (e.g. programming, ai)"`
	Mode  string `json:"mode,omitempty" jsonschema:"Feed sort mode: hot, new, top, top_year, top_month, top_week, or top_all_time (default hot)"`
	Count int    `json:"count,omitempty" jsonschema:"Number of articles to return (defaults to the configured maximum)"`
}

func (s *Server) registerGetTopFeeds() error {
	inputSchema, err := jsonschema.For[TopFeedsInput](nil)
	if err != nil {
		return fmt.Errorf("input schema: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_top_feeds",
		Description: "Get trending Medium articles for a tag.",
		InputSchema: inputSchema,
	}, s.GetTopFeeds)

	return nil
}

// GetTopFeeds handles the get_top_feeds tool call.
func (s *Server) GetTopFeeds(ctx context.Context, _ *mcp.CallToolRequest, in TopFeedsInput) (*mcp.CallToolResult, any, error) {
	tag := strings.TrimSpace(in.Tag)
	if tag == "" {
		return invalidInput("tag is required"), nil, nil
	}

	mode := in.Mode
	if strings.TrimSpace(mode) == "" {
		mode = medium.DefaultFeedMode
	}
	normalized, ok := medium.NormalizeFeedMode(mode)
	if !ok {
		return invalidInput("unknown mode %q (must be one of: %s)",
			in.Mode, strings.Join(medium.FeedModes, ", ")), nil, nil
	}

	count, merr := s.resolveCount(in.Count)
	if merr != nil {
		return errorResult(merr), nil, nil
	}

	s.logger.Info("get_top_feeds", "tag", tag, "mode", normalized, "count", count)

	articles, err := s.client.TopFeeds(ctx, tag, normalized, count)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return textResult(format.ArticleList(articles)), nil, nil
}
