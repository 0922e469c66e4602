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

// ArticleContentInput defines the input schema for get_article_content.
type ArticleContentInput struct {
	ArticleID string `json:"article_id" jsonschema:"Unique Medium article ID - the hex suffix of the article URL (e.g. 6cda0e7c6dca)"`
	Format    string `json:"format,omitempty" jsonschema:"Content format: text, html, or markdown (default markdown)"`
}

func (s *Server) registerGetArticleContent() error {
	inputSchema, err := jsonschema.For[ArticleContentInput](nil)
	if err != nil {
		return fmt.Errorf("input schema: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "get_article_content",
		Description: "Get the full content of a Medium article, including member-only stories. " +
			"The article ID is the hex string at the end of the article URL.",
		InputSchema: inputSchema,
	}, s.GetArticleContent)

	return nil
}

// GetArticleContent handles the get_article_content tool call.
func (s *Server) GetArticleContent(ctx context.Context, _ *mcp.CallToolRequest, in ArticleContentInput) (*mcp.CallToolResult, any, error) {
	articleID := strings.TrimSpace(in.ArticleID)
	if articleID == "" {
		return invalidInput("article_id is required"), nil, nil
	}
	f, err := format.ParseFormat(in.Format)
	if err != nil {
		return invalidInput("%v", err), nil, nil
	}

	s.logger.Info("get_article_content", "article_id", articleID, "format", f)

	article, err := s.client.ArticleContent(ctx, articleID)
	if err != nil {
		return errorResult(err), nil, nil
	}

	body, err := format.RenderBody(article.BodyHTML, f)
	if err != nil {
		return errorResult(medium.Errorf(medium.KindUpstreamUnknown,
			"rendering article body: %v", err)), nil, nil
	}

	return textResult(format.Article(article, body, f)), nil, nil
}
