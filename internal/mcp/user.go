package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/koopa0/medium-mcp/internal/format"
)

// UserInfoInput defines the input schema for get_user_info.
type UserInfoInput struct {
	Username string `json:"username" jsonschema:"Medium username, without the @ prefix"`
}

// UserArticlesInput defines the input schema for get_user_articles.
type UserArticlesInput struct {
	Username string `json:"username" jsonschema:"Medium username, without the @ prefix"`
	Count    int    `json:"count,omitempty" jsonschema:"Number of articles to return (defaults to the configured maximum)"`
}

func (s *Server) registerGetUserInfo() error {
	inputSchema, err := jsonschema.For[UserInfoInput](nil)
	if err != nil {
		return fmt.Errorf("input schema: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_user_info",
		Description: "Get detailed profile information about a Medium user.",
		InputSchema: inputSchema,
	}, s.GetUserInfo)

	return nil
}

func (s *Server) registerGetUserArticles() error {
	inputSchema, err := jsonschema.For[UserArticlesInput](nil)
	if err != nil {
		return fmt.Errorf("input schema: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "get_user_articles",
		Description: "List articles written by a Medium user. " +
			"WARNING: upstream cost scales with the author's total published articles, " +
			"not with count - the user's full article index is enumerated before truncation.",
		InputSchema: inputSchema,
	}, s.GetUserArticles)

	return nil
}

// GetUserInfo handles the get_user_info tool call.
func (s *Server) GetUserInfo(ctx context.Context, _ *mcp.CallToolRequest, in UserInfoInput) (*mcp.CallToolResult, any, error) {
	username := normalizeUsername(in.Username)
	if username == "" {
		return invalidInput("username is required"), nil, nil
	}

	s.logger.Info("get_user_info", "username", username)

	user, err := s.client.User(ctx, username)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return textResult(format.UserProfile(user)), nil, nil
}

// GetUserArticles handles the get_user_articles tool call.
func (s *Server) GetUserArticles(ctx context.Context, _ *mcp.CallToolRequest, in UserArticlesInput) (*mcp.CallToolResult, any, error) {
	username := normalizeUsername(in.Username)
	if username == "" {
		return invalidInput("username is required"), nil, nil
	}
	count, merr := s.resolveCount(in.Count)
	if merr != nil {
		return errorResult(merr), nil, nil
	}

	s.logger.Info("get_user_articles", "username", username, "count", count)

	articles, err := s.client.UserArticles(ctx, username, count)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return textResult(format.ArticleList(articles)), nil, nil
}

// normalizeUsername trims whitespace and a leading @.
func normalizeUsername(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
