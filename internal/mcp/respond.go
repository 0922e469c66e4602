package mcp

import (
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/koopa0/medium-mcp/internal/medium"
)

// textResult builds a successful single-payload result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult renders any error as the stable single-line failure payload
// "Error (<Kind>): <message>". Errors that are not part of the taxonomy
// are classified UpstreamUnknown so nothing escapes this layer raw.
func errorResult(err error) *mcp.CallToolResult {
	var merr *medium.Error
	if !errors.As(err, &merr) {
		merr = medium.Errorf(medium.KindUpstreamUnknown, "%v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{
			Text: fmt.Sprintf("Error (%s): %s", merr.Kind, merr.Message),
		}},
		IsError: true,
	}
}

// invalidInput builds an InvalidInput failure payload.
func invalidInput(format string, args ...any) *mcp.CallToolResult {
	return errorResult(medium.Errorf(medium.KindInvalidInput, format, args...))
}
