// tools_guide.go serves the embedded guide pages to MCP clients.

package mcp

import (
	"context"
	"errors"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/guide"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles seaside_guide tool calls. An unknown topic is not a tool
// error: the client gets the topic list so it can retry.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if errors.Is(err, guide.ErrUnknownTopic) {
		topics, listErr := guide.Topics()
		if listErr != nil {
			return mcp.NewToolResultError(listErr.Error()), nil
		}
		return jsonResult(map[string]any{
			"error":  err.Error(),
			"topics": topics,
		})
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}
