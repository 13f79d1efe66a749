// tools_init.go implements the MCP tool for initialising a new catalog.
//
// This tool works without an existing catalog. Other tools require
// initialisation first.

package mcp

import (
	"context"
	"log/slog"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/catalog"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// initCatalog handles seaside_init tool calls.
func (h *handlers) initCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	if h.svc != nil {
		return mcp.NewToolResultError("catalog already initialised"), nil
	}

	local := getBool(req, "local", false)

	err := catalog.Init(false, h.db, local, "")

	log.Event("mcp:init", "init").Author("mcp").Detail("local", local).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	svc, err := catalog.New(h.db)
	if err != nil {
		return mcp.NewToolResultError("init succeeded but failed to open catalog: " + err.Error()), nil
	}
	h.svc = svc

	slog.Info("catalog initialised", "local", local)

	if local {
		return mcp.NewToolResultText("catalog initialised (local - gitignored)"), nil
	}
	return mcp.NewToolResultText("catalog initialised"), nil
}
