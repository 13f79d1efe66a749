// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Optional parameters are extracted permissively: a missing or mistyped
// optional value falls back to its default instead of failing the call.

package mcp

import (
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if it is missing
// or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map.
// A string "true" is not accepted and yields def.
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getPath parses a path parameter. An absent optional path yields the zero
// Path; a malformed one yields an error result for the caller to return.
func getPath(req mcp.CallToolRequest, name string, required bool) (tree.Path, *mcp.CallToolResult) {
	s := getString(req, name, "")
	if s == "" {
		if required {
			return tree.Path{}, mcp.NewToolResultError(name + " is required")
		}
		return tree.Path{}, nil
	}
	p, err := tree.ParsePath(s)
	if err != nil {
		return tree.Path{}, mcp.NewToolResultError(err.Error())
	}
	return p, nil
}

// jsonResult serialises v as indented JSON and wraps it in a text result.
// Marshalling failures become error results, like every other tool failure.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := store.MarshalJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
