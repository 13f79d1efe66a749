// tools_catalog.go implements MCP tools that change or list catalog entries.

package mcp

import (
	"context"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/find"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/ls"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// addEntry handles seaside_add tool calls.
func (h *handlers) addEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	p, errResult := getPath(req, "path", true)
	if errResult != nil {
		return errResult, nil
	}
	author, err := req.RequireString("author")
	if err != nil {
		return mcp.NewToolResultError("author is required"), nil //nolint:nilerr
	}

	created, err := h.svc.Add(ctx, p, getString(req, "description", ""), service.AddOptions{
		Author:  author,
		Parents: getBool(req, "parents", false),
	})

	log.Event("mcp:add", "add").Author(author).Path(p.String()).Count(len(created)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(entriesJSON(created))
}

// describeEntry handles seaside_describe tool calls.
func (h *handlers) describeEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	p, errResult := getPath(req, "path", true)
	if errResult != nil {
		return errResult, nil
	}
	desc, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description is required"), nil //nolint:nilerr
	}

	err = h.svc.Describe(ctx, p, desc)

	log.Event("mcp:describe", "describe").Author("mcp").Path(p.String()).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("described " + p.String()), nil
}

// removeEntry handles seaside_remove tool calls.
func (h *handlers) removeEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	p, errResult := getPath(req, "path", true)
	if errResult != nil {
		return errResult, nil
	}
	recursive := getBool(req, "recursive", false)

	n, err := h.svc.Remove(ctx, p, recursive)

	log.Event("mcp:remove", "remove").Author("mcp").Path(p.String()).Count(int(n)).Detail("recursive", recursive).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"path": p.String(), "removed": n})
}

// clearEntry handles seaside_clear tool calls.
func (h *handlers) clearEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	p, errResult := getPath(req, "path", true)
	if errResult != nil {
		return errResult, nil
	}

	n, err := h.svc.Clear(ctx, p)

	log.Event("mcp:clear", "clear").Author("mcp").Path(p.String()).Count(int(n)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"path": p.String(), "removed": n})
}

// listEntries handles seaside_list tool calls.
func (h *handlers) listEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	prefix, errResult := getPath(req, "prefix", false)
	if errResult != nil {
		return errResult, nil
	}

	entries, err := h.svc.List(ctx, prefix)
	if err == nil {
		entries, err = ls.Filter(entries, getString(req, "pattern", ""))
	}
	if err != nil {
		log.Event("mcp:list", "list").Author("mcp").Path(prefix.String()).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(entriesJSON(entries))
}

func entriesJSON(entries []store.Entry) []store.EntryJSON {
	out := make([]store.EntryJSON, len(entries))
	for i := range entries {
		out[i] = entries[i].ToJSON()
	}
	return out
}

// findEntries handles seaside_find tool calls.
func (h *handlers) findEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}
	prefix, errResult := getPath(req, "path", false)
	if errResult != nil {
		return errResult, nil
	}

	r, err := find.Run(ctx, io.Discard, h.svc, query, find.Options{
		Prefix:  prefix,
		NoPaths: getBool(req, "no_paths", false),
		Regex:   getBool(req, "regex", false),
	})

	log.Event("mcp:find", "search").Author("mcp").Path(prefix.String()).Detail("query", query).Count(len(r.Entries)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(r.ToJSON())
}
