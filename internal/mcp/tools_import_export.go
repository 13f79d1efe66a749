// tools_import_export.go implements MCP tools for moving entries between the
// catalog and entry files on disk.
//
// Import supports dry-run so an LLM can preview changes before applying them.

package mcp

import (
	"bytes"
	"context"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/exporter"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/importer"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/sync"
	"github.com/mark3labs/mcp-go/mcp"
)

// importEntries handles seaside_import tool calls.
func (h *handlers) importEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	author, err := req.RequireString("author")
	if err != nil {
		return mcp.NewToolResultError("author is required"), nil //nolint:nilerr
	}

	opts := importer.Options{
		DryRun:  getBool(req, "dry_run", false),
		Author:  author,
		Parents: getBool(req, "parents", false),
	}
	if f := getString(req, "format", ""); f != "" {
		if opts.Format, err = importer.ParseFormat(f); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	var buf bytes.Buffer
	result, err := importer.Run(ctx, &buf, h.svc, path, opts)

	log.Event("mcp:import", "import").Author(author).Count(result.Imported).Detail("source", path).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"imported": result.Imported,
		"updated":  result.Updated,
		"skipped":  result.Skipped,
		"paths":    result.Paths,
		"dry_run":  opts.DryRun,
	})
}

// exportEntries handles seaside_export tool calls.
func (h *handlers) exportEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	dest, err := req.RequireString("dest")
	if err != nil {
		return mcp.NewToolResultError("dest is required"), nil //nolint:nilerr
	}
	root, errResult := getPath(req, "path", false)
	if errResult != nil {
		return errResult, nil
	}

	opts := exporter.Options{Force: getBool(req, "force", false)}
	if f := getString(req, "format", ""); f != "" {
		if opts.Format, err = importer.ParseFormat(f); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	var buf bytes.Buffer
	result, err := exporter.Run(ctx, &buf, h.svc, root, dest, opts)

	log.Event("mcp:export", "export").Author("mcp").Path(root.String()).Count(result.Exported).Detail("dest", dest).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"exported": result.Exported,
		"file":     result.File,
	})
}

// syncEntries handles seaside_sync tool calls.
func (h *handlers) syncEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	author, err := req.RequireString("author")
	if err != nil {
		return mcp.NewToolResultError("author is required"), nil //nolint:nilerr
	}
	root, errResult := getPath(req, "root", false)
	if errResult != nil {
		return errResult, nil
	}

	opts := sync.Options{
		Root:    root,
		DryRun:  getBool(req, "dry_run", false),
		Author:  author,
		Parents: getBool(req, "parents", false),
	}
	if f := getString(req, "format", ""); f != "" {
		if opts.Format, err = importer.ParseFormat(f); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	var buf bytes.Buffer
	result, err := sync.Run(ctx, &buf, h.svc, path, opts)

	log.Event("mcp:sync", "sync").Author(author).Path(root.String()).Count(result.Imported+result.Removed).Detail("source", path).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}
