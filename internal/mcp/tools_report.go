// tools_report.go implements MCP tools that assemble and render trees.
//
// Unset order and style parameters fall back to the report settings in
// config, so an LLM sees the same trees as the CLI.

package mcp

import (
	"context"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/diff"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/format"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// reportSettings resolves order and style from the request and config.
func reportSettings(req mcp.CallToolRequest) (tree.Order, format.TreeOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, format.TreeOptions{}, err
	}
	order, err := tree.ParseOrder(getString(req, "order", cfg.Order()))
	if err != nil {
		return nil, format.TreeOptions{}, err
	}
	opts := format.TreeOptions{
		Style:        format.Style(getString(req, "style", cfg.Style())),
		Descriptions: true,
	}
	return order, opts, nil
}

// trees assembles the subtree at root, or every root for the zero Path.
func (h *handlers) trees(ctx context.Context, root tree.Path, order tree.Order) ([]*tree.Node, error) {
	if root.IsZero() {
		return h.svc.Forest(ctx, order)
	}
	n, err := h.svc.Tree(ctx, root, order)
	if err != nil {
		return nil, err
	}
	return []*tree.Node{n}, nil
}

// renderTree handles seaside_tree tool calls.
func (h *handlers) renderTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	root, errResult := getPath(req, "path", false)
	if errResult != nil {
		return errResult, nil
	}
	order, opts, err := reportSettings(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	nodes, err := h.trees(ctx, root, order)

	log.Event("mcp:tree", "render").Author("mcp").Path(root.String()).Count(len(nodes)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	switch getString(req, "format", "text") {
	case "json":
		out := make([]report.NodeJSON, len(nodes))
		for i, n := range nodes {
			out[i] = report.ToJSON(n)
		}
		return jsonResult(out)
	case "markdown":
		for i, n := range nodes {
			if i > 0 {
				b.WriteByte('\n')
			}
			if err := format.Markdown(&b, n); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
	default:
		for _, n := range nodes {
			if err := format.Tree(&b, n, opts); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// leaves handles seaside_leaves tool calls.
func (h *handlers) leaves(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	root, errResult := getPath(req, "path", true)
	if errResult != nil {
		return errResult, nil
	}
	order, _, err := reportSettings(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n, err := h.svc.Tree(ctx, root, order)
	if err != nil {
		log.Event("mcp:leaves", "read").Author("mcp").Path(root.String()).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(report.LeavesJSON(n))
}

// height handles seaside_height tool calls.
func (h *handlers) height(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	root, errResult := getPath(req, "path", true)
	if errResult != nil {
		return errResult, nil
	}

	n, err := h.svc.Tree(ctx, root, nil)
	if err != nil {
		log.Event("mcp:height", "read").Author("mcp").Path(root.String()).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(report.Summary(n))
}

// diffTrees handles seaside_diff tool calls.
func (h *handlers) diffTrees(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	file, err := req.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError("file is required"), nil //nolint:nilerr
	}
	root, errResult := getPath(req, "path", false)
	if errResult != nil {
		return errResult, nil
	}

	r, err := diff.Sources(ctx, h.svc, root, file, getString(req, "other", ""), true)

	log.Event("mcp:diff", "diff").Author("mcp").Path(root.String()).Detail("file", file).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"old":     r.Old,
		"new":     r.New,
		"added":   r.Added,
		"removed": r.Removed,
		"diff":    r.Diff,
	})
}
