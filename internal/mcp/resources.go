// resources.go implements MCP resource handlers for tree access.
//
// Resources give clients read-only access to rendered trees without calling
// a tool. URIs follow seaside://tree/{path}, where path uses the catalog's
// | delimiter and may be percent-encoded.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/format"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyPath indicates a missing tree path in a resource URI.
	ErrEmptyPath = errors.New("empty tree path")
)

const treeURIPrefix = "seaside://tree/"

// readTree handles seaside://tree/{path} resource requests.
func (h *handlers) readTree(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.svc == nil {
		return nil, errors.New(ErrNotInitialised)
	}

	uri := req.Params.URI
	p, err := parseTreeURI(uri)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	order, err := tree.ParseOrder(cfg.Order())
	if err != nil {
		return nil, err
	}

	n, err := h.svc.Tree(ctx, p, order)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	if err := format.Tree(&b, n, format.TreeOptions{Style: format.Style(cfg.Style()), Descriptions: true}); err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     b.String(),
		},
	}, nil
}

// parseTreeURI extracts the tree path from seaside://tree/{path}.
func parseTreeURI(uri string) (tree.Path, error) {
	if !strings.HasPrefix(uri, treeURIPrefix) {
		return tree.Path{}, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest, err := url.PathUnescape(strings.TrimPrefix(uri, treeURIPrefix))
	if err != nil {
		return tree.Path{}, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if rest == "" {
		return tree.Path{}, ErrEmptyPath
	}
	return tree.ParsePath(rest)
}
