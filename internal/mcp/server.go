// Package mcp implements the Model Context Protocol server, exposing the
// seaside catalog to LLMs. Assistants can add entries, render trees and
// compare catalogs through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/catalog"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/repo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNotInitialised is returned by tools when the catalog has not been initialised.
const ErrNotInitialised = "catalog not initialised - call seaside_init first"

// Serve starts the MCP server over stdio.
//
// The server starts even if no catalog exists so an LLM can call
// seaside_init. Tools that need a catalog return ErrNotInitialised until then.
func Serve(db string) error {
	// stdout is reserved for JSON-RPC
	slog.SetDefault(log.Diagnostic(os.Stderr, "seaside", false))

	h := &handlers{db: db}

	svc, err := catalog.New(db)
	if err != nil && !errors.Is(err, repo.ErrNotInitialised) {
		slog.Error("failed to open catalog", "error", err)
		return err
	}
	if err == nil {
		h.svc = svc
		defer svc.Close()
	} else {
		slog.Info("seaside not initialised, starting in uninitialised mode - call seaside_init to create a catalog")
	}

	s := newServer(h)

	slog.Info("seaside MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"seaside",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers with access to the catalog.
// svc is nil until the catalog has been initialised.
type handlers struct {
	db  string
	svc *catalog.Service
}

// requireInit returns an error result if the catalog is not initialised.
func (h *handlers) requireInit() *mcp.CallToolResult {
	if h.svc == nil {
		return mcp.NewToolResultError(ErrNotInitialised)
	}
	return nil
}

// registerResources adds URI-based access to rendered trees.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"seaside://tree/{path}",
			"Tree",
			mcp.WithTemplateDescription("Render the subtree rooted at a path"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		h.readTree,
	)
}

// registerTools exposes catalog operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("seaside_init",
			mcp.WithDescription("Initialise a new seaside catalog. Call this first if other tools return 'catalog not initialised'."),
			mcp.WithBoolean("local", mcp.Description("If true, database is gitignored (not committed to version control)")),
		),
		h.initCatalog,
	)

	s.AddTool(
		mcp.NewTool("seaside_add",
			mcp.WithDescription("Add an entry at a pipe-delimited path such as deps|compile|guava"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Entry path, segments joined by |")),
			mcp.WithString("description", mcp.Description("Display text (defaults to the path)")),
			mcp.WithString("author", mcp.Required(), mcp.Description("Author attribution")),
			mcp.WithBoolean("parents", mcp.Description("Create missing ancestor entries")),
		),
		h.addEntry,
	)

	s.AddTool(
		mcp.NewTool("seaside_describe",
			mcp.WithDescription("Replace the description of an existing entry"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Entry path")),
			mcp.WithString("description", mcp.Required(), mcp.Description("New description")),
		),
		h.describeEntry,
	)

	s.AddTool(
		mcp.NewTool("seaside_remove",
			mcp.WithDescription("Remove an entry"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Entry path")),
			mcp.WithBoolean("recursive", mcp.Description("Also remove every descendant")),
		),
		h.removeEntry,
	)

	s.AddTool(
		mcp.NewTool("seaside_clear",
			mcp.WithDescription("Remove every descendant of an entry, keeping the entry itself"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Entry path")),
		),
		h.clearEntry,
	)

	s.AddTool(
		mcp.NewTool("seaside_list",
			mcp.WithDescription("List entries in insertion order"),
			mcp.WithString("prefix", mcp.Description("Only list this path and its descendants")),
			mcp.WithString("pattern", mcp.Description("Glob over whole paths, e.g. 'deps|*' or '**|compile'")),
		),
		h.listEntries,
	)

	s.AddTool(
		mcp.NewTool("seaside_find",
			mcp.WithDescription("Search entry paths and descriptions for text, ignoring case"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Text to search for")),
			mcp.WithString("path", mcp.Description("Only search this subtree")),
			mcp.WithBoolean("no_paths", mcp.Description("Match descriptions only")),
			mcp.WithBoolean("regex", mcp.Description("Treat query as a regular expression")),
		),
		h.findEntries,
	)

	s.AddTool(
		mcp.NewTool("seaside_tree",
			mcp.WithDescription("Render the tree rooted at a path, or every root when path is empty"),
			mcp.WithString("path", mcp.Description("Root path")),
			mcp.WithString("order", mcp.Description("Sibling order: name or insertion (default from config)")),
			mcp.WithString("style", mcp.Description("Connector style: unicode or ascii")),
			mcp.WithString("format", mcp.Description("Output format: text, markdown or json")),
		),
		h.renderTree,
	)

	s.AddTool(
		mcp.NewTool("seaside_leaves",
			mcp.WithDescription("List the leaves below a path with their depth"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Root path")),
			mcp.WithString("order", mcp.Description("Sibling order: name or insertion (default from config)")),
		),
		h.leaves,
	)

	s.AddTool(
		mcp.NewTool("seaside_height",
			mcp.WithDescription("Report the height, node count and leaf count of a tree"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Root path")),
		),
		h.height,
	)

	s.AddTool(
		mcp.NewTool("seaside_diff",
			mcp.WithDescription("Compare the catalog with an entry file, or two entry files"),
			mcp.WithString("file", mcp.Required(), mcp.Description("Entry file to compare against")),
			mcp.WithString("other", mcp.Description("Second entry file; compares file with it instead of the catalog")),
			mcp.WithString("path", mcp.Description("Subtree to compare (default: everything)")),
		),
		h.diffTrees,
	)

	s.AddTool(
		mcp.NewTool("seaside_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (e.g. author.name, report.order, limits.max_depth) or empty for all")),
			mcp.WithString("scope", mcp.Description("local or global (default: the file in effect)")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("seaside_config_set",
			mcp.WithDescription("Set a configuration value"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
			mcp.WithString("scope", mcp.Description("local or global (default: the file in effect)")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("seaside_import",
			mcp.WithDescription("Import entries from a YAML, TOML or text file, or a directory of them"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path to import from")),
			mcp.WithString("author", mcp.Required(), mcp.Description("Author attribution")),
			mcp.WithString("format", mcp.Description("yaml, toml or text (default: by extension)")),
			mcp.WithBoolean("parents", mcp.Description("Create ancestors missing from file and catalog")),
			mcp.WithBoolean("dry_run", mcp.Description("Show what would be imported without importing")),
		),
		h.importEntries,
	)

	s.AddTool(
		mcp.NewTool("seaside_sync",
			mcp.WithDescription("Import a file, then remove entries under root that it does not list"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path to sync from")),
			mcp.WithString("author", mcp.Required(), mcp.Description("Author attribution")),
			mcp.WithString("root", mcp.Description("Only prune below this catalog path (default: whole catalog)")),
			mcp.WithString("format", mcp.Description("yaml, toml or text (default: by extension)")),
			mcp.WithBoolean("parents", mcp.Description("Create ancestors missing from file and catalog")),
			mcp.WithBoolean("dry_run", mcp.Description("Show what would change without changing it")),
		),
		h.syncEntries,
	)

	s.AddTool(
		mcp.NewTool("seaside_export",
			mcp.WithDescription("Export entries to a file"),
			mcp.WithString("dest", mcp.Required(), mcp.Description("Filesystem destination")),
			mcp.WithString("path", mcp.Description("Subtree to export (default: whole catalog)")),
			mcp.WithString("format", mcp.Description("yaml, toml or text (default: by extension)")),
			mcp.WithBoolean("force", mcp.Description("Overwrite an existing file")),
		),
		h.exportEntries,
	)

	s.AddTool(
		mcp.NewTool("seaside_guide",
			mcp.WithDescription("Get help/guide content for seaside commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'add', 'tree') or empty for index")),
		),
		h.getGuide,
	)

	for _, t := range extension.Tools() {
		s.AddTool(t.Tool, h.extensionHandler(t.Handler))
	}
}

// extensionHandler adapts an extension tool handler, handing it a Context
// built from the open catalog.
func (h *handlers) extensionHandler(fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := h.requireInit(); err != nil {
			return err, nil
		}
		cfg, err := config.Load()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return fn(ctx, extension.NewContext(h.svc, h.svc.DB(), cfg), req)
	}
}
