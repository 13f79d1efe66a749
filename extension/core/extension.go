// Package core provides the core extension for seaside.
// It registers commands: init, config, serve, guide, db, version.
package core

import (
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Storeless = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the repository management commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newDBCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil. The MCP server registers its own tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoStoreCommands returns commands that manage their own service lifecycle.
// serve opens the catalog itself so it can start uninitialised; db and
// version never touch a database.
func (e *Extension) NoStoreCommands() []string {
	return []string{"serve", "db", "version"}
}
