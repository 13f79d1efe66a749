// Package extension provides the plugin architecture for seaside. Extensions
// bundle related commands and MCP tools and register at init time.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for seaside extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their first
// command runs.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Storeless is an optional interface for extensions with commands that do
// not need an open catalog. Commands returned by NoStoreCommands skip the
// shared service and manage any database access themselves.
type Storeless interface {
	NoStoreCommands() []string
}
