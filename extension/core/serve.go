// serve.go implements "seaside serve", which blocks handling MCP requests
// over stdio. The server opens the catalog itself so it can start before
// one exists.

package core

import (
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --db to serve a specific database:
  seaside serve --db plugins    # serve seaside-plugins.db`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.DB())
		},
	}
}
