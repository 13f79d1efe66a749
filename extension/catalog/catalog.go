// Package catalog provides the extension for editing and listing entries.
// Registers commands: add, describe, rm, clear, ls, find, import,
// export, sync, vacuum, history.
//
// Each command file isolates its own flag handling and output formatting;
// the work itself lives in the internal packages.

package catalog

import (
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the catalog extension.
type Extension struct {
	svc service.Service
	cfg *config.Config
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "catalog".
func (e *Extension) Name() string { return "catalog" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the entry editing commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newAddCmd(),
		e.newDescribeCmd(),
		e.newRmCmd(),
		e.newClearCmd(),
		e.newLsCmd(),
		e.newFindCmd(),
		e.newImportCmd(),
		e.newExportCmd(),
		e.newSyncCmd(),
		e.newVacuumCmd(),
		e.newHistoryCmd(),
	}
}

// MCPTools returns nil. Catalog tools are provided by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// parsePath parses a command argument, naming it in the error.
func parsePath(arg string) (tree.Path, error) {
	p, err := tree.ParsePath(arg)
	if err != nil {
		return tree.Path{}, fmt.Errorf("%q: %w", arg, err)
	}
	return p, nil
}
