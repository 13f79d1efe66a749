// Package report provides the extension for assembling and rendering trees.
// Registers commands: tree, leaves, height, roots, diff.
package report

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

// Extension implements the report extension.
type Extension struct {
	svc service.Service
	cfg *config.Config
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "report".
func (e *Extension) Name() string { return "report" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the tree reporting commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newTreeCmd(),
		e.newLeavesCmd(),
		e.newHeightCmd(),
		e.newRootsCmd(),
		e.newDiffCmd(),
	}
}

// MCPTools returns seaside_roots. The remaining report tools are provided
// by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{rootsTool()}
}

// order resolves the --order flag, falling back to report.order.
func (e *Extension) order(c *cobra.Command) (tree.Order, error) {
	name, _ := c.Flags().GetString(extension.FlagOrder)
	if name == "" {
		name = e.cfg.Order()
	}
	return tree.ParseOrder(name)
}

// trees assembles the subtree named by args, or every root.
func (e *Extension) trees(c *cobra.Command, args []string, order tree.Order) (tree.Path, []*tree.Node, error) {
	if len(args) == 0 {
		nodes, err := e.svc.Forest(c.Context(), order)
		return tree.Path{}, nodes, err
	}
	root, err := tree.ParsePath(args[0])
	if err != nil {
		return root, nil, fmt.Errorf("%q: %w", args[0], err)
	}
	n, err := e.svc.Tree(c.Context(), root, order)
	if err != nil {
		return root, nil, err
	}
	return root, []*tree.Node{n}, nil
}
