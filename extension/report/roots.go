package report

import (
	"context"
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	rpt "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

// summaries assembles each root in insertion order and summarises it.
func summaries(ctx context.Context, svc service.Service) ([]rpt.SummaryJSON, error) {
	roots, err := svc.Roots(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]rpt.SummaryJSON, 0, len(roots))
	for _, p := range roots {
		n, err := svc.Tree(ctx, p, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, rpt.Summary(n))
	}
	return out, nil
}

func (e *Extension) newRootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List top-level entries with their height and size",
		Long: `List every top-level entry in insertion order, with the height of its
tree, the number of nodes and the number of leaves.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			sums, err := summaries(c.Context(), e.svc)
			if err != nil {
				return err
			}
			if cmd.JSON() {
				return cmd.PrintJSON(sums)
			}
			for _, s := range sums {
				fmt.Fprintf(cmd.Out(), "%s\theight %d\tnodes %d\tleaves %d\n", s.Root, s.Height, s.Nodes, s.Leaves)
			}
			return nil
		},
	}
}

func rootsTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("seaside_roots",
			mcp.WithDescription("List top-level entries with height, node and leaf counts"),
		),
		Handler: func(ctx context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			sums, err := summaries(ctx, extCtx.Service())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			b, err := store.MarshalJSON(sums)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(b)), nil
		},
	}
}
