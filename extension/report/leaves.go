// leaves.go implements "seaside leaves" and "seaside height".

package report

import (
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/format"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	rpt "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/spf13/cobra"
)

func (e *Extension) newLeavesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "leaves [root]",
		Short: "List leaves with their depth",
		Long: `List every entry without children below a root, with its depth
relative to that root. A root with no children is its own leaf at depth 0.`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runLeaves,
	}
	c.Flags().String(extension.FlagOrder, "", "Sibling order: name or insertion")
	c.Flags().BoolP(extension.FlagDescriptions, "D", false, "Show descriptions")
	return c
}

func (e *Extension) runLeaves(c *cobra.Command, args []string) error {
	order, err := e.order(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	root, nodes, err := e.trees(c, args, order)

	log.Event("report:leaves", "read").Author(cmd.Author()).Path(root.String()).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("leaves: %w", err))
	}

	if cmd.JSON() {
		out := []rpt.LeafJSON{}
		for _, n := range nodes {
			out = append(out, rpt.LeavesJSON(n)...)
		}
		return cmd.PrintJSON(out)
	}

	descriptions := e.cfg.Descriptions()
	if c.Flags().Changed(extension.FlagDescriptions) {
		descriptions, _ = c.Flags().GetBool(extension.FlagDescriptions)
	}
	for _, n := range nodes {
		if err := format.Leaves(cmd.Out(), n.Leaves(), descriptions); err != nil {
			return err
		}
	}
	return nil
}

func (e *Extension) newHeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "height [root]",
		Short: "Print the height of a tree",
		Long: `Print the number of nodes on the longest path from a root down to a
leaf. A lone entry has height 1. Without a root, every top-level tree is
listed with its height.`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runHeight,
	}
}

func (e *Extension) runHeight(c *cobra.Command, args []string) error {
	root, nodes, err := e.trees(c, args, nil)

	log.Event("report:height", "read").Author(cmd.Author()).Path(root.String()).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("height: %w", err))
	}

	if cmd.JSON() {
		out := make([]rpt.SummaryJSON, len(nodes))
		for i, n := range nodes {
			out[i] = rpt.Summary(n)
		}
		if !root.IsZero() {
			return cmd.PrintJSON(out[0])
		}
		return cmd.PrintJSON(out)
	}

	if !root.IsZero() {
		fmt.Fprintln(cmd.Out(), nodes[0].Height())
		return nil
	}
	for _, n := range nodes {
		fmt.Fprintf(cmd.Out(), "%3d  %s\n", n.Height(), n.Path())
	}
	return nil
}
