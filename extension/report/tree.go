// tree.go implements "seaside tree".

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/format"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	rpt "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/spf13/cobra"
)

func (e *Extension) newTreeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tree [root]",
		Short: "Render entries as a tree",
		Long: `Render the tree rooted at a path, or one tree per top-level entry.

  seaside tree
  seaside tree deps --ascii
  seaside tree deps --order insertion -D
  seaside tree deps --markdown

Sibling order and connector style default to report.order and report.style.`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runTree,
	}
	c.Flags().String(extension.FlagOrder, "", "Sibling order: name or insertion")
	c.Flags().Bool(extension.FlagASCII, false, "Use ASCII connectors")
	c.Flags().BoolP(extension.FlagDescriptions, "D", false, "Show descriptions")
	c.Flags().Bool(extension.FlagMarkdown, false, "Render as a markdown list")
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without rendering")
	return c
}

func (e *Extension) runTree(c *cobra.Command, args []string) error {
	order, err := e.order(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	root, nodes, err := e.trees(c, args, order)

	log.Event("report:tree", "render").
		Author(cmd.Author()).
		Path(root.String()).
		Count(len(nodes)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("tree: %w", err))
	}

	if cmd.JSON() {
		out := make([]rpt.NodeJSON, len(nodes))
		for i, n := range nodes {
			out[i] = rpt.ToJSON(n)
		}
		if !root.IsZero() {
			return cmd.PrintJSON(out[0])
		}
		return cmd.PrintJSON(out)
	}

	if md, _ := c.Flags().GetBool(extension.FlagMarkdown); md {
		raw, _ := c.Flags().GetBool(extension.FlagRaw)
		var b strings.Builder
		for i, n := range nodes {
			if i > 0 {
				b.WriteByte('\n')
			}
			if err := format.Markdown(&b, n); err != nil {
				return err
			}
		}
		return cmd.PrintMarkdown(b.String(), raw)
	}

	opts := format.TreeOptions{
		Style:        format.Style(e.cfg.Style()),
		Descriptions: e.cfg.Descriptions(),
		Colour:       cmd.Colour(),
	}
	if ascii, _ := c.Flags().GetBool(extension.FlagASCII); ascii {
		opts.Style = format.Style(config.StyleASCII)
	}
	if c.Flags().Changed(extension.FlagDescriptions) {
		opts.Descriptions, _ = c.Flags().GetBool(extension.FlagDescriptions)
	}
	return renderAll(cmd.Out(), nodes, opts)
}

func renderAll(w io.Writer, nodes []*tree.Node, opts format.TreeOptions) error {
	for _, n := range nodes {
		if err := format.Tree(w, n, opts); err != nil {
			return err
		}
	}
	return nil
}
