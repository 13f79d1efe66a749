// history.go implements "seaside history", the audit trail of this catalog.

package catalog

import (
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/history"
	"github.com/spf13/cobra"
)

func (e *Extension) newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history [path]",
		Short: "Show recent operations on the catalog",
		Long: `Show the audit trail of commands and MCP tool calls against this
catalog, newest first. With a path, only operations on that entry and its
descendants are shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runHistory,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum entries (0 for all)")
	c.Flags().Bool(extension.FlagFailed, false, "Only failed operations")
	return c
}

func (e *Extension) runHistory(c *cobra.Command, args []string) error {
	var opts history.Options
	if len(args) > 0 {
		p, err := parsePath(args[0])
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("history: %w", err))
		}
		opts.Path = p
	}
	opts.Limit, _ = c.Flags().GetInt(extension.FlagLimit)
	opts.Failed, _ = c.Flags().GetBool(extension.FlagFailed)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := history.Run(w, opts)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("history: %w", err))
	}
	if len(result.Entries) == 0 && !cmd.JSON() {
		fmt.Fprintln(cmd.Out(), "No history")
	}
	return cmd.PrintJSON(result.ToJSON())
}
