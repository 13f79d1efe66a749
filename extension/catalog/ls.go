// ls.go implements "seaside ls", a flat listing of entries.

package catalog

import (
	"fmt"
	"io"
	"time"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/duration"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/glob"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/ls"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [prefix|pattern]",
		Short: "List entries",
		Long: `List entries in the order they were added, optionally limited to a
path and its descendants. Use "seaside tree" for a hierarchical view.

An argument containing *, ? or [ is a pattern matched against whole paths.
* and ? match within one segment; a ** segment matches any number of them.`,
		Example: `  seaside ls deps
  seaside ls "deps|*"
  seaside ls "**|compile" -l
  seaside ls --since 7d`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format with metadata")
	c.Flags().Bool(extension.FlagPathsOnly, false, "Print paths only")
	c.Flags().BoolP(extension.FlagSort, "s", false, "Sort by path instead of insertion order")
	c.Flags().BoolP(extension.FlagReverse, "R", false, "Reverse order")
	c.Flags().String(extension.FlagSince, "", "Only entries added within this age (12h, 7d, 4w, 3m)")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	var opts ls.Options
	switch {
	case len(args) > 0 && glob.IsPattern(args[0]):
		opts.Pattern = args[0]
	case len(args) > 0:
		p, err := parsePath(args[0])
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
		}
		opts.Prefix = p
	}
	if since, _ := c.Flags().GetString(extension.FlagSince); since != "" {
		d, err := duration.Parse(since)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
		}
		opts.Since = duration.Since(time.Now(), d)
	}
	opts.Long, _ = c.Flags().GetBool(extension.FlagLong)
	opts.Paths, _ = c.Flags().GetBool(extension.FlagPathsOnly)
	opts.Sorted, _ = c.Flags().GetBool(extension.FlagSort)
	opts.Reverse, _ = c.Flags().GetBool(extension.FlagReverse)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := ls.Run(c.Context(), w, e.svc, opts)

	log.Event("catalog:ls", "list").
		Author(cmd.Author()).
		Path(opts.Prefix.String()).
		Detail("pattern", opts.Pattern).
		Count(result.Count()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
	}
	return cmd.PrintJSON(result.ToJSON())
}
