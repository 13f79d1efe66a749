// find.go implements "seaside find", a text search over paths and
// descriptions. Use ls with a pattern to match path structure instead.

package catalog

import (
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/find"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newFindCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "find <text>",
		Short: "Search entry paths and descriptions",
		Long: `Search entry paths and descriptions for text, ignoring case.

Matches are listed in the order the entries were added.`,
		Example: `  seaside find compile
  seaside find classpath --path deps --no-paths
  seaside find -E "^deps\|(compile|runtime)$"`,
		Args: cobra.ExactArgs(1),
		RunE: e.runFind,
	}
	c.Flags().String(extension.FlagPath, "", "Scope search to a subtree")
	c.Flags().BoolP(extension.FlagPathsOnly, "l", false, "Only output paths")
	c.Flags().Bool(extension.FlagNoPaths, false, "Match descriptions only")
	c.Flags().BoolP(extension.FlagRegex, "E", false, "Treat text as a regular expression")
	return c
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	var opts find.Options
	if s, _ := c.Flags().GetString(extension.FlagPath); s != "" {
		p, err := parsePath(s)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("find: %w", err))
		}
		opts.Prefix = p
	}
	opts.PathsOnly, _ = c.Flags().GetBool(extension.FlagPathsOnly)
	opts.NoPaths, _ = c.Flags().GetBool(extension.FlagNoPaths)
	opts.Regex, _ = c.Flags().GetBool(extension.FlagRegex)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := find.Run(c.Context(), w, e.svc, args[0], opts)

	log.Event("catalog:find", "search").
		Author(cmd.Author()).
		Path(opts.Prefix.String()).
		Detail("query", args[0]).
		Count(len(result.Entries)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("find: %w", err))
	}
	if len(result.Entries) == 0 && !cmd.JSON() {
		fmt.Fprintln(cmd.Out(), "No matches")
	}
	return cmd.PrintJSON(result.ToJSON())
}
