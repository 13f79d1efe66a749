// sync.go implements "seaside sync", import plus removal of entries the
// file no longer lists.

package catalog

import (
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/importer"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/sync"
	"github.com/spf13/cobra"
)

func (e *Extension) newSyncCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sync <file|dir>",
		Short: "Make the catalog match an entry file",
		Long: `Import entries like "seaside import", then remove every entry under
--path (default: the whole catalog) that the file does not list. Ancestors
of listed entries are kept. Run with --dry-run first.`,
		Example: `  seaside sync deps.yaml --path deps --dry-run
  seaside sync deps.yaml --path deps`,
		Args: cobra.ExactArgs(1),
		RunE: e.runSync,
	}
	c.Flags().String(extension.FlagPath, "", "Only prune below this path")
	c.Flags().Bool(extension.FlagDryRun, false, "Show what would change without changing it")
	c.Flags().BoolP(extension.FlagParents, "p", false, "Create ancestors missing from both file and catalog")
	c.Flags().String(extension.FlagFormat, "", "File format: yaml, toml or text (default: by extension)")
	return c
}

func (e *Extension) runSync(c *cobra.Command, args []string) error {
	opts := sync.Options{Author: cmd.Author(), Logger: cmd.Logger()}
	if s, _ := c.Flags().GetString(extension.FlagPath); s != "" {
		p, err := parsePath(s)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("sync: %w", err))
		}
		opts.Root = p
	}
	opts.DryRun, _ = c.Flags().GetBool(extension.FlagDryRun)
	opts.Parents, _ = c.Flags().GetBool(extension.FlagParents)
	if f, _ := c.Flags().GetString(extension.FlagFormat); f != "" {
		var err error
		if opts.Format, err = importer.ParseFormat(f); err != nil {
			return cmd.PrintJSONError(err)
		}
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := sync.Run(c.Context(), w, e.svc, args[0], opts)

	log.Event("catalog:sync", "sync").
		Author(cmd.Author()).
		Path(opts.Root.String()).
		Count(result.Imported+result.Removed).
		Detail("source", args[0]).
		Detail("removed", result.Removed).
		Detail("dry_run", opts.DryRun).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("sync: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(result)
	}
	fmt.Fprintf(w, "%d imported, %d updated, %d removed\n", result.Imported, result.Updated, result.Removed)
	return nil
}
