// import.go implements "seaside import" and "seaside export".

package catalog

import (
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/exporter"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/importer"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/spf13/cobra"
)

func (e *Extension) newImportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "import <file|dir>",
		Short: "Import entries from YAML, TOML or text files",
		Long: `Import entries from a file, or every .yaml, .yml, .toml and .txt file
below a directory.

YAML and TOML files hold a list of entries:

  entries:
    - path: deps|compile
      description: Compile classpath

Text files hold one entry per line, with an optional tab-separated
description. Blank lines and lines starting with # are skipped.

Entries may appear in any order. Existing entries are kept; their
description is updated when the file gives a different one.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runImport,
	}
	c.Flags().Bool(extension.FlagDryRun, false, "Show what would be imported without importing")
	c.Flags().BoolP(extension.FlagParents, "p", false, "Create ancestors missing from both file and catalog")
	c.Flags().String(extension.FlagFormat, "", "File format: yaml, toml or text (default: by extension)")
	c.Flags().Bool(extension.FlagIncludeHidden, false, "Include hidden files and directories")
	return c
}

func (e *Extension) runImport(c *cobra.Command, args []string) error {
	opts := importer.Options{Author: cmd.Author(), Logger: cmd.Logger()}
	opts.DryRun, _ = c.Flags().GetBool(extension.FlagDryRun)
	opts.Parents, _ = c.Flags().GetBool(extension.FlagParents)
	opts.Hidden, _ = c.Flags().GetBool(extension.FlagIncludeHidden)
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

	result, err := importer.Run(c.Context(), w, e.svc, args[0], opts)

	log.Event("catalog:import", "import").
		Author(cmd.Author()).
		Count(result.Imported).
		Detail("source", args[0]).
		Detail("updated", result.Updated).
		Detail("dry_run", opts.DryRun).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("import: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"imported": result.Imported,
			"updated":  result.Updated,
			"skipped":  result.Skipped,
			"paths":    result.Paths,
			"dry_run":  opts.DryRun,
		})
	}
	fmt.Fprintf(w, "%d imported, %d updated, %d unchanged\n", result.Imported, result.Updated, result.Skipped)
	return nil
}

func (e *Extension) newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export [root]",
		Short: "Export entries to a file",
		Long: `Export a path and its descendants, or the whole catalog, in a format
"seaside import" reads back.

  seaside export                          # text to stdout
  seaside export deps -f deps.yaml        # format from the extension
  seaside export --format toml -f all.cfg`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runExport,
	}
	c.Flags().StringP(extension.FlagFile, "f", "", "Destination file (default: stdout)")
	c.Flags().String(extension.FlagFormat, "", "File format: yaml, toml or text (default: by extension)")
	return c
}

func (e *Extension) runExport(c *cobra.Command, args []string) error {
	var root tree.Path
	if len(args) > 0 {
		p, err := parsePath(args[0])
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("export: %w", err))
		}
		root = p
	}
	dst, _ := c.Flags().GetString(extension.FlagFile)

	opts := exporter.Options{Force: cmd.Force()}
	if f, _ := c.Flags().GetString(extension.FlagFormat); f != "" {
		var err error
		if opts.Format, err = importer.ParseFormat(f); err != nil {
			return cmd.PrintJSONError(err)
		}
	}

	// Entries written to stdout are the output; JSON only makes sense for
	// a file destination.
	w := cmd.Out()
	if cmd.JSON() && dst != "" {
		w = io.Discard
	}

	result, err := exporter.Run(c.Context(), w, e.svc, root, dst, opts)

	log.Event("catalog:export", "export").
		Author(cmd.Author()).
		Path(root.String()).
		Count(result.Exported).
		Detail("dest", dst).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("export: %w", err))
	}
	if dst != "" {
		return cmd.PrintJSON(result)
	}
	return nil
}
