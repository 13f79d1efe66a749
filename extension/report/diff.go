// diff.go implements "seaside diff".

package report

import (
	"errors"
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/diff"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/spf13/cobra"
)

// ErrDiffers is returned with --exit-code when the two sides differ.
var ErrDiffers = errors.New("trees differ")

func (e *Extension) newDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <file> [other-file]",
		Short: "Compare the catalog with an entry file",
		Long: `Compare the stored trees with the trees in an entry file, or two entry
files with each other. Each node is shown by its full path, siblings in name
order. Files may omit intermediate entries.

  seaside diff plugins.yaml
  seaside diff plugins.yaml --path deps
  seaside diff old.txt new.txt -D`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runDiff,
	}
	c.Flags().String(extension.FlagPath, "", "Only compare this subtree")
	c.Flags().BoolP(extension.FlagDescriptions, "D", false, "Also compare descriptions")
	c.Flags().Bool(extension.FlagExitCode, false, "Exit with status 1 when the trees differ")
	return c
}

func (e *Extension) runDiff(c *cobra.Command, args []string) error {
	var root tree.Path
	if s, _ := c.Flags().GetString(extension.FlagPath); s != "" {
		p, err := tree.ParsePath(s)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("diff: %q: %w", s, err))
		}
		root = p
	}
	descriptions, _ := c.Flags().GetBool(extension.FlagDescriptions)
	exitCode, _ := c.Flags().GetBool(extension.FlagExitCode)

	other := ""
	if len(args) > 1 {
		other = args[1]
	}

	r, err := diff.Sources(c.Context(), e.svc, root, args[0], other, descriptions)

	log.Event("report:diff", "diff").
		Author(cmd.Author()).
		Path(root.String()).
		Detail("file", args[0]).
		Detail("added", r.Added).
		Detail("removed", r.Removed).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("diff: %w", err))
	}

	if cmd.JSON() {
		if err := cmd.PrintJSON(map[string]any{
			"old":     r.Old,
			"new":     r.New,
			"added":   r.Added,
			"removed": r.Removed,
			"diff":    r.Diff,
		}); err != nil {
			return err
		}
	} else if r.Changed() {
		fmt.Fprint(cmd.Out(), r.Format(cmd.Colour()))
	} else {
		fmt.Fprintln(cmd.Out(), "No differences")
	}

	if exitCode && r.Changed() {
		c.SilenceUsage = true
		c.SilenceErrors = true
		return ErrDiffers
	}
	return nil
}
