// rm.go implements "seaside rm" and "seaside clear".

package catalog

import (
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/rm"
	"github.com/spf13/cobra"
)

func (e *Extension) newRmCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "rm <path>",
		Short: "Remove an entry",
		Long: `Remove an entry permanently.

An entry with children is only removed with -r, which also removes every
descendant. Use "seaside clear" to keep the entry and drop its subtree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			recursive, _ := c.Flags().GetBool(extension.FlagRecursive)
			return e.runRm(c, args[0], rm.Options{Recursive: recursive})
		},
	}
	c.Flags().BoolP(extension.FlagRecursive, "r", false, "Also remove every descendant")
	return c
}

func (e *Extension) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <path>",
		Short: "Remove every descendant of an entry",
		Long:  `Remove every entry below a path, keeping the entry itself.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return e.runRm(c, args[0], rm.Options{Clear: true})
		},
	}
}

func (e *Extension) runRm(c *cobra.Command, arg string, opts rm.Options) error {
	action := "remove"
	if opts.Clear {
		action = "clear"
	}

	p, err := parsePath(arg)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("%s: %w", action, err))
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := rm.Run(c.Context(), w, e.svc, p, opts)

	log.Event("catalog:"+c.Name(), action).
		Author(cmd.Author()).
		Path(p.String()).
		Count(int(result.Removed)).
		Detail("recursive", opts.Recursive).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return cmd.PrintJSON(result)
}
