// add.go implements "seaside add" and "seaside describe".

package catalog

import (
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/spf13/cobra"
)

func (e *Extension) newAddCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "add <path>",
		Short: "Add an entry",
		Long: `Add an entry at a path whose segments are joined by |.

  seaside add deps
  seaside add "deps|compile" -d "Compile classpath"
  seaside add "deps|test|junit" --parents    # also creates deps|test

The parent entry must exist unless --parents is given.
Quote paths in the shell: | is a pipe.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runAdd,
	}
	c.Flags().StringP(extension.FlagDescription, "d", "", "Display text (defaults to the path)")
	c.Flags().BoolP(extension.FlagParents, "p", false, "Create missing ancestor entries")
	return c
}

func (e *Extension) runAdd(c *cobra.Command, args []string) error {
	ctx := c.Context()
	desc, _ := c.Flags().GetString(extension.FlagDescription)
	parents, _ := c.Flags().GetBool(extension.FlagParents)

	p, err := parsePath(args[0])
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("add: %w", err))
	}

	created, err := e.svc.Add(ctx, p, desc, service.AddOptions{Author: cmd.Author(), Parents: parents})

	log.Event("catalog:add", "add").
		Author(cmd.Author()).
		Path(p.String()).
		Count(len(created)).
		Detail("parents", parents).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		out := make([]store.EntryJSON, len(created))
		for i := range created {
			out[i] = created[i].ToJSON()
		}
		return cmd.PrintJSON(out)
	}
	for _, en := range created {
		fmt.Fprintf(cmd.Out(), "Added %s (%s)\n", en.Path, en.Key)
	}
	return nil
}

func (e *Extension) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <path> <description>",
		Short: "Replace an entry's description",
		Long: `Replace the description of an existing entry.

  seaside describe "deps|compile" "Compile classpath"
  seaside describe "deps|compile" ""    # fall back to the path`,
		Args: cobra.ExactArgs(2),
		RunE: e.runDescribe,
	}
}

func (e *Extension) runDescribe(c *cobra.Command, args []string) error {
	p, err := parsePath(args[0])
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("describe: %w", err))
	}

	err = e.svc.Describe(c.Context(), p, args[1])

	log.Event("catalog:describe", "describe").Author(cmd.Author()).Path(p.String()).Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"path": p.String(), "description": args[1]})
	}
	fmt.Fprintf(cmd.Out(), "Described %s\n", p)
	return nil
}
