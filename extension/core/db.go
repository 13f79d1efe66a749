// db.go implements "seaside db", listing databases and toggling whether
// they are committed. It only edits .gitignore, so it works on databases
// that are locked or damaged.

package core

import (
	"fmt"
	"path/filepath"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/repo"
	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "db [name]",
		Short: "List or manage databases",
		Long: `List databases or change their local/shared status.

  seaside db                     # list all databases
  seaside db --local             # mark default database as local
  seaside db plugins --local     # mark seaside-plugins.db as local
  seaside db plugins --share     # mark as shared
  seaside db --dir /path         # list databases in another project

Local databases are gitignored. Shared databases are committed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDB,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark database as local")
	c.Flags().BoolP(extension.FlagShare, "s", false, "Mark database as shared")
	c.MarkFlagsMutuallyExclusive(extension.FlagLocal, extension.FlagShare)
	return c
}

func runDB(c *cobra.Command, args []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	share, _ := c.Flags().GetBool(extension.FlagShare)

	// repo expects the .seaside directory, not the project root.
	dir := ""
	if d := cmd.Dir(); d != "" {
		dir = filepath.Join(d, repo.Dir)
	}

	if len(args) == 0 && !local && !share {
		err := listDBs(dir)
		log.Event("core:db", "list").Author(cmd.Author()).Detail("dir", dir).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("db list: %w", err))
		}
		return nil
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	file := repo.DBFileName(name)

	var err error
	var action, status string
	switch {
	case local:
		action, status = "ignore", "local"
		err = repo.IgnoreDB(name, dir)
	case share:
		action, status = "unignore", "shared"
		err = repo.UnignoreDB(name, dir)
	default:
		action, status = "status", "shared"
		var ignored bool
		ignored, err = repo.IsIgnored(name, dir)
		if ignored {
			status = "local"
		}
	}

	log.Event("core:db", action).Author(cmd.Author()).Detail("db", name).Detail("dir", dir).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("db %s %q: %w", action, name, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"file": file, "status": status})
	}
	if action == "status" {
		fmt.Fprintf(cmd.Out(), "%s: %s\n", file, status)
	} else {
		fmt.Fprintf(cmd.Out(), "%s marked as %s\n", file, status)
	}
	return nil
}

// listDBs prints every database with its status.
func listDBs(dir string) error {
	dbs, err := repo.ListDBs(dir)
	if err != nil {
		return err
	}

	if cmd.JSON() {
		type dbJSON struct {
			File  string `json:"file"`
			Local bool   `json:"local"`
		}
		out := make([]dbJSON, len(dbs))
		for i, d := range dbs {
			out[i] = dbJSON{File: d.File, Local: d.Local}
		}
		return cmd.PrintJSON(out)
	}

	if len(dbs) == 0 {
		fmt.Fprintln(cmd.Out(), "No databases found")
		return nil
	}
	for _, d := range dbs {
		status := "shared"
		if d.Local {
			status = "local"
		}
		fmt.Fprintf(cmd.Out(), "%s  %s\n", d.File, status)
	}
	return nil
}
