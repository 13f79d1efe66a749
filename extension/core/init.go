// init.go implements "seaside init". Init creates the database only;
// configuration is managed separately via "seaside config".

package core

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/cmd"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/extension"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/catalog"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Initialise a new seaside catalog",
		Long: `Creates a .seaside/seaside.db database in the current directory.

Use --db to create additional databases:
  seaside init --db plugins    # creates .seaside/seaside-plugins.db

Use --dir to create in a different directory:
  seaside init --dir /path/to/project

Use --local to exclude from git:
  seaside init --db scratch --local

Use --force to recreate an existing database (all entries are lost).`,
		RunE: runInit,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark database as local (gitignored)")
	return c
}

func runInit(c *cobra.Command, _ []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	db, dir := cmd.DB(), cmd.Dir()

	// --local edits this project's .gitignore, which is meaningless for a
	// database created elsewhere.
	if local && dir != "" {
		return cmd.PrintJSONError(errors.New("cannot use --local with --dir"))
	}

	err := catalog.Init(cmd.Force(), db, local, dir)

	log.Event("core:init", "init").
		Author(cmd.Author()).
		Detail("db", db).
		Detail("dir", dir).
		Detail("local", local).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	loc := filepath.Join(dir, repo.Dir, repo.DBFileName(db))
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"database": loc, "local": local})
	}
	fmt.Fprintf(cmd.Out(), "Initialised seaside catalog in %s\n", loc)
	return nil
}
