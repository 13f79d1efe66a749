/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE opens the catalog lazily: only commands that need it
// trigger extension init, so init, guide and config work before a catalog
// exists. noStoreCommands lists the commands that skip it.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seaside",
	Short: "Path-addressed tree catalog for build plugin hierarchies",
	Long: `seaside stores entries addressed by |-delimited paths such as
"plugins|java|compile" and assembles them into trees. Entries can be added,
described, removed, imported from YAML, TOML or text files, exported, and
rendered as trees with leaf and height reports. An MCP server exposes the
same catalog to LLMs.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: prepare,
}

// ErrNoAuthor is returned by write commands when no author is set by flag
// or config.
var ErrNoAuthor = errors.New("author not configured")

// prepare validates global flags, resolves the author and opens the catalog
// for commands that need one.
func prepare(cmd *cobra.Command, _ []string) error {
	if output != "" && !slices.Contains(validOutputFormats, output) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
	}

	if author == "" {
		author = detectAuthor()
	}
	name := topLevelCmdName(cmd)
	if authorRequiredCommands[name] && author == "" {
		return fmt.Errorf("%w (checked .seaside/config.yaml and ~/.seaside/config.yaml)\n\nRun: seaside config author.name \"Your Name\"\nor pass --author for a single command.", ErrNoAuthor)
	}

	if noStoreCommands[name] {
		return nil
	}
	if err := initExtensions(); err != nil {
		if JSON() {
			_ = PrintJSON(map[string]string{"error": err.Error()})
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
		}
		return fmt.Errorf("open catalog: %w", err)
	}
	return nil
}

// topLevelCmdName returns the direct child of root that cmd belongs to:
// "tree" for "seaside tree plugins|java".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs seaside. The audit log is opened first so even failed
// commands are recorded, and the catalog is closed before the process exits
// with status 1 on error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if extService != nil {
		if closeErr := extService.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing service: %v\n", closeErr)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command.
func RootCmd() *cobra.Command {
	return rootCmd
}
