/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Extensions read flag values through the exported accessors rather than
// the variables, so they stay decoupled from cobra internals.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output  string
	author  string
	force   bool
	verbose bool
	db      string
	dir     string
)

// out is the output writer for commands. Tests replace it to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Author returns the author flag value.
func Author() string { return author }

// Force returns the force flag value.
func Force() bool { return force }

// Verbose reports whether debug diagnostics were requested.
func Verbose() bool { return verbose }

// Logger returns a stderr diagnostic logger. Debug records are shown only
// with --verbose.
func Logger() *slog.Logger {
	return log.Diagnostic(os.Stderr, "seaside", verbose)
}

// DB returns the resolved database name.
// Priority: --db flag > SEASIDE_DB env var > empty (default).
func DB() string {
	if db != "" {
		return db
	}
	return os.Getenv("SEASIDE_DB")
}

// Dir returns the explicit database directory if set.
// Priority: --dir flag > SEASIDE_DIR env var > empty (use discovery).
func Dir() string {
	if dir != "" {
		return dir
	}
	return os.Getenv("SEASIDE_DIR")
}

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil once printed so cobra does not print it again.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// detectAuthor resolves the default author from config.
// Returns empty string when config is missing or has no author set.
func detectAuthor() string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Author attribution")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Skip confirmations")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&db, "db", "", "Database name (e.g., gradle for seaside-gradle.db)")
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Database directory (skip discovery, use explicit path)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
