// diag.go builds the diagnostic logger used by long-running commands.
//
// Audit entries go to SQLite; diagnostics are human-facing and go to stderr
// through a charmbracelet/log handler behind log/slog, so stdout stays free
// for JSON-RPC and command output.

package log

import (
	"io"
	"log/slog"

	charm "github.com/charmbracelet/log"
)

// Diagnostic returns a slog.Logger writing to w with the given prefix.
// verbose lowers the level to debug.
func Diagnostic(w io.Writer, prefix string, verbose bool) *slog.Logger {
	level := charm.InfoLevel
	if verbose {
		level = charm.DebugLevel
	}
	h := charm.NewWithOptions(w, charm.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
	})
	return slog.New(h)
}
