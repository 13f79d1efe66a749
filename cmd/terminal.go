/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// terminal.go decides how much styling output gets. Styling only applies
// when writing to an interactive stdout; tests and pipes get plain text.

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Terminal reports whether output goes to an interactive terminal.
func Terminal() bool {
	return out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}

// Colour reports whether output should carry ANSI styling.
// NO_COLOR disables it even on a terminal.
func Colour() bool {
	return Terminal() && os.Getenv("NO_COLOR") == ""
}

// PrintMarkdown writes md to the output writer, rendered with glamour on a
// terminal unless raw is set. Rendering failures fall back to the source.
func PrintMarkdown(md string, raw bool) error {
	if !raw && Terminal() {
		if rendered, err := glamour.Render(md, "dark"); err == nil {
			_, err = fmt.Fprint(out, rendered)
			return err
		}
	}
	_, err := fmt.Fprint(out, md)
	return err
}
