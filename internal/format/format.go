// Package format renders catalog entries and report trees for the terminal.
//
// Command implementations hand this package a tree or an entry slice and a
// writer; column alignment, connectors and styling live here.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// List prints entries as key and path, one per line.
func List(w io.Writer, entries []store.Entry) error {
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s\n", e.Key, e.Path)
	}
	return nil
}

// Long prints entries with depth, creation date, author and description.
//
// Fixed-width columns come first; PATH and DESCRIPTION vary the most and
// sit at the end.
func Long(w io.Writer, entries []store.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	maxAuthor := 6 // "AUTHOR"
	for _, e := range entries {
		if n := len(orDash(e.Author)); n > maxAuthor {
			maxAuthor = n
		}
	}

	fmt.Fprintf(w, "%-8s  %5s  %-10s  %-*s  %s\n", "KEY", "DEPTH", "CREATED", maxAuthor, "AUTHOR", "PATH")
	for _, e := range entries {
		created := time.Unix(e.CreatedAt, 0).Format("2006-01-02")
		fmt.Fprintf(w, "%-8s  %5d  %s  %-*s  %s", e.Key, e.Path.Len(), created, maxAuthor, orDash(e.Author), e.Path)
		if e.Description != "" {
			fmt.Fprintf(w, "  %q", e.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Paths prints canonical paths, one per line.
func Paths(w io.Writer, entries []store.Entry) error {
	for _, e := range entries {
		fmt.Fprintln(w, e.Path)
	}
	return nil
}

// Matches prints search hits as path and description.
func Matches(w io.Writer, entries []store.Entry) error {
	for _, e := range entries {
		if e.Description == "" {
			fmt.Fprintln(w, e.Path)
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", e.Path, e.Description)
	}
	return nil
}

// Leaves prints each leaf with its depth below the tree root.
func Leaves(w io.Writer, leaves []tree.Leaf, descriptions bool) error {
	for _, l := range leaves {
		p := l.Node.Path().String()
		fmt.Fprintf(w, "%3d  %s", l.Depth, p)
		if d := l.Node.Description(); descriptions && d != p {
			fmt.Fprintf(w, "  %s", d)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// History prints audit entries, one per line.
func History(w io.Writer, entries []log.Entry) error {
	for _, e := range entries {
		when := time.Unix(e.Start, 0).Format("2006-01-02 15:04")
		status := "ok"
		if !e.Success {
			status = "FAILED"
		}
		fmt.Fprintf(w, "%s  %-6s  %-18s  %-8s  %s", when, status, e.Source, orDash(e.Author), orDash(e.Path))
		if e.Count > 0 {
			fmt.Fprintf(w, "  (%d)", e.Count)
		}
		if e.Error != "" {
			fmt.Fprintf(w, "  %s", e.Error)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
