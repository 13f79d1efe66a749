// Package sync makes a catalog subtree match an entry file.
//
// Import only ever adds and describes. Sync also removes entries under the
// root that the file no longer lists, so a file kept in version control can
// be the source of truth for part of the catalog. Ancestors of listed
// entries are always kept, even when the file leaves them implicit.
package sync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/importer"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Options configures a sync operation.
type Options struct {
	Root    tree.Path       // subtree to prune; zero for the whole catalog
	Format  importer.Format // "" detects from the file name
	DryRun  bool            // show what would change without changing it
	Author  string
	Parents bool // create ancestors missing from both file and catalog
	Logger  *slog.Logger
}

// Result contains the outcome of a sync operation.
type Result struct {
	importer.Result
	Removed int      `json:"removed"`
	Pruned  []string `json:"pruned,omitempty"` // top-most removed paths
}

// Run reads src and applies it to svc.
func Run(ctx context.Context, w io.Writer, svc service.Service, src string, opts Options) (Result, error) {
	var result Result

	entries, err := importer.Load(src, importer.Options{Format: opts.Format})
	if err != nil {
		return result, err
	}
	if !opts.Root.IsZero() {
		entries = slices.DeleteFunc(entries, func(e report.Entry) bool {
			return !e.Path.Equal(opts.Root) && !e.Path.IsDescendantOf(opts.Root)
		})
	}

	stale, err := Stale(ctx, svc, entries, opts.Root)
	if err != nil {
		return result, err
	}
	for _, p := range stale {
		if opts.DryRun {
			fmt.Fprintf(w, "Would remove: %s\n", p)
			result.Pruned = append(result.Pruned, p.String())
			continue
		}
		n, err := svc.Remove(ctx, p, true)
		if err != nil {
			return result, err
		}
		fmt.Fprintf(w, "Removed: %s\n", p)
		result.Pruned = append(result.Pruned, p.String())
		result.Removed += int(n)
	}

	imported, err := importer.Apply(ctx, w, svc, entries, importer.Options{
		DryRun:  opts.DryRun,
		Author:  opts.Author,
		Parents: opts.Parents,
		Logger:  opts.Logger,
	})
	result.Result = imported
	return result, err
}

// Stale returns the top-most catalog entries below root that neither appear
// in entries nor are an ancestor of one. root itself is kept. Removing each
// recursively leaves exactly what entries describe.
func Stale(ctx context.Context, svc service.Service, entries []report.Entry, root tree.Path) ([]tree.Path, error) {
	keep := map[string]bool{root.String(): true}
	for _, e := range entries {
		keep[e.Path.String()] = true
		for _, a := range e.Path.Ancestors() {
			keep[a.String()] = true
		}
	}

	existing, err := svc.List(ctx, root)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(existing, func(a, b store.Entry) int {
		return a.Path.Compare(b.Path)
	})

	var stale []tree.Path
	for _, e := range existing {
		if keep[e.Path.String()] {
			continue
		}
		if n := len(stale); n > 0 && e.Path.IsDescendantOf(stale[n-1]) {
			continue
		}
		stale = append(stale, e.Path)
	}
	return stale, nil
}
