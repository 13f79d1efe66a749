// Package ls lists catalog entries in insertion order.
//
// Listing is flat. Use the report commands for tree views.
package ls

import (
	"context"
	"io"
	"slices"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/format"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/glob"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Options configures a list operation.
type Options struct {
	Prefix  tree.Path // zero lists everything
	Pattern string    // glob over whole paths, applied after Prefix
	Since   int64     // Unix time; only entries created at or after it
	Long    bool      // depth, creation date, author and description
	Paths   bool      // bare paths, one per line
	Sorted  bool      // canonical path order instead of insertion order
	Reverse bool
}

// Result contains the outcome of a list operation.
type Result struct {
	Entries []store.Entry
}

// Count returns the number of entries listed.
func (r Result) Count() int { return len(r.Entries) }

// ToJSON converts the result for -o json output.
func (r Result) ToJSON() []store.EntryJSON {
	out := make([]store.EntryJSON, len(r.Entries))
	for i := range r.Entries {
		out[i] = r.Entries[i].ToJSON()
	}
	return out
}

// Run lists entries under opts.Prefix and prints them to w.
func Run(ctx context.Context, w io.Writer, svc service.Service, opts Options) (Result, error) {
	entries, err := svc.List(ctx, opts.Prefix)
	if err != nil {
		return Result{}, err
	}
	if entries, err = Filter(entries, opts.Pattern); err != nil {
		return Result{}, err
	}
	if opts.Since > 0 {
		entries = slices.DeleteFunc(entries, func(e store.Entry) bool {
			return e.CreatedAt < opts.Since
		})
	}

	if opts.Sorted {
		slices.SortStableFunc(entries, func(a, b store.Entry) int {
			return a.Path.Compare(b.Path)
		})
	}
	if opts.Reverse {
		slices.Reverse(entries)
	}

	switch {
	case opts.Paths:
		err = format.Paths(w, entries)
	case opts.Long:
		err = format.Long(w, entries)
	default:
		err = format.List(w, entries)
	}
	return Result{Entries: entries}, err
}

// Filter keeps the entries whose path matches pattern. An empty pattern
// keeps everything.
func Filter(entries []store.Entry, pattern string) ([]store.Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(entries, func(e store.Entry) bool {
		return !g.Match(e.Path)
	}), nil
}
