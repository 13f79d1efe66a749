// Package rm removes catalog entries.
//
// Removal is permanent. An entry with children is only removed with
// Recursive, so a subtree is never stranded; Clear keeps the entry and
// removes everything below it.
package rm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Options configures a remove operation.
type Options struct {
	Recursive bool // remove the entry and every descendant
	Clear     bool // remove descendants only, keeping the entry
}

// Result contains the outcome of a remove operation.
type Result struct {
	Path    string `json:"path"`
	Removed int64  `json:"removed"`
	Kept    bool   `json:"kept,omitempty"` // the entry itself survived (Clear)
}

// Run removes the entry at p according to opts.
func Run(ctx context.Context, w io.Writer, svc service.Service, p tree.Path, opts Options) (Result, error) {
	result := Result{Path: p.String()}

	if opts.Clear && opts.Recursive {
		return result, errors.New("--recursive cannot be combined with clear")
	}

	var err error
	if opts.Clear {
		result.Removed, err = svc.Clear(ctx, p)
		if err != nil {
			return result, err
		}
		result.Kept = true
		fmt.Fprintf(w, "Cleared %s (%d removed)\n", p, result.Removed)
		return result, nil
	}

	result.Removed, err = svc.Remove(ctx, p, opts.Recursive)
	if err != nil {
		return result, err
	}
	if result.Removed > 1 {
		fmt.Fprintf(w, "Removed %s and %d descendants\n", p, result.Removed-1)
	} else {
		fmt.Fprintf(w, "Removed %s\n", p)
	}
	return result, nil
}
