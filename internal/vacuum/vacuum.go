// Package vacuum compacts the catalog database. Removals free pages inside
// the file; vacuum rewrites the file so the space goes back to the disk.
package vacuum

import (
	"context"
	"fmt"
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
)

// Options configures a vacuum run.
type Options struct {
	DryRun bool // report reclaimable space without compacting
}

// Result reports the space involved.
type Result struct {
	Reclaimable int64 `json:"reclaimable"` // bytes on the freelist before the run
	Compacted   bool  `json:"compacted"`
}

// Run compacts the database behind svc.
func Run(ctx context.Context, w io.Writer, svc service.Service, opts Options) (Result, error) {
	var result Result

	n, err := svc.Reclaimable(ctx)
	if err != nil {
		return result, err
	}
	result.Reclaimable = n

	if opts.DryRun {
		fmt.Fprintf(w, "Would reclaim %s\n", bytes(n))
		return result, nil
	}
	if n == 0 {
		fmt.Fprintln(w, "Nothing to reclaim")
		return result, nil
	}

	if err := svc.Vacuum(ctx); err != nil {
		return result, err
	}
	result.Compacted = true
	fmt.Fprintf(w, "Reclaimed %s\n", bytes(n))
	return result, nil
}

func bytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
