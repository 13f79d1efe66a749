// sources.go compares the catalog and entry files.

package diff

import (
	"context"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/importer"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// CatalogLabel names the stored side of a diff.
const CatalogLabel = "catalog"

// Sources diffs the catalog against file, or file against other when other
// is set. Both sides are restricted to root unless it is the zero Path.
// Files may omit intermediate entries; missing groups are synthesised.
func Sources(ctx context.Context, svc service.Service, root tree.Path, file, other string, descriptions bool) (Result, error) {
	var oldLabel, newLabel string
	var oldEntries []report.Entry
	if other == "" {
		stored, err := svc.List(ctx, root)
		if err != nil {
			return Result{}, err
		}
		oldEntries = make([]report.Entry, len(stored))
		for i, e := range stored {
			oldEntries[i] = report.Entry{Path: e.Path, Description: e.Description}
		}
		oldLabel, newLabel = CatalogLabel, file
	} else {
		entries, err := importer.ReadFile(file, "")
		if err != nil {
			return Result{}, err
		}
		oldEntries = entries
		oldLabel, newLabel = file, other
	}

	newEntries, err := importer.ReadFile(newLabel, "")
	if err != nil {
		return Result{}, err
	}

	opts := report.Options{Order: tree.ByName, Parents: true}
	oldTrees, err := report.Select(root, oldEntries, opts)
	if err != nil {
		return Result{}, err
	}
	newTrees, err := report.Select(root, newEntries, opts)
	if err != nil {
		return Result{}, err
	}
	return Trees(oldTrees, newTrees, oldLabel, newLabel, descriptions), nil
}
