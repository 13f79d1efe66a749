// Package importer loads catalog entries from YAML, TOML and text files.
package importer

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/progress"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Options configures an import operation.
type Options struct {
	Format  Format // "" detects per file
	DryRun  bool   // show what would be imported without importing
	Author  string
	Parents bool         // create ancestors missing from both file and catalog
	Hidden  bool         // include hidden files when importing a directory
	Logger  *slog.Logger // optional debug tracing
}

// Result contains the outcome of an import operation.
type Result struct {
	Imported int      `json:"imported"` // entries added
	Updated  int      `json:"updated"`  // existing entries whose description changed
	Skipped  int      `json:"skipped"`  // existing entries left unchanged
	Paths    []string `json:"paths,omitempty"`
}

// Run imports src, which is an entry file or a directory of entry files.
// Entries are applied shallowest first, so a file may list them in any order.
// An entry that already exists only has its description updated when the
// file gives a different non-empty one.
func Run(ctx context.Context, w io.Writer, svc service.Service, src string, opts Options) (Result, error) {
	entries, err := Load(src, opts)
	if err != nil {
		return Result{}, err
	}
	debugLogger(opts).Debug("entries read", "source", src, "count", len(entries))
	return Apply(ctx, w, svc, entries, opts)
}

func debugLogger(opts Options) *slog.Logger {
	if opts.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return opts.Logger
}

// Apply adds or updates entries already read from a source. entries is
// reordered in place.
func Apply(ctx context.Context, w io.Writer, svc service.Service, entries []report.Entry, opts Options) (Result, error) {
	var result Result
	logger := debugLogger(opts)

	slices.SortStableFunc(entries, func(a, b report.Entry) int {
		return cmp.Compare(a.Path.Len(), b.Path.Len())
	})

	// descriptions of the paths a dry run has already reported, standing in
	// for the entries a real run would have stored by now
	seen := map[string]string{}

	prog := progress.New("Importing", len(entries))
	defer prog.Done()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := svc.Validate(e.Path); err != nil {
			return result, fmt.Errorf("import %s: %w", e.Path, err)
		}

		if desc, ok := seen[e.Path.String()]; ok {
			if e.Description != "" && e.Description != desc {
				seen[e.Path.String()] = e.Description
				result.Updated++
			} else {
				result.Skipped++
			}
			prog.Increment()
			prog.Print()
			continue
		}

		existing, err := svc.Get(ctx, e.Path)
		switch {
		case err == nil:
			if e.Description != "" && e.Description != existing.Description {
				if !opts.DryRun {
					if err := svc.Describe(ctx, e.Path, e.Description); err != nil {
						return result, err
					}
				}
				logger.Debug("description updated", "path", e.Path.String())
				result.Updated++
			} else {
				result.Skipped++
			}
		case errors.Is(err, store.ErrNotFound):
			if opts.DryRun {
				planned, err := plan(ctx, svc, e.Path, opts.Parents, seen)
				if err != nil {
					return result, err
				}
				for _, p := range planned {
					fmt.Fprintf(w, "Would import: %s\n", p)
					result.Paths = append(result.Paths, p.String())
					result.Imported++
					seen[p.String()] = ""
				}
				seen[e.Path.String()] = e.Description
				break
			}
			created, err := svc.Add(ctx, e.Path, e.Description, service.AddOptions{
				Author:  opts.Author,
				Parents: opts.Parents,
			})
			if err != nil {
				return result, err
			}
			for _, c := range created {
				fmt.Fprintf(w, "Imported: %s\n", c.Path)
				result.Paths = append(result.Paths, c.Path.String())
				result.Imported++
			}
		default:
			return result, err
		}

		prog.Increment()
		prog.Print()
	}
	return result, nil
}

// plan lists the entries a real Add of p would create, ancestors first,
// counting paths in seen as already stored. Without parents a missing
// ancestor fails the same way Add does.
func plan(ctx context.Context, svc service.Service, p tree.Path, parents bool, seen map[string]string) ([]tree.Path, error) {
	var missing []tree.Path
	for _, a := range p.Ancestors() {
		if _, ok := seen[a.String()]; ok {
			continue
		}
		_, err := svc.Get(ctx, a)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrNotFound):
			missing = append(missing, a)
		default:
			return nil, err
		}
	}
	if len(missing) > 0 && !parents {
		return nil, fmt.Errorf("add %s: %w: %s (use --parents to create it)", p, service.ErrParentMissing, missing[len(missing)-1])
	}
	return append(missing, p), nil
}

// Load reads one file, or every entry file below a directory. Only
// opts.Format and opts.Hidden apply.
func Load(src string, opts Options) ([]report.Entry, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return ReadFile(src, opts.Format)
	}

	// os.Root keeps the walk inside src even through symlinks.
	root, err := os.OpenRoot(src)
	if err != nil {
		return nil, fmt.Errorf("opening source root: %w", err)
	}
	defer root.Close()

	files, err := scanRoot(root, "", opts.Hidden)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", src, err)
	}

	var all []report.Entry
	for _, rel := range files {
		f, err := root.Open(rel)
		if err != nil {
			return nil, err
		}
		format := opts.Format
		if format == "" {
			format = Detect(rel)
		}
		entries, err := Read(f, format)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Join(src, rel), err)
		}
		all = append(all, entries...)
	}
	return all, nil
}

// entryExts lists the extensions picked up from directories. Plain text is
// only read from .txt so stray files are not mistaken for entry lists.
var entryExts = []string{".yaml", ".yml", ".toml", ".txt"}

// scanRoot recursively finds entry files within an os.Root, in directory
// order, returning paths relative to the root.
func scanRoot(root *os.Root, dir string, includeHidden bool) ([]string, error) {
	path := dir
	if path == "" {
		path = "."
	}

	f, err := root.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dirents, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(dirents, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	var files []string
	for _, d := range dirents {
		name := d.Name()
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		rel := name
		if dir != "" {
			rel = filepath.Join(dir, name)
		}

		if d.IsDir() {
			sub, err := scanRoot(root, rel, includeHidden)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		} else if slices.Contains(entryExts, strings.ToLower(filepath.Ext(name))) {
			files = append(files, rel)
		}
	}
	return files, nil
}
