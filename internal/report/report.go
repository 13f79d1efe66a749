// Package report assembles path-addressed trees from flat entry listings.
//
// Catalog entries, imported files and MCP requests all arrive as flat lists
// in whatever order they were enumerated. Build turns such a list into a
// tree rooted at a chosen path. Entries are stably ordered by depth first, so
// any enumeration order works as long as every ancestor chain is present.
// Missing ancestors are an error unless Options.Parents asks for group nodes
// to be synthesised.
package report

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Entry is one path with an optional description.
type Entry struct {
	Path        tree.Path
	Description string
}

// Options configures Build.
type Options struct {
	Order   tree.Order // sibling order for every node; nil keeps enumeration order
	Parents bool       // create missing intermediate nodes instead of failing
}

// Build assembles the tree rooted at root from entries.
//
// Entries that are not descendants of root are ignored. An entry equal to
// root supplies the root description. When an entry cannot be attached, all
// such failures are returned joined; each wraps tree.ErrNoAttachment and
// names the offending path.
func Build(root tree.Path, entries []Entry, opts Options) (*tree.Node, error) {
	if root.IsZero() {
		return nil, fmt.Errorf("build report: %w", tree.ErrMalformedPath)
	}

	var rootDesc string
	var below []Entry
	for _, e := range entries {
		switch {
		case e.Path.Equal(root):
			rootDesc = e.Description
		case e.Path.IsDescendantOf(root):
			below = append(below, e)
		}
	}

	if opts.Parents {
		below = withParents(root, below)
	}

	// Ancestors always have fewer segments than their descendants, so a stable
	// sort by depth guarantees parents are attached first while keeping the
	// enumeration order among siblings.
	slices.SortStableFunc(below, func(a, b Entry) int {
		return cmp.Compare(a.Path.Len(), b.Path.Len())
	})

	n := tree.New(root, tree.WithDescription(rootDesc), tree.WithOrder(opts.Order))
	var errs []error
	for _, e := range below {
		c := tree.New(e.Path, tree.WithDescription(e.Description), tree.WithOrder(opts.Order))
		if err := n.Insert(c); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return n, fmt.Errorf("build report %s: %w", root, errors.Join(errs...))
	}
	return n, nil
}

// withParents appends a group entry for every missing ancestor between root
// and each entry. Synthesised entries keep an empty description so they render
// with their path.
func withParents(root tree.Path, entries []Entry) []Entry {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[e.Path.String()] = true
	}
	out := slices.Clone(entries)
	for _, e := range entries {
		for _, a := range e.Path.Ancestors() {
			if !a.IsDescendantOf(root) || seen[a.String()] {
				continue
			}
			seen[a.String()] = true
			out = append(out, Entry{Path: a})
		}
	}
	return out
}

// Roots returns the distinct first segments of entries as single-segment
// paths, in first-seen order.
func Roots(entries []Entry) []tree.Path {
	seen := make(map[string]bool)
	var out []tree.Path
	for _, e := range entries {
		if e.Path.IsZero() {
			continue
		}
		first := e.Path.Segments()[0]
		if seen[first] {
			continue
		}
		seen[first] = true
		out = append(out, tree.MustPath(first))
	}
	return out
}

// Forest builds one tree per root found in entries.
// Errors from individual trees are joined. Every tree is still returned,
// partial ones included.
func Forest(entries []Entry, opts Options) ([]*tree.Node, error) {
	var trees []*tree.Node
	var errs []error
	for _, r := range Roots(entries) {
		n, err := Build(r, entries, opts)
		if err != nil {
			errs = append(errs, err)
		}
		trees = append(trees, n)
	}
	if opts.Order != nil {
		slices.SortStableFunc(trees, func(a, b *tree.Node) int {
			return opts.Order.Compare(a, b)
		})
	}
	return trees, errors.Join(errs...)
}

// Select builds the tree rooted at root, or the whole forest for the zero
// Path. A root with no entries at or below it yields an empty forest.
// Like Forest, a tree that failed to build completely is still returned,
// holding every entry that did attach, alongside the error.
func Select(root tree.Path, entries []Entry, opts Options) ([]*tree.Node, error) {
	if root.IsZero() {
		return Forest(entries, opts)
	}
	if !slices.ContainsFunc(entries, func(e Entry) bool {
		return e.Path.Equal(root) || e.Path.IsDescendantOf(root)
	}) {
		return nil, nil
	}
	n, err := Build(root, entries, opts)
	return []*tree.Node{n}, err
}
