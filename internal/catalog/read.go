// read.go implements lookups and tree assembly.

package catalog

import (
	"context"
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Get returns the entry at p.
func (s *Service) Get(ctx context.Context, p tree.Path) (*store.Entry, error) {
	e, err := s.store.Get(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", p, err)
	}
	return e, nil
}

// Exists reports whether an entry is stored at p.
func (s *Service) Exists(ctx context.Context, p tree.Path) (bool, error) {
	return s.store.Exists(ctx, p)
}

// List returns p and its descendants, or everything for the zero Path.
func (s *Service) List(ctx context.Context, p tree.Path) ([]store.Entry, error) {
	return s.store.List(ctx, p)
}

// Count returns the number of stored entries.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Roots returns the top-level paths in insertion order.
func (s *Service) Roots(ctx context.Context) ([]tree.Path, error) {
	entries, err := s.store.List(ctx, tree.Path{})
	if err != nil {
		return nil, err
	}
	return report.Roots(Entries(entries)), nil
}

// Tree assembles the subtree rooted at root. The root entry must exist.
func (s *Service) Tree(ctx context.Context, root tree.Path, order tree.Order) (*tree.Node, error) {
	ok, err := s.store.Exists(ctx, root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("tree %s: %w", root, store.ErrNotFound)
	}
	entries, err := s.store.List(ctx, root)
	if err != nil {
		return nil, err
	}
	return report.Build(root, Entries(entries), report.Options{Order: order})
}

// Forest assembles one tree per root. Every tree is returned even when some
// entries could not be attached; the error then lists them.
func (s *Service) Forest(ctx context.Context, order tree.Order) ([]*tree.Node, error) {
	entries, err := s.store.List(ctx, tree.Path{})
	if err != nil {
		return nil, err
	}
	return report.Forest(Entries(entries), report.Options{Order: order})
}

// Entries converts stored entries to report entries.
func Entries(entries []store.Entry) []report.Entry {
	out := make([]report.Entry, len(entries))
	for i, e := range entries {
		out[i] = report.Entry{Path: e.Path, Description: e.Description}
	}
	return out
}
