// write.go implements the mutating catalog operations.
//
// The store accepts any path; the catalog keeps the stored set closed under
// ancestors so every tree it assembles is complete. Add refuses orphans and
// Remove refuses to strand children.

package catalog

import (
	"context"
	"fmt"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Add stores a new entry at p, creating missing ancestors when opts.Parents
// is set. The checks and inserts share one transaction, so a failure stores
// nothing.
func (s *Service) Add(ctx context.Context, p tree.Path, description string, opts service.AddOptions) ([]store.Entry, error) {
	if err := s.Validate(p); err != nil {
		return nil, fmt.Errorf("add %s: %w", p, err)
	}
	if opts.Author == "" {
		opts.Author = DefaultAuthor
	}

	var created []store.Entry
	err := s.store.Atomic(ctx, func(rw store.ReadWriter) error {
		exists, err := rw.Exists(ctx, p)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("add %s: %w", p, store.ErrAlreadyExists)
		}

		var missing []tree.Path
		for _, a := range p.Ancestors() {
			ok, err := rw.Exists(ctx, a)
			if err != nil {
				return err
			}
			if !ok {
				missing = append(missing, a)
			}
		}
		if len(missing) > 0 && !opts.Parents {
			return fmt.Errorf("add %s: %w: %s (use --parents to create it)", p, ErrParentMissing, missing[len(missing)-1])
		}

		for _, a := range append(missing, p) {
			desc := ""
			if a.Equal(p) {
				desc = description
			}
			e, err := insert(ctx, rw, a, desc, opts.Author)
			if err != nil {
				return err
			}
			created = append(created, *e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func insert(ctx context.Context, rw store.ReadWriter, p tree.Path, description, author string) (*store.Entry, error) {
	if err := rw.Add(ctx, store.Entry{Path: p, Description: description, Author: author}); err != nil {
		return nil, fmt.Errorf("add %s: %w", p, err)
	}
	return rw.Get(ctx, p)
}

// Describe replaces the description of the entry at p.
func (s *Service) Describe(ctx context.Context, p tree.Path, description string) error {
	if err := s.store.Describe(ctx, p, description); err != nil {
		return fmt.Errorf("describe %s: %w", p, err)
	}
	return nil
}

// Remove deletes the entry at p, and its descendants when recursive.
func (s *Service) Remove(ctx context.Context, p tree.Path, recursive bool) (int64, error) {
	if recursive {
		n, err := s.store.DeleteTree(ctx, p)
		if err != nil {
			return 0, fmt.Errorf("remove %s: %w", p, err)
		}
		return n, nil
	}

	err := s.store.Atomic(ctx, func(rw store.ReadWriter) error {
		kids, err := rw.CountChildren(ctx, p)
		if err != nil {
			return err
		}
		if kids > 0 {
			return fmt.Errorf("remove %s: %w (%d, use --recursive)", p, ErrHasChildren, kids)
		}
		if err := rw.Delete(ctx, p); err != nil {
			return fmt.Errorf("remove %s: %w", p, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return 1, nil
}

// Clear removes the descendants of p. p must exist.
func (s *Service) Clear(ctx context.Context, p tree.Path) (int64, error) {
	var n int64
	err := s.store.Atomic(ctx, func(rw store.ReadWriter) error {
		ok, err := rw.Exists(ctx, p)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("clear %s: %w", p, store.ErrNotFound)
		}
		n, err = rw.DeleteDescendants(ctx, p)
		if err != nil {
			return fmt.Errorf("clear %s: %w", p, err)
		}
		return nil
	})
	return n, err
}
