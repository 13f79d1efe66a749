// Package service defines the shared interface for catalog operations.
// Commands, extensions and MCP tools depend on this interface rather than
// the concrete catalog implementation.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// ErrParentMissing is returned when adding an entry whose parent is not stored.
var ErrParentMissing = errors.New("parent entry missing")

// AddOptions configures Add.
type AddOptions struct {
	Author  string
	Parents bool // create missing ancestors instead of failing
}

// Service defines all catalog operations.
//
// Obtain one with catalog.New and always defer Close:
//
//	svc, err := catalog.New("")
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//	n, err := svc.Tree(ctx, tree.MustParsePath("deps"), tree.ByName)
type Service interface {
	// Close checkpoints and releases database resources.
	Close() error

	// Validate checks a path against the configured depth and length limits.
	Validate(p tree.Path) error

	// Add stores a new entry. A non-root entry needs its parent entry unless
	// opts.Parents is set, in which case missing ancestors are created first.
	// Returns every entry created, ancestors first.
	Add(ctx context.Context, p tree.Path, description string, opts AddOptions) ([]store.Entry, error)

	// Describe replaces the description of an existing entry.
	Describe(ctx context.Context, p tree.Path, description string) error

	// Get returns the entry at p or store.ErrNotFound.
	Get(ctx context.Context, p tree.Path) (*store.Entry, error)

	// Exists reports whether an entry is stored at p.
	Exists(ctx context.Context, p tree.Path) (bool, error)

	// Remove deletes the entry at p. An entry with children fails with
	// ErrHasChildren unless recursive is set. Returns the number removed.
	Remove(ctx context.Context, p tree.Path, recursive bool) (int64, error)

	// Clear removes every descendant of p and keeps p itself.
	Clear(ctx context.Context, p tree.Path) (int64, error)

	// List returns p and its descendants in insertion order, or every entry
	// when p is the zero Path.
	List(ctx context.Context, p tree.Path) ([]store.Entry, error)

	// Roots returns the top-level paths of the catalog in insertion order.
	Roots(ctx context.Context) ([]tree.Path, error)

	// Tree assembles the stored subtree rooted at root.
	Tree(ctx context.Context, root tree.Path, order tree.Order) (*tree.Node, error)

	// Forest assembles one tree per root.
	Forest(ctx context.Context, order tree.Order) ([]*tree.Node, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int64, error)

	// Dir returns the .seaside directory holding the database.
	Dir() string

	// DB returns the underlying connection for extensions with their own
	// tables. Do not close it directly.
	DB() *sql.DB

	// Checkpoint flushes the WAL into the main database file.
	Checkpoint(ctx context.Context) error

	// Reclaimable returns the bytes a Vacuum would give back.
	Reclaimable(ctx context.Context) (int64, error)

	// Vacuum compacts the database file.
	Vacuum(ctx context.Context) error
}
