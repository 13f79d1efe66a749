// interfaces.go defines the storage abstraction for catalog entries.
//
// Separated from the SQLite implementation so consumers depend only on the
// capabilities they need. Paths cross this boundary as tree.Path values;
// the canonical string form is an implementation detail of the store.

package store

import (
	"context"
	"database/sql"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Reader defines read-only operations.
type Reader interface {
	// Get retrieves one entry. Returns ErrNotFound if absent.
	Get(ctx context.Context, path tree.Path) (*Entry, error)

	// Exists checks presence without loading the row.
	Exists(ctx context.Context, path tree.Path) (bool, error)

	// List returns prefix and all of its descendants in insertion order.
	// A zero prefix lists every entry.
	List(ctx context.Context, prefix tree.Path) ([]Entry, error)

	// CountChildren returns the number of immediate children of path.
	CountChildren(ctx context.Context, path tree.Path) (int64, error)

	// Count returns the total number of entries.
	Count(ctx context.Context) (int64, error)
}

// Writer defines operations that modify entries.
type Writer interface {
	// Add inserts a new entry. Returns ErrAlreadyExists for a duplicate path.
	Add(ctx context.Context, e Entry) error

	// Describe replaces the description of an existing entry.
	Describe(ctx context.Context, path tree.Path, description string) error

	// Delete removes exactly one entry, leaving any descendants in place.
	Delete(ctx context.Context, path tree.Path) error

	// DeleteDescendants removes every entry below path, keeping path itself.
	DeleteDescendants(ctx context.Context, path tree.Path) (int64, error)

	// DeleteTree removes path and every entry below it.
	DeleteTree(ctx context.Context, path tree.Path) (int64, error)
}

// ReadWriter is the view of a store handed to an Atomic callback.
type ReadWriter interface {
	Reader
	Writer
}

// Transactor groups several reads and writes into one transaction.
type Transactor interface {
	// Atomic calls fn with a view bound to one transaction, committing when
	// fn returns nil and rolling back otherwise.
	Atomic(ctx context.Context, fn func(ReadWriter) error) error
}

// Maintainer defines operations for database maintenance and lifecycle.
type Maintainer interface {
	// Close releases the database connection.
	Close() error

	// DB exposes the underlying connection for extensions needing custom tables.
	DB() *sql.DB

	// Checkpoint flushes WAL to the main database file.
	Checkpoint(ctx context.Context) error

	// Vacuum rebuilds the database file, dropping free pages.
	Vacuum(ctx context.Context) error

	// FreePages reports unused pages and the page size in bytes.
	FreePages(ctx context.Context) (pages, size int64, err error)
}

// Store defines the persistence interface for catalog entries.
type Store interface {
	Reader
	Writer
	Transactor
	Maintainer
}
