// sqlite_ops.go opens the SQLite catalog and holds the row scanning helpers.
// It is the only file that imports the driver.
//
// The database runs in WAL mode so "seaside serve" can read while the CLI
// writes, with a 5 second busy timeout.

package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite with WAL mode for concurrent access.
type SQLiteStore struct {
	db *sql.DB
	tx *sql.Tx // set on the view passed to an Atomic callback
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// q returns the open transaction when there is one, else the connection pool.
func (s *SQLiteStore) q() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

var _ Store = (*SQLiteStore)(nil)

// Open opens the SQLite database file at path. The caller must Close it.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// Creates -wal and -shm files alongside the database.
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// NORMAL may lose the last transaction on an OS crash, never corrupts.
	if _, err := db.Exec(`PRAGMA synchronous=NORMAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting synchronous mode: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Init applies any schema migrations the database has not seen.
func (s *SQLiteStore) Init() error {
	return execSchema(s.db)
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the connection for extensions with tables of their own. They
// must not write to entries directly.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// scanner is satisfied by both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// entryColumns is the column list matching scanEntry.
const entryColumns = `id, key, path, description, author, created_at`

// scanEntry extracts an Entry from a database row, handling nullable fields.
// Stored paths are re-parsed so a corrupted row surfaces as an error rather
// than an invalid tree.Path.
func scanEntry(sc scanner) (Entry, error) {
	var e Entry
	var path string
	var desc sql.NullString

	if err := sc.Scan(&e.ID, &e.Key, &path, &desc, &e.Author, &e.CreatedAt); err != nil {
		return e, err
	}
	p, err := tree.ParsePath(path)
	if err != nil {
		return e, fmt.Errorf("stored path %q: %w", path, err)
	}
	e.Path = p
	if desc.Valid {
		e.Description = desc.String
	}
	return e, nil
}

// scanOne converts sql.ErrNoRows to ErrNotFound for consistent error handling.
func scanOne(row *sql.Row) (*Entry, error) {
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}
	return &e, nil
}

// scanAll iterates over query results, collecting entries into a slice.
func scanAll(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Tx executes fn within a database transaction, handling Begin/Commit/Rollback
// automatically. This eliminates a class of bugs where callers forget to commit,
// forget to rollback on error, or fail to check commit errors.
//
// The transaction lifecycle:
//  1. BeginTx is called to start the transaction with context
//  2. fn executes with the transaction
//  3. If fn returns an error, the transaction is rolled back
//  4. If fn succeeds, the transaction is committed
//  5. Rollback is deferred to handle panics and early returns
//
// Context cancellation will abort the transaction at the next database call.
//
// Callers focus on business logic; Tx handles the ceremony:
//
//	err := s.Tx(ctx, func(tx *sql.Tx) error {
//	    if _, err := tx.ExecContext(ctx, `UPDATE ...`); err != nil {
//	        return err  // triggers rollback
//	    }
//	    return nil  // triggers commit
//	})
//
// For functions that need to return values, use a closure variable:
//
//	var count int64
//	err := s.Tx(ctx, func(tx *sql.Tx) error {
//	    result, err := tx.ExecContext(ctx, `DELETE ...`)
//	    if err != nil {
//	        return err
//	    }
//	    count, _ = result.RowsAffected()
//	    return nil
//	})
//	return count, err
//
// On a view already bound to a transaction fn joins it instead.
func (s *SQLiteStore) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Atomic runs fn against a view of the store bound to a single transaction.
// Every read and write made through that view commits together, or not at
// all when fn returns an error.
func (s *SQLiteStore) Atomic(ctx context.Context, fn func(ReadWriter) error) error {
	return s.Tx(ctx, func(tx *sql.Tx) error {
		return fn(&SQLiteStore{db: s.db, tx: tx})
	})
}

// genID creates a unique 8-character identifier using crypto/rand.
// Used for entry keys to enable short references in listings.
func genID() (string, error) {
	b := make([]byte, 5) // 5 bytes = 8 base32 chars
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return strings.ToLower(base32.StdEncoding.EncodeToString(b)), nil
}
