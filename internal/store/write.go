// write.go implements entry creation, update and removal.
//
// The store does not enforce that a parent entry exists; that rule belongs to
// the catalog service, which can also create missing parents on request.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Add inserts e. Key and CreatedAt are generated when empty.
func (s *SQLiteStore) Add(ctx context.Context, e Entry) error {
	if e.Path.IsZero() {
		return fmt.Errorf("add entry: %w", tree.ErrMalformedPath)
	}
	if e.Key == "" {
		key, err := genID()
		if err != nil {
			return err
		}
		e.Key = key
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	return s.Tx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM entries WHERE path = ?`, e.Path.String()).Scan(&n); err != nil {
			return fmt.Errorf("check %s: %w", e.Path, err)
		}
		if n > 0 {
			return fmt.Errorf("%s: %w", e.Path, ErrAlreadyExists)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO entries (key, path, depth, description, author, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.Key, e.Path.String(), e.Path.Len(), nilIfEmpty(e.Description), e.Author, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert %s: %w", e.Path, err)
		}
		return nil
	})
}

// Describe replaces the description of the entry at path.
func (s *SQLiteStore) Describe(ctx context.Context, path tree.Path, description string) error {
	res, err := s.q().ExecContext(ctx,
		`UPDATE entries SET description = ? WHERE path = ?`, nilIfEmpty(description), path.String())
	if err != nil {
		return fmt.Errorf("describe %s: %w", path, err)
	}
	return requireAffected(res, path)
}

// Delete removes the entry at path only.
func (s *SQLiteStore) Delete(ctx context.Context, path tree.Path) error {
	res, err := s.q().ExecContext(ctx, `DELETE FROM entries WHERE path = ?`, path.String())
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return requireAffected(res, path)
}

// DeleteDescendants removes every entry below path.
func (s *SQLiteStore) DeleteDescendants(ctx context.Context, path tree.Path) (int64, error) {
	sub, n := below(path)
	res, err := s.q().ExecContext(ctx, `DELETE FROM entries WHERE substr(path, 1, ?) = ?`, n, sub)
	if err != nil {
		return 0, fmt.Errorf("delete below %s: %w", path, err)
	}
	return res.RowsAffected()
}

// DeleteTree removes path and its descendants in one transaction.
// Returns ErrNotFound when path itself does not exist.
func (s *SQLiteStore) DeleteTree(ctx context.Context, path tree.Path) (int64, error) {
	var count int64
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE path = ?`, path.String())
		if err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}
		if err := requireAffected(res, path); err != nil {
			return err
		}
		sub, n := below(path)
		res, err = tx.ExecContext(ctx, `DELETE FROM entries WHERE substr(path, 1, ?) = ?`, n, sub)
		if err != nil {
			return fmt.Errorf("delete below %s: %w", path, err)
		}
		removed, _ := res.RowsAffected()
		count = removed + 1
		return nil
	})
	return count, err
}

// requireAffected maps a zero-row result to ErrNotFound.
func requireAffected(res sql.Result, path tree.Path) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return nil
}

// nilIfEmpty stores empty strings as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
