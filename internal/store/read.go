// read.go implements entry lookup and listing.
//
// Descendant selection compares the leading characters of the stored
// canonical path with substr() rather than LIKE, so "%" and "_" inside
// segments are matched literally.

package store

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// below returns the SQL arguments selecting descendants of p: the prefix
// string "p|" and its length in characters, which is what substr() counts.
func below(p tree.Path) (string, int) {
	prefix := p.String() + tree.Delimiter
	return prefix, utf8.RuneCountInString(prefix)
}

// Get retrieves the entry at path.
func (s *SQLiteStore) Get(ctx context.Context, path tree.Path) (*Entry, error) {
	row := s.q().QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE path = ?`, path.String())
	return scanOne(row)
}

// Exists reports whether an entry exists at path.
func (s *SQLiteStore) Exists(ctx context.Context, path tree.Path) (bool, error) {
	var n int
	err := s.q().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entries WHERE path = ?`, path.String()).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", path, err)
	}
	return n > 0, nil
}

// List returns prefix and its descendants ordered by insertion.
func (s *SQLiteStore) List(ctx context.Context, prefix tree.Path) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	var args []any
	if !prefix.IsZero() {
		sub, n := below(prefix)
		query += ` WHERE path = ? OR substr(path, 1, ?) = ?`
		args = append(args, prefix.String(), n, sub)
	}
	query += ` ORDER BY id`

	rows, err := s.q().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

// CountChildren returns the number of immediate children of path.
func (s *SQLiteStore) CountChildren(ctx context.Context, path tree.Path) (int64, error) {
	sub, n := below(path)
	var count int64
	err := s.q().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entries WHERE depth = ? AND substr(path, 1, ?) = ?`,
		path.Len()+1, n, sub).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count children of %s: %w", path, err)
	}
	return count, nil
}

// Count returns the total number of entries.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.q().QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}
