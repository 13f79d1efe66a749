// checkpoint.go implements SQLite maintenance: WAL checkpoints on shutdown
// and VACUUM to give back pages freed by removals.

package store

import (
	"context"
	"fmt"
)

// Checkpoint writes all WAL data back to the main database file and truncates
// the WAL. This removes the -wal and -shm files from the filesystem.
func (s *SQLiteStore) Checkpoint(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("WAL checkpoint: %w", err)
	}
	return nil
}

// Vacuum rebuilds the database file without free pages. Entries removed
// with rm or clear leave their pages on the freelist until then.
func (s *SQLiteStore) Vacuum(ctx context.Context) error {
	if err := s.Checkpoint(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return s.Checkpoint(ctx)
}

// FreePages returns the number of unused pages and the page size.
func (s *SQLiteStore) FreePages(ctx context.Context) (pages, size int64, err error) {
	if err := s.db.QueryRowContext(ctx, `PRAGMA freelist_count`).Scan(&pages); err != nil {
		return 0, 0, fmt.Errorf("freelist count: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `PRAGMA page_size`).Scan(&size); err != nil {
		return 0, 0, fmt.Errorf("page size: %w", err)
	}
	return pages, size, nil
}
