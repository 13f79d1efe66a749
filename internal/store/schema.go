// schema.go applies the embedded SQL migrations in sql/.
//
// Files are named NNN_description.sql and run in numeric order. The highest
// applied number is kept in PRAGMA user_version, so opening an existing
// catalog only runs the files it has not seen yet. Every file still uses
// IF NOT EXISTS so a partially applied migration can be retried.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var schemas embed.FS

var (
	// ErrNotFound indicates the requested entry does not exist.
	ErrNotFound = errors.New("entry not found")
	// ErrAlreadyExists prevents adding a second entry with the same path.
	ErrAlreadyExists = errors.New("entry already exists")
	// ErrSchemaTooNew is returned when the database was written by a newer
	// seaside than this one.
	ErrSchemaTooNew = errors.New("database schema is newer than this build")
)

// migration is one numbered schema file.
type migration struct {
	version int
	name    string
}

// migrations lists the files in dir ordered by version.
func migrations(fsys fs.FS, dir string) ([]migration, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read schema directory: %w", err)
	}

	var out []migration
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".sql") {
			continue
		}
		prefix, _, ok := strings.Cut(f.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("schema file %s: missing version prefix", f.Name())
		}
		v, err := strconv.Atoi(prefix)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("schema file %s: invalid version %q", f.Name(), prefix)
		}
		out = append(out, migration{version: v, name: f.Name()})
	}
	slices.SortFunc(out, func(a, b migration) int { return a.version - b.version })
	for i := 1; i < len(out); i++ {
		if out[i].version == out[i-1].version {
			return nil, fmt.Errorf("schema files %s and %s share version %d", out[i-1].name, out[i].name, out[i].version)
		}
	}
	return out, nil
}

// Migrate runs every migration in dir above the database's user_version and
// records the new version. It returns the version the database ends at.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS, dir string) (int, error) {
	var current int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}

	ms, err := migrations(fsys, dir)
	if err != nil {
		return current, err
	}
	if n := len(ms); n > 0 && current > ms[n-1].version {
		return current, fmt.Errorf("%w: version %d, latest known %d", ErrSchemaTooNew, current, ms[n-1].version)
	}

	for _, m := range ms {
		if m.version <= current {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+m.name)
		if err != nil {
			return current, fmt.Errorf("read %s: %w", m.name, err)
		}
		if _, err := db.ExecContext(ctx, string(data)); err != nil {
			return current, fmt.Errorf("exec %s: %w", m.name, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			return current, fmt.Errorf("record schema version %d: %w", m.version, err)
		}
		current = m.version
	}
	return current, nil
}

// execSchema brings the catalog schema up to date.
func execSchema(db *sql.DB) error {
	_, err := Migrate(context.Background(), db, schemas, "sql")
	return err
}
