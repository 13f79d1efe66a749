// log_storage.go persists audit entries in SQLite.
//
// The project column holds a hash of the catalog directory so entries from
// different projects can be grouped without recording their locations.
// Write failures are reported on stderr and never fail the operation itself.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, author, action, path, count,
		                 success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.Path), nilIfZero(e.Count),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "seaside: audit log write failed: %v\n", err)
	}
}

// dbPathFunc returns the database path. Tests point it at a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Containers without a home still get a log next to the catalog.
		return filepath.Join(".seaside", "log", "seaside-log.db")
	}
	return filepath.Join(home, ".seaside", "log", "seaside-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash returns a 16 hex character project identifier.
func hash(s string) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			project  TEXT NOT NULL,
			source   TEXT NOT NULL,
			author   TEXT,
			action   TEXT NOT NULL,
			path     TEXT,
			count    INTEGER,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nilIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
