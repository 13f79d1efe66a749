// Package log records an audit trail of seaside operations.
// Entries are stored in ~/.seaside/log/seaside-log.db and cover CLI commands
// and MCP tool calls across every catalog on the machine.
//
// # Fluent API
//
//	log.Event("catalog:add", "add").
//		Author(cmd.Author()).
//		Path(p.String()).
//		Write(err)
//
//	log.Event("catalog:rm", "remove").
//		Author(cmd.Author()).
//		Path(p.String()).
//		Count(n).
//		Detail("recursive", true).
//		Write(err)
//
// The source is "{extension}:{command}" for CLI commands or "mcp:{tool}" for
// MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry is a single audit record.
type Entry struct {
	Source string // e.g. "catalog:add", "mcp:seaside_tree"
	Author string
	Action string // verb: add, remove, clear, import, export, render
	Path   string // catalog path the operation targets
	Count  int    // entries affected or returned

	Start int64 // unix time when Event was called
	End   int64 // unix time when Write was called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs an Entry. Create one with [Event] and finish with
// [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts an entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation. MCP tools use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the catalog path the operation targets.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Count sets how many entries were affected or returned.
func (b *Builder) Count(n int) *Builder {
	b.entry.Count = n
	return b
}

// Detail adds operation-specific data such as a file name or format.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry. A nil err marks it successful.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Callers may ignore the error; logging is best-effort.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject tags subsequent entries with the catalog directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. No-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
