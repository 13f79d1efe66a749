package log

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotOpen is returned by Query before Open succeeds.
var ErrNotOpen = errors.New("audit log not open")

// Filter selects entries for Query. Entries always belong to the current
// project.
type Filter struct {
	Path  string // this path and its descendants; "" for all
	Limit int    // 0 for no limit
}

// Query returns the current project's entries, newest first.
func Query(f Filter) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()
	if l == nil {
		return nil, ErrNotOpen
	}

	q := `SELECT start, end, source, author, action, path, count, success, error, detail
		FROM log WHERE project = ?`
	args := []any{l.project}
	if f.Path != "" {
		q += ` AND (path = ? OR substr(path, 1, ?) = ?)`
		prefix := f.Path + "|"
		args = append(args, f.Path, len(prefix), prefix)
	}
	q += ` ORDER BY id DESC`
	if f.Limit > 0 {
		q += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                          Entry
			author, path, msg, detail *string
			count                      *int
			success                    int
		)
		if err := rows.Scan(&e.Start, &e.End, &e.Source, &author, &e.Action, &path, &count, &success, &msg, &detail); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		e.Author = deref(author)
		e.Path = deref(path)
		e.Error = deref(msg)
		e.Success = success == 1
		if count != nil {
			e.Count = *count
		}
		if detail != nil {
			_ = json.Unmarshal([]byte(*detail), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
