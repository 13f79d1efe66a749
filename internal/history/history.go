// Package history shows the audit trail of the current catalog.
//
// Every CLI command and MCP tool call is recorded by internal/log; history
// reads those records back, optionally limited to one subtree.
package history

import (
	"io"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/format"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/log"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Options configures a history operation.
type Options struct {
	Path   tree.Path // zero for the whole catalog
	Limit  int       // maximum entries, 0 for all
	Failed bool      // only failed operations
}

// Result contains the outcome of a history operation.
type Result struct {
	Entries []log.Entry
}

// EntryJSON is the -o json form of an audit entry.
type EntryJSON struct {
	Time    int64          `json:"time"`
	Source  string         `json:"source"`
	Action  string         `json:"action"`
	Author  string         `json:"author,omitempty"`
	Path    string         `json:"path,omitempty"`
	Count   int            `json:"count,omitempty"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

// ToJSON converts the result for -o json output.
func (r Result) ToJSON() []EntryJSON {
	out := make([]EntryJSON, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = EntryJSON{
			Time:    e.Start,
			Source:  e.Source,
			Action:  e.Action,
			Author:  e.Author,
			Path:    e.Path,
			Count:   e.Count,
			Success: e.Success,
			Error:   e.Error,
			Detail:  e.Detail,
		}
	}
	return out
}

// Run reads audit entries, newest first, and writes them to w.
func Run(w io.Writer, opts Options) (Result, error) {
	f := log.Filter{Path: opts.Path.String()}
	if !opts.Failed {
		f.Limit = opts.Limit
	}
	entries, err := log.Query(f)
	if err != nil {
		return Result{}, err
	}

	if opts.Failed {
		kept := entries[:0]
		for _, e := range entries {
			if !e.Success {
				kept = append(kept, e)
			}
			if opts.Limit > 0 && len(kept) == opts.Limit {
				break
			}
		}
		entries = kept
	}

	return Result{Entries: entries}, format.History(w, entries)
}
