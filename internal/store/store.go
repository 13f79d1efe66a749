// Package store defines catalog entry persistence types and the Store interface.
// Implementations handle the actual database operations while consumers
// depend only on this interface, enabling testing and alternative backends.
package store

import (
	"encoding/json"
	"time"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// Entry is one catalog position. Entries are flat rows; the tree is assembled
// from them on demand by the report package.
type Entry struct {
	ID          int64     // Database primary key, also the insertion sequence
	Key         string    // Unique 8-char identifier
	Path        tree.Path // Position in the hierarchy
	Description string    // Free text shown in reports, empty for none
	Author      string    // Who added the entry
	CreatedAt   int64     // Unix timestamp of creation
}

// EntryJSON is the API-friendly representation of an Entry.
type EntryJSON struct {
	Key         string `json:"key"`
	Path        string `json:"path"`
	Depth       int    `json:"depth"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author"`
	CreatedAt   string `json:"created_at"`
}

// ToJSON converts an Entry to its API representation with an RFC3339 timestamp.
func (e *Entry) ToJSON() EntryJSON {
	return EntryJSON{
		Key:         e.Key,
		Path:        e.Path.String(),
		Depth:       e.Path.Len(),
		Description: e.Description,
		Author:      e.Author,
		CreatedAt:   time.Unix(e.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}

// MarshalJSON encodes a value with indentation for human-readable CLI output.
// Use this instead of json.Marshal when the output will be displayed to users.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
