// Package tree provides a path-addressed tree for assembling nested reports.
//
// A Path is an immutable sequence of name segments written as
// "segment1|segment2|...". A Node owns a Path, a description and its
// children. Nodes can be inserted from any node above them: Insert routes the
// new node down through existing ancestors, so callers only need every
// immediate parent to exist by the time a node is inserted, not strict
// top-down order.
//
// Neither type is safe for concurrent mutation. Build a tree from one
// goroutine, then share it read-only.
package tree

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter separates segments in the canonical string form of a Path.
const Delimiter = "|"

// ErrMalformedPath indicates an empty path, a path with an empty segment or
// a path that is not valid UTF-8.
var ErrMalformedPath = errors.New("malformed path")

// Path is an ordered, non-empty sequence of non-empty name segments.
// The zero value is not a valid path; use NewPath or ParsePath.
type Path struct {
	segments []string
}

// NewPath builds a Path from explicit segments.
// Segments must be non-empty and must not contain the delimiter, otherwise
// the path could not be parsed back from its string form.
func NewPath(segments ...string) (Path, error) {
	if len(segments) == 0 {
		return Path{}, fmt.Errorf("%w: no segments", ErrMalformedPath)
	}
	for i, s := range segments {
		if s == "" {
			return Path{}, fmt.Errorf("%w: segment %d is empty", ErrMalformedPath, i)
		}
		if strings.Contains(s, Delimiter) {
			return Path{}, fmt.Errorf("%w: segment %q contains %q", ErrMalformedPath, s, Delimiter)
		}
		if !utf8.ValidString(s) {
			return Path{}, fmt.Errorf("%w: segment %q is not valid UTF-8", ErrMalformedPath, s)
		}
	}
	return Path{segments: append([]string(nil), segments...)}, nil
}

// MustPath is like NewPath but panics on error. Intended for literals.
func MustPath(segments ...string) Path {
	p, err := NewPath(segments...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePath splits s on the delimiter.
//
// Examples:
//   - "AA|BB|CC" -> [AA BB CC]
//   - "AA"       -> [AA]
//   - "", "AA||BB", "|AA" -> ErrMalformedPath
//
// Paths must be valid UTF-8; stored paths are matched by character count.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("%w: empty string", ErrMalformedPath)
	}
	if !utf8.ValidString(s) {
		return Path{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrMalformedPath, s)
	}
	parts := strings.Split(s, Delimiter)
	for _, part := range parts {
		if part == "" {
			return Path{}, fmt.Errorf("%w: %q has an empty segment", ErrMalformedPath, s)
		}
	}
	return Path{segments: parts}, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical form, segments joined by the delimiter.
func (p Path) String() string {
	return strings.Join(p.segments, Delimiter)
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// IsZero reports whether p is the zero value.
func (p Path) IsZero() bool { return len(p.segments) == 0 }

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Last returns the final segment, or "" for the zero value.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Parent returns the path with the final segment removed.
// Returns false for single-segment paths, which have no parent.
func (p Path) Parent() (Path, bool) {
	if len(p.segments) < 2 {
		return Path{}, false
	}
	return Path{segments: p.segments[:len(p.segments)-1 : len(p.segments)-1]}, true
}

// Child returns p extended by one segment.
func (p Path) Child(name string) (Path, error) {
	if p.IsZero() {
		return Path{}, fmt.Errorf("%w: no parent segments", ErrMalformedPath)
	}
	return NewPath(append(p.Segments(), name)...)
}

// Ancestors returns every proper ancestor of p, root-most first.
func (p Path) Ancestors() []Path {
	if len(p.segments) < 2 {
		return nil
	}
	out := make([]Path, 0, len(p.segments)-1)
	for i := 1; i < len(p.segments); i++ {
		out = append(out, Path{segments: p.segments[:i:i]})
	}
	return out
}

// Equal reports whether p and q have identical segments.
func (p Path) Equal(q Path) bool {
	return len(p.segments) == len(q.segments) && p.hasPrefix(q)
}

// Compare orders paths segment by segment; a proper prefix sorts first.
func (p Path) Compare(q Path) int {
	n := min(len(p.segments), len(q.segments))
	for i := 0; i < n; i++ {
		if c := strings.Compare(p.segments[i], q.segments[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.segments) < len(q.segments):
		return -1
	case len(p.segments) > len(q.segments):
		return 1
	}
	return 0
}

// IsLeafOf reports whether p is an immediate child of q.
func (p Path) IsLeafOf(q Path) bool {
	return len(p.segments) == len(q.segments)+1 && p.hasPrefix(q)
}

// IsDescendantOf reports whether p lies below q at any depth.
func (p Path) IsDescendantOf(q Path) bool {
	return len(p.segments) > len(q.segments) && p.hasPrefix(q)
}

// hasPrefix reports whether q's segments are the leading segments of p.
func (p Path) hasPrefix(q Path) bool {
	if len(q.segments) > len(p.segments) {
		return false
	}
	for i, s := range q.segments {
		if p.segments[i] != s {
			return false
		}
	}
	return true
}
