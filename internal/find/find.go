// Package find searches entry paths and descriptions for text.
//
// Matching is a case-insensitive substring test, so "compile" finds both
// "deps|compile" and an entry described as "Compile classpath". With Regex
// the query is a regular expression instead, still ignoring case.
package find

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/format"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

// ErrEmptyQuery is returned for a blank query.
var ErrEmptyQuery = errors.New("empty query")

// Options configures a search operation.
type Options struct {
	Prefix    tree.Path // scope search to a subtree
	PathsOnly bool      // only output paths
	NoPaths   bool      // match descriptions only
	Regex     bool      // query is a regular expression
}

// Result contains the outcome of a search operation.
type Result struct {
	Entries []store.Entry
}

// ToJSON converts the result for -o json output.
func (r Result) ToJSON() []store.EntryJSON {
	out := make([]store.EntryJSON, len(r.Entries))
	for i := range r.Entries {
		out[i] = r.Entries[i].ToJSON()
	}
	return out
}

// Run searches entries under opts.Prefix and writes matches to w.
func Run(ctx context.Context, w io.Writer, svc service.Service, query string, opts Options) (Result, error) {
	match, err := matcher(query, opts.Regex)
	if err != nil {
		return Result{}, err
	}

	entries, err := svc.List(ctx, opts.Prefix)
	if err != nil {
		return Result{}, err
	}
	entries = slices.DeleteFunc(entries, func(e store.Entry) bool {
		if match(e.Description) {
			return false
		}
		return opts.NoPaths || !match(e.Path.String())
	})

	if opts.PathsOnly {
		err = format.Paths(w, entries)
	} else {
		err = format.Matches(w, entries)
	}
	return Result{Entries: entries}, err
}

// matcher compiles query into a case-insensitive test.
func matcher(query string, regex bool) (func(string) bool, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if regex {
		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		return re.MatchString, nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}, nil
}
