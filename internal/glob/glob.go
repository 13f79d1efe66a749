// Package glob matches catalog paths against segment patterns.
//
// A pattern is written like a path, with | between segments. Each segment
// is matched with path.Match, so * and ? never cross a |. A segment of **
// matches any number of segments, including none:
//
//	deps|*            deps|compile, deps|test
//	**|compile        compile, deps|compile, plugins|java|compile
//	plugins|**|test*  plugins|test, plugins|java|testing
package glob

import (
	"fmt"
	"path"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
)

const anySegments = "**"

// Pattern is a compiled segment pattern.
type Pattern struct {
	raw      string
	segments []string
}

// Compile checks every segment of pattern. Empty segments are malformed,
// as they are in paths.
func Compile(pattern string) (Pattern, error) {
	parts := strings.Split(pattern, tree.Delimiter)
	for _, s := range parts {
		if s == "" {
			return Pattern{}, fmt.Errorf("%w: empty segment in pattern %q", tree.ErrMalformedPath, pattern)
		}
		if _, err := path.Match(s, ""); err != nil {
			return Pattern{}, fmt.Errorf("pattern %q: %w", pattern, err)
		}
	}
	return Pattern{raw: pattern, segments: parts}, nil
}

// String returns the pattern as written.
func (p Pattern) String() string { return p.raw }

// Match reports whether the whole of q matches.
func (p Pattern) Match(q tree.Path) bool {
	return match(p.segments, q.Segments())
}

func match(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == anySegments {
			for i := 0; i <= len(segs); i++ {
				if match(pat[1:], segs[i:]) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		// Compile already rejected malformed segments.
		if ok, _ := path.Match(pat[0], segs[0]); !ok {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}

// IsPattern reports whether s uses any pattern syntax.
func IsPattern(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
