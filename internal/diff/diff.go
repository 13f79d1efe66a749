// Package diff compares report trees.
//
// Trees are flattened to an outline with one canonical path per line in
// pre-order, then compared line by line. Sibling order comes from the trees
// themselves, so both sides should be built with the same tree.Order.
package diff

import (
	"fmt"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

var (
	removed = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	added   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Result holds diff output.
type Result struct {
	Old     string // old label
	New     string // new label
	Diff    string // plain diff text
	Added   int    // lines only in new
	Removed int    // lines only in old
}

// Changed reports whether the two sides differ.
func (r Result) Changed() bool {
	return r.Added > 0 || r.Removed > 0
}

// Outline flattens trees to one line per node. With descriptions, nodes
// whose description differs from their path get it appended after a tab.
func Outline(descriptions bool, roots ...*tree.Node) string {
	var b strings.Builder
	for _, r := range roots {
		if r == nil {
			continue
		}
		_ = r.Walk(func(n *tree.Node, _ int) error {
			p := n.Path().String()
			b.WriteString(p)
			if d := n.Description(); descriptions && d != p {
				b.WriteString("\t" + d)
			}
			b.WriteByte('\n')
			return nil
		})
	}
	return b.String()
}

// Trees returns a diff of two forests. Either side may be empty.
func Trees(old, new []*tree.Node, oldLabel, newLabel string, descriptions bool) Result {
	return Compute(Outline(descriptions, old...), Outline(descriptions, new...), oldLabel, newLabel)
}

// Compute returns a line diff between old and new text.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	r := Result{Old: oldLabel, New: newLabel}
	r.Diff = format(d, &r)
	return r
}

// format converts diffs to unified-style text and counts changed lines.
func format(diffs []diffmatchpatch.Diff, r *Result) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			r.Removed += len(lines)
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			r.Added += len(lines)
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					b.WriteString("  " + lines[i] + "\n")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					b.WriteString("  " + lines[i] + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String()
}

// Colourise styles removed lines red and added lines green.
// lipgloss drops the styling when the output is not a terminal.
func Colourise(d string) string {
	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(removed.Render(line) + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(added.Render(line) + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
