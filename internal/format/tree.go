// tree.go draws report trees with box-drawing or ASCII connectors and emits
// them as nested markdown lists.

package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/charmbracelet/lipgloss"
)

// Style selects the connector set used by Tree.
type Style string

// Connector styles.
const (
	Unicode Style = "unicode"
	ASCII   Style = "ascii"
)

type connectors struct {
	branch, last, pipe, space string
}

var styles = map[Style]connectors{
	Unicode: {"├── ", "└── ", "│   ", "    "},
	ASCII:   {"|-- ", "`-- ", "|   ", "    "},
}

// TreeOptions configures Tree.
type TreeOptions struct {
	Style        Style // Unicode when empty
	Descriptions bool  // append descriptions that differ from the path
	Colour       bool  // bold group nodes, dim descriptions
}

var (
	groupStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	descStyle  = lipgloss.NewStyle().Faint(true)
)

// Tree prints n and its descendants. The root line shows the full path;
// nested lines show the last segment only.
func Tree(w io.Writer, n *tree.Node, opts TreeOptions) error {
	c, ok := styles[opts.Style]
	if !ok {
		c = styles[Unicode]
	}
	r := renderer{w: w, c: c, opts: opts}
	r.line("", n, n.Path().String())
	r.children(n, "")
	return r.err
}

type renderer struct {
	w    io.Writer
	c    connectors
	opts TreeOptions
	err  error
}

func (r *renderer) children(n *tree.Node, prefix string) {
	kids := n.Children()
	for i, k := range kids {
		last := i == len(kids)-1
		conn, next := r.c.branch, r.c.pipe
		if last {
			conn, next = r.c.last, r.c.space
		}
		r.line(prefix+conn, k, k.Path().Last())
		r.children(k, prefix+next)
	}
}

func (r *renderer) line(prefix string, n *tree.Node, name string) {
	if r.err != nil {
		return
	}
	if r.opts.Colour && n.Len() > 0 {
		name = groupStyle.Render(name)
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(name)
	if d := n.Description(); r.opts.Descriptions && d != n.Path().String() {
		d = "  " + d
		if r.opts.Colour {
			d = descStyle.Render(d)
		}
		b.WriteString(d)
	}
	b.WriteByte('\n')
	_, r.err = io.WriteString(r.w, b.String())
}

// Markdown writes n as a nested markdown list with a heading for the root.
// Descriptions that differ from the path follow the name.
func Markdown(w io.Writer, n *tree.Node) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", n.Path())
	if d := n.Description(); d != n.Path().String() {
		fmt.Fprintf(&b, "%s\n\n", d)
	}
	_ = n.Walk(func(c *tree.Node, depth int) error {
		if depth == 0 {
			return nil
		}
		b.WriteString(strings.Repeat("  ", depth-1))
		fmt.Fprintf(&b, "- **%s**", c.Path().Last())
		if d := c.Description(); d != c.Path().String() {
			fmt.Fprintf(&b, ": %s", d)
		}
		b.WriteByte('\n')
		return nil
	})
	_, err := io.WriteString(w, b.String())
	return err
}
