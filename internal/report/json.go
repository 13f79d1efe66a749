// json.go defines API-friendly views of trees for -o json and MCP output.

package report

import "github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"

// NodeJSON is the serialisable form of a tree node and its subtree.
type NodeJSON struct {
	Path        string     `json:"path"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Children    []NodeJSON `json:"children,omitempty"`
}

// LeafJSON is the serialisable form of a leaf with its depth.
type LeafJSON struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	Depth       int    `json:"depth"`
}

// SummaryJSON describes the shape of a tree.
type SummaryJSON struct {
	Root   string `json:"root"`
	Height int    `json:"height"`
	Nodes  int    `json:"nodes"`
	Leaves int    `json:"leaves"`
}

// ToJSON converts n and its descendants.
func ToJSON(n *tree.Node) NodeJSON {
	j := NodeJSON{
		Path:        n.Path().String(),
		Name:        n.Path().Last(),
		Description: n.Description(),
	}
	for _, c := range n.Children() {
		j.Children = append(j.Children, ToJSON(c))
	}
	return j
}

// LeavesJSON converts the leaves of n.
func LeavesJSON(n *tree.Node) []LeafJSON {
	leaves := n.Leaves()
	out := make([]LeafJSON, len(leaves))
	for i, l := range leaves {
		out[i] = LeafJSON{
			Path:        l.Node.Path().String(),
			Description: l.Node.Description(),
			Depth:       l.Depth,
		}
	}
	return out
}

// Summary returns height and counts for n.
func Summary(n *tree.Node) SummaryJSON {
	return SummaryJSON{
		Root:   n.Path().String(),
		Height: n.Height(),
		Nodes:  n.Size(),
		Leaves: len(n.Leaves()),
	}
}
