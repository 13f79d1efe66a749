package report

import (
	"errors"
	"testing"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(paths ...string) []Entry {
	out := make([]Entry, len(paths))
	for i, p := range paths {
		out[i] = Entry{Path: tree.MustParsePath(p)}
	}
	return out
}

func childNames(n *tree.Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Path().Last())
	}
	return out
}

func TestBuild_ArbitraryOrder(t *testing.T) {
	// Deepest entries first: a strict top-down insert would fail.
	es := entries(
		"root|c2|c2b|c2b2",
		"root|c1|c1b",
		"root|c2|c2a",
		"root|c1",
		"root|c2|c2b",
		"root|c1|c1a",
		"root|c2",
	)

	n, err := Build(tree.MustParsePath("root"), es, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, n.Height())
	assert.Equal(t, 8, n.Size())
	// Siblings keep enumeration order without an Order.
	assert.Equal(t, []string{"c1", "c2"}, childNames(n))
	c1 := n.Find(tree.MustParsePath("root|c1"))
	assert.Equal(t, []string{"c1b", "c1a"}, childNames(c1))
}

func TestBuild_ByName(t *testing.T) {
	es := entries("r|z", "r|a", "r|m", "r|a|y", "r|a|b")

	n, err := Build(tree.MustParsePath("r"), es, Options{Order: tree.ByName})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "m", "z"}, childNames(n))
	assert.Equal(t, []string{"b", "y"}, childNames(n.Find(tree.MustParsePath("r|a"))))
}

func TestBuild_RootDescriptionAndFiltering(t *testing.T) {
	es := []Entry{
		{Path: tree.MustParsePath("r"), Description: "Root group"},
		{Path: tree.MustParsePath("r|a"), Description: "Alpha"},
		{Path: tree.MustParsePath("other|x")},
	}

	n, err := Build(tree.MustParsePath("r"), es, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Root group", n.Description())
	assert.Equal(t, 2, n.Size())
	assert.Equal(t, "Alpha", n.Children()[0].Description())
}

func TestBuild_MissingAncestor(t *testing.T) {
	es := entries("r|a", "r|x|y", "r|p|q|s")

	n, err := Build(tree.MustParsePath("r"), es, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, tree.ErrNoAttachment)
	assert.Contains(t, err.Error(), "r|x|y")
	assert.Contains(t, err.Error(), "r|p|q|s")

	// Routable entries are still attached.
	require.NotNil(t, n)
	assert.NotNil(t, n.Find(tree.MustParsePath("r|a")))

	var ie *tree.InsertError
	assert.True(t, errors.As(err, &ie))
}

func TestBuild_Parents(t *testing.T) {
	es := entries("r|x|y|z", "r|a")

	n, err := Build(tree.MustParsePath("r"), es, Options{Parents: true, Order: tree.ByName})
	require.NoError(t, err)
	assert.Equal(t, 4, n.Height())
	xy := n.Find(tree.MustParsePath("r|x|y"))
	require.NotNil(t, xy)
	assert.Equal(t, "r|x|y", xy.Description())
	assert.Equal(t, []string{"a", "x"}, childNames(n))
}

func TestBuild_Duplicates(t *testing.T) {
	_, err := Build(tree.MustParsePath("r"), entries("r|a", "r|a"), Options{})
	assert.ErrorIs(t, err, tree.ErrDuplicatePath)
}

func TestBuild_ZeroRoot(t *testing.T) {
	_, err := Build(tree.Path{}, nil, Options{})
	assert.ErrorIs(t, err, tree.ErrMalformedPath)
}

func TestRootsAndForest(t *testing.T) {
	es := entries("b", "b|1", "a", "a|1", "a|1|x")

	var names []string
	for _, r := range Roots(es) {
		names = append(names, r.String())
	}
	assert.Equal(t, []string{"b", "a"}, names)

	trees, err := Forest(es, Options{Order: tree.ByName})
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, "a", trees[0].Path().String())
	assert.Equal(t, 3, trees[0].Height())
	assert.Equal(t, 2, trees[1].Height())
}

func TestSelect(t *testing.T) {
	es := entries("a", "a|1", "b", "b|1|x")

	all, err := Select(tree.Path{}, es, Options{Parents: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	sub, err := Select(tree.MustParsePath("b|1"), es, Options{})
	require.NoError(t, err)
	require.Len(t, sub, 1)
	assert.Equal(t, 2, sub[0].Height())

	none, err := Select(tree.MustParsePath("c"), es, Options{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSelect_PartialTree(t *testing.T) {
	// r|a|b is orphaned without Parents; r|c still attaches.
	es := entries("r", "r|a|b", "r|c")

	sub, err := Select(tree.MustParsePath("r"), es, Options{})
	assert.ErrorIs(t, err, tree.ErrNoAttachment)
	require.Len(t, sub, 1)
	assert.Equal(t, []string{"c"}, childNames(sub[0]))

	all, ferr := Forest(es, Options{})
	assert.ErrorIs(t, ferr, tree.ErrNoAttachment)
	require.Len(t, all, 1)
	assert.Equal(t, childNames(sub[0]), childNames(all[0]))
}

func TestJSONViews(t *testing.T) {
	n, err := Build(tree.MustParsePath("r"), entries("r|a", "r|a|b", "r|c"), Options{Order: tree.ByName})
	require.NoError(t, err)

	j := ToJSON(n)
	assert.Equal(t, "r", j.Path)
	require.Len(t, j.Children, 2)
	assert.Equal(t, "r|a|b", j.Children[0].Children[0].Path)

	leaves := LeavesJSON(n)
	require.Len(t, leaves, 2)
	assert.Equal(t, LeafJSON{Path: "r|a|b", Description: "r|a|b", Depth: 2}, leaves[0])

	assert.Equal(t, SummaryJSON{Root: "r", Height: 3, Nodes: 4, Leaves: 2}, Summary(n))
}
