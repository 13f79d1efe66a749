package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(s string, opts ...Option) *Node {
	return New(MustParsePath(s), opts...)
}

func lasts(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Path().Last()
	}
	return out
}

// buildScenario inserts the reference entries, all from the root.
func buildScenario(t *testing.T, opts ...Option) *Node {
	t.Helper()
	root := node("root", opts...)
	for _, p := range []string{
		"root|c1",
		"root|c2",
		"root|c1|c1a",
		"root|c1|c1b",
		"root|c2|c2a",
		"root|c2|c2b",
		"root|c2|c2b|c2b2",
	} {
		require.NoError(t, root.Insert(node(p, opts...)), "insert %s", p)
	}
	return root
}

func TestNode_Scenario(t *testing.T) {
	root := buildScenario(t)

	assert.Equal(t, 4, root.Height())
	require.Len(t, root.Children(), 2)

	c1 := root.Find(MustParsePath("root|c1"))
	require.NotNil(t, c1)
	assert.Len(t, c1.Children(), 2)

	var leaves []string
	for _, l := range root.Leaves() {
		leaves = append(leaves, l.Node.Path().Last())
	}
	assert.ElementsMatch(t, []string{"c1a", "c1b", "c2a", "c2b2"}, leaves)
	assert.NotContains(t, leaves, "c2b")

	root.Clear()
	assert.Equal(t, 1, root.Height())
	assert.Empty(t, root.Children())
}

func TestNode_LeafDepths(t *testing.T) {
	root := buildScenario(t)

	depths := map[string]int{}
	for _, l := range root.Leaves() {
		depths[l.Node.Path().String()] = l.Depth
	}
	assert.Equal(t, map[string]int{
		"root|c1|c1a":      2,
		"root|c1|c1b":      2,
		"root|c2|c2a":      2,
		"root|c2|c2b|c2b2": 3,
	}, depths)

	c2 := root.Find(MustParsePath("root|c2"))
	require.NotNil(t, c2)
	sub := c2.Leaves()
	require.Len(t, sub, 2)
	assert.Equal(t, 1, sub[0].Depth)
	assert.Equal(t, 2, sub[1].Depth)
}

func TestNode_LeafSetLaw(t *testing.T) {
	root := buildScenario(t)

	var childless []*Node
	_ = root.Walk(func(n *Node, _ int) error {
		if n.Len() == 0 {
			childless = append(childless, n)
		}
		return nil
	})

	var got []*Node
	for _, l := range root.Leaves() {
		got = append(got, l.Node)
	}
	assert.ElementsMatch(t, childless, got)
}

func TestNode_LoneNode(t *testing.T) {
	n := node("solo")
	assert.Equal(t, 1, n.Height())
	assert.Equal(t, 1, n.Size())

	leaves := n.Leaves()
	require.Len(t, leaves, 1)
	assert.Same(t, n, leaves[0].Node)
	assert.Equal(t, 0, leaves[0].Depth)

	n.Clear()
	assert.Equal(t, 1, n.Height())
}

func TestNode_Height(t *testing.T) {
	root := node("r")
	assert.Equal(t, 1, root.Height())

	require.NoError(t, root.Insert(node("r|a")))
	assert.Equal(t, 2, root.Height())

	require.NoError(t, root.Insert(node("r|b")))
	assert.Equal(t, 2, root.Height())

	require.NoError(t, root.Insert(node("r|b|c")))
	assert.Equal(t, 3, root.Height())

	// Clearing a subtree only affects that subtree.
	root.Find(MustParsePath("r|b")).Clear()
	assert.Equal(t, 2, root.Height())
	assert.Equal(t, 3, root.Size())
}

func TestNode_InsertFromAnyAncestor(t *testing.T) {
	root := node("r")
	require.NoError(t, root.Insert(node("r|a")))
	a := root.Find(MustParsePath("r|a"))
	require.NotNil(t, a)

	// Inserting through a subtree root is equivalent to inserting from the top.
	require.NoError(t, a.Insert(node("r|a|x")))
	require.NoError(t, root.Insert(node("r|a|x|y")))

	assert.Equal(t, 4, root.Height())
	assert.NotNil(t, root.Find(MustParsePath("r|a|x|y")))
}

func TestNode_InsertionOrder(t *testing.T) {
	root := node("r")
	for _, p := range []string{"r|zeta", "r|alpha", "r|mid"} {
		require.NoError(t, root.Insert(node(p)))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, lasts(root.Children()))
	assert.Nil(t, root.Order())
}

func TestNode_ByName(t *testing.T) {
	root := node("r", WithOrder(ByName))
	for _, p := range []string{"r|zeta", "r|alpha", "r|mid", "r|beta"} {
		require.NoError(t, root.Insert(node(p, WithOrder(ByName))))
	}
	assert.Equal(t, []string{"alpha", "beta", "mid", "zeta"}, lasts(root.Children()))

	// Order applies to grandchildren through the child's own strategy.
	for _, p := range []string{"r|mid|b", "r|mid|a"} {
		require.NoError(t, root.Insert(node(p)))
	}
	mid := root.Find(MustParsePath("r|mid"))
	assert.Equal(t, []string{"a", "b"}, lasts(mid.Children()))
}

func TestNode_CustomOrder(t *testing.T) {
	reverse := OrderFunc(func(a, b *Node) int {
		return -ByName.Compare(a, b)
	})
	root := node("r", WithOrder(reverse))
	for _, p := range []string{"r|a", "r|c", "r|b"} {
		require.NoError(t, root.Insert(node(p)))
	}
	assert.Equal(t, []string{"c", "b", "a"}, lasts(root.Children()))
}

func TestNode_EqualKeysKeepInsertionOrder(t *testing.T) {
	byLength := OrderFunc(func(a, b *Node) int {
		return len(a.Path().Last()) - len(b.Path().Last())
	})
	root := node("r", WithOrder(byLength))
	for _, p := range []string{"r|bb", "r|aa", "r|c", "r|dd"} {
		require.NoError(t, root.Insert(node(p)))
	}
	assert.Equal(t, []string{"c", "bb", "aa", "dd"}, lasts(root.Children()))
}

func TestNode_ChildrenIsCopy(t *testing.T) {
	root := buildScenario(t)
	kids := root.Children()
	kids[0] = nil
	assert.NotNil(t, root.Children()[0])
}

func TestNode_InsertErrors(t *testing.T) {
	t.Run("missing intermediate ancestor", func(t *testing.T) {
		root := node("r")
		err := root.Insert(node("r|a|b"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoAttachment)

		var ie *InsertError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "r|a|b", ie.Path.String())
		assert.Equal(t, "r", ie.Under.String())
		assert.Contains(t, err.Error(), "r|a|b")
		assert.Equal(t, 1, root.Height(), "failed insert must not modify the tree")
	})

	t.Run("stops at deepest ancestor", func(t *testing.T) {
		root := node("r")
		require.NoError(t, root.Insert(node("r|a")))
		err := root.Insert(node("r|a|b|c"))

		var ie *InsertError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "r|a", ie.Under.String())
	})

	t.Run("outside the subtree", func(t *testing.T) {
		root := node("r")
		assert.ErrorIs(t, root.Insert(node("other|a")), ErrNoAttachment)
		assert.ErrorIs(t, root.Insert(node("r")), ErrNoAttachment)
	})

	t.Run("duplicate path", func(t *testing.T) {
		root := node("r", WithOrder(ByName))
		require.NoError(t, root.Insert(node("r|a")))
		err := root.Insert(node("r|a"))
		assert.ErrorIs(t, err, ErrDuplicatePath)
		assert.Len(t, root.Children(), 1)
	})

	t.Run("nil node", func(t *testing.T) {
		assert.ErrorIs(t, node("r").Insert(nil), ErrNilNode)
	})

	t.Run("already attached", func(t *testing.T) {
		r1, r2 := node("r"), node("r")
		c := node("r|c")
		require.NoError(t, r1.Insert(c))

		err := r2.Insert(c)
		assert.ErrorIs(t, err, ErrAttached)
		var ie *InsertError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "r|c", ie.Path.String())
		assert.Empty(t, r2.Children())

		// A second insert under the same parent is refused too.
		assert.ErrorIs(t, r1.Insert(c), ErrAttached)
		require.NoError(t, r1.Insert(node("r|c|x")))
		assert.Equal(t, 3, r1.Height())
		assert.Equal(t, 1, r2.Height())
	})

	t.Run("released by clear", func(t *testing.T) {
		r1, r2 := node("r"), node("r")
		c := node("r|c")
		require.NoError(t, r1.Insert(c))
		r1.Clear()

		require.NoError(t, r2.Insert(c))
		assert.Equal(t, []string{"c"}, lasts(r2.Children()))
	})
}

func TestNode_Description(t *testing.T) {
	assert.Equal(t, "a|b", node("a|b").Description())
	assert.Equal(t, "Build plugins", node("a|b", WithDescription("Build plugins")).Description())
}

func TestNode_Find(t *testing.T) {
	root := buildScenario(t)

	assert.Same(t, root, root.Find(MustParsePath("root")))
	assert.NotNil(t, root.Find(MustParsePath("root|c2|c2b|c2b2")))
	assert.Nil(t, root.Find(MustParsePath("root|c3")))
	assert.Nil(t, root.Find(MustParsePath("elsewhere")))
}

func TestNode_Walk(t *testing.T) {
	root := buildScenario(t)

	var visited []string
	err := root.Walk(func(n *Node, depth int) error {
		visited = append(visited, n.Path().Last())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "c1", "c1a", "c1b", "c2", "c2a", "c2b", "c2b2"}, visited)
	assert.Equal(t, 8, root.Size())

	stop := errors.New("stop")
	count := 0
	err = root.Walk(func(n *Node, _ int) error {
		count++
		if n.Path().Last() == "c1a" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, count)
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("name")
	require.NoError(t, err)
	assert.NotNil(t, o)

	o, err = ParseOrder("")
	require.NoError(t, err)
	assert.NotNil(t, o)

	o, err = ParseOrder("insertion")
	require.NoError(t, err)
	assert.Nil(t, o)

	_, err = ParseOrder("random")
	assert.Error(t, err)
}
