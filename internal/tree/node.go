// node.go implements the mutable tree node and its insertion routing.
//
// Separated from path.go so the value semantics of Path stay independent of
// ownership concerns. A Node owns its children exclusively and keeps no
// reference to its parent; routing is done top-down by path comparison.

package tree

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoAttachment indicates Insert found neither the receiver nor any of
	// its children to be an ancestor of the new node. This happens when an
	// intermediate ancestor was never inserted.
	ErrNoAttachment = errors.New("no attachment point")
	// ErrDuplicatePath indicates a sibling with the same path already exists.
	ErrDuplicatePath = errors.New("duplicate path")
	// ErrNilNode is returned when Insert is called with a nil node.
	ErrNilNode = errors.New("nil node")
	// ErrAttached indicates the node already belongs to a tree. A node has at
	// most one parent; Clear releases its children for reuse.
	ErrAttached = errors.New("node already attached")
)

// InsertError attributes an insertion failure to the path being inserted and
// the node at which routing stopped.
type InsertError struct {
	Path  Path  // path of the node that could not be inserted
	Under Path  // path of the node where routing stopped
	Err   error // ErrNoAttachment, ErrDuplicatePath or ErrAttached
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("insert %s under %s: %v", e.Path, e.Under, e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }

// Node is a tree position keyed by a Path.
type Node struct {
	path        Path
	description string
	order       Order
	children    []*Node
	attached    bool
}

// Option configures a Node at construction.
type Option func(*Node)

// WithDescription sets the node description.
func WithDescription(d string) Option {
	return func(n *Node) { n.description = d }
}

// WithOrder sets the strategy used to position this node's children.
// A nil Order keeps insertion order.
func WithOrder(o Order) Option {
	return func(n *Node) { n.order = o }
}

// New creates a detached node with no children.
func New(p Path, opts ...Option) *Node {
	n := &Node{path: p}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Path returns the node's path.
func (n *Node) Path() Path { return n.path }

// Order returns the sibling ordering strategy, nil for insertion order.
func (n *Node) Order() Order { return n.order }

// Description returns the description given at construction, or the
// canonical path string when none was set.
func (n *Node) Description() string {
	if n.description == "" {
		return n.path.String()
	}
	return n.description
}

// Insert attaches c somewhere in the subtree rooted at n.
//
// If c is an immediate child of n it is attached to n, positioned by n's
// Order. Otherwise Insert delegates to the child of n that is an ancestor of
// c. When neither applies an *InsertError wrapping ErrNoAttachment is
// returned and the tree is left unchanged.
func (n *Node) Insert(c *Node) error {
	if c == nil {
		return ErrNilNode
	}
	if c.attached {
		return &InsertError{Path: c.path, Under: n.path, Err: ErrAttached}
	}
	if c.path.IsLeafOf(n.path) {
		return n.attach(c)
	}
	for _, child := range n.children {
		if c.path.IsDescendantOf(child.path) {
			return child.Insert(c)
		}
	}
	return &InsertError{Path: c.path, Under: n.path, Err: ErrNoAttachment}
}

// attach adds c as a direct child. With an order set, c goes before the first
// sibling that sorts after it, so equal siblings keep insertion order.
func (n *Node) attach(c *Node) error {
	for _, child := range n.children {
		if child.path.Equal(c.path) {
			return &InsertError{Path: c.path, Under: n.path, Err: ErrDuplicatePath}
		}
	}
	c.attached = true
	if n.order == nil {
		n.children = append(n.children, c)
		return nil
	}
	i := slices.IndexFunc(n.children, func(s *Node) bool {
		return n.order.Compare(c, s) < 0
	})
	if i < 0 {
		i = len(n.children)
	}
	n.children = slices.Insert(n.children, i, c)
	return nil
}

// Children returns the direct children in sibling order.
// The returned slice is a copy; modifying it does not affect the tree.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Size returns the number of nodes in the subtree, including n.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}

// Height returns the number of levels from n down to its deepest leaf,
// counting n itself. A childless node has height 1.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.children {
		h = max(h, c.Height())
	}
	return h + 1
}

// Leaf is a childless node found by Leaves, with its edge distance from the
// node Leaves was called on.
type Leaf struct {
	Node  *Node
	Depth int
}

// Leaves returns every childless node in the subtree in pre-order.
// A childless receiver is returned as its own leaf at depth 0.
func (n *Node) Leaves() []Leaf {
	var out []Leaf
	_ = n.Walk(func(x *Node, depth int) error {
		if len(x.children) == 0 {
			out = append(out, Leaf{Node: x, Depth: depth})
		}
		return nil
	})
	return out
}

// Clear discards all descendants. n itself remains, with height 1.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.attached = false
	}
	n.children = nil
}

// Find returns the node in the subtree whose path equals p, or nil.
func (n *Node) Find(p Path) *Node {
	if n.path.Equal(p) {
		return n
	}
	if !p.IsDescendantOf(n.path) {
		return nil
	}
	for _, c := range n.children {
		if found := c.Find(p); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and its descendants in pre-order, passing each node's depth
// relative to n. It stops at and returns the first error from fn.
func (n *Node) Walk(fn func(x *Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) error, depth int) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}
