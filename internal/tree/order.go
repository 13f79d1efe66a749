package tree

import (
	"fmt"
	"strings"
)

// Order positions siblings. Compare returns a negative number when a sorts
// before b, zero when they are equivalent and a positive number otherwise.
type Order interface {
	Compare(a, b *Node) int
}

// OrderFunc adapts a function to the Order interface.
type OrderFunc func(a, b *Node) int

// Compare calls f(a, b).
func (f OrderFunc) Compare(a, b *Node) int { return f(a, b) }

// ByName orders siblings by the last segment of their paths.
var ByName Order = OrderFunc(func(a, b *Node) int {
	return strings.Compare(a.path.Last(), b.path.Last())
})

// Order names accepted by ParseOrder.
const (
	OrderName      = "name"
	OrderInsertion = "insertion"
)

// ParseOrder maps a configured order name to a strategy.
// "insertion" maps to nil, meaning children keep insertion order.
func ParseOrder(name string) (Order, error) {
	switch name {
	case OrderName, "":
		return ByName, nil
	case OrderInsertion:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown order %q: must be %q or %q", name, OrderName, OrderInsertion)
	}
}
