// Package Trees holds a plain binary tree container whose shape is decided
// entirely by its caller.
//
// Methods implemented recursively are noted as such; the rest are iterative.
// D denotes the height of the tree and n its size. None of the types here are
// safe for concurrent use if the caller mutates child links while reading.
package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order selects the sequence in which a traversal emits values.
type Order uint8

const (
	// OrderIn visits the left subtree, emits the node, then visits the right subtree.
	OrderIn Order = iota
	// OrderPre emits the node before visiting its subtrees.
	OrderPre
	// OrderPost emits the node after visiting both subtrees.
	OrderPost
	// OrderLevel emits nodes breadth first, left to right within a level.
	OrderLevel
)

func (o Order) String() string {
	switch o {
	case OrderIn:
		return "in-order"
	case OrderPre:
		return "pre-order"
	case OrderPost:
		return "post-order"
	case OrderLevel:
		return "level-order"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// InvalidOrderError is the value panicked with when a traversal is asked for
// an Order it doesn't know.
type InvalidOrderError struct {
	O Order
}

func (e InvalidOrderError) Error() string {
	return fmt.Sprintf("unknown traversal order %s", e.O)
}

func Max[I constraints.Integer](a, b I) I {
	if a < b {
		return b
	}
	return a
}

func Min[I constraints.Integer](a, b I) I {
	if a < b {
		return a
	}
	return b
}

// absDiff is |a-b|.
func absDiff[I constraints.Signed](a, b I) I {
	if a < b {
		return b - a
	}
	return a - b
}
