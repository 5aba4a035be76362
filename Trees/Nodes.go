package Trees

// Node is a vertex of a BinaryTree.
// Left and Right are owned exclusively by this node; a nil pointer is an
// absent child. They are exported so that callers can grow a tree by direct
// assignment, which is the only way this package offers to add nodes below
// the root. A node must never be reachable from itself.
type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Size is the number of nodes in the subtree rooting at n, n included. Recursive.
// Time: O(n); Space: O(D)
func (n *Node[T]) Size() uint {
	sz := uint(1)
	if n.Left != nil {
		sz += n.Left.Size()
	}
	if n.Right != nil {
		sz += n.Right.Size()
	}
	return sz
}

// Height is the number of edges on the longest downward path from n to a
// leaf. An absent child counts as -1, so a leaf has height 0. Recursive.
// Time: O(n); Space: O(D)
func (n *Node[T]) Height() int {
	return 1 + Max(height(n.Left), height(n.Right))
}

// height of a possibly absent node.
func height[T any](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return n.Height()
}
