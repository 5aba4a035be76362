package Trees

// BinaryTree owns an optional root Node. Its shape is whatever the caller
// builds by assigning to the child links reachable from Root; the tree itself
// never inserts, removes or rotates.
// All queries are total: on an empty tree they return 0, an empty slice or
// true rather than failing.
type BinaryTree[T any] struct {
	root *Node[T] // nil iff the tree is empty.
}

// New returns a tree with a single node holding v.
func New[T any](v T) *BinaryTree[T] {
	return &BinaryTree[T]{NewNode(v)}
}

// MakeBinaryTree returns an empty tree. The zero value of BinaryTree is also
// an empty tree.
func MakeBinaryTree[T any]() *BinaryTree[T] {
	return new(BinaryTree[T])
}

// NewNonZero returns an empty tree when v is the zero value of T, otherwise a
// single node tree holding v.
func NewNonZero[T comparable](v T) *BinaryTree[T] {
	if v == *new(T) {
		return MakeBinaryTree[T]()
	}
	return New(v)
}

// Root returns the root node, nil if the tree is empty. The node still belongs
// to u.
func (u *BinaryTree[T]) Root() *Node[T] {
	return u.root
}

// Empty reports whether u has no nodes.
func (u *BinaryTree[T]) Empty() bool {
	return u.root == nil
}

// Size returns the number of nodes. Recursive.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) Size() uint {
	if u.root == nil {
		return 0
	}
	return u.root.Size()
}

// Height returns the height of the root, or 0 for an empty tree. Note that
// an empty tree and a single node tree both report 0. Recursive.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) Height() int {
	if u.root == nil {
		return 0
	}
	return u.root.Height()
}

func (u *BinaryTree[T]) minDepth(c *Node[T]) int {
	switch {
	case c.Left == nil && c.Right == nil:
		return 0
	case c.Left == nil:
		return 1 + u.minDepth(c.Right)
	case c.Right == nil:
		return 1 + u.minDepth(c.Left)
	}
	return 1 + Min(u.minDepth(c.Left), u.minDepth(c.Right))
}

// MinDepth returns the number of edges from the root to its nearest leaf, or
// 0 for an empty tree. Recursive.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) MinDepth() int {
	if u.root == nil {
		return 0
	}
	return u.minDepth(u.root)
}

func inOrder[T any](c *Node[T], to []T) []T {
	if c == nil {
		return to
	}
	to = inOrder(c.Left, to)
	to = append(to, c.Value)
	return inOrder(c.Right, to)
}

func preOrder[T any](c *Node[T], to []T) []T {
	if c == nil {
		return to
	}
	to = append(to, c.Value)
	to = preOrder(c.Left, to)
	return preOrder(c.Right, to)
}

func postOrder[T any](c *Node[T], to []T) []T {
	if c == nil {
		return to
	}
	to = postOrder(c.Left, to)
	to = postOrder(c.Right, to)
	return append(to, c.Value)
}

// InOrder returns the values in in-order. The slice is new on every call and
// is empty, not nil, for an empty tree. Recursive.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) InOrder() []T {
	return inOrder(u.root, make([]T, 0, u.Size()))
}

// PreOrder is InOrder but in pre-order. Recursive.
func (u *BinaryTree[T]) PreOrder() []T {
	return preOrder(u.root, make([]T, 0, u.Size()))
}

// PostOrder is InOrder but in post-order. Recursive.
func (u *BinaryTree[T]) PostOrder() []T {
	return postOrder(u.root, make([]T, 0, u.Size()))
}

// balanced returns the height of c and whether every node in it is balanced.
// Both children are always checked, since a node can be locally balanced
// while a descendant isn't.
func balanced[T any](c *Node[T]) (int, bool) {
	if c == nil {
		return -1, true
	}
	lh, lok := balanced(c.Left)
	rh, rok := balanced(c.Right)
	return 1 + Max(lh, rh), lok && rok && absDiff(lh, rh) <= 1
}

// IsBalanced reports whether, at every node, the heights of the two subtrees
// differ by at most 1. An absent child has height -1. An empty tree is
// balanced. Recursive.
// Time: O(n); Space: O(D)
func (u *BinaryTree[T]) IsBalanced() bool {
	_, ok := balanced(u.root)
	return ok
}
