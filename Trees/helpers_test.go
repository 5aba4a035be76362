package Trees

import (
	"math/rand"
)

var rg = *rand.New(rand.NewSource(0))

// perfect builds a perfect tree of height d whose in-order sequence is
// 0,1,...,2^(d+1)-2.
func perfect(d int) *BinaryTree[int] {
	var build func(lo, hi int) *Node[int]
	build = func(lo, hi int) *Node[int] {
		if lo > hi {
			return nil
		}
		mid := int(uint(lo+hi) >> 1)
		return &Node[int]{mid, build(lo, mid-1), build(mid+1, hi)}
	}
	return &BinaryTree[int]{build(0, 1<<(d+1)-2)}
}

// leftChain builds root->left->...->left holding 1..n.
func leftChain(n int) *BinaryTree[int] {
	t := New(1)
	for i, cur := 2, t.Root(); i <= n; i, cur = i+1, cur.Left {
		cur.Left = NewNode(i)
	}
	return t
}

// randomTree hangs n nodes holding 0..n-1 at random empty slots.
func randomTree(n int) *BinaryTree[int] {
	if n == 0 {
		return MakeBinaryTree[int]()
	}
	t := New(0)
	for i := 1; i < n; i++ {
		for cur := t.Root(); ; {
			slot := &cur.Right
			if rg.Intn(2) == 0 {
				slot = &cur.Left
			}
			if *slot == nil {
				*slot = NewNode(i)
				break
			}
			cur = *slot
		}
	}
	return t
}

// naiveBalanced is the textbook definition: recompute both child heights at
// every node.
func naiveBalanced[T any](c *Node[T]) bool {
	if c == nil {
		return true
	}
	if absDiff(height(c.Left), height(c.Right)) > 1 {
		return false
	}
	return naiveBalanced(c.Left) && naiveBalanced(c.Right)
}

func walked[T any](u *BinaryTree[T], o Order) []T {
	vs := make([]T, 0)
	u.Walk(o, func(v *T) bool {
		vs = append(vs, *v)
		return true
	})
	return vs
}

func iterated[T any](u *BinaryTree[T], o Order) []T {
	vs := make([]T, 0)
	f := u.Iter(o)
	for v, ok := f(); ok; v, ok = f() {
		vs = append(vs, v)
	}
	return vs
}
