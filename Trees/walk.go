package Trees

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// walker yields the nodes of a tree one at a time in a fixed Order, keeping
// its position on an explicit stack (or queue for OrderLevel) instead of the
// call stack. The tree must not be modified while a walker is in use.
type walker[T any] struct {
	o         Order
	st        *arraystack.Stack
	q         *linkedlistqueue.Queue
	cur, last *Node[T] // cur is the next subtree to descend into; last is the last node emitted in post-order.
}

func newWalker[T any](root *Node[T], o Order) *walker[T] {
	w := &walker[T]{o: o}
	switch o {
	case OrderIn, OrderPost:
		w.st, w.cur = arraystack.New(), root
	case OrderPre:
		w.st = arraystack.New()
		if root != nil {
			w.st.Push(root)
		}
	case OrderLevel:
		w.q = linkedlistqueue.New()
		if root != nil {
			w.q.Enqueue(root)
		}
	default:
		panic(InvalidOrderError{o})
	}
	return w
}

// descend pushes cur and its chain of left children.
func (w *walker[T]) descend() {
	for ; w.cur != nil; w.cur = w.cur.Left {
		w.st.Push(w.cur)
	}
}

// next node, or (nil, false) once exhausted. Stays exhausted afterwards.
// Time: amortized O(1); Space: O(D), or O(width) for OrderLevel.
func (w *walker[T]) next() (*Node[T], bool) {
	switch w.o {
	case OrderIn:
		w.descend()
		top, ok := w.st.Pop()
		if !ok {
			return nil, false
		}
		n := top.(*Node[T])
		w.cur = n.Right
		return n, true
	case OrderPre:
		top, ok := w.st.Pop()
		if !ok {
			return nil, false
		}
		n := top.(*Node[T])
		if n.Right != nil {
			w.st.Push(n.Right)
		}
		if n.Left != nil {
			w.st.Push(n.Left)
		}
		return n, true
	case OrderPost:
		for {
			w.descend()
			top, ok := w.st.Peek()
			if !ok {
				return nil, false
			}
			n := top.(*Node[T])
			if n.Right != nil && n.Right != w.last {
				w.cur = n.Right
				continue
			}
			w.st.Pop()
			w.last = n
			return n, true
		}
	default: //OrderLevel, checked in newWalker.
		front, ok := w.q.Dequeue()
		if !ok {
			return nil, false
		}
		n := front.(*Node[T])
		if n.Left != nil {
			w.q.Enqueue(n.Left)
		}
		if n.Right != nil {
			w.q.Enqueue(n.Right)
		}
		return n, true
	}
}

// Walk calls f on the address of each value in Order o, stopping early when f
// returns false. It produces the same sequence as InOrder, PreOrder, PostOrder
// or LevelOrder but is iterative, so it's safe on trees too deep to recurse
// over. f may modify the value it's given but not the shape of the tree.
// Panics with InvalidOrderError on an unknown Order.
// Time: O(n); Space: O(D), or O(width) for OrderLevel.
func (u *BinaryTree[T]) Walk(o Order, f func(*T) bool) {
	w := newWalker(u.root, o)
	for n, ok := w.next(); ok; n, ok = w.next() {
		if !f(&n.Value) {
			break
		}
	}
}

// Iter returns a closure f acting like an iterator over the values in Order o.
// Calling f is like calling "Next()": val, valid = f(). val is meaningful only
// if valid is true, and valid can't turn true after it first became false.
// Each call to Iter starts a new, independent iteration. The tree must not be
// modified while f is in use.
// Panics with InvalidOrderError on an unknown Order.
// Time: f(): amortized O(1).
func (u *BinaryTree[T]) Iter(o Order) func() (T, bool) {
	w := newWalker(u.root, o)
	return func() (r T, has bool) {
		if n, ok := w.next(); ok {
			return n.Value, true
		}
		return
	}
}

// LevelOrder returns the values breadth first, left to right within each
// level. The slice is new on every call.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) LevelOrder() []T {
	vs := make([]T, 0, u.Size())
	u.Walk(OrderLevel, func(v *T) bool {
		vs = append(vs, *v)
		return true
	})
	return vs
}
