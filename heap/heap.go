// Package heap implements a persistent pairing heap. Every operation returns
// a new heap value and leaves its inputs intact, so snapshots taken before a
// Pop or Merge stay valid afterwards; subtrees are shared structurally.
package heap

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// Lesser is the ordering constraint: elements compare themselves.
type Lesser[T any] interface {
	Less(T) bool
}

// Heap is a persistent min-heap. The zero value is the empty heap.
type Heap[T Lesser[T]] struct {
	root *node[T]
}

// node is a pairing-heap node: first child plus next sibling. Roots never
// carry a sibling.
type node[T Lesser[T]] struct {
	elem    T
	child   *node[T]
	sibling *node[T]
}

// Unit returns a heap containing exactly x.
func Unit[T Lesser[T]](x T) Heap[T] {
	return Heap[T]{root: &node[T]{elem: x}}
}

// IsEmpty reports whether h has no elements.
func (h Heap[T]) IsEmpty() bool {
	return h.root == nil
}

// Merge returns a heap holding the union of all elements of hs, with
// multiset semantics: nothing is lost, nothing is duplicated. The inputs
// remain valid heaps.
func Merge[T Lesser[T]](hs ...Heap[T]) Heap[T] {
	var root *node[T]
	for _, h := range hs {
		root = meld(root, h.root)
	}
	return Heap[T]{root: root}
}

// meld combines two root nodes. The smaller root wins and the other becomes
// its first child; ties keep the left argument on top, which makes pop order
// deterministic for equal elements. Both top nodes are copied so heaps that
// still reference a or b are unaffected.
func meld[T Lesser[T]](a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.elem.Less(a.elem) {
		a, b = b, a
	}
	return &node[T]{
		elem:  a.elem,
		child: &node[T]{elem: b.elem, child: b.child, sibling: a.child},
	}
}

// Pop returns the minimum element and the heap without it. Fails with
// errdefs.ErrNotFound on the empty heap. h itself is unchanged.
func (h Heap[T]) Pop() (T, Heap[T], error) {
	if h.root == nil {
		var zero T
		return zero, Heap[T]{}, fmt.Errorf("pop: empty heap: %w", errdefs.ErrNotFound)
	}
	return h.root.elem, Heap[T]{root: mergePairs(h.root.child)}, nil
}

// mergePairs rebuilds a root from a sibling list with the standard two-pass
// pairing pass: meld adjacent pairs left to right, then meld the pair results
// right to left. The list's nodes are read, never written.
func mergePairs[T Lesser[T]](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	if n.sibling == nil {
		return n
	}
	first, second, rest := n, n.sibling, n.sibling.sibling
	return meld(meld(first, second), mergePairs(rest))
}
