package graph

import (
	"cmp"
	"fmt"

	"github.com/containerd/errdefs"
)

// Half is one adjacency entry: an edge label together with the node at the
// other end of the edge.
type Half[K cmp.Ordered, B any] struct {
	Label B
	Node  K
}

// Adj is an ordered adjacency list. Insertion order is preserved and is what
// makes traversal output reproducible; it carries no other meaning.
type Adj[K cmp.Ordered, B any] []Half[K, B]

// Context is a node together with a partial view of its incident edges: the
// predecessors that point at it, its own label, and the successors it points
// at. A node's full incident-edge information may be spread across several
// contexts in a graph's spine; Pop reassembles it.
type Context[K cmp.Ordered, A, B any] struct {
	Pred  Adj[K, B]
	Node  K
	Label A
	Succ  Adj[K, B]
}

// Graph is a persistent inductive graph. The zero value is the empty graph.
// Graph values are cheap to copy and safe to share: every operation returns
// a new value and leaves its input untouched.
type Graph[K cmp.Ordered, A, B any] struct {
	spine *layer[K, A, B]
}

// layer is the non-empty variant: a head context over a tail graph. The two
// variants (nil spine, non-nil spine) are the whole closed set.
type layer[K cmp.Ordered, A, B any] struct {
	head Context[K, A, B]
	tail Graph[K, A, B]
}

// Empty returns the empty graph. Equivalent to the zero value; provided so
// call sites can name the base of a fold explicitly.
func Empty[K cmp.Ordered, A, B any]() Graph[K, A, B] {
	return Graph[K, A, B]{}
}

// IsEmpty reports whether g has no nodes.
func (g Graph[K, A, B]) IsEmpty() bool {
	return g.spine == nil
}

// cons is the unchecked constructor. Callers must guarantee the inductive
// invariant themselves; everything exported goes through Attach instead.
func cons[K cmp.Ordered, A, B any](c Context[K, A, B], g Graph[K, A, B]) Graph[K, A, B] {
	return Graph[K, A, B]{spine: &layer[K, A, B]{head: c, tail: g}}
}

// has reports whether node v exists anywhere in g.
func has[K cmp.Ordered, A, B any](g Graph[K, A, B], v K) bool {
	for l := g.spine; l != nil; l = l.tail.spine {
		if l.head.Node == v {
			return true
		}
	}
	return false
}

// Attach returns a new graph with c as its head and g as its tail. It fails
// with errdefs.ErrAlreadyExists if c.Node is already present in g, and with
// errdefs.ErrNotFound if any adjacency entry of c names a node absent from g.
// Self-loops (entries naming c.Node itself) are permitted. g is never
// modified and remains valid for other holders.
func Attach[K cmp.Ordered, A, B any](c Context[K, A, B], g Graph[K, A, B]) (Graph[K, A, B], error) {
	if has(g, c.Node) {
		return Graph[K, A, B]{}, fmt.Errorf("attach: node %v already exists: %w", c.Node, errdefs.ErrAlreadyExists)
	}
	for _, h := range c.Pred {
		if h.Node != c.Node && !has(g, h.Node) {
			return Graph[K, A, B]{}, fmt.Errorf("attach: predecessor %v of node %v: %w", h.Node, c.Node, errdefs.ErrNotFound)
		}
	}
	for _, h := range c.Succ {
		if h.Node != c.Node && !has(g, h.Node) {
			return Graph[K, A, B]{}, fmt.Errorf("attach: successor %v of node %v: %w", h.Node, c.Node, errdefs.ErrNotFound)
		}
	}
	return cons(c, g), nil
}

// Build folds Attach right-to-left over cs starting from the empty graph: the
// last context is attached first, so a literal lists contexts head-first and
// each context may only reference nodes that appear later in the slice (or
// itself). The first validation failure aborts the build.
func Build[K cmp.Ordered, A, B any](cs ...Context[K, A, B]) (Graph[K, A, B], error) {
	g := Empty[K, A, B]()
	for i := len(cs) - 1; i >= 0; i-- {
		next, err := Attach(cs[i], g)
		if err != nil {
			return Graph[K, A, B]{}, err
		}
		g = next
	}
	return g, nil
}
