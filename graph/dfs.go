package graph

import (
	"cmp"
	"slices"

	"github.com/containerd/errdefs"
)

// Tree is a node with an ordered sequence of child trees; DFF returns a
// forest of them.
type Tree[K cmp.Ordered] struct {
	Node     K
	Children []Tree[K]
}

// DFF computes the depth-first spanning forest of g, seeding the search with
// g's nodes in stored order. Each tree's children follow successor edges;
// later trees never revisit a node consumed by an earlier one. g is not
// modified.
func DFF[K cmp.Ordered, A, B any](g Graph[K, A, B]) []Tree[K] {
	forest, _ := explore(Nodes(g), g)
	return forest
}

// explore pops each queued node still present in g, recursively explores its
// successors against the reduced graph, and threads the remainder through
// the rest of the queue. Queued nodes already consumed by an earlier branch
// are skipped. Recursion depth is bounded by the longest successor chain.
func explore[K cmp.Ordered, A, B any](queue []K, g Graph[K, A, B]) ([]Tree[K], Graph[K, A, B]) {
	var forest []Tree[K]
	for _, v := range queue {
		c, rest, err := Pop(g, v)
		if errdefs.IsNotFound(err) {
			continue
		}
		children, reduced := explore(successors(c), rest)
		forest = append(forest, Tree[K]{Node: v, Children: children})
		g = reduced
	}
	return forest, g
}

func successors[K cmp.Ordered, A, B any](c Context[K, A, B]) []K {
	out := make([]K, len(c.Succ))
	for i, h := range c.Succ {
		out[i] = h.Node
	}
	return out
}

// TopSort returns g's nodes in reverse post-order of its depth-first forest.
// For acyclic input this is a topological order: every node precedes all of
// its successors. Cyclic input is not detected; it yields a well-defined
// order consistent with some interpretation of the cycles, not a valid
// topological one.
func TopSort[K cmp.Ordered, A, B any](g Graph[K, A, B]) []K {
	var order []K
	var post func(t Tree[K])
	post = func(t Tree[K]) {
		for _, child := range t.Children {
			post(child)
		}
		order = append(order, t.Node)
	}
	for _, t := range DFF(g) {
		post(t)
	}
	slices.Reverse(order)
	return order
}
