package graph

import (
	"cmp"
)

// UFold reduces g to a single value by repeatedly extracting an arbitrary
// context and combining it with the reduction of the remainder, as a right
// fold: the context extracted last is combined first. UFold over the empty
// graph is initial, for every combine.
//
// Because extraction order is unconstrained by contract, combine must not
// depend on a particular traversal order; order-sensitive traversals belong
// to DFF and TopSort.
func UFold[K cmp.Ordered, A, B, R any](g Graph[K, A, B], initial R, combine func(Context[K, A, B], R) R) R {
	var cs []Context[K, A, B]
	for rest := g; ; {
		c, next, err := PopAny(rest)
		if err != nil {
			break
		}
		cs = append(cs, c)
		rest = next
	}
	acc := initial
	for i := len(cs) - 1; i >= 0; i-- {
		acc = combine(cs[i], acc)
	}
	return acc
}

// Nodes returns every node identifier in g, in stored order (most recently
// attached first). The order is observable and stable for a given graph
// value, but arbitrary by contract.
func Nodes[K cmp.Ordered, A, B any](g Graph[K, A, B]) []K {
	return UFold(g, []K(nil), func(c Context[K, A, B], acc []K) []K {
		return append([]K{c.Node}, acc...)
	})
}

// GMap applies transform to every context of g and rebuilds a graph of the
// transformed contexts, preserving stored order. The output may carry
// different node-label and edge-label types. transform must be
// topology-preserving: it must keep the context's node identifier and may
// only rename adjacency entries to nodes that keep the graph valid; GMap
// rebuilds without re-running Attach validation.
func GMap[K cmp.Ordered, A, B, C, D any](g Graph[K, A, B], transform func(Context[K, A, B]) Context[K, C, D]) Graph[K, C, D] {
	return UFold(g, Empty[K, C, D](), func(c Context[K, A, B], acc Graph[K, C, D]) Graph[K, C, D] {
		return cons(transform(c), acc)
	})
}
