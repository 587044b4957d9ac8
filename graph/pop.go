package graph

import (
	"cmp"
	"fmt"

	"github.com/containerd/errdefs"
)

// PopAny removes the head context from g, returning it together with the
// tail. Which node comes back is unspecified by contract (it is whatever was
// attached last); this is the arbitrary-extraction primitive the fold and map
// combinators are built on. Fails with errdefs.ErrNotFound on the empty graph.
func PopAny[K cmp.Ordered, A, B any](g Graph[K, A, B]) (Context[K, A, B], Graph[K, A, B], error) {
	if g.spine == nil {
		return Context[K, A, B]{}, Graph[K, A, B]{}, fmt.Errorf("pop: empty graph: %w", errdefs.ErrNotFound)
	}
	return g.spine.head, g.spine.tail, nil
}

// Pop removes node v from g, returning v's full context — every edge incident
// to v, gathered from v's own layer and from every layer above it — and the
// remaining graph with all of those edges gone. The remaining graph preserves
// the relative order of the surviving nodes. Fails with errdefs.ErrNotFound
// if v is not present.
//
// g itself is untouched; the layers below v's are shared between g and the
// returned remainder.
func Pop[K cmp.Ordered, A, B any](g Graph[K, A, B], v K) (Context[K, A, B], Graph[K, A, B], error) {
	// Scan down the spine for v's layer, remembering everything above it.
	var above []*layer[K, A, B]
	l := g.spine
	for l != nil && l.head.Node != v {
		above = append(above, l)
		l = l.tail.spine
	}
	if l == nil {
		return Context[K, A, B]{}, Graph[K, A, B]{}, fmt.Errorf("pop: node %v: %w", v, errdefs.ErrNotFound)
	}

	c := l.head
	rest := l.tail

	// Walk back out. Each layer above v splits into the edges touching v,
	// re-centered onto v, and the remainder, which is consed back on. Only
	// layers above v can mention it: v did not exist when the ones below
	// were attached. The cons needs no re-validation for the same reason.
	for i := len(above) - 1; i >= 0; i-- {
		h := above[i].head
		keepPred, toSucc := splitAdj(h.Pred, v)
		keepSucc, toPred := splitAdj(h.Succ, v)
		c = Context[K, A, B]{
			Pred:  concatAdj(retarget(toPred, h.Node), c.Pred),
			Node:  v,
			Label: c.Label,
			Succ:  concatAdj(retarget(toSucc, h.Node), c.Succ),
		}
		rest = cons(Context[K, A, B]{Pred: keepPred, Node: h.Node, Label: h.Label, Succ: keepSucc}, rest)
	}
	return c, rest, nil
}

// splitAdj partitions adj into the entries not naming v and the entries
// naming v, both in original order.
func splitAdj[K cmp.Ordered, B any](adj Adj[K, B], v K) (rest, hits Adj[K, B]) {
	for _, h := range adj {
		if h.Node == v {
			hits = append(hits, h)
		} else {
			rest = append(rest, h)
		}
	}
	return rest, hits
}

// retarget rewrites every entry of adj to point at w, keeping labels. An
// entry (label, v) found in some other node w's successor list is, seen from
// v, the predecessor entry (label, w); this is that change of viewpoint.
func retarget[K cmp.Ordered, B any](adj Adj[K, B], w K) Adj[K, B] {
	if len(adj) == 0 {
		return nil
	}
	out := make(Adj[K, B], len(adj))
	for i, h := range adj {
		out[i] = Half[K, B]{Label: h.Label, Node: w}
	}
	return out
}

// concatAdj concatenates two adjacency lists without aliasing either.
func concatAdj[K cmp.Ordered, B any](a, b Adj[K, B]) Adj[K, B] {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(Adj[K, B], 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
