// Package path computes single-source shortest paths over inductive graphs,
// driving a persistent min-heap of labeled paths the way Dijkstra's algorithm
// does: settle nodes in increasing distance order, removing each settled node
// from the graph as it goes.
package path

import (
	"cmp"

	"github.com/containerd/errdefs"
	"golang.org/x/exp/constraints"

	"github.com/vk/induct/graph"
	"github.com/vk/induct/heap"
)

// Weight is the edge-label constraint for shortest paths: anything that can
// be summed and compared. Non-negative values are assumed throughout; see
// ShortestPathsFrom.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Step is one node on a labeled path, tagged with the cumulative distance
// from the source.
type Step[K cmp.Ordered, W Weight] struct {
	Node K
	Dist W
}

// Path is a non-empty labeled path, most recent node first: the head is the
// path's current endpoint, the last step is the source at distance zero.
type Path[K cmp.Ordered, W Weight] []Step[K, W]

// Less orders paths by the cumulative distance of their head, which is the
// priority the heap settles by.
func (p Path[K, W]) Less(q Path[K, W]) bool {
	return p[0].Dist < q[0].Dist
}

// Result is the output of ShortestPathsFrom: one settled shortest path per
// reachable node, in increasing distance order.
type Result[K cmp.Ordered, W Weight] []Path[K, W]

// ShortestPathsFrom computes shortest paths from source to every reachable
// node of g. Edge weights are taken from g's edge labels along successor
// edges and are assumed non-negative; the settle-in-distance-order argument
// breaks down for negative weights and no validation is attempted. A source
// absent from g yields an empty result. g is not modified.
func ShortestPathsFrom[K cmp.Ordered, A any, W Weight](g graph.Graph[K, A, W], source K) Result[K, W] {
	h := heap.Unit(Path[K, W]{{Node: source, Dist: 0}})
	var settled Result[K, W]
	for !h.IsEmpty() && !g.IsEmpty() {
		p, remaining, err := h.Pop()
		if err != nil {
			break
		}
		h = remaining

		c, reduced, err := graph.Pop(g, p[0].Node)
		if errdefs.IsNotFound(err) {
			// Already settled by a path no longer than this one.
			continue
		}
		settled = append(settled, p)
		g = reduced

		// Extend one step along every outgoing edge.
		for _, s := range c.Succ {
			longer := make(Path[K, W], 0, len(p)+1)
			longer = append(longer, Step[K, W]{Node: s.Node, Dist: p[0].Dist + s.Label})
			longer = append(longer, p...)
			h = heap.Merge(h, heap.Unit(longer))
		}
	}
	return settled
}

// PathTo returns the node sequence, source first, of the settled shortest
// path ending at target. The second return is false if target was
// unreachable from the source.
func (r Result[K, W]) PathTo(target K) ([]K, bool) {
	p, ok := r.find(target)
	if !ok {
		return nil, false
	}
	nodes := make([]K, len(p))
	for i, s := range p {
		nodes[len(p)-1-i] = s.Node
	}
	return nodes, true
}

// DistanceTo returns the cumulative distance of the settled shortest path
// ending at target, or false if target was unreachable.
func (r Result[K, W]) DistanceTo(target K) (W, bool) {
	p, ok := r.find(target)
	if !ok {
		var zero W
		return zero, false
	}
	return p[0].Dist, true
}

func (r Result[K, W]) find(target K) (Path[K, W], bool) {
	for _, p := range r {
		if p[0].Node == target {
			return p, true
		}
	}
	return nil, false
}
