package path

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/induct/graph"
)

// undirectedCtx builds a context whose listed edges run in both directions:
// each entry appears as a predecessor and as a successor.
func undirectedCtx(node int, edges ...graph.Half[int, int]) graph.Context[int, string, int] {
	pred := make(graph.Adj[int, int], len(edges))
	succ := make(graph.Adj[int, int], len(edges))
	copy(pred, edges)
	copy(succ, edges)
	return graph.Context[int, string, int]{Pred: pred, Node: node, Label: "", Succ: succ}
}

func w(weight, node int) graph.Half[int, int] {
	return graph.Half[int, int]{Label: weight, Node: node}
}

// sixNode is the classic six-node weighted graph, treated as undirected:
// 1-2(7) 1-3(9) 1-6(14) 2-3(10) 2-4(15) 3-4(11) 3-6(2) 4-5(6) 5-6(9).
func sixNode(t *testing.T) graph.Graph[int, string, int] {
	t.Helper()
	g, err := graph.Build(
		undirectedCtx(1, w(7, 2), w(9, 3), w(14, 6)),
		undirectedCtx(2, w(10, 3), w(15, 4)),
		undirectedCtx(3, w(11, 4), w(2, 6)),
		undirectedCtx(4, w(6, 5)),
		undirectedCtx(5, w(9, 6)),
		undirectedCtx(6),
	)
	require.NoError(t, err)
	return g
}

func TestShortestPathsFrom_SixNode(t *testing.T) {
	g := sixNode(t)
	result := ShortestPathsFrom(g, 1)

	nodes, ok := result.PathTo(5)
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 6, 5}, nodes)

	dist, ok := result.DistanceTo(5)
	require.True(t, ok)
	assert.Equal(t, 20, dist)
}

func TestShortestPathsFrom_AllDistances(t *testing.T) {
	result := ShortestPathsFrom(sixNode(t), 1)

	wantDist := map[int]int{1: 0, 2: 7, 3: 9, 4: 20, 5: 20, 6: 11}
	for node, want := range wantDist {
		dist, ok := result.DistanceTo(node)
		require.True(t, ok, "node %d should be reachable", node)
		assert.Equal(t, want, dist, "distance to node %d", node)
	}
}

func TestShortestPathsFrom_SettledInIncreasingDistance(t *testing.T) {
	result := ShortestPathsFrom(sixNode(t), 1)
	require.Len(t, result, 6)

	dists := make([]int, len(result))
	for i, p := range result {
		dists[i] = p[0].Dist
	}
	assert.True(t, sort.IntsAreSorted(dists), "settled order %v not ascending", dists)
}

func TestShortestPathsFrom_SourcePathIsItself(t *testing.T) {
	result := ShortestPathsFrom(sixNode(t), 4)
	nodes, ok := result.PathTo(4)
	require.True(t, ok)
	assert.Equal(t, []int{4}, nodes)

	dist, ok := result.DistanceTo(4)
	require.True(t, ok)
	assert.Zero(t, dist)
}

func TestPathTo_UnreachableAcrossComponents(t *testing.T) {
	// Two disconnected components: {1,2} and {3,4}.
	g, err := graph.Build(
		undirectedCtx(1, w(1, 2)),
		undirectedCtx(2),
		undirectedCtx(3, w(1, 4)),
		undirectedCtx(4),
	)
	require.NoError(t, err)

	result := ShortestPathsFrom(g, 1)

	_, ok := result.PathTo(3)
	assert.False(t, ok)
	_, ok = result.DistanceTo(4)
	assert.False(t, ok)

	nodes, ok := result.PathTo(2)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, nodes)
}

func TestShortestPathsFrom_SourceAbsent(t *testing.T) {
	result := ShortestPathsFrom(sixNode(t), 99)
	assert.Empty(t, result)

	_, ok := result.PathTo(1)
	assert.False(t, ok)
}

func TestShortestPathsFrom_InputUnchanged(t *testing.T) {
	g := sixNode(t)
	_ = ShortestPathsFrom(g, 1)
	assert.Len(t, graph.Nodes(g), 6)
}
