// Package paths_test: path materialization from every result variant,
// including edge cases (unreachable targets, empty heuristic routes) and
// the full-tree and all-shortest-paths enumerators.
package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravline/spath/astar"
	"github.com/gravline/spath/core"
	"github.com/gravline/spath/paths"
)

// buildDetour returns a 4-vertex directed graph using vertices 1..3:
// 1→2 (1), 2→3 (1), 1→3 (5). The two-hop detour beats the direct edge.
func buildDetour(t *testing.T) *core.AdjGraph {
	t.Helper()
	g, err := core.NewAdjGraph(4, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 5))

	return g
}

// ------------------------------------------------------------------------
// 1. Single-source parent walks.
// ------------------------------------------------------------------------

func TestEnumeratePath_Detour(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g, paths.From(1))
	require.NoError(t, err)

	seq, err := paths.EnumeratePath(res, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seq)

	dres, ok := res.(paths.DijkstraResult)
	require.True(t, ok)
	assert.Equal(t, 2.0, dres.Dist(3))
}

func TestEnumeratePath_TargetIsSource(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g, paths.From(1))
	require.NoError(t, err)

	seq, err := paths.EnumeratePath(res, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, seq)
}

func TestEnumeratePath_Unreachable(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g, paths.From(1))
	require.NoError(t, err)

	// Vertex 0 has no incoming edges: empty sequence, no error.
	seq, err := paths.EnumeratePath(res, 0)
	require.NoError(t, err)
	assert.Empty(t, seq)
}

func TestEnumeratePath_ArityErrors(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g, paths.From(1))
	require.NoError(t, err)

	_, err = paths.EnumeratePath(res)
	assert.ErrorIs(t, err, paths.ErrBadTargetCount)

	_, err = paths.EnumeratePath(res, 1, 3)
	assert.ErrorIs(t, err, paths.ErrBadTargetCount)

	_, err = paths.EnumeratePath(res, 17)
	assert.ErrorIs(t, err, paths.ErrVertexRange)

	_, err = paths.EnumeratePath(nil, 1)
	assert.ErrorIs(t, err, paths.ErrNilResult)
}

// ------------------------------------------------------------------------
// 2. Heuristic edge-to-vertex conversion: n edges become n+1 vertices,
//    zero edges become zero vertices.
// ------------------------------------------------------------------------

func TestEnumeratePath_EdgeListConversion(t *testing.T) {
	res := paths.FromAStarState(&astar.State{Path: []core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}})

	seq, err := paths.EnumeratePath(res)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, seq)

	// Trailing vertices are ignored for the single-pair variant.
	seq, err = paths.EnumeratePath(res, 99)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, seq)
}

func TestEnumeratePath_EmptyEdgeList(t *testing.T) {
	res := paths.FromAStarState(&astar.State{Path: []core.Edge{}})

	seq, err := paths.EnumeratePath(res)
	require.NoError(t, err)
	assert.Empty(t, seq) // empty, not a single-vertex sequence
}

// ------------------------------------------------------------------------
// 3. All-pairs walks.
// ------------------------------------------------------------------------

func TestEnumeratePath_AllPairs(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g)
	require.NoError(t, err)

	seq, err := paths.EnumeratePath(res, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seq)

	// Unreachable pair: empty, no error.
	seq, err = paths.EnumeratePath(res, 3, 1)
	require.NoError(t, err)
	assert.Empty(t, seq)

	// All-pairs needs both endpoints.
	_, err = paths.EnumeratePath(res, 3)
	assert.ErrorIs(t, err, paths.ErrBadTargetCount)
}

// ------------------------------------------------------------------------
// 4. Full tree and all-shortest-paths enumeration.
// ------------------------------------------------------------------------

func TestEnumeratePaths_FullTree(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g, paths.From(1))
	require.NoError(t, err)

	tree, err := paths.EnumeratePaths(res)
	require.NoError(t, err)
	require.Len(t, tree, 4)
	assert.Empty(t, tree[0]) // unreachable
	assert.Equal(t, []int{1}, tree[1])
	assert.Equal(t, []int{1, 2}, tree[2])
	assert.Equal(t, []int{1, 2, 3}, tree[3])
}

func TestEnumeratePaths_SelectedTargets(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g, paths.From(1))
	require.NoError(t, err)

	tree, err := paths.EnumeratePaths(res, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {1, 2}}, tree)
}

func TestEnumeratePaths_WrongVariant(t *testing.T) {
	g := buildDetour(t)
	res, err := paths.ShortestPaths(g) // all pairs
	require.NoError(t, err)

	_, err = paths.EnumeratePaths(res)
	assert.ErrorIs(t, err, paths.ErrSingleSourceOnly)
}

func TestAllShortestPaths_Diamond(t *testing.T) {
	// 0→1, 0→2, 1→3, 2→3, unit weights: two tied-optimal routes to 3.
	g, err := core.NewAdjGraph(4, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	res, err := paths.ShortestPaths(g, paths.From(0),
		paths.WithAlgorithm(paths.Dijkstra{AllPaths: true}))
	require.NoError(t, err)

	all, err := paths.AllShortestPaths(res, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1, 3}, {0, 2, 3}}, all)
}

func TestAllShortestPaths_ZeroWeightCycle(t *testing.T) {
	// 0→1, 1→2, 2→1, all weight 0: the tie bookkeeping records 2 as a
	// predecessor of 1, closing a cycle in the predecessor structure.
	// Enumeration must still terminate, reporting only the simple route.
	g, err := core.NewAdjGraph(3, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 1, 0))

	res, err := paths.ShortestPaths(g, paths.From(0),
		paths.WithAlgorithm(paths.Dijkstra{AllPaths: true}))
	require.NoError(t, err)

	all, err := paths.AllShortestPaths(res, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}}, all)

	// The downstream vertex keeps its single cycle-free route as well.
	all, err = paths.AllShortestPaths(res, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, all)
}

func TestAllShortestPaths_Errors(t *testing.T) {
	g := buildDetour(t)

	// Without the all-paths option there is nothing to enumerate.
	res, err := paths.ShortestPaths(g, paths.From(1))
	require.NoError(t, err)
	_, err = paths.AllShortestPaths(res, 3)
	assert.ErrorIs(t, err, paths.ErrNoAllPaths)

	// Unreachable target: empty path list, no error.
	res, err = paths.ShortestPaths(g, paths.From(1),
		paths.WithAlgorithm(paths.Dijkstra{AllPaths: true}))
	require.NoError(t, err)
	all, err := paths.AllShortestPaths(res, 0)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Wrong variant.
	fw, err := paths.ShortestPaths(g)
	require.NoError(t, err)
	_, err = paths.AllShortestPaths(fw, 3)
	assert.ErrorIs(t, err, paths.ErrSingleSourceOnly)
}
