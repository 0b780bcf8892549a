// Package core_test validates AdjGraph construction, adjacency determinism,
// and the derived default weight matrix.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravline/spath/core"
)

// ------------------------------------------------------------------------
// 1. Construction and validation.
// ------------------------------------------------------------------------

func TestNewAdjGraph_BadOrder(t *testing.T) {
	_, err := core.NewAdjGraph(0)
	assert.ErrorIs(t, err, core.ErrBadOrder)

	_, err = core.NewAdjGraph(-3)
	assert.ErrorIs(t, err, core.ErrBadOrder)
}

func TestAddEdge_VertexRange(t *testing.T) {
	g, err := core.NewAdjGraph(3, core.WithWeighted())
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrVertexRange)
	assert.ErrorIs(t, g.AddEdge(-1, 2, 1), core.ErrVertexRange)
}

func TestAddEdge_NonFiniteWeight(t *testing.T) {
	g, err := core.NewAdjGraph(2, core.WithWeighted())
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 1, math.Inf(1)), core.ErrNaNWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), core.ErrNaNWeight)
}

func TestAddEdge_UnweightedRejectsNonUnit(t *testing.T) {
	g, err := core.NewAdjGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 1, 2.5), core.ErrBadWeight)
	assert.NoError(t, g.AddEdge(0, 1, 1))
}

// ------------------------------------------------------------------------
// 2. Adjacency semantics.
// ------------------------------------------------------------------------

func TestNeighbors_SortedAndDirected(t *testing.T) {
	g, err := core.NewAdjGraph(5, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)

	// Insert out of order; Neighbors must come back ascending.
	require.NoError(t, g.AddEdge(0, 4, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))

	assert.Equal(t, []int{2, 3, 4}, g.Neighbors(0))
	// Directed: no reverse arcs were stored.
	assert.Empty(t, g.Neighbors(2))
	assert.Nil(t, g.Neighbors(99))
}

func TestNeighbors_UndirectedMirrors(t *testing.T) {
	g, err := core.NewAdjGraph(3, core.WithWeighted())
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 2, 7))

	assert.Equal(t, []int{2}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(2))

	w, ok := g.Weight(2, 0)
	require.True(t, ok)
	assert.Equal(t, 7.0, w)
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g, err := core.NewAdjGraph(2, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 9))

	assert.Equal(t, 1, g.EdgeCount())
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
	// No duplicate neighbor entry either.
	assert.Equal(t, []int{1}, g.Neighbors(0))
}

// ------------------------------------------------------------------------
// 3. Derived default weight matrix.
// ------------------------------------------------------------------------

func TestWeights_Policy(t *testing.T) {
	g, err := core.NewAdjGraph(3, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2.5))
	require.NoError(t, g.AddEdge(1, 2, 4))

	w := g.Weights()
	r, c := w.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	assert.Equal(t, 2.5, w.At(0, 1))
	assert.Equal(t, 4.0, w.At(1, 2))
	// Absent edges are +Inf, diagonal is 0.
	assert.True(t, math.IsInf(w.At(0, 2), 1))
	assert.True(t, math.IsInf(w.At(1, 0), 1))
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, w.At(i, i))
	}
}

func TestWeights_UnweightedUnitCosts(t *testing.T) {
	g, err := core.NewAdjGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	w := g.Weights()
	assert.Equal(t, 1.0, w.At(0, 1))
	assert.Equal(t, 1.0, w.At(1, 0)) // undirected mirror
	assert.Equal(t, 1.0, w.At(2, 1))
}

func TestWeights_FreshAllocationEachCall(t *testing.T) {
	g, err := core.NewAdjGraph(2, core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	w1 := g.Weights()
	w1.Set(0, 1, 42) // scribble on the first copy

	w2 := g.Weights()
	assert.Equal(t, 5.0, w2.At(0, 1))
}
