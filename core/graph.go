package core

import (
	"fmt"
	"math"
	"sort"
)

// AdjGraph is a compact adjacency-list graph over vertices 0..n-1.
//
// Construction is the only mutating phase: create it with NewAdjGraph, add
// edges, then hand it to the shortest-path routines, which only read it.
// AdjGraph is not synchronized; concurrent readers are safe once building
// is done.
type AdjGraph struct {
	n        int  // vertex count; indices are 0..n-1
	directed bool // one-way edges when true
	weighted bool // per-edge weights allowed when true

	adj [][]int             // adj[u] = sorted out-neighbors of u
	wts map[[2]int]float64  // (u,v) → weight; absent pair means no edge
}

// compile-time interface check.
var _ Graph = (*AdjGraph)(nil)

// NewAdjGraph creates an edgeless graph with n vertices and the given options.
// By default the graph is undirected and unweighted.
// Returns ErrBadOrder when n <= 0.
// Complexity: O(n).
func NewAdjGraph(n int, opts ...GraphOption) (*AdjGraph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadOrder, n)
	}
	g := &AdjGraph{
		n:   n,
		adj: make([][]int, n),
		wts: make(map[[2]int]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// AddEdge stores the edge u→v with weight w (and v→u on undirected graphs).
// Re-adding an existing edge overwrites its weight (last write wins).
//
// Validation, in order:
//  1. u and v must be valid indices (ErrVertexRange).
//  2. w must be finite — +Inf is the "no edge" sentinel (ErrNaNWeight).
//  3. on an unweighted graph w must equal 1, the unit cost (ErrBadWeight).
//
// Complexity: O(deg(u)) for the sorted neighbor insert.
func (g *AdjGraph) AddEdge(u, v int, w float64) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return fmt.Errorf("%w: edge %d→%d on %d vertices", ErrVertexRange, u, v, g.n)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNaNWeight, u, v, w)
	}
	if !g.weighted && w != 1 {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, u, v, w)
	}

	g.insertArc(u, v, w)
	if !g.directed && u != v {
		g.insertArc(v, u, w)
	}

	return nil
}

// insertArc records a single direction u→v, keeping adj[u] sorted.
func (g *AdjGraph) insertArc(u, v int, w float64) {
	key := [2]int{u, v}
	if _, exists := g.wts[key]; !exists {
		// Sorted insert keeps Neighbors deterministic without a later sort pass.
		nbrs := g.adj[u]
		i := sort.SearchInts(nbrs, v)
		nbrs = append(nbrs, 0)
		copy(nbrs[i+1:], nbrs[i:])
		nbrs[i] = v
		g.adj[u] = nbrs
	}
	g.wts[key] = w
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *AdjGraph) Order() int { return g.n }

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *AdjGraph) Directed() bool { return g.directed }

// Weighted reports whether per-edge weights other than 1 are allowed.
// Complexity: O(1).
func (g *AdjGraph) Weighted() bool { return g.weighted }

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *AdjGraph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns the out-neighbors of v in ascending order.
// The slice is owned by the graph; callers must not modify it.
// Returns nil for an out-of-range vertex.
// Complexity: O(1).
func (g *AdjGraph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Weight returns the stored weight of edge u→v and whether that edge exists.
// Complexity: O(1).
func (g *AdjGraph) Weight(u, v int) (float64, bool) {
	w, ok := g.wts[[2]int{u, v}]

	return w, ok
}

// EdgeCount returns the number of stored arcs (each undirected edge counts
// once per direction).
// Complexity: O(1).
func (g *AdjGraph) EdgeCount() int { return len(g.wts) }
