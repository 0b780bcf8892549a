// Package core: Graph interface, Edge value, sentinel errors, and the
// functional GraphOption set. AdjGraph itself lives in graph.go and the
// derived weight matrix in weights.go.
package core

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates a non-positive vertex count was requested.
	ErrBadOrder = errors.New("core: vertex count must be positive")

	// ErrVertexRange indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a non-unit weight was provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNaNWeight indicates a NaN or ±Inf edge weight at ingestion; +Inf is
	// reserved as the "no edge" sentinel and may never be stored explicitly.
	ErrNaNWeight = errors.New("core: edge weight must be finite")
)

// Edge represents a single directed hop u→v with its traversal cost.
// Heuristic (single-pair) search reports its discovered path as a sequence
// of Edge values rather than a parent map.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the traversal cost of this edge.
	Weight float64
}

// Graph is the read-only collaborator interface consumed by every
// shortest-path routine in this module. Implementations must be safe for
// concurrent readers; routines never mutate a Graph.
type Graph interface {
	// Order returns the number of vertices; valid indices are 0..Order()-1.
	Order() int

	// Directed reports whether edges are one-way.
	Directed() bool

	// HasVertex reports whether v is a valid vertex index.
	HasVertex(v int) bool

	// Neighbors returns the out-neighbors of v in ascending order.
	// The returned slice is owned by the graph and must not be modified.
	Neighbors(v int) []int

	// Weights returns the graph's derived default weight matrix: a freshly
	// allocated square *mat.Dense with explicit edge weights (or unit weight
	// per edge when the graph is unweighted), +Inf where no edge exists, and
	// 0 on the diagonal.
	Weights() *mat.Dense
}

// GraphOption configures an AdjGraph at construction time.
type GraphOption func(*AdjGraph)

// WithDirected sets edge directedness (true = one-way edges,
// false = every AddEdge stores both directions).
func WithDirected(directed bool) GraphOption {
	return func(g *AdjGraph) { g.directed = directed }
}

// WithWeighted allows per-edge weights other than 1. On an unweighted graph
// AddEdge accepts only weight 1 and Weights() reports unit costs.
func WithWeighted() GraphOption {
	return func(g *AdjGraph) { g.weighted = true }
}
