// Package core defines the graph primitives shared by every shortest-path
// routine in this module: the read-only Graph interface, the Edge value, and
// AdjGraph, a compact integer-indexed adjacency-list implementation.
//
// What
//
//   - Graph: the narrow collaborator interface the numeric routines consume —
//     vertex count, directedness, adjacency queries, and a derived default
//     edge-weight matrix.
//   - AdjGraph: a concrete Graph over vertices 0..n-1, built once via
//     functional GraphOptions (WithDirected, WithWeighted) and AddEdge calls.
//   - Weights: a freshly allocated *mat.Dense weight matrix derived from the
//     graph's own edges — explicit weights when the graph is weighted, unit
//     weights otherwise, +Inf for absent edges, 0 on the diagonal.
//
// Why
//
//	Shortest-path routines should not care how a graph is stored. They read
//	adjacency through Graph and edge costs through a square weight matrix,
//	so any caller-provided structure satisfying Graph plugs in directly.
//
// Conventions
//
//   - Vertices are dense integer indices 0..Order()-1.
//   - Absent edges are represented by +Inf in weight matrices; the diagonal
//     is always 0 (distance from a vertex to itself).
//   - Neighbors returns out-neighbors in ascending order, so every traversal
//     in this module is deterministic.
//   - AdjGraph is not synchronized: build it fully, then share it read-only.
//     The shortest-path routines never mutate a Graph or a weight matrix.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddEdge: O(deg) for the sorted-insert, O(1) amortized storage.
//   - Neighbors: O(1) (returns the internal slice; treat it as read-only).
//   - Weights: O(V² + E) to allocate and fill the dense matrix.
package core
