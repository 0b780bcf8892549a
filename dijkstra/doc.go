// Package dijkstra implements label-setting single-source shortest paths
// over a core.Graph and a square edge-weight matrix.
//
// What
//
//   - Computes minimum distances from one or more source vertices to every
//     reachable vertex, finalizing vertices in non-decreasing distance order
//     via a min-heap priority queue with lazy decrease-key.
//   - Returns a *State holding parent links and distances, plus optional
//     per-vertex predecessor lists and shortest-path counts (WithAllPaths)
//     and the order in which vertices were settled (WithTrackVertices).
//   - Multi-source: every source is seeded at distance 0, so distances are
//     measured to the nearest source.
//
// Why
//
//	The raw State is the algorithm's native working representation. The
//	paths package wraps it into an immutable result and reconstructs
//	concrete vertex sequences from it; callers who only need distances can
//	use this package directly.
//
// Weight conventions
//
//   - weights[u][v] = +Inf means "no edge u→v"; such entries are never
//     traversed even when the adjacency list contains the pair.
//   - Negative weights are rejected up front with ErrNegativeWeight; use
//     package bellmanford when negative weights are possible.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:  O((V + E) log V) — each vertex settles once, each relaxation
//     may push one heap entry, heap ops cost O(log V).
//   - Space: O(V + E) — state slices plus worst-case heap occupancy under
//     lazy decrease-key.
//
// Usage
//
//	st, err := dijkstra.Dijkstra(g, g.Weights(), []int{0},
//	    dijkstra.WithAllPaths(),
//	    dijkstra.WithTrackVertices(),
//	)
//	if err != nil {
//	    // ErrNilGraph, ErrNilWeights, ErrDimensionMismatch, ErrNoSources,
//	    // ErrVertexRange, or ErrNegativeWeight
//	}
//	_ = st.Dists[3] // distance from the nearest source to vertex 3
package dijkstra
