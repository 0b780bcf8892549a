// Package bellmanford implements relaxation-based single-source shortest
// paths over a core.Graph and a square edge-weight matrix.
//
// What
//
//   - Repeatedly relaxes every edge until distances converge (at most V-1
//     rounds), then runs one extra detection round: any further improvement
//     proves a negative-weight cycle reachable from the sources, reported
//     as ErrNegativeCycle.
//   - Negative edge weights are fully supported — that is the reason to
//     prefer this routine over package dijkstra.
//   - Multi-source: every source is seeded at distance 0.
//
// Why
//
//	The returned *State (parent links + distances) is the algorithm's
//	native representation; the paths package wraps it into an immutable
//	result for path reconstruction.
//
// Weight conventions
//
//	weights[u][v] = +Inf means "no edge u→v"; such entries never relax.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:  O(V·E) worst case; the loop exits early once a full round
//     makes no improvement.
//   - Space: O(V).
//
// Usage
//
//	st, err := bellmanford.BellmanFord(g, w, []int{0})
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    // distances are undefined; no State is returned
//	}
package bellmanford
