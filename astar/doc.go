// Package astar implements heuristic-guided single-pair shortest-path
// search over a core.Graph and a square edge-weight matrix.
//
// What
//
//   - Explores vertices in order of f(v) = g(v) + h(v), where g(v) is the
//     best known cost from the source and h(v) is a caller-supplied
//     admissible lower bound on the remaining cost to the target.
//   - Returns a *State whose Path field is the ordered edge sequence of the
//     discovered route — empty when the target is unreachable or equals
//     the source. The edge-list shape is the routine's native
//     representation; the paths package converts it to a vertex sequence.
//
// Heuristic
//
//	h must never overestimate the true remaining distance (admissibility),
//	or the returned path may be suboptimal. The default heuristic is the
//	constant-zero function: admissible but uninformative, degrading the
//	search to plain uniform-cost (Dijkstra-like) exploration.
//
// Weight conventions
//
//   - weights[u][v] = +Inf means "no edge u→v".
//   - Negative weights are rejected with ErrNegativeWeight; admissible
//     heuristics cannot exist below zero-cost floors.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:  O((V + E) log V) worst case (zero heuristic); a sharp
//     heuristic prunes most of the frontier.
//   - Space: O(V + E).
//
// Usage
//
//	st, err := astar.AStar(g, w, src, dst,
//	    astar.WithHeuristic(func(v int) float64 { return remaining(v) }),
//	)
//	if err != nil { ... }
//	for _, e := range st.Path { ... } // empty means unreachable
package astar
