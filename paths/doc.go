// Package paths is the uniform, algorithm-agnostic entry point for
// shortest-path computation: one dispatch function, one path-enumeration
// function, and one immutable result type per algorithm family.
//
// What
//
//   - ShortestPaths resolves a graph, optional sources, an optional target,
//     an optional weight matrix, and an optional Algorithm descriptor into
//     exactly one numeric routine invocation (packages dijkstra,
//     bellmanford, astar, floydwarshall), applying documented defaults for
//     everything omitted.
//   - The four Result variants (DijkstraResult, BellmanFordResult,
//     AStarResult, FloydWarshallResult) are read-only snapshots of a
//     routine's native state, converted without copying any element.
//   - EnumeratePath materializes the ordered vertex sequence of the
//     shortest path encoded in any Result variant; EnumeratePaths expands
//     a single-source result into its full path tree; AllShortestPaths
//     enumerates every tied-optimal path recorded by Dijkstra's all-paths
//     mode.
//
// Defaulting rules (first match wins)
//
//   - weights omitted            → the graph's own derived weight matrix.
//   - algorithm omitted, sources given → Dijkstra with zero-value config.
//   - algorithm omitted, no sources    → FloydWarshall (all pairs).
//   - a single From(v) is the same as a one-element source set.
//   - a target is only meaningful to AStar; anything else → error.
//
// Results are immutable
//
//	Result fields are unexported; read access goes through accessor
//	methods. The State() conversions back to native form alias result
//	storage for zero-copy symmetry — mutating a converted State afterwards
//	is undefined behavior, exactly like mutating a routine's State after
//	wrapping it.
//
// Error taxonomy
//
//   - Resolution errors (this package's sentinels): the argument
//     combination cannot select a valid call — fail fast, never guessed.
//   - Algorithmic errors: propagated verbatim from the routines
//     (e.g. bellmanford.ErrNegativeCycle); never caught or rewrapped here.
//   - Enumeration edge cases: an unreachable target or an empty heuristic
//     path yields an empty vertex sequence and a nil error — a valid graph
//     property, not a failure.
//
// Usage
//
//	res, err := paths.ShortestPaths(g, paths.From(0))
//	if err != nil { ... }
//	seq, err := paths.EnumeratePath(res, 3) // e.g. [0 1 3]
//
//	all, err := paths.ShortestPaths(g) // no sources: all pairs
//	seq, err = paths.EnumeratePath(all, 0, 3)
//
//	one, err := paths.ShortestPaths(g, paths.From(0), paths.To(3),
//	    paths.WithAlgorithm(paths.AStar{Heuristic: h}))
//	seq, err = paths.EnumeratePath(one) // target already encoded
package paths
