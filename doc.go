// Package spath computes shortest paths over in-memory graphs — one
// numeric routine per algorithm family, one uniform result layer on top.
//
// 🚀 What is spath?
//
//	A small, focused shortest-path toolkit:
//		• Core primitives: adjacency graphs, edges, dense weight matrices
//		• Label-setting: Dijkstra (multi-source, all-paths, settle order)
//		• Relaxation: Bellman-Ford with negative-cycle detection
//		• Heuristic: A* single-pair search
//		• All-pairs: Floyd-Warshall over gonum dense matrices
//		• Dispatch: one ShortestPaths entry point with sane defaulting
//		• Reconstruction: path trees, single routes, tied-optimal sets
//
// Everything is organized under focused subpackages:
//
//	core/          — Graph interface, AdjGraph, Edge, weight matrices
//	dijkstra/      — label-setting single/multi-source routine
//	bellmanford/   — relaxation routine, negative-cycle detection
//	astar/         — heuristic single-pair routine
//	floydwarshall/ — dense all-pairs routine
//	paths/         — Result variants, converters, enumeration, dispatch
//	cmd/spath/     — the command-line front end
//
// Quick example:
//
//	g, _ := core.NewAdjGraph(4, core.WithWeighted())
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(0, 2, 5)
//
//	res, err := paths.ShortestPaths(g, paths.From(0))
//	if err != nil { ... }
//	route, _ := paths.EnumeratePath(res, 2) // [0 1 2]
//
// Each routine is also callable directly when the dispatch layer is more
// ceremony than help; the paths converters move between the two worlds
// without copying.
//
//	go get github.com/gravline/spath
package spath
