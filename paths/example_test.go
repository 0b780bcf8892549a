// Package paths_test provides runnable examples for the dispatch and
// enumeration entry points.
package paths_test

import (
	"fmt"

	"github.com/gravline/spath/core"
	"github.com/gravline/spath/paths"
)

// ExampleShortestPaths demonstrates the default dispatch: a graph and one
// source select label-setting search over the graph's own derived weights.
func ExampleShortestPaths() {
	// Directed triangle where the two-hop route beats the direct edge.
	g, _ := core.NewAdjGraph(3, core.WithDirected(true), core.WithWeighted())
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(0, 2, 5)

	res, err := paths.ShortestPaths(g, paths.From(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq, _ := paths.EnumeratePath(res, 2)
	fmt.Printf("path=%v dist=%v\n", seq, res.(paths.DijkstraResult).Dist(2))
	// Output: path=[0 1 2] dist=2
}

// ExampleShortestPaths_allPairs demonstrates the bare-graph default: with
// no sources the dispatcher selects the all-pairs algorithm, and paths are
// enumerated per (source, target) pair.
func ExampleShortestPaths_allPairs() {
	g, _ := core.NewAdjGraph(3, core.WithDirected(true), core.WithWeighted())
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(0, 2, 5)

	res, err := paths.ShortestPaths(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq, _ := paths.EnumeratePath(res, 0, 2)
	fmt.Printf("0→2 via %v\n", seq)
	// Output: 0→2 via [0 1 2]
}

// ExampleShortestPaths_aStar demonstrates heuristic single-pair search;
// the result encodes the pair, so EnumeratePath takes no vertices.
func ExampleShortestPaths_aStar() {
	g, _ := core.NewAdjGraph(4, core.WithDirected(true), core.WithWeighted())
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(0, 3, 9)

	// Remaining-hop lower bound: admissible on a unit-weight chain.
	h := func(v int) float64 { return float64(3 - v) }

	res, err := paths.ShortestPaths(g, paths.From(0), paths.To(3),
		paths.WithAlgorithm(paths.AStar{Heuristic: h}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq, _ := paths.EnumeratePath(res)
	fmt.Printf("path=%v dist=%v\n", seq, res.(paths.AStarResult).Dist())
	// Output: path=[0 1 2 3] dist=3
}
