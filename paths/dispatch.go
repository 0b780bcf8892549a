// Package paths: the dispatch resolver mapping (graph, sources, target,
// weights, algorithm) onto exactly one numeric routine invocation.
package paths

import (
	"fmt"

	"github.com/gravline/spath/astar"
	"github.com/gravline/spath/bellmanford"
	"github.com/gravline/spath/core"
	"github.com/gravline/spath/dijkstra"
	"github.com/gravline/spath/floydwarshall"
)

// ShortestPaths resolves its arguments into one shortest-path computation
// and returns the wrapped result. Defaulting, in order:
//
//  1. weights omitted → the graph's own derived weight matrix.
//  2. algorithm omitted, sources given → Dijkstra, zero-value config.
//  3. algorithm omitted, no sources → FloydWarshall.
//
// Resolution failures (this package's sentinels) are reported before any
// routine runs; algorithmic failures (e.g. bellmanford.ErrNegativeCycle)
// propagate verbatim. The graph and weight matrix are borrowed read-only
// for the duration of the call; the returned Result owns fresh storage
// and never aliases another call's result.
func ShortestPaths(g core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	weights := o.weights
	if weights == nil {
		weights = g.Weights()
	}

	algo := o.algorithm
	if algo == nil {
		if len(o.sources) > 0 {
			algo = Dijkstra{}
		} else {
			algo = FloydWarshall{}
		}
	}

	// A target is only meaningful to the heuristic single-pair search.
	if _, isAStar := algo.(AStar); o.hasTarget && !isAStar {
		return nil, ErrTargetWithoutHeuristic
	}

	switch a := algo.(type) {
	case Dijkstra:
		if len(o.sources) == 0 {
			return nil, ErrMissingSource
		}
		var ropts []dijkstra.Option
		if a.AllPaths {
			ropts = append(ropts, dijkstra.WithAllPaths())
		}
		if a.TrackVertices {
			ropts = append(ropts, dijkstra.WithTrackVertices())
		}
		if a.Parallel {
			ropts = append(ropts, dijkstra.WithParallel())
		}
		st, err := dijkstra.Dijkstra(g, weights, o.sources, ropts...)
		if err != nil {
			return nil, err
		}

		return FromDijkstraState(st), nil

	case BellmanFord:
		if len(o.sources) == 0 {
			return nil, ErrMissingSource
		}
		var ropts []bellmanford.Option
		if a.Parallel {
			ropts = append(ropts, bellmanford.WithParallel())
		}
		st, err := bellmanford.BellmanFord(g, weights, o.sources, ropts...)
		if err != nil {
			return nil, err
		}

		return FromBellmanFordState(st), nil

	case AStar:
		if len(o.sources) == 0 {
			return nil, ErrMissingSource
		}
		if len(o.sources) > 1 {
			return nil, ErrTooManySources
		}
		if !o.hasTarget {
			return nil, ErrMissingTarget
		}
		st, err := astar.AStar(g, weights, o.sources[0], o.target, astar.WithHeuristic(a.Heuristic))
		if err != nil {
			return nil, err
		}

		return FromAStarState(st), nil

	case FloydWarshall:
		if len(o.sources) > 0 {
			return nil, ErrSourcesAllPairs
		}
		st, err := floydwarshall.FloydWarshall(g, weights)
		if err != nil {
			return nil, err
		}

		return FromFloydWarshallState(st), nil

	default:
		// The Algorithm sum is sealed; no other variant can exist.
		return nil, fmt.Errorf("%w: %T", ErrUnknownAlgorithm, algo)
	}
}
