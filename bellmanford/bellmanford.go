package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gravline/spath/core"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates a nil core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNilWeights indicates a nil weight matrix was passed.
	ErrNilWeights = errors.New("bellmanford: weight matrix is nil")

	// ErrDimensionMismatch indicates the weight matrix is not n×n.
	ErrDimensionMismatch = errors.New("bellmanford: weight matrix dimension mismatch")

	// ErrNoSources indicates an empty source set.
	ErrNoSources = errors.New("bellmanford: no source vertices")

	// ErrVertexRange indicates a source vertex outside 0..n-1.
	ErrVertexRange = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// sources; shortest distances are undefined and no State is returned.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")
)

// NoParent is the parent-link sentinel for vertices with no recorded
// predecessor (unreachable vertices). A source vertex is its own parent.
const NoParent = -1

// State is the routine's native working representation: parent links and
// distances, in that order. Slices are owned by the State; the paths
// package wraps them without copying, so treat a State as frozen once
// returned.
type State struct {
	// Parents holds the parent link per vertex (NoParent when unreachable;
	// sources are their own parent).
	Parents []int

	// Dists holds the shortest distance per vertex (+Inf when unreachable).
	Dists []float64
}

// Options configures a single BellmanFord execution.
type Options struct {
	// Parallel is an execution-policy hint. This implementation runs
	// single-threaded and stores the flag without acting on it.
	Parallel bool
}

// Option is a functional option for configuring BellmanFord.
type Option func(*Options)

// WithParallel requests parallel execution. The flag is an inert hint here.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// BellmanFord computes shortest distances from the given source set to
// every vertex of g, reading edge costs from the square matrix weights.
// Negative edge weights are allowed; a negative cycle reachable from the
// sources aborts the computation with ErrNegativeCycle.
//
// Validation order: ErrNilGraph, ErrNilWeights, ErrDimensionMismatch,
// ErrNoSources, ErrVertexRange.
//
// Complexity: O(V·E) time, O(V) space.
func BellmanFord(g core.Graph, weights *mat.Dense, sources []int, opts ...Option) (*State, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if weights == nil {
		return nil, ErrNilWeights
	}
	n := g.Order()
	if r, c := weights.Dims(); r != n || c != n {
		return nil, fmt.Errorf("%w: got %dx%d for %d vertices", ErrDimensionMismatch, r, c, n)
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: source %d on %d vertices", ErrVertexRange, s, n)
		}
	}

	// Seed native state: +Inf / NoParent everywhere, 0 / self at sources.
	st := &State{
		Parents: make([]int, n),
		Dists:   make([]float64, n),
	}
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		st.Parents[v] = NoParent
		st.Dists[v] = inf
	}
	for _, s := range sources {
		st.Dists[s] = 0
		st.Parents[s] = s
	}

	// Relax every edge up to V-1 rounds, exiting early on convergence.
	var (
		round, u, v int
		w, cand     float64
		improved    bool
	)
	for round = 0; round < n-1; round++ {
		improved = false
		for u = 0; u < n; u++ {
			if math.IsInf(st.Dists[u], 1) {
				continue // nothing to relax from an unreached vertex
			}
			for _, v = range g.Neighbors(u) {
				w = weights.At(u, v)
				if math.IsInf(w, 1) {
					continue // no-edge sentinel
				}
				cand = st.Dists[u] + w
				if cand < st.Dists[v] {
					st.Dists[v] = cand
					st.Parents[v] = u
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	// Detection round: any remaining improvement closes a negative cycle.
	for u = 0; u < n; u++ {
		if math.IsInf(st.Dists[u], 1) {
			continue
		}
		for _, v = range g.Neighbors(u) {
			w = weights.At(u, v)
			if math.IsInf(w, 1) {
				continue
			}
			if st.Dists[u]+w < st.Dists[v] {
				return nil, fmt.Errorf("%w: via edge %d→%d", ErrNegativeCycle, u, v)
			}
		}
	}

	return st, nil
}
