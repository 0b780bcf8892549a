// Package dijkstra: native working state, sentinel errors, and functional
// options for the label-setting routine.
package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeights indicates a nil weight matrix was passed.
	ErrNilWeights = errors.New("dijkstra: weight matrix is nil")

	// ErrDimensionMismatch indicates the weight matrix is not n×n for a
	// graph of n vertices.
	ErrDimensionMismatch = errors.New("dijkstra: weight matrix dimension mismatch")

	// ErrNoSources indicates an empty source set.
	ErrNoSources = errors.New("dijkstra: no source vertices")

	// ErrVertexRange indicates a source vertex outside 0..n-1.
	ErrVertexRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative traversable edge weight;
	// label-setting requires non-negative costs.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// NoParent is the parent-link sentinel for vertices with no recorded
// predecessor (unreachable vertices). A source vertex is its own parent.
const NoParent = -1

// State is the native working representation the routine mutates during
// execution and returns when done. Field order matches the classic
// label-setting layout: parents first, then distances, then the optional
// all-paths and visit-order extensions.
//
// Slices are owned by the State; the paths package wraps them without
// copying, so treat a State as frozen once returned.
type State struct {
	// Parents holds the parent link per vertex: Parents[v] == u means the
	// shortest path to v arrives via u; sources are their own parent;
	// unreachable vertices hold NoParent.
	Parents []int

	// Dists holds the shortest distance per vertex (+Inf when unreachable).
	Dists []float64

	// Predecessors lists, per vertex, every neighbor that lies on some
	// shortest path to it. Nil unless WithAllPaths was requested.
	Predecessors [][]int

	// PathCounts holds the number of distinct shortest paths per vertex.
	// Nil unless WithAllPaths was requested. Sources count 1. On graphs
	// with zero-weight cycles the count covers walks through the recorded
	// predecessor structure and can exceed the number of simple paths.
	PathCounts []int

	// Closest records vertices in the order their distances were finalized.
	// Nil unless WithTrackVertices was requested.
	Closest []int
}

// Options configures a single Dijkstra execution.
type Options struct {
	// AllPaths enables predecessor-list and path-count tracking.
	AllPaths bool

	// TrackVertices records the settle order in State.Closest.
	TrackVertices bool

	// Parallel is an execution-policy hint. This implementation runs
	// single-threaded and stores the flag without acting on it; honoring
	// it is the business of alternative routine implementations.
	Parallel bool
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns the zero configuration: single best path per
// vertex, no visit-order tracking, sequential execution.
func DefaultOptions() Options {
	return Options{}
}

// WithAllPaths records, for every vertex, all shortest-path predecessors
// and the count of distinct shortest paths reaching it.
func WithAllPaths() Option {
	return func(o *Options) { o.AllPaths = true }
}

// WithTrackVertices records the order in which vertices are settled
// (closest first) in State.Closest.
func WithTrackVertices() Option {
	return func(o *Options) { o.TrackVertices = true }
}

// WithParallel requests parallel execution. The flag is an inert hint here:
// it is stored on Options and passed through untouched.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}
