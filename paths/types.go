// Package paths: Algorithm descriptors, dispatch options, and the
// resolution-error sentinel set.
package paths

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Resolution errors: the argument combination cannot select a valid
// computation. Algorithmic failures from the numeric routines are NOT
// rewrapped under these; they propagate verbatim.
var (
	// ErrNilGraph indicates a nil graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrMissingSource indicates a single-source algorithm was selected
	// without any source vertex.
	ErrMissingSource = errors.New("paths: no source vertex given")

	// ErrMissingTarget indicates the heuristic algorithm was selected
	// without a target vertex.
	ErrMissingTarget = errors.New("paths: heuristic search requires a target")

	// ErrTooManySources indicates the heuristic algorithm was given more
	// than one source; it searches a single pair.
	ErrTooManySources = errors.New("paths: heuristic search takes exactly one source")

	// ErrTargetWithoutHeuristic indicates a target vertex was supplied to a
	// non-heuristic algorithm, which has no use for it.
	ErrTargetWithoutHeuristic = errors.New("paths: target given without heuristic algorithm")

	// ErrSourcesAllPairs indicates source vertices were supplied to the
	// all-pairs algorithm, which computes every source at once.
	ErrSourcesAllPairs = errors.New("paths: all-pairs algorithm takes no sources")

	// ErrBadTargetCount indicates EnumeratePath received the wrong number
	// of vertices for the result variant at hand.
	ErrBadTargetCount = errors.New("paths: wrong number of vertices for this result")

	// ErrVertexRange indicates an enumeration vertex outside 0..n-1.
	ErrVertexRange = errors.New("paths: vertex index out of range")

	// ErrNilResult indicates a nil Result was passed to an enumerator.
	ErrNilResult = errors.New("paths: result is nil")

	// ErrNoAllPaths indicates AllShortestPaths was called on a result
	// computed without the all-paths option.
	ErrNoAllPaths = errors.New("paths: result carries no all-paths data")

	// ErrSingleSourceOnly indicates EnumeratePaths or AllShortestPaths was
	// called on a result variant that is not single-source.
	ErrSingleSourceOnly = errors.New("paths: operation requires a single-source result")

	// ErrUnknownAlgorithm guards the sealed Algorithm sum; it cannot occur
	// through the public API.
	ErrUnknownAlgorithm = errors.New("paths: unknown algorithm variant")
)

// Algorithm selects and parameterizes one of the four shortest-path
// families. The variant set is closed: Dijkstra, BellmanFord, AStar, and
// FloydWarshall, matched exhaustively by the dispatch layer. Descriptors
// are plain configuration values with no behavior of their own; zero
// values are the documented defaults.
type Algorithm interface {
	isAlgorithm()
}

// Dijkstra selects label-setting single-source search (non-negative
// weights). The zero value is the default configuration.
type Dijkstra struct {
	// AllPaths records per-vertex predecessor lists and shortest-path
	// counts alongside the parent tree.
	AllPaths bool

	// TrackVertices records the order in which vertices are settled.
	TrackVertices bool

	// Parallel is an execution-policy hint, passed through to the routine
	// untouched; the bundled routine runs single-threaded regardless.
	Parallel bool
}

// BellmanFord selects relaxation-based single-source search (negative
// weights allowed, negative cycles detected).
type BellmanFord struct {
	// Parallel is an execution-policy hint, passed through untouched.
	Parallel bool
}

// AStar selects heuristic-guided single-pair search.
type AStar struct {
	// Heuristic is an admissible lower bound on the remaining distance to
	// the target. Nil defaults to the constant-zero estimate — admissible
	// but uninformative, degrading the search to uniform-cost exploration.
	Heuristic func(v int) float64
}

// FloydWarshall selects the dense all-pairs dynamic program. It has no
// tunables.
type FloydWarshall struct{}

func (Dijkstra) isAlgorithm()      {}
func (BellmanFord) isAlgorithm()   {}
func (AStar) isAlgorithm()         {}
func (FloydWarshall) isAlgorithm() {}

// Options accumulates the dispatch arguments of one ShortestPaths call.
type Options struct {
	sources   []int
	target    int
	hasTarget bool
	weights   *mat.Dense
	algorithm Algorithm
}

// Option is a functional option for ShortestPaths.
type Option func(*Options)

// From adds a single source vertex. Repeated From calls accumulate,
// equivalent to one FromAll.
func From(v int) Option {
	return func(o *Options) { o.sources = append(o.sources, v) }
}

// FromAll adds a set of source vertices.
func FromAll(vs ...int) Option {
	return func(o *Options) { o.sources = append(o.sources, vs...) }
}

// To sets the target vertex for heuristic single-pair search.
func To(v int) Option {
	return func(o *Options) {
		o.target = v
		o.hasTarget = true
	}
}

// WithWeights supplies an explicit n×n edge-weight matrix (+Inf = no edge).
// The matrix is borrowed read-only for the duration of the call. When
// omitted, the graph's own derived matrix is used.
func WithWeights(w *mat.Dense) Option {
	return func(o *Options) { o.weights = w }
}

// WithAlgorithm selects the algorithm explicitly. When omitted, Dijkstra
// is used if sources were given, FloydWarshall otherwise.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.algorithm = a }
}
