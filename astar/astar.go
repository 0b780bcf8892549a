package astar

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gravline/spath/core"
)

// Sentinel errors returned by AStar.
var (
	// ErrNilGraph indicates a nil core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilWeights indicates a nil weight matrix was passed.
	ErrNilWeights = errors.New("astar: weight matrix is nil")

	// ErrDimensionMismatch indicates the weight matrix is not n×n.
	ErrDimensionMismatch = errors.New("astar: weight matrix dimension mismatch")

	// ErrVertexRange indicates a source or target vertex outside 0..n-1.
	ErrVertexRange = errors.New("astar: vertex out of range")

	// ErrNegativeWeight indicates a negative traversable edge weight.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")
)

// Heuristic estimates the remaining distance from a vertex to the target.
// It must be admissible: never above the true remaining distance.
type Heuristic func(v int) float64

// State is the routine's native representation: the discovered route as an
// ordered edge sequence. Path is empty when the target is unreachable or
// coincides with the source. The slice is owned by the State; the paths
// package wraps it without copying, so treat a State as frozen once
// returned.
type State struct {
	// Path holds the edges of the discovered route, source first.
	Path []core.Edge
}

// Options configures a single AStar execution.
type Options struct {
	// Heuristic is the admissible remaining-distance estimate. Defaults to
	// the constant-zero function, which is admissible but uninformative:
	// the search degrades to uniform-cost exploration.
	Heuristic Heuristic
}

// Option is a functional option for configuring AStar.
type Option func(*Options)

// DefaultOptions returns Options with the constant-zero heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: func(int) float64 { return 0 }}
}

// WithHeuristic sets the remaining-distance estimate. A nil fn keeps the
// zero default.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// AStar searches for the cheapest route source→target, guided by the
// configured heuristic, reading edge costs from the square matrix weights.
//
// Validation order: ErrNilGraph, ErrNilWeights, ErrDimensionMismatch,
// ErrVertexRange. A negative traversable edge encountered during the
// search yields ErrNegativeWeight.
//
// An unreachable target is not an error: the returned State simply holds
// an empty Path.
//
// Complexity: O((V + E) log V) time worst case, O(V + E) space.
func AStar(g core.Graph, weights *mat.Dense, source, target int, opts ...Option) (*State, error) {
	cfg := DefaultOptions()
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
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d on %d vertices", ErrVertexRange, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d on %d vertices", ErrVertexRange, target, n)
	}

	// Trivial pair: the native representation of "already there" is an
	// empty edge sequence, not a one-vertex path.
	if source == target {
		return &State{Path: []core.Edge{}}, nil
	}

	gScore := make([]float64, n) // best known cost from source
	parent := make([]int, n)
	closed := make([]bool, n)
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		gScore[v] = inf
		parent[v] = -1
	}
	gScore[source] = 0
	parent[source] = source

	pq := make(frontier, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &frontierItem{v: source, f: cfg.Heuristic(source)})

	var (
		item    *frontierItem
		u, v    int
		w, cand float64
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*frontierItem)
		u = item.v
		if closed[u] {
			continue // stale frontier entry
		}
		if u == target {
			return &State{Path: tracePath(parent, weights, source, target)}, nil
		}
		closed[u] = true

		for _, v = range g.Neighbors(u) {
			w = weights.At(u, v)
			if math.IsInf(w, 1) {
				continue // no-edge sentinel
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
			}
			cand = gScore[u] + w
			if cand >= gScore[v] {
				continue
			}
			gScore[v] = cand
			parent[v] = u
			heap.Push(&pq, &frontierItem{v: v, f: cand + cfg.Heuristic(v)})
		}
	}

	// Frontier exhausted without settling the target: unreachable.
	return &State{Path: []core.Edge{}}, nil
}

// tracePath rebuilds the edge sequence source→target from parent links.
func tracePath(parent []int, weights *mat.Dense, source, target int) []core.Edge {
	// Count hops first so the edge slice is allocated exactly once.
	hops := 0
	for v := target; v != source; v = parent[v] {
		hops++
	}
	path := make([]core.Edge, hops)
	for v, i := target, hops-1; v != source; v, i = parent[v], i-1 {
		path[i] = core.Edge{From: parent[v], To: v, Weight: weights.At(parent[v], v)}
	}

	return path
}

// frontierItem pairs a vertex with its f = g + h priority.
type frontierItem struct {
	v int
	f float64
}

// frontier is a min-heap of *frontierItem ordered by f ascending, using the
// same lazy decrease-key pattern as package dijkstra.
type frontier []*frontierItem

func (pq frontier) Len() int            { return len(pq) }
func (pq frontier) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq frontier) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
