package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gravline/spath/core"
)

// Dijkstra computes shortest distances from the given source set to every
// vertex of g, reading edge costs from the square matrix weights.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. weights must be non-nil (ErrNilWeights) and n×n (ErrDimensionMismatch).
//  3. sources must be non-empty (ErrNoSources) and in range (ErrVertexRange).
//  4. No traversable edge may have negative weight (ErrNegativeWeight);
//     traversable means listed in the adjacency AND finite in weights.
//
// The returned State is the routine's native representation; see package
// doc for field semantics.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g core.Graph, weights *mat.Dense, sources []int, opts ...Option) (*State, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	n, err := validate(g, weights, sources)
	if err != nil {
		return nil, err
	}

	// 3) Fail fast on negative traversable edges.
	var u, v int
	var w float64
	for u = 0; u < n; u++ {
		for _, v = range g.Neighbors(u) {
			w = weights.At(u, v)
			if math.IsInf(w, 1) {
				continue // no-edge sentinel: never traversed
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 4) Allocate native state and run.
	r := &runner{
		g:       g,
		weights: weights,
		options: cfg,
		state:   newState(n, cfg),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(sources)
	r.process()

	return r.state, nil
}

// validate checks graph/weights/sources compatibility and returns the order.
func validate(g core.Graph, weights *mat.Dense, sources []int) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if weights == nil {
		return 0, ErrNilWeights
	}
	n := g.Order()
	if r, c := weights.Dims(); r != n || c != n {
		return 0, fmt.Errorf("%w: got %dx%d for %d vertices", ErrDimensionMismatch, r, c, n)
	}
	if len(sources) == 0 {
		return 0, ErrNoSources
	}
	for _, s := range sources {
		if s < 0 || s >= n {
			return 0, fmt.Errorf("%w: source %d on %d vertices", ErrVertexRange, s, n)
		}
	}

	return n, nil
}

// newState allocates a State sized for n vertices, extended per options.
func newState(n int, cfg Options) *State {
	st := &State{
		Parents: make([]int, n),
		Dists:   make([]float64, n),
	}
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		st.Parents[v] = NoParent
		st.Dists[v] = inf
	}
	if cfg.AllPaths {
		st.Predecessors = make([][]int, n)
		st.PathCounts = make([]int, n)
	}
	if cfg.TrackVertices {
		st.Closest = make([]int, 0, n)
	}

	return st
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       core.Graph
	weights *mat.Dense
	options Options
	state   *State
	visited []bool // true once a vertex's distance is finalized
	pq      nodePQ // min-heap with lazy decrease-key
}

// init seeds every source at distance zero, as its own parent.
func (r *runner) init(sources []int) {
	heap.Init(&r.pq)
	for _, s := range sources {
		r.state.Dists[s] = 0
		r.state.Parents[s] = s
		if r.options.AllPaths {
			r.state.PathCounts[s] = 1
		}
		heap.Push(&r.pq, &nodeItem{v: s, dist: 0})
	}
}

// process pops vertices in non-decreasing distance order and relaxes their
// outgoing edges until the heap drains.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.v] {
			continue // stale entry left behind by lazy decrease-key
		}
		r.visited[item.v] = true
		if r.options.TrackVertices {
			r.state.Closest = append(r.state.Closest, item.v)
		}
		r.relax(item.v)
	}
}

// relax attempts to improve the distance of every neighbor of u.
// Equal-cost alternatives only extend the all-paths bookkeeping; the parent
// link keeps the first-found shortest path for determinism.
func (r *runner) relax(u int) {
	st := r.state
	var v int
	var w, cand float64
	for _, v = range r.g.Neighbors(u) {
		w = r.weights.At(u, v)
		if math.IsInf(w, 1) {
			continue // impassable
		}
		cand = st.Dists[u] + w

		switch {
		case cand < st.Dists[v]:
			st.Dists[v] = cand
			st.Parents[v] = u
			if r.options.AllPaths {
				// A strictly better path invalidates earlier predecessors.
				st.Predecessors[v] = []int{u}
				st.PathCounts[v] = st.PathCounts[u]
			}
			heap.Push(&r.pq, &nodeItem{v: v, dist: cand})
		case r.options.AllPaths && cand == st.Dists[v] && !math.IsInf(cand, 1) && u != v:
			// A tie adds another way of reaching v at the same cost. A
			// zero-weight self-loop ties too but contributes no new path,
			// so a vertex never becomes its own predecessor.
			st.Predecessors[v] = append(st.Predecessors[v], u)
			st.PathCounts[v] += st.PathCounts[u]
		}
	}
}

// nodeItem pairs a vertex with its tentative distance for heap ordering.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Shorter
// rediscoveries push duplicates; stale entries are skipped on pop via the
// visited slice (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
