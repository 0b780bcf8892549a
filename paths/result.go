// Package paths: the four Result variants and their zero-copy converters
// to and from the routines' native states.
package paths

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gravline/spath/astar"
	"github.com/gravline/spath/bellmanford"
	"github.com/gravline/spath/core"
	"github.com/gravline/spath/dijkstra"
	"github.com/gravline/spath/floydwarshall"
)

// noParent mirrors the routines' shared parent-link sentinel.
const noParent = -1

// Result is a read-only snapshot of one shortest-path computation. The
// variant set is closed: DijkstraResult, BellmanFordResult, AStarResult,
// and FloydWarshallResult, matched exhaustively by the enumerators.
//
// Results own their storage and never expose mutable access; the State()
// conversions alias that storage for zero-copy symmetry, so mutating a
// converted native State afterwards is undefined behavior.
type Result interface {
	isResult()
}

// DijkstraResult is the single-source label-setting snapshot: parent links
// and distances, plus the optional all-paths and visit-order extensions.
type DijkstraResult struct {
	parents      []int
	dists        []float64
	predecessors [][]int
	pathCounts   []int
	closest      []int
}

// BellmanFordResult is the single-source relaxation snapshot: parent links
// and distances.
type BellmanFordResult struct {
	parents []int
	dists   []float64
}

// AStarResult is the single-pair heuristic snapshot: the discovered route
// as an ordered edge sequence (empty when the target was unreachable).
type AStarResult struct {
	edges []core.Edge
}

// FloydWarshallResult is the all-pairs snapshot: parent and distance
// matrices indexed [source][destination]. Fields are stored in the
// consistent (parents, dists) order shared by every variant; the native
// all-pairs layout inverts them, and that inversion is confined to the
// converters below.
type FloydWarshallResult struct {
	parents [][]int
	dists   *mat.Dense
}

func (DijkstraResult) isResult()      {}
func (BellmanFordResult) isResult()   {}
func (AStarResult) isResult()         {}
func (FloydWarshallResult) isResult() {}

// ------------------------------------------------------------------------
// Converters: structural reinterpretation, field for field, no element
// copying, no recomputation, no failure mode.
// ------------------------------------------------------------------------

// FromDijkstraState wraps a native label-setting state. The state must not
// be mutated afterwards.
func FromDijkstraState(st *dijkstra.State) DijkstraResult {
	return DijkstraResult{
		parents:      st.Parents,
		dists:        st.Dists,
		predecessors: st.Predecessors,
		pathCounts:   st.PathCounts,
		closest:      st.Closest,
	}
}

// State converts the result back to the routine's native representation.
// The returned state aliases result storage; mutating it is undefined
// behavior.
func (r DijkstraResult) State() *dijkstra.State {
	return &dijkstra.State{
		Parents:      r.parents,
		Dists:        r.dists,
		Predecessors: r.predecessors,
		PathCounts:   r.pathCounts,
		Closest:      r.closest,
	}
}

// FromBellmanFordState wraps a native relaxation state. The state must not
// be mutated afterwards.
func FromBellmanFordState(st *bellmanford.State) BellmanFordResult {
	return BellmanFordResult{parents: st.Parents, dists: st.Dists}
}

// State converts the result back to the routine's native representation.
// The returned state aliases result storage; mutating it is undefined
// behavior.
func (r BellmanFordResult) State() *bellmanford.State {
	return &bellmanford.State{Parents: r.parents, Dists: r.dists}
}

// FromAStarState wraps a native heuristic-search state. The state must not
// be mutated afterwards.
func FromAStarState(st *astar.State) AStarResult {
	return AStarResult{edges: st.Path}
}

// State converts the result back to the routine's native representation.
// The returned state aliases result storage; mutating it is undefined
// behavior.
func (r AStarResult) State() *astar.State {
	return &astar.State{Path: r.edges}
}

// FromFloydWarshallState wraps a native all-pairs state. The native layout
// orders its fields (dists, parents); the public result stores parents
// first like every other variant. The swap happens here — and only here.
func FromFloydWarshallState(st *floydwarshall.State) FloydWarshallResult {
	return FloydWarshallResult{parents: st.Parents, dists: st.Dists}
}

// State converts the result back to the routine's native (dists, parents)
// layout, undoing the converter's field-order swap. The returned state
// aliases result storage; mutating it is undefined behavior.
func (r FloydWarshallResult) State() *floydwarshall.State {
	return &floydwarshall.State{Dists: r.dists, Parents: r.parents}
}

// ------------------------------------------------------------------------
// Read-only accessors.
// ------------------------------------------------------------------------

// Order returns the number of vertices covered by the result.
func (r DijkstraResult) Order() int { return len(r.parents) }

// Dist returns the shortest distance from the nearest source to v
// (+Inf when unreachable). Panics if v is out of range.
func (r DijkstraResult) Dist(v int) float64 { return r.dists[v] }

// Parent returns the parent link of v: the vertex the shortest path
// arrives from, v itself for a source, -1 when unreachable.
func (r DijkstraResult) Parent(v int) int { return r.parents[v] }

// HasAllPaths reports whether the computation recorded predecessor lists
// and path counts.
func (r DijkstraResult) HasAllPaths() bool { return r.predecessors != nil }

// Predecessors returns a copy of the shortest-path predecessor list of v,
// or nil when all-paths data was not requested.
func (r DijkstraResult) Predecessors(v int) []int {
	if r.predecessors == nil || r.predecessors[v] == nil {
		return nil
	}
	out := make([]int, len(r.predecessors[v]))
	copy(out, r.predecessors[v])

	return out
}

// PathCount returns the number of distinct shortest paths reaching v, or
// 0 when all-paths data was not requested. On graphs with zero-weight
// cycles the count covers walks through the recorded predecessor
// structure and can exceed the number of simple paths AllShortestPaths
// reports.
func (r DijkstraResult) PathCount(v int) int {
	if r.pathCounts == nil {
		return 0
	}

	return r.pathCounts[v]
}

// ClosestVertices returns a copy of the settle order (closest first), or
// nil when visit tracking was not requested.
func (r DijkstraResult) ClosestVertices() []int {
	if r.closest == nil {
		return nil
	}
	out := make([]int, len(r.closest))
	copy(out, r.closest)

	return out
}

// Order returns the number of vertices covered by the result.
func (r BellmanFordResult) Order() int { return len(r.parents) }

// Dist returns the shortest distance from the nearest source to v
// (+Inf when unreachable). Panics if v is out of range.
func (r BellmanFordResult) Dist(v int) float64 { return r.dists[v] }

// Parent returns the parent link of v: the vertex the shortest path
// arrives from, v itself for a source, -1 when unreachable.
func (r BellmanFordResult) Parent(v int) int { return r.parents[v] }

// Len returns the number of edges on the discovered route (0 when the
// target was unreachable or equal to the source).
func (r AStarResult) Len() int { return len(r.edges) }

// Edges returns a copy of the discovered route's edge sequence.
func (r AStarResult) Edges() []core.Edge {
	out := make([]core.Edge, len(r.edges))
	copy(out, r.edges)

	return out
}

// Dist returns the total weight of the discovered route.
func (r AStarResult) Dist() float64 {
	total := 0.0
	for _, e := range r.edges {
		total += e.Weight
	}

	return total
}

// Order returns the number of vertices covered by the result.
func (r FloydWarshallResult) Order() int { return len(r.parents) }

// Dist returns the shortest distance u→v (+Inf when unreachable).
// Panics if u or v is out of range.
func (r FloydWarshallResult) Dist(u, v int) float64 { return r.dists.At(u, v) }

// Parent returns the parent of v on the shortest path from u, -1 when
// unreachable, u's own index on the diagonal.
func (r FloydWarshallResult) Parent(u, v int) int { return r.parents[u][v] }
