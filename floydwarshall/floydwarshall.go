package floydwarshall

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gravline/spath/core"
)

// Sentinel errors returned by FloydWarshall.
var (
	// ErrNilGraph indicates a nil core.Graph was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNilWeights indicates a nil weight matrix was passed.
	ErrNilWeights = errors.New("floydwarshall: weight matrix is nil")

	// ErrDimensionMismatch indicates the weight matrix is not n×n.
	ErrDimensionMismatch = errors.New("floydwarshall: weight matrix dimension mismatch")

	// ErrNegativeCycle indicates a negative-weight cycle somewhere in the
	// graph; all-pairs distances are undefined and no State is returned.
	ErrNegativeCycle = errors.New("floydwarshall: negative-weight cycle detected")
)

// NoParent is the parent-matrix sentinel for pairs with no connecting path.
const NoParent = -1

// State is the routine's native working representation. Field order is
// (Dists, Parents) — see the package doc for why this differs from the
// public result layout. Storage is owned by the State; the paths package
// wraps it without copying, so treat a State as frozen once returned.
type State struct {
	// Dists[i][j] is the shortest distance i→j (+Inf when unreachable).
	Dists *mat.Dense

	// Parents[i][j] is the parent of j on the shortest path from i
	// (NoParent when unreachable; Parents[i][i] == i).
	Parents [][]int
}

// FloydWarshall runs the all-pairs closure over g's vertex set, reading
// edge costs from the square matrix weights. The input matrix is copied;
// the working buffer is mutated in place with the fixed k→i→j order.
//
// Validation order: ErrNilGraph, ErrNilWeights, ErrDimensionMismatch.
// A negative diagonal entry after the closure yields ErrNegativeCycle.
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g core.Graph, weights *mat.Dense) (*State, error) {
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

	// Working copy: the caller's matrix is borrowed read-only.
	dist := mat.DenseCopyOf(weights)

	// Seed parents from direct edges: j's parent on the path from i is i
	// itself exactly when the edge i→j exists.
	parents := make([][]int, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		row := make([]int, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				row[j] = i
			case !math.IsInf(dist.At(i, j), 1):
				row[j] = i
			default:
				row[j] = NoParent
			}
		}
		parents[i] = row
	}

	// Deterministic closure: fixed k→i→j order, strict improvement only.
	var dik, dkj, cand float64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik = dist.At(i, k)
			if math.IsInf(dik, 1) {
				continue // no path via k can improve row i
			}
			for j = 0; j < n; j++ {
				dkj = dist.At(k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				cand = dik + dkj
				if cand < dist.At(i, j) {
					dist.Set(i, j, cand)
					// The last hop into j now comes from the k→j path.
					parents[i][j] = parents[k][j]
				}
			}
		}
	}

	// A vertex cheaper to revisit than to stay at closes a negative cycle.
	for i = 0; i < n; i++ {
		if dist.At(i, i) < 0 {
			return nil, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNegativeCycle, i, i, dist.At(i, i))
		}
	}

	return &State{Dists: dist, Parents: parents}, nil
}
