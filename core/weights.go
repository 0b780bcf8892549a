package core

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Weights builds the graph's derived default weight matrix.
//
// Policy (shared by every routine in this module):
//   - w[u][v] = stored edge weight (unit 1 on unweighted graphs) when u→v exists,
//   - w[u][v] = +Inf when no edge exists,
//   - w[v][v] = 0 always (distance from a vertex to itself).
//
// The matrix is freshly allocated on every call, so callers may hold it for
// as long as they like without aliasing graph storage.
// Complexity: O(V² + E).
func (g *AdjGraph) Weights() *mat.Dense {
	w := NewWeightMatrix(g.n)
	var u, v int
	for u = 0; u < g.n; u++ {
		for _, v = range g.adj[u] {
			if v == u {
				continue // self-loops never beat the zero diagonal
			}
			w.Set(u, v, g.wts[[2]int{u, v}])
		}
	}

	return w
}

// NewWeightMatrix allocates an n×n matrix pre-filled with the no-edge
// sentinel: +Inf everywhere except a zero diagonal. Callers Set explicit
// edge weights afterwards.
// Complexity: O(n²).
func NewWeightMatrix(n int) *mat.Dense {
	data := make([]float64, n*n)
	inf := math.Inf(1)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i == j {
				data[base+j] = 0
			} else {
				data[base+j] = inf
			}
		}
	}

	return mat.NewDense(n, n, data)
}
