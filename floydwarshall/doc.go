// Package floydwarshall implements the dense all-pairs shortest-path
// dynamic program over a core.Graph and a square edge-weight matrix.
//
// What
//
//   - Computes shortest distances and parent links between every ordered
//     vertex pair simultaneously, with the deterministic k→i→j loop order.
//   - Returns a *State holding the distance matrix and the parent matrix.
//     NOTE the native field order is (Dists, Parents) — the historical
//     all-pairs layout — while the public result in package paths stores
//     (parents, dists) like every other variant; the conversion between
//     the two orders lives entirely inside that package's converter.
//
// Weight conventions
//
//   - weights[u][v] = +Inf means "no edge u→v"; the diagonal must be 0
//     (core-derived matrices guarantee both).
//   - Negative edge weights are allowed; a negative cycle (any negative
//     diagonal entry after the closure) aborts with ErrNegativeCycle.
//
// Complexity: O(V³) time, O(V²) space (the input matrix is copied, never
// mutated — it is borrowed read-only like everywhere else in this module).
package floydwarshall
