// Package paths: path materialization from any Result variant.
package paths

import (
	"fmt"

	"github.com/gravline/spath/core"
)

// EnumeratePath materializes the ordered vertex sequence of the shortest
// path encoded in r. The trailing vertices select what to reconstruct,
// depending on the variant:
//
//   - DijkstraResult, BellmanFordResult: exactly one vertex — the target.
//   - FloydWarshallResult: exactly two vertices — source, then target.
//   - AStarResult: none — the result already encodes a single pair; any
//     vertices supplied are ignored.
//
// An unreachable target yields an empty sequence and a nil error: that is
// a property of the graph, not a malformed call. The returned slice is
// freshly allocated and fully materialized.
//
// Complexity: O(path length).
func EnumeratePath(r Result, vertices ...int) ([]int, error) {
	switch res := r.(type) {
	case DijkstraResult:
		if len(vertices) != 1 {
			return nil, fmt.Errorf("%w: single-source result needs 1 target, got %d", ErrBadTargetCount, len(vertices))
		}

		return walkParents(res.parents, vertices[0])
	case BellmanFordResult:
		if len(vertices) != 1 {
			return nil, fmt.Errorf("%w: single-source result needs 1 target, got %d", ErrBadTargetCount, len(vertices))
		}

		return walkParents(res.parents, vertices[0])
	case FloydWarshallResult:
		if len(vertices) != 2 {
			return nil, fmt.Errorf("%w: all-pairs result needs source and target, got %d", ErrBadTargetCount, len(vertices))
		}

		return walkParentRow(res.parents, vertices[0], vertices[1])
	case AStarResult:
		return edgeListVertices(res.edges), nil
	case nil:
		return nil, ErrNilResult
	default:
		// The Result sum is sealed; no other variant can exist.
		return nil, fmt.Errorf("%w: unhandled result %T", ErrNilResult, r)
	}
}

// EnumeratePaths expands a single-source result into its path tree: one
// vertex sequence per requested target, every vertex when targets are
// omitted. Unreachable targets contribute empty sequences.
//
// Only single-source variants encode a full tree; other variants yield
// ErrSingleSourceOnly.
//
// Complexity: O(sum of path lengths).
func EnumeratePaths(r Result, targets ...int) ([][]int, error) {
	var parents []int
	switch res := r.(type) {
	case DijkstraResult:
		parents = res.parents
	case BellmanFordResult:
		parents = res.parents
	case nil:
		return nil, ErrNilResult
	default:
		return nil, fmt.Errorf("%w: got %T", ErrSingleSourceOnly, r)
	}

	if len(targets) == 0 {
		targets = make([]int, len(parents))
		for v := range targets {
			targets[v] = v
		}
	}

	out := make([][]int, len(targets))
	for i, tgt := range targets {
		seq, err := walkParents(parents, tgt)
		if err != nil {
			return nil, err
		}
		out[i] = seq
	}

	return out, nil
}

// AllShortestPaths enumerates every simple shortest path from the source
// set to target recorded by Dijkstra's all-paths mode, by depth-first
// traversal of the predecessor structure. Zero-weight cycles admit
// infinitely many tied walks; only cycle-free routes are reported. An
// unreachable target yields an empty path list.
//
// Requires a DijkstraResult computed with AllPaths (ErrNoAllPaths
// otherwise); other variants yield ErrSingleSourceOnly.
//
// Complexity: O(paths × path length) — the output, not the traversal,
// dominates.
func AllShortestPaths(r Result, target int) ([][]int, error) {
	res, ok := r.(DijkstraResult)
	if !ok {
		if r == nil {
			return nil, ErrNilResult
		}

		return nil, fmt.Errorf("%w: got %T", ErrSingleSourceOnly, r)
	}
	if res.predecessors == nil {
		return nil, ErrNoAllPaths
	}
	if target < 0 || target >= len(res.parents) {
		return nil, fmt.Errorf("%w: target %d on %d vertices", ErrVertexRange, target, len(res.parents))
	}
	if res.parents[target] == noParent {
		return [][]int{}, nil // unreachable: no paths at all
	}

	out := make([][]int, 0, len(res.parents))
	stack := make([]int, 0, len(res.parents))
	onStack := make([]bool, len(res.parents))

	// Walk target→source through every predecessor branch; a vertex that
	// is its own parent is a source, completing one path. Zero-weight
	// cycles make the predecessor structure cyclic, so only simple paths
	// are enumerated: a branch re-entering a vertex already on the stack
	// is abandoned.
	var dfs func(v int)
	dfs = func(v int) {
		if onStack[v] {
			return
		}
		onStack[v] = true
		stack = append(stack, v)
		if res.parents[v] == v {
			path := make([]int, len(stack))
			for i, u := range stack {
				path[len(stack)-1-i] = u
			}
			out = append(out, path)
		} else {
			for _, u := range res.predecessors[v] {
				dfs(u)
			}
		}
		stack = stack[:len(stack)-1]
		onStack[v] = false
	}
	dfs(target)

	return out, nil
}

// walkParents follows parent links from target back to a source (a vertex
// that is its own parent), then reverses. An unreachable target (sentinel
// parent) yields an empty sequence.
func walkParents(parents []int, target int) ([]int, error) {
	if target < 0 || target >= len(parents) {
		return nil, fmt.Errorf("%w: target %d on %d vertices", ErrVertexRange, target, len(parents))
	}
	if parents[target] == noParent {
		return []int{}, nil
	}

	seq := make([]int, 0, 8)
	v := target
	for {
		seq = append(seq, v)
		if parents[v] == v {
			break
		}
		v = parents[v]
	}
	reverse(seq)

	return seq, nil
}

// walkParentRow follows the [src] row of an all-pairs parent matrix from
// dst back to src, then reverses.
func walkParentRow(parents [][]int, src, dst int) ([]int, error) {
	n := len(parents)
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: source %d on %d vertices", ErrVertexRange, src, n)
	}
	if dst < 0 || dst >= n {
		return nil, fmt.Errorf("%w: target %d on %d vertices", ErrVertexRange, dst, n)
	}
	if parents[src][dst] == noParent {
		return []int{}, nil
	}

	seq := make([]int, 0, 8)
	v := dst
	for {
		seq = append(seq, v)
		if v == src {
			break
		}
		v = parents[src][v]
	}
	reverse(seq)

	return seq, nil
}

// edgeListVertices converts a route of n edges into its n+1 vertices:
// every edge contributes its source, and the final edge adds its
// destination. Zero edges convert to zero vertices — an empty route has
// no implicit standing-still vertex.
func edgeListVertices(edges []core.Edge) []int {
	if len(edges) == 0 {
		return []int{}
	}
	seq := make([]int, 0, len(edges)+1)
	for _, e := range edges {
		seq = append(seq, e.From)
	}
	seq = append(seq, edges[len(edges)-1].To)

	return seq
}

// reverse flips a vertex sequence in place.
func reverse(seq []int) {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}
