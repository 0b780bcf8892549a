package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravline/spath/paths"
)

// ErrUnknownAlgo indicates an unrecognized --algo value.
var ErrUnknownAlgo = errors.New(`cli: unknown algorithm (want "dijkstra", "bellmanford" or "astar")`)

// parseAlgorithm maps the --algo flag onto a descriptor. An empty name
// returns nil, letting the dispatch layer apply its own defaulting.
func parseAlgorithm(name string, allPaths, track bool) (paths.Algorithm, error) {
	switch name {
	case "":
		if allPaths || track {
			// Tunables imply label-setting even without an explicit name.
			return paths.Dijkstra{AllPaths: allPaths, TrackVertices: track}, nil
		}

		return nil, nil
	case "dijkstra":
		return paths.Dijkstra{AllPaths: allPaths, TrackVertices: track}, nil
	case "bellmanford":
		return paths.BellmanFord{}, nil
	case "astar":
		// No heuristic is expressible on the command line; the zero
		// default degrades to uniform-cost search.
		return paths.AStar{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgo, name)
	}
}

// newRouteCmd builds the single-source / single-pair command.
func newRouteCmd() *cobra.Command {
	var (
		graphPath string
		sources   []int
		target    int
		algoName  string
		allPaths  bool
		track     bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute shortest paths from one or more sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "vertices", g.Order(), "arcs", g.EdgeCount())

			algo, err := parseAlgorithm(algoName, allPaths, track)
			if err != nil {
				return err
			}

			opts := []paths.Option{paths.FromAll(sources...)}
			if algo != nil {
				opts = append(opts, paths.WithAlgorithm(algo))
			}
			if _, isAStar := algo.(paths.AStar); isAStar && target >= 0 {
				opts = append(opts, paths.To(target))
			}

			res, err := paths.ShortestPaths(g, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch r := res.(type) {
			case paths.AStarResult:
				seq, _ := paths.EnumeratePath(r)
				fmt.Fprintf(out, "%d → %d: %v (dist %g)\n", sources[0], target, seq, r.Dist())
			case paths.DijkstraResult:
				return printTree(out, res, target, func(v int) float64 { return r.Dist(v) })
			case paths.BellmanFordResult:
				return printTree(out, res, target, func(v int) float64 { return r.Dist(v) })
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "TOML graph file (required)")
	cmd.Flags().IntSliceVarP(&sources, "source", "s", nil, "source vertex (repeatable, required)")
	cmd.Flags().IntVarP(&target, "target", "t", -1, "target vertex (-1 = all reachable)")
	cmd.Flags().StringVar(&algoName, "algo", "", "dijkstra | bellmanford | astar (default: auto)")
	cmd.Flags().BoolVar(&allPaths, "all-paths", false, "track every tied-optimal path (dijkstra)")
	cmd.Flags().BoolVar(&track, "track", false, "record vertex settle order (dijkstra)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

// printTree writes either a single route (target >= 0) or the whole path
// tree of a single-source result.
func printTree(out io.Writer, res paths.Result, target int, dist func(int) float64) error {
	if target >= 0 {
		seq, err := paths.EnumeratePath(res, target)
		if err != nil {
			return err
		}
		if len(seq) == 0 {
			fmt.Fprintf(out, "%d: unreachable\n", target)
			return nil
		}
		fmt.Fprintf(out, "%d: %v (dist %g)\n", target, seq, dist(target))

		return nil
	}

	tree, err := paths.EnumeratePaths(res)
	if err != nil {
		return err
	}
	for v, seq := range tree {
		if len(seq) == 0 {
			fmt.Fprintf(out, "%d: unreachable\n", v)
			continue
		}
		fmt.Fprintf(out, "%d: %v (dist %g)\n", v, seq, dist(v))
	}

	return nil
}
