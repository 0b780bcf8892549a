package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/gravline/spath/paths"
)

// newAllPairsCmd builds the all-pairs command.
func newAllPairsCmd() *cobra.Command {
	var (
		graphPath string
		source    int
		target    int
	)

	cmd := &cobra.Command{
		Use:   "allpairs",
		Short: "Compute every-pair shortest distances",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "vertices", g.Order(), "arcs", g.EdgeCount())

			res, err := paths.ShortestPaths(g)
			if err != nil {
				return err
			}
			fw := res.(paths.FloydWarshallResult)

			out := cmd.OutOrStdout()
			if source >= 0 && target >= 0 {
				seq, err := paths.EnumeratePath(fw, source, target)
				if err != nil {
					return err
				}
				if len(seq) == 0 {
					fmt.Fprintf(out, "%d → %d: unreachable\n", source, target)
					return nil
				}
				fmt.Fprintf(out, "%d → %d: %v (dist %g)\n", source, target, seq, fw.Dist(source, target))

				return nil
			}

			printDistMatrix(out, fw)

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "TOML graph file (required)")
	cmd.Flags().IntVarP(&source, "source", "s", -1, "print only this pair: source vertex")
	cmd.Flags().IntVarP(&target, "target", "t", -1, "print only this pair: target vertex")
	_ = cmd.MarkFlagRequired("graph")
	cmd.MarkFlagsRequiredTogether("source", "target")

	return cmd
}

// printDistMatrix writes the n×n distance table, one row per source, with
// "inf" for unreachable pairs.
func printDistMatrix(out io.Writer, fw paths.FloydWarshallResult) {
	n := fw.Order()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if v > 0 {
				fmt.Fprint(out, "\t")
			}
			if d := fw.Dist(u, v); math.IsInf(d, 1) {
				fmt.Fprint(out, "inf")
			} else {
				fmt.Fprintf(out, "%g", d)
			}
		}
		fmt.Fprintln(out)
	}
}
