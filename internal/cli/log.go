// Package cli implements the spath command-line interface.
//
// The CLI loads a graph from a TOML file, runs one of the shortest-path
// algorithms through the paths dispatch layer, and prints reconstructed
// routes. It is built on cobra; logging uses charmbracelet/log at info
// level by default and debug level under --verbose, with the logger
// carried through the command context.
//
// Commands:
//   - route:    single-source trees or single pairs (dijkstra,
//     bellmanford, astar)
//   - allpairs: the dense all-pairs matrix, or one pair out of it
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// ctxKey is the private context key type for the logger.
type ctxKey struct{}

// newLogger creates a logger writing to w with sub-second timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches l to ctx for retrieval by subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the attached logger, or the package default
// when the context carries none (e.g. in tests driving commands directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
