package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gravline/spath/core"
)

// ErrNoEdges indicates a graph file declaring no edges at all; almost
// always a mis-written file, so it is rejected rather than silently
// producing unreachable-everywhere answers.
var ErrNoEdges = errors.New("cli: graph file has no edges")

// graphFile is the TOML document shape:
//
//	directed = true
//	vertices = 4
//
//	[[edges]]
//	from = 0
//	to = 1
//	weight = 2.5   # optional, defaults to 1
type graphFile struct {
	Directed bool       `toml:"directed"`
	Vertices int        `toml:"vertices"`
	Edges    []edgeSpec `toml:"edges"`
}

// edgeSpec is one [[edges]] entry. Weight is a pointer so an omitted
// weight (unit cost) is distinguishable from an explicit zero.
type edgeSpec struct {
	From   int      `toml:"from"`
	To     int      `toml:"to"`
	Weight *float64 `toml:"weight"`
}

// loadGraph decodes a TOML graph file into an AdjGraph. Edge weights
// default to 1; the graph is always built weighted so explicit weights
// and unit costs can mix freely.
func loadGraph(path string) (*core.AdjGraph, error) {
	var doc graphFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("cli: decode %s: %w", path, err)
	}

	return buildGraph(doc)
}

// buildGraph converts a decoded document into an AdjGraph.
func buildGraph(doc graphFile) (*core.AdjGraph, error) {
	if len(doc.Edges) == 0 {
		return nil, ErrNoEdges
	}

	g, err := core.NewAdjGraph(doc.Vertices,
		core.WithDirected(doc.Directed),
		core.WithWeighted(),
	)
	if err != nil {
		return nil, err
	}

	for _, e := range doc.Edges {
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		if err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("cli: edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
