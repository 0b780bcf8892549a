package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravline/spath/paths"
)

func TestParseAlgorithm(t *testing.T) {
	// Empty name with no tunables defers to dispatch defaulting.
	algo, err := parseAlgorithm("", false, false)
	require.NoError(t, err)
	assert.Nil(t, algo)

	// Tunables force the label-setting descriptor even unnamed.
	algo, err = parseAlgorithm("", true, false)
	require.NoError(t, err)
	assert.Equal(t, paths.Dijkstra{AllPaths: true}, algo)

	algo, err = parseAlgorithm("dijkstra", false, true)
	require.NoError(t, err)
	assert.Equal(t, paths.Dijkstra{TrackVertices: true}, algo)

	algo, err = parseAlgorithm("bellmanford", false, false)
	require.NoError(t, err)
	assert.Equal(t, paths.BellmanFord{}, algo)

	algo, err = parseAlgorithm("astar", false, false)
	require.NoError(t, err)
	assert.IsType(t, paths.AStar{}, algo)

	_, err = parseAlgorithm("johnson", false, false)
	assert.ErrorIs(t, err, ErrUnknownAlgo)
}

// writeSample drops a small directed weighted graph into a temp file:
//
//	0 →1→ 1 →1→ 2, plus a 0 →5→ 2 shortcut that never wins.
func writeSample(t *testing.T) string {
	t.Helper()
	doc := `
directed = true
vertices = 4

[[edges]]
from = 0
to = 1

[[edges]]
from = 1
to = 2

[[edges]]
from = 0
to = 2
weight = 5.0
`
	path := filepath.Join(t.TempDir(), "g.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestRouteCmd_SinglePair(t *testing.T) {
	var out bytes.Buffer
	cmd := newRouteCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"-g", writeSample(t), "-s", "0", "-t", "2"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "2: [0 1 2] (dist 2)\n", out.String())
}

func TestRouteCmd_TreeIncludesUnreachable(t *testing.T) {
	var out bytes.Buffer
	cmd := newRouteCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"-g", writeSample(t), "-s", "0"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "2: [0 1 2] (dist 2)\n")
	assert.Contains(t, out.String(), "3: unreachable\n")
}

func TestRouteCmd_AStar(t *testing.T) {
	var out bytes.Buffer
	cmd := newRouteCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"-g", writeSample(t), "-s", "0", "-t", "2", "--algo", "astar"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0 → 2: [0 1 2] (dist 2)\n", out.String())
}

func TestRouteCmd_BadAlgo(t *testing.T) {
	cmd := newRouteCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-g", writeSample(t), "-s", "0", "--algo", "johnson"})

	assert.ErrorIs(t, cmd.Execute(), ErrUnknownAlgo)
}
