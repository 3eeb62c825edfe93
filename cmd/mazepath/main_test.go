package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/scenario"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolve_Plain(t *testing.T) {
	out, err := execute(t, "solve", "--scenario", "corridor", "--plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S * o\n# * #\nG * o\n"), out)
	assert.Contains(t, out, "Breadth-First Search")
	assert.Contains(t, out, "path 5")
}

func TestSolve_JSON(t *testing.T) {
	out, err := execute(t, "solve", "-s", "sample", "-a", "bfs", "--json")
	require.NoError(t, err)

	var rep mazepath.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, mazepath.BFS, rep.Algorithm)
	assert.Equal(t, 30, rep.Stats.PathLength)
}

func TestSolve_Animate(t *testing.T) {
	out, err := execute(t, "solve", "-s", "corridor", "-a", "astar", "--animate", "--plain", "--speed", "instant")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, clearScreen), "five steps and the final frame")
	assert.Contains(t, out, "path 5")
}

func TestSolve_FromFile(t *testing.T) {
	sc := scenario.Scenario{Algorithm: "dfs", Maze: []string{"S.", ".G"}}
	data, err := sc.Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := execute(t, "solve", "--scenario", path, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Depth-First Search")
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "solve", "-s", "nope")
	assert.ErrorIs(t, err, scenario.ErrNotFound)

	_, err = execute(t, "solve", "-a", "greedy")
	assert.ErrorIs(t, err, mazepath.ErrUnknownAlgorithm)

	_, err = execute(t, "solve", "--delay=-5ms")
	assert.ErrorIs(t, err, scenario.ErrBadDelay)

	_, err = execute(t, "solve", "--animate", "--json")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "-s", "corridor")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "A* Search"))
	assert.True(t, strings.HasPrefix(lines[1], "Breadth-First Search"))
	assert.True(t, strings.HasPrefix(lines[2], "Depth-First Search"))
	for _, l := range lines {
		assert.Contains(t, l, "path 5")
	}
}

func TestCompare_Sealed(t *testing.T) {
	out, err := execute(t, "compare", "-s", "sealed")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "no path"))
}

func TestServe_BadLogLevel(t *testing.T) {
	_, err := execute(t, "serve", "--log-level", "loud")
	assert.Error(t, err)
}
