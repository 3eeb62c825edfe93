package mazepath

import (
	"context"
	"time"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Stats summarizes a finished run the way the visualizer reports it.
type Stats struct {
	// PathLength is the number of cells on the path (0 when not found).
	PathLength int `json:"pathLength"`
	// NodesExplored is len(Result.Explored).
	NodesExplored int `json:"nodesExplored"`
	// Elapsed is the wall-clock duration of the call, pacing included.
	Elapsed time.Duration `json:"elapsed"`
	// Progress is 1 for a run that finished, found or not. A cancelled run
	// reports NodesExplored over the total cell count, capped at 1.
	Progress float64 `json:"progress"`
}

// Report is the outcome of Run.
type Report struct {
	Algorithm Algorithm      `json:"algorithm"`
	Start     grid.Cell      `json:"start"`
	Goal      grid.Cell      `json:"goal"`
	Result    *search.Result `json:"result"`
	Stats     Stats          `json:"stats"`
}

// Run is Solve with timing. On cancellation the Report still carries the
// partial Result and its partial Progress alongside the error; on any other
// error it is nil.
func Run(ctx context.Context, g *grid.Grid, alg Algorithm, start, goal grid.Cell, opts ...search.Option) (*Report, error) {
	began := time.Now()
	res, err := Solve(ctx, g, alg, start, goal, opts...)
	if res == nil {
		return nil, err
	}

	stats := Measure(res, time.Since(began))
	if err != nil {
		stats.Progress = Progress(g, stats.NodesExplored)
	}

	return &Report{
		Algorithm: alg,
		Start:     start,
		Goal:      goal,
		Result:    res,
		Stats:     stats,
	}, err
}

// Measure derives Stats from the Result of a finished run, so Progress is 1.
func Measure(res *search.Result, elapsed time.Duration) Stats {
	return Stats{
		PathLength:    len(res.Path),
		NodesExplored: len(res.Explored),
		Elapsed:       elapsed,
		Progress:      1,
	}
}

// Progress returns explored over the total cell count of g, capped at 1.
// An empty or nil grid reports 1.
func Progress(g *grid.Grid, explored int) float64 {
	if g == nil || g.Size() == 0 {
		return 1
	}

	return min(float64(explored)/float64(g.Size()), 1)
}
