package mazepath

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// ErrUnknownAlgorithm is returned for an algorithm name or value that is not
// one of astar, bfs, dfs.
var ErrUnknownAlgorithm = errors.New("mazepath: unknown algorithm")

// Algorithm selects a search strategy.
type Algorithm int

const (
	// AStar is cost-guided best-first search with the Manhattan heuristic.
	AStar Algorithm = iota
	// BFS is breadth-first search.
	BFS
	// DFS is depth-first search.
	DFS
)

// Algorithms lists every strategy in display order.
var Algorithms = []Algorithm{AStar, BFS, DFS}

// String returns the short name: "astar", "bfs" or "dfs".
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Title returns the human-readable name.
func (a Algorithm) Title() string {
	switch a {
	case AStar:
		return "A* Search"
	case BFS:
		return "Breadth-First Search"
	case DFS:
		return "Depth-First Search"
	default:
		return a.String()
	}
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
// The empty string selects AStar.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "astar", "a*":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < AStar || a > DFS {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// strategy is the common signature of astar.AStar, bfs.BFS and dfs.DFS.
type strategy func(*grid.Grid, grid.Cell, grid.Cell, ...search.Option) (*search.Result, error)

func (a Algorithm) strategy() (strategy, error) {
	switch a {
	case AStar:
		return astar.AStar, nil
	case BFS:
		return bfs.BFS, nil
	case DFS:
		return dfs.DFS, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// Solve runs alg on g from start to goal. ctx governs cancellation; it
// overrides any search.WithContext in opts.
func Solve(ctx context.Context, g *grid.Grid, alg Algorithm, start, goal grid.Cell, opts ...search.Option) (*search.Result, error) {
	run, err := alg.strategy()
	if err != nil {
		return nil, err
	}
	all := make([]search.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, search.WithContext(ctx))

	return run(g, start, goal, all...)
}

// Steps returns a lazy sequence of search snapshots. Each iteration of the
// returned sequence starts a fresh search, so the sequence can be ranged
// over more than once with identical output.
//
// One Snapshot is yielded per expansion, followed by a terminal Snapshot with
// Done set that carries the final Path and Explored. Breaking out of the loop
// stops the search at its next checkpoint. Errors (bad options, cancellation,
// unknown algorithm) are yielded once as the last element; on cancellation
// that element still carries the explored cells and the path to the last
// expanded cell.
//
// Steps installs its own observer; a search.WithObserver in opts is ignored.
func Steps(ctx context.Context, g *grid.Grid, alg Algorithm, start, goal grid.Cell, opts ...search.Option) iter.Seq2[search.Snapshot, error] {
	return func(yield func(search.Snapshot, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stopped := false
		step := 0
		observe := func(explored, path []grid.Cell) error {
			step++
			snap := search.Snapshot{
				Step:     step,
				Current:  explored[len(explored)-1],
				Explored: explored,
				Path:     path,
			}
			if !yield(snap, nil) {
				stopped = true
				cancel()
			}
			return nil
		}

		all := make([]search.Option, 0, len(opts)+1)
		all = append(all, opts...)
		all = append(all, search.WithObserver(observe))
		res, err := Solve(ctx, g, alg, start, goal, all...)
		if stopped {
			return
		}
		if err != nil {
			yield(snapshotOf(step, res, false), err)
			return
		}
		yield(snapshotOf(step, res, true), nil)
	}
}

// snapshotOf carries res into a Snapshot. A nil res (bad options, observer
// failure) yields an empty one; a cancelled run keeps its partial result.
func snapshotOf(step int, res *search.Result, done bool) search.Snapshot {
	snap := search.Snapshot{Step: step, Done: done}
	if res == nil {
		return snap
	}
	snap.Explored, snap.Path = res.Explored, res.Path
	snap.Found = done && res.Found()
	if n := len(res.Explored); n > 0 {
		snap.Current = res.Explored[n-1]
	}

	return snap
}
