package dfs

import (
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid  *grid.Grid      // read-only occupancy map
	goal  grid.Cell       // target cell
	stack []grid.Cell     // LIFO frontier
	tree  *search.Tree    // visited set and parent links
	step  *search.Stepper // explored list, reporting, pacing
}

// DFS performs depth-first search on g from start towards goal.
// Returns the Result, or an error if aborted by options, context or observer.
func DFS(g *grid.Grid, start, goal grid.Cell, opts ...search.Option) (*search.Result, error) {
	// 1. Apply options
	o, err := search.Build(opts...)
	if err != nil {
		return nil, err
	}

	// 2. Invalid start: deterministic no-path
	if !g.IsTraversable(start) {
		return search.Empty(), nil
	}

	// 3. Initialize walker with capacity hint
	n := g.FreeCount()
	tree := search.NewTree(n)
	w := &dfsWalker{
		grid:  g,
		goal:  goal,
		stack: make([]grid.Cell, 0, n),
		tree:  tree,
		step:  search.NewStepper(o, tree, n),
	}
	w.tree.SetRoot(start)
	w.stack = append(w.stack, start)

	// 4. Traverse
	return w.traverse()
}

// traverse pops cells until the goal is reached, the stack empties, or the
// run is stopped.
func (w *dfsWalker) traverse() (*search.Result, error) {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		if err := w.step.Checkpoint(); err != nil {
			return w.step.Finish(err)
		}

		// 2. Pop and report
		top := len(w.stack) - 1
		cur := w.stack[top]
		w.stack = w.stack[:top]
		if err := w.step.Expand(cur); err != nil {
			return w.step.Finish(err)
		}

		// 3. Goal test
		if cur == w.goal {
			return w.step.Found(cur), nil
		}

		// 4. Push undiscovered neighbors, last canonical direction first
		for i := len(grid.Directions) - 1; i >= 0; i-- {
			nbr := cur.Add(grid.Directions[i])
			if !w.grid.IsTraversable(nbr) || w.tree.Discovered(nbr) {
				continue
			}
			if err := w.tree.Link(nbr, cur); err != nil {
				return w.step.Finish(err)
			}
			w.stack = append(w.stack, nbr)
		}
	}

	return w.step.NotFound(), nil
}
