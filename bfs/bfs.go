package bfs

import (
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	goal  grid.Cell
	queue []grid.Cell
	tree  *search.Tree
	step  *search.Stepper
}

// BFS runs breadth-first search on g from start towards goal.
// Returns ErrOptionViolation for invalid options, the partial Result plus
// ctx.Err() on cancellation, or a wrapped ErrObserver on observer failure.
//
// Complexity: O(W·H) time and memory.
func BFS(g *grid.Grid, start, goal grid.Cell, opts ...search.Option) (*search.Result, error) {
	o, err := search.Build(opts...)
	if err != nil {
		return nil, err
	}
	if !g.IsTraversable(start) {
		return search.Empty(), nil
	}

	n := g.FreeCount()
	tree := search.NewTree(n)
	w := &walker{
		grid:  g,
		goal:  goal,
		queue: make([]grid.Cell, 0, n),
		tree:  tree,
		step:  search.NewStepper(o, tree, n),
	}

	// Seed queue with start (root, no parent)
	w.tree.SetRoot(start)
	w.queue = append(w.queue, start)

	return w.loop()
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the run is stopped.
func (w *walker) loop() (*search.Result, error) {
	for len(w.queue) > 0 {
		if err := w.step.Checkpoint(); err != nil {
			return w.step.Finish(err)
		}

		cur := w.dequeue()
		if err := w.step.Expand(cur); err != nil {
			return w.step.Finish(err)
		}
		if cur == w.goal {
			return w.step.Found(cur), nil
		}
		if err := w.enqueueNeighbors(cur); err != nil {
			return w.step.Finish(err)
		}
	}

	return w.step.NotFound(), nil
}

// dequeue pops the first cell.
func (w *walker) dequeue() grid.Cell {
	c := w.queue[0]
	w.queue = w.queue[1:]

	return c
}

// enqueueNeighbors links and enqueues every undiscovered traversable
// neighbor of cur, in canonical order.
func (w *walker) enqueueNeighbors(cur grid.Cell) error {
	for _, d := range grid.Directions {
		nbr := cur.Add(d)
		if !w.grid.IsTraversable(nbr) || w.tree.Discovered(nbr) {
			continue
		}
		if err := w.tree.Link(nbr, cur); err != nil {
			return err
		}
		w.queue = append(w.queue, nbr)
	}

	return nil
}
