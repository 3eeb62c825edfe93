package astar

import (
	"container/heap"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *grid.Grid              // read-only occupancy map
	goal   grid.Cell               // target cell
	pq     nodePQ                  // frontier, min-heap on (f, seq)
	open   map[grid.Cell]*nodeItem // frontier membership and decrease-key handle
	closed map[grid.Cell]bool      // cells already expanded
	gScore map[grid.Cell]int       // best-known steps from start
	tree   *search.Tree            // parent links for reconstruction
	step   *search.Stepper         // explored list, reporting, pacing
	seq    uint64                  // next insertion sequence
}

// AStar computes a shortest path from start to goal on g.
//
// Per iteration: extract the minimum (f, seq) entry, append it to Explored,
// report, pace, then stop if it is the goal; otherwise close it and relax its
// neighbors in canonical order.
//
// Returns:
//
//   - Found:   Path from start to goal inclusive, Explored in expansion order.
//   - Exhausted frontier: empty Path (not an error).
//   - Cancelled: partial Result and ctx.Err().
//   - Observer failure: nil Result and a wrapped search.ErrObserver.
func AStar(g *grid.Grid, start, goal grid.Cell, opts ...search.Option) (*search.Result, error) {
	// 1) Build and validate options
	o, err := search.Build(opts...)
	if err != nil {
		return nil, err
	}

	// 2) Non-traversable start: nothing to explore
	if !g.IsTraversable(start) {
		return search.Empty(), nil
	}

	// 3) Prepare data structures
	n := g.FreeCount()
	tree := search.NewTree(n)
	r := &runner{
		g:      g,
		goal:   goal,
		pq:     make(nodePQ, 0, n),
		open:   make(map[grid.Cell]*nodeItem, n),
		closed: make(map[grid.Cell]bool, n),
		gScore: make(map[grid.Cell]int, n),
		tree:   tree,
		step:   search.NewStepper(o, tree, n),
	}

	// 4) Seed the frontier
	r.init(start)

	return r.process()
}

// init sets g(start)=0 and pushes start with priority h(start).
func (r *runner) init(start grid.Cell) {
	heap.Init(&r.pq)
	r.tree.SetRoot(start)
	r.gScore[start] = 0
	r.push(start, Manhattan(start, r.goal))
}

// process is the main loop. It ends on the goal, on an empty frontier, or
// when the Stepper reports a stop.
func (r *runner) process() (*search.Result, error) {
	for r.pq.Len() > 0 {
		if err := r.step.Checkpoint(); err != nil {
			return r.step.Finish(err)
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		cur := item.cell
		delete(r.open, cur)

		if err := r.step.Expand(cur); err != nil {
			return r.step.Finish(err)
		}
		if cur == r.goal {
			return r.step.Found(cur), nil
		}

		r.closed[cur] = true
		if err := r.relax(cur); err != nil {
			return r.step.Finish(err)
		}
	}

	return r.step.NotFound(), nil
}

// relax examines each neighbor of u and records a better route through u
// where one exists.
func (r *runner) relax(u grid.Cell) error {
	for _, d := range grid.Directions {
		v := u.Add(d)
		if !r.g.IsTraversable(v) || r.closed[v] {
			continue
		}

		tentative := r.gScore[u] + 1
		if best, seen := r.gScore[v]; seen && tentative >= best {
			continue
		}

		if err := r.tree.Link(v, u); err != nil {
			return err
		}
		r.gScore[v] = tentative
		f := tentative + Manhattan(v, r.goal)

		if item, inOpen := r.open[v]; inOpen {
			item.f = f
			heap.Fix(&r.pq, item.index)
			continue
		}
		r.push(v, f)
	}

	return nil
}

// push inserts a new frontier entry with the next insertion sequence.
func (r *runner) push(c grid.Cell, f int) {
	item := &nodeItem{cell: c, f: f, seq: r.seq}
	r.seq++
	heap.Push(&r.pq, item)
	r.open[c] = item
}
