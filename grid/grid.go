package grid

import "fmt"

// New constructs a Grid from a rectangular 2D slice where 0 marks a free
// cell and any other value a wall. It deep-copies the input, so later edits
// to values never reach the Grid.
// An empty input yields a 0×0 grid in which nothing is traversable.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	h := len(values)
	w := 0
	if h > 0 {
		w = len(values[0])
	}
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]Occupancy, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]Occupancy, w)
		for x, v := range values[y] {
			if v != 0 {
				cells[y][x] = Wall
			}
		}
	}

	return &Grid{height: h, width: w, cells: cells}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixed layouts.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}

	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Size returns Height×Width.
func (g *Grid) Size() int { return g.height * g.width }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the occupancy of c. Out-of-bounds cells report Wall.
func (g *Grid) At(c Cell) Occupancy {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[c.Row][c.Col]
}

// IsTraversable reports whether c is in bounds and free. It is total:
// a nil Grid or any coordinate yields an answer, never a panic.
// Complexity: O(1).
func (g *Grid) IsTraversable(c Cell) bool {
	if g == nil {
		return false
	}

	return g.InBounds(c) && g.cells[c.Row][c.Col] == Free
}

// Neighbors returns the traversable orthogonal neighbors of c in canonical
// order (right, down, left, up).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d); g.IsTraversable(n) {
			out = append(out, n)
		}
	}

	return out
}

// FreeCount returns the number of free cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == Free {
				n++
			}
		}
	}

	return n
}

// Values returns a fresh [][]int copy of the layout (0 free, 1 wall).
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for y, row := range g.cells {
		out[y] = make([]int, g.width)
		for x, v := range row {
			if v == Wall {
				out[y][x] = 1
			}
		}
	}

	return out
}

// WithCell returns a new Grid equal to g except that c holds state.
// The receiver is left untouched; an out-of-bounds c returns a plain copy.
func (g *Grid) WithCell(c Cell, state Occupancy) *Grid {
	vals := g.Values()
	if g.InBounds(c) {
		vals[c.Row][c.Col] = int(state)
	}

	return MustNew(vals)
}
