package grid

// Component returns every free cell 4-connected to start, in breadth-first
// discovery order. A non-traversable start yields nil.
//
// The search strategies must explore exactly this set when the goal is
// unreachable, so it doubles as a test oracle.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Component(start Cell) []Cell {
	if !g.IsTraversable(start) {
		return nil
	}
	seen := make([]bool, g.Size())
	seen[g.index(start)] = true
	queue := []Cell{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			i := g.index(n)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// Components finds all contiguous free regions of the grid.
// Regions are ordered by their first cell in row-major order.
// Time: O(W·H·4), Memory: O(W·H).
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{Row: y, Col: x}
			if g.cells[y][x] != Free || seen[g.index(c)] {
				continue
			}
			comp := g.Component(c)
			for _, m := range comp {
				seen[g.index(m)] = true
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// ShortestDistance returns the edge count of a shortest 4-directional path
// between a and b, or -1 if none exists. It is a plain reference BFS with no
// instrumentation.
func (g *Grid) ShortestDistance(a, b Cell) int {
	if !g.IsTraversable(a) || !g.IsTraversable(b) {
		return -1
	}
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(a)] = 0
	queue := []Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return dist[g.index(u)]
		}
		for _, n := range g.Neighbors(u) {
			if i := g.index(n); dist[i] < 0 {
				dist[i] = dist[g.index(u)] + 1
				queue = append(queue, n)
			}
		}
	}

	return -1
}

// index maps an in-bounds cell to its row-major slot.
func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}
