package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// link is the tagged parent entry of a discovered cell: either the root
// (no predecessor) or a pointer to the cell it was discovered from.
type link struct {
	from grid.Cell
	root bool
}

// Tree is the visited/parent map of a single search. Every discovered cell
// has exactly one entry. A cell can only be linked to a parent that is
// already discovered, so following parents always ends at a root.
type Tree struct {
	links map[grid.Cell]link
}

// NewTree returns an empty Tree sized for about capacity cells.
func NewTree(capacity int) *Tree {
	return &Tree{links: make(map[grid.Cell]link, capacity)}
}

// SetRoot marks c as discovered with no predecessor.
func (t *Tree) SetRoot(c grid.Cell) {
	t.links[c] = link{root: true}
}

// Link records parent as the predecessor of child, overwriting any earlier
// parent of child. Returns ErrUndiscoveredParent, leaving the tree
// unchanged, if parent has not been discovered.
func (t *Tree) Link(child, parent grid.Cell) error {
	if _, ok := t.links[parent]; !ok {
		return fmt.Errorf("%w: %s for %s", ErrUndiscoveredParent, parent, child)
	}
	t.links[child] = link{from: parent}

	return nil
}

// Discovered reports whether c has an entry (root or parent).
func (t *Tree) Discovered(c grid.Cell) bool {
	_, ok := t.links[c]
	return ok
}

// Parent returns the predecessor of c. ok is false for roots and for
// undiscovered cells.
func (t *Tree) Parent(c grid.Cell) (p grid.Cell, ok bool) {
	l, found := t.links[c]
	if !found || l.root {
		return grid.Cell{}, false
	}

	return l.from, true
}

// Len returns the number of discovered cells.
func (t *Tree) Len() int { return len(t.links) }

// PathTo rebuilds the cell sequence from the root ancestor of c to c,
// inclusive. A root or undiscovered c yields the single-element path [c].
// The walk is bounded by Len, so a corrupted map cannot loop forever.
// Complexity: O(path length).
func (t *Tree) PathTo(c grid.Cell) []grid.Cell {
	path := []grid.Cell{c}
	cur := c
	for steps := 0; steps < len(t.links); steps++ {
		prev, ok := t.Parent(cur)
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get root → c
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
