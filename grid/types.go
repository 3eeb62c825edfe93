// Package grid defines core types, occupancy states, and sentinel errors
// for the grid package of github.com/katalvlaran/mazepath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates an unknown cell symbol in the text form.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
	// ErrDuplicateMarker indicates more than one start or goal marker.
	ErrDuplicateMarker = errors.New("grid: duplicate start or goal marker")
)

// Occupancy is the state of a single cell.
type Occupancy int

const (
	// Free cells can be traversed.
	Free Occupancy = iota
	// Wall cells block movement.
	Wall
)

// String returns "free" or "wall".
func (o Occupancy) String() string {
	if o == Free {
		return "free"
	}

	return "wall"
}

// Cell is a (Row, Col) coordinate. Equality is structural, so Cell is used
// as a map key without any string encoding.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns c shifted by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Directions lists the orthogonal unit moves in canonical order:
// right, down, left, up. Every strategy iterates neighbors in this order
// (dfs iterates it in reverse before pushing).
var Directions = [4]Cell{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// Grid is an immutable rectangular occupancy map.
// Height and Width are fixed at construction; a zero-row grid has Width 0.
type Grid struct {
	height, width int
	cells         [][]Occupancy
}
