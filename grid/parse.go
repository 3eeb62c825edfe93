package grid

import (
	"fmt"
	"strings"
)

// Text symbols understood by Parse and produced by String.
const (
	SymbolFree  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
)

// Layout is a parsed text grid together with any start/goal markers.
// HasStart and HasGoal report whether the markers were present.
type Layout struct {
	Grid     *Grid
	Start    Cell
	Goal     Cell
	HasStart bool
	HasGoal  bool
}

// Parse reads one row per string. '.' and '0' are free, '#' and '1' are walls,
// 'S' and 'G' mark a free start and goal cell. Spaces are ignored so rows may
// be written "0 1 0".
func Parse(rows []string) (*Layout, error) {
	values := make([][]int, 0, len(rows))
	out := &Layout{}
	for y, line := range rows {
		row := make([]int, 0, len(line))
		for _, r := range line {
			x := len(row)
			switch r {
			case ' ', '\t':
				continue
			case SymbolFree, '0':
				row = append(row, 0)
			case SymbolWall, '1':
				row = append(row, 1)
			case SymbolStart:
				if out.HasStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, r, y, x)
				}
				out.Start, out.HasStart = At(y, x), true
				row = append(row, 0)
			case SymbolGoal:
				if out.HasGoal {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, r, y, x)
				}
				out.Goal, out.HasGoal = At(y, x), true
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, r, y, x)
			}
		}
		values = append(values, row)
	}
	g, err := New(values)
	if err != nil {
		return nil, err
	}
	out.Grid = g

	return out, nil
}

// String renders the grid with '.' for free and '#' for walls, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v == Free {
				sb.WriteByte(SymbolFree)
			} else {
				sb.WriteByte(SymbolWall)
			}
		}
	}

	return sb.String()
}
