// File: grid/grid_test.go
package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Dimensions(t *testing.T) {
	g, err := New([][]int{
		{0, 0, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, 4, g.FreeCount())
}

func TestNew_Empty(t *testing.T) {
	g, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Height())
	assert.Equal(t, 0, g.Width(), "a zero-row grid has width 0")
	assert.False(t, g.IsTraversable(At(0, 0)))
}

func TestNew_NonRectangular(t *testing.T) {
	_, err := New([][]int{{0, 0}, {0}})
	assert.True(t, errors.Is(err, ErrNonRectangular), "got %v", err)
}

func TestNew_DeepCopy(t *testing.T) {
	vals := [][]int{{0, 0}}
	g := MustNew(vals)
	vals[0][1] = 1
	assert.True(t, g.IsTraversable(At(0, 1)), "mutating the input must not reach the grid")
}

// TestIsTraversable checks every branch: in-bounds free, wall, and each
// out-of-bounds side.
func TestIsTraversable(t *testing.T) {
	g := MustNew([][]int{
		{0, 1},
		{0, 0},
	})
	cases := []struct {
		name string
		c    Cell
		want bool
	}{
		{"free", At(0, 0), true},
		{"wall", At(0, 1), false},
		{"row below", At(2, 0), false},
		{"row above", At(-1, 0), false},
		{"col right", At(0, 2), false},
		{"col left", At(1, -1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsTraversable(tc.c))
		})
	}

	var nilGrid *Grid
	assert.False(t, nilGrid.IsTraversable(At(0, 0)))
}

func TestAt_OutOfBoundsIsWall(t *testing.T) {
	g := MustNew([][]int{{0}})
	assert.Equal(t, Free, g.At(At(0, 0)))
	assert.Equal(t, Wall, g.At(At(5, 5)))
	assert.Equal(t, "wall", Wall.String())
	assert.Equal(t, "free", Free.String())
}

// TestNeighbors_CanonicalOrder verifies right, down, left, up.
func TestNeighbors_CanonicalOrder(t *testing.T) {
	g := MustNew([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	got := g.Neighbors(At(1, 1))
	want := []Cell{At(1, 2), At(2, 1), At(1, 0), At(0, 1)}
	assert.Equal(t, want, got)

	// corner drops out-of-bounds moves, keeps order
	assert.Equal(t, []Cell{At(0, 1), At(1, 0)}, g.Neighbors(At(0, 0)))
}

func TestWithCell(t *testing.T) {
	g := MustNew([][]int{{0, 0}})
	h := g.WithCell(At(0, 1), Wall)
	assert.True(t, g.IsTraversable(At(0, 1)), "receiver must not change")
	assert.False(t, h.IsTraversable(At(0, 1)))
	assert.Equal(t, [][]int{{0, 1}}, h.Values())
}

func TestCell_Helpers(t *testing.T) {
	assert.Equal(t, At(3, 5), At(2, 3).Add(Cell{Row: 1, Col: 2}))
	assert.Equal(t, "(2,3)", At(2, 3).String())

	m := map[Cell]int{At(1, 2): 7}
	assert.Equal(t, 7, m[Cell{Row: 1, Col: 2}], "structurally equal cells must share a key")
}
