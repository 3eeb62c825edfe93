// File: grid/parse_test.go
package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Markers(t *testing.T) {
	l, err := Parse([]string{
		"S . .",
		"# . #",
		"G . .",
	})
	require.NoError(t, err)
	assert.True(t, l.HasStart)
	assert.True(t, l.HasGoal)
	assert.Equal(t, At(0, 0), l.Start)
	assert.Equal(t, At(2, 0), l.Goal)
	assert.Equal(t, [][]int{{0, 0, 0}, {1, 0, 1}, {0, 0, 0}}, l.Grid.Values())
	assert.Equal(t, "...\n#.#\n...", l.Grid.String())
}

func TestParse_Digits(t *testing.T) {
	l, err := Parse([]string{"010", "000"})
	require.NoError(t, err)
	assert.False(t, l.HasStart)
	assert.Equal(t, 5, l.Grid.FreeCount())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]string{"..x"})
	assert.True(t, errors.Is(err, ErrBadSymbol), "got %v", err)

	_, err = Parse([]string{"S.S"})
	assert.True(t, errors.Is(err, ErrDuplicateMarker), "got %v", err)

	_, err = Parse([]string{"...", ".."})
	assert.True(t, errors.Is(err, ErrNonRectangular), "got %v", err)
}
