// Package astar_test provides examples demonstrating the A* strategy.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/grid"
)

// ExampleAStar solves the corridor maze. The heuristic keeps the search on
// the optimal route, so Explored equals Path here.
func ExampleAStar() {
	g := grid.MustNew([][]int{
		{0, 0, 0},
		{1, 0, 1},
		{0, 0, 0},
	})
	res, err := astar.AStar(g, grid.At(0, 0), grid.At(2, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("explored:", len(res.Explored))
	// Output:
	// path: [(0,0) (0,1) (1,1) (2,1) (2,0)]
	// explored: 5
}
