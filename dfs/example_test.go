package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/grid"
)

// ExampleDFS walks an open 2×3 grid. DFS reaches the goal but, unlike BFS,
// its path is whatever the depth-first tree happens to contain.
func ExampleDFS() {
	g := grid.MustNew([][]int{
		{0, 0, 0},
		{0, 0, 0},
	})
	res, err := dfs.DFS(g, grid.At(0, 0), grid.At(1, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("explored:", res.Explored)
	fmt.Println("path:", res.Path)
	// Output:
	// explored: [(0,0) (0,1) (0,2) (1,2) (1,1) (1,0)]
	// path: [(0,0) (1,0)]
}
