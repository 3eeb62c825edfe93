package mazepath_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// gridFromMask builds an h×w grid whose walls are the set bits of mask.
func gridFromMask(h, w int, mask uint) *grid.Grid {
	vals := make([][]int, h)
	for y := range vals {
		vals[y] = make([]int, w)
		for x := range vals[y] {
			if mask&(1<<uint(y*w+x)) != 0 {
				vals[y][x] = 1
			}
		}
	}

	return grid.MustNew(vals)
}

// checkInvariants asserts the properties every strategy shares and returns
// the path length in edges (-1 when not found).
func checkInvariants(t *testing.T, g *grid.Grid, alg mazepath.Algorithm, start, goal grid.Cell, res *search.Result) int {
	t.Helper()
	seen := make(map[grid.Cell]bool, len(res.Explored))
	for _, c := range res.Explored {
		require.Falsef(t, seen[c], "%s: duplicate %v in explored", alg, c)
		require.Truef(t, g.IsTraversable(c), "%s: explored non-traversable %v", alg, c)
		seen[c] = true
	}

	if start == goal {
		require.Equal(t, []grid.Cell{start}, res.Path, alg.String())
		require.Equal(t, []grid.Cell{start}, res.Explored, alg.String())
		return 0
	}

	if len(res.Path) == 0 {
		comp := g.Component(start)
		require.Lenf(t, res.Explored, len(comp), "%s: unreachable must explore the start component", alg)
		for _, c := range comp {
			require.Truef(t, seen[c], "%s: component cell %v not explored", alg, c)
		}
		return -1
	}

	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
	require.Equal(t, goal, res.Explored[len(res.Explored)-1], "goal is the last expansion")
	for i := 1; i < len(res.Path); i++ {
		p, c := res.Path[i-1], res.Path[i]
		dr, dc := c.Row-p.Row, c.Col-p.Col
		require.Equalf(t, 1, dr*dr+dc*dc, "%s: %v→%v not 4-adjacent", alg, p, c)
		require.True(t, g.IsTraversable(c))
	}

	return len(res.Path) - 1
}

// TestProperties_Exhaustive3x3 runs all strategies over every 3×3 layout and
// every pair of free endpoints, checking optimality against a reference BFS.
func TestProperties_Exhaustive3x3(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive sweep")
	}
	ctx := context.Background()
	const h, w = 3, 3
	for mask := uint(0); mask < 1<<(h*w); mask++ {
		g := gridFromMask(h, w, mask)
		for s := 0; s < h*w; s++ {
			start := grid.At(s/w, s%w)
			if !g.IsTraversable(start) {
				continue
			}
			for e := 0; e < h*w; e++ {
				goal := grid.At(e/w, e%w)
				if !g.IsTraversable(goal) {
					continue
				}
				want := g.ShortestDistance(start, goal)
				lengths := map[mazepath.Algorithm]int{}
				for _, alg := range mazepath.Algorithms {
					res, err := mazepath.Solve(ctx, g, alg, start, goal)
					require.NoError(t, err)
					lengths[alg] = checkInvariants(t, g, alg, start, goal, res)
				}
				require.Equalf(t, want, lengths[mazepath.BFS], "bfs not shortest on mask %b %v→%v", mask, start, goal)
				require.Equalf(t, want, lengths[mazepath.AStar], "astar not optimal on mask %b %v→%v", mask, start, goal)
				if want >= 0 {
					require.GreaterOrEqual(t, lengths[mazepath.DFS], want)
				} else {
					require.Equal(t, -1, lengths[mazepath.DFS])
				}
			}
		}
	}
}

// TestProperties_RandomLarger samples bigger grids with a fixed seed.
func TestProperties_RandomLarger(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	ctx := context.Background()
	for round := 0; round < 200; round++ {
		hgt, wid := 2+rnd.Intn(9), 2+rnd.Intn(9)
		vals := make([][]int, hgt)
		for y := range vals {
			vals[y] = make([]int, wid)
			for x := range vals[y] {
				if rnd.Intn(3) == 0 {
					vals[y][x] = 1
				}
			}
		}
		g := grid.MustNew(vals)
		start := grid.At(rnd.Intn(hgt), rnd.Intn(wid))
		goal := grid.At(rnd.Intn(hgt), rnd.Intn(wid))
		if !g.IsTraversable(start) || !g.IsTraversable(goal) {
			continue
		}
		want := g.ShortestDistance(start, goal)
		for _, alg := range mazepath.Algorithms {
			first, err := mazepath.Solve(ctx, g, alg, start, goal)
			require.NoError(t, err)
			got := checkInvariants(t, g, alg, start, goal, first)
			if alg != mazepath.DFS {
				require.Equal(t, want, got, alg.String())
			}

			again, err := mazepath.Solve(ctx, g, alg, start, goal)
			require.NoError(t, err)
			require.Equal(t, first, again, "%s must be deterministic", alg)
		}
	}
}
