// Package astar implements cost-guided best-first search (A*) over a grid.Grid
// with unit step cost and the Manhattan-distance heuristic.
//
// A* extracts the frontier entry with the smallest priority f = g + h, where
// g is the best-known step count from the start and h the Manhattan distance
// to the goal. Manhattan distance is admissible and consistent for
// 4-directional unit moves, so the returned path is always a shortest one and
// an expanded (closed) cell is never reopened.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W·H; each cell enters the heap at most once
//     and improvements use decrease-key (heap.Fix) rather than duplicates.
//   - Space: O(V) for the heap, the open index, g-scores, and the parent tree.
//
// Tie-break:
//
//	Entries with equal f are extracted in insertion order (first pushed,
//	first popped). A decrease-key keeps the entry's original position in that
//	order. Combined with the canonical neighbor order (right, down, left, up)
//	this makes Explored fully deterministic.
//
// Errors (from package search):
//
//   - ErrOptionViolation for bad options.
//   - ErrObserver (wrapping the cause) when the observer fails.
//   - context.Canceled / context.DeadlineExceeded with a partial Result.
//
// Example usage:
//
//	res, err := astar.AStar(g, grid.At(0, 0), grid.At(8, 9),
//	    search.WithDelay(50*time.Millisecond),
//	    search.WithObserver(draw),
//	)
package astar
