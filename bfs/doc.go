// Package bfs provides an instrumented breadth-first search over a grid.Grid,
// returning a shortest path (by edge count) and the exact expansion order.
//
// What
//
//   - Explore cells in non-decreasing distance from the start.
//   - A cell is marked discovered the moment it is enqueued, never later, so
//     no cell is queued twice.
//   - Neighbors are enqueued in canonical order: right, down, left, up.
//   - After every dequeue the search appends the cell to Explored, reports
//     the snapshot to the observer, applies the pacing delay, and only then
//     tests for the goal.
//
// Why
//
//   - Shortest paths on unweighted 4-connected grids in O(W·H).
//   - The layered frontier makes a clear step-by-step animation.
//
// Determinism
//
//	The FIFO queue and the fixed neighbor order make the expansion sequence
//	fully reproducible for a given grid, start and goal.
//
// Errors
//
//   - search.ErrOptionViolation for bad options.
//   - search.ErrObserver (wrapping the cause) when the observer fails.
//   - context.Canceled / context.DeadlineExceeded with a partial Result.
//
// A non-traversable start yields an empty Result and no observer calls.
// An unreachable or non-traversable goal yields an empty Path after the
// whole component of the start has been explored.
package bfs
