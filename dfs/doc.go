// Package dfs implements an instrumented depth-first search over a grid.Grid.
//
// DFS finds *a* path whenever one exists; it does not promise the shortest.
//
// Key features:
//   - Explicit LIFO stack, no recursion: deep mazes cannot overflow the goroutine stack.
//   - Neighbors are pushed in reverse canonical order (up, left, down, right),
//     so the canonical-first neighbor (right) is popped first, matching the
//     expansion order of a recursive DFS.
//   - Visited-on-push: a cell gets its parent when first pushed and is never
//     pushed again, so Explored holds no duplicates.
//   - Same report → pace → goal-test contract as bfs and astar.
//
// Complexity:
//
//   - Time:   O(W·H).
//   - Memory: O(W·H) for the stack and the parent tree.
//
// Errors:
//
//   - search.ErrOptionViolation for bad options.
//   - search.ErrObserver (wrapping the cause) when the observer fails.
//   - context.Canceled / context.DeadlineExceeded with a partial Result.
package dfs
