// Package mazepath finds a path between two cells of a binary grid (free /
// wall) and exposes every intermediate state of the search, so a caller can
// animate the exploration step by step.
//
// What is inside
//
//	grid/     Cell, immutable Grid, text parsing, connected components
//	search/   parent Tree, Result/Snapshot, Observer, pacing & cancellation
//	astar/    cost-guided search (Manhattan heuristic, insertion-order ties)
//	bfs/      breadth-first search (shortest by edge count)
//	dfs/      depth-first search (reachability only)
//	scenario/ YAML scenario files and the built-in sample maze
//	render/   terminal frames for snapshots
//	server/   HTTP API with server-sent step streams
//
// Three ways to drive a search
//
//   - Solve: blocking call; pass search.WithObserver for per-step callbacks
//     and search.WithDelay for pacing.
//   - Steps: a lazy, restartable iter.Seq2 of Snapshots that the caller pulls
//     at its own pace; breaking out of the loop cancels the search.
//   - Run: Solve plus wall-clock timing and summary Stats.
//
// Quick ASCII example:
//
//	S . .
//	# . #       Solve(ctx, g, AStar, (0,0), (2,0))
//	G . .       → (0,0) (0,1) (1,1) (2,1) (2,0)
//
// No path is a normal outcome: Result.Path is empty and Result.Explored
// covers the start's connected component.
package mazepath
