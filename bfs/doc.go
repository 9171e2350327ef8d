// Package bfs provides breadth-first search over a gridgraph.Grid, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell, moving
//     orthogonally and never entering Obstacle cells.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth limit.
//
// Why
//
//   - Ground truth for the A* planner: on a unit-cost grid, BFS depth is the exact
//     shortest-path length, so planner paths can be checked for optimality.
//   - Reachability queries that need every distance, not just one goal.
//
// Determinism
//
//	Neighbours are enqueued in the fixed order up, down, left, right, so the visit
//	sequence is fully reproducible.
//
// The start cell is expanded even if it is an Obstacle, matching the planner.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(10))
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation or a hook error
//	}
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if start is outside the grid.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreached          from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
