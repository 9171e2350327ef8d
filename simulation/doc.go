// Package simulation drives repeated A* replanning over a grid whose obstacles
// move between queries.
//
// One run is a fixed number of steps. Each step:
//
//  1. plans a path from start to goal on the current grid (astar.FindPath);
//  2. reports success with the path length, or failure, to the Reporter;
//  3. hands a Snapshot (grid copy, path, endpoints) to every Renderer;
//  4. relocates MoveCount obstacles (gridgraph.Grid.Relocate).
//
// Run additionally calls the Pacer between steps, never after the last one.
//
// The loop is strictly sequential: the grid is only mutated after planning and
// rendering of the step have finished, and renderers receive a private copy.
//
// Start and goal are not excluded from obstacle placement or relocation, so a run
// can contain steps where the start or goal itself is blocked. A blocked goal is
// reported as unreachable; a blocked start is searched from as usual.
//
// Errors (sentinel, wrapped with the offending value):
//
//	ErrBadDimensions       rows or cols < 1
//	ErrBadRatio            obstacle ratio outside [0, 1)
//	ErrBadSteps            steps < 1
//	ErrBadMoveCount        move count < 0
//	ErrEndpointOutOfBounds start or goal outside the grid
//	ErrFinished            Step called after the last step
package simulation
