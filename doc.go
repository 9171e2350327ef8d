// Package replan simulates a mobile agent that repeatedly replans a shortest path
// across a 2D grid whose obstacles move between queries.
//
// Packages:
//
//	gridgraph/  Grid, Cell, Position, random obstacle placement and relocation
//	astar/      A* over 4-connected unit-cost cells with the Manhattan heuristic
//	bfs/        breadth-first search over a Grid; reference shortest paths
//	simulation/ the step loop: plan, report, render, relocate, pace
//	render/     plain and lipgloss-coloured text boards
//	record/     parquet run recording and replay
//	tui/        bubbletea front end
//	cmd/replan  command-line entry point
//
// Quick ASCII example (S start, G goal, # obstacle, * path):
//
//	S#.
//	*#.
//	**G
//
// Every random choice goes through an injectable seeded source, so a run is fully
// reproducible from its seed.
//
//	go run github.com/katalvlaran/replan/cmd/replan -rows 12 -cols 20 -steps 8 -color
package replan
