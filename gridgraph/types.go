// Package gridgraph defines the cell, position and grid types shared by the
// planner, the simulation loop and the renderers.
package gridgraph

import "fmt"

// Cell classifies a single grid cell.
type Cell uint8

const (
	// Free cells can be entered by the agent.
	Free Cell = iota
	// Obstacle cells block movement.
	Obstacle
)

// String returns "free" or "obstacle".
func (c Cell) String() string {
	if c == Obstacle {
		return "obstacle"
	}
	return "free"
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions lexicographically: row first, then column.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Rand is the source of uniform randomness used for obstacle placement and
// relocation. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n). n is always > 0.
	Intn(n int) int
}

// Grid is a rows×cols obstacle map. Its dimensions never change after construction;
// cells are mutated in place by Set and Relocate.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major: index = row*cols + col
}

// neighborOffsets is the fixed expansion order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
