// Package gridgraph provides the mutable obstacle grid a planner searches over.
//
// Cells are addressed by Position{Row, Col}. The grid itself never checks bounds on
// access; callers generating neighbours must call InBounds first, exactly as the
// planner and the BFS reference do.
package gridgraph

import "fmt"

// New returns a rows×cols grid with every cell Free.
// Returns ErrEmptyGrid if rows < 1 or cols < 1.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// FromRows builds a grid from a non-empty rectangular 2D slice, where 0 marks a Free
// cell and any other value marks an Obstacle. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if values[r][c] != 0 {
				g.cells[r*cols+c] = Obstacle
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[g.Index(p)]
}

// IsObstacle reports whether the cell at p is an Obstacle. p must be in bounds.
func (g *Grid) IsObstacle(p Position) bool {
	return g.cells[g.Index(p)] == Obstacle
}

// Set overwrites the cell at p. p must be in bounds.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[g.Index(p)] = c
}

// Index maps p to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionOf converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) PositionOf(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// ObstacleCount returns the number of Obstacle cells.
// Complexity: O(R×C).
func (g *Grid) ObstacleCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Obstacle {
			n++
		}
	}
	return n
}

// Obstacles returns the positions of all Obstacle cells in row-major order.
func (g *Grid) Obstacles() []Position {
	return g.collect(Obstacle)
}

// FreeCells returns the positions of all Free cells in row-major order.
func (g *Grid) FreeCells() []Position {
	return g.collect(Free)
}

func (g *Grid) collect(want Cell) []Position {
	var out []Position
	for i, c := range g.cells {
		if c == want {
			out = append(out, g.PositionOf(i))
		}
	}
	return out
}

// Clone returns an independent deep copy, suitable as a snapshot for renderers or
// for planning while the original keeps mutating.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether g and other have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Offsets returns the neighbour offsets in expansion order: up, down, left, right,
// as (dRow, dCol) pairs.
func Offsets() [4][2]int {
	return neighborOffsets
}
