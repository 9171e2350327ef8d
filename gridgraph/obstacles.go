package gridgraph

import (
	"fmt"
	"math"
)

// Generate creates a rows×cols grid and marks floor(rows·cols·obstacleRatio) distinct
// cells as Obstacle, chosen uniformly without replacement over all cells.
//
// No cell is excluded: the start or goal of a later query may be blocked.
//
// Returns ErrEmptyGrid for rows < 1 or cols < 1, ErrBadRatio when obstacleRatio is
// outside [0, 1) or NaN, ErrNilRand when rnd is nil.
//
// Complexity: O(R×C) time and memory.
func Generate(rows, cols int, obstacleRatio float64, rnd Rand) (*Grid, error) {
	if !(obstacleRatio >= 0 && obstacleRatio < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrBadRatio, obstacleRatio)
	}
	if rnd == nil {
		return nil, ErrNilRand
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	total := rows * cols
	count := int(math.Floor(float64(total) * obstacleRatio))
	for _, i := range sampleDistinct(rnd, total, count) {
		g.cells[i] = Obstacle
	}

	return g, nil
}

// Relocate performs up to moveCount obstacle moves in place and returns how many
// were performed.
//
// Behavior:
//  1. Snapshot the obstacle cells and the free cells as two candidate sets.
//  2. For each move, draw one obstacle candidate and one free candidate uniformly,
//     removing both from their sets: clear the obstacle, set the free cell.
//  3. Stop early, without error, once either set is empty; remaining moves are skipped.
//
// A cell takes part in at most one move per call, so an obstacle placed by this call
// is never moved again by it and the obstacle count is unchanged.
// moveCount <= 0 or a nil rnd performs nothing.
//
// Complexity: O(R×C + moveCount) time, O(R×C) memory.
func (g *Grid) Relocate(moveCount int, rnd Rand) int {
	if moveCount <= 0 || rnd == nil {
		return 0
	}

	obstacles := make([]int, 0, len(g.cells))
	free := make([]int, 0, len(g.cells))
	for i, c := range g.cells {
		if c == Obstacle {
			obstacles = append(obstacles, i)
		} else {
			free = append(free, i)
		}
	}

	moved := 0
	var from, to int
	for moved < moveCount {
		if len(obstacles) == 0 || len(free) == 0 {
			break
		}
		from, obstacles = takeRandom(rnd, obstacles)
		to, free = takeRandom(rnd, free)
		g.cells[from] = Free
		g.cells[to] = Obstacle
		moved++
	}

	return moved
}
