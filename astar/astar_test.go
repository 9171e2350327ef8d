// Package astar_test validates the grid A* planner: input validation, the exact
// deterministic paths produced under (f, row, col) ordering, path validity,
// optimality against BFS, and determinism across repeated calls.
package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/replan/astar"
	"github.com/katalvlaran/replan/bfs"
	"github.com/katalvlaran/replan/gridgraph"
)

func pos(r, c int) gridgraph.Position { return gridgraph.Position{Row: r, Col: c} }

func mustRows(t *testing.T, values [][]int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromRows(values)
	require.NoError(t, err)
	return g
}

// requireValidPath checks endpoints, orthogonal adjacency and obstacle avoidance.
func requireValidPath(t *testing.T, g *gridgraph.Grid, path []gridgraph.Position, start, goal gridgraph.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "first element must be start")
	require.Equal(t, goal, path[len(path)-1], "last element must be goal")
	for i := 1; i < len(path); i++ {
		require.True(t, g.InBounds(path[i]), "step %d out of bounds: %v", i, path[i])
		require.Equal(t, 1, astar.Manhattan(path[i-1], path[i]), "step %d not adjacent: %v→%v", i, path[i-1], path[i])
	}
	for i := 1; i < len(path)-1; i++ {
		require.False(t, g.IsObstacle(path[i]), "intermediate %v on obstacle", path[i])
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindPath_NilGrid(t *testing.T) {
	_, err := astar.FindPath(nil, pos(0, 0), pos(0, 0))
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}

func TestFindPath_OutOfBounds(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	_, err = astar.FindPath(g, pos(-1, 0), pos(2, 2))
	assert.ErrorIs(t, err, astar.ErrStartOutOfBounds)

	_, err = astar.FindPath(g, pos(0, 0), pos(3, 0))
	assert.ErrorIs(t, err, astar.ErrGoalOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Scenarios with pinned output
// ------------------------------------------------------------------------

func TestFindPath_Scenarios(t *testing.T) {
	cases := []struct {
		name        string
		grid        [][]int
		start, goal gridgraph.Position
		want        []gridgraph.Position // nil ⇒ unreachable
	}{
		{
			name:  "OpenGrid3x3",
			grid:  [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			start: pos(0, 0), goal: pos(2, 2),
			want: []gridgraph.Position{pos(0, 0), pos(0, 1), pos(0, 2), pos(1, 2), pos(2, 2)},
		},
		{
			name:  "RouteAroundCorridor",
			grid:  [][]int{{0, 1, 0}, {0, 1, 0}, {0, 0, 0}},
			start: pos(0, 0), goal: pos(2, 2),
			want: []gridgraph.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(2, 1), pos(2, 2)},
		},
		{
			name:  "SolidWall",
			grid:  [][]int{{0, 0, 0}, {1, 1, 1}, {0, 0, 0}},
			start: pos(0, 0), goal: pos(2, 2),
			want: nil,
		},
		{
			name: "Detour5x5",
			grid: [][]int{
				{0, 0, 0, 0, 0},
				{0, 1, 1, 1, 0},
				{0, 0, 0, 1, 0},
				{1, 1, 0, 1, 0},
				{0, 0, 0, 0, 0},
			},
			start: pos(0, 0), goal: pos(4, 4),
			want: []gridgraph.Position{
				pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4),
				pos(1, 4), pos(2, 4), pos(3, 4), pos(4, 4),
			},
		},
		{
			name:  "ObstacleStartStillSearches",
			grid:  [][]int{{1, 0}, {0, 0}},
			start: pos(0, 0), goal: pos(1, 1),
			want: []gridgraph.Position{pos(0, 0), pos(0, 1), pos(1, 1)},
		},
		{
			name:  "ObstacleGoalUnreachable",
			grid:  [][]int{{0, 0}, {0, 1}},
			start: pos(0, 0), goal: pos(1, 1),
			want: nil,
		},
		{
			name:  "ReverseDirection",
			grid:  [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			start: pos(3, 3), goal: pos(0, 0),
			want: []gridgraph.Position{pos(3, 3), pos(2, 3), pos(1, 3), pos(0, 3), pos(0, 2), pos(0, 1), pos(0, 0)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustRows(t, tc.grid)
			res, err := astar.FindPath(g, tc.start, tc.goal)
			require.NoError(t, err)
			if tc.want == nil {
				assert.False(t, res.Found)
				assert.Nil(t, res.Path)
				assert.Zero(t, res.Cost)
				return
			}
			require.True(t, res.Found)
			assert.Equal(t, tc.want, res.Path)
			assert.Equal(t, len(tc.want)-1, res.Cost)
			requireValidPath(t, g, res.Path, tc.start, tc.goal)
		})
	}
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := mustRows(t, [][]int{{0, 0}, {0, 1}})
	for _, p := range []gridgraph.Position{pos(0, 1), pos(1, 1)} {
		res, err := astar.FindPath(g, p, p)
		require.NoError(t, err)
		assert.True(t, res.Found, "start==goal is always found, even on an obstacle")
		assert.Equal(t, []gridgraph.Position{p}, res.Path)
		assert.Equal(t, 0, res.Cost)
		assert.Equal(t, 1, res.Expanded)
	}
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

// TestFindPath_OpenGridLength checks |Δrow|+|Δcol|+1 positions without obstacles.
func TestFindPath_OpenGridLength(t *testing.T) {
	g, err := gridgraph.New(7, 9)
	require.NoError(t, err)
	rnd := gridgraph.NewRand(3)
	for i := 0; i < 40; i++ {
		s := pos(rnd.Intn(7), rnd.Intn(9))
		e := pos(rnd.Intn(7), rnd.Intn(9))
		res, err := astar.FindPath(g, s, e)
		require.NoError(t, err)
		require.True(t, res.Found)
		require.Len(t, res.Path, astar.Manhattan(s, e)+1)
		requireValidPath(t, g, res.Path, s, e)
	}
}

// TestFindPath_MatchesBFS compares path length and reachability with BFS on
// random grids of several densities.
func TestFindPath_MatchesBFS(t *testing.T) {
	rnd := gridgraph.NewRand(77)
	for _, ratio := range []float64{0, 0.1, 0.25, 0.4, 0.6} {
		for trial := 0; trial < 25; trial++ {
			g, err := gridgraph.Generate(9, 11, ratio, rnd)
			require.NoError(t, err)
			start, goal := pos(0, 0), pos(8, 10)

			res, err := astar.FindPath(g, start, goal)
			require.NoError(t, err)
			ref, ok, err := bfs.ShortestPath(g, start, goal)
			require.NoError(t, err)

			require.Equal(t, ok, res.Found, "ratio %v trial %d: reachability differs", ratio, trial)
			if !ok {
				continue
			}
			require.Len(t, res.Path, len(ref), "ratio %v trial %d: A* path not optimal", ratio, trial)
			requireValidPath(t, g, res.Path, start, goal)
		}
	}
}

// TestFindPath_Deterministic checks repeated calls return equal results.
func TestFindPath_Deterministic(t *testing.T) {
	g, err := gridgraph.Generate(15, 15, 0.3, gridgraph.NewRand(8))
	require.NoError(t, err)
	first, err := astar.FindPath(g, pos(0, 0), pos(14, 14))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.FindPath(g, pos(0, 0), pos(14, 14))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestFindPath_SkipStaleSameOutput verifies stale-entry dropping only affects Expanded.
func TestFindPath_SkipStaleSameOutput(t *testing.T) {
	rnd := gridgraph.NewRand(19)
	for trial := 0; trial < 30; trial++ {
		g, err := gridgraph.Generate(12, 12, 0.3, rnd)
		require.NoError(t, err)
		lazy, err := astar.FindPath(g, pos(0, 0), pos(11, 11), astar.WithSkipStale(false))
		require.NoError(t, err)
		skip, err := astar.FindPath(g, pos(0, 0), pos(11, 11), astar.WithSkipStale(true))
		require.NoError(t, err)

		assert.Equal(t, lazy.Found, skip.Found)
		assert.Equal(t, lazy.Path, skip.Path)
		assert.LessOrEqual(t, skip.Expanded, lazy.Expanded)
	}
}

// TestFindPath_DoesNotMutate ensures the grid is untouched by a query.
func TestFindPath_DoesNotMutate(t *testing.T) {
	g, err := gridgraph.Generate(10, 10, 0.3, gridgraph.NewRand(4))
	require.NoError(t, err)
	before := g.Clone()
	_, err = astar.FindPath(g, pos(0, 0), pos(9, 9))
	require.NoError(t, err)
	assert.True(t, g.Equal(before))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, astar.Manhattan(pos(2, 3), pos(2, 3)))
	assert.Equal(t, 7, astar.Manhattan(pos(0, 0), pos(3, 4)))
	assert.Equal(t, 7, astar.Manhattan(pos(3, 4), pos(0, 0)))
}
