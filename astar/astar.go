// Package astar implements A* shortest-path search over a gridgraph.Grid with
// 4-directional unit-cost movement and the Manhattan heuristic.
//
// Manhattan distance is admissible and consistent here: a single orthogonal step costs
// exactly 1 and changes the heuristic by at most 1, so the first time the goal is
// popped its g-score is optimal.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols (each relaxation pushes at most one heap entry).
//   - Space: O(N) for g-scores and predecessors, O(N) heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - The frontier orders entries by (f, row, col) lexicographically. Equal-f ties are
//     broken by position, which makes every returned path fully deterministic.
//   - Neighbours are examined in the fixed order up, down, left, right.
//   - We use a "lazy" decrease-key strategy: improved cells are pushed again and the
//     outdated entries stay in the heap. With SkipStale they are dropped when popped;
//     without it they are re-expanded harmlessly, because g-scores only ever improve.
//   - All search state is allocated per call and dropped on return.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/replan/gridgraph"
)

// unseen marks a cell with no known g-score (treated as +∞).
const unseen = -1

// FindPath computes an optimal path from start to goal on g.
//
// Returns:
//
//   - Result with Found == true and Path start..goal inclusive when the goal is reachable.
//   - Result with Found == false and a nil Path when it is not; err is nil in that case.
//   - err only for invalid input: ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds.
//
// The obstacle status of start is not checked: search proceeds from it regardless.
// An Obstacle goal is never entered, so it is unreachable unless start == goal.
// start == goal yields the single-element path [start].
//
// The grid is read-only for the duration of the call.
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v in %d×%d grid", ErrStartOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %v in %d×%d grid", ErrGoalOutOfBounds, goal, g.Rows(), g.Cols())
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Len()
	r := &runner{
		g:      g,
		goal:   goal,
		opts:   cfg,
		gScore: make([]int, n),
		prev:   make([]int, n),
		pq:     make(frontier, 0, n),
	}
	r.init(start)

	return r.process(start), nil
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b gridgraph.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g        *gridgraph.Grid    // The grid; read-only within FindPath.
	goal     gridgraph.Position // Target cell.
	opts     Options            // Configuration options.
	gScore   []int              // Row-major index → best known cost from start, or unseen.
	prev     []int              // Row-major index → predecessor index, or -1.
	pq       frontier           // Min-heap of entries ordered by (f, row, col).
	expanded int                // Entries popped and processed.
}

// init marks every cell unseen and pushes start with g = 0.
func (r *runner) init(start gridgraph.Position) {
	for i := range r.gScore {
		r.gScore[i] = unseen
		r.prev[i] = -1
	}
	r.gScore[r.g.Index(start)] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{f: Manhattan(start, r.goal), g: 0, pos: start})
}

// process is the main A* loop. It pops the lowest (f, row, col) entry until the goal
// is popped or the frontier is empty.
func (r *runner) process(start gridgraph.Position) Result {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(entry)
		ci := r.g.Index(cur.pos)

		// A cheaper entry for this cell was pushed after this one.
		if r.opts.SkipStale && cur.g > r.gScore[ci] {
			continue
		}
		r.expanded++

		if cur.pos == r.goal {
			path := r.reconstruct(start, ci)
			return Result{Path: path, Found: true, Cost: len(path) - 1, Expanded: r.expanded}
		}

		r.relax(cur.pos, r.gScore[ci])
	}

	return Result{Expanded: r.expanded}
}

// relax examines the four neighbours of u in order up, down, left, right and pushes
// every in-bounds free neighbour whose cost strictly improves.
func (r *runner) relax(u gridgraph.Position, gu int) {
	tentative := gu + 1
	for _, d := range gridgraph.Offsets() {
		v := gridgraph.Position{Row: u.Row + d[0], Col: u.Col + d[1]}
		if !r.g.InBounds(v) {
			continue
		}
		if r.g.IsObstacle(v) {
			continue
		}
		vi := r.g.Index(v)
		if known := r.gScore[vi]; known != unseen && tentative >= known {
			continue
		}
		r.gScore[vi] = tentative
		r.prev[vi] = r.g.Index(u)
		heap.Push(&r.pq, entry{f: tentative + Manhattan(v, r.goal), g: tentative, pos: v})
	}
}

// reconstruct follows predecessor links from goal back to start, then reverses.
func (r *runner) reconstruct(start gridgraph.Position, goalIdx int) []gridgraph.Position {
	startIdx := r.g.Index(start)
	path := []gridgraph.Position{r.g.PositionOf(goalIdx)}
	for at := goalIdx; at != startIdx; {
		at = r.prev[at]
		if at < 0 {
			break
		}
		path = append(path, r.g.PositionOf(at))
	}
	// reverse path in-place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// entry is one frontier element: a cell, the g it was pushed with, and its f = g + h.
type entry struct {
	f   int
	g   int
	pos gridgraph.Position
}

// frontier is a min-heap of entries ordered by f, then row, then column.
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less compares whole (f, row, col) tuples.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].pos.Less(pq[j].pos)
}

// Swap swaps two entries in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry; called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
