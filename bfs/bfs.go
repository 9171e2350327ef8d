// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/replan/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   gridgraph.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any number of
// functional Options. Obstacle cells are never entered; start itself is expanded
// regardless of its cell.
//
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input, ErrOptionViolation
// for bad options, the context error on cancellation, or a wrapped OnVisit error.
func BFS(g *gridgraph.Grid, start gridgraph.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	n := g.Len()
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]gridgraph.Position, 0, n),
			Depth:  make(map[gridgraph.Position]int, n),
			Parent: make(map[gridgraph.Position]gridgraph.Position, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// ShortestPath returns a fewest-step path from start to goal and whether one exists.
// It is the reference the A* planner is checked against.
func ShortestPath(g *gridgraph.Grid, start, goal gridgraph.Position) ([]gridgraph.Position, bool, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, false, err
	}
	if !res.Reached(goal) {
		return nil, false, nil
	}
	path, err := res.PathTo(goal)
	return path, err == nil, err
}

// enqueue marks p visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(p gridgraph.Position, d int, parent *gridgraph.Position) {
	w.visited[w.grid.Index(p)] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies bounds, obstacle and MaxDepth checks and enqueues each
// unseen neighbour in order up, down, left, right.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range gridgraph.Offsets() {
		nbr := gridgraph.Position{Row: item.pos.Row + d[0], Col: item.pos.Col + d[1]}
		if !w.grid.InBounds(nbr) || w.grid.IsObstacle(nbr) {
			continue
		}
		// first time seen?
		if !w.visited[w.grid.Index(nbr)] {
			parent := item.pos
			w.enqueue(nbr, nextDepth, &parent)
		}
	}
}
