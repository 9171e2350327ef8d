package simulation

import (
	"context"
	"errors"

	"github.com/katalvlaran/replan/gridgraph"
)

// Sentinel errors returned by New and Step.
var (
	ErrBadDimensions       = errors.New("simulation: rows and cols must be >= 1")
	ErrBadRatio            = errors.New("simulation: obstacle ratio must be in [0, 1)")
	ErrBadSteps            = errors.New("simulation: steps must be >= 1")
	ErrBadMoveCount        = errors.New("simulation: move count must be >= 0")
	ErrEndpointOutOfBounds = errors.New("simulation: endpoint out of bounds")
	ErrFinished            = errors.New("simulation: all steps completed")
)

// StepResult is the outcome of one planning step.
//
// Moved is the number of obstacle moves applied after planning. It is zero in the
// value handed to a Reporter, which runs before relocation, and filled in the value
// returned by Step.
type StepResult struct {
	Step      int                  // 1-based step number
	Steps     int                  // total steps in the run
	Path      []gridgraph.Position // start..goal inclusive, nil when not found
	Found     bool                 // whether a path exists
	Expanded  int                  // frontier entries processed by the planner
	Regions   int                  // connected free regions of the planned-on grid
	Obstacles int                  // obstacle count of the planned-on grid
	Moved     int                  // obstacle moves applied after planning
}

// Snapshot is everything a renderer needs to draw one step.
// Grid is a copy; renderers may keep it.
type Snapshot struct {
	RunID string
	Step  int
	Steps int
	Grid  *gridgraph.Grid
	Path  []gridgraph.Position
	Found bool
	Start gridgraph.Position
	Goal  gridgraph.Position
}

// OnPath reports whether p is an element of the snapshot's path.
func (s Snapshot) OnPath(p gridgraph.Position) bool {
	for _, q := range s.Path {
		if q == p {
			return true
		}
	}
	return false
}

// Metrics aggregates a run.
type Metrics struct {
	RunID         string
	Steps         int // steps completed
	Successes     int
	Failures      int
	TotalExpanded int
	TotalMoved    int
	ShortestPath  int // fewest steps among found paths, 0 if none found
	LongestPath   int // most steps among found paths, 0 if none found
}

// add folds one finished step into m.
func (m *Metrics) add(r StepResult) {
	m.Steps++
	m.TotalExpanded += r.Expanded
	m.TotalMoved += r.Moved
	if !r.Found {
		m.Failures++
		return
	}
	m.Successes++
	cost := len(r.Path) - 1
	if m.Successes == 1 || cost < m.ShortestPath {
		m.ShortestPath = cost
	}
	if cost > m.LongestPath {
		m.LongestPath = cost
	}
}

// Reporter receives the outcome of each step before the grid is mutated.
type Reporter interface {
	Report(r StepResult)
}

// Renderer draws a step. A returned error aborts the step before relocation.
type Renderer interface {
	Render(s Snapshot) error
}

// Pacer blocks between steps. step is the number of the step just completed.
type Pacer interface {
	Pace(ctx context.Context, step int) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(r StepResult)

// Report calls f(r).
func (f ReporterFunc) Report(r StepResult) { f(r) }

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s Snapshot) error

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) error { return f(s) }
