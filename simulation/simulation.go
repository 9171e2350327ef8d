package simulation

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/replan/astar"
	"github.com/katalvlaran/replan/gridgraph"
)

// Simulation owns the grid of one run and the step counter. It is not safe for
// concurrent use.
type Simulation struct {
	opts    Options
	grid    *gridgraph.Grid
	log     *log.Logger
	step    int // steps completed
	last    Snapshot
	metrics Metrics
}

// New validates the configuration, generates the initial grid (unless WithGrid
// was given) and returns a simulation ready for its first Step.
//
// Nothing is clamped: every invalid value is rejected with its sentinel error.
func New(opts ...Option) (*Simulation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Grid == nil {
		if o.Rows < 1 || o.Cols < 1 {
			return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, o.Rows, o.Cols)
		}
		if !(o.ObstacleRatio >= 0 && o.ObstacleRatio < 1) {
			return nil, fmt.Errorf("%w: got %v", ErrBadRatio, o.ObstacleRatio)
		}
	}
	if o.Steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSteps, o.Steps)
	}
	if o.MoveCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMoveCount, o.MoveCount)
	}
	o.fill()

	grid := o.Grid
	if grid == nil {
		var err error
		if grid, err = gridgraph.Generate(o.Rows, o.Cols, o.ObstacleRatio, o.Rand); err != nil {
			return nil, fmt.Errorf("simulation: generate grid: %w", err)
		}
	}
	for _, p := range []gridgraph.Position{o.Start, o.Goal} {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrEndpointOutOfBounds, p, o.Rows, o.Cols)
		}
	}

	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	logger := o.Logger.With("run", o.RunID)
	logger.Debug("simulation ready",
		"rows", o.Rows, "cols", o.Cols, "obstacles", grid.ObstacleCount(),
		"steps", o.Steps, "moves", o.MoveCount, "start", o.Start, "goal", o.Goal)

	return &Simulation{
		opts:    o,
		grid:    grid,
		log:     logger,
		metrics: Metrics{RunID: o.RunID},
	}, nil
}

// RunID returns the identifier of this run.
func (s *Simulation) RunID() string { return s.opts.RunID }

// Options returns the effective configuration.
func (s *Simulation) Options() Options { return s.opts }

// Done reports whether every step has been taken.
func (s *Simulation) Done() bool { return s.step >= s.opts.Steps }

// Grid returns a copy of the current grid.
func (s *Simulation) Grid() *gridgraph.Grid { return s.grid.Clone() }

// Last returns the snapshot of the most recent step; zero before the first Step.
func (s *Simulation) Last() Snapshot { return s.last }

// Metrics returns the aggregate of the steps completed so far.
func (s *Simulation) Metrics() Metrics { return s.metrics }

// Step performs one plan–report–render–relocate iteration.
//
// It returns ErrFinished once all steps are done. A renderer error aborts the step
// before relocation; the step still counts as taken.
func (s *Simulation) Step() (StepResult, error) {
	if s.Done() {
		return StepResult{}, ErrFinished
	}
	s.step++
	o := s.opts

	res, err := astar.FindPath(s.grid, o.Start, o.Goal)
	if err != nil {
		return StepResult{}, fmt.Errorf("simulation: step %d: %w", s.step, err)
	}

	out := StepResult{
		Step:      s.step,
		Steps:     o.Steps,
		Path:      res.Path,
		Found:     res.Found,
		Expanded:  res.Expanded,
		Regions:   len(s.grid.FreeComponents()),
		Obstacles: s.grid.ObstacleCount(),
	}
	o.Reporter.Report(out)

	s.last = Snapshot{
		RunID: o.RunID,
		Step:  s.step,
		Steps: o.Steps,
		Grid:  s.grid.Clone(),
		Path:  append([]gridgraph.Position(nil), res.Path...),
		Found: res.Found,
		Start: o.Start,
		Goal:  o.Goal,
	}
	for _, r := range o.Renderers {
		if err := r.Render(s.last); err != nil {
			s.metrics.add(out)
			return out, fmt.Errorf("simulation: render step %d: %w", s.step, err)
		}
	}

	out.Moved = s.grid.Relocate(o.MoveCount, o.Rand)
	if out.Moved < o.MoveCount {
		s.log.Debug("relocation exhausted", "step", s.step, "requested", o.MoveCount, "moved", out.Moved)
	}
	s.metrics.add(out)

	return out, nil
}

// Run takes every remaining step, pacing between steps but not after the last.
//
// Planning itself is never interrupted. ctx only cancels the pacing wait, in which
// case Run returns the context error with the metrics gathered so far.
func (s *Simulation) Run(ctx context.Context) (Metrics, error) {
	s.log.Info("run started", "steps", s.opts.Steps)
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			s.log.Error("run aborted", "step", s.step, "err", err)
			return s.metrics, err
		}
		if s.Done() {
			break
		}
		if err := s.opts.Pacer.Pace(ctx, s.step); err != nil {
			s.log.Warn("run cancelled", "step", s.step, "err", err)
			return s.metrics, err
		}
	}
	m := s.metrics
	s.log.Info("run finished",
		"successes", m.Successes, "failures", m.Failures,
		"expanded", m.TotalExpanded, "moved", m.TotalMoved)

	return m, nil
}
