package simulation

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/replan/gridgraph"
)

// Default run parameters.
const (
	DefaultRows          = 10
	DefaultCols          = 10
	DefaultObstacleRatio = 0.2
	DefaultMoveCount     = 2
	DefaultSteps         = 5
	DefaultInterval      = time.Second
)

// Options configures a Simulation. Use the With* helpers rather than setting
// fields directly; New validates the result.
type Options struct {
	Rows, Cols    int
	ObstacleRatio float64
	MoveCount     int
	Steps         int
	Interval      time.Duration // used by the default SleepPacer

	Start, Goal gridgraph.Position
	endpoints   bool // Start/Goal set explicitly

	RunID     string
	Rand      gridgraph.Rand
	Grid      *gridgraph.Grid // prepared grid; overrides Rows, Cols and ObstacleRatio
	Reporter  Reporter
	Renderers []Renderer
	Pacer     Pacer
	Logger    *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a 10×10 run with 20% obstacles, 5 steps, 2 moves per step
// and a 1s interval. Rand, Reporter, Pacer, Logger and RunID are filled by New.
func DefaultOptions() Options {
	return Options{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		ObstacleRatio: DefaultObstacleRatio,
		MoveCount:     DefaultMoveCount,
		Steps:         DefaultSteps,
		Interval:      DefaultInterval,
	}
}

// WithSize sets the grid dimensions.
func WithSize(rows, cols int) Option {
	return func(o *Options) {
		o.Rows, o.Cols = rows, cols
	}
}

// WithObstacleRatio sets the initial fraction of obstacle cells.
func WithObstacleRatio(ratio float64) Option {
	return func(o *Options) {
		o.ObstacleRatio = ratio
	}
}

// WithMoveCount sets the number of obstacle moves applied after each step.
func WithMoveCount(n int) Option {
	return func(o *Options) {
		o.MoveCount = n
	}
}

// WithSteps sets the number of planning steps.
func WithSteps(n int) Option {
	return func(o *Options) {
		o.Steps = n
	}
}

// WithEndpoints overrides the default start (0,0) and goal (rows-1, cols-1).
func WithEndpoints(start, goal gridgraph.Position) Option {
	return func(o *Options) {
		o.Start, o.Goal = start, goal
		o.endpoints = true
	}
}

// WithRand sets the random source for placement and relocation. nil is ignored.
func WithRand(rnd gridgraph.Rand) Option {
	return func(o *Options) {
		if rnd != nil {
			o.Rand = rnd
		}
	}
}

// WithSeed is shorthand for WithRand(gridgraph.NewRand(seed)).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = gridgraph.NewRand(seed)
	}
}

// WithGrid runs on a prepared grid instead of generating one. The simulation
// takes ownership and mutates it.
func WithGrid(g *gridgraph.Grid) Option {
	return func(o *Options) {
		o.Grid = g
	}
}

// WithRunID sets the run identifier; by default a random UUID is used.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithReporter replaces the default LogReporter.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}

// WithRenderer adds a renderer. Renderers are called in the order added.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderers = append(o.Renderers, r)
		}
	}
}

// WithPacer replaces the default SleepPacer.
func WithPacer(p Pacer) Option {
	return func(o *Options) {
		if p != nil {
			o.Pacer = p
		}
	}
}

// WithInterval sets the delay of the default SleepPacer.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		o.Interval = d
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// fill sets defaults that depend on other fields.
func (o *Options) fill() {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Rand == nil {
		o.Rand = gridgraph.NewRand(0)
	}
	if o.Reporter == nil {
		o.Reporter = LogReporter{Logger: o.Logger}
	}
	if o.Pacer == nil {
		o.Pacer = SleepPacer{Interval: o.Interval}
	}
	if o.Grid != nil {
		o.Rows, o.Cols = o.Grid.Rows(), o.Grid.Cols()
	}
	if !o.endpoints {
		o.Start = gridgraph.Position{}
		o.Goal = gridgraph.Position{Row: o.Rows - 1, Col: o.Cols - 1}
	}
}
