// Package astar defines the result, options and sentinel errors of the grid A* planner.
//
// Options:
//
//	– SkipStale: drop popped frontier entries whose g is worse than the best known g
//	  of their cell. Defaults to true. Paths are identical either way; only the
//	  Expanded counter changes.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if start lies outside the grid.
//	– ErrGoalOutOfBounds  if goal lies outside the grid.
//
// An unreachable goal is not an error: FindPath returns Found == false and a nil Path.
package astar

import (
	"errors"

	"github.com/katalvlaran/replan/gridgraph"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates a start position outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start position out of bounds")

	// ErrGoalOutOfBounds indicates a goal position outside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal position out of bounds")
)

// Result is the outcome of one FindPath query.
//
//   - Path:     start..goal inclusive when Found, nil otherwise.
//   - Found:    whether the goal was reached.
//   - Cost:     number of unit steps, len(Path)-1 when Found, 0 otherwise.
//   - Expanded: number of frontier entries popped and processed, the goal pop included.
type Result struct {
	Path     []gridgraph.Position
	Found    bool
	Cost     int
	Expanded int
}

// Options configures FindPath.
type Options struct {
	SkipStale bool // drop stale frontier entries instead of re-expanding them
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithSkipStale enables or disables dropping of stale frontier entries.
func WithSkipStale(skip bool) Option {
	return func(o *Options) {
		o.SkipStale = skip
	}
}

// DefaultOptions returns the default configuration: SkipStale enabled.
func DefaultOptions() Options {
	return Options{SkipStale: true}
}
