package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadRatio indicates an obstacle ratio outside [0, 1).
	ErrBadRatio = errors.New("gridgraph: obstacle ratio must be in [0, 1)")
	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("gridgraph: random source is nil")
)
