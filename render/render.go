package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/replan/gridgraph"
	"github.com/katalvlaran/replan/simulation"
)

// Kind classifies a cell for drawing.
type Kind uint8

const (
	KindFree Kind = iota
	KindObstacle
	KindPath
	KindStart
	KindGoal
)

var glyphs = [...]byte{
	KindFree:     '.',
	KindObstacle: '#',
	KindPath:     '*',
	KindStart:    'S',
	KindGoal:     'G',
}

// Glyph returns the single character for k.
func (k Kind) Glyph() byte { return glyphs[k] }

// Classify returns how p is drawn in snap. Goal wins over start when both coincide.
func Classify(snap simulation.Snapshot, p gridgraph.Position, onPath map[gridgraph.Position]bool) Kind {
	switch {
	case p == snap.Goal:
		return KindGoal
	case p == snap.Start:
		return KindStart
	case onPath[p]:
		return KindPath
	case snap.Grid.IsObstacle(p):
		return KindObstacle
	default:
		return KindFree
	}
}

// Kinds returns the rows×cols drawing classification of snap.
func Kinds(snap simulation.Snapshot) [][]Kind {
	onPath := make(map[gridgraph.Position]bool, len(snap.Path))
	for _, p := range snap.Path {
		onPath[p] = true
	}
	out := make([][]Kind, snap.Grid.Rows())
	for r := range out {
		out[r] = make([]Kind, snap.Grid.Cols())
		for c := range out[r] {
			out[r][c] = Classify(snap, gridgraph.Position{Row: r, Col: c}, onPath)
		}
	}
	return out
}

// Board renders snap as plain text, one line per row, no trailing newline.
func Board(snap simulation.Snapshot) string {
	if snap.Grid == nil {
		return ""
	}
	kinds := Kinds(snap)
	var sb strings.Builder
	sb.Grow(len(kinds) * (len(kinds[0]) + 1))
	for r, row := range kinds {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteByte(k.Glyph())
		}
	}
	return sb.String()
}

// Heading returns "Step i / n".
func Heading(snap simulation.Snapshot) string {
	return fmt.Sprintf("Step %d / %d", snap.Step, snap.Steps)
}

// Status returns a one-line outcome of the step.
func Status(snap simulation.Snapshot) string {
	if !snap.Found {
		return "no path found"
	}
	return fmt.Sprintf("path found, length %d", len(snap.Path))
}

// Legend lists the glyphs.
func Legend() string {
	return "S start  G goal  * path  # obstacle  . free"
}
