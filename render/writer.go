package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/replan/simulation"
)

// Writer prints every snapshot to W: heading, status, board and a blank line.
// It implements simulation.Renderer.
type Writer struct {
	W      io.Writer
	Styles *Styles // nil prints plain text
}

// NewWriter returns a plain-text Writer on w, or a coloured one using
// DefaultStyles when styled is set.
func NewWriter(w io.Writer, styled bool) *Writer {
	out := &Writer{W: w}
	if styled {
		st := DefaultStyles()
		out.Styles = &st
	}
	return out
}

// Render implements simulation.Renderer.
func (w *Writer) Render(snap simulation.Snapshot) error {
	if w.Styles == nil {
		_, err := fmt.Fprintf(w.W, "%s\n%s\n%s\n\n", Heading(snap), Status(snap), Board(snap))
		return err
	}
	st := *w.Styles
	_, err := fmt.Fprintf(w.W, "%s\n%s\n%s\n\n",
		st.Heading.Render(Heading(snap)), StyledStatus(snap, st), StyledBoard(snap, st))
	return err
}
