package record

import (
	"github.com/katalvlaran/replan/simulation"
)

// Recorder buffers a row per rendered snapshot. It implements simulation.Renderer.
type Recorder struct {
	rows []StepRow
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Render implements simulation.Renderer.
func (r *Recorder) Render(snap simulation.Snapshot) error {
	r.rows = append(r.rows, FromSnapshot(snap))
	return nil
}

// Rows returns the rows recorded so far.
func (r *Recorder) Rows() []StepRow { return r.rows }

// Flush writes the recorded rows to path.
func (r *Recorder) Flush(path string) error {
	return WriteFile(path, r.rows)
}

// Replay renders every row of the file at path, in order.
func Replay(path string, to simulation.Renderer) (int, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		snap, err := row.Snapshot()
		if err != nil {
			return i, err
		}
		if err := to.Render(snap); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}
