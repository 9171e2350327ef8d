// Package record stores simulation runs as parquet files, one row per step, and
// reads them back for replay.
//
// A file is written to a temporary path and renamed into place, so readers never
// see a partial file.
package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/katalvlaran/replan/gridgraph"
	"github.com/katalvlaran/replan/simulation"
)

// Schema is stored in the file metadata under the "schema" key.
const Schema = "replan_step_v1"

// ErrBadRow is returned when a row cannot be turned back into a snapshot.
var ErrBadRow = errors.New("record: malformed row")

// StepRow is one planning step. Paths and obstacles are stored as parallel
// row/column arrays.
type StepRow struct {
	RunID string `parquet:"run_id,dict"`
	Step  int32  `parquet:"step"`
	Steps int32  `parquet:"steps"`
	Rows  int32  `parquet:"rows"`
	Cols  int32  `parquet:"cols"`

	StartRow int32 `parquet:"start_row"`
	StartCol int32 `parquet:"start_col"`
	GoalRow  int32 `parquet:"goal_row"`
	GoalCol  int32 `parquet:"goal_col"`

	Found   bool    `parquet:"found"`
	PathLen int32   `parquet:"path_len"`
	PathRow []int32 `parquet:"path_row"`
	PathCol []int32 `parquet:"path_col"`

	ObstacleRow []int32 `parquet:"obstacle_row"`
	ObstacleCol []int32 `parquet:"obstacle_col"`
}

// FromSnapshot converts a rendered snapshot to a row.
func FromSnapshot(snap simulation.Snapshot) StepRow {
	row := StepRow{
		RunID:    snap.RunID,
		Step:     int32(snap.Step),
		Steps:    int32(snap.Steps),
		StartRow: int32(snap.Start.Row),
		StartCol: int32(snap.Start.Col),
		GoalRow:  int32(snap.Goal.Row),
		GoalCol:  int32(snap.Goal.Col),
		Found:    snap.Found,
		PathLen:  int32(len(snap.Path)),
	}
	row.PathRow, row.PathCol = split(snap.Path)
	if snap.Grid != nil {
		row.Rows, row.Cols = int32(snap.Grid.Rows()), int32(snap.Grid.Cols())
		row.ObstacleRow, row.ObstacleCol = split(snap.Grid.Obstacles())
	}
	return row
}

// Snapshot rebuilds the snapshot the row was recorded from.
func (r StepRow) Snapshot() (simulation.Snapshot, error) {
	if len(r.PathRow) != len(r.PathCol) || len(r.ObstacleRow) != len(r.ObstacleCol) {
		return simulation.Snapshot{}, fmt.Errorf("%w: step %d: coordinate arrays differ in length", ErrBadRow, r.Step)
	}
	g, err := gridgraph.New(int(r.Rows), int(r.Cols))
	if err != nil {
		return simulation.Snapshot{}, fmt.Errorf("%w: step %d: %w", ErrBadRow, r.Step, err)
	}
	for _, p := range join(r.ObstacleRow, r.ObstacleCol) {
		if !g.InBounds(p) {
			return simulation.Snapshot{}, fmt.Errorf("%w: step %d: obstacle %v out of bounds", ErrBadRow, r.Step, p)
		}
		g.Set(p, gridgraph.Obstacle)
	}
	return simulation.Snapshot{
		RunID: r.RunID,
		Step:  int(r.Step),
		Steps: int(r.Steps),
		Grid:  g,
		Path:  join(r.PathRow, r.PathCol),
		Found: r.Found,
		Start: gridgraph.Position{Row: int(r.StartRow), Col: int(r.StartCol)},
		Goal:  gridgraph.Position{Row: int(r.GoalRow), Col: int(r.GoalCol)},
	}, nil
}

func split(ps []gridgraph.Position) (rows, cols []int32) {
	if len(ps) == 0 {
		return nil, nil
	}
	rows = make([]int32, len(ps))
	cols = make([]int32, len(ps))
	for i, p := range ps {
		rows[i], cols[i] = int32(p.Row), int32(p.Col)
	}
	return rows, cols
}

func join(rows, cols []int32) []gridgraph.Position {
	if len(rows) == 0 {
		return nil
	}
	out := make([]gridgraph.Position, len(rows))
	for i := range rows {
		out[i] = gridgraph.Position{Row: int(rows[i]), Col: int(cols[i])}
	}
	return out
}

// WriteFile writes rows to outPath with zstd compression.
func WriteFile(outPath string, rows []StepRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", Schema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadFile reads every row of a file written by WriteFile.
func ReadFile(path string) ([]StepRow, error) {
	rows, err := parquet.ReadFile[StepRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
