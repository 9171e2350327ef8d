package simulation

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogReporter logs each step: Info "path found" with its length, or Warn
// "no path found".
type LogReporter struct {
	Logger *log.Logger
}

// Report implements Reporter.
func (r LogReporter) Report(res StepResult) {
	if r.Logger == nil {
		return
	}
	if res.Found {
		r.Logger.Info("path found",
			"step", res.Step, "of", res.Steps, "length", len(res.Path), "expanded", res.Expanded)
		return
	}
	r.Logger.Warn("no path found",
		"step", res.Step, "of", res.Steps, "regions", res.Regions, "obstacles", res.Obstacles)
}

// SleepPacer waits Interval between steps, or until ctx is done.
type SleepPacer struct {
	Interval time.Duration
}

// Pace implements Pacer.
func (p SleepPacer) Pace(ctx context.Context, _ int) error {
	if p.Interval <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.Interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NopPacer never waits.
type NopPacer struct{}

// Pace implements Pacer.
func (NopPacer) Pace(context.Context, int) error { return nil }
