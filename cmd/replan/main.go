// Command replan runs the obstacle-shifting A* replanning simulation.
//
// By default each step is printed to stdout and logged to stderr. -tui runs an
// interactive terminal view instead, -out records the run to a parquet file and
// -replay prints a recorded run.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/replan/gridgraph"
	"github.com/katalvlaran/replan/record"
	"github.com/katalvlaran/replan/render"
	"github.com/katalvlaran/replan/simulation"
	"github.com/katalvlaran/replan/tui"
)

func main() {
	rows := flag.Int("rows", simulation.DefaultRows, "Grid rows")
	cols := flag.Int("cols", simulation.DefaultCols, "Grid columns")
	ratio := flag.Float64("ratio", simulation.DefaultObstacleRatio, "Initial obstacle ratio in [0, 1)")
	moves := flag.Int("moves", simulation.DefaultMoveCount, "Obstacle moves after each step")
	steps := flag.Int("steps", simulation.DefaultSteps, "Number of planning steps")
	interval := flag.Duration("interval", simulation.DefaultInterval, "Delay between steps")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the fixed default seed)")
	interactive := flag.Bool("tui", false, "Run the interactive terminal view")
	color := flag.Bool("color", false, "Colour the printed board")
	outPath := flag.String("out", "", "Record the run to this parquet file")
	replayPath := flag.String("replay", "", "Print a recorded run and exit")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "replan",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", *logLevel, "err", err)
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *replayPath != "" {
		n, err := record.Replay(*replayPath, render.NewWriter(os.Stdout, *color))
		if err != nil {
			logger.Fatal("replay failed", "file", *replayPath, "err", err)
		}
		logger.Info("replay complete", "file", *replayPath, "steps", n)
		return
	}

	rec := record.NewRecorder()
	opts := []simulation.Option{
		simulation.WithSize(*rows, *cols),
		simulation.WithObstacleRatio(*ratio),
		simulation.WithMoveCount(*moves),
		simulation.WithSteps(*steps),
		simulation.WithInterval(*interval),
		simulation.WithRand(gridgraph.NewRand(*seed)),
		simulation.WithRenderer(rec),
	}
	if *interactive {
		// The terminal belongs to the UI; keep the logger off it.
		opts = append(opts, simulation.WithLogger(log.New(io.Discard)))
	} else {
		opts = append(opts,
			simulation.WithLogger(logger),
			simulation.WithRenderer(render.NewWriter(os.Stdout, *color)),
		)
	}

	sim, err := simulation.New(opts...)
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	logger.Debug("configured", "run", sim.RunID(), "seed", *seed)

	var metrics simulation.Metrics
	if *interactive {
		metrics, err = tui.Run(ctx, sim, *interval, tea.WithAltScreen())
	} else {
		metrics, err = sim.Run(ctx)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("run failed", "err", err)
	}

	if *outPath != "" && len(rec.Rows()) > 0 {
		if err := rec.Flush(*outPath); err != nil {
			logger.Fatal("failed to record run", "file", *outPath, "err", err)
		}
		logger.Info("run recorded", "file", *outPath, "steps", len(rec.Rows()))
	}

	fmt.Printf("run %s: %d steps, %d found, %d unreachable, path length %d..%d\n",
		metrics.RunID, metrics.Steps, metrics.Successes, metrics.Failures,
		metrics.ShortestPath, metrics.LongestPath)
	if err != nil && ctx.Err() == nil {
		os.Exit(1)
	}
}
