// Package tui runs a simulation as an interactive terminal program.
//
// Each tick takes one simulation step and redraws the coloured board. Keys:
// q or ctrl+c quits, p or space pauses, n takes a single step while paused.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/replan/render"
	"github.com/katalvlaran/replan/simulation"
)

// TickMsg advances the simulation by one step.
type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the bubbletea model wrapping one simulation.
type Model struct {
	sim      *simulation.Simulation
	interval time.Duration
	styles   render.Styles

	last   simulation.StepResult
	snap   simulation.Snapshot
	paused bool
	err    error
}

// New returns a model that steps sim every interval.
func New(sim *simulation.Simulation, interval time.Duration) Model {
	return Model{
		sim:      sim,
		interval: interval,
		styles:   render.DefaultStyles(),
	}
}

// Init takes the first step immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg(time.Now()) }
}

// Update handles keys and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		case "n":
			if m.paused {
				m.step()
			}
		}
	case TickMsg:
		if m.paused {
			return m, tickCmd(m.interval)
		}
		m.step()
		if m.err != nil || m.sim.Done() {
			return m, nil
		}
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m *Model) step() {
	if m.sim.Done() {
		return
	}
	res, err := m.sim.Step()
	if err != nil {
		m.err = err
		return
	}
	m.last = res
	m.snap = m.sim.Last()
}

// Metrics returns the simulation metrics so far.
func (m Model) Metrics() simulation.Metrics { return m.sim.Metrics() }

// Err returns the error that stopped stepping, if any.
func (m Model) Err() error { return m.err }

// View draws the board, status and summary.
func (m Model) View() string {
	var sb strings.Builder
	if m.snap.Grid == nil {
		sb.WriteString("waiting for first step...\n")
	} else {
		sb.WriteString(m.styles.Heading.Render(render.Heading(m.snap)) + "\n\n")
		sb.WriteString(render.StyledBoard(m.snap, m.styles) + "\n\n")
		sb.WriteString(render.StyledStatus(m.snap, m.styles) + "\n")
		fmt.Fprintf(&sb, "expanded %d  regions %d  obstacles %d  moved %d\n",
			m.last.Expanded, m.last.Regions, m.last.Obstacles, m.last.Moved)
	}

	met := m.sim.Metrics()
	fmt.Fprintf(&sb, "found %d / %d\n", met.Successes, met.Steps)
	sb.WriteString(render.Legend() + "\n")
	if m.err != nil {
		fmt.Fprintf(&sb, "error: %v\n", m.err)
	}

	switch {
	case m.sim.Done():
		sb.WriteString("\nDone. Press q to quit.\n")
	case m.paused:
		sb.WriteString("\nPaused. p to resume, n to step, q to quit.\n")
	default:
		sb.WriteString("\np to pause, q to quit.\n")
	}
	return sb.String()
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, sim *simulation.Simulation, interval time.Duration, opts ...tea.ProgramOption) (simulation.Metrics, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(New(sim, interval), opts...).Run()
	if err != nil {
		return sim.Metrics(), fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.Metrics(), fm.err
	}
	return sim.Metrics(), nil
}
