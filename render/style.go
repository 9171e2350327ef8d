package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/replan/simulation"
)

// Styles maps each cell kind to a lipgloss style.
type Styles struct {
	Free, Obstacle, Path, Start, Goal lipgloss.Style
	Heading                           lipgloss.Style
	Found, NotFound                   lipgloss.Style
}

// DefaultStyles returns the board palette: free black, obstacle white, path blue,
// start green, goal red.
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Bold(true)
	return Styles{
		Free:     cell.Foreground(lipgloss.Color("8")).Background(lipgloss.Color("0")),
		Obstacle: cell.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
		Path:     cell.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")),
		Start:    cell.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
		Goal:     cell.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
		Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		Found:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		NotFound: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func (s Styles) forKind(k Kind) lipgloss.Style {
	switch k {
	case KindObstacle:
		return s.Obstacle
	case KindPath:
		return s.Path
	case KindStart:
		return s.Start
	case KindGoal:
		return s.Goal
	default:
		return s.Free
	}
}

// StyledBoard renders snap with colours. Stripped of escape codes it equals Board(snap).
func StyledBoard(snap simulation.Snapshot, st Styles) string {
	if snap.Grid == nil {
		return ""
	}
	rows := Kinds(snap)
	lines := make([]string, len(rows))
	var sb strings.Builder
	for r, row := range rows {
		sb.Reset()
		for _, k := range row {
			sb.WriteString(st.forKind(k).Render(string(k.Glyph())))
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// StyledStatus renders Status(snap) in the found or not-found colour.
func StyledStatus(snap simulation.Snapshot, st Styles) string {
	if snap.Found {
		return st.Found.Render(Status(snap))
	}
	return st.NotFound.Render(Status(snap))
}
