// Package render draws grids and search snapshots for a terminal using
// lipgloss styles.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Palette colors, matched to the visualizer: green start, red goal,
// yellow path, light blue explored, dark walls.
var (
	ColorStart    = lipgloss.Color("#22C55E")
	ColorGoal     = lipgloss.Color("#EF4444")
	ColorPath     = lipgloss.Color("#FACC15")
	ColorExplored = lipgloss.Color("#93C5FD")
	ColorWall     = lipgloss.Color("#1F2937")
	ColorMuted    = lipgloss.Color("241")
)

// Glyphs drawn for each cell kind.
const (
	GlyphStart    = "S"
	GlyphGoal     = "G"
	GlyphWall     = "#"
	GlyphPath     = "*"
	GlyphExplored = "o"
	GlyphFree     = "."
)

// Theme holds one style per cell kind plus the status line style.
type Theme struct {
	Start    lipgloss.Style
	Goal     lipgloss.Style
	Wall     lipgloss.Style
	Path     lipgloss.Style
	Explored lipgloss.Style
	Free     lipgloss.Style
	Status   lipgloss.Style
}

// DefaultTheme returns the colored theme. lipgloss drops the colors on
// terminals that cannot show them.
func DefaultTheme() Theme {
	return Theme{
		Start:    lipgloss.NewStyle().Foreground(ColorStart).Bold(true),
		Goal:     lipgloss.NewStyle().Foreground(ColorGoal).Bold(true),
		Wall:     lipgloss.NewStyle().Foreground(ColorWall).Background(ColorWall),
		Path:     lipgloss.NewStyle().Foreground(ColorPath).Bold(true),
		Explored: lipgloss.NewStyle().Foreground(ColorExplored),
		Free:     lipgloss.NewStyle().Foreground(ColorMuted),
		Status:   lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
	}
}

// PlainTheme renders bare glyphs with no escape sequences.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Start: s, Goal: s, Wall: s, Path: s, Explored: s, Free: s, Status: s}
}

// Grid draws g with the endpoints, explored cells and path overlaid.
// Precedence per cell: start, goal, wall, path, explored, free.
// Cells are separated by one space; rows by a newline.
func (t Theme) Grid(g *grid.Grid, start, goal grid.Cell, explored, path []grid.Cell) string {
	onPath := toSet(path)
	seen := toSet(explored)

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			c := grid.At(y, x)
			switch {
			case c == start:
				b.WriteString(t.Start.Render(GlyphStart))
			case c == goal:
				b.WriteString(t.Goal.Render(GlyphGoal))
			case !g.IsTraversable(c):
				b.WriteString(t.Wall.Render(GlyphWall))
			case onPath[c]:
				b.WriteString(t.Path.Render(GlyphPath))
			case seen[c]:
				b.WriteString(t.Explored.Render(GlyphExplored))
			default:
				b.WriteString(t.Free.Render(GlyphFree))
			}
		}
	}

	return b.String()
}

// Snapshot draws one step of a search followed by a status line. The
// terminal snapshot reports 100% progress.
func (t Theme) Snapshot(g *grid.Grid, start, goal grid.Cell, snap search.Snapshot) string {
	progress := 1.0
	if !snap.Done {
		progress = mazepath.Progress(g, len(snap.Explored))
	}
	status := fmt.Sprintf("step %d  explored %d  progress %.0f%%",
		snap.Step, len(snap.Explored), 100*progress)
	switch {
	case snap.Done && snap.Found:
		status += fmt.Sprintf("  path %d", len(snap.Path))
	case snap.Done:
		status += "  no path"
	default:
		status += "  at " + snap.Current.String()
	}

	return t.Grid(g, start, goal, snap.Explored, snap.Path) + "\n" + t.Status.Render(status)
}

// Summary is the one-line statistics report for a finished run.
func Summary(rep *mazepath.Report) string {
	outcome := "no path"
	if rep.Result.Found() {
		outcome = fmt.Sprintf("path %d", rep.Stats.PathLength)
	}

	return fmt.Sprintf("%-20s %-9s explored %-4d time %s",
		rep.Algorithm.Title(), outcome, rep.Stats.NodesExplored, rep.Stats.Elapsed.Round(time.Microsecond))
}

func toSet(cells []grid.Cell) map[grid.Cell]bool {
	m := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		m[c] = true
	}

	return m
}
