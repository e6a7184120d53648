package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/report"
)

// Glyphs of the plain text rendering.
const (
	glyphWall     = '█'
	glyphStart    = 'A'
	glyphGoal     = 'B'
	glyphPath     = '*'
	glyphExplored = '·'
	glyphOpen     = ' '
)

var glyphs = map[cellKind]rune{
	cellWall:     glyphWall,
	cellStart:    glyphStart,
	cellGoal:     glyphGoal,
	cellPath:     glyphPath,
	cellExplored: glyphExplored,
	cellOpen:     glyphOpen,
}

// cellStyles colour each cell kind with the shared palette. Every cell is
// drawn two columns wide so the maze keeps its aspect ratio in a terminal.
var cellStyles = func() map[cellKind]lipgloss.Style {
	out := make(map[cellKind]lipgloss.Style, len(palette))
	for k, c := range palette {
		out[k] = lipgloss.NewStyle().
			Background(lipgloss.Color(hex(c))).
			Foreground(lipgloss.Color("#000000"))
	}
	return out
}()

// Text draws a report as text, one line per maze row.
//
// Plain output uses '█' for walls, 'A' and 'B' for the endpoints, '*' for the
// solution and, with [WithExplored], '·' for expanded cells. [WithColor]
// switches to lipgloss-styled blocks for terminals.
func Text(r report.Report, opts ...Option) (string, error) {
	s, err := newScene(r, opts...)
	if err != nil {
		return "", err
	}
	return s.text(), nil
}

func (s *scene) text() string {
	var b strings.Builder
	for row := 0; row < s.maze.Height(); row++ {
		for col := 0; col < s.maze.Width(); col++ {
			k := s.kind(maze.Point{Row: row, Col: col})
			if s.opts.color {
				b.WriteString(cellStyles[k].Render(styledCell(k)))
				continue
			}
			b.WriteRune(glyphs[k])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func styledCell(k cellKind) string {
	switch k {
	case cellStart:
		return "A "
	case cellGoal:
		return "B "
	}
	return "  "
}
