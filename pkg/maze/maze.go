package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/mazesearch/pkg/search"
)

// ErrInvalid is wrapped by every error describing a malformed maze.
var ErrInvalid = errors.New("invalid maze")

// Point is a cell position. Row 0 is the top line of the maze file.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Action is a single orthogonal move.
type Action string

// Moves, in the order Neighbors reports them.
const (
	Up    Action = "up"
	Down  Action = "down"
	Left  Action = "left"
	Right Action = "right"
)

// Actions lists every move in neighbor order.
var Actions = []Action{Up, Down, Left, Right}

// Delta returns the row/column offset of the move.
func (a Action) Delta() Point {
	switch a {
	case Up:
		return Point{Row: -1}
	case Down:
		return Point{Row: 1}
	case Left:
		return Point{Col: -1}
	case Right:
		return Point{Col: 1}
	}
	return Point{}
}

// Maze is a rectangular grid of open and wall cells with one start and one
// goal. It implements search.Problem[Point, Action]; every move costs 1.
//
// A Maze is immutable after construction and safe for concurrent searches.
type Maze struct {
	width  int
	height int
	walls  [][]bool
	start  Point
	goal   Point
}

// New builds a maze from a wall grid. All rows must have the same length, and
// start and goal must be open cells inside the grid. They may coincide.
func New(walls [][]bool, start, goal Point) (*Maze, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalid)
	}
	width := len(walls[0])
	grid := make([][]bool, len(walls))
	for i, row := range walls {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalid, i, len(row), width)
		}
		grid[i] = append([]bool(nil), row...)
	}

	m := &Maze{width: width, height: len(grid), walls: grid, start: start, goal: goal}
	for _, p := range []struct {
		name string
		pt   Point
	}{{"start", start}, {"goal", goal}} {
		if !m.InBounds(p.pt) {
			return nil, fmt.Errorf("%w: %s %s is outside the %dx%d grid", ErrInvalid, p.name, p.pt, width, len(grid))
		}
		if m.walls[p.pt.Row][p.pt.Col] {
			return nil, fmt.Errorf("%w: %s %s is a wall", ErrInvalid, p.name, p.pt)
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start cell (marked A).
func (m *Maze) Start() Point { return m.start }

// Goal returns the goal cell (marked B).
func (m *Maze) Goal() Point { return m.goal }

// IsGoal reports whether p is the goal cell.
func (m *Maze) IsGoal(p Point) bool { return p == m.goal }

// InBounds reports whether p lies inside the grid.
func (m *Maze) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < m.height && p.Col >= 0 && p.Col < m.width
}

// Wall reports whether p is a wall. Cells outside the grid count as walls.
func (m *Maze) Wall(p Point) bool {
	return !m.InBounds(p) || m.walls[p.Row][p.Col]
}

// Apply returns the cell reached by taking a from p, and whether that move
// is legal.
func (m *Maze) Apply(p Point, a Action) (Point, bool) {
	d := a.Delta()
	if d == (Point{}) {
		return p, false
	}
	next := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
	if m.Wall(next) {
		return p, false
	}
	return next, true
}

// Neighbors returns the legal moves from p in the order up, down, left, right.
func (m *Maze) Neighbors(p Point) []search.Successor[Point, Action] {
	out := make([]search.Successor[Point, Action], 0, len(Actions))
	for _, a := range Actions {
		if next, ok := m.Apply(p, a); ok {
			out = append(out, search.Successor[Point, Action]{Action: a, State: next})
		}
	}
	return out
}

// OpenCells returns every non-wall cell in row-major order.
func (m *Maze) OpenCells() []Point {
	var out []Point
	for r, row := range m.walls {
		for c, wall := range row {
			if !wall {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// Replay applies actions from the start cell and returns the cell reached.
// It fails on the first illegal move.
func (m *Maze) Replay(actions []Action) (Point, error) {
	cur := m.start
	for i, a := range actions {
		next, ok := m.Apply(cur, a)
		if !ok {
			return cur, fmt.Errorf("move %d (%s) from %s is blocked", i, a, cur)
		}
		cur = next
	}
	return cur, nil
}

// String encodes the maze in the text format read by Parse: '#' for walls,
// 'A' for the start, 'B' for the goal and ' ' for open cells.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for r, row := range m.walls {
		for c, wall := range row {
			p := Point{Row: r, Col: c}
			switch {
			case p == m.start:
				b.WriteByte(startRune)
			case p == m.goal:
				b.WriteByte(goalRune)
			case wall:
				b.WriteByte(wallRune)
			default:
				b.WriteByte(openRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var _ search.Problem[Point, Action] = (*Maze)(nil)
