package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/report"
	"github.com/matzehuels/mazesearch/pkg/search"
)

// DefaultCellSize is the PNG edge length of one maze cell in pixels.
const DefaultCellSize = 50

// Option configures rendering.
type Option func(*options)

type options struct {
	cellSize  int
	solution  bool
	explored  bool
	heuristic bool
	color     bool
}

// WithCellSize sets the PNG cell size in pixels. Values below 4 are ignored.
func WithCellSize(px int) Option {
	return func(o *options) {
		if px >= 4 {
			o.cellSize = px
		}
	}
}

// WithSolution toggles drawing of the solution path (default on).
func WithSolution(show bool) Option { return func(o *options) { o.solution = show } }

// WithExplored toggles highlighting of expanded cells (default off).
func WithExplored(show bool) Option { return func(o *options) { o.explored = show } }

// WithHeuristicLabels labels every remaining open cell with its heuristic
// value in PNG and DOT output (default off).
func WithHeuristicLabels(show bool) Option { return func(o *options) { o.heuristic = show } }

// WithColor styles text output with terminal colors (default off).
func WithColor(on bool) Option { return func(o *options) { o.color = on } }

// =============================================================================
// Cell Classification
// =============================================================================

type cellKind int

const (
	cellOpen cellKind = iota
	cellWall
	cellStart
	cellGoal
	cellPath
	cellExplored
)

// Palette shared by every renderer.
var palette = map[cellKind]color.RGBA{
	cellWall:     {40, 40, 40, 255},
	cellStart:    {255, 0, 0, 255},
	cellGoal:     {0, 171, 28, 255},
	cellPath:     {220, 235, 113, 255},
	cellExplored: {212, 97, 85, 255},
	cellOpen:     {237, 240, 252, 255},
}

// labelFill is the background of open cells that carry a heuristic label.
var labelFill = color.RGBA{255, 255, 255, 255}

func hex(c color.RGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// scene is a report prepared for drawing.
type scene struct {
	opts     options
	report   report.Report
	maze     *maze.Maze
	path     map[maze.Point]bool
	explored map[maze.Point]bool
	h        search.Heuristic[maze.Point]
}

func newScene(r report.Report, opts ...Option) (*scene, error) {
	o := options{cellSize: DefaultCellSize, solution: true}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := r.Maze()
	if err != nil {
		return nil, err
	}
	h, err := m.Heuristic(r.Heuristic)
	if err != nil {
		return nil, err
	}

	s := &scene{
		opts:     o,
		report:   r,
		maze:     m,
		path:     make(map[maze.Point]bool, len(r.Path)),
		explored: make(map[maze.Point]bool, len(r.Explored)),
		h:        h,
	}
	for _, st := range r.Path {
		s.path[st.Point()] = true
	}
	for _, p := range r.Explored {
		s.explored[p] = true
	}
	return s, nil
}

// kind classifies a cell. Start and goal win over the path, which wins over
// the explored set.
func (s *scene) kind(p maze.Point) cellKind {
	switch {
	case s.maze.Wall(p):
		return cellWall
	case p == s.maze.Start():
		return cellStart
	case p == s.maze.Goal():
		return cellGoal
	case s.opts.solution && s.path[p]:
		return cellPath
	case s.opts.explored && s.explored[p]:
		return cellExplored
	}
	return cellOpen
}

// label returns the heuristic label for an unmarked open cell, if enabled.
func (s *scene) label(p maze.Point) (string, bool) {
	if !s.opts.heuristic || s.kind(p) != cellOpen {
		return "", false
	}
	return formatCost(s.h(p)), true
}

func formatCost(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
