package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/search"
)

// ErrInconsistent is returned by Validate when a report contradicts itself.
var ErrInconsistent = errors.New("inconsistent report")

// =============================================================================
// Report - Wire Format of One Solve
// =============================================================================

// Report is the canonical serialization of one search over one maze.
// Used for JSON output, API responses, caching and the run store.
//
// A report is self-contained: Grid holds the maze in its text form so that
// any renderer can redraw the run without the original file.
type Report struct {
	ID        string       `json:"id,omitempty" bson:"_id,omitempty"`
	Algorithm string       `json:"algorithm" bson:"algorithm"`
	Heuristic string       `json:"heuristic,omitempty" bson:"heuristic,omitempty"`
	Found     bool         `json:"found" bson:"found"`
	Width     int          `json:"width" bson:"width"`
	Height    int          `json:"height" bson:"height"`
	Start     maze.Point   `json:"start" bson:"start"`
	Goal      maze.Point   `json:"goal" bson:"goal"`
	Path      []Step       `json:"path" bson:"path"`
	Cost      float64      `json:"cost" bson:"cost"`
	Explored  []maze.Point `json:"explored" bson:"explored"`
	Removed   int          `json:"removed" bson:"removed"`
	Grid      string       `json:"maze" bson:"maze"`
	CreatedAt time.Time    `json:"created_at,omitzero" bson:"created_at,omitempty"`
}

// Step is one move of the solution path: the cell entered and the action
// that entered it.
type Step struct {
	Row    int         `json:"row" bson:"row"`
	Col    int         `json:"col" bson:"col"`
	Action maze.Action `json:"action" bson:"action"`
}

// Point returns the cell the step ends on.
func (s Step) Point() maze.Point { return maze.Point{Row: s.Row, Col: s.Col} }

// =============================================================================
// Result → Report Conversion
// =============================================================================

// FromResult converts a finished search over m into a report. heuristic
// names the estimator used, and is dropped for uninformed algorithms.
// Slices are always non-nil so that the JSON carries [] rather than null.
func FromResult(m *maze.Maze, res search.Result[maze.Point, maze.Action], heuristic string) Report {
	if !res.Algorithm.Informed() {
		heuristic = ""
	}

	path := make([]Step, len(res.Path))
	for i, st := range res.Path {
		path[i] = Step{Row: st.State.Row, Col: st.State.Col, Action: st.Action}
	}
	explored := make([]maze.Point, len(res.Explored))
	copy(explored, res.Explored)

	return Report{
		Algorithm: res.Algorithm.String(),
		Heuristic: heuristic,
		Found:     res.Found,
		Width:     m.Width(),
		Height:    m.Height(),
		Start:     m.Start(),
		Goal:      m.Goal(),
		Path:      path,
		Cost:      res.PathCost,
		Explored:  explored,
		Removed:   res.Removed,
		Grid:      m.String(),
	}
}

// =============================================================================
// Accessors
// =============================================================================

// Len returns the number of moves on the solution path.
func (r *Report) Len() int { return len(r.Path) }

// Actions returns the actions along the path.
func (r *Report) Actions() []maze.Action {
	out := make([]maze.Action, len(r.Path))
	for i, st := range r.Path {
		out[i] = st.Action
	}
	return out
}

// Cells returns the start followed by every cell on the path, or nil when no
// solution was found.
func (r *Report) Cells() []maze.Point {
	if !r.Found {
		return nil
	}
	out := make([]maze.Point, 0, len(r.Path)+1)
	out = append(out, r.Start)
	for _, st := range r.Path {
		out = append(out, st.Point())
	}
	return out
}

// Maze parses the embedded grid.
func (r *Report) Maze() (*maze.Maze, error) {
	m, err := maze.ParseString(r.Grid)
	if err != nil {
		return nil, fmt.Errorf("report maze: %w", err)
	}
	return m, nil
}

// Validate checks that the report is internally consistent: the grid parses
// and matches the recorded dimensions and endpoints, and a reported solution
// replays from the start to the goal.
func (r *Report) Validate() error {
	m, err := r.Maze()
	if err != nil {
		return err
	}
	if m.Width() != r.Width || m.Height() != r.Height {
		return fmt.Errorf("%w: grid is %dx%d, report says %dx%d", ErrInconsistent, m.Width(), m.Height(), r.Width, r.Height)
	}
	if m.Start() != r.Start || m.Goal() != r.Goal {
		return fmt.Errorf("%w: endpoints %s→%s do not match grid", ErrInconsistent, r.Start, r.Goal)
	}
	if !r.Found {
		if len(r.Path) > 0 {
			return fmt.Errorf("%w: path present without a solution", ErrInconsistent)
		}
		return nil
	}

	cur := m.Start()
	for i, st := range r.Path {
		next, ok := m.Apply(cur, st.Action)
		if !ok || next != st.Point() {
			return fmt.Errorf("%w: step %d (%s from %s) does not reach %s", ErrInconsistent, i, st.Action, cur, st.Point())
		}
		cur = next
	}
	if cur != m.Goal() {
		return fmt.Errorf("%w: path ends at %s, not the goal %s", ErrInconsistent, cur, m.Goal())
	}
	return nil
}
