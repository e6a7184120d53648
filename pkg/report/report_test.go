package report

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/search"
)

func solved(t *testing.T, src string, alg search.Algorithm) (*maze.Maze, Report) {
	t.Helper()
	m, err := maze.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	var h search.Heuristic[maze.Point]
	if alg.Informed() {
		h = m.Manhattan
	}
	res, err := search.Solve[maze.Point, maze.Action](m, alg, h)
	if err != nil && !errors.Is(err, search.ErrNoSolution) {
		t.Fatal(err)
	}
	return m, FromResult(m, res, maze.HeuristicManhattan)
}

func TestFromResult(t *testing.T) {
	m, r := solved(t, "A  B\n", search.AStar)

	if r.Algorithm != "astar" || r.Heuristic != "manhattan" {
		t.Errorf("algorithm/heuristic = %q/%q", r.Algorithm, r.Heuristic)
	}
	if !r.Found || r.Len() != 3 || r.Cost != 3 {
		t.Errorf("found=%v len=%d cost=%v", r.Found, r.Len(), r.Cost)
	}
	if r.Width != 4 || r.Height != 1 || r.Start != m.Start() || r.Goal != m.Goal() {
		t.Errorf("geometry = %dx%d %v→%v", r.Width, r.Height, r.Start, r.Goal)
	}
	if want := []maze.Action{maze.Right, maze.Right, maze.Right}; !reflect.DeepEqual(r.Actions(), want) {
		t.Errorf("Actions() = %v", r.Actions())
	}
	if got := r.Cells(); len(got) != 4 || got[0] != m.Start() || got[3] != m.Goal() {
		t.Errorf("Cells() = %v", got)
	}
	if r.Grid != m.String() {
		t.Errorf("Grid = %q", r.Grid)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestFromResultDropsHeuristicForUninformed(t *testing.T) {
	_, r := solved(t, "A  B\n", search.BFS)
	if r.Heuristic != "" {
		t.Errorf("Heuristic = %q for BFS", r.Heuristic)
	}
}

func TestFromResultNoSolution(t *testing.T) {
	_, r := solved(t, "A#B\n", search.DFS)
	if r.Found || r.Cells() != nil {
		t.Errorf("unexpected solution: %+v", r)
	}
	if r.Path == nil || r.Explored == nil {
		t.Error("slices must be non-nil for stable JSON")
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	data, err := Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"path": []`) {
		t.Errorf("empty path not encoded as []:\n%s", data)
	}
}

func TestJSONFieldNames(t *testing.T) {
	_, r := solved(t, "A B\n", search.BFS)
	r.ID = "run-1"

	data, err := Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "algorithm", "found", "width", "height", "start", "goal", "path", "cost", "explored", "removed", "maze"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if _, ok := raw["created_at"]; ok {
		t.Error("zero created_at should be omitted")
	}
	step := raw["path"].([]any)[0].(map[string]any)
	if step["action"] != "right" || step["row"] != 0.0 || step["col"] != 1.0 {
		t.Errorf("path[0] = %v", step)
	}
}

func TestFileRoundTrip(t *testing.T) {
	_, r := solved(t, "A # \n  #B\n    \n", search.Greedy)
	path := filepath.Join(t.TempDir(), "run.json")

	if err := WriteFile(r, path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Errorf("round trip changed the report:\n got %+v\nwant %+v", got, r)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"found": "yes"}`)); err == nil {
		t.Error("expected decode error")
	}
}

func TestValidateDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Report)
	}{
		{"wrong width", func(r *Report) { r.Width++ }},
		{"wrong goal", func(r *Report) { r.Goal = maze.Point{Row: 0, Col: 1} }},
		{"illegal step", func(r *Report) { r.Path[0].Action = maze.Up }},
		{"short path", func(r *Report) { r.Path = r.Path[:1] }},
		{"path without solution", func(r *Report) { r.Found = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := solved(t, "A  B\n", search.BFS)
			tt.mutate(&r)
			if err := r.Validate(); !errors.Is(err, ErrInconsistent) {
				t.Errorf("Validate() = %v, want ErrInconsistent", err)
			}
		})
	}

	_, r := solved(t, "A  B\n", search.BFS)
	r.Grid = "###\n"
	if err := r.Validate(); !errors.Is(err, maze.ErrInvalid) {
		t.Errorf("Validate() with broken grid = %v, want maze.ErrInvalid", err)
	}
}
