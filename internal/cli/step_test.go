package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/pipeline"
	"github.com/matzehuels/mazesearch/pkg/search"
)

func newTestStepModel(t *testing.T, text, algorithm string) StepModel {
	t.Helper()
	opts := pipeline.Options{Maze: text, Algorithm: algorithm}
	if err := opts.ValidateForSolve(); err != nil {
		t.Fatalf("ValidateForSolve: %v", err)
	}
	m, err := maze.ParseString(text)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	model, err := newStepModel(m, opts, time.Millisecond)
	if err != nil {
		t.Fatalf("newStepModel: %v", err)
	}
	return model
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m StepModel, msg tea.Msg) (StepModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(StepModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestStepModelSingleSteps(t *testing.T) {
	m := newTestStepModel(t, smallMaze, "bfs")

	m, _ = update(t, m, key(" "))
	if m.Searcher.Steps() != 1 {
		t.Fatalf("steps = %d, want 1", m.Searcher.Steps())
	}
	if m.Last.Node == nil || m.Last.Node.State() != m.Maze.Start() {
		t.Errorf("first step should remove the start node, got %+v", m.Last)
	}

	m, _ = update(t, m, key("n"))
	if m.Searcher.Steps() != 2 {
		t.Errorf("steps = %d, want 2", m.Searcher.Steps())
	}
}

func TestStepModelRunToEnd(t *testing.T) {
	m := newTestStepModel(t, smallMaze, "bfs")

	m, _ = update(t, m, key("e"))
	if !m.Searcher.Done() {
		t.Fatal("search should be done")
	}
	res := m.Searcher.Result()
	if !res.Found || res.Len() != 4 || len(res.Explored) != 5 {
		t.Errorf("found=%v len=%d explored=%d, want true 4 5", res.Found, res.Len(), len(res.Explored))
	}

	view := m.View()
	if !strings.Contains(view, "path 4") {
		t.Errorf("view missing path length:\n%s", view)
	}
	if !strings.Contains(view, "Breadth-First") {
		t.Errorf("view missing algorithm title:\n%s", view)
	}
}

func TestStepModelExhausted(t *testing.T) {
	m := newTestStepModel(t, walledOffMaze, "dfs")

	m, _ = update(t, m, key("e"))
	if m.Searcher.Status() != search.StatusExhausted {
		t.Fatalf("status = %s, want exhausted", m.Searcher.Status())
	}
	if !strings.Contains(m.View(), "no path") {
		t.Errorf("view should report no path:\n%s", m.View())
	}
}

func TestStepModelReset(t *testing.T) {
	m := newTestStepModel(t, smallMaze, "astar")

	m, _ = update(t, m, key("e"))
	m, _ = update(t, m, key("r"))
	if m.Searcher.Steps() != 0 || m.Searcher.Done() {
		t.Errorf("reset left steps=%d done=%v", m.Searcher.Steps(), m.Searcher.Done())
	}
	if m.Last.Node != nil {
		t.Error("reset should clear the last event")
	}
}

func TestStepModelPlayPause(t *testing.T) {
	m := newTestStepModel(t, smallMaze, "bfs")

	m, cmd := update(t, m, key("p"))
	if !m.Playing || cmd == nil {
		t.Fatalf("playing=%v cmd=%v, want playing with a tick", m.Playing, cmd)
	}

	m, cmd = update(t, m, tickMsg(time.Now()))
	if m.Searcher.Steps() != 1 || cmd == nil {
		t.Errorf("tick: steps=%d cmd=%v, want one step and another tick", m.Searcher.Steps(), cmd)
	}

	m, _ = update(t, m, key("p"))
	if m.Playing {
		t.Fatal("second p should pause")
	}
	m, cmd = update(t, m, tickMsg(time.Now()))
	if m.Searcher.Steps() != 1 || cmd != nil {
		t.Errorf("tick while paused advanced the search")
	}
}

func TestStepModelPlayStopsWhenDone(t *testing.T) {
	m := newTestStepModel(t, smallMaze, "bfs")
	m, _ = update(t, m, key("p"))

	var cmd tea.Cmd
	for i := 0; i < 20 && m.Playing; i++ {
		m, cmd = update(t, m, tickMsg(time.Now()))
	}
	if m.Playing || cmd != nil {
		t.Error("playback should stop once the search is done")
	}
	if !m.Searcher.Done() {
		t.Error("search should be done")
	}
}

func TestStepModelQuit(t *testing.T) {
	m := newTestStepModel(t, smallMaze, "bfs")

	for _, k := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = key(k)
		}
		_, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestStepModelGrid(t *testing.T) {
	m := newTestStepModel(t, smallMaze, "bfs")
	m, _ = update(t, m, key("e"))

	grid := m.grid()
	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")
	if len(lines) != m.Maze.Height() {
		t.Fatalf("grid has %d rows, want %d", len(lines), m.Maze.Height())
	}
	if !strings.Contains(grid, "A") || !strings.Contains(grid, "B") || !strings.Contains(grid, "*") {
		t.Errorf("grid missing endpoints or path:\n%s", grid)
	}
}
