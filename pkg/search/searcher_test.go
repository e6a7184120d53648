package search_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/search"
)

func TestSearcherStepping(t *testing.T) {
	m := mustParse(t, gapMaze)
	s, err := search.NewSearcher[maze.Point, maze.Action](m, search.BFS, nil)
	if err != nil {
		t.Fatal(err)
	}

	if s.Status() != search.StatusInitialized || s.Done() {
		t.Fatalf("initial status = %s", s.Status())
	}
	if got := s.FrontierStates(); !reflect.DeepEqual(got, []maze.Point{m.Start()}) {
		t.Fatalf("initial frontier = %v, want just the start", got)
	}

	ev, err := s.Step()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Step != 1 || ev.Node.State() != m.Start() || ev.Goal {
		t.Errorf("first event = %+v", ev)
	}
	if want := []maze.Point{{Row: 1, Col: 0}}; !reflect.DeepEqual(ev.Added, want) {
		t.Errorf("Added = %v, want %v", ev.Added, want)
	}
	if ev.Status != search.StatusExpanding {
		t.Errorf("Status = %s, want expanding", ev.Status)
	}
	if !s.IsExplored(m.Start()) {
		t.Error("start not marked explored after expansion")
	}

	for !s.Done() {
		if ev, err = s.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if !ev.Goal || ev.Node.State() != m.Goal() || ev.Status != search.StatusGoalFound {
		t.Errorf("final event = %+v", ev)
	}
	if s.Steps() != 5 {
		t.Errorf("Steps() = %d, want 5", s.Steps())
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}

	// Stepping a finished search is a no-op.
	again, err := s.Step()
	if err != nil {
		t.Fatal(err)
	}
	if again.Node != nil || again.Status != search.StatusGoalFound || again.Step != 5 {
		t.Errorf("step after completion = %+v", again)
	}
	if s.Steps() != 5 {
		t.Errorf("Steps() changed after completion: %d", s.Steps())
	}

	res := s.Result()
	if !res.Found || res.Len() != 4 || res.Algorithm != search.BFS {
		t.Errorf("Result() = %+v", res)
	}
}

func TestSearcherExhausts(t *testing.T) {
	m := mustParse(t, walledOffMaze)
	s, err := search.NewSearcher[maze.Point, maze.Action](m, search.DFS, nil)
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.Run()
	if !errors.Is(err, search.ErrNoSolution) {
		t.Fatalf("Run() error = %v, want ErrNoSolution", err)
	}
	if s.Status() != search.StatusExhausted {
		t.Errorf("Status = %s, want exhausted", s.Status())
	}
	if len(s.FrontierStates()) != 0 {
		t.Errorf("frontier not empty: %v", s.FrontierStates())
	}
	if res.Found || len(res.Explored) != 3 {
		t.Errorf("Result = %+v", res)
	}

	// Run is idempotent once terminal.
	res2, err2 := s.Run()
	if !errors.Is(err2, search.ErrNoSolution) || !reflect.DeepEqual(res, res2) {
		t.Errorf("second Run() = %+v, %v", res2, err2)
	}
}

// guardFrontier fails the test if the engine ever adds a state that was
// already expanded or is still waiting on the frontier.
type guardFrontier struct {
	search.Frontier[maze.Point, maze.Action]
	t        *testing.T
	searcher *search.Searcher[maze.Point, maze.Action]
	adds     int
}

func (g *guardFrontier) Add(n *search.Node[maze.Point, maze.Action]) {
	if g.searcher != nil {
		if g.searcher.IsExplored(n.State()) {
			g.t.Errorf("explored state %v re-added to the frontier", n.State())
		}
		if g.Frontier.ContainsState(n.State()) {
			g.t.Errorf("state %v added while already frontier-resident", n.State())
		}
	}
	g.adds++
	g.Frontier.Add(n)
}

func TestSearcherNeverReaddsStates(t *testing.T) {
	m := mustParse(t, loopMaze)
	frontiers := map[string]search.Frontier[maze.Point, maze.Action]{
		"stack":  search.NewStackFrontier[maze.Point, maze.Action](),
		"queue":  search.NewQueueFrontier[maze.Point, maze.Action](),
		"greedy": search.NewGreedyFrontier[maze.Point, maze.Action](m.Manhattan),
		"astar":  search.NewAStarFrontier[maze.Point, maze.Action](m.Manhattan),
	}

	for name, f := range frontiers {
		t.Run(name, func(t *testing.T) {
			g := &guardFrontier{Frontier: f, t: t}
			s := search.NewSearcherWithFrontier[maze.Point, maze.Action](m, g)
			g.searcher = s

			res, err := s.Run()
			if err != nil {
				t.Fatal(err)
			}
			assertValidPath(t, m, res)
			if s.Algorithm() != "" {
				t.Errorf("Algorithm() = %q for a custom frontier", s.Algorithm())
			}
			// Every open cell is generated at most once.
			if open := len(m.OpenCells()); g.adds > open {
				t.Errorf("%d frontier insertions for %d open cells", g.adds, open)
			}
		})
	}
}

// weighted is a tiny graph whose edges have different costs.
type weighted struct {
	edges map[string][]search.Successor[string, string]
	costs map[[2]string]float64
}

func (w weighted) Start() string        { return "s" }
func (w weighted) IsGoal(s string) bool { return s == "g" }

func (w weighted) Neighbors(s string) []search.Successor[string, string] { return w.edges[s] }

func (w weighted) StepCost(from, _, to string) float64 { return w.costs[[2]string{from, to}] }

var _ search.StepCoster[string, string] = weighted{}

func newWeighted() weighted {
	succ := func(to string) search.Successor[string, string] {
		return search.Successor[string, string]{Action: "to-" + to, State: to}
	}
	return weighted{
		edges: map[string][]search.Successor[string, string]{
			"s": {succ("b"), succ("a")},
			"a": {succ("g")},
			"b": {succ("g")},
		},
		costs: map[[2]string]float64{
			{"s", "a"}: 1,
			{"s", "b"}: 4,
			{"a", "g"}: 1,
			{"b", "g"}: 1,
		},
	}
}

func TestSolveUsesStepCosts(t *testing.T) {
	p := newWeighted()
	zero := func(string) float64 { return 0 }

	bfs, err := search.Solve[string, string](p, search.BFS, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := bfs.States(); !reflect.DeepEqual(got, []string{"s", "b", "g"}) || bfs.PathCost != 5 {
		t.Errorf("BFS = %v (cost %v), want [s b g] (cost 5)", got, bfs.PathCost)
	}

	astar, err := search.Solve[string, string](p, search.AStar, zero)
	if err != nil {
		t.Fatal(err)
	}
	if got := astar.States(); !reflect.DeepEqual(got, []string{"s", "a", "g"}) || astar.PathCost != 2 {
		t.Errorf("A* = %v (cost %v), want [s a g] (cost 2)", got, astar.PathCost)
	}
	if got := astar.Actions(); !reflect.DeepEqual(got, []string{"to-a", "to-g"}) {
		t.Errorf("A* actions = %v", got)
	}
}

// detour reaches c first over an expensive edge, then more cheaply through a.
func detour() weighted {
	succ := func(to string) search.Successor[string, string] {
		return search.Successor[string, string]{Action: "to-" + to, State: to}
	}
	return weighted{
		edges: map[string][]search.Successor[string, string]{
			"s": {succ("c"), succ("a")},
			"a": {succ("c")},
			"c": {succ("g")},
		},
		costs: map[[2]string]float64{
			{"s", "c"}: 4,
			{"s", "a"}: 1,
			{"a", "c"}: 1,
			{"c", "g"}: 1,
		},
	}
}

func TestSearcherLowersFrontierCost(t *testing.T) {
	zero := func(string) float64 { return 0 }
	s, err := search.NewSearcher[string, string](detour(), search.AStar, zero)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Step(); err != nil { // expand s
		t.Fatal(err)
	}
	ev, err := s.Step() // expand a
	if err != nil {
		t.Fatal(err)
	}
	if ev.Node.State() != "a" {
		t.Fatalf("second removal = %s, want a", ev.Node.State())
	}
	if !reflect.DeepEqual(ev.Improved, []string{"c"}) || len(ev.Added) != 0 {
		t.Errorf("Improved = %v, Added = %v, want [c] and nothing added", ev.Improved, ev.Added)
	}

	res, err := s.Run()
	if err != nil {
		t.Fatal(err)
	}
	if got := res.States(); !reflect.DeepEqual(got, []string{"s", "a", "c", "g"}) || res.PathCost != 3 {
		t.Errorf("A* = %v (cost %v), want [s a c g] (cost 3)", got, res.PathCost)
	}
}

func TestSearcherKeepsFirstNodeForUncostedFrontiers(t *testing.T) {
	zero := func(string) float64 { return 0 }
	for _, alg := range []search.Algorithm{search.DFS, search.BFS, search.Greedy} {
		s, err := search.NewSearcher[string, string](detour(), alg, zero)
		if err != nil {
			t.Fatal(err)
		}
		for !s.Done() {
			ev, err := s.Step()
			if err != nil {
				t.Fatal(err)
			}
			if len(ev.Improved) != 0 {
				t.Errorf("%s: Improved = %v", alg, ev.Improved)
			}
		}
		if res := s.Result(); !res.Found {
			t.Errorf("%s: goal not found", alg)
		}
	}
}
