package search_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/search"
)

func ExampleSolve() {
	m, _ := maze.ParseString("" +
		"#####B#\n" +
		"##### #\n" +
		"####  #\n" +
		"#### ##\n" +
		"     ##\n" +
		"A######\n")

	res, err := search.Solve[maze.Point, maze.Action](m, search.AStar, m.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("moves:", res.Len())
	fmt.Println("explored:", len(res.Explored))
	fmt.Println(res.Actions())
	// Output:
	// moves: 10
	// explored: 10
	// [up right right right right up up right up up]
}

func ExampleSolve_noSolution() {
	m, _ := maze.ParseString("A#B\n")

	res, err := search.Solve[maze.Point, maze.Action](m, search.BFS, nil)
	fmt.Println(errors.Is(err, search.ErrNoSolution))
	fmt.Println("explored:", res.Explored)
	// Output:
	// true
	// explored: [(0,0)]
}

func ExampleSearcher_Step() {
	m, _ := maze.ParseString("A  B\n")

	s, _ := search.NewSearcher[maze.Point, maze.Action](m, search.DFS, nil)
	for !s.Done() {
		ev, _ := s.Step()
		fmt.Printf("step %d: %v goal=%v added=%v\n", ev.Step, ev.Node.State(), ev.Goal, ev.Added)
	}
	fmt.Println(s.Status())
	// Output:
	// step 1: (0,0) goal=false added=[(0,1)]
	// step 2: (0,1) goal=false added=[(0,2)]
	// step 3: (0,2) goal=false added=[(0,3)]
	// step 4: (0,3) goal=true added=[]
	// goal found
}
