// Package search implements single-source, single-goal graph search as one
// engine parameterized by a frontier ordering policy.
//
// # Overview
//
// Depth-first, breadth-first, greedy best-first and A* search differ only in
// the order in which generated nodes are taken off the frontier. This package
// expresses all four as a single expand/insert/remove loop ([Searcher]) over
// an injected [Frontier]:
//
//   - [StackFrontier]: last-in-first-out ([DFS])
//   - [QueueFrontier]: first-in-first-out ([BFS])
//   - [GreedyFrontier]: minimum heuristic estimate ([Greedy])
//   - [AStarFrontier]: minimum path cost plus heuristic estimate ([AStar])
//
// Ties between equal priorities are broken by insertion order, so a search is
// fully deterministic given a deterministic [Problem].
//
// A state already waiting on the frontier is not added again. Frontiers that
// order by path cost implement [Improver] instead: when a cheaper path to a
// resident state turns up, its node is replaced and moved up the queue. This
// keeps A* optimal with a consistent heuristic on graphs with cycles.
//
// # Problems
//
// A [Problem] exposes a start state, a goal test and a successor function.
// States are any comparable type; actions are any type. Step costs default to
// 1; a problem that implements [StepCoster] supplies its own.
//
// # Usage
//
// Run a search to completion:
//
//	res, err := search.Solve[maze.Point, maze.Action](m, search.AStar, m.Manhattan)
//	if errors.Is(err, search.ErrNoSolution) {
//	    fmt.Println("no path; explored", len(res.Explored), "states")
//	}
//
// Or drive it one frontier removal at a time:
//
//	s, _ := search.NewSearcher[maze.Point, maze.Action](m, search.BFS, nil)
//	for !s.Done() {
//	    ev, _ := s.Step()
//	    fmt.Println(ev.Node.State())
//	}
//
// # Concurrency
//
// A Searcher owns its frontier and explored set and is not safe for
// concurrent use. Independent searches share nothing and may run in parallel.
package search
