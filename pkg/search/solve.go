package search

// Step is one move on a solution path: the action taken and the state it led to.
type Step[S comparable, A any] struct {
	State  S
	Action A
}

// Result is the outcome of one search.
type Result[S comparable, A any] struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Found is true when a goal state was reached.
	Found bool

	// Start is the start state of the problem.
	Start S

	// Path lists the moves from Start to the goal, excluding Start itself.
	// It is empty when Start is a goal or when no solution exists.
	Path []Step[S, A]

	// PathCost is the cumulative step cost of Path.
	PathCost float64

	// Explored lists every expanded state once, in expansion order.
	Explored []S

	// Removed counts frontier removals, including the goal node.
	Removed int
}

// Solve runs a search of p to completion with the frontier policy of alg.
//
// h is required for Greedy and AStar and ignored otherwise; a missing
// heuristic fails with ErrMissingHeuristic before any node is generated. If
// the frontier runs dry the returned error is ErrNoSolution and the result
// still reports what was explored.
func Solve[S comparable, A any](p Problem[S, A], alg Algorithm, h Heuristic[S]) (Result[S, A], error) {
	s, err := NewSearcher(p, alg, h)
	if err != nil {
		return Result[S, A]{Algorithm: alg}, err
	}
	return s.Run()
}

// Len returns the number of moves on the solution path.
func (r Result[S, A]) Len() int { return len(r.Path) }

// States returns Start followed by every state on the path. It returns nil
// when no solution was found.
func (r Result[S, A]) States() []S {
	if !r.Found {
		return nil
	}
	out := make([]S, 0, len(r.Path)+1)
	out = append(out, r.Start)
	for _, st := range r.Path {
		out = append(out, st.State)
	}
	return out
}

// Actions returns the actions along the path.
func (r Result[S, A]) Actions() []A {
	out := make([]A, len(r.Path))
	for i, st := range r.Path {
		out[i] = st.Action
	}
	return out
}

// Goal returns the final state of the path.
func (r Result[S, A]) Goal() (S, bool) {
	if !r.Found {
		var zero S
		return zero, false
	}
	if len(r.Path) == 0 {
		return r.Start, true
	}
	return r.Path[len(r.Path)-1].State, true
}
