package search

import "fmt"

// Successor is one move available from a state.
type Successor[S comparable, A any] struct {
	Action A
	State  S
}

// Problem is the search space consumed by the engine.
//
// Neighbors must return a finite sequence, in a deterministic order, and only
// states that are actually reachable (no walls, nothing out of bounds).
type Problem[S comparable, A any] interface {
	Start() S
	IsGoal(s S) bool
	Neighbors(s S) []Successor[S, A]
}

// StepCoster is implemented by problems whose moves do not all cost 1.
type StepCoster[S comparable, A any] interface {
	StepCost(from S, action A, to S) float64
}

// Status is the lifecycle state of a single search.
type Status int

const (
	StatusInitialized Status = iota // frontier seeded with the start node
	StatusExpanding                 // at least one node removed
	StatusGoalFound                 // terminal: goal node removed
	StatusExhausted                 // terminal: frontier emptied without a goal
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusExpanding:
		return "expanding"
	case StatusGoalFound:
		return "goal found"
	case StatusExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Done reports whether s is terminal.
func (s Status) Done() bool {
	return s == StatusGoalFound || s == StatusExhausted
}

// Event describes what one call to Searcher.Step did.
type Event[S comparable, A any] struct {
	Step   int         // 1-based count of frontier removals so far
	Node   *Node[S, A] // node removed in this step; nil once the search is done
	Goal   bool        // Node satisfied the goal test
	Added  []S         // states pushed onto the frontier by this expansion
	Status Status      // status after the step

	// Improved lists resident states this expansion reached more cheaply.
	// Only cost-ordered frontiers report any.
	Improved []S
}

// Searcher runs the generic expand/insert/remove loop one frontier removal at
// a time. The goal test is applied when a node is removed, not when it is
// generated.
type Searcher[S comparable, A any] struct {
	problem   Problem[S, A]
	algorithm Algorithm
	frontier  Frontier[S, A]
	start     S
	explored  map[S]struct{}
	order     []S
	removed   int
	status    Status
	goal      *Node[S, A]
	stepCost  func(from S, action A, to S) float64
	improver  Improver[S, A] // nil unless the frontier orders by path cost
}

// NewSearcher prepares a search of p using the frontier for alg. It fails
// with ErrMissingHeuristic, before doing any work, when alg is informed and h
// is nil.
func NewSearcher[S comparable, A any](p Problem[S, A], alg Algorithm, h Heuristic[S]) (*Searcher[S, A], error) {
	f, err := NewFrontier[S, A](alg, h)
	if err != nil {
		return nil, err
	}
	s := NewSearcherWithFrontier(p, f)
	s.algorithm = alg
	return s, nil
}

// NewSearcherWithFrontier prepares a search of p over a caller-supplied,
// empty frontier.
func NewSearcherWithFrontier[S comparable, A any](p Problem[S, A], f Frontier[S, A]) *Searcher[S, A] {
	s := &Searcher[S, A]{
		problem:  p,
		frontier: f,
		start:    p.Start(),
		explored: make(map[S]struct{}),
		status:   StatusInitialized,
		stepCost: func(S, A, S) float64 { return 1 },
	}
	if c, ok := p.(StepCoster[S, A]); ok {
		s.stepCost = c.StepCost
	}
	if imp, ok := f.(Improver[S, A]); ok {
		s.improver = imp
	}
	f.Add(newRoot[S, A](s.start))
	return s
}

// Step removes one node from the frontier, tests it against the goal and, if
// it is not the goal, expands it. Calling Step on a finished search returns
// the terminal status again without doing anything.
func (s *Searcher[S, A]) Step() (Event[S, A], error) {
	if s.status.Done() {
		return Event[S, A]{Step: s.removed, Status: s.status}, nil
	}
	if s.frontier.Empty() {
		s.status = StatusExhausted
		return Event[S, A]{Step: s.removed, Status: s.status}, nil
	}

	n, err := s.frontier.RemoveNext()
	if err != nil {
		return Event[S, A]{Step: s.removed, Status: s.status}, fmt.Errorf("frontier invariant violated: %w", err)
	}
	s.removed++
	s.status = StatusExpanding

	if s.problem.IsGoal(n.state) {
		s.goal = n
		s.status = StatusGoalFound
		return Event[S, A]{Step: s.removed, Node: n, Goal: true, Status: s.status}, nil
	}

	s.explored[n.state] = struct{}{}
	s.order = append(s.order, n.state)

	var added, improved []S
	for _, succ := range s.problem.Neighbors(n.state) {
		if _, seen := s.explored[succ.State]; seen {
			continue
		}
		if s.frontier.ContainsState(succ.State) {
			if s.improver == nil {
				continue
			}
			child := newChild(n, succ.Action, succ.State, s.stepCost(n.state, succ.Action, succ.State))
			if s.improver.Improve(child) {
				improved = append(improved, succ.State)
			}
			continue
		}
		child := newChild(n, succ.Action, succ.State, s.stepCost(n.state, succ.Action, succ.State))
		s.frontier.Add(child)
		added = append(added, succ.State)
	}

	return Event[S, A]{Step: s.removed, Node: n, Added: added, Improved: improved, Status: s.status}, nil
}

// Run steps until the search terminates. A search that exhausts its frontier
// returns ErrNoSolution together with the diagnostic result.
func (s *Searcher[S, A]) Run() (Result[S, A], error) {
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			return s.Result(), err
		}
	}
	return s.Result(), s.Err()
}

// Done reports whether the search has terminated.
func (s *Searcher[S, A]) Done() bool { return s.status.Done() }

// Status returns the current lifecycle state.
func (s *Searcher[S, A]) Status() Status { return s.status }

// Algorithm returns the algorithm the searcher was built for, or "" when it
// was given a custom frontier.
func (s *Searcher[S, A]) Algorithm() Algorithm { return s.algorithm }

// Steps returns the number of frontier removals so far.
func (s *Searcher[S, A]) Steps() int { return s.removed }

// Err returns ErrNoSolution once the frontier has been exhausted.
func (s *Searcher[S, A]) Err() error {
	if s.status == StatusExhausted {
		return ErrNoSolution
	}
	return nil
}

// IsExplored reports whether state has already been expanded.
func (s *Searcher[S, A]) IsExplored(state S) bool {
	_, ok := s.explored[state]
	return ok
}

// ExploredStates returns the expanded states in expansion order.
func (s *Searcher[S, A]) ExploredStates() []S {
	return append([]S(nil), s.order...)
}

// FrontierStates returns the states currently waiting on the frontier.
func (s *Searcher[S, A]) FrontierStates() []S {
	return s.frontier.States()
}

// Result snapshots the search. Path and PathCost are set only once the goal
// has been found.
func (s *Searcher[S, A]) Result() Result[S, A] {
	r := Result[S, A]{
		Algorithm: s.algorithm,
		Found:     s.status == StatusGoalFound,
		Start:     s.start,
		Explored:  s.ExploredStates(),
		Removed:   s.removed,
	}
	if s.goal != nil {
		r.Path = s.goal.path()
		r.PathCost = s.goal.pathCost
	}
	return r
}
