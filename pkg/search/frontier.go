package search

import "fmt"

// Frontier holds generated but not yet expanded nodes. The order in which
// RemoveNext hands them back is the only thing that distinguishes one search
// algorithm from another.
//
// A Frontier belongs to a single search and is not safe for concurrent use.
type Frontier[S comparable, A any] interface {
	// Add inserts a node. It does not deduplicate; the engine checks
	// ContainsState before adding.
	Add(n *Node[S, A])

	// Empty reports whether no nodes remain.
	Empty() bool

	// Len returns the number of resident nodes.
	Len() int

	// ContainsState reports whether some resident node has state s.
	ContainsState(s S) bool

	// RemoveNext removes and returns the next node according to the
	// frontier's ordering policy, or ErrFrontierEmpty.
	RemoveNext() (*Node[S, A], error)

	// States returns the states of the resident nodes.
	States() []S
}

// Improver is implemented by frontiers whose order depends on path cost.
// The engine offers them every cheaper path it finds to a resident state;
// other frontiers keep the first node generated for a state.
type Improver[S comparable, A any] interface {
	// Improve replaces the resident node for n's state if n is cheaper and
	// reports whether it did.
	Improve(n *Node[S, A]) bool
}

// Heuristic estimates the remaining cost from a state to the goal. Estimates
// must be non-negative; A* returns optimal paths only when the heuristic
// never overestimates.
type Heuristic[S comparable] func(S) float64

// NewFrontier returns the frontier variant for alg. Informed algorithms
// require a non-nil heuristic and fail with ErrMissingHeuristic otherwise;
// uninformed algorithms ignore h.
func NewFrontier[S comparable, A any](alg Algorithm, h Heuristic[S]) (Frontier[S, A], error) {
	switch alg {
	case DFS:
		return NewStackFrontier[S, A](), nil
	case BFS:
		return NewQueueFrontier[S, A](), nil
	case Greedy:
		if h == nil {
			return nil, ErrMissingHeuristic
		}
		return NewGreedyFrontier[S, A](h), nil
	case AStar:
		if h == nil {
			return nil, ErrMissingHeuristic
		}
		return NewAStarFrontier[S, A](h), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// stateIndex counts resident nodes per state so membership is O(1).
type stateIndex[S comparable] map[S]int

func (idx stateIndex[S]) add(s S) { idx[s]++ }

func (idx stateIndex[S]) remove(s S) {
	if idx[s] <= 1 {
		delete(idx, s)
		return
	}
	idx[s]--
}

func (idx stateIndex[S]) contains(s S) bool { return idx[s] > 0 }

// =============================================================================
// Stack (DFS)
// =============================================================================

// StackFrontier removes the most recently added node first.
type StackFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
	index stateIndex[S]
}

// NewStackFrontier creates an empty LIFO frontier.
func NewStackFrontier[S comparable, A any]() *StackFrontier[S, A] {
	return &StackFrontier[S, A]{index: make(stateIndex[S])}
}

func (f *StackFrontier[S, A]) Add(n *Node[S, A]) {
	f.nodes = append(f.nodes, n)
	f.index.add(n.state)
}

func (f *StackFrontier[S, A]) Empty() bool { return len(f.nodes) == 0 }

func (f *StackFrontier[S, A]) Len() int { return len(f.nodes) }

func (f *StackFrontier[S, A]) ContainsState(s S) bool { return f.index.contains(s) }

func (f *StackFrontier[S, A]) RemoveNext() (*Node[S, A], error) {
	if f.Empty() {
		return nil, ErrFrontierEmpty
	}
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	f.index.remove(n.state)
	return n, nil
}

// States returns resident states in removal order (top of the stack first).
func (f *StackFrontier[S, A]) States() []S {
	out := make([]S, 0, len(f.nodes))
	for i := len(f.nodes) - 1; i >= 0; i-- {
		out = append(out, f.nodes[i].state)
	}
	return out
}

// =============================================================================
// Queue (BFS)
// =============================================================================

// QueueFrontier removes the earliest added node first.
type QueueFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
	head  int
	index stateIndex[S]
}

// NewQueueFrontier creates an empty FIFO frontier.
func NewQueueFrontier[S comparable, A any]() *QueueFrontier[S, A] {
	return &QueueFrontier[S, A]{index: make(stateIndex[S])}
}

func (f *QueueFrontier[S, A]) Add(n *Node[S, A]) {
	f.nodes = append(f.nodes, n)
	f.index.add(n.state)
}

func (f *QueueFrontier[S, A]) Empty() bool { return f.Len() == 0 }

func (f *QueueFrontier[S, A]) Len() int { return len(f.nodes) - f.head }

func (f *QueueFrontier[S, A]) ContainsState(s S) bool { return f.index.contains(s) }

func (f *QueueFrontier[S, A]) RemoveNext() (*Node[S, A], error) {
	if f.Empty() {
		return nil, ErrFrontierEmpty
	}
	n := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 32 && f.head*2 >= len(f.nodes) {
		f.nodes = append(f.nodes[:0], f.nodes[f.head:]...)
		f.head = 0
	}
	f.index.remove(n.state)
	return n, nil
}

// States returns resident states in removal order (front of the queue first).
func (f *QueueFrontier[S, A]) States() []S {
	out := make([]S, 0, f.Len())
	for _, n := range f.nodes[f.head:] {
		out = append(out, n.state)
	}
	return out
}
