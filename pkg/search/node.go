package search

// Node is one vertex of the search tree: a state plus the path that reached it.
//
// Nodes are created by the engine only and never change afterwards. The
// parent pointer is a back-reference used for path reconstruction; nodes
// never reference their children.
type Node[S comparable, A any] struct {
	state    S
	parent   *Node[S, A]
	action   A
	pathCost float64
	depth    int
}

func newRoot[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{state: state}
}

func newChild[S comparable, A any](parent *Node[S, A], action A, state S, stepCost float64) *Node[S, A] {
	return &Node[S, A]{
		state:    state,
		parent:   parent,
		action:   action,
		pathCost: parent.pathCost + stepCost,
		depth:    parent.depth + 1,
	}
}

// State returns the state this node represents.
func (n *Node[S, A]) State() S { return n.state }

// Parent returns the node this one was generated from, or nil for the root.
func (n *Node[S, A]) Parent() *Node[S, A] { return n.parent }

// Action returns the move taken from the parent. It is the zero value for the root.
func (n *Node[S, A]) Action() A { return n.action }

// PathCost returns the cumulative step cost from the start state.
func (n *Node[S, A]) PathCost() float64 { return n.pathCost }

// Depth returns the number of actions between the root and this node.
func (n *Node[S, A]) Depth() int { return n.depth }

// IsRoot reports whether n is the start node.
func (n *Node[S, A]) IsRoot() bool { return n.parent == nil }

// path walks the parent chain and returns the steps from the root to n,
// excluding the root itself.
func (n *Node[S, A]) path() []Step[S, A] {
	steps := make([]Step[S, A], n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		steps[cur.depth-1] = Step[S, A]{State: cur.state, Action: cur.action}
	}
	return steps
}
