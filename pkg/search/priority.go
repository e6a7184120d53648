package search

import "container/heap"

// priorityItem is a heap entry. seq records insertion order and breaks ties
// between equal priorities, oldest first. index is the item's position in
// the heap, kept current by Swap, Push and Pop so heap.Fix can find it.
type priorityItem[S comparable, A any] struct {
	node     *Node[S, A]
	priority float64
	seq      uint64
	index    int
}

type priorityQueue[S comparable, A any] []*priorityItem[S, A]

func (q priorityQueue[S, A]) Len() int { return len(q) }

func (q priorityQueue[S, A]) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q priorityQueue[S, A]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *priorityQueue[S, A]) Push(x any) {
	item := x.(*priorityItem[S, A])
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *priorityQueue[S, A]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// priorityFrontier removes the node with the lowest priority, as computed by
// a policy function at insertion time.
type priorityFrontier[S comparable, A any] struct {
	queue    priorityQueue[S, A]
	index    stateIndex[S]
	items    map[S]*priorityItem[S, A] // most recently added item per state
	next     uint64
	priority func(*Node[S, A]) float64
}

func newPriorityFrontier[S comparable, A any](priority func(*Node[S, A]) float64) priorityFrontier[S, A] {
	return priorityFrontier[S, A]{
		index:    make(stateIndex[S]),
		items:    make(map[S]*priorityItem[S, A]),
		priority: priority,
	}
}

func (f *priorityFrontier[S, A]) Add(n *Node[S, A]) {
	item := &priorityItem[S, A]{
		node:     n,
		priority: f.priority(n),
		seq:      f.next,
	}
	heap.Push(&f.queue, item)
	f.next++
	f.index.add(n.state)
	f.items[n.state] = item
}

func (f *priorityFrontier[S, A]) Empty() bool { return len(f.queue) == 0 }

func (f *priorityFrontier[S, A]) Len() int { return len(f.queue) }

func (f *priorityFrontier[S, A]) ContainsState(s S) bool { return f.index.contains(s) }

func (f *priorityFrontier[S, A]) RemoveNext() (*Node[S, A], error) {
	if f.Empty() {
		return nil, ErrFrontierEmpty
	}
	item := heap.Pop(&f.queue).(*priorityItem[S, A])
	f.index.remove(item.node.state)
	if f.items[item.node.state] == item {
		delete(f.items, item.node.state)
	}
	return item.node, nil
}

// States returns resident states in heap order, not removal order.
func (f *priorityFrontier[S, A]) States() []S {
	out := make([]S, 0, len(f.queue))
	for _, item := range f.queue {
		out = append(out, item.node.state)
	}
	return out
}

// GreedyFrontier removes the node whose state has the smallest heuristic
// estimate to the goal.
type GreedyFrontier[S comparable, A any] struct {
	priorityFrontier[S, A]
}

// NewGreedyFrontier creates a greedy best-first frontier ordered by h.
func NewGreedyFrontier[S comparable, A any](h Heuristic[S]) *GreedyFrontier[S, A] {
	return &GreedyFrontier[S, A]{newPriorityFrontier(func(n *Node[S, A]) float64 {
		return h(n.state)
	})}
}

// AStarFrontier removes the node with the smallest path cost plus heuristic
// estimate.
type AStarFrontier[S comparable, A any] struct {
	priorityFrontier[S, A]
}

// NewAStarFrontier creates an A* frontier ordered by g(n) + h(n).
func NewAStarFrontier[S comparable, A any](h Heuristic[S]) *AStarFrontier[S, A] {
	return &AStarFrontier[S, A]{newPriorityFrontier(func(n *Node[S, A]) float64 {
		return n.pathCost + h(n.state)
	})}
}

// Improve replaces the resident node for n's state with n when n reached it
// more cheaply, and moves it up the queue. The replaced node keeps its
// insertion sequence for tie-breaking.
func (f *AStarFrontier[S, A]) Improve(n *Node[S, A]) bool {
	item, ok := f.items[n.state]
	if !ok || n.pathCost >= item.node.pathCost {
		return false
	}
	item.node = n
	item.priority = f.priority(n)
	heap.Fix(&f.queue, item.index)
	return true
}

// Ensure all variants implement Frontier.
var (
	_ Frontier[int, string] = (*StackFrontier[int, string])(nil)
	_ Frontier[int, string] = (*QueueFrontier[int, string])(nil)
	_ Frontier[int, string] = (*GreedyFrontier[int, string])(nil)
	_ Frontier[int, string] = (*AStarFrontier[int, string])(nil)

	_ Improver[int, string] = (*AStarFrontier[int, string])(nil)
)
