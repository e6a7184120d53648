package search

import (
	"fmt"
	"strings"
)

// Algorithm names a frontier ordering policy.
type Algorithm string

// Supported algorithms.
const (
	DFS    Algorithm = "dfs"    // depth-first: stack frontier
	BFS    Algorithm = "bfs"    // breadth-first: queue frontier
	Greedy Algorithm = "greedy" // greedy best-first: min h(n)
	AStar  Algorithm = "astar"  // A*: min g(n) + h(n)
)

// Algorithms lists every supported algorithm in a stable order.
var Algorithms = []Algorithm{DFS, BFS, Greedy, AStar}

// ParseAlgorithm converts a name such as "bfs" or "A*" into an Algorithm.
// Matching is case-insensitive; "a*", "a-star" and "gbfs" are accepted aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "greedy", "gbfs":
		return Greedy, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of: dfs, bfs, greedy, astar)", ErrUnknownAlgorithm, name)
}

// Informed reports whether the algorithm orders its frontier by a heuristic.
func (a Algorithm) Informed() bool {
	return a == Greedy || a == AStar
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case DFS, BFS, Greedy, AStar:
		return true
	}
	return false
}

// String returns the lowercase algorithm name.
func (a Algorithm) String() string { return string(a) }

// Title returns a human-readable name for tables and logs.
func (a Algorithm) Title() string {
	switch a {
	case DFS:
		return "Depth-First"
	case BFS:
		return "Breadth-First"
	case Greedy:
		return "Greedy Best-First"
	case AStar:
		return "A*"
	}
	return string(a)
}
