package maze

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/matzehuels/mazesearch/pkg/search"
)

// ErrUnknownHeuristic is returned by Heuristic for an unregistered name.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Heuristic names.
const (
	HeuristicManhattan = "manhattan"
	HeuristicEuclidean = "euclidean"
	HeuristicZero      = "zero"
)

// DefaultHeuristic is used when no heuristic is named.
const DefaultHeuristic = HeuristicManhattan

// heuristics maps names to estimators. Every entry is admissible on a
// 4-connected grid with unit step cost.
var heuristics = map[string]func(m *Maze) search.Heuristic[Point]{
	HeuristicManhattan: func(m *Maze) search.Heuristic[Point] { return m.Manhattan },
	HeuristicEuclidean: func(m *Maze) search.Heuristic[Point] { return m.Euclidean },
	HeuristicZero:      func(*Maze) search.Heuristic[Point] { return Zero },
}

// Heuristic returns the named distance-to-goal estimator for m.
// The empty name selects DefaultHeuristic.
func (m *Maze) Heuristic(name string) (search.Heuristic[Point], error) {
	if name == "" {
		name = DefaultHeuristic
	}
	build, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownHeuristic, name, joinNames())
	}
	return build(m), nil
}

// ValidateHeuristic reports whether name is registered. The empty name is
// valid and means DefaultHeuristic.
func ValidateHeuristic(name string) error {
	if _, ok := heuristics[name]; ok || name == "" {
		return nil
	}
	return fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownHeuristic, name, joinNames())
}

// HeuristicNames returns the registered heuristic names, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for name := range heuristics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func joinNames() string { return strings.Join(HeuristicNames(), ", ") }

// Manhattan returns |Δrow| + |Δcol| between p and the goal.
func (m *Maze) Manhattan(p Point) float64 {
	return float64(abs(p.Row-m.goal.Row) + abs(p.Col-m.goal.Col))
}

// Euclidean returns the straight-line distance between p and the goal.
func (m *Maze) Euclidean(p Point) float64 {
	return math.Hypot(float64(p.Row-m.goal.Row), float64(p.Col-m.goal.Col))
}

// Zero estimates nothing; with it A* degenerates to uniform-cost search.
func Zero(Point) float64 { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
