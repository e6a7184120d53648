package search

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrNoSolution is returned when the frontier is exhausted without reaching
	// a goal. It is an expected outcome: the accompanying Result still carries
	// the explored states and removal count.
	ErrNoSolution = errors.New("no solution")

	// ErrMissingHeuristic is returned before any search work when an informed
	// algorithm (greedy, astar) is configured without a heuristic.
	ErrMissingHeuristic = errors.New("heuristic required")

	// ErrFrontierEmpty is returned by Frontier.RemoveNext on an empty frontier.
	// The engine checks Empty first, so seeing it from Solve indicates a bug.
	ErrFrontierEmpty = errors.New("empty frontier")

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
