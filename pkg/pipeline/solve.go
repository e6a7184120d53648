package pipeline

import (
	"context"
	"errors"
	"time"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/observability"
	"github.com/matzehuels/mazesearch/pkg/report"
	"github.com/matzehuels/mazesearch/pkg/search"
)

// Searcher is the steppable engine over a maze.
type Searcher = search.Searcher[maze.Point, maze.Action]

// NewSearcher builds a steppable search of m for the algorithm and
// heuristic in opts. opts must have passed ValidateForSolve.
func NewSearcher(m *maze.Maze, opts Options) (*Searcher, error) {
	alg := opts.SearchAlgorithm()
	var h search.Heuristic[maze.Point]
	if alg.Informed() {
		var err error
		if h, err = m.Heuristic(opts.Heuristic); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidHeuristic, err, "invalid heuristic")
		}
	}
	s, err := search.NewSearcher[maze.Point, maze.Action](m, alg, h)
	if err != nil {
		return nil, classify(err)
	}
	return s, nil
}

// Solve runs the search over m and converts the result to a report. The
// context is checked before every frontier removal.
//
// When the goal is unreachable the report is still returned, with Found
// false and the explored region filled in, together with an
// ErrCodeNoSolution error.
func Solve(ctx context.Context, m *maze.Maze, opts Options) (report.Report, error) {
	s, err := NewSearcher(m, opts)
	if err != nil {
		return report.Report{}, err
	}

	observability.Solve().OnSolveStart(ctx, opts.Algorithm, opts.Heuristic)
	start := time.Now()

	res, err := run(ctx, s)
	rep := report.FromResult(m, res, opts.Heuristic)
	err = classify(err)

	observability.Solve().OnSolveComplete(ctx, opts.Algorithm, rep.Found, len(rep.Explored), time.Since(start), err)
	if err != nil && !errs.Is(err, errs.ErrCodeNoSolution) {
		return report.Report{}, err
	}
	return rep, err
}

// run steps s to completion, stopping early if ctx is done.
func run(ctx context.Context, s *Searcher) (search.Result[maze.Point, maze.Action], error) {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		if _, err := s.Step(); err != nil {
			return s.Result(), err
		}
	}
	return s.Result(), s.Err()
}

// classify maps engine and context errors onto error codes. The original
// error stays in the chain for errors.Is.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, search.ErrNoSolution):
		return errs.Wrap(errs.ErrCodeNoSolution, err, "goal is unreachable from start")
	case errors.Is(err, search.ErrMissingHeuristic):
		return errs.Wrap(errs.ErrCodeMissingHeuristic, err, "informed search needs a heuristic")
	case errors.Is(err, search.ErrUnknownAlgorithm):
		return errs.Wrap(errs.ErrCodeInvalidAlgorithm, err, "invalid algorithm")
	case errors.Is(err, context.DeadlineExceeded):
		return errs.Wrap(errs.ErrCodeTimeout, err, "search timed out")
	case errors.Is(err, context.Canceled):
		return err
	}
	return errs.Wrap(errs.ErrCodeInternal, err, "search failed")
}

// outcome returns the error a finished report implies.
func outcome(rep report.Report) error {
	if rep.Found {
		return nil
	}
	return classify(search.ErrNoSolution)
}
