package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/report"
	"github.com/matzehuels/mazesearch/pkg/search"
)

// Comparison is one algorithm's run in a Compare.
type Comparison struct {
	Algorithm search.Algorithm
	Report    report.Report
	Duration  time.Duration
}

// Compare solves the maze in opts once per algorithm, concurrently, and
// returns the runs in the order of algs. An empty algs means every
// algorithm. opts.Heuristic applies to the informed ones.
//
// Compare bypasses the cache: its purpose is to time the searches. An
// unreachable goal is a result, not an error; the reports show Found false.
func (r *Runner) Compare(ctx context.Context, opts Options, algs []search.Algorithm) ([]Comparison, error) {
	heuristic := opts.Heuristic
	if err := opts.ValidateForSolve(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	if len(algs) == 0 {
		algs = search.Algorithms
	}
	for _, alg := range algs {
		if !alg.Valid() {
			return nil, errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %q", alg)
		}
	}

	m, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	out := make([]Comparison, len(algs))
	g, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		o := opts
		o.Algorithm = string(alg)
		o.Heuristic = heuristic
		if err := o.ValidateForSolve(); err != nil {
			return nil, err
		}

		g.Go(func() error {
			start := time.Now()
			rep, err := Solve(gctx, m, o)
			if err != nil && !errs.Is(err, errs.ErrCodeNoSolution) {
				return fmt.Errorf("%s: %w", alg, err)
			}
			out[i] = Comparison{
				Algorithm: alg,
				Report:    rep,
				Duration:  time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range out {
		r.Logger.Debug("compared",
			"algorithm", c.Algorithm,
			"found", c.Report.Found,
			"path", c.Report.Len(),
			"explored", len(c.Report.Explored),
			"duration", c.Duration)
	}
	return out, nil
}
