package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazesearch/pkg/cache"
	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/observability"
	"github.com/matzehuels/mazesearch/pkg/render"
	"github.com/matzehuels/mazesearch/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the cache lifetime of reports and artifacts.
	// Zero keeps cache.TTLSolve and cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → solve → render pipeline with caching.
//
// A maze without a path is not a failure of the pipeline: the report and
// its artifacts are still produced, and the returned error carries
// ErrCodeNoSolution (and matches search.ErrNoSolution).
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1+2: Load and solve
	solveStart := time.Now()
	rep, solveHit, solveErr := r.SolveWithCacheInfo(ctx, opts)
	if solveErr != nil && !errs.Is(solveErr, errs.ErrCodeNoSolution) {
		return nil, solveErr
	}
	result.Report = rep
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.Width = rep.Width
	result.Stats.Height = rep.Height
	result.Stats.Explored = len(rep.Explored)
	result.Stats.Removed = rep.Removed
	result.CacheInfo.SolveHit = solveHit

	r.Logger.Info("solved maze",
		"algorithm", rep.Algorithm,
		"found", rep.Found,
		"path", rep.Len(),
		"explored", len(rep.Explored),
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, rep, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, solveErr
}

// SolveWithCacheInfo loads and solves the maze with caching and returns
// cache hit info. Reports without a path are cached too; they come back
// with the same ErrCodeNoSolution error.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, opts Options) (report.Report, bool, error) {
	if err := opts.ValidateForSolve(); err != nil {
		return report.Report{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.SolveKey(cache.HashString(opts.Maze), opts.SolveKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit := r.cacheGet(ctx, cacheKey, cache.KeyTypeSolve); hit {
			if rep, err := report.Unmarshal(data); err == nil {
				return rep, true, outcome(rep)
			}
			r.Logger.Debug("discarding unreadable cached report", "key", cacheKey)
		}
	}

	m, err := Load(ctx, opts)
	if err != nil {
		return report.Report{}, false, err
	}
	r.Logger.Debug("loaded maze", "source", sourceName(opts), "width", m.Width(), "height", m.Height())

	rep, err := Solve(ctx, m, opts)
	if err != nil && !errs.Is(err, errs.ErrCodeNoSolution) {
		return report.Report{}, false, err
	}

	if data, mErr := report.Marshal(rep); mErr == nil {
		r.cacheSet(ctx, cacheKey, cache.KeyTypeSolve, data, cache.TTLSolve)
	}

	return rep, false, err
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, opts Options) (report.Report, error) {
	rep, _, err := r.SolveWithCacheInfo(ctx, opts)
	return rep, err
}

// RenderWithCacheInfo draws rep in every requested format with caching and
// returns whether every artifact came from the cache. Only formats missing
// from the cache are rendered. JSON is the report itself and is never cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, rep report.Report, opts Options) (map[render.Format][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hash, err := reportHash(rep)
	if err != nil {
		return nil, false, fmt.Errorf("hash report for cache key: %w", err)
	}

	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	var missing []render.Format
	for _, f := range opts.RenderFormats() {
		if f == render.FormatJSON {
			missing = append(missing, f)
			continue
		}
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(f))
		if data, hit := r.cacheGet(ctx, key, cache.KeyTypeArtifact); hit {
			artifacts[f] = data
		} else {
			missing = append(missing, f)
		}
	}

	if len(missing) == 0 {
		return artifacts, true, nil
	}

	rendered, err := Render(ctx, rep, missing, opts)
	if err != nil {
		return nil, false, err
	}
	for f, data := range rendered {
		artifacts[f] = data
		if f != render.FormatJSON {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(f))
			r.cacheSet(ctx, key, cache.KeyTypeArtifact, data, cache.TTLArtifact)
		}
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, rep report.Report, opts Options) (map[render.Format][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, rep, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// cacheGet reads key and fires the cache hooks. Read errors count as misses.
func (r *Runner) cacheGet(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// cacheSet writes key and fires the cache hooks. Write errors are logged
// and otherwise ignored; the cache is an optimization.
func (r *Runner) cacheSet(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// reportHash identifies the search outcome of rep. Storage metadata (ID,
// creation time) is excluded so every stored copy of a run shares artifacts.
func reportHash(rep report.Report) (string, error) {
	rep.ID = ""
	rep.CreatedAt = time.Time{}
	data, err := report.Marshal(rep)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
