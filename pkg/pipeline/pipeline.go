// Package pipeline provides the load → solve → render pipeline for mazesearch.
//
// The CLI and the HTTP API both run searches through this package so that
// validation, defaults, caching and error codes are the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: parse the maze text into a [maze.Maze]
//  2. Solve: run the chosen search and convert the result to a [report.Report]
//  3. Render: draw the report in the requested formats
//
// Solve results and rendered artifacts are cached. A search is
// deterministic, so a report keyed by the maze text, algorithm and heuristic
// never goes stale.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Maze:      text,
//	    Algorithm: "astar",
//	    Formats:   []string{"png"},
//	})
//	if errors.Is(err, search.ErrNoSolution) {
//	    // result.Report still shows what was explored
//	}
//	png := result.Artifacts[render.FormatPNG]
//
// Run individual stages:
//
//	rep, err := runner.Solve(ctx, opts)
//	artifacts, err := runner.Render(ctx, rep, opts)
//
// [maze.Maze]: github.com/matzehuels/mazesearch/pkg/maze
// [report.Report]: github.com/matzehuels/mazesearch/pkg/report
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazesearch/pkg/cache"
	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/render"
	"github.com/matzehuels/mazesearch/pkg/report"
	"github.com/matzehuels/mazesearch/pkg/search"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultAlgorithm is the search used when none is named.
	DefaultAlgorithm = search.AStar

	// DefaultHeuristic is the estimator used by informed searches.
	DefaultHeuristic = maze.DefaultHeuristic

	// DefaultFormat is the output format used when none is named.
	DefaultFormat = render.FormatText
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Maze   string `json:"maze"`             // maze text
	Source string `json:"source,omitempty"` // where the text came from, for logs

	// Solve options
	Algorithm string `json:"algorithm,omitempty"`
	Heuristic string `json:"heuristic,omitempty"` // ignored by dfs and bfs
	Refresh   bool   `json:"refresh,omitempty"`   // skip cache reads

	// Render options
	Formats         []string `json:"formats,omitempty"`
	CellSize        int      `json:"cell_size,omitempty"`
	HideSolution    bool     `json:"hide_solution,omitempty"`
	Explored        bool     `json:"explored,omitempty"`
	HeuristicLabels bool     `json:"heuristic_labels,omitempty"`
	Color           bool     `json:"color,omitempty"` // terminal colors in txt output

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Report is the solved run.
	Report report.Report

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[render.Format][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Width      int
	Height     int
	Explored   int
	Removed    int
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the report came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSolve checks the maze text, algorithm and heuristic, and
// normalizes the names to their canonical spelling.
func (o *Options) ValidateForSolve() error {
	if err := errs.ValidateMazeText(o.Maze); err != nil {
		return err
	}

	if strings.TrimSpace(o.Algorithm) == "" {
		o.Algorithm = string(DefaultAlgorithm)
	}
	alg, err := search.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidAlgorithm, err, "invalid algorithm")
	}
	o.Algorithm = string(alg)

	if alg.Informed() {
		o.Heuristic = strings.ToLower(strings.TrimSpace(o.Heuristic))
		if o.Heuristic == "" {
			o.Heuristic = DefaultHeuristic
		}
		if err := maze.ValidateHeuristic(o.Heuristic); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidHeuristic, err, "invalid heuristic")
		}
	} else {
		o.Heuristic = ""
	}

	o.setLogger()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{string(DefaultFormat)}
	}
	if o.CellSize == 0 {
		o.CellSize = render.DefaultCellSize
	}
	o.setLogger()
}

// ValidateForRender sets render defaults and checks the formats. Format
// names are normalized ("text" becomes "txt") and deduplicated.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	formats, err := render.ParseFormats(strings.Join(o.Formats, ","))
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "invalid format")
	}
	o.Formats = make([]string, len(formats))
	for i, f := range formats {
		o.Formats[i] = string(f)
	}
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SearchAlgorithm returns the parsed algorithm. Call after ValidateForSolve.
func (o *Options) SearchAlgorithm() search.Algorithm {
	return search.Algorithm(o.Algorithm)
}

// RenderFormats returns the parsed formats. Call after ValidateForRender.
func (o *Options) RenderFormats() []render.Format {
	formats := make([]render.Format, len(o.Formats))
	for i, f := range o.Formats {
		formats[i] = render.Format(f)
	}
	return formats
}

// RenderOptions converts the render fields into renderer options.
func (o *Options) RenderOptions() []render.Option {
	return []render.Option{
		render.WithCellSize(o.CellSize),
		render.WithSolution(!o.HideSolution),
		render.WithExplored(o.Explored),
		render.WithHeuristicLabels(o.HeuristicLabels),
		render.WithColor(o.Color),
	}
}

// SolveKeyOpts returns cache key options for solving.
func (o *Options) SolveKeyOpts() cache.SolveKeyOpts {
	return cache.SolveKeyOpts{
		Algorithm: o.Algorithm,
		Heuristic: o.Heuristic,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Options that a format ignores are left out so they do not split the cache.
func (o *Options) ArtifactKeyOpts(format render.Format) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: string(format)}
	if format == render.FormatJSON {
		return opts
	}
	opts.Solution = !o.HideSolution
	opts.Explored = o.Explored
	opts.HeuristicLabels = o.HeuristicLabels
	switch format {
	case render.FormatText:
		opts.Color = o.Color
	case render.FormatPNG:
		opts.CellSize = o.CellSize
	}
	return opts
}
