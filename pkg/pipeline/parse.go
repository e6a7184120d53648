package pipeline

import (
	"context"
	"time"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/observability"
)

// Load parses the maze text in opts. Parse failures carry ErrCodeInvalidMaze
// and still match maze.ErrInvalid.
func Load(ctx context.Context, opts Options) (*maze.Maze, error) {
	start := time.Now()
	m, err := maze.ParseString(opts.Maze)

	var width, height int
	if err != nil {
		err = errs.Wrap(errs.ErrCodeInvalidMaze, err, "cannot load maze from %s", sourceName(opts))
	} else {
		width, height = m.Width(), m.Height()
	}

	observability.Solve().OnLoadComplete(ctx, opts.Source, width, height, time.Since(start), err)
	return m, err
}

func sourceName(opts Options) string {
	if opts.Source == "" {
		return "input"
	}
	return opts.Source
}
