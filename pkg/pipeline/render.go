package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/mazesearch/pkg/observability"
	"github.com/matzehuels/mazesearch/pkg/render"
	"github.com/matzehuels/mazesearch/pkg/report"
)

// Render draws rep in each of formats with the render options in opts.
// It does not consult the cache.
func Render(ctx context.Context, rep report.Report, formats []render.Format, opts Options) (map[render.Format][]byte, error) {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}

	observability.Solve().OnRenderStart(ctx, names)
	start := time.Now()

	artifacts, err := renderFormats(ctx, rep, formats, opts.RenderOptions())

	observability.Solve().OnRenderComplete(ctx, names, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, rep report.Report, formats []render.Format, opts []render.Option) (map[render.Format][]byte, error) {
	artifacts := make(map[render.Format][]byte, len(formats))
	for _, f := range formats {
		data, err := render.Render(ctx, rep, f, opts...)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[f] = data
	}
	return artifacts, nil
}
