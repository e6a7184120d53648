// Package render draws a solved maze.
//
// Every renderer consumes a [report.Report], so a run can be redrawn from
// its JSON alone. The supported [Format]s are:
//
//   - txt: plain or lipgloss-coloured terminal text ([Text])
//   - png: raster image with one square per cell ([PNG])
//   - dot: Graphviz source of the open-cell graph ([DOT])
//   - svg: the DOT graph laid out by Graphviz ([RenderSVG])
//   - json: the report itself
//
// [Render] dispatches on the format:
//
//	png, err := render.Render(ctx, rep, render.FormatPNG,
//	    render.WithExplored(true),
//	    render.WithHeuristicLabels(true))
//
// All renderers share one palette: walls dark grey, start red, goal green,
// solution yellow, explored cells salmon and untouched open cells pale blue.
//
// [report.Report]: github.com/matzehuels/mazesearch/pkg/report
package render
