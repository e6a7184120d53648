package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/report"
)

// DOT converts a report to Graphviz DOT: one pinned square node per open
// cell, one undirected edge per pair of adjacent open cells. Solution edges
// are drawn thick. The result can be rendered with [RenderSVG].
func DOT(r report.Report, opts ...Option) (string, error) {
	s, err := newScene(r, opts...)
	if err != nil {
		return "", err
	}
	return s.dot(), nil
}

func (s *scene) dot() string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=square, style=filled, fixedsize=true, width=0.5, fontsize=10, fontname=\"Helvetica\", color=\"#282828\"];\n")
	buf.WriteString("  edge [color=\"#9a9a9a\"];\n")
	buf.WriteString("\n")

	for _, p := range s.maze.OpenCells() {
		attrs := []string{
			fmt.Sprintf("pos=\"%s,%s!\"", strconv.Itoa(p.Col), strconv.Itoa(-p.Row)),
			fmt.Sprintf("label=%q", s.dotLabel(p)),
			fmt.Sprintf("fillcolor=%q", s.dotFill(p)),
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(p), strings.Join(attrs, ", "))
	}

	onPath := s.pathEdges()
	buf.WriteString("\n")
	for _, p := range s.maze.OpenCells() {
		for _, a := range []maze.Action{maze.Right, maze.Down} {
			q, ok := s.maze.Apply(p, a)
			if !ok {
				continue
			}
			if onPath[edgeKey(p, q)] {
				fmt.Fprintf(&buf, "  %s -- %s [color=\"#b5a100\", penwidth=4];\n", nodeID(p), nodeID(q))
				continue
			}
			fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(p), nodeID(q))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p maze.Point) string { return fmt.Sprintf("r%dc%d", p.Row, p.Col) }

func edgeKey(a, b maze.Point) [2]maze.Point {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return [2]maze.Point{a, b}
}

func (s *scene) pathEdges() map[[2]maze.Point]bool {
	out := make(map[[2]maze.Point]bool)
	if !s.opts.solution {
		return out
	}
	cells := s.report.Cells()
	for i := 1; i < len(cells); i++ {
		out[edgeKey(cells[i-1], cells[i])] = true
	}
	return out
}

func (s *scene) dotLabel(p maze.Point) string {
	switch s.kind(p) {
	case cellStart:
		return "A"
	case cellGoal:
		return "B"
	}
	text, _ := s.label(p)
	return text
}

func (s *scene) dotFill(p maze.Point) string {
	if _, labelled := s.label(p); labelled {
		return hex(labelFill)
	}
	return hex(palette[s.kind(p)])
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales with its
// container instead of carrying Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
