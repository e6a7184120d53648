package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/mazesearch/pkg/fonts"
	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/report"
)

// labelScale is the label font size relative to the cell size.
const labelScale = 0.3

// cellBorder is the gap, in pixels, left around each cell so that the black
// background shows as a grid.
const cellBorder = 2

// PNG draws a report as a PNG image, one square per cell.
func PNG(r report.Report, opts ...Option) ([]byte, error) {
	s, err := newScene(r, opts...)
	if err != nil {
		return nil, err
	}
	return s.png()
}

func (s *scene) png() ([]byte, error) {
	size := s.opts.cellSize
	border := min(cellBorder, size/4)
	dc := gg.NewContext(s.maze.Width()*size, s.maze.Height()*size)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	if s.opts.heuristic {
		face, err := fonts.Face(float64(size) * labelScale)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
	}

	for row := 0; row < s.maze.Height(); row++ {
		for col := 0; col < s.maze.Width(); col++ {
			p := maze.Point{Row: row, Col: col}
			x := float64(col*size + border)
			y := float64(row*size + border)
			edge := float64(size - 2*border)

			text, labelled := s.label(p)
			fill := palette[s.kind(p)]
			if labelled {
				fill = labelFill
			}
			dc.SetColor(fill)
			dc.DrawRectangle(x, y, edge, edge)
			dc.Fill()

			if labelled {
				dc.SetRGB(0, 0, 0)
				cx := float64(col*size) + float64(size)/2
				cy := float64(row*size) + float64(size)/2
				dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
