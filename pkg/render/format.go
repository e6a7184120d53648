package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/mazesearch/pkg/report"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown format")

// Format is an output format.
type Format string

// Output formats.
const (
	FormatText Format = "txt"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatPNG, FormatSVG, FormatDOT, FormatJSON}

var contentTypes = map[Format]string{
	FormatText: "text/plain; charset=utf-8",
	FormatPNG:  "image/png",
	FormatSVG:  "image/svg+xml",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatJSON: "application/json",
}

// ParseFormat normalizes and validates a format name. "text" is accepted as
// an alias for "txt".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "text" {
		f = FormatText
	}
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// ParseFormats parses a comma-separated format list, dropping duplicates
// and keeping the first-seen order.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty format list", ErrUnknownFormat)
	}
	return out, nil
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string { return contentTypes[f] }

// Ext returns the file extension, including the dot.
func (f Format) Ext() string { return "." + string(f) }

func (f Format) String() string { return string(f) }

// Render draws a report in the given format.
//
// The context bounds the Graphviz run used for SVG output; the other
// formats ignore it.
func Render(ctx context.Context, r report.Report, f Format, opts ...Option) ([]byte, error) {
	if f == FormatJSON {
		return report.Marshal(r)
	}

	s, err := newScene(r, opts...)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatText:
		return []byte(s.text()), nil
	case FormatPNG:
		return s.png()
	case FormatDOT:
		return []byte(s.dot()), nil
	case FormatSVG:
		return RenderSVG(ctx, s.dot())
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
