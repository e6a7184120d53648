package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/render"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.png, .svg, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams holds parameters for writing rendered artifacts.
type artifactWriteParams struct {
	artifacts map[render.Format][]byte
	formats   []render.Format
	input     string
	output    string
}

// writeArtifacts writes each artifact in formats order.
//
// Text goes to stdout unless an output path names it. With a single format
// and an output path, that path is used as is; otherwise every file is
// <base><ext>, with the base taken from the output or input path.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	single := len(p.formats) == 1 && p.output != ""
	base := basePath(p.output, p.input)

	var written []string
	for _, f := range p.formats {
		data, ok := p.artifacts[f]
		if !ok {
			return written, fmt.Errorf("no %s artifact was rendered", f)
		}

		var path string
		switch {
		case single:
			path = p.output
		case f == render.FormatText && p.output == "":
			path = ""
		default:
			path = base + f.Ext()
		}

		if err := writeOutput(path, data); err != nil {
			return written, fmt.Errorf("write %s: %w", f, err)
		}
		if path != "" && path != "-" {
			written = append(written, path)
		}
	}
	return written, nil
}

func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
