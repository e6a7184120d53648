// Package fonts provides the typeface used for text in raster output.
//
// Labels are set in Go Mono, which ships with golang.org/x/image, so the
// binary needs no font files at runtime.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// MinSize is the smallest face size, in points, that Face returns.
const MinSize = 6

var (
	mono     *truetype.Font
	monoErr  error
	monoOnce sync.Once
)

// Mono returns the parsed Go Mono font. It is parsed once on first use.
func Mono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		mono, monoErr = truetype.Parse(gomono.TTF)
		if monoErr != nil {
			monoErr = fmt.Errorf("parse go mono: %w", monoErr)
		}
	})
	return mono, monoErr
}

// Face returns a Go Mono face of the given size in points. Sizes below
// MinSize are raised to it.
func Face(size float64) (font.Face, error) {
	f, err := Mono()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    max(size, MinSize),
		Hinting: font.HintingFull,
	}), nil
}
