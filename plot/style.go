// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/lambdaplot/colors"
)

// LineKind is how the samples of a curve are drawn.
type LineKind int32

const (
	// Line connects consecutive samples with straight segments.
	Line LineKind = iota

	// Scatter draws a point at each sample.
	Scatter

	// Stairs connects samples with a horizontal then a vertical
	// segment, holding each value until the next sample.
	Stairs
)

var lineKindNames = []string{"line", "scatter", "stairs"}

func (k LineKind) String() string {
	if k >= 0 && int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return fmt.Sprintf("LineKind(%d)", int32(k))
}

func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *LineKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, n := range lineKindNames {
		if n == s {
			*k = LineKind(i)
			return nil
		}
	}
	return fmt.Errorf("plot.LineKind: unknown kind %q", s)
}

// CurveStyle has the display properties of a [Curve]. The plotted value
// is f(x)*Scale + Offset.
type CurveStyle struct {
	// Color is the line and point color.
	Color color.RGBA

	// Show is whether the curve is drawn.
	Show bool

	// Width is the line width, or point size, in pixels.
	Width float32

	// Kind is how samples are connected.
	Kind LineKind

	// Scale multiplies the function value.
	Scale float64

	// Offset is added to the scaled function value.
	Offset float64
}

// DefaultCurveStyle returns the style of a new curve with the given id,
// colored from the [colors.Spaced] palette.
func DefaultCurveStyle(id int) CurveStyle {
	return CurveStyle{Color: colors.Spaced(id), Show: true, Width: 2, Scale: 1}
}

// transform reports whether the style changes function values.
func (cs *CurveStyle) transform() bool {
	return cs.Scale != 1 || cs.Offset != 0
}

// LineStyle is the stroke style passed to a [Surface].
type LineStyle struct {
	Color color.RGBA

	// Width is the stroke width, or point size, in pixels.
	Width float32
}

// Theme has the colors of the non-curve parts of a plot.
type Theme struct {
	Background color.RGBA
	Grid       color.RGBA
	Axis       color.RGBA
	Text       color.RGBA
}

// LightTheme is the default [Theme].
var LightTheme = Theme{
	Background: colors.White,
	Grid:       color.RGBA{0xE4, 0xE4, 0xE4, 0xFF},
	Axis:       color.RGBA{0x40, 0x40, 0x40, 0xFF},
	Text:       colors.Black,
}

// DarkTheme is a [Theme] for dark surfaces.
var DarkTheme = Theme{
	Background: color.RGBA{0x1E, 0x1E, 0x1E, 0xFF},
	Grid:       color.RGBA{0x38, 0x38, 0x38, 0xFF},
	Axis:       color.RGBA{0xB0, 0xB0, 0xB0, 0xFF},
	Text:       color.RGBA{0xE8, 0xE8, 0xE8, 0xFF},
}
