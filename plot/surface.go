// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"slices"

	"cogentcore.org/lambdaplot/colors"
	"cogentcore.org/lambdaplot/math32"
)

// Surface is an immediate-mode drawing target in pixel coordinates,
// with y growing downward. A window toolkit, a software rasterizer or
// a test recorder can implement it.
type Surface interface {
	// Size returns the size of the surface in pixels.
	Size() image.Point

	// Clear fills the whole surface with c.
	Clear(c color.Color)

	// Polyline strokes the connected segments through pts.
	Polyline(pts []math32.Vector2, st LineStyle)

	// Points draws a dot of size st.Width at each of pts.
	Points(pts []math32.Vector2, st LineStyle)

	// Text draws s with the top left of its bounding box at pos.
	Text(pos math32.Vector2, s string, c color.Color)
}

// Op is one drawing call recorded by a [Recorder].
type Op struct {
	// Kind is "clear", "polyline", "points" or "text".
	Kind  string
	Pts   []math32.Vector2
	Style LineStyle
	Text  string
	Color color.RGBA
}

// Recorder is a [Surface] that records the calls made to it.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder returns a [Recorder] of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() image.Point { return image.Pt(r.Width, r.Height) }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops[:0], Op{Kind: "clear", Color: colors.AsRGBA(c)})
}

func (r *Recorder) Polyline(pts []math32.Vector2, st LineStyle) {
	r.Ops = append(r.Ops, Op{Kind: "polyline", Pts: slices.Clone(pts), Style: st, Color: st.Color})
}

func (r *Recorder) Points(pts []math32.Vector2, st LineStyle) {
	r.Ops = append(r.Ops, Op{Kind: "points", Pts: slices.Clone(pts), Style: st, Color: st.Color})
}

func (r *Recorder) Text(pos math32.Vector2, s string, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", Pts: []math32.Vector2{pos}, Text: s, Color: colors.AsRGBA(c)})
}

// Count returns the number of recorded ops of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
