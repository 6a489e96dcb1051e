// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"cogentcore.org/lambdaplot/math32"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/vector"
)

// LabelSize is the size in pixels of the text drawn by a [Raster].
const LabelSize = 12

var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(lmroman10regular.TTF)
})

// Raster is a software [Surface] drawing into an [image.RGBA], with
// antialiased strokes and Latin Modern labels.
type Raster struct {
	image *image.RGBA
	ras   *vector.Rasterizer
	face  font.Face
	clip  math32.Box2
}

// NewRaster returns a [Raster] of the given size in pixels.
func NewRaster(width, height int) (*Raster, error) {
	f, err := labelFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	rs := &Raster{
		image: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:   vector.NewRasterizer(width, height),
		face:  face,
	}
	rs.clip = math32.B2(0, 0, float32(width), float32(height))
	return rs, nil
}

// Image returns the image drawn into.
func (rs *Raster) Image() *image.RGBA { return rs.image }

func (rs *Raster) Size() image.Point { return rs.image.Rect.Size() }

func (rs *Raster) Clear(c color.Color) {
	draw.Draw(rs.image, rs.image.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Polyline strokes each segment as a quad of the line width and covers
// the joins with squares, all in one rasterizer pass so that overlaps
// are not blended twice.
func (rs *Raster) Polyline(pts []math32.Vector2, st LineStyle) {
	if len(pts) < 2 {
		return
	}
	hw := max(st.Width, 0.5) / 2
	clip := rs.clip
	clip.ExpandByScalar(hw)
	rs.begin()
	n := 0
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		if p0.IsNaN() || p1.IsNaN() || !clip.IntersectsSegment(p0, p1) {
			continue
		}
		d := p1.Sub(p0)
		if d.Length() == 0 {
			continue
		}
		w := d.Normal().Perp().MulScalar(hw)
		rs.polygon(p0.Add(w), p1.Add(w), p1.Sub(w), p0.Sub(w))
		if i < len(pts)-1 && st.Width > 1 {
			rs.square(p1, hw)
		}
		n++
	}
	if n > 0 {
		rs.fill(st.Color)
	}
}

func (rs *Raster) Points(pts []math32.Vector2, st LineStyle) {
	hw := max(st.Width, 1)
	rs.begin()
	n := 0
	for _, p := range pts {
		if p.IsNaN() || !rs.clip.ContainsPoint(p) {
			continue
		}
		rs.square(p, hw)
		n++
	}
	if n > 0 {
		rs.fill(st.Color)
	}
}

func (rs *Raster) Text(pos math32.Vector2, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  rs.image,
		Src:  image.NewUniform(c),
		Face: rs.face,
		Dot:  pos.ToFixed(),
	}
	d.Dot.Y += rs.face.Metrics().Ascent
	d.DrawString(s)
}

func (rs *Raster) begin() {
	sz := rs.image.Rect.Size()
	rs.ras.Reset(sz.X, sz.Y)
	rs.ras.DrawOp = draw.Over
}

func (rs *Raster) fill(c color.Color) {
	rs.ras.Draw(rs.image, rs.image.Rect, image.NewUniform(c), image.Point{})
}

func (rs *Raster) square(c math32.Vector2, h float32) {
	rs.polygon(
		math32.Vec2(c.X-h, c.Y-h), math32.Vec2(c.X+h, c.Y-h),
		math32.Vec2(c.X+h, c.Y+h), math32.Vec2(c.X-h, c.Y+h))
}

// polygon adds a closed polygon with a consistent winding, so that
// overlapping shapes accumulate instead of cancelling out.
func (rs *Raster) polygon(pts ...math32.Vector2) {
	var area float32
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	rs.ras.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		rs.ras.LineTo(p.X, p.Y)
	}
	rs.ras.ClosePath()
}
