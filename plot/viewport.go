// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/lambdaplot/math32/minmax"
)

const (
	// DefaultMinExtent is the smallest visible range of an axis.
	DefaultMinExtent = 1e-10

	// DefaultMaxExtent is the largest visible range of an axis.
	DefaultMaxExtent = 1e10

	// DefaultMaxCoord bounds the center of the view on each axis.
	DefaultMaxCoord = 1e12
)

// Limits are the visible data ranges of a [Viewport].
type Limits struct {
	X minmax.F64 `toml:"x" yaml:"x" json:"x"`
	Y minmax.F64 `toml:"y" yaml:"y" json:"y"`
}

// IsProper reports whether both ranges are finite and non-empty.
func (l Limits) IsProper() bool {
	return l.X.IsProper() && l.Y.IsProper()
}

// Viewport is the visible window onto the plane together with the
// pixel size of the surface it is shown on. Its ranges are always
// proper. Every mutation recomputes the cached data to pixel
// [Affine] and advances the [Viewport.Generation].
//
// Pixel x grows to the right from 0 at X.Min to Width at X.Max;
// pixel y grows downward from 0 at Y.Max to Height at Y.Min.
type Viewport struct {
	// MinExtent and MaxExtent bound the range of each axis.
	MinExtent, MaxExtent float64

	// MaxCoord bounds the absolute center coordinate of each axis.
	MaxCoord float64

	x, y          minmax.F64
	width, height int
	aff           Affine
	gen           uint64
}

// NewViewport returns a viewport showing the given ranges on a surface
// of the given pixel size. Improper ranges fall back to [-10, 10] and
// sizes below one pixel are raised to one.
func NewViewport(xmin, xmax, ymin, ymax float64, width, height int) *Viewport {
	vp := &Viewport{MinExtent: DefaultMinExtent, MaxExtent: DefaultMaxExtent, MaxCoord: DefaultMaxCoord}
	vp.x = vp.sanitize(minmax.F64{Min: xmin, Max: xmax})
	vp.y = vp.sanitize(minmax.F64{Min: ymin, Max: ymax})
	vp.width, vp.height = max(width, 1), max(height, 1)
	vp.update()
	return vp
}

// sanitize returns r if it is a usable axis range, a default range
// otherwise, with its extent clamped to the limits.
func (vp *Viewport) sanitize(r minmax.F64) minmax.F64 {
	if !r.IsProper() {
		r = minmax.F64{Min: -10, Max: 10}
	}
	c := max(-vp.MaxCoord, min(vp.MaxCoord, r.Midpoint()))
	e := max(vp.MinExtent, min(vp.MaxExtent, r.Range()))
	r.SetCenterRange(c, e)
	return r
}

func (vp *Viewport) update() {
	sx := float64(vp.width) / vp.x.Range()
	sy := -float64(vp.height) / vp.y.Range()
	vp.aff = Affine{SX: sx, TX: -vp.x.Min * sx, SY: sy, TY: float64(vp.height) - vp.y.Min*sy}
	vp.gen++
}

// X returns the visible x range.
func (vp *Viewport) X() minmax.F64 { return vp.x }

// Y returns the visible y range.
func (vp *Viewport) Y() minmax.F64 { return vp.y }

// Width returns the surface width in pixels.
func (vp *Viewport) Width() int { return vp.width }

// Height returns the surface height in pixels.
func (vp *Viewport) Height() int { return vp.height }

// Generation returns a counter that changes on every mutation.
func (vp *Viewport) Generation() uint64 { return vp.gen }

// Affine returns the data to pixel transform.
func (vp *Viewport) Affine() Affine { return vp.aff }

// UnitsPerPixel returns the data extent covered by one pixel on each axis.
func (vp *Viewport) UnitsPerPixel() (ux, uy float64) {
	return vp.x.Range() / float64(vp.width), vp.y.Range() / float64(vp.height)
}

// PX maps the data x coordinate to a pixel column.
func (vp *Viewport) PX(x float64) float64 { return vp.aff.SX*x + vp.aff.TX }

// PY maps the data y coordinate to a pixel row.
func (vp *Viewport) PY(y float64) float64 { return vp.aff.SY*y + vp.aff.TY }

// CoordX maps a pixel column to the data x coordinate.
func (vp *Viewport) CoordX(px float64) float64 { return (px - vp.aff.TX) / vp.aff.SX }

// CoordY maps a pixel row to the data y coordinate.
func (vp *Viewport) CoordY(py float64) float64 { return (py - vp.aff.TY) / vp.aff.SY }

// ToPixel maps a data point to pixels.
func (vp *Viewport) ToPixel(x, y float64) (px, py float64) { return vp.aff.Apply(x, y) }

// ToCoord maps a pixel point to data coordinates.
func (vp *Viewport) ToCoord(px, py float64) (x, y float64) { return vp.aff.Invert(px, py) }

// Limits returns the visible ranges.
func (vp *Viewport) Limits() Limits { return Limits{X: vp.x, Y: vp.y} }

// SetLimits sets the visible ranges. Each improper range is ignored,
// and extents are clamped about their centers. It returns whether
// anything changed.
func (vp *Viewport) SetLimits(l Limits) bool {
	changed := false
	if l.X.IsProper() {
		vp.x = vp.sanitize(l.X)
		changed = true
	}
	if l.Y.IsProper() {
		vp.y = vp.sanitize(l.Y)
		changed = true
	}
	if changed {
		vp.update()
	}
	return changed
}

// Fit sets the visible ranges to the given data ranges with a margin of
// FitMargin of the extent on each side. A range that collapses to a
// single value is widened around it; an invalid range leaves that axis
// alone.
func (vp *Viewport) Fit(x, y minmax.F64) bool {
	return vp.SetLimits(Limits{X: fitRange(x), Y: fitRange(y)})
}

// FitMargin is the fraction of the data extent added on each side by [Viewport.Fit].
const FitMargin = 0.05

func fitRange(r minmax.F64) minmax.F64 {
	if !r.IsValid() || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return minmax.F64{}
	}
	e := r.Range()
	if e == 0 {
		e = max(1, math.Abs(r.Min)*0.1)
		r.SetCenterRange(r.Min, e)
		return r
	}
	r.Min -= e * FitMargin
	r.Max += e * FitMargin
	return r
}

// Pan moves the view by a drag of (dx, dy) pixels: content dragged
// right or down by a positive amount reveals what lies to the left or
// above. The center is kept within MaxCoord. Non-finite input is ignored.
func (vp *Viewport) Pan(dx, dy float64) {
	if !finite(dx) || !finite(dy) || (dx == 0 && dy == 0) {
		return
	}
	ux, uy := vp.UnitsPerPixel()
	vp.x = vp.panAxis(vp.x, -dx*ux)
	vp.y = vp.panAxis(vp.y, dy*uy)
	vp.update()
}

func (vp *Viewport) panAxis(r minmax.F64, delta float64) minmax.F64 {
	c := r.Midpoint() + delta
	c = max(-vp.MaxCoord, min(vp.MaxCoord, c))
	r.Translate(c - r.Midpoint())
	return r
}

// Zoom multiplies both extents by factor about the data point under the
// pixel (px, py), which stays on that pixel. A factor below one zooms in.
// The factor is clamped so that neither extent leaves
// [MinExtent, MaxExtent]; both axes always use the same factor.
// Non-finite or non-positive factors are ignored.
func (vp *Viewport) Zoom(factor, px, py float64) {
	if !vp.validZoom(factor, px, py) {
		return
	}
	lo, hi := vp.factorBounds(vp.x)
	ylo, yhi := vp.factorBounds(vp.y)
	lo, hi = max(lo, ylo), min(hi, yhi)
	if lo > hi {
		return
	}
	f := max(lo, min(hi, factor))
	vp.zoom(f, f, px, py)
}

// ZoomAxes scales the x and y extents by fx and fy independently about
// the data point under the pixel (px, py). Each factor is clamped
// against its own axis limits.
func (vp *Viewport) ZoomAxes(fx, fy, px, py float64) {
	if !vp.validZoom(fx, px, py) || !vp.validZoom(fy, px, py) {
		return
	}
	lo, hi := vp.factorBounds(vp.x)
	fx = max(lo, min(hi, fx))
	lo, hi = vp.factorBounds(vp.y)
	fy = max(lo, min(hi, fy))
	vp.zoom(fx, fy, px, py)
}

func (vp *Viewport) validZoom(f, px, py float64) bool {
	return finite(f) && f > 0 && finite(px) && finite(py)
}

// factorBounds returns the range of zoom factors that keep the
// extent of r within the limits.
func (vp *Viewport) factorBounds(r minmax.F64) (lo, hi float64) {
	e := r.Range()
	return vp.MinExtent / e, vp.MaxExtent / e
}

func (vp *Viewport) zoom(fx, fy, px, py float64) {
	if fx == 1 && fy == 1 {
		return
	}
	cx, cy := vp.ToCoord(px, py)
	vp.x.ScaleAbout(fx, cx)
	vp.y.ScaleAbout(fy, cy)
	vp.update()
}

// Resize changes the pixel size of the surface, keeping the center and
// the units per pixel, so more or less of the plane becomes visible.
// Sizes below one pixel are ignored.
func (vp *Viewport) Resize(width, height int) {
	if width < 1 || height < 1 || (width == vp.width && height == vp.height) {
		return
	}
	ux, uy := vp.UnitsPerPixel()
	vp.x.SetCenterRange(vp.x.Midpoint(), max(vp.MinExtent, min(vp.MaxExtent, ux*float64(width))))
	vp.y.SetCenterRange(vp.y.Midpoint(), max(vp.MinExtent, min(vp.MaxExtent, uy*float64(height))))
	vp.width, vp.height = width, height
	vp.update()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
