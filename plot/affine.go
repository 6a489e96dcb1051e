// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Affine maps data coordinates to pixel coordinates independently on
// each axis: px = SX*x + TX, py = SY*y + TY. For a viewport SY is
// negative, since pixel y grows downward.
type Affine struct {
	SX, TX float64
	SY, TY float64
}

// Apply maps the data point (x, y) to pixels.
func (a Affine) Apply(x, y float64) (px, py float64) {
	return a.SX*x + a.TX, a.SY*y + a.TY
}

// Invert maps the pixel point (px, py) back to data coordinates.
func (a Affine) Invert(px, py float64) (x, y float64) {
	return (px - a.TX) / a.SX, (py - a.TY) / a.SY
}

// IsValid reports whether the transform is invertible.
func (a Affine) IsValid() bool {
	return a.SX != 0 && a.SY != 0
}
