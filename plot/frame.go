// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/lambdaplot/math32"
)

// AxisTick is a [Tick] placed at a pixel position along its axis.
type AxisTick struct {
	Tick

	// Pos is the pixel column of an x tick or row of a y tick.
	Pos float32
}

// FrameCurve is one curve of a [Frame] in pixel space.
type FrameCurve struct {
	ID    int
	Label string
	Style CurveStyle

	// Runs are the pixel vertices of the maximal defined runs of
	// samples. For Stairs curves the intermediate corners are included.
	Runs [][]math32.Vector2
}

// Frame is everything needed to draw one frame of a [Plot], in pixel
// coordinates. It is immutable once built.
type Frame struct {
	Width, Height int
	Theme         Theme

	XTicks, YTicks []AxisTick

	// Origin is the pixel position of the data origin. The x axis is
	// drawn at Origin.Y when ShowXAxis is set, and likewise for y.
	Origin               math32.Vector2
	ShowXAxis, ShowYAxis bool

	Curves []FrameCurve
}

// Frame updates the plot and builds the [Frame] for the current
// viewport. Hidden curves and curves without a function are omitted.
func (p *Plot) Frame() *Frame {
	p.Update()
	vp := p.Viewport
	xr, yr := vp.X(), vp.Y()
	f := &Frame{Width: vp.Width(), Height: vp.Height(), Theme: p.Theme}
	g := newGuard(f.Width, f.Height)

	for _, t := range p.Ticker.Ticks(xr.Min, xr.Max) {
		f.XTicks = append(f.XTicks, AxisTick{Tick: t, Pos: math32.FromFloat64(vp.PX(t.Value))})
	}
	for _, t := range p.Ticker.Ticks(yr.Min, yr.Max) {
		f.YTicks = append(f.YTicks, AxisTick{Tick: t, Pos: math32.FromFloat64(vp.PY(t.Value))})
	}
	f.Origin = g.point(vp.PX(0), vp.PY(0))
	f.ShowXAxis = yr.InRange(0)
	f.ShowYAxis = xr.InRange(0)

	for _, c := range p.Curves() {
		if !c.Style.Show || c.samples == nil {
			continue
		}
		fc := FrameCurve{ID: c.ID, Label: c.Label(), Style: c.Style}
		for _, run := range c.samples.Runs() {
			pts := make([]math32.Vector2, 0, len(run))
			for i, s := range run {
				if c.Style.Kind == Stairs && i > 0 {
					pts = append(pts, g.point(vp.PX(s.X), vp.PY(run[i-1].Y)))
				}
				pts = append(pts, g.point(vp.PX(s.X), vp.PY(s.Y)))
			}
			fc.Runs = append(fc.Runs, pts)
		}
		f.Curves = append(f.Curves, fc)
	}
	return f
}

// guard clamps pixel vertices to a band one surface size wide around
// the surface, which keeps them well inside float32 range.
type guard struct {
	box math32.Box2
}

func newGuard(width, height int) guard {
	m := float32(max(width, height))
	return guard{box: math32.B2(-m, -m, float32(width)+m, float32(height)+m)}
}

func (g guard) point(px, py float64) math32.Vector2 {
	return g.box.ClampPoint(math32.Vector2FromFloat64(px, py))
}

// labelPad is the gap in pixels between an axis and its tick labels.
const labelPad = 3

// Render draws the frame onto s: background, grid, axes and tick
// labels, then each curve in order.
func (f *Frame) Render(s Surface) {
	th := f.Theme
	s.Clear(th.Background)
	w, h := float32(f.Width), float32(f.Height)

	grid := LineStyle{Color: th.Grid, Width: 1}
	for _, t := range f.XTicks {
		s.Polyline([]math32.Vector2{math32.Vec2(t.Pos, 0), math32.Vec2(t.Pos, h)}, grid)
	}
	for _, t := range f.YTicks {
		s.Polyline([]math32.Vector2{math32.Vec2(0, t.Pos), math32.Vec2(w, t.Pos)}, grid)
	}

	axis := LineStyle{Color: th.Axis, Width: 1.5}
	if f.ShowXAxis {
		s.Polyline([]math32.Vector2{math32.Vec2(0, f.Origin.Y), math32.Vec2(w, f.Origin.Y)}, axis)
	}
	if f.ShowYAxis {
		s.Polyline([]math32.Vector2{math32.Vec2(f.Origin.X, 0), math32.Vec2(f.Origin.X, h)}, axis)
	}

	// labels hug the axes, or the bottom and left edges when
	// an axis is out of view
	ly := math32.Clamp(f.Origin.Y, 0, h-16) + labelPad
	lx := math32.Clamp(f.Origin.X, 0, w-40) + labelPad
	for _, t := range f.XTicks {
		s.Text(math32.Vec2(t.Pos+labelPad, ly), t.Label, th.Text)
	}
	for _, t := range f.YTicks {
		if f.ShowYAxis && f.ShowXAxis && t.Value == 0 {
			continue
		}
		s.Text(math32.Vec2(lx, t.Pos+labelPad), t.Label, th.Text)
	}

	for _, c := range f.Curves {
		st := LineStyle{Color: c.Style.Color, Width: c.Style.Width}
		for _, run := range c.Runs {
			if c.Style.Kind == Scatter {
				s.Points(run, st)
				continue
			}
			if len(run) == 1 {
				s.Points(run, st)
				continue
			}
			s.Polyline(run, st)
		}
	}
}
