// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/lambdaplot/base/errors"
	"cogentcore.org/lambdaplot/expr"
	"cogentcore.org/lambdaplot/math32/minmax"
)

// ErrNoCurve is returned for operations on a curve id that is not in the plot.
var ErrNoCurve = errors.New("plot: no such curve")

// Plot is a set of curves shown through a shared [Viewport]. It is not
// safe for concurrent use; hosts drive it from a single loop.
type Plot struct {
	// Viewport is the visible window.
	Viewport *Viewport

	// Sampler samples the curves.
	Sampler *Sampler

	// Ticker computes the axis ticks.
	Ticker Ticker

	// Theme has the non-curve colors.
	Theme Theme

	// CompileOptions are passed to [expr.CompileString].
	CompileOptions []expr.CompileOption

	curves map[int]*Curve
}

// New returns a plot with no curves, showing vp.
func New(vp *Viewport) *Plot {
	return &Plot{
		Viewport: vp,
		Sampler:  NewSampler(),
		Ticker:   NiceTicker{},
		Theme:    LightTheme,
		curves:   map[int]*Curve{},
	}
}

// SetExpression compiles text as the function of the curve with the
// given id, adding the curve if needed. On success the new function
// replaces the previous one. On failure the previous function stays in
// place, and the error is recorded in [Curve.Err] and returned.
func (p *Plot) SetExpression(id int, text string) error {
	c, ok := p.curves[id]
	if !ok {
		c = &Curve{ID: id, Style: DefaultCurveStyle(id)}
		p.curves[id] = c
	}
	c.Source = text
	f, err := expr.CompileString(text, p.CompileOptions...)
	if err != nil {
		c.Err = err
		slog.Debug("compile failed", "curve", id, "err", err)
		return err
	}
	c.fn, c.Err = f, nil
	slog.Debug("compiled", "curve", id, "func", f.String())
	return nil
}

// SetStyle sets the style of the curve with the given id.
func (p *Plot) SetStyle(id int, st CurveStyle) error {
	c, ok := p.curves[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoCurve, id)
	}
	c.Style = st
	return nil
}

// Remove removes the curve with the given id, returning whether it existed.
func (p *Plot) Remove(id int) bool {
	_, ok := p.curves[id]
	delete(p.curves, id)
	return ok
}

// Reset removes all curves.
func (p *Plot) Reset() {
	clear(p.curves)
}

// Curve returns the curve with the given id, or nil.
func (p *Plot) Curve(id int) *Curve {
	return p.curves[id]
}

// Curves returns the curves ordered by id.
func (p *Plot) Curves() []*Curve {
	ids := slices.Sorted(maps.Keys(p.curves))
	cs := make([]*Curve, len(ids))
	for i, id := range ids {
		cs[i] = p.curves[id]
	}
	return cs
}

// NextID returns an id one past the largest curve id.
func (p *Plot) NextID() int {
	if len(p.curves) == 0 {
		return 0
	}
	return slices.Max(slices.Collect(maps.Keys(p.curves))) + 1
}

// Update resamples every curve whose function, value transform or
// viewport changed since it was last sampled, and returns how many
// were resampled. Curves without a function have no samples.
func (p *Plot) Update() int {
	n := 0
	for _, c := range p.Curves() {
		if c.fn == nil {
			c.samples = nil
			continue
		}
		if !c.stale(p.Viewport) {
			continue
		}
		c.resample(p.Sampler, p.Viewport)
		n++
		slog.Debug("resampled", "curve", c.ID, "samples", c.samples.Len())
	}
	return n
}

// DataRange returns the y range of the samples of all shown curves,
// and false if no curve has a defined sample.
func (p *Plot) DataRange() (minmax.F64, bool) {
	p.Update()
	r := minmax.F64{}
	r.SetInfinity()
	found := false
	for _, c := range p.Curves() {
		if !c.Style.Show || c.samples == nil {
			continue
		}
		cr, ok := c.samples.YRange()
		if !ok {
			continue
		}
		r.FitInRange(cr)
		found = true
	}
	return r, found
}

// AutoFit sets the visible y range to fit the sampled values of the
// shown curves over the current x range. It returns whether the
// viewport changed.
func (p *Plot) AutoFit() bool {
	yr, ok := p.DataRange()
	if !ok {
		return false
	}
	return p.Viewport.SetLimits(Limits{Y: fitRange(yr)})
}
