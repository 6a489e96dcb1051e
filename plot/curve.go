// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"

	"cogentcore.org/lambdaplot/expr"
)

// Curve is one plotted function of a [Plot].
type Curve struct {
	// ID identifies the curve within its plot.
	ID int

	// Name is the legend and CSV header name; the source text is
	// used when it is empty.
	Name string

	// Source is the text most recently submitted for the curve,
	// whether or not it compiled.
	Source string

	// Style has the display properties.
	Style CurveStyle

	// Err is the error from compiling Source, or nil. While it is set
	// the curve keeps showing its previous function.
	Err error

	fn      *expr.Function
	samples *SampleSet

	// state the current samples were computed for
	sampledFn    *expr.Function
	sampledGen   uint64
	sampledScale float64
	sampledOff   float64
}

// Label returns the display name of the curve.
func (c *Curve) Label() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.fn != nil:
		return c.fn.Source()
	case c.Source != "":
		return c.Source
	}
	return "f" + strconv.Itoa(c.ID)
}

// Function returns the current compiled function, which is nil until
// a source compiles successfully.
func (c *Curve) Function() *expr.Function { return c.fn }

// Samples returns the samples from the last [Plot.Update], or nil.
func (c *Curve) Samples() *SampleSet { return c.samples }

// Eval evaluates the styled curve at x: f(x)*Scale + Offset.
func (c *Curve) Eval(x float64) (float64, bool) {
	if c.fn == nil {
		return math.NaN(), false
	}
	y, ok := c.fn.Eval(x)
	if !ok {
		return y, false
	}
	if c.Style.transform() {
		y = y*c.Style.Scale + c.Style.Offset
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return math.NaN(), false
		}
	}
	return y, true
}

// stale reports whether the samples are out of date for vp.
func (c *Curve) stale(vp *Viewport) bool {
	return c.samples == nil || c.sampledFn != c.fn || c.sampledGen != vp.Generation() ||
		c.sampledScale != c.Style.Scale || c.sampledOff != c.Style.Offset
}

func (c *Curve) resample(s *Sampler, vp *Viewport) {
	c.samples = s.Sample(c, vp, vp.Width())
	c.sampledFn = c.fn
	c.sampledGen = vp.Generation()
	c.sampledScale, c.sampledOff = c.Style.Scale, c.Style.Offset
}
