// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/lambdaplot/math32/minmax"
)

// Func is a function of one variable that may be undefined at some
// points. It is satisfied by *expr.Function.
type Func interface {
	Eval(x float64) (float64, bool)
}

// FuncOf adapts an ordinary function to [Func]. NaN and infinite
// results are undefined.
type FuncOf func(x float64) float64

func (f FuncOf) Eval(x float64) (float64, bool) {
	y := f(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return math.NaN(), false
	}
	return y, true
}

// Sampler samples functions adaptively over a [Viewport]: one sample
// per pixel column, refined by bisection where the curve changes
// quickly or meets an undefined region.
type Sampler struct {
	// Threshold is the change in y, as a fraction of the visible y
	// extent, above which an interval is bisected.
	Threshold float64

	// MaxDepth is the maximum number of bisections of a pixel interval.
	MaxDepth int

	// BreakFraction is the change in y, as a fraction of the visible y
	// extent, that an interval still spans at MaxDepth for it to be
	// treated as a discontinuity and broken.
	BreakFraction float64

	// Budget is the maximum number of samples per baseline sample.
	Budget int
}

// NewSampler returns a [Sampler] with default settings.
func NewSampler() *Sampler {
	s := &Sampler{}
	s.Defaults()
	return s
}

func (s *Sampler) Defaults() {
	s.Threshold = 0.005
	s.MaxDepth = 10
	s.BreakFraction = 0.02
	s.Budget = 16
}

// MaxSamples returns the sample budget for a surface width in pixels.
func (s *Sampler) MaxSamples(width int) int {
	return s.Budget * (width + 1)
}

// Sample evaluates f over the x range of vp at width+1 evenly spaced
// points and refines between them. A width below one uses the
// viewport width. The result holds at most [Sampler.MaxSamples]
// samples, in increasing x.
func (s *Sampler) Sample(f Func, vp *Viewport, width int) *SampleSet {
	if width < 1 {
		width = vp.Width()
	}
	xr, yr := vp.X(), vp.Y()
	r := &refiner{
		f:       f,
		s:       s,
		limit:   s.MaxSamples(width),
		y:       yr,
		yExtent: yr.Range(),
	}
	r.out = make([]Sample, 0, 2*(width+1))
	prev := r.eval(xr.Min)
	r.out = append(r.out, prev)
	for i := 1; i <= width; i++ {
		x := xr.Min + xr.Range()*float64(i)/float64(width)
		if i == width {
			x = xr.Max
		}
		next := r.eval(x)
		// reserve room for the remaining baseline samples
		r.reserve = width - i
		r.refine(prev, next, 0)
		r.out = append(r.out, next)
		prev = next
	}
	return &SampleSet{Samples: r.out}
}

type refiner struct {
	f       Func
	s       *Sampler
	out     []Sample
	limit   int
	reserve int
	y       minmax.F64
	yExtent float64
}

func (r *refiner) eval(x float64) Sample {
	y, ok := r.f.Eval(x)
	if !ok {
		return undefinedAt(x)
	}
	return Sample{X: x, Y: y, Defined: true}
}

// full reports whether adding another refinement sample would leave
// no room for the rest of the baseline, the pending endpoint and one
// break sample.
func (r *refiner) full() bool {
	return len(r.out)+r.reserve+3 > r.limit
}

// refine appends the samples strictly between a and b. Every midpoint
// that is bisected holds a slot in reserve until it is appended, so
// running out of budget never drops an evaluated sample.
func (r *refiner) refine(a, b Sample, depth int) {
	dy := math.Abs(b.Y - a.Y)
	switch {
	case a.Defined && b.Defined:
		if dy <= r.s.Threshold*r.yExtent {
			return
		}
	case a.Defined == b.Defined:
		return
	}
	mx := a.X + (b.X-a.X)/2
	if mx <= a.X || mx >= b.X {
		return
	}
	if depth >= r.s.MaxDepth || r.full() {
		r.split(a, b, depth)
		return
	}
	m := r.eval(mx)
	if r.offscreen(a, m, b) {
		return
	}
	r.reserve++
	r.refine(a, m, depth+1)
	r.reserve--
	r.out = append(r.out, m)
	r.refine(m, b, depth+1)
}

// split appends an undefined sample between a and b if the curve
// breaks there, using the slot that [refiner.full] holds back.
func (r *refiner) split(a, b Sample, depth int) {
	if !a.Defined || !b.Defined || len(r.out)+r.reserve+2 > r.limit {
		return
	}
	if x, ok := r.locate(a, b, depth); ok {
		r.out = append(r.out, undefinedAt(x))
	}
}

// locate bisects from a and b down to MaxDepth without keeping
// samples, following the half that changes more. It returns the x of
// a break: an undefined midpoint, or a final interval that still spans
// BreakFraction of the visible y extent and jumps.
func (r *refiner) locate(a, b Sample, depth int) (float64, bool) {
	for ; depth < r.s.MaxDepth; depth++ {
		mx := a.X + (b.X-a.X)/2
		if mx <= a.X || mx >= b.X {
			break
		}
		m := r.eval(mx)
		if !m.Defined {
			return mx, true
		}
		if math.Abs(m.Y-a.Y) >= math.Abs(b.Y-m.Y) {
			b = m
		} else {
			a = m
		}
	}
	mx := a.X + (b.X-a.X)/2
	if math.Abs(b.Y-a.Y) <= r.s.BreakFraction*r.yExtent || !r.jumps(a, b, mx) {
		return 0, false
	}
	return mx, true
}

// offscreen reports whether the samples are all defined and all above
// or all below the visible y range.
func (r *refiner) offscreen(ss ...Sample) bool {
	above, below := true, true
	for _, s := range ss {
		if !s.Defined {
			return false
		}
		above = above && s.Y > r.y.Max
		below = below && s.Y < r.y.Min
	}
	return above || below
}

// jumps reports whether the value at mx is not strictly between a.Y
// and b.Y. Across a pole or a jump the midpoint lands beyond either end
// or on one of the two levels; on a steep continuous stretch it lies
// in between.
func (r *refiner) jumps(a, b Sample, mx float64) bool {
	m := r.eval(mx)
	if !m.Defined {
		return true
	}
	lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
	return m.Y <= lo || m.Y >= hi
}
