// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"cogentcore.org/lambdaplot/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkOrdered(t *testing.T, ss *SampleSet) {
	t.Helper()
	for i := 1; i < ss.Len(); i++ {
		require.LessOrEqual(t, ss.Samples[i-1].X, ss.Samples[i].X, "sample %d", i)
	}
}

func TestSampleLinear(t *testing.T) {
	vp := NewViewport(-1, 1, -10, 10, 100, 100)
	ss := NewSampler().Sample(expr.MustCompile("x"), vp, 0)
	assert.Equal(t, 101, ss.Len())
	assert.Equal(t, -1.0, ss.Samples[0].X)
	assert.Equal(t, 1.0, ss.Samples[100].X)
	checkOrdered(t, ss)
	assert.Len(t, ss.Runs(), 1)
}

func TestSampleReciprocalRuns(t *testing.T) {
	for _, width := range []int{1, 2, 3, 7, 100, 101, 121, 333, 640} {
		vp := NewViewport(-1, 1, -10, 10, width, 200)
		ss := NewSampler().Sample(expr.MustCompile("1/x"), vp, 0)
		checkOrdered(t, ss)
		runs := ss.Runs()
		require.Len(t, runs, 2, "width %d", width)
		for _, s := range runs[0] {
			assert.Less(t, s.X, 0.0)
		}
		for _, s := range runs[1] {
			assert.Greater(t, s.X, 0.0)
		}
		assert.LessOrEqual(t, ss.Len(), NewSampler().MaxSamples(width))
	}
}

func TestSampleRefinesSteepParts(t *testing.T) {
	vp := NewViewport(-1, 1, -2, 2, 50, 50)
	ss := NewSampler().Sample(expr.MustCompile("sin(40x)"), vp, 0)
	assert.Greater(t, ss.Len(), 51)
	checkOrdered(t, ss)
	assert.Len(t, ss.Runs(), 1)
}

func TestSampleDomainEdge(t *testing.T) {
	vp := NewViewport(-1, 1, -2, 2, 20, 20)
	ss := NewSampler().Sample(expr.MustCompile("sqrt(x)"), vp, 0)
	runs := ss.Runs()
	require.Len(t, runs, 1)
	// refinement moves the first defined sample toward the domain edge
	assert.Less(t, runs[0][0].X, 0.01)
	assert.GreaterOrEqual(t, runs[0][0].X, 0.0)
	assert.False(t, ss.Samples[0].Defined)
	assert.True(t, math.IsNaN(ss.Samples[0].Y))
}

func TestSampleJumpBreaks(t *testing.T) {
	vp := NewViewport(-3, 3, -3, 3, 61, 100)
	ss := NewSampler().Sample(FuncOf(func(x float64) float64 {
		if x < 0.05 {
			return -20
		}
		return 20
	}), vp, 0)
	assert.Len(t, ss.Runs(), 2)

	ss = NewSampler().Sample(expr.MustCompile("tan(x)"), NewViewport(0, 3, -10, 10, 61, 100), 0)
	assert.Len(t, ss.Runs(), 2)

	// unit steps are small against the visible extent
	ss = NewSampler().Sample(expr.MustCompile("floor(x)"), NewViewport(-10, 10, -10, 10, 200, 200), 0)
	runs := ss.Runs()
	assert.GreaterOrEqual(t, len(runs), 20)
	for _, run := range runs {
		for _, s := range run {
			assert.Equal(t, run[0].Y, s.Y, "run at %v", run[0].X)
		}
	}
}

func TestSampleReciprocalAsymmetric(t *testing.T) {
	// the pole is never a sample point, and the budget runs out before it
	vp := NewViewport(-0.7, 1.3, -10, 10, 5, 200)
	s := NewSampler()
	s.Budget = 3
	ss := s.Sample(expr.MustCompile("1/x"), vp, 0)
	assert.LessOrEqual(t, ss.Len(), s.MaxSamples(5))
	checkOrdered(t, ss)
	runs := ss.Runs()
	require.Len(t, runs, 2)
	assert.Less(t, runs[0][len(runs[0])-1].X, 0.0)
	assert.Greater(t, runs[1][0].X, 0.0)
}

func TestSampleSkipsOffscreen(t *testing.T) {
	vp := NewViewport(-1, 1, 0, 1, 10, 10)
	ss := NewSampler().Sample(expr.MustCompile("100 + 50x^2"), vp, 0)
	assert.Equal(t, 11, ss.Len())
}

func TestSampleBudget(t *testing.T) {
	vp := NewViewport(-1, 1, -1, 1, 10, 10)
	s := NewSampler()
	s.Budget = 2
	ss := s.Sample(expr.MustCompile("sin(1/x)"), vp, 0)
	assert.LessOrEqual(t, ss.Len(), 22)
	assert.Equal(t, -1.0, ss.Samples[0].X)
	assert.Equal(t, 1.0, ss.Samples[ss.Len()-1].X)
	checkOrdered(t, ss)
}

func TestSampleUndefinedEverywhere(t *testing.T) {
	vp := NewViewport(-1, 1, -1, 1, 10, 10)
	ss := NewSampler().Sample(expr.MustCompile("sqrt(-1 - x^2)"), vp, 0)
	assert.Equal(t, 11, ss.Len())
	assert.Empty(t, ss.Runs())
	_, ok := ss.YRange()
	assert.False(t, ok)
}

func TestSampleSetYRange(t *testing.T) {
	ss := &SampleSet{Samples: []Sample{{X: 0, Y: 3, Defined: true}, undefinedAt(1), {X: 2, Y: -1, Defined: true}}}
	r, ok := ss.YRange()
	assert.True(t, ok)
	assert.Equal(t, -1.0, r.Min)
	assert.Equal(t, 3.0, r.Max)
	assert.Len(t, ss.Runs(), 2)

	var empty *SampleSet
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Runs())
}
