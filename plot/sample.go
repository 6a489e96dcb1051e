// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/lambdaplot/math32/minmax"
)

// Sample is one evaluation of a function. Undefined samples have
// Defined false and a NaN Y.
type Sample struct {
	X, Y    float64
	Defined bool
}

// SampleSet is the ordered result of sampling a function over the
// visible x range. X is non-decreasing.
type SampleSet struct {
	Samples []Sample
}

// Len returns the number of samples.
func (ss *SampleSet) Len() int {
	if ss == nil {
		return 0
	}
	return len(ss.Samples)
}

// Runs splits the samples into maximal runs of defined samples.
// The runs share memory with Samples.
func (ss *SampleSet) Runs() [][]Sample {
	if ss == nil {
		return nil
	}
	var runs [][]Sample
	start := -1
	for i, s := range ss.Samples {
		switch {
		case s.Defined && start < 0:
			start = i
		case !s.Defined && start >= 0:
			runs = append(runs, ss.Samples[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, ss.Samples[start:])
	}
	return runs
}

// YRange returns the range of the defined y values, and false
// if there are none.
func (ss *SampleSet) YRange() (minmax.F64, bool) {
	r := minmax.F64{}
	r.SetInfinity()
	ok := false
	for _, s := range ss.Samples {
		if !s.Defined {
			continue
		}
		r.FitValInRange(s.Y)
		ok = true
	}
	return r, ok
}

func undefinedAt(x float64) Sample {
	return Sample{X: x, Y: math.NaN()}
}
