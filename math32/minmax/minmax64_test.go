// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var r F64
	r.SetInfinity()
	assert.False(t, r.IsValid())
	for _, v := range []float64{3, -1, 2} {
		r.FitValInRange(v)
	}
	assert.Equal(t, F64{-1, 3}, r)
	assert.Equal(t, 4.0, r.Range())
	assert.Equal(t, 0.25, r.Scale())
	assert.Equal(t, 1.0, r.Midpoint())
	assert.Equal(t, 0.5, r.NormValue(1))
	assert.Equal(t, 1.0, r.ProjValue(0.5))
	assert.Equal(t, 3.0, r.ClipValue(10))
	assert.True(t, r.InRange(0))
	assert.True(t, r.IsProper())

	r.ScaleAbout(0.5, 1)
	assert.Equal(t, F64{0, 2}, r)
	r.Translate(1)
	assert.Equal(t, F64{1, 3}, r)
	r.SetCenterRange(0, 10)
	assert.Equal(t, F64{-5, 5}, r)

	assert.False(t, (&F64{0, math.Inf(1)}).IsProper())
	assert.False(t, (&F64{1, 1}).IsProper())
}

func TestRange64(t *testing.T) {
	rr := Range64{FixMin: true, Min: -2}
	mn, mx := rr.Clamp(-10, 10)
	assert.Equal(t, -2.0, mn)
	assert.Equal(t, 10.0, mx)

	rr = Range64{FixMax: true, Max: 20}
	mn, mx = rr.Clamp(-10, 10)
	assert.Equal(t, -10.0, mn)
	assert.Equal(t, 20.0, mx)
}
