// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

const (
	MaxFloat64 float64 = 1.7976931348623158e+308
	MinFloat64 float64 = 2.2250738585072014e-308
)

// F64 represents a min / max range for float64 values.
// Supports clipping, renormalizing, etc
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling Fit*InRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// IsProper returns true if both bounds are finite and Min < Max,
// which is the requirement for a visible axis range.
func (mr F64) IsProper() bool {
	return mr.Min < mr.Max && !math.IsInf(mr.Min, 0) && !math.IsInf(mr.Max, 0)
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr F64) InRange(val float64) bool {
	return ((val >= mr.Min) && (val <= mr.Max))
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// Scale returns 1 / Range -- if Range = 0 then returns 0
func (mr F64) Scale() float64 {
	r := mr.Range()
	if r != 0 {
		return 1 / r
	}
	return 0
}

// Midpoint returns point halfway between Min and Max
func (mr F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range.
// Values outside the range map outside 0-1; no clipping is applied.
func (mr F64) NormValue(val float64) float64 {
	return (val - mr.Min) * mr.Scale()
}

// ProjValue projects a 0-1 normalized unit value into current Min / Max range (inverse of NormValue)
func (mr F64) ProjValue(val float64) float64 {
	return mr.Min + (val * mr.Range())
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// FitInRange adjusts our Min, Max to fit within those of other F64
// returns true if we had to adjust to fit.
func (mr *F64) FitInRange(oth F64) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}

// ScaleAbout multiplies the range by factor, keeping the given
// value at the same normalized position within the range.
func (mr *F64) ScaleAbout(factor, pivot float64) {
	mr.Min = pivot + (mr.Min-pivot)*factor
	mr.Max = pivot + (mr.Max-pivot)*factor
}

// Translate shifts both Min and Max by delta.
func (mr *F64) Translate(delta float64) {
	mr.Min += delta
	mr.Max += delta
}

// SetCenterRange sets Min and Max so the range is centered on ctr
// with the given total range.
func (mr *F64) SetCenterRange(ctr, rng float64) {
	mr.Min = ctr - 0.5*rng
	mr.Max = ctr + 0.5*rng
}

// Range64 represents an optional range constraint, where each bound
// only applies when its Fix flag is set.
type Range64 struct {
	// FixMin is whether Min is fixed.
	FixMin bool

	// FixMax is whether Max is fixed.
	FixMax bool

	// Min is the minimum value, used when FixMin is set.
	Min float64

	// Max is the maximum value, used when FixMax is set.
	Max float64
}

// Clamp returns the given min and max with any fixed bounds applied.
func (rr *Range64) Clamp(mnIn, mxIn float64) (mn, mx float64) {
	mn, mx = mnIn, mxIn
	if rr.FixMin && rr.Min < mx {
		mn = rr.Min
	}
	if rr.FixMax && rr.Max > mn {
		mx = rr.Max
	}
	return
}
