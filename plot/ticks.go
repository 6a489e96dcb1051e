// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cmp"
	"math"
	"strconv"
)

// DefaultTicks is the default target number of ticks per axis.
const DefaultTicks = 8

// Tick is an axis tick mark.
type Tick struct {
	// Value is the data coordinate of the tick.
	Value float64

	// Label is the formatted value, with the fewest decimals
	// needed to tell neighboring ticks apart.
	Label string
}

// Ticker computes tick marks for an axis range.
type Ticker interface {
	// Ticks returns the ticks inside [min, max] in increasing order.
	Ticks(min, max float64) []Tick
}

// NiceTicker is the default [Ticker], using [NiceTicks].
type NiceTicker struct {
	// N is the target number of ticks; DefaultTicks if zero.
	N int
}

func (t NiceTicker) Ticks(min, max float64) []Tick {
	return NiceTicks(min, max, cmp.Or(t.N, DefaultTicks))
}

// TalbotTicker is a [Ticker] using [TalbotTicks].
type TalbotTicker struct {
	// N is the target number of ticks; DefaultTicks if zero.
	N int
}

func (t TalbotTicker) Ticks(min, max float64) []Tick {
	return TalbotTicks(min, max, cmp.Or(t.N, DefaultTicks))
}

// NiceNum returns a "nice" number approximately equal to x: 1, 2 or 5
// times a power of ten. If round is set the nearest nice number is
// returned, otherwise the smallest one not less than x.
func NiceNum(x float64, round bool) float64 {
	if x <= 0 || !finite(x) {
		return 0
	}
	exp := math.Floor(math.Log10(x))
	pow := math.Pow(10, exp)
	f := x / pow
	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * pow
}

// NiceTicks returns about want ticks spaced by a nice number over
// [min, max], using loose labelling. Only ticks inside the range are
// returned.
func NiceTicks(min, max float64, want int) []Tick {
	if !(min < max) || !finite(min) || !finite(max) {
		return nil
	}
	if want < 2 {
		want = 2
	}
	rng := NiceNum(max-min, false)
	step := NiceNum(rng/float64(want-1), true)
	if step == 0 {
		return nil
	}
	return stepTicks(min, max, step)
}

// TalbotTicks returns ticks chosen with the Talbot, Lin and Hanrahan
// optimization over the nice steps 1, 5 and 2 times a power of ten.
// Only ticks inside [min, max] are returned.
func TalbotTicks(min, max float64, want int) []Tick {
	if !(min < max) || !finite(min) || !finite(max) {
		return nil
	}
	if want < 2 {
		want = 2
	}
	values, step, _ := talbotLinHanrahan(min, max, want, talbotQ, talbotWeights)
	if step == 0 {
		return NiceTicks(min, max, want)
	}
	prec := decimals(step)
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		if v < min-step*1e-9 || v > max+step*1e-9 {
			continue
		}
		ticks = append(ticks, Tick{Value: snapZero(v, step), Label: formatTick(v, step, prec)})
	}
	return ticks
}

// stepTicks returns the multiples of step inside [min, max].
func stepTicks(min, max, step float64) []Tick {
	first := math.Ceil(min/step - 1e-9)
	last := math.Floor(max/step + 1e-9)
	if last-first > 1e4 {
		return nil
	}
	prec := decimals(step)
	ticks := make([]Tick, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		v := snapZero(i*step, step)
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v, step, prec)})
	}
	return ticks
}

// decimals returns the number of decimals needed to print
// multiples of step exactly.
func decimals(step float64) int {
	d := -int(math.Floor(math.Log10(step) + 1e-9))
	if d < 0 {
		return 0
	}
	return d
}

func snapZero(v, step float64) float64 {
	if math.Abs(v) < step*1e-9 {
		return 0
	}
	return v
}

// formatTick formats v with prec decimals, switching to exponent
// notation for very large or very small magnitudes.
func formatTick(v, step float64, prec int) string {
	v = snapZero(v, step)
	if a := math.Abs(v); a >= 1e7 || prec > 6 {
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
