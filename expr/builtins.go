// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"maps"
	"math"
	"slices"
)

// Builtin is a function that can be called from an expression.
// Exactly one of F1, F2 and FN is set: F1 for Arity 1, F2 for
// Arity 2, and FN for any other arity.
type Builtin struct {
	Name  string
	Arity int

	F1 func(float64) float64
	F2 func(float64, float64) float64
	FN func(args ...float64) float64
}

// Constants are the named constants known to every expression.
var Constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}

// Builtins are the functions known to every expression.
// log is the natural logarithm, the same as ln.
var Builtins = map[string]*Builtin{}

func init() {
	for name, f := range map[string]func(float64) float64{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"abs":   math.Abs,
		"exp":   math.Exp,
		"ln":    math.Log,
		"log":   math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"sign":  sign,
	} {
		Builtins[name] = &Builtin{Name: name, Arity: 1, F1: f}
	}
	for name, f := range map[string]func(float64, float64) float64{
		"atan2": math.Atan2,
		"pow":   pow,
		"min":   math.Min,
		"max":   math.Max,
		"mod":   math.Mod,
		"hypot": math.Hypot,
	} {
		Builtins[name] = &Builtin{Name: name, Arity: 2, F2: f}
	}
}

// BuiltinNames returns the sorted names of all [Builtins].
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(Builtins))
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x == 0:
		return 0
	}
	return math.NaN()
}

// pow is [math.Pow], except that a NaN operand always gives NaN
// (math.Pow(NaN, 0) and math.Pow(1, NaN) are 1). 0^0 is 1.
func pow(x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN()
	}
	return math.Pow(x, y)
}
