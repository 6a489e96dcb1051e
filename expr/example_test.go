// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"fmt"

	"cogentcore.org/lambdaplot/expr"
)

func ExampleCompileString() {
	f, err := expr.CompileString("2x^2 - 1")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, x := range []float64{-1, 0, 3} {
		y, _ := f.Eval(x)
		fmt.Println(y)
	}
	fmt.Println(f)
	// Output:
	// 1
	// -1
	// 17
	// 2*x^2 - 1
}

func ExampleFunction_Eval() {
	f := expr.MustCompile("sqrt(x)")
	y, ok := f.Eval(-1)
	fmt.Println(y, ok)
	// Output: NaN false
}

func ExampleSemanticError() {
	_, err := expr.CompileString("sqr(x)")
	fmt.Println(err)
	// Output: unknown function "sqr" at position 0 (did you mean "sqrt"?)
}
