// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr compiles mathematical expressions of one variable,
// such as "sin(x)/x" or "2x^2 - 3", into functions that can be
// evaluated efficiently for plotting.
//
// Compilation runs in three stages: [Tokens] lexes the source lazily,
// [Parse] builds an expression tree by recursive descent, and [Compile]
// binds the tree to the parameter, constants and [Builtins], reporting
// unknown names and wrong argument counts.
//
//	f, err := expr.CompileString("2*x + 1")
//	if err != nil {
//		return err
//	}
//	y, ok := f.Eval(3) // 7, true
//
// Evaluation never fails: points where the function has no value, such
// as sqrt(-1), log(0) or 1/0, are reported as undefined through the
// second result of [Function.Eval].
package expr
