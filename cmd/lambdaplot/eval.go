// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"cogentcore.org/lambdaplot/expr"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newEvalCmd(g *globals) *cobra.Command {
	var from, to, step float64
	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Print a table of x and f(x)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := expr.CompileString(args[0])
			if err != nil {
				return err
			}
			return evalTable(cmd.OutOrStdout(), f, from, to, step)
		},
	}
	fs := cmd.Flags()
	fs.Float64Var(&from, "from", -5, "first x")
	fs.Float64Var(&to, "to", 5, "last x")
	fs.Float64Var(&step, "step", 1, "x increment")
	return cmd
}

// maxRows bounds the length of an eval table.
const maxRows = 100000

func evalTable(w io.Writer, f *expr.Function, from, to, step float64) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("step must be positive, not %v", step)
	}
	if to < from {
		return fmt.Errorf("empty range [%v, %v]", from, to)
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	if n > maxRows {
		return fmt.Errorf("%d rows is more than %d", n, maxRows)
	}
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("x\tf(x)").Bold())
	for i := range n {
		x := from + float64(i)*step
		y, ok := f.Eval(x)
		ys := out.String("undefined").Faint().String()
		if ok {
			ys = strconv.FormatFloat(y, 'g', 10, 64)
		}
		fmt.Fprintf(w, "%s\t%s\n", strconv.FormatFloat(x, 'g', 10, 64), ys)
	}
	return nil
}
