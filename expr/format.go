// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns the expression with every operation parenthesized,
// as in ((2 * x) + 1). Parsing the result yields an [Equal] tree.
func Format(n Node) string {
	b := &strings.Builder{}
	format(b, n)
	return b.String()
}

func format(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Literal:
		b.WriteString(literalText(n))
	case *Variable:
		b.WriteString(n.Name)
	case *Unary:
		b.WriteByte('(')
		b.WriteByte(n.Op)
		format(b, n.X)
		b.WriteByte(')')
	case *Binary:
		b.WriteByte('(')
		format(b, n.Left)
		b.WriteByte(' ')
		b.WriteByte(n.Op)
		b.WriteByte(' ')
		format(b, n.Right)
		b.WriteByte(')')
	case *Call:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, a)
		}
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("expr: unexpected node %T", n))
	}
}

// precedence levels used by [Canonical]
const (
	precAdd = iota + 1
	precMul
	precUnary
	precPow
	precAtom
)

func precOf(n Node) int {
	switch n := n.(type) {
	case *Literal, *Variable, *Call:
		return precAtom
	case *Unary:
		return precUnary
	case *Binary:
		switch n.Op {
		case '+', '-':
			return precAdd
		case '*', '/':
			return precMul
		}
		return precPow
	default:
		panic(fmt.Sprintf("expr: unexpected node %T", n))
	}
}

// Canonical returns the expression with only the parentheses needed to
// preserve its structure, and implicit products written out, as in
// 2*x + 1.
func Canonical(n Node) string {
	b := &strings.Builder{}
	canonical(b, n, 0)
	return b.String()
}

func canonical(b *strings.Builder, n Node, min int) {
	if precOf(n) < min {
		b.WriteByte('(')
		canonical(b, n, 0)
		b.WriteByte(')')
		return
	}
	switch n := n.(type) {
	case *Literal:
		b.WriteString(literalText(n))
	case *Variable:
		b.WriteString(n.Name)
	case *Unary:
		b.WriteByte(n.Op)
		canonical(b, n.X, precUnary)
	case *Binary:
		switch n.Op {
		case '+', '-':
			canonical(b, n.Left, precAdd)
			b.WriteString(" " + string(n.Op) + " ")
			canonical(b, n.Right, precMul)
		case '*', '/':
			canonical(b, n.Left, precMul)
			b.WriteByte(n.Op)
			canonical(b, n.Right, precUnary)
		default:
			canonical(b, n.Left, precAtom)
			b.WriteByte(n.Op)
			canonical(b, n.Right, precUnary)
		}
	case *Call:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			canonical(b, a, 0)
		}
		b.WriteByte(')')
	}
}

// literalText returns the source text of a literal, or a formatted
// value for literals that were built in code. Negative values are
// parenthesized so that they read back as a negation.
func literalText(n *Literal) string {
	if n.Text != "" {
		return n.Text
	}
	s := strconv.FormatFloat(n.Value, 'g', -1, 64)
	if n.Value < 0 {
		return "(" + s + ")"
	}
	return s
}
