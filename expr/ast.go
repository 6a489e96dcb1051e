// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "fmt"

// Node is a node of the expression tree. The set of node types is
// closed: [*Literal], [*Variable], [*Unary], [*Binary] and [*Call].
// Code that traverses a tree switches on these types and panics
// on anything else.
type Node interface {
	// Pos returns the byte offset of the node in the source.
	Pos() int

	node()
}

// Literal is a numeric constant written in the source.
type Literal struct {
	Value float64

	// Text is the source text, used for printing.
	Text  string
	Start int
}

// Variable is a reference to the parameter or a named constant.
type Variable struct {
	Name  string
	Start int
}

// Unary is a prefix - or + applied to X.
type Unary struct {
	Op    byte
	X     Node
	Start int
}

// Binary is one of + - * / ^ applied to Left and Right.
type Binary struct {
	Op          byte
	Left, Right Node

	// Implicit is set for multiplications that were inserted
	// between adjacent operands, as in 2x.
	Implicit bool
	Start    int
}

// Call is a call of a named function.
type Call struct {
	Name  string
	Args  []Node
	Start int
}

func (n *Literal) Pos() int  { return n.Start }
func (n *Variable) Pos() int { return n.Start }
func (n *Unary) Pos() int    { return n.Start }
func (n *Binary) Pos() int   { return n.Start }
func (n *Call) Pos() int     { return n.Start }

func (*Literal) node()  {}
func (*Variable) node() {}
func (*Unary) node()    {}
func (*Binary) node()   {}
func (*Call) node()     {}

// Walk calls fn for n and then, if fn returns true, for each of
// its children in source order.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Literal, *Variable:
	case *Unary:
		Walk(n.X, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Call:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	default:
		panic(fmt.Sprintf("expr: unexpected node %T", n))
	}
}

// Equal reports whether a and b are structurally equal trees.
// Source positions, literal text and the Implicit flag are ignored.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && (a.Value == b.Value || a.Value != a.Value && b.Value != b.Value)
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.Name == b.Name
	case *Unary:
		b, ok := b.(*Unary)
		return ok && a.Op == b.Op && Equal(a.X, b.X)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Call:
		b, ok := b.(*Call)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("expr: unexpected node %T", a))
	}
}
