// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// DefaultParam is the name of the function parameter.
const DefaultParam = "x"

// CompileOption configures [Compile].
type CompileOption func(*compiler)

// WithParam sets the name of the function parameter; the default is x.
func WithParam(name string) CompileOption {
	return func(c *compiler) { c.param = name }
}

// WithConstant defines an additional named constant,
// or overrides a builtin one.
func WithConstant(name string, v float64) CompileOption {
	return func(c *compiler) { c.consts[name] = v }
}

// WithFunc defines an additional function of the given arity,
// or overrides a builtin one.
func WithFunc(name string, arity int, fn func(args ...float64) float64) CompileOption {
	return func(c *compiler) {
		c.funcs[name] = &Builtin{Name: name, Arity: arity, FN: fn}
	}
}

// WithParseOptions sets the options used to parse the source text
// in [CompileString]. They have no effect on [Compile].
func WithParseOptions(opts ...ParseOption) CompileOption {
	return func(c *compiler) { c.parse = append(c.parse, opts...) }
}

// evalFunc evaluates a compiled subtree at x. Undefined values are NaN.
type evalFunc func(x float64) float64

// Function is a compiled expression of a single parameter.
// It is immutable and safe for concurrent use.
type Function struct {
	src   string
	root  Node
	param string
	eval  evalFunc
}

// Eval evaluates the function at x. The second result is false when
// the function is undefined at x: a domain violation such as sqrt(-1)
// or log(0), a division by zero, or any intermediate overflow.
func (f *Function) Eval(x float64) (float64, bool) {
	y := f.eval(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return math.NaN(), false
	}
	return y, true
}

// Source returns the source text the function was compiled from,
// or the canonical form if it was compiled from a tree.
func (f *Function) Source() string { return f.src }

// AST returns the expression tree of the function.
func (f *Function) AST() Node { return f.root }

// Param returns the name of the function parameter.
func (f *Function) Param() string { return f.param }

// String returns the canonical form of the expression.
func (f *Function) String() string { return Canonical(f.root) }

type compiler struct {
	param  string
	consts map[string]float64
	funcs  map[string]*Builtin
	parse  []ParseOption
}

func newCompiler(opts []CompileOption) *compiler {
	c := &compiler{
		param:  DefaultParam,
		consts: maps.Clone(Constants),
		funcs:  maps.Clone(Builtins),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Compile binds every variable of the tree to the parameter or a
// constant and every call to a builtin of matching arity, in a single
// pass, and returns the resulting [Function]. The first failure is
// returned as a [*SemanticError]. Constants are not folded.
func Compile(root Node, opts ...CompileOption) (*Function, error) {
	return newCompiler(opts).function(root)
}

func (c *compiler) function(root Node) (*Function, error) {
	ev, err := c.compile(root)
	if err != nil {
		return nil, err
	}
	return &Function{src: Canonical(root), root: root, param: c.param, eval: ev}, nil
}

// CompileString tokenizes, parses and compiles src. Errors are of
// type [*LexError], [*ParseError] or [*SemanticError].
func CompileString(src string, opts ...CompileOption) (*Function, error) {
	c := newCompiler(opts)
	root, err := ParseString(src, c.parse...)
	if err != nil {
		return nil, err
	}
	f, err := c.function(root)
	if err != nil {
		return nil, err
	}
	f.src = src
	return f, nil
}

// MustCompile is like [CompileString] but panics on error.
// It simplifies safe initialization of global variables.
func MustCompile(src string, opts ...CompileOption) *Function {
	f, err := CompileString(src, opts...)
	if err != nil {
		panic(fmt.Sprintf("expr: CompileString(%q): %v", src, err))
	}
	return f
}

// undef maps infinities to NaN, so that an undefined intermediate
// value keeps the whole result undefined.
func undef(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func (c *compiler) compile(n Node) (evalFunc, error) {
	switch n := n.(type) {
	case *Literal:
		v := undef(n.Value)
		return func(float64) float64 { return v }, nil
	case *Variable:
		if n.Name == c.param {
			return func(x float64) float64 { return x }, nil
		}
		if v, ok := c.consts[n.Name]; ok {
			return func(float64) float64 { return v }, nil
		}
		return nil, c.unknownIdent(n)
	case *Unary:
		x, err := c.compile(n.X)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case '-':
			return func(v float64) float64 { return -x(v) }, nil
		case '+':
			return x, nil
		}
		panic(fmt.Sprintf("expr: unexpected unary operator %q", n.Op))
	case *Binary:
		return c.binary(n)
	case *Call:
		return c.call(n)
	default:
		panic(fmt.Sprintf("expr: unexpected node %T", n))
	}
}

func (c *compiler) binary(n *Binary) (evalFunc, error) {
	l, err := c.compile(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := c.compile(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case '+':
		return func(x float64) float64 { return undef(l(x) + r(x)) }, nil
	case '-':
		return func(x float64) float64 { return undef(l(x) - r(x)) }, nil
	case '*':
		return func(x float64) float64 { return undef(l(x) * r(x)) }, nil
	case '/':
		return func(x float64) float64 {
			d := r(x)
			if d == 0 {
				return math.NaN()
			}
			return undef(l(x) / d)
		}, nil
	case '^':
		return func(x float64) float64 { return undef(pow(l(x), r(x))) }, nil
	}
	panic(fmt.Sprintf("expr: unexpected binary operator %q", n.Op))
}

func (c *compiler) call(n *Call) (evalFunc, error) {
	b, ok := c.funcs[n.Name]
	if !ok {
		return nil, &SemanticError{Kind: UnknownFunction, Name: n.Name, Pos: n.Start,
			Suggestion: suggest(n.Name, slices.Collect(maps.Keys(c.funcs)))}
	}
	if len(n.Args) != b.Arity {
		return nil, &SemanticError{Kind: ArityMismatch, Name: n.Name, Pos: n.Start, Want: b.Arity, Got: len(n.Args)}
	}
	args := make([]evalFunc, len(n.Args))
	for i, a := range n.Args {
		ev, err := c.compile(a)
		if err != nil {
			return nil, err
		}
		args[i] = ev
	}
	switch {
	case b.F1 != nil:
		f, a := b.F1, args[0]
		return func(x float64) float64 { return undef(f(a(x))) }, nil
	case b.F2 != nil:
		f, a0, a1 := b.F2, args[0], args[1]
		return func(x float64) float64 { return undef(f(a0(x), a1(x))) }, nil
	}
	f := b.FN
	return func(x float64) float64 {
		vals := make([]float64, len(args))
		for i, a := range args {
			vals[i] = a(x)
		}
		return undef(f(vals...))
	}, nil
}

func (c *compiler) unknownIdent(n *Variable) *SemanticError {
	if _, isFunc := c.funcs[n.Name]; isFunc {
		return &SemanticError{Kind: UnknownIdentifier, Name: n.Name, Pos: n.Start, Suggestion: n.Name + "(" + c.param + ")"}
	}
	names := append(slices.Collect(maps.Keys(c.consts)), c.param)
	return &SemanticError{Kind: UnknownIdentifier, Name: n.Name, Pos: n.Start, Suggestion: suggest(n.Name, names)}
}
