// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// The grammar, from lowest to highest precedence:
//
//	expr  = term { ("+" | "-") term }
//	term  = unary { ("*" | "/") unary | unary }   // the second form is implicit *
//	unary = ("-" | "+") unary | power
//	power = atom [ "^" unary ]
//	atom  = number | ident | ident "(" [ expr { "," expr } ] ")" | "(" expr ")"
//
// power recurses through unary on its right side, which makes ^
// right-associative and lets it bind tighter than a leading minus:
// -x^2 is -(x^2) and 2^-1 is 2^(-1).

// maxNesting bounds the recursion depth of the parser.
const maxNesting = 200

// ParseOption configures [Parse].
type ParseOption func(*parseConfig)

type parseConfig struct {
	implicit bool
}

// WithImplicitMultiplication sets whether an operand directly followed by
// a number, an identifier or an opening parenthesis is read as a product,
// as in 2x, 3(x+1) or (x+1)2. It is on by default.
func WithImplicitMultiplication(on bool) ParseOption {
	return func(c *parseConfig) { c.implicit = on }
}

type parser struct {
	toks  []Token
	pos   int
	depth int
	cfg   parseConfig
}

// Parse parses a token sequence as produced by [Tokenize] into an
// expression tree. Errors are of type [*ParseError].
func Parse(toks []Token, opts ...ParseOption) (Node, error) {
	p := &parser{toks: toks, cfg: parseConfig{implicit: true}}
	for _, o := range opts {
		o(&p.cfg)
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Kind != End {
		return nil, p.errorf(t, "operator or end of input")
	}
	return n, nil
}

// ParseString tokenizes and parses src.
func ParseString(src string, opts ...ParseOption) (Node, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts...)
}

// peek returns the current token without consuming it.
// Running off the end of the slice yields an End token.
func (p *parser) peek() Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	end := 0
	if n := len(p.toks); n > 0 {
		last := p.toks[n-1]
		end = last.Pos + len(last.Text)
	}
	return Token{Kind: End, Pos: end}
}

// next consumes and returns the current token.
func (p *parser) next() Token {
	t := p.peek()
	if p.pos < len(p.toks) && t.Kind != End {
		p.pos++
	}
	return t
}

func (p *parser) errorf(found Token, expected string) *ParseError {
	return &ParseError{Pos: found.Pos, Expected: expected, Found: found.String()}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxNesting {
		return p.errorf(p.peek(), "less deeply nested expression")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) expr() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if !t.Is('+') && !t.Is('-') {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: t.Op(), Left: left, Right: right, Start: left.Pos()}
	}
}

func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		implicit := false
		switch {
		case t.Is('*') || t.Is('/'):
			p.next()
		case p.cfg.implicit && t.startsAtom():
			implicit = true
		default:
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		op := t.Op()
		if implicit {
			op = '*'
		}
		left = &Binary{Op: op, Left: left, Right: right, Implicit: implicit, Start: left.Pos()}
	}
}

func (p *parser) unary() (Node, error) {
	t := p.peek()
	if !t.Is('-') && !t.Is('+') {
		return p.power()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &Unary{Op: t.Op(), X: x, Start: t.Pos}, nil
}

func (p *parser) power() (Node, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if !p.peek().Is('^') {
		return base, nil
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: '^', Left: base, Right: exp, Start: base.Pos()}, nil
}

func (p *parser) atom() (Node, error) {
	t := p.peek()
	switch t.Kind {
	case Number:
		p.next()
		return &Literal{Value: t.Value, Text: t.Text, Start: t.Pos}, nil
	case Identifier:
		p.next()
		if p.peek().Kind == LParen {
			return p.call(t)
		}
		return &Variable{Name: t.Text, Start: t.Pos}, nil
	case LParen:
		p.next()
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c := p.peek(); c.Kind != RParen {
			return nil, p.errorf(c, "')'")
		}
		p.next()
		return x, nil
	}
	return nil, p.errorf(t, "operand")
}

// call parses the argument list of a call to name; the current
// token is the opening parenthesis.
func (p *parser) call(name Token) (Node, error) {
	p.next()
	c := &Call{Name: name.Text, Start: name.Pos}
	if p.peek().Kind == RParen {
		p.next()
		return c, nil
	}
	for {
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		c.Args = append(c.Args, a)
		switch t := p.peek(); t.Kind {
		case Comma:
			p.next()
		case RParen:
			p.next()
			return c, nil
		default:
			return nil, p.errorf(t, "',' or ')'")
		}
	}
}
