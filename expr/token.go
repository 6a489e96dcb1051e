// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"strconv"
)

// TokenKind is the kind of a lexical token.
type TokenKind uint8

const (
	// End marks the end of the input. The lexer always produces
	// exactly one End token as the last token.
	End TokenKind = iota

	// Number is a numeric literal: 12, 3.5, .5, 1e-3.
	Number

	// Identifier is a variable, constant or function name.
	Identifier

	// Operator is one of + - * / ^.
	Operator

	// LParen is (
	LParen

	// RParen is )
	RParen

	// Comma separates function arguments.
	Comma
)

// String returns a string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case End:
		return "end of input"
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Comma:
		return "','"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one lexical token of an expression.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind

	// Text is the source text of the token. For Operator tokens
	// it is the single operator character.
	Text string

	// Value is the parsed value of a Number token.
	Value float64

	// Pos is the byte offset of the token in the source.
	Pos int
}

// Op returns the operator character of an Operator token, or 0.
func (t Token) Op() byte {
	if t.Kind != Operator || t.Text == "" {
		return 0
	}
	return t.Text[0]
}

// Is reports whether the token is the operator op.
func (t Token) Is(op byte) bool {
	return t.Kind == Operator && t.Op() == op
}

// String returns a description of the token suitable for error messages.
func (t Token) String() string {
	switch t.Kind {
	case End:
		return t.Kind.String()
	case Number, Identifier:
		return t.Kind.String() + " " + strconv.Quote(t.Text)
	}
	return strconv.Quote(t.Text)
}

// startsAtom reports whether the token can begin an atom.
func (t Token) startsAtom() bool {
	return t.Kind == Number || t.Kind == Identifier || t.Kind == LParen
}
