// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"iter"
	"strconv"
	"unicode/utf8"
)

// Lexer scans an expression one token at a time.
// The zero value is not usable; use [NewLexer].
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a new [Lexer] for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token. After the End token has been returned,
// Next keeps returning End. An unrecognized character yields a [*LexError].
func (lx *Lexer) Next() (Token, error) {
	lx.skipSpace()
	if lx.pos >= len(lx.src) {
		return Token{Kind: End, Pos: len(lx.src)}, nil
	}
	start := lx.pos
	c := lx.src[lx.pos]
	switch {
	case isDigit(c) || (c == '.' && lx.pos+1 < len(lx.src) && isDigit(lx.src[lx.pos+1])):
		return lx.number()
	case isLetter(c):
		for lx.pos < len(lx.src) && isIdentChar(lx.src[lx.pos]) {
			lx.pos++
		}
		return Token{Kind: Identifier, Text: lx.src[start:lx.pos], Pos: start}, nil
	}
	lx.pos++
	switch c {
	case '+', '-', '*', '/', '^':
		return Token{Kind: Operator, Text: string(c), Pos: start}, nil
	case '(':
		return Token{Kind: LParen, Text: "(", Pos: start}, nil
	case ')':
		return Token{Kind: RParen, Text: ")", Pos: start}, nil
	case ',':
		return Token{Kind: Comma, Text: ",", Pos: start}, nil
	}
	r, _ := utf8.DecodeRuneInString(lx.src[start:])
	return Token{}, &LexError{Pos: start, Char: r}
}

// number scans a numeric literal: digits with at most one decimal point
// and an optional exponent. An 'e' that is not followed by digits is
// left for the next token, so that "2e" lexes as 2 and the constant e.
func (lx *Lexer) number() (Token, error) {
	start := lx.pos
	lx.digits()
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' {
		lx.pos++
		lx.digits()
	}
	if lx.pos < len(lx.src) && (lx.src[lx.pos] == 'e' || lx.src[lx.pos] == 'E') {
		p := lx.pos + 1
		if p < len(lx.src) && (lx.src[p] == '+' || lx.src[p] == '-') {
			p++
		}
		if p < len(lx.src) && isDigit(lx.src[p]) {
			lx.pos = p
			lx.digits()
		}
	}
	text := lx.src[start:lx.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat returns ±Inf for out of range values,
		// which evaluate as undefined samples.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			r, _ := utf8.DecodeRuneInString(text)
			return Token{}, &LexError{Pos: start, Char: r}
		}
	}
	return Token{Kind: Number, Text: text, Value: v, Pos: start}, nil
}

func (lx *Lexer) digits() {
	for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
		lx.pos++
	}
}

func (lx *Lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			lx.pos++
		default:
			return
		}
	}
}

// Tokens returns the lazy token sequence of src. The sequence ends
// after the End token, or after the first error.
func Tokens(src string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		lx := NewLexer(src)
		for {
			tok, err := lx.Next()
			if err != nil {
				yield(tok, err)
				return
			}
			if !yield(tok, nil) || tok.Kind == End {
				return
			}
		}
	}
}

// Tokenize returns all tokens of src, ending with an End token.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	for tok, err := range Tokens(src) {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
