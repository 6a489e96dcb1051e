// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []TokenKind {
	ks := make([]TokenKind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenize(t *testing.T) {
	toks, err := Tokenize(" sin(2.5e-1 * x_1) ^ -pi, .5")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{Identifier, LParen, Number, Operator, Identifier, RParen, Operator, Operator, Identifier, Comma, Number, End}, kinds(toks))
	assert.Equal(t, "sin", toks[0].Text)
	assert.Equal(t, 1, toks[0].Pos)
	assert.Equal(t, 0.25, toks[2].Value)
	assert.Equal(t, "x_1", toks[4].Text)
	assert.Equal(t, byte('^'), toks[6].Op())
	assert.True(t, toks[7].Is('-'))
	assert.Equal(t, 0.5, toks[10].Value)
	assert.Equal(t, 28, toks[11].Pos)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want []float64
	}{
		{"12", []float64{12}},
		{"3.", []float64{3}},
		{"1E3", []float64{1000}},
		{"1e+2", []float64{100}},
		{"4.5e-1", []float64{0.45}},
		{"1.2.3", []float64{1.2, 0.3}},
	}
	for _, test := range tests {
		toks, err := Tokenize(test.src)
		require.NoError(t, err, test.src)
		var got []float64
		for _, tok := range toks {
			if tok.Kind == Number {
				got = append(got, tok.Value)
			}
		}
		assert.Equal(t, test.want, got, test.src)
	}
}

func TestTokenizeExponentWithoutDigits(t *testing.T) {
	toks, err := Tokenize("2e")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{Number, Identifier, End}, kinds(toks))
	assert.Equal(t, "e", toks[1].Text)

	toks, err = Tokenize("2ex")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{Number, Identifier, End}, kinds(toks))
	assert.Equal(t, "ex", toks[1].Text)
}

func TestTokenizeError(t *testing.T) {
	_, err := Tokenize("2 $ x")
	var le *LexError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Pos)
	assert.Equal(t, '$', le.Char)
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Tokenize("x·2")
	require.True(t, errors.As(err, &le))
	assert.Equal(t, '·', le.Char)
}

func TestTokensLazy(t *testing.T) {
	n := 0
	for tok, err := range Tokens("1 + 2 $") {
		require.NoError(t, err)
		n++
		if tok.Kind == Operator {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestTokensEnd(t *testing.T) {
	var toks []Token
	for tok, err := range Tokens("   ") {
		require.NoError(t, err)
		toks = append(toks, tok)
	}
	require.Len(t, toks, 1)
	assert.Equal(t, End, toks[0].Kind)
	assert.Equal(t, 3, toks[0].Pos)
}
