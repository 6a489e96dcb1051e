// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundTrip = []string{
	"2*x+1",
	"2x",
	"-x^2",
	"(-x)^2",
	"2^3^2",
	"(2^3)^2",
	"1 - (2 - 3)",
	"1 - 2 - 3",
	"x / (2 * x)",
	"x / 2 * x",
	"--x",
	"+x",
	"-(x + 1)",
	"sin(x)^2 + cos(x)^2",
	"max(x, -x) * 2pi",
	"2^-x",
	"e^-(x^2)",
	"1e-3 * x",
	".5x",
}

func TestFormatRoundTrip(t *testing.T) {
	for _, src := range roundTrip {
		n, err := ParseString(src)
		require.NoError(t, err, src)

		f, err := ParseString(Format(n))
		require.NoError(t, err, Format(n))
		assert.True(t, Equal(n, f), "%s -> %s", src, Format(n))

		c, err := ParseString(Canonical(n))
		require.NoError(t, err, Canonical(n))
		assert.True(t, Equal(n, c), "%s -> %s", src, Canonical(n))
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"((2 * x) + 1)", "2*x + 1"},
		{"2x", "2*x"},
		{"(-x)^2", "(-x)^2"},
		{"-(x^2)", "-x^2"},
		{"(2^3)^2", "(2^3)^2"},
		{"2^(3^2)", "2^3^2"},
		{"1 - (2 - 3)", "1 - (2 - 3)"},
		{"(1 - 2) - 3", "1 - 2 - 3"},
		{"x / (2 * x)", "x/(2*x)"},
		{"-(x + 1)", "-(x + 1)"},
		{"2 * -x", "2*-x"},
		{"max(  x,1 )", "max(x, 1)"},
	}
	for _, test := range tests {
		n, err := ParseString(test.src)
		require.NoError(t, err, test.src)
		assert.Equal(t, test.want, Canonical(n), test.src)
	}
}

func TestFormatBuiltTree(t *testing.T) {
	n := &Binary{Op: '+', Left: &Literal{Value: -2}, Right: &Variable{Name: "x"}}
	assert.Equal(t, "((-2) + x)", Format(n))
	assert.Equal(t, "(-2) + x", Canonical(n))

	p, err := ParseString(Canonical(n))
	require.NoError(t, err)
	assert.True(t, Equal(&Binary{Op: '+', Left: &Unary{Op: '-', X: &Literal{Value: 2}}, Right: &Variable{Name: "x"}}, p))
}

func TestEqual(t *testing.T) {
	a, _ := ParseString("2x + 1")
	b, _ := ParseString("2 * x + 1")
	c, _ := ParseString("2 * x + 2")
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(&Variable{Name: "x"}, &Literal{Value: 1}))
	assert.False(t, Equal(&Call{Name: "f"}, &Call{Name: "f", Args: []Node{&Variable{Name: "x"}}}))
}
