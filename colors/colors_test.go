// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"1F77E0", color.RGBA{0x1F, 0x77, 0xE0, 0xFF}},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}},
	}
	for _, test := range tests {
		c, err := FromHex(test.hex)
		require.NoError(t, err, test.hex)
		assert.Equal(t, test.want, c, test.hex)
	}
	_, err := FromHex("#12345")
	assert.Error(t, err)
	_, err = FromHex("#zzzzzz")
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromHex("red") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#1F77E0", AsHex(color.RGBA{0x1F, 0x77, 0xE0, 0xFF}))
	assert.Equal(t, "#00000080", AsHex(color.RGBA{0, 0, 0, 0x80}))
	for i := range 16 {
		c, err := FromHex(AsHex(Spaced(i)))
		require.NoError(t, err)
		assert.Equal(t, Spaced(i), c)
	}
}

func TestSpaced(t *testing.T) {
	assert.NotEqual(t, Spaced(0), Spaced(1))
	assert.NotEqual(t, Spaced(0), Spaced(8))
	assert.Equal(t, Spaced(3), Spaced(19))
}

func TestWithA(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 0, 0, 128}, WithA(color.RGBA{100, 0, 0, 255}, 128))
	assert.Equal(t, color.RGBA{}, WithA(color.RGBA{}, 128))
}
