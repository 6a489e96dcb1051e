// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing, formatting and the
// default curve palette.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/lambdaplot/base/errors"
)

var (
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	Transparent = color.RGBA{}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromHex parses the given hex color string, with or without a
// leading #, in the forms rgb, rrggbb or rrggbbaa.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex is like [FromHex] but panics on error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// AsHex returns the color as #RRGGBB, or #RRGGBBAA
// when it is not opaque.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// WithA returns the color with its alpha set to a,
// scaling the premultiplied components.
func WithA(c color.Color, a uint8) color.RGBA {
	r := AsRGBA(c)
	if r.A == 0 {
		return color.RGBA{}
	}
	s := func(v uint8) uint8 { return uint8(uint32(v) * uint32(a) / uint32(r.A)) }
	return color.RGBA{s(r.R), s(r.G), s(r.B), a}
}

// spaced is blue, red, green, yellow, violet, aqua, orange, blueviolet.
var spaced = []color.RGBA{
	{0x1F, 0x77, 0xE0, 0xFF},
	{0xE0, 0x3C, 0x31, 0xFF},
	{0x2E, 0x9E, 0x4F, 0xFF},
	{0xC9, 0xA2, 0x27, 0xFF},
	{0xC2, 0x4B, 0xB8, 0xFF},
	{0x17, 0xA8, 0xC2, 0xFF},
	{0xE8, 0x83, 0x1C, 0xFF},
	{0x7E, 0x5B, 0xE6, 0xFF},
}

// Spaced returns a widely spaced sequence of colors for progressive
// values of the index, for assigning colors to curves. Every other
// pass through the sequence uses a darker tone.
func Spaced(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	c := spaced[idx%len(spaced)]
	if idx/len(spaced)%2 == 1 {
		c.R, c.G, c.B = c.R/4*3, c.G/4*3, c.B/4*3
	}
	return c
}
