// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"testing"

	"cogentcore.org/lambdaplot/base/iox/imagex"
	"cogentcore.org/lambdaplot/colors"
	"cogentcore.org/lambdaplot/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterRender(t *testing.T) {
	p := New(NewViewport(-5, 5, -5, 5, 160, 120))
	require.NoError(t, p.SetExpression(0, "sin(x)"))
	require.NoError(t, p.SetExpression(1, "1/x"))

	rs, err := NewRaster(160, 120)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(160, 120), rs.Size())
	p.Frame().Render(rs)
	im := rs.Image()
	assert.Greater(t, imagex.CountNot(im, p.Theme.Background), 500)

	// curve color appears somewhere along sin
	found := false
	c := p.Curve(0).Style.Color
	for x := 0; x < 160 && !found; x++ {
		for y := 0; y < 120; y++ {
			if im.RGBAAt(x, y) == c {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestRasterClear(t *testing.T) {
	rs, err := NewRaster(20, 10)
	require.NoError(t, err)
	rs.Clear(colors.Black)
	assert.Equal(t, 0, imagex.CountNot(rs.Image(), colors.Black))
	rs.Clear(colors.White)
	assert.Equal(t, 0, imagex.CountNot(rs.Image(), colors.White))
}

func TestRasterText(t *testing.T) {
	rs, err := NewRaster(60, 30)
	require.NoError(t, err)
	rs.Clear(colors.White)
	rs.Text(math32.Vec2(2, 2), "123", colors.Black)
	assert.Greater(t, imagex.CountNot(rs.Image(), colors.White), 10)
}

func TestRasterCulls(t *testing.T) {
	rs, err := NewRaster(20, 20)
	require.NoError(t, err)
	rs.Clear(colors.White)
	st := LineStyle{Color: colors.Black, Width: 2}
	rs.Polyline([]math32.Vector2{math32.Vec2(-50, -50), math32.Vec2(-10, -40)}, st)
	rs.Points([]math32.Vector2{math32.Vec2(100, 100)}, st)
	rs.Polyline([]math32.Vector2{math32.Vec2(5, 5)}, st)
	assert.Equal(t, 0, imagex.CountNot(rs.Image(), colors.White))

	rs.Points([]math32.Vector2{math32.Vec2(10, 10)}, st)
	assert.Equal(t, 16, imagex.CountNot(rs.Image(), colors.White))
}
