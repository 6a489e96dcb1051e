// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"testing"

	"cogentcore.org/lambdaplot/base/tolassert"
	"cogentcore.org/lambdaplot/expr"
	"cogentcore.org/lambdaplot/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlot() *Plot {
	return New(NewViewport(-10, 10, -10, 10, 200, 200))
}

func TestSetExpression(t *testing.T) {
	p := newTestPlot()
	require.NoError(t, p.SetExpression(1, "2*x+1"))
	c := p.Curve(1)
	require.NotNil(t, c)
	y, ok := c.Eval(3)
	assert.True(t, ok)
	assert.Equal(t, 7.0, y)
	assert.Equal(t, "2*x+1", c.Label())

	err := p.SetExpression(1, "2+")
	var pe *expr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, err, c.Err)
	assert.Equal(t, "2+", c.Source)
	y, ok = c.Eval(3)
	assert.True(t, ok)
	assert.Equal(t, 7.0, y, "previous function stays in place")

	require.NoError(t, p.SetExpression(1, "x^2"))
	assert.NoError(t, c.Err)
	y, _ = c.Eval(-2)
	assert.Equal(t, 4.0, y)
}

func TestSetExpressionNewCurveFails(t *testing.T) {
	p := newTestPlot()
	err := p.SetExpression(3, "sinx(x)")
	assert.ErrorIs(t, err, expr.ErrSemantic)
	c := p.Curve(3)
	require.NotNil(t, c)
	assert.Nil(t, c.Function())
	_, ok := c.Eval(1)
	assert.False(t, ok)
	p.Update()
	assert.Nil(t, c.Samples())
	assert.Empty(t, p.Frame().Curves)
}

func TestCurvesOrder(t *testing.T) {
	p := newTestPlot()
	for _, id := range []int{5, 1, 3} {
		require.NoError(t, p.SetExpression(id, "x"))
	}
	var ids []int
	for _, c := range p.Curves() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{1, 3, 5}, ids)
	assert.Equal(t, 6, p.NextID())

	assert.True(t, p.Remove(3))
	assert.False(t, p.Remove(3))
	assert.Nil(t, p.Curve(3))
	assert.Len(t, p.Curves(), 2)

	p.Reset()
	assert.Empty(t, p.Curves())
	assert.Equal(t, 0, p.NextID())
}

func TestUpdateResamplesOnChange(t *testing.T) {
	p := newTestPlot()
	require.NoError(t, p.SetExpression(0, "sin(x)"))
	require.NoError(t, p.SetExpression(1, "cos(x)"))
	assert.Equal(t, 2, p.Update())
	assert.Equal(t, 0, p.Update())

	p.Viewport.Pan(10, 0)
	assert.Equal(t, 2, p.Update())

	require.NoError(t, p.SetExpression(1, "cos(2x)"))
	assert.Equal(t, 1, p.Update())

	p.SetExpression(1, "cos(")
	assert.Equal(t, 0, p.Update())

	st := p.Curve(0).Style
	st.Offset = 1
	require.NoError(t, p.SetStyle(0, st))
	assert.Equal(t, 1, p.Update())

	st.Color.R++
	require.NoError(t, p.SetStyle(0, st))
	assert.Equal(t, 0, p.Update())

	assert.ErrorIs(t, p.SetStyle(9, st), ErrNoCurve)
}

func TestCurveScaleOffset(t *testing.T) {
	p := newTestPlot()
	require.NoError(t, p.SetExpression(0, "x"))
	c := p.Curve(0)
	c.Style.Scale = 2
	c.Style.Offset = -1
	y, ok := c.Eval(3)
	assert.True(t, ok)
	assert.Equal(t, 5.0, y)

	p.Update()
	for _, s := range c.Samples().Samples {
		tolassert.EqualTol(t, 2*s.X-1, s.Y, 1e-12)
	}
}

func TestAutoFit(t *testing.T) {
	p := newTestPlot()
	require.NoError(t, p.SetExpression(0, "x^2"))
	assert.True(t, p.AutoFit())
	y := p.Viewport.Y()
	assert.Less(t, y.Min, 0.0)
	assert.Greater(t, y.Max, 100.0)
	assert.Less(t, y.Max, 110.0)
	assert.Equal(t, -10.0, p.Viewport.X().Min)

	p.Curve(0).Style.Show = false
	assert.False(t, p.AutoFit())
}

func TestFrame(t *testing.T) {
	p := newTestPlot()
	require.NoError(t, p.SetExpression(0, "1/x"))
	require.NoError(t, p.SetExpression(1, "x"))
	p.Curve(1).Style.Kind = Stairs
	require.NoError(t, p.SetExpression(2, "x"))
	p.Curve(2).Style.Show = false

	f := p.Frame()
	assert.Equal(t, 200, f.Width)
	assert.Equal(t, 200, f.Height)
	assert.True(t, f.ShowXAxis)
	assert.True(t, f.ShowYAxis)
	assert.Equal(t, math32.Vec2(100, 100), f.Origin)
	require.Len(t, f.Curves, 2)
	assert.Len(t, f.Curves[0].Runs, 2)

	stairs := f.Curves[1].Runs[0]
	n := p.Curve(1).Samples().Len()
	assert.Len(t, stairs, 2*n-1)
	assert.Equal(t, stairs[1].X, stairs[2].X)
	assert.Equal(t, stairs[0].Y, stairs[1].Y)

	for _, tk := range f.XTicks {
		assert.InDelta(t, p.Viewport.PX(tk.Value), tk.Pos, 1e-3)
	}
	assert.NotEmpty(t, f.YTicks)

	// guard band
	for _, run := range f.Curves[0].Runs {
		for _, v := range run {
			assert.True(t, v.Y >= -200 && v.Y <= 400, "%v", v)
		}
	}
}

func TestFrameRender(t *testing.T) {
	p := newTestPlot()
	require.NoError(t, p.SetExpression(0, "sqrt(x)"))
	require.NoError(t, p.SetExpression(1, "x/2"))
	p.Curve(1).Style.Kind = Scatter
	f := p.Frame()

	r := NewRecorder(200, 200)
	f.Render(r)
	require.NotEmpty(t, r.Ops)
	assert.Equal(t, "clear", r.Ops[0].Kind)
	assert.Equal(t, LightTheme.Background, r.Ops[0].Color)
	assert.Equal(t, 1, r.Count("points"))
	grid := len(f.XTicks) + len(f.YTicks)
	assert.Equal(t, grid+2+1, r.Count("polyline"))
	assert.Equal(t, len(f.XTicks)+len(f.YTicks)-1, r.Count("text"))

	last := r.Ops[len(r.Ops)-1]
	assert.Equal(t, "points", last.Kind)
	assert.Equal(t, p.Curve(1).Style.Color, last.Color)
}

func TestFrameOffscreenAxes(t *testing.T) {
	p := New(NewViewport(50, 60, 50, 60, 100, 100))
	f := p.Frame()
	assert.False(t, f.ShowXAxis)
	assert.False(t, f.ShowYAxis)
	assert.Equal(t, math32.Vec2(-100, 200), f.Origin)
}
