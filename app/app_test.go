// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"

	"cogentcore.org/lambdaplot/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppFrameLoop(t *testing.T) {
	a := New(nil)
	f, changed := a.Frame(ms(0))
	assert.True(t, changed)
	assert.Empty(t, f.Curves)

	a.Push(EditEvent{ID: 0, Text: "x^"})
	a.Push(EditEvent{ID: 0, Text: "x^2"})
	assert.True(t, a.Pending())
	f, changed = a.Frame(ms(10))
	assert.False(t, changed)
	assert.Empty(t, f.Curves)

	f, changed = a.Frame(ms(260))
	assert.True(t, changed)
	require.Len(t, f.Curves, 1)
	assert.Equal(t, "x^2", f.Curves[0].Label)
	assert.False(t, a.Pending())

	_, changed = a.Frame(ms(300))
	assert.False(t, changed)

	a.Push(PanEvent{DX: 40, DY: 0})
	_, changed = a.Frame(ms(310))
	assert.True(t, changed)
	assert.Less(t, a.Plot.Viewport.X().Min, -10.0)
}

func TestAppKeepsFunctionOnError(t *testing.T) {
	a := New(nil)
	a.Push(EditEvent{ID: 1, Text: "2*x+1"})
	a.Flush()
	a.Push(EditEvent{ID: 1, Text: "2+"})
	a.Frame(ms(0))
	a.Frame(ms(1000))

	errs := a.Errors()
	require.Contains(t, errs, 1)
	assert.ErrorIs(t, errs[1], expr.ErrSyntax)
	y, ok := a.Plot.Curve(1).Eval(3)
	assert.True(t, ok)
	assert.Equal(t, 7.0, y)
}

func TestAppViewEvents(t *testing.T) {
	a := New(nil)
	a.Push(EditEvent{ID: 0, Text: "x^2"})
	a.Flush()
	a.Push(ResizeEvent{Width: 400, Height: 300})
	a.Push(ZoomEvent{Factor: 0.5, X: 200, Y: 150})
	f, _ := a.Frame(ms(0))
	assert.Equal(t, 400, f.Width)
	assert.Equal(t, 300, f.Height)

	a.Push(FitEvent{})
	a.Frame(ms(1))
	assert.InDelta(t, 6.5625, a.Plot.Viewport.Y().Max, 1e-9)
	assert.InDelta(t, -0.3125, a.Plot.Viewport.Y().Min, 1e-9)

	a.Push(EditEvent{ID: 0, Text: "x"})
	a.Push(RemoveEvent{ID: 0})
	f, changed := a.Frame(ms(2))
	assert.True(t, changed)
	assert.Empty(t, f.Curves)
	assert.False(t, a.Pending())

	_, ok := a.NextEdit(ms(3))
	assert.False(t, ok)
}
