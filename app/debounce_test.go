// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

func TestDebouncerQuietPeriod(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)
	d.Add(1, "s", ms(0))
	d.Add(1, "si", ms(100))
	d.Add(1, "sin(x)", ms(200))
	assert.Empty(t, d.Due(ms(300)))
	assert.Empty(t, d.Due(ms(449)))
	assert.Equal(t, []EditEvent{{ID: 1, Text: "sin(x)"}}, d.Due(ms(450)))
	assert.Empty(t, d.Due(ms(1000)))
	assert.Equal(t, 0, d.Len())
}

func TestDebouncerPerCurve(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)
	d.Add(2, "x", ms(0))
	d.Add(1, "y", ms(100))
	assert.Equal(t, []EditEvent{{ID: 2, Text: "x"}}, d.Due(ms(260)))

	w, ok := d.Next(ms(260))
	assert.True(t, ok)
	assert.Equal(t, 90*time.Millisecond, w)

	d.Add(3, "z", ms(300))
	d.Drop(1)
	assert.Equal(t, []EditEvent{{ID: 3, Text: "z"}}, d.Flush())
	_, ok = d.Next(ms(300))
	assert.False(t, ok)
}

func TestDebouncerZeroValue(t *testing.T) {
	var d Debouncer
	d.Add(0, "x", ms(0))
	assert.Equal(t, []EditEvent{{ID: 0, Text: "x"}}, d.Due(ms(0)))
}
