// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func csvPlot(t *testing.T) *Plot {
	p := New(NewViewport(0, 2, -1, 1, 4, 4))
	require.NoError(t, p.SetExpression(0, "x"))
	require.NoError(t, p.SetExpression(1, "1/x"))
	p.Curve(1).Name = "inv"
	p.SetExpression(2, "x+")
	return p
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteCSV(&b, csvPlot(t), CSVOptions{}))
	want := `x;x;inv
0;0;
0.5;0.5;
1;1;1
1.5;;0.666667
2;;0.5
`
	assert.Equal(t, want, b.String())
}

func TestWriteCSVOptions(t *testing.T) {
	p := csvPlot(t)
	p.Curve(0).Style.Show = false

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, p, CSVOptions{Locale: language.German, Digits: 2}))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "x;inv", lines[0])
	assert.Equal(t, "1,5;0,67", lines[4])

	b.Reset()
	require.NoError(t, WriteCSV(&b, p, CSVOptions{Separator: '\t', All: true}))
	lines = strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, "x\tx\tinv", lines[0])
	assert.Equal(t, "1\t1\t1", lines[3])
}
