// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CSVOptions configures [WriteCSV].
type CSVOptions struct {
	// Separator is the field separator; ';' if zero, which leaves the
	// comma free as a decimal separator.
	Separator rune

	// Locale selects the decimal separator of the values.
	// [language.Und] formats with a point.
	Locale language.Tag

	// Digits is the maximum number of fraction digits; 6 if zero.
	Digits int

	// All includes hidden curves.
	All bool
}

// WriteCSV writes the curves of p evaluated at the baseline sample
// positions of the current x range: a header line "x" followed by the
// curve labels, then one row per pixel column. A value that is
// undefined or outside the visible y range is left blank.
func WriteCSV(w io.Writer, p *Plot, opts CSVOptions) error {
	if opts.Separator == 0 {
		opts.Separator = ';'
	}
	if opts.Digits <= 0 {
		opts.Digits = 6
	}
	pr := message.NewPrinter(opts.Locale)
	format := func(v float64) string {
		return pr.Sprint(number.Decimal(v, number.NoSeparator(), number.MaxFractionDigits(opts.Digits)))
	}

	var curves []*Curve
	header := []string{"x"}
	for _, c := range p.Curves() {
		if c.Function() == nil || (!opts.All && !c.Style.Show) {
			continue
		}
		curves = append(curves, c)
		header = append(header, c.Label())
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.Separator
	if err := cw.Write(header); err != nil {
		return err
	}
	vp := p.Viewport
	xr, yr := vp.X(), vp.Y()
	width := vp.Width()
	row := make([]string, len(header))
	for i := 0; i <= width; i++ {
		x := xr.Min + xr.Range()*float64(i)/float64(width)
		if i == width {
			x = xr.Max
		}
		row[0] = format(x)
		for j, c := range curves {
			y, ok := c.Eval(x)
			if !ok || !yr.InRange(y) {
				row[j+1] = ""
				continue
			}
			row[j+1] = format(y)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
