// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/lambdaplot/base/iox/imagex"
	"cogentcore.org/lambdaplot/plot"
	"github.com/spf13/pflag"
)

// viewFlags are the flags that build a plot: expressions, the
// visible window and size, or a session file.
type viewFlags struct {
	exprs                  []string
	xmin, xmax, ymin, ymax float64
	width, height          int
	session                string
	fit                    bool
}

func (vf *viewFlags) add(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&vf.exprs, "expr", "e", nil, "expression to plot (repeatable)")
	fs.Float64Var(&vf.xmin, "xmin", 0, "left edge of the view")
	fs.Float64Var(&vf.xmax, "xmax", 0, "right edge of the view")
	fs.Float64Var(&vf.ymin, "ymin", 0, "bottom edge of the view")
	fs.Float64Var(&vf.ymax, "ymax", 0, "top edge of the view")
	fs.IntVar(&vf.width, "width", 0, "width in pixels")
	fs.IntVar(&vf.height, "height", 0, "height in pixels")
	fs.StringVar(&vf.session, "session", "", "session file (.toml, .yaml or .json) to start from")
	fs.BoolVar(&vf.fit, "fit", false, "fit the y range to the curves")
}

// plot builds the plot: config defaults, then the session, then the
// flags that were set, then the expressions as new curves.
func (vf *viewFlags) plot(g *globals, fs *pflag.FlagSet) (*plot.Plot, error) {
	p := g.config.NewPlot()
	if vf.session != "" {
		s, err := plot.OpenSession(vf.session)
		if err != nil {
			return nil, err
		}
		if err := s.Apply(p); err != nil {
			return nil, err
		}
	}
	vp := p.Viewport
	l := vp.Limits()
	set := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("xmin", &l.X.Min, vf.xmin)
	set("xmax", &l.X.Max, vf.xmax)
	set("ymin", &l.Y.Min, vf.ymin)
	set("ymax", &l.Y.Max, vf.ymax)
	w, h := vp.Width(), vp.Height()
	if fs.Changed("width") {
		w = vf.width
	}
	if fs.Changed("height") {
		h = vf.height
	}
	vp.Resize(w, h)
	if !l.IsProper() {
		slog.Warn("ignoring improper view range", "x", l.X, "y", l.Y)
	}
	vp.SetLimits(l)
	for _, e := range vf.exprs {
		if err := p.SetExpression(p.NextID(), e); err != nil {
			return nil, err
		}
	}
	if vf.fit {
		p.AutoFit()
	}
	return p, nil
}

// renderImage draws p with a [plot.Raster] and saves it, choosing the
// image format from the extension.
func renderImage(p *plot.Plot, filename string) error {
	vp := p.Viewport
	rs, err := plot.NewRaster(vp.Width(), vp.Height())
	if err != nil {
		return err
	}
	p.Frame().Render(rs)
	return imagex.Save(rs.Image(), filename)
}
