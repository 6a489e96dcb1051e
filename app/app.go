// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app is the frame loop of a plotting host: it queues input
// events, debounces expression edits, applies them to a [plot.Plot]
// at the start of each frame and builds the frame to draw.
package app

import (
	"log/slog"
	"time"

	"cogentcore.org/lambdaplot/plot"
)

// App drives a [plot.Plot] from input events. It is not safe for
// concurrent use; hosts receiving input on other goroutines pass it
// to the loop goroutine over a channel.
type App struct {
	Config *Config
	Plot   *plot.Plot

	edits *Debouncer
	queue []Event
	frame *plot.Frame
	dirty bool
}

// New returns an app with an empty plot configured by cfg.
// A nil cfg uses the defaults.
func New(cfg *Config) *App {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &App{
		Config: cfg,
		Plot:   cfg.NewPlot(),
		edits:  NewDebouncer(time.Duration(cfg.Debounce)),
		dirty:  true,
	}
}

// Push queues an event for the next [App.Frame].
func (a *App) Push(ev Event) {
	a.queue = append(a.queue, ev)
}

// Pending reports whether there are queued events or edits waiting
// for their quiet period.
func (a *App) Pending() bool {
	return len(a.queue) > 0 || a.edits.Len() > 0
}

// NextEdit returns how long after now the next pending edit is due,
// and false if there is none.
func (a *App) NextEdit(now time.Time) (time.Duration, bool) {
	return a.edits.Next(now)
}

// Frame applies the queued events and the edits that are due at now,
// and returns the frame to draw. The second result reports whether the
// frame differs from the one returned by the previous call.
func (a *App) Frame(now time.Time) (*plot.Frame, bool) {
	for _, ev := range a.queue {
		a.apply(ev, now)
	}
	clear(a.queue)
	a.queue = a.queue[:0]

	for _, ed := range a.edits.Due(now) {
		a.compile(ed)
	}
	if !a.dirty && a.frame != nil {
		return a.frame, false
	}
	a.frame = a.Plot.Frame()
	a.dirty = false
	return a.frame, true
}

// Flush compiles every pending edit immediately.
func (a *App) Flush() {
	for _, ed := range a.edits.Flush() {
		a.compile(ed)
	}
}

// Errors returns the compile errors of the curves, by id.
func (a *App) Errors() map[int]error {
	errs := map[int]error{}
	for _, c := range a.Plot.Curves() {
		if c.Err != nil {
			errs[c.ID] = c.Err
		}
	}
	return errs
}

func (a *App) compile(ed EditEvent) {
	if err := a.Plot.SetExpression(ed.ID, ed.Text); err != nil {
		slog.Info("expression error", "curve", ed.ID, "err", err)
	}
	a.dirty = true
}

func (a *App) apply(ev Event, now time.Time) {
	vp := a.Plot.Viewport
	gen := vp.Generation()
	switch ev := ev.(type) {
	case EditEvent:
		a.edits.Add(ev.ID, ev.Text, now)
	case PanEvent:
		vp.Pan(ev.DX, ev.DY)
	case ZoomEvent:
		vp.Zoom(ev.Factor, ev.X, ev.Y)
	case ResizeEvent:
		vp.Resize(ev.Width, ev.Height)
	case RemoveEvent:
		a.edits.Drop(ev.ID)
		if a.Plot.Remove(ev.ID) {
			a.dirty = true
		}
	case FitEvent:
		a.Plot.AutoFit()
	}
	if vp.Generation() != gen {
		a.dirty = true
	}
}
