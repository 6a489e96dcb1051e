// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

// Event is an input event delivered to an [App] with [App.Push].
// The set of events is closed.
type Event interface {
	isEvent()
}

// EditEvent replaces the text of a curve. It is debounced: the text is
// compiled once no newer edit of the same curve arrived for the
// debounce delay.
type EditEvent struct {
	ID   int
	Text string
}

// PanEvent moves the view by a drag of DX, DY pixels.
type PanEvent struct {
	DX, DY float64
}

// ZoomEvent scales the view by Factor about the pixel X, Y.
// A factor below 1 zooms in.
type ZoomEvent struct {
	Factor float64
	X, Y   float64
}

// ResizeEvent changes the surface size.
type ResizeEvent struct {
	Width, Height int
}

// RemoveEvent removes a curve, dropping any pending edit of it.
type RemoveEvent struct {
	ID int
}

// FitEvent fits the y range to the shown curves.
type FitEvent struct{}

func (EditEvent) isEvent()   {}
func (PanEvent) isEvent()    {}
func (ZoomEvent) isEvent()   {}
func (ResizeEvent) isEvent() {}
func (RemoveEvent) isEvent() {}
func (FitEvent) isEvent()    {}
