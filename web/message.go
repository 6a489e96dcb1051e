// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"fmt"
	"strconv"

	"cogentcore.org/lambdaplot/app"
	"cogentcore.org/lambdaplot/colors"
	"cogentcore.org/lambdaplot/math32"
	"cogentcore.org/lambdaplot/plot"
)

// Message is an input event sent by a client, as JSON.
// Type selects the event and which other fields are used:
//   - "edit": ID, Text
//   - "pan": DX, DY
//   - "zoom": Factor, X, Y
//   - "resize": Width, Height
//   - "remove": ID
//   - "fit"
type Message struct {
	Type   string  `json:"type"`
	ID     int     `json:"id,omitempty"`
	Text   string  `json:"text,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Factor float64 `json:"factor,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
}

// Event returns the [app.Event] described by the message.
func (m *Message) Event() (app.Event, error) {
	switch m.Type {
	case "edit":
		return app.EditEvent{ID: m.ID, Text: m.Text}, nil
	case "pan":
		return app.PanEvent{DX: m.DX, DY: m.DY}, nil
	case "zoom":
		return app.ZoomEvent{Factor: m.Factor, X: m.X, Y: m.Y}, nil
	case "resize":
		return app.ResizeEvent{Width: m.Width, Height: m.Height}, nil
	case "remove":
		return app.RemoveEvent{ID: m.ID}, nil
	case "fit":
		return app.FitEvent{}, nil
	}
	return nil, fmt.Errorf("web: unknown message type %q", m.Type)
}

// FrameMessage is a frame sent to clients, as JSON.
type FrameMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	Background string `json:"background"`
	Grid       string `json:"grid"`
	Axis       string `json:"axis"`
	Text       string `json:"text"`

	XTicks []TickMessage `json:"xticks"`
	YTicks []TickMessage `json:"yticks"`

	Origin    [2]float32 `json:"origin"`
	ShowXAxis bool       `json:"showXAxis"`
	ShowYAxis bool       `json:"showYAxis"`

	Curves []CurveMessage `json:"curves"`

	// Errors are the compile errors by curve id.
	Errors map[string]string `json:"errors,omitempty"`
}

type TickMessage struct {
	Pos   float32 `json:"pos"`
	Label string  `json:"label"`
}

type CurveMessage struct {
	ID    int            `json:"id"`
	Label string         `json:"label"`
	Color string         `json:"color"`
	Width float32        `json:"width"`
	Kind  plot.LineKind  `json:"kind"`
	Runs  [][][2]float32 `json:"runs"`
}

// NewFrameMessage converts a frame and the current compile errors.
func NewFrameMessage(f *plot.Frame, errs map[int]error) *FrameMessage {
	fm := &FrameMessage{
		Type:       "frame",
		Width:      f.Width,
		Height:     f.Height,
		Background: colors.AsHex(f.Theme.Background),
		Grid:       colors.AsHex(f.Theme.Grid),
		Axis:       colors.AsHex(f.Theme.Axis),
		Text:       colors.AsHex(f.Theme.Text),
		XTicks:     ticks(f.XTicks),
		YTicks:     ticks(f.YTicks),
		Origin:     [2]float32{f.Origin.X, f.Origin.Y},
		ShowXAxis:  f.ShowXAxis,
		ShowYAxis:  f.ShowYAxis,
		Curves:     []CurveMessage{},
	}
	for _, c := range f.Curves {
		cm := CurveMessage{ID: c.ID, Label: c.Label, Color: colors.AsHex(c.Style.Color), Width: c.Style.Width, Kind: c.Style.Kind}
		for _, run := range c.Runs {
			cm.Runs = append(cm.Runs, points(run))
		}
		fm.Curves = append(fm.Curves, cm)
	}
	if len(errs) > 0 {
		fm.Errors = map[string]string{}
		for id, err := range errs {
			fm.Errors[strconv.Itoa(id)] = err.Error()
		}
	}
	return fm
}

func ticks(ts []plot.AxisTick) []TickMessage {
	tm := make([]TickMessage, len(ts))
	for i, t := range ts {
		tm[i] = TickMessage{Pos: t.Pos, Label: t.Label}
	}
	return tm
}

func points(run []math32.Vector2) [][2]float32 {
	ps := make([][2]float32, len(run))
	for i, v := range run {
		ps[i] = [2]float32{v.X, v.Y}
	}
	return ps
}
