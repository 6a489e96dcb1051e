// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cogentcore.org/lambdaplot/app"
	"cogentcore.org/lambdaplot/base/websocket"
	"cogentcore.org/lambdaplot/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageEvent(t *testing.T) {
	tests := []struct {
		json string
		want app.Event
	}{
		{`{"type":"edit","id":2,"text":"x^2"}`, app.EditEvent{ID: 2, Text: "x^2"}},
		{`{"type":"pan","dx":3,"dy":-4}`, app.PanEvent{DX: 3, DY: -4}},
		{`{"type":"zoom","factor":0.5,"x":10,"y":20}`, app.ZoomEvent{Factor: 0.5, X: 10, Y: 20}},
		{`{"type":"resize","width":300,"height":200}`, app.ResizeEvent{Width: 300, Height: 200}},
		{`{"type":"remove","id":1}`, app.RemoveEvent{ID: 1}},
		{`{"type":"fit"}`, app.FitEvent{}},
	}
	for _, test := range tests {
		var m Message
		require.NoError(t, json.Unmarshal([]byte(test.json), &m))
		ev, err := m.Event()
		require.NoError(t, err, test.json)
		assert.Equal(t, test.want, ev)
	}
	m := Message{Type: "spin"}
	_, err := m.Event()
	assert.Error(t, err)
}

func TestFrameMessage(t *testing.T) {
	p := plot.New(plot.NewViewport(-1, 1, -1, 1, 100, 100))
	require.NoError(t, p.SetExpression(0, "x"))
	p.Curve(0).Style.Kind = plot.Scatter
	err := p.SetExpression(1, "2+")
	fm := NewFrameMessage(p.Frame(), map[int]error{1: err})
	assert.Equal(t, "frame", fm.Type)
	assert.Equal(t, "#FFFFFF", fm.Background)
	require.Len(t, fm.Curves, 1)
	assert.Equal(t, float32(0), fm.Curves[0].Runs[0][0][0])
	assert.Equal(t, float32(100), fm.Curves[0].Runs[0][0][1])
	assert.Equal(t, err.Error(), fm.Errors["1"])

	b, err := json.Marshal(fm)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"kind":"scatter"`)
}

func TestIndex(t *testing.T) {
	srv := httptest.NewServer(NewServer(app.New(nil)).Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<canvas")

	resp, err = http.Get(srv.URL + "/nothing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveSession(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Debounce = 0
	s := NewServer(app.New(cfg))
	s.Interval = 5 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()
	c, err := websocket.Connect("ws" + strings.TrimPrefix(srv.URL, "http") + "/ws")
	require.NoError(t, err)
	defer c.Close()

	frames := make(chan *FrameMessage, 16)
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		fm := &FrameMessage{}
		if json.Unmarshal(msg, fm) != nil {
			return
		}
		select {
		case frames <- fm:
		default:
		}
	})
	next := func(ok func(*FrameMessage) bool) *FrameMessage {
		t.Helper()
		timeout := time.After(5 * time.Second)
		for {
			select {
			case fm := <-frames:
				if ok(fm) {
					return fm
				}
			case <-timeout:
				t.Fatal("no matching frame")
				return nil
			}
		}
	}

	require.NoError(t, c.SendJSON(Message{Type: "resize", Width: 320, Height: 240}))
	require.NoError(t, c.SendJSON(Message{Type: "edit", ID: 0, Text: "sin(x)"}))
	fm := next(func(fm *FrameMessage) bool { return len(fm.Curves) == 1 && fm.Width == 320 })
	assert.Equal(t, "sin(x)", fm.Curves[0].Label)
	assert.Equal(t, 1, s.Clients())

	require.NoError(t, c.SendJSON(Message{Type: "edit", ID: 0, Text: "sin(x"}))
	fm = next(func(fm *FrameMessage) bool { return len(fm.Errors) > 0 })
	assert.Contains(t, fm.Errors["0"], "expected")
	require.Len(t, fm.Curves, 1, "previous function still shown")
	assert.Equal(t, "sin(x)", fm.Curves[0].Label)
}
