// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web serves a live plot viewer: an HTML page that draws frames
// received over a WebSocket and sends input events back.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/lambdaplot/app"
	"cogentcore.org/lambdaplot/base/errors"
	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexHTML []byte

// DefaultInterval is the default time between frames.
const DefaultInterval = time.Second / 30

// sendQueue is the number of frames buffered per client.
// A client that falls further behind skips frames.
const sendQueue = 4

// Server connects WebSocket clients to one [app.App]. The app is only
// touched by the goroutine running [Server.Run]; connections pass
// events to it over a channel and receive encoded frames.
type Server struct {
	App *app.App

	// Interval is the time between frames.
	Interval time.Duration

	upgrader websocket.Upgrader
	events   chan app.Event
	joins    chan *client
	done     chan struct{}

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer returns a server for a.
func NewServer(a *app.App) *Server {
	return &Server{
		App:      a,
		Interval: DefaultInterval,
		events:   make(chan app.Event, 64),
		joins:    make(chan *client),
		done:     make(chan struct{}),
		clients:  map[*client]struct{}{},
	}
}

// Handler returns the HTTP handler serving the page at / and the
// WebSocket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// Run runs the frame loop until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	tick := time.NewTicker(s.Interval)
	defer tick.Stop()
	defer close(s.done)
	var last []byte
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return ctx.Err()
		case ev := <-s.events:
			s.App.Push(ev)
		case c := <-s.joins:
			s.mu.Lock()
			if _, ok := s.clients[c]; ok && last != nil {
				c.queue(last)
			}
			s.mu.Unlock()
		case now := <-tick.C:
			f, changed := s.App.Frame(now)
			if !changed && last != nil {
				continue
			}
			b, err := json.Marshal(NewFrameMessage(f, s.App.Errors()))
			if errors.Log(err) != nil {
				continue
			}
			last = b
			s.broadcast(b)
		}
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendQueue)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	slog.Info("client connected", "addr", r.RemoteAddr)

	go c.write()
	select {
	case s.joins <- c:
	case <-s.done:
	case <-r.Context().Done():
	}
	s.read(c)

	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	close(c.send)
	slog.Info("client disconnected", "addr", r.RemoteAddr)
}

func (s *Server) read(c *client) {
	defer c.conn.Close()
	for {
		var m Message
		if err := c.conn.ReadJSON(&m); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("read", "err", err)
			}
			return
		}
		ev, err := m.Event()
		if err != nil {
			slog.Warn("bad message", "err", err)
			continue
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Server) broadcast(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.queue(b)
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.conn.Close()
	}
}

// queue offers a frame to the client without blocking.
// The caller holds the server lock.
func (c *client) queue(b []byte) {
	select {
	case c.send <- b:
	default:
	}
}

func (c *client) write() {
	for b := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			slog.Debug("write", "err", err)
			return
		}
	}
}
