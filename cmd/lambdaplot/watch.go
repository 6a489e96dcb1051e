// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cogentcore.org/lambdaplot/app"
	"cogentcore.org/lambdaplot/plot"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(g *globals) *cobra.Command {
	var out string
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "watch SESSION",
		Short: "Re-render a session file whenever it changes",
		Long:  "Re-render a session file whenever it changes. If the file does not load, the error is logged and the previous image is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("delay") {
				delay = time.Duration(g.config.Debounce)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			w := &sessionWatcher{config: g.config, session: args[0], out: out, delay: delay}
			return w.run(ctx)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "plot.png", "image file to write")
	cmd.Flags().DurationVar(&delay, "delay", 0, "quiet period before re-rendering (default from config)")
	return cmd
}

// sessionWatcher renders a session file to an image, then renders it
// again after each burst of changes.
type sessionWatcher struct {
	config  *app.Config
	session string
	out     string
	delay   time.Duration

	// rendered is called after each successful render, if set.
	rendered func()
}

func (sw *sessionWatcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	// watch the directory, since editors often replace the file
	if err := fw.Add(filepath.Dir(sw.session)); err != nil {
		return err
	}
	name := filepath.Clean(sw.session)
	deb := app.NewDebouncer(sw.delay)
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	sw.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			now := time.Now()
			deb.Add(0, ev.Name, now)
			if d, ok := deb.Next(now); ok {
				timer.Reset(d)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		case now := <-timer.C:
			if len(deb.Due(now)) > 0 {
				sw.render()
			} else if d, ok := deb.Next(now); ok {
				timer.Reset(d)
			}
		}
	}
}

func (sw *sessionWatcher) render() {
	s, err := plot.OpenSession(sw.session)
	if err != nil {
		slog.Error("session not loaded, keeping previous image", "file", sw.session, "err", err)
		return
	}
	p := sw.config.NewPlot()
	if err := s.Apply(p); err != nil {
		slog.Warn("session has errors", "file", sw.session, "err", err)
	}
	if err := renderImage(p, sw.out); err != nil {
		slog.Error("render", "file", sw.out, "err", err)
		return
	}
	slog.Info("rendered", "file", sw.out)
	if sw.rendered != nil {
		sw.rendered()
	}
}
