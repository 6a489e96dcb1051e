// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cogentcore.org/lambdaplot/app"
	"cogentcore.org/lambdaplot/base/errors"
	"cogentcore.org/lambdaplot/plot"
	"cogentcore.org/lambdaplot/web"
	"github.com/spf13/cobra"
)

func newServeCmd(g *globals) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [SESSION]",
		Short: "Serve a live plot viewer over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(g.config)
			if len(args) == 1 {
				s, err := plot.OpenSession(args[0])
				if err != nil {
					return err
				}
				if err := s.Apply(a.Plot); err != nil {
					slog.Warn("session has errors", "err", err)
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fmt.Fprintln(cmd.OutOrStdout(), "serving on http://"+addr)
			return serve(ctx, addr, web.NewServer(a))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "address to listen on")
	return cmd
}

func serve(ctx context.Context, addr string, ws *web.Server) error {
	srv := &http.Server{Addr: addr, Handler: ws.Handler()}
	go ws.Run(ctx)
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
