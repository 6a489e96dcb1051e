// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lambdaplot compiles and plots functions of x from the
// command line: it evaluates, renders images, exports CSV, re-renders
// watched sessions, runs an interactive prompt and serves a live viewer.
package main

import (
	"os"

	"cogentcore.org/lambdaplot/app"
	"cogentcore.org/lambdaplot/base/logx"
	"github.com/spf13/cobra"
)

// globals holds the flags shared by all commands.
type globals struct {
	configPath string
	vv, v, q   bool

	config *app.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "lambdaplot",
		Short:         "Plot functions of x",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(g.vv, g.v, g.q)
			logx.SetDefaultLogger()
			cfg, err := app.LoadConfig(g.configPath)
			if err != nil {
				return err
			}
			g.config = cfg
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default "+app.DefaultConfigPath+")")
	pf.BoolVar(&g.vv, "vv", false, "log debug messages")
	pf.BoolVarP(&g.v, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&g.q, "quiet", "q", false, "only log errors")

	root.AddCommand(
		newEvalCmd(g),
		newRenderCmd(g),
		newCSVCmd(g),
		newWatchCmd(g),
		newReplCmd(g),
		newServeCmd(g),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
