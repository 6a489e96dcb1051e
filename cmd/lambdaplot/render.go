// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRenderCmd(g *globals) *cobra.Command {
	vf := &viewFlags{}
	var out string
	cmd := &cobra.Command{
		Use:   "render -e EXPR... -o FILE",
		Short: "Render curves to an image",
		Long:  "Render curves to an image. The format follows the extension of the output file: png, jpg, gif, tif or bmp.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := vf.plot(g, cmd.Flags())
			if err != nil {
				return err
			}
			if err := renderImage(p, out); err != nil {
				return err
			}
			slog.Info("rendered", "file", out, "curves", len(p.Curves()))
			return nil
		},
	}
	vf.add(cmd.Flags())
	cmd.Flags().StringVarP(&out, "output", "o", "plot.png", "image file to write")
	return cmd
}
