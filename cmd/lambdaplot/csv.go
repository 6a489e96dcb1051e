// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"

	"cogentcore.org/lambdaplot/base/errors"
	"cogentcore.org/lambdaplot/plot"
	"github.com/jeandeaual/go-locale"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newCSVCmd(g *globals) *cobra.Command {
	vf := &viewFlags{}
	var out, loc string
	var digits int
	var all bool
	cmd := &cobra.Command{
		Use:   "csv -e EXPR... [-o FILE]",
		Short: "Export the visible part of curves as CSV",
		Long:  "Export the curves at one x per pixel column of the view. Values outside the visible y range, or where a curve is undefined, are left blank.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := vf.plot(g, cmd.Flags())
			if err != nil {
				return err
			}
			tag, err := csvLocale(loc)
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return plot.WriteCSV(w, p, plot.CSVOptions{Locale: tag, Digits: digits, All: all})
		},
	}
	vf.add(cmd.Flags())
	fs := cmd.Flags()
	fs.StringVarP(&out, "output", "o", "", "file to write (default standard output)")
	fs.StringVar(&loc, "locale", "", "locale for the decimal separator, such as en or de (default from the system)")
	fs.IntVar(&digits, "digits", 6, "maximum fraction digits")
	fs.BoolVar(&all, "all", false, "include hidden curves")
	return cmd
}

// csvLocale parses the given locale, or returns the system locale when
// it is empty. An unknown system locale gives [language.Und].
func csvLocale(loc string) (language.Tag, error) {
	if loc != "" {
		return language.Parse(loc)
	}
	sys, err := locale.GetLocale()
	if err != nil {
		slog.Debug("no system locale", "err", err)
		return language.Und, nil
	}
	return errors.Log1(language.Parse(sys)), nil
}
