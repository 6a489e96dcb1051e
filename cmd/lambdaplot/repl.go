// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/lambdaplot/app"
	"cogentcore.org/lambdaplot/base/errors"
	"cogentcore.org/lambdaplot/plot"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

func newReplCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Edit and render plots interactively",
		Long:  "Read commands from standard input, one per line. Type help for the list of commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &repl{app: app.New(g.config), out: cmd.OutOrStdout()}
			return r.run(cmd.InOrStdin(), true)
		},
	}
}

const replHelp = `commands:
  plot ID EXPR     set the expression of curve ID
  rm ID            remove curve ID
  list             list the curves
  eval ID X        evaluate curve ID at X
  pan DX DY        drag the view by DX, DY pixels
  zoom F PX PY     zoom by F about pixel PX, PY
  resize W H       set the size in pixels
  view             print the visible window
  fit              fit the y range to the curves
  render FILE      render to an image file
  save FILE        save the session
  open FILE        open a session
  reset            remove all curves
  quit             exit`

var errQuit = errors.New("quit")

// repl runs line commands against an [app.App]. Edits are applied
// at once rather than debounced.
type repl struct {
	app *app.App
	out io.Writer
}

func (r *repl) run(in io.Reader, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(r.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		err := r.exec(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
	}
}

// exec runs one command line.
func (r *repl) exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	a := r.app
	p := a.Plot
	cmd, args := args[0], args[1:]
	switch cmd {
	case "help", "?":
		fmt.Fprintln(r.out, replHelp)
	case "quit", "exit":
		return errQuit
	case "plot":
		if len(args) < 2 {
			return errors.New("usage: plot ID EXPR")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		a.Push(app.EditEvent{ID: id, Text: strings.Join(args[1:], " ")})
		r.apply()
		return p.Curve(id).Err
	case "rm":
		ids, err := ints(args, 1, "rm ID")
		if err != nil {
			return err
		}
		if p.Curve(ids[0]) == nil {
			return fmt.Errorf("%w: %d", plot.ErrNoCurve, ids[0])
		}
		a.Push(app.RemoveEvent{ID: ids[0]})
	case "list":
		for _, c := range p.Curves() {
			state := "ok"
			if c.Err != nil {
				state = c.Err.Error()
			}
			fmt.Fprintf(r.out, "%d\t%s\t%s\n", c.ID, c.Source, state)
		}
	case "eval":
		if len(args) != 2 {
			return errors.New("usage: eval ID X")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		c := p.Curve(id)
		if c == nil {
			return fmt.Errorf("%w: %d", plot.ErrNoCurve, id)
		}
		if y, ok := c.Eval(x); ok {
			fmt.Fprintln(r.out, strconv.FormatFloat(y, 'g', -1, 64))
		} else {
			fmt.Fprintln(r.out, "undefined")
		}
	case "pan":
		v, err := floats(args, 2, "pan DX DY")
		if err != nil {
			return err
		}
		a.Push(app.PanEvent{DX: v[0], DY: v[1]})
	case "zoom":
		v, err := floats(args, 3, "zoom F PX PY")
		if err != nil {
			return err
		}
		a.Push(app.ZoomEvent{Factor: v[0], X: v[1], Y: v[2]})
	case "resize":
		v, err := ints(args, 2, "resize W H")
		if err != nil {
			return err
		}
		a.Push(app.ResizeEvent{Width: v[0], Height: v[1]})
	case "view":
		vp := p.Viewport
		fmt.Fprintf(r.out, "x [%g, %g] y [%g, %g] %dx%d\n", vp.X().Min, vp.X().Max, vp.Y().Min, vp.Y().Max, vp.Width(), vp.Height())
	case "fit":
		a.Push(app.FitEvent{})
	case "render", "save", "open":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s FILE", cmd)
		}
		r.apply()
		switch cmd {
		case "render":
			return renderImage(p, args[0])
		case "save":
			return plot.SessionOf(p).Save(args[0])
		}
		s, err := plot.OpenSession(args[0])
		if err != nil {
			return err
		}
		err = s.Apply(p)
		r.apply()
		return err
	case "reset":
		p.Reset()
	default:
		return fmt.Errorf("unknown command %q; type help for the list", cmd)
	}
	r.apply()
	return nil
}

// apply applies the queued events and edits.
func (r *repl) apply() {
	r.app.Frame(time.Now())
	r.app.Flush()
}

func floats(args []string, n int, usage string) ([]float64, error) {
	if len(args) != n {
		return nil, errors.New("usage: " + usage)
	}
	v := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

func ints(args []string, n int, usage string) ([]int, error) {
	if len(args) != n {
		return nil, errors.New("usage: " + usage)
	}
	v := make([]int, n)
	for i, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		v[i] = d
	}
	return v, nil
}
