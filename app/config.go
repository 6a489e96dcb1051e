// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"cogentcore.org/lambdaplot/base/errors"
	"cogentcore.org/lambdaplot/base/iox/tomlx"
	"cogentcore.org/lambdaplot/expr"
	"cogentcore.org/lambdaplot/math32/minmax"
	"cogentcore.org/lambdaplot/plot"
	"github.com/mitchellh/go-homedir"
)

// DefaultConfigPath is where [LoadConfig] looks when no path is given.
const DefaultConfigPath = "~/.lambdaplotter/config.toml"

// Duration is a [time.Duration] that reads and writes as text
// such as "250ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config has the user settings of a plotting host.
type Config struct {

	// Width and Height are the initial surface size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// View is the initial visible window.
	View plot.Limits `toml:"view"`

	// Debounce is how long an edit must stay unchanged before it is
	// compiled.
	Debounce Duration `toml:"debounce"`

	// Theme is "light" or "dark".
	Theme string `toml:"theme"`

	// Ticks selects the tick algorithm: "nice" or "talbot".
	Ticks string `toml:"ticks"`

	// TickCount is the preferred number of ticks per axis.
	TickCount int `toml:"tick_count"`

	// ImplicitMultiplication reads juxtaposed operands such as 2x
	// as products.
	ImplicitMultiplication bool `toml:"implicit_multiplication"`

	// Sampler has the adaptive sampling parameters.
	Sampler plot.Sampler `toml:"sampler"`
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.Width = 800
	c.Height = 600
	c.View = plot.Limits{X: minmax.F64{Min: -10, Max: 10}, Y: minmax.F64{Min: -10, Max: 10}}
	c.Debounce = Duration(250 * time.Millisecond)
	c.Theme = "light"
	c.Ticks = "nice"
	c.TickCount = plot.DefaultTicks
	c.ImplicitMultiplication = true
	c.Sampler.Defaults()
}

// NewConfig returns a config with default values.
func NewConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Theme) {
	case "light", "dark":
	default:
		errs = append(errs, fmt.Errorf("app: unknown theme %q", c.Theme))
	}
	switch strings.ToLower(c.Ticks) {
	case "nice", "talbot":
	default:
		errs = append(errs, fmt.Errorf("app: unknown tick algorithm %q", c.Ticks))
	}
	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("app: negative debounce %v", time.Duration(c.Debounce)))
	}
	return errors.Join(errs...)
}

// LoadConfig returns the defaults overridden by the TOML file at path,
// or at [DefaultConfigPath] if path is empty. A missing default file
// is not an error.
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	fn, err := homedir.Expand(path)
	if err != nil {
		return c, err
	}
	err = tomlx.Open(c, fn)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	return c, c.Validate()
}

// Save writes the config as TOML.
func (c *Config) Save(path string) error {
	fn, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	return tomlx.Save(c, fn)
}

// NewPlot returns an empty plot configured by c.
func (c *Config) NewPlot() *plot.Plot {
	vp := plot.NewViewport(c.View.X.Min, c.View.X.Max, c.View.Y.Min, c.View.Y.Max, c.Width, c.Height)
	p := plot.New(vp)
	s := c.Sampler
	p.Sampler = &s
	if strings.EqualFold(c.Ticks, "talbot") {
		p.Ticker = plot.TalbotTicker{N: c.TickCount}
	} else {
		p.Ticker = plot.NiceTicker{N: c.TickCount}
	}
	p.CompileOptions = []expr.CompileOption{
		expr.WithParseOptions(expr.WithImplicitMultiplication(c.ImplicitMultiplication)),
	}
	if strings.EqualFold(c.Theme, "dark") {
		p.Theme = plot.DarkTheme
	}
	return p
}
