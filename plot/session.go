// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/lambdaplot/base/errors"
	"cogentcore.org/lambdaplot/base/iox/jsonx"
	"cogentcore.org/lambdaplot/base/iox/tomlx"
	"cogentcore.org/lambdaplot/base/iox/yamlx"
	"cogentcore.org/lambdaplot/colors"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
)

// SessionVersion is the version written into new sessions.
const SessionVersion = "1.0.0"

// sessionConstraint is the range of session versions that can be read.
var sessionConstraint = errors.Must1(semver.NewConstraint("^1"))

// ErrSessionVersion is returned for sessions written by an
// incompatible version.
var ErrSessionVersion = errors.New("plot: unsupported session version")

// Session is the saved state of a [Plot]: the view and the curves.
type Session struct {
	Version string `toml:"version" yaml:"version" json:"version"`

	// Width and Height are the surface size in pixels.
	Width  int `toml:"width" yaml:"width" json:"width"`
	Height int `toml:"height" yaml:"height" json:"height"`

	View Limits `toml:"view" yaml:"view" json:"view"`

	Curves []CurveSpec `toml:"curves" yaml:"curves" json:"curves"`
}

// CurveSpec is the saved form of a [Curve].
type CurveSpec struct {
	ID     int      `toml:"id" yaml:"id" json:"id"`
	Name   string   `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Expr   string   `toml:"expr" yaml:"expr" json:"expr"`
	Color  string   `toml:"color,omitempty" yaml:"color,omitempty" json:"color,omitempty"`
	Hidden bool     `toml:"hidden,omitempty" yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Width  float32  `toml:"width,omitempty" yaml:"width,omitempty" json:"width,omitempty"`
	Kind   LineKind `toml:"kind" yaml:"kind" json:"kind"`
	Scale  float64  `toml:"scale" yaml:"scale" json:"scale"`
	Offset float64  `toml:"offset" yaml:"offset" json:"offset"`
}

// Style returns the curve style cs describes, starting
// from the default style for its id.
func (cs *CurveSpec) Style() (CurveStyle, error) {
	st := DefaultCurveStyle(cs.ID)
	st.Show = !cs.Hidden
	st.Kind = cs.Kind
	if cs.Width > 0 {
		st.Width = cs.Width
	}
	if cs.Scale != 0 {
		st.Scale = cs.Scale
	}
	st.Offset = cs.Offset
	if cs.Color != "" {
		c, err := colors.FromHex(cs.Color)
		if err != nil {
			return st, err
		}
		st.Color = c
	}
	return st, nil
}

// SessionOf returns the session describing the current state of p.
func SessionOf(p *Plot) *Session {
	vp := p.Viewport
	s := &Session{Version: SessionVersion, Width: vp.Width(), Height: vp.Height(), View: vp.Limits()}
	for _, c := range p.Curves() {
		s.Curves = append(s.Curves, CurveSpec{
			ID:     c.ID,
			Name:   c.Name,
			Expr:   c.Source,
			Color:  colors.AsHex(c.Style.Color),
			Hidden: !c.Style.Show,
			Width:  c.Style.Width,
			Kind:   c.Style.Kind,
			Scale:  c.Style.Scale,
			Offset: c.Style.Offset,
		})
	}
	return s
}

// Check returns an error if the session version is not readable.
func (s *Session) Check() error {
	v, err := semver.NewVersion(s.Version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrSessionVersion, s.Version, err)
	}
	if !sessionConstraint.Check(v) {
		return fmt.Errorf("%w %q: want %s", ErrSessionVersion, s.Version, sessionConstraint)
	}
	return nil
}

// Apply replaces the view and curves of p with those of the session.
// Curves whose expression does not compile are still added, with
// [Curve.Err] set, and their errors are returned joined.
func (s *Session) Apply(p *Plot) error {
	if err := s.Check(); err != nil {
		return err
	}
	vp := p.Viewport
	if s.Width > 0 && s.Height > 0 {
		vp.Resize(s.Width, s.Height)
	}
	vp.SetLimits(s.View)
	p.Reset()
	var errs []error
	for _, cs := range s.Curves {
		st, err := cs.Style()
		if err != nil {
			errs = append(errs, fmt.Errorf("curve %d: %w", cs.ID, err))
		}
		err = p.SetExpression(cs.ID, cs.Expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("curve %d: %w", cs.ID, err))
		}
		c := p.Curve(cs.ID)
		c.Name = cs.Name
		c.Style = st
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := &Session{}
	errors.Log(copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}))
	return c
}

// Open reads the session from a file, choosing the format from the
// extension: .toml, .yaml or .yml, or .json.
func (s *Session) Open(filename string) error {
	var err error
	switch sessionExt(filename) {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	case ".json":
		err = jsonx.Open(s, filename)
	default:
		return fmt.Errorf("plot: unknown session format %q", filepath.Ext(filename))
	}
	if err != nil {
		return err
	}
	return s.Check()
}

// Save writes the session to a file in the format given by the
// extension, as for [Session.Open].
func (s *Session) Save(filename string) error {
	switch sessionExt(filename) {
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	case ".json":
		return jsonx.Save(s, filename)
	}
	return fmt.Errorf("plot: unknown session format %q", filepath.Ext(filename))
}

func sessionExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// OpenSession reads a session file.
func OpenSession(filename string) (*Session, error) {
	s := &Session{}
	if err := s.Open(filename); err != nil {
		return nil, err
	}
	return s, nil
}
