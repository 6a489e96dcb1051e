// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	b := &bytes.Buffer{}
	l := slog.New(NewHandler(b, slog.LevelInfo))
	l.Debug("hidden")
	l.Info("resampled", "curve", 1)
	l.With("plot", "main").WithGroup("view").Warn("clamped", "factor", 0.5)

	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO resampled")
	assert.Contains(t, out, "curve=1")
	assert.Contains(t, out, "plot=main")
	assert.Contains(t, out, "view.factor=0.5")
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
