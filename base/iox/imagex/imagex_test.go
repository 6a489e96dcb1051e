// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "gif": GIF, ".tif": TIFF, "bmp": BMP} {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 8, 4))
	im.Set(2, 1, color.RGBA{255, 0, 0, 255})
	assert.Equal(t, 1, CountNot(im, color.RGBA{}))

	dir := t.TempDir()
	for _, name := range []string{"a.png", "a.bmp", "a.tiff"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(im, fn))
		got, _, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, im.Bounds(), got.Bounds())
		r, _, _, _ := got.At(2, 1).RGBA()
		assert.Equal(t, uint32(0xffff), r, name)
	}
}
