// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	for _, name := range []string{Gouraud, Flat, Colored} {
		vert, frag, err := Load(FS(""), name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(vert, "#version 410 core"), name)
		assert.True(t, strings.HasPrefix(frag, "#version 410 core"), name)
		assert.Contains(t, vert, "a_position", name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, _, err := Load(FS(""), "nope")
	assert.ErrorContains(t, err, "nope")

	fsys := fstest.MapFS{"half.vert": {Data: []byte("v")}}
	_, _, err = Load(fsys, "half")
	assert.ErrorContains(t, err, "half")
}

func TestOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.frag"), []byte("custom"), 0666))

	vert, frag, err := Load(FS(dir), Flat)
	require.NoError(t, err)
	assert.Equal(t, "custom", frag)
	assert.Contains(t, vert, "u_light_vec")

	ev, _, err := Load(FS(""), Flat)
	require.NoError(t, err)
	assert.Equal(t, ev, vert)
}
