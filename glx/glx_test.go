// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glx

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_OPERATION", ErrorName(gl.INVALID_OPERATION))
	assert.Equal(t, "GL_OUT_OF_MEMORY", ErrorName(gl.OUT_OF_MEMORY))
	assert.Equal(t, "GL error 0x1234", ErrorName(0x1234))

	err := &Error{Op: "draw", Code: gl.INVALID_VALUE}
	assert.Equal(t, "glx: draw: GL_INVALID_VALUE", err.Error())
}

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:3: error", trimLog("0:3: error\n\x00\x00"))
	assert.Equal(t, "", trimLog("\x00"))
}

func TestShaderWatcher(t *testing.T) {
	dir := t.TempDir()
	sw, err := NewShaderWatcher(dir)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.vert"), []byte("v"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.frag"), []byte("f"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colored.frag"), []byte("f"), 0666))

	var names []string
	require.Eventually(t, func() bool {
		for _, n := range sw.Changed() {
			if !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
		return len(names) == 2
	}, 5*time.Second, 10*time.Millisecond)
	slices.Sort(names)
	assert.Equal(t, []string{"colored", "flat"}, names)
}
