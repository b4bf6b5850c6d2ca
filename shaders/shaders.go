// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders contains the GLSL programs used by the demos.
// Each program is a pair of files, name.vert and name.frag.
package shaders

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.vert *.frag
var embedded embed.FS

// Program names.
const (
	Gouraud = "gouraud"
	Flat    = "flat"
	Colored = "colored"
)

// FS returns the filesystem that shader sources are loaded from.
// If dir is non-empty, files in dir take precedence over the
// embedded ones.
func FS(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return overlay{top: os.DirFS(dir), base: embedded}
}

// Load returns the vertex and fragment shader sources of
// the named program.
func Load(fsys fs.FS, name string) (vert, frag string, err error) {
	vb, err := fs.ReadFile(fsys, name+".vert")
	if err != nil {
		return "", "", fmt.Errorf("shaders: loading %s: %w", name, err)
	}
	fb, err := fs.ReadFile(fsys, name+".frag")
	if err != nil {
		return "", "", fmt.Errorf("shaders: loading %s: %w", name, err)
	}
	return string(vb), string(fb), nil
}

// overlay opens files from top, falling back to base
// for files that do not exist in top.
type overlay struct {
	top, base fs.FS
}

func (o overlay) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.base.Open(name)
}
