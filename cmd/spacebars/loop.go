// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gldemos/colored"
	"cogentcore.org/gldemos/glapp"
	"cogentcore.org/gldemos/glx"
	"cogentcore.org/gldemos/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type loop struct {
	cfg    *glapp.Config
	params *Params

	shaders fs.FS
	watcher *glx.ShaderWatcher
	cube    *colored.Colored
}

func (l *loop) Startup(a *glapp.App) error {
	l.shaders = shaders.FS(l.cfg.Shaders)
	cube, err := colored.NewCube(l.shaders, l.params.Colors)
	if err != nil {
		return err
	}
	l.cube = cube
	l.cube.SetLight(l.params.Light)
	if l.cfg.Shaders != "" {
		l.watcher = errors.Log1(glx.NewShaderWatcher(l.cfg.Shaders))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	return glx.CheckError("startup")
}

func (l *loop) Event(a *glapp.App, ev glapp.Event) bool {
	return false
}

func (l *loop) Update(a *glapp.App) {
	if l.watcher != nil && slices.Contains(l.watcher.Changed(), shaders.Colored) {
		if errors.Log(l.cube.Reload(l.shaders)) == nil {
			slog.Info("reloaded shaders", "program", shaders.Colored)
		}
	}
}

func (l *loop) Draw(a *glapp.App) error {
	view := viewMatrix(a.AspectRatio(), l.params.Eye, l.params.Center)
	angle := mgl32.DegToRad(float32(a.Ticks().Seconds()) * l.params.RotationSpeed)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	for _, model := range gridModels(l.params.Grid, angle) {
		l.cube.Draw(view, model)
	}
	return glx.CheckError("draw")
}
