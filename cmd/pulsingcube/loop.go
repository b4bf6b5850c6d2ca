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
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type loop struct {
	cfg    *glapp.Config
	params *Params
	pulse  *pulse
	scale  float32

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
	if ev.Type == glapp.KeyDown && ev.Key == glfw.KeySpace {
		if !ev.Repeat {
			l.pulse.toggle(ev.Time)
		}
		return true
	}
	return false
}

func (l *loop) Update(a *glapp.App) {
	if l.watcher != nil && slices.Contains(l.watcher.Changed(), shaders.Colored) {
		if errors.Log(l.cube.Reload(l.shaders)) == nil {
			slog.Info("reloaded shaders", "program", shaders.Colored)
		}
	}
	l.scale = l.pulse.value(a.Ticks())
}

func (l *loop) Draw(a *glapp.App) error {
	view := mgl32.Scale3D(1, a.AspectRatio(), 1).
		Mul4(mgl32.Frustum(-2, 2, -2, 2, 2, 20)).
		Mul4(mgl32.LookAtV(l.params.Eye, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}))
	angle := mgl32.DegToRad(float32(a.Ticks().Seconds()) * l.params.SpinSpeed)
	model := mgl32.HomogRotate3DZ(angle).Mul4(mgl32.Scale3D(l.scale, l.scale, l.scale))

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	l.cube.Draw(view, model)
	return glx.CheckError("draw")
}
