// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gldemos/glapp"
	"cogentcore.org/gldemos/glx"
	"cogentcore.org/gldemos/mesh"
	"cogentcore.org/gldemos/shaders"
	"cogentcore.org/gldemos/shape"
	"cogentcore.org/gldemos/vbuf"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// meshProgram is a compiled gouraud or flat program with the
// locations the loop needs.
type meshProgram struct {
	*glx.Program

	position, normal     uint32
	mvMatrix, projMatrix glx.Mat4Uniform
}

func newMeshProgram(fsys fs.FS, p *Params) (*meshProgram, error) {
	vert, frag, err := shaders.Load(fsys, p.Shading)
	if err != nil {
		return nil, err
	}
	prog, err := glx.NewProgram(vert, frag)
	if err != nil {
		return nil, err
	}
	prog.Use()
	mp := &meshProgram{Program: prog}

	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	mp.position, err = prog.Attrib("a_position")
	add(err)
	mp.normal, err = prog.Attrib("a_normal")
	add(err)
	mp.mvMatrix, err = prog.Mat4("u_mv_matrix")
	add(err)
	mp.projMatrix, err = prog.Mat4("u_proj_matrix")
	add(err)

	setVec3 := func(name string, v mgl32.Vec3) {
		u, err := prog.Vec3(name)
		add(err)
		u.Set(v)
	}
	switch p.Shading {
	case shaders.Gouraud:
		setVec3("u_light_pos", p.LightPos)
		setVec3("u_diffuse_albedo", p.Diffuse)
		setVec3("u_specular_albedo", p.Specular)
		setVec3("u_ambient", p.Ambient)
		u, err := prog.Float("u_specular_power")
		add(err)
		u.Set(p.SpecularPower)
	case shaders.Flat:
		setVec3("u_light_vec", p.LightVec)
	}
	if len(errs) > 0 {
		prog.Delete()
		return nil, errors.Join(errs...)
	}
	return mp, nil
}

type loop struct {
	cfg    *glapp.Config
	params *Params
	morph  *morph

	shaders fs.FS
	watcher *glx.ShaderWatcher
	program *meshProgram

	vao     glx.VertexArray
	buffers *glx.ElementBuffers
	buf     vbuf.ArrayBuffer[vbuf.PosNorm]

	// mesh is the current prism, which is rebuilt whenever the number
	// of sides changes; updateBuffer marks that it needs uploading.
	mesh         *mesh.Mesh
	updateBuffer bool

	wireframe bool
}

func newLoop(cfg *glapp.Config, p *Params) *loop {
	return &loop{cfg: cfg, params: p, morph: newMorph(p)}
}

func (l *loop) Startup(a *glapp.App) error {
	m, err := shape.Prism(int(l.params.MaxSides), 0)
	if err != nil {
		return err
	}
	l.mesh = m
	mesh.AddFlatShaded(&l.buf, m)
	if err := l.buf.Validate(); err != nil {
		return err
	}

	l.vao = glx.NewVertexArray()
	l.buffers = glx.NewElementBuffers()
	glx.UploadArrayBuffer(l.buffers, &l.buf, gl.DYNAMIC_DRAW)

	l.shaders = shaders.FS(l.cfg.Shaders)
	if err := l.loadProgram(a); err != nil {
		return err
	}
	if l.cfg.Shaders != "" {
		l.watcher = errors.Log1(glx.NewShaderWatcher(l.cfg.Shaders))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	return glx.CheckError("startup")
}

// loadProgram compiles the configured shading program and replaces
// the current one with it.
func (l *loop) loadProgram(a *glapp.App) error {
	mp, err := newMeshProgram(l.shaders, l.params)
	if err != nil {
		if l.program != nil {
			l.program.Use()
		}
		return err
	}
	if l.program != nil {
		l.program.Delete()
	}
	l.program = mp

	l.vao.Bind()
	l.buffers.Vertices.Bind()
	glx.EnableAttributes(l.buf.RowSize(),
		glx.Attribute{Loc: mp.position, Size: 3, Offset: vbuf.PosOffset},
		glx.Attribute{Loc: mp.normal, Size: 3, Offset: vbuf.NormOffset})
	l.setProjection(a)
	return nil
}

func (l *loop) setProjection(a *glapp.App) {
	proj := mgl32.Scale3D(1, a.AspectRatio(), 1).
		Mul4(mgl32.Frustum(-2, 2, -2, 2, 2, 20)).
		Mul4(mgl32.LookAtV(l.params.Eye, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}))
	l.program.projMatrix.Set(proj)
}

func (l *loop) Event(a *glapp.App, ev glapp.Event) bool {
	switch {
	case ev.Type == glapp.Resize:
		l.setProjection(a)
	case ev.Type == glapp.KeyUp && ev.Key == glfw.KeyP:
		l.wireframe = !l.wireframe
		if l.wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	case ev.Type == glapp.KeyDown && ev.Key == glfw.KeySpace:
		if !ev.Repeat {
			l.morph.shrink(ev.Time)
		}
	case ev.Type == glapp.KeyUp && ev.Key == glfw.KeySpace:
		l.morph.grow(ev.Time)
	default:
		return false
	}
	return true
}

func (l *loop) Update(a *glapp.App) {
	if l.watcher != nil && slices.Contains(l.watcher.Changed(), l.params.Shading) {
		if errors.Log(l.loadProgram(a)) == nil {
			slog.Info("reloaded shaders", "program", l.params.Shading)
		}
	}

	sides, frac, changed := l.morph.update(a.Ticks())
	if !changed {
		return
	}
	m, err := shape.Prism(sides, frac)
	if errors.Log(err) != nil {
		return
	}
	l.mesh = m
	l.updateBuffer = true
}

func (l *loop) Draw(a *glapp.App) error {
	if l.updateBuffer {
		l.buf.Reset()
		mesh.AddFlatShaded(&l.buf, l.mesh)
		if err := l.buf.Validate(); err != nil {
			return err
		}
		glx.UpdateArrayBuffer(l.buffers, &l.buf)
		l.updateBuffer = false
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	angle := float32(a.Ticks().Seconds()) * l.params.RotationSpeed
	l.program.mvMatrix.Set(mgl32.HomogRotate3DZ(mgl32.DegToRad(angle)))
	l.buffers.Draw()
	return glx.CheckError("draw")
}
