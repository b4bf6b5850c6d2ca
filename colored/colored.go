// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colored draws meshes with per-vertex colors, lit by a single
// directional light, using the colored shader program.
package colored

import (
	"io/fs"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gldemos/glx"
	"cogentcore.org/gldemos/shaders"
	"cogentcore.org/gldemos/shape"
	"cogentcore.org/gldemos/vbuf"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Colored is the colored shader program together with the vertex
// array and buffers of one mesh.
type Colored struct {
	program *glx.Program

	position, normal, color uint32

	mvpMatrix   glx.Mat4Uniform
	modelMatrix glx.Mat4Uniform
	light       glx.Vec3Uniform
	lightDir    mgl32.Vec3

	vao     glx.VertexArray
	buffers *glx.ElementBuffers
	rowSize int
}

// NewCube uploads a cube with the given face colors and
// compiles the program from fsys.
func NewCube(fsys fs.FS, colors shape.CubeColors) (*Colored, error) {
	var buf vbuf.ArrayBuffer[vbuf.PosNormColor]
	shape.AddCube(&buf, colors)
	return New(fsys, &buf)
}

// New uploads buf as static data and compiles the program from fsys.
func New(fsys fs.FS, buf *vbuf.ArrayBuffer[vbuf.PosNormColor]) (*Colored, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	c := &Colored{rowSize: buf.RowSize()}
	c.vao = glx.NewVertexArray()
	c.buffers = glx.NewElementBuffers()
	glx.UploadArrayBuffer(c.buffers, buf, gl.STATIC_DRAW)
	if err := c.Reload(fsys); err != nil {
		c.Delete()
		return nil, err
	}
	return c, nil
}

// Reload compiles the program from fsys and makes it current. On
// failure the previous program, if any, stays in use.
func (c *Colored) Reload(fsys fs.FS) error {
	vert, frag, err := shaders.Load(fsys, shaders.Colored)
	if err != nil {
		return err
	}
	prog, err := glx.NewProgram(vert, frag)
	if err != nil {
		return err
	}
	prog.Use()

	var (
		errs                    [6]error
		position, normal, color uint32
		mvp, model              glx.Mat4Uniform
		light                   glx.Vec3Uniform
	)
	position, errs[0] = prog.Attrib("a_position")
	normal, errs[1] = prog.Attrib("a_normal")
	color, errs[2] = prog.Attrib("a_color")
	mvp, errs[3] = prog.Mat4("u_mvp_matrix")
	model, errs[4] = prog.Mat4("u_matrix")
	light, errs[5] = prog.Vec3("u_light")
	if err := errors.Join(errs[:]...); err != nil {
		prog.Delete()
		if c.program != nil {
			c.program.Use()
		}
		return err
	}

	c.program.Delete()
	c.program = prog
	c.position, c.normal, c.color = position, normal, color
	c.mvpMatrix, c.modelMatrix, c.light = mvp, model, light
	c.light.Set(c.lightDir)

	c.vao.Bind()
	c.buffers.Vertices.Bind()
	glx.EnableAttributes(c.rowSize,
		glx.Attribute{Loc: position, Size: 3, Offset: vbuf.PosOffset},
		glx.Attribute{Loc: normal, Size: 3, Offset: vbuf.NormOffset},
		glx.Attribute{Loc: color, Size: 3, Offset: vbuf.ColorOffset})
	return nil
}

// SetLight sets the light direction.
func (c *Colored) SetLight(dir mgl32.Vec3) {
	c.lightDir = dir
	c.light.Set(dir)
}

// Draw draws the mesh with the given model matrix, and view-projection
// matrix applied after it.
func (c *Colored) Draw(view, model mgl32.Mat4) {
	c.mvpMatrix.Set(view.Mul4(model))
	c.modelMatrix.Set(model)
	c.buffers.Draw()
}

// Delete releases the program, buffers and vertex array.
func (c *Colored) Delete() {
	c.program.Delete()
	c.buffers.Delete()
	c.vao.Delete()
}
