// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glx provides thin helpers over OpenGL for compiling shader
// programs, looking up attributes and uniforms, and managing vertex
// and index buffers. All functions must be called on the thread that
// owns the GL context.
package glx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked shader program.
type Program struct {
	ID uint32
}

// NewProgram compiles the given vertex and fragment shader sources and
// links them into a program. The returned error includes the driver's
// info log when compilation or linking fails.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("glx: vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("glx: fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("glx: linking program: %s", trimLog(log))
	}
	return &Program{ID: id}, nil
}

func compileShader(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compiling: %s", trimLog(log))
	}
	return sh, nil
}

// trimLog removes the trailing NULs and whitespace of a driver info log.
func trimLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

// Attrib returns the location of the named vertex attribute.
func (p *Program) Attrib(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("glx: vertex attribute %q not found", name)
	}
	return uint32(loc), nil
}

func (p *Program) uniform(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("glx: uniform %q not found", name)
	}
	return loc, nil
}

// Mat4 returns the named 4x4 matrix uniform. Uniforms that are not
// found have location -1, for which setting a value does nothing.
func (p *Program) Mat4(name string) (Mat4Uniform, error) {
	loc, err := p.uniform(name)
	return Mat4Uniform{Loc: loc}, err
}

// Vec3 returns the named 3-vector uniform.
func (p *Program) Vec3(name string) (Vec3Uniform, error) {
	loc, err := p.uniform(name)
	return Vec3Uniform{Loc: loc}, err
}

// Float returns the named float uniform.
func (p *Program) Float(name string) (FloatUniform, error) {
	loc, err := p.uniform(name)
	return FloatUniform{Loc: loc}, err
}
