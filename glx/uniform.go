// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glx

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Mat4Uniform is a mat4 uniform of the current program.
type Mat4Uniform struct {
	Loc int32
}

// Set sets the uniform value.
func (u Mat4Uniform) Set(m mgl32.Mat4) {
	gl.UniformMatrix4fv(u.Loc, 1, false, &m[0])
}

// Vec3Uniform is a vec3 uniform of the current program.
type Vec3Uniform struct {
	Loc int32
}

// Set sets the uniform value.
func (u Vec3Uniform) Set(v mgl32.Vec3) {
	gl.Uniform3fv(u.Loc, 1, &v[0])
}

// FloatUniform is a float uniform of the current program.
type FloatUniform struct {
	Loc int32
}

// Set sets the uniform value.
func (u FloatUniform) Set(v float32) {
	gl.Uniform1f(u.Loc, v)
}
