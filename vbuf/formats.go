// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vbuf

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// PosNorm is a vertex with a position and a normal.
type PosNorm struct {
	Pos  mgl32.Vec3
	Norm mgl32.Vec3
}

// PosNormColor is a vertex with a position, a normal and an RGB color.
type PosNormColor struct {
	Pos   mgl32.Vec3
	Norm  mgl32.Vec3
	Color mgl32.Vec3
}

// Byte offsets of the vertex fields, for attribute pointers.
var (
	PosOffset   = int(unsafe.Offsetof(PosNormColor{}.Pos))
	NormOffset  = int(unsafe.Offsetof(PosNormColor{}.Norm))
	ColorOffset = int(unsafe.Offsetof(PosNormColor{}.Color))
)
