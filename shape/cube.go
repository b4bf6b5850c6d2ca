// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds the geometry drawn by the demos: regular and
// transitional polygon prisms, and flat colored cubes.
package shape

import (
	"cogentcore.org/gldemos/vbuf"
	"github.com/go-gl/mathgl/mgl32"
)

// CubeColors are the colors of the six cube faces, in the order
// -z, +x, +z, -x, +y, -y.
type CubeColors [6]mgl32.Vec3

// DefaultCubeColors are the face colors used when none are configured.
var DefaultCubeColors = CubeColors{
	{0.4, 0.7, 0.9},
	{0.7, 0.9, 0.4},
	{0.9, 0.4, 0.7},
	{0.4, 0.9, 0.7},
	{0.7, 0.4, 0.9},
	{0.9, 0.7, 0.4},
}

// cubeFaces gives major axis, minor axis and normal for each face,
// in the same order as CubeColors.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{0, 0, -1}, {0, 1, 0}, {-1, 0, 0}},
	{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
}

// AddCubeFace adds a single colored square with its center at normal,
// spanning ±major and ±minor around it.
func AddCubeFace(buf *vbuf.ArrayBuffer[vbuf.PosNormColor], major, minor, normal, color mgl32.Vec3) {
	vtx := func(p mgl32.Vec3) vbuf.PosNormColor {
		return vbuf.PosNormColor{Pos: p.Add(normal), Norm: normal, Color: color}
	}
	vbuf.NewBuilder(buf).
		ReserveVertices(4).
		AddVertex(vtx(major.Mul(-1).Sub(minor))).
		AddVertex(vtx(major.Sub(minor))).
		AddVertex(vtx(major.Add(minor))).
		AddVertex(vtx(major.Mul(-1).Add(minor))).
		ReserveIndices(6).
		AddIndices(0, 1, 3).
		AddIndices(1, 2, 3)
}

// AddCube adds a cube from -1 to 1 along each axis with one flat
// color per face.
func AddCube(buf *vbuf.ArrayBuffer[vbuf.PosNormColor], colors CubeColors) {
	for i, f := range cubeFaces {
		AddCubeFace(buf, f[0], f[1], f[2], colors[i])
	}
}
