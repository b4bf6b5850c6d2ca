// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides an indexed triangle mesh made of points and
// faces, which is turned into flat-shaded vertex buffers for drawing.
package mesh

import (
	"fmt"

	"cogentcore.org/gldemos/vbuf"
	"github.com/go-gl/mathgl/mgl32"
)

// Face is a triangle given as three vertex indexes, in
// counter-clockwise order when seen from the front.
type Face [3]uint32

// Mesh is a list of points and the triangular faces between them.
type Mesh struct {
	Vertices []mgl32.Vec3
	Faces    []Face
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v mgl32.Vec3) uint32 {
	m.Vertices = append(m.Vertices, v)
	return uint32(len(m.Vertices) - 1)
}

// AddFace appends a face.
func (m *Mesh) AddFace(f Face) {
	m.Faces = append(m.Faces, f)
}

// Normal returns the unit normal of face f. Degenerate faces
// have a zero normal.
func (m *Mesh) Normal(f Face) mgl32.Vec3 {
	v0 := m.Vertices[f[0]]
	n := m.Vertices[f[1]].Sub(v0).Cross(m.Vertices[f[2]].Sub(v0))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Validate returns an error for the first face that refers
// to a vertex that does not exist.
func (m *Mesh) Validate() error {
	nv := uint32(len(m.Vertices))
	for fi, f := range m.Faces {
		for _, vi := range f {
			if vi >= nv {
				return fmt.Errorf("mesh: face %d %v refers to vertex %d, but there are only %d vertices", fi, f, vi, nv)
			}
		}
	}
	return nil
}

// AddFlatShaded appends the faces of m to buf with one vertex per
// face corner, each carrying the normal of its face.
func AddFlatShaded(buf *vbuf.ArrayBuffer[vbuf.PosNorm], m *Mesh) {
	n := len(m.Faces) * 3
	b := vbuf.NewBuilder(buf).ReserveVertices(n).ReserveIndices(n)
	i := 0
	for _, f := range m.Faces {
		norm := m.Normal(f)
		b.AddVertex(vbuf.PosNorm{Pos: m.Vertices[f[0]], Norm: norm})
		b.AddVertex(vbuf.PosNorm{Pos: m.Vertices[f[1]], Norm: norm})
		b.AddVertex(vbuf.PosNorm{Pos: m.Vertices[f[2]], Norm: norm})
		b.AddIndices(i, i+1, i+2)
		i += 3
	}
}
