// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/gldemos/vbuf"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *Mesh {
	m := &Mesh{}
	m.AddVertex(mgl32.Vec3{0, 0, 0})
	m.AddVertex(mgl32.Vec3{1, 0, 0})
	m.AddVertex(mgl32.Vec3{1, 1, 0})
	m.AddVertex(mgl32.Vec3{0, 1, 0})
	m.AddFace(Face{0, 1, 2})
	m.AddFace(Face{0, 2, 3})
	return m
}

func TestAddVertex(t *testing.T) {
	m := &Mesh{}
	assert.Equal(t, uint32(0), m.AddVertex(mgl32.Vec3{1, 2, 3}))
	assert.Equal(t, uint32(1), m.AddVertex(mgl32.Vec3{4, 5, 6}))
	assert.Len(t, m.Vertices, 2)
}

func TestNormal(t *testing.T) {
	m := square()
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normal(m.Faces[0]))
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, m.Normal(Face{0, 2, 1}))

	m.AddVertex(mgl32.Vec3{2, 0, 0})
	assert.Equal(t, mgl32.Vec3{}, m.Normal(Face{0, 1, 4}))
}

func TestValidate(t *testing.T) {
	m := square()
	require.NoError(t, m.Validate())
	m.AddFace(Face{0, 3, 4})
	assert.ErrorContains(t, m.Validate(), "face 2")
}

func TestAddFlatShaded(t *testing.T) {
	m := square()
	var buf vbuf.ArrayBuffer[vbuf.PosNorm]
	AddFlatShaded(&buf, m)
	assert.Len(t, buf.Vertices, 6)
	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5}, buf.Indices)
	for _, v := range buf.Vertices {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Norm)
	}
	assert.Equal(t, m.Vertices[3], buf.Vertices[5].Pos)
	require.NoError(t, buf.Validate())
}
