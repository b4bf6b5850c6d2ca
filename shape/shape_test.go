// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/gldemos/vbuf"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertPointsEqual(t *testing.T, want, have []mgl32.Vec2) {
	t.Helper()
	require.Len(t, have, len(want))
	for i := range want {
		tolassert.EqualTol(t, want[i][0], have[i][0], tol)
		tolassert.EqualTol(t, want[i][1], have[i][1], tol)
	}
}

func TestPolygon(t *testing.T) {
	for n := 3; n <= 12; n++ {
		pts := Polygon(n)
		require.Len(t, pts, n)
		for _, p := range pts {
			tolassert.EqualTol(t, 1, p.Len(), tol)
		}
		// bottom edge is horizontal and centered
		tolassert.EqualTol(t, pts[0][1], pts[1][1], tol)
		tolassert.EqualTol(t, -pts[0][0], pts[1][0], tol)
		assert.Less(t, pts[0][1], float32(0))
	}
	assertPointsEqual(t, []mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
		scale(Polygon(4), PrismRadius))
}

func scale(pts []mgl32.Vec2, s float32) []mgl32.Vec2 {
	res := make([]mgl32.Vec2, len(pts))
	for i, p := range pts {
		res[i] = p.Mul(s)
	}
	return res
}

func TestTransitionPolygonEnds(t *testing.T) {
	for n := 3; n <= 10; n++ {
		assertPointsEqual(t, Polygon(n), TransitionPolygon(n, 0))
		assertPointsEqual(t, Polygon(n), TransitionPolygon(n, -0.5))
		assertPointsEqual(t, Polygon(n+1), TransitionPolygon(n, 1))
		assertPointsEqual(t, Polygon(n+1), TransitionPolygon(n, 2))
	}
}

func TestTransitionPolygonMiddle(t *testing.T) {
	p0 := Polygon(5)
	p1 := Polygon(6)
	pts := TransitionPolygon(5, 0.25)
	require.Len(t, pts, 6)
	for i := range 5 {
		want := p0[i].Add(p1[i].Sub(p0[i]).Mul(0.25))
		tolassert.EqualTol(t, want[0], pts[i][0], tol)
		tolassert.EqualTol(t, want[1], pts[i][1], tol)
	}
	want := p0[0].Add(p1[5].Sub(p0[0]).Mul(0.25))
	tolassert.EqualTol(t, want[0], pts[5][0], tol)
	tolassert.EqualTol(t, want[1], pts[5][1], tol)
}

func TestPrismCounts(t *testing.T) {
	for n := 3; n <= 10; n++ {
		for _, f := range []float32{0, 0.3, 0.99} {
			m, err := Prism(n, f)
			require.NoError(t, err)
			k := n
			if f > 0 {
				k++
			}
			assert.Len(t, m.Vertices, 2*k+2, "n=%d f=%g", n, f)
			assert.Len(t, m.Faces, 4*k, "n=%d f=%g", n, f)
			assert.NoError(t, m.Validate())
		}
	}
}

func TestPrismNormalsOutward(t *testing.T) {
	m, err := Prism(6, 0)
	require.NoError(t, err)
	for _, f := range m.Faces {
		n := m.Normal(f)
		c := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(c), float32(0), "face %v", f)
	}
}

func TestPrismTooFewSides(t *testing.T) {
	_, err := Prism(2, 0.5)
	assert.Error(t, err)
}

func TestCube(t *testing.T) {
	var buf vbuf.ArrayBuffer[vbuf.PosNormColor]
	AddCube(&buf, DefaultCubeColors)
	assert.Len(t, buf.Vertices, 24)
	assert.Len(t, buf.Indices, 36)
	require.NoError(t, buf.Validate())
	for fi := range 6 {
		for vi := range 4 {
			v := buf.Vertices[fi*4+vi]
			assert.Equal(t, DefaultCubeColors[fi], v.Color)
			// every corner lies on the face plane
			tolassert.EqualTol(t, 1, v.Pos.Dot(v.Norm), tol)
			for c := range 3 {
				tolassert.EqualTol(t, 1, abs(v.Pos[c]), tol)
			}
		}
	}
	assert.Equal(t, []uint16{20, 21, 23, 21, 22, 23}, buf.Indices[30:])
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
