// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/gldemos/mesh"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PrismRadius is the distance from the axis of a Prism to its corners.
var PrismRadius = math32.Sqrt(2)

// Polygon returns the n corners of a regular polygon on the unit circle.
// The first two corners are at the bottom, forming a horizontal edge,
// and the corners go counter-clockwise.
func Polygon(n int) []mgl32.Vec2 {
	a0 := 1.5*math32.Pi - math32.Pi/float32(n)
	pts := make([]mgl32.Vec2, n)
	for i := range pts {
		a := a0 + float32(i)*2*math32.Pi/float32(n)
		pts[i] = mgl32.Vec2{math32.Cos(a), math32.Sin(a)}
	}
	return pts
}

// TransitionPolygon returns a polygon that is the fraction f of the way
// from the regular n-gon to the regular (n+1)-gon. Corner i moves toward
// corner i of the (n+1)-gon, and a new corner grows out of corner 0
// toward the last corner of the (n+1)-gon. For f <= 0 the result is the
// n-gon, for f >= 1 the (n+1)-gon.
func TransitionPolygon(n int, f float32) []mgl32.Vec2 {
	if f <= 0 {
		return Polygon(n)
	}
	if f >= 1 {
		return Polygon(n + 1)
	}
	p0 := Polygon(n)
	p1 := Polygon(n + 1)
	pts := make([]mgl32.Vec2, 0, n+1)
	for i := range n {
		pts = append(pts, p0[i].Add(p1[i].Sub(p0[i]).Mul(f)))
	}
	pts = append(pts, p0[0].Add(p1[n].Sub(p0[0]).Mul(f)))
	return pts
}

// Prism returns a closed prism mesh around the z axis from z=-1 to z=1,
// whose cross section is TransitionPolygon(n, f) scaled to PrismRadius.
// Corner i of the cross section is vertex 2i at the bottom and 2i+1 at
// the top; the last two vertices are the bottom and top centers.
func Prism(n int, f float32) (*mesh.Mesh, error) {
	if n < 3 {
		return nil, fmt.Errorf("shape: prism needs at least 3 sides, got %d", n)
	}
	pts := TransitionPolygon(n, f)
	m := &mesh.Mesh{
		Vertices: make([]mgl32.Vec3, 0, 2*len(pts)+2),
		Faces:    make([]mesh.Face, 0, 4*len(pts)),
	}
	for _, p := range pts {
		p = p.Mul(PrismRadius)
		m.AddVertex(mgl32.Vec3{p[0], p[1], -1})
		m.AddVertex(mgl32.Vec3{p[0], p[1], 1})
	}

	k := uint32(len(pts))
	for i := range k - 1 {
		j := i * 2
		m.AddFace(mesh.Face{j, j + 2, j + 1})
		m.AddFace(mesh.Face{j + 2, j + 3, j + 1})
	}
	bottom := m.AddVertex(mgl32.Vec3{0, 0, -1})
	top := m.AddVertex(mgl32.Vec3{0, 0, 1})
	m.AddFace(mesh.Face{2*k - 2, 0, 2*k - 1})
	m.AddFace(mesh.Face{0, 1, 2*k - 1})
	for i := range k - 1 {
		j := i * 2
		m.AddFace(mesh.Face{j + 1, j + 3, top})
		m.AddFace(mesh.Face{j + 2, j, bottom})
	}
	m.AddFace(mesh.Face{2*k - 1, 1, top})
	m.AddFace(mesh.Face{0, 2*k - 2, bottom})
	return m, nil
}
