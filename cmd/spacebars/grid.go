// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/go-gl/mathgl/mgl32"

// cubeScale is the half size of each cube in the grid.
const cubeScale = 0.25

// gridModels returns the model matrices of an n by n grid of cubes,
// centered on the origin in the XZ plane, at rotation angle (radians).
// Each cube is rotated by an extra radian per position in the grid, and
// the direction of rotation flips at each odd position.
func gridModels(n int, angle float32) []mgl32.Mat4 {
	offset := float32(1-n) / 2
	models := make([]mgl32.Mat4, 0, n*n)
	for i := range n {
		for j := range n {
			if (i+j)%2 == 1 {
				angle = -angle
			}
			m := mgl32.Translate3D(float32(i)+offset, 0, offset+float32(j)).
				Mul4(mgl32.HomogRotate3DZ(angle + float32(i*n+j))).
				Mul4(mgl32.Scale3D(cubeScale, cubeScale, cubeScale))
			models = append(models, m)
		}
	}
	return models
}

// viewMatrix is the projection and camera transform for a window
// with the given aspect ratio.
func viewMatrix(aspect float32, eye, center mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(1, aspect, 1).
		Mul4(mgl32.Frustum(-2, 2, -2, 2, 2, 20)).
		Mul4(mgl32.LookAtV(eye, center, mgl32.Vec3{0, 0, 1}))
}
