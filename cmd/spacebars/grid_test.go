// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/gldemos/glapp"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridModels(t *testing.T) {
	models := gridModels(3, 0.3)
	require.Len(t, models, 9)
	for i := range 3 {
		for j := range 3 {
			m := models[i*3+j]
			want := mgl32.Vec4{float32(i - 1), 0, float32(j - 1), 1}
			assert.True(t, want.ApproxEqual(m.Col(3)), "cube %d,%d at %v", i, j, m.Col(3))
		}
	}

	center := models[4]
	corner := center.Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	tolassert.EqualTol(t, cubeScale*math32.Sqrt(3), corner.Len(), 1e-5)

	models = gridModels(2, 0)
	require.Len(t, models, 4)
	assert.True(t, mgl32.Vec4{-0.5, 0, -0.5, 1}.ApproxEqual(models[0].Col(3)))
}

func TestGridRotationFlips(t *testing.T) {
	const angle = 0.3
	models := gridModels(3, angle)
	want := []float32{angle, -angle + 1, -angle + 2}
	for j, a := range want {
		// the x axis of a Z rotation scaled by cubeScale
		x := models[j].Col(0)
		tolassert.EqualTol(t, cubeScale*math32.Cos(a), x[0], 1e-5)
		tolassert.EqualTol(t, cubeScale*math32.Sin(a), x[1], 1e-5)
	}
}

func TestParams(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "params.yaml")
	yml := `grid: 5
colors:
  - [1, 0, 0]
  - [0, 1, 0]
  - [0, 0, 1]
  - [1, 1, 0]
  - [0, 1, 1]
  - [1, 0, 1]
`
	require.NoError(t, os.WriteFile(fn, []byte(yml), 0666))

	p := defaultParams()
	require.NoError(t, glapp.LoadParams(fn, &p))
	assert.Equal(t, 5, p.Grid)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, p.Colors[2])
	assert.Equal(t, float32(100), p.RotationSpeed)
	assert.NoError(t, p.validate())

	p.Grid = 0
	assert.Error(t, p.validate())
}
