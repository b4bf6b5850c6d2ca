// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/gldemos/shape"
	"github.com/go-gl/mathgl/mgl32"
)

// Params are the tunable parameters of the demo, which can be
// overridden with a TOML or YAML file.
type Params struct {

	// Grid is the number of cubes along each side of the grid.
	Grid int `toml:"grid" yaml:"grid"`

	// RotationSpeed is in degrees per second.
	RotationSpeed float32 `toml:"rotation_speed" yaml:"rotation_speed"`

	Eye    mgl32.Vec3 `toml:"eye" yaml:"eye"`
	Center mgl32.Vec3 `toml:"center" yaml:"center"`

	// Light is the light direction.
	Light mgl32.Vec3 `toml:"light" yaml:"light"`

	// Colors are the cube face colors.
	Colors shape.CubeColors `toml:"colors" yaml:"colors"`
}

func defaultParams() Params {
	return Params{
		Grid:          3,
		RotationSpeed: 100,
		Eye:           mgl32.Vec3{-4, -4, 1.5},
		Center:        mgl32.Vec3{-0.5, 0, 0},
		Light:         mgl32.Vec3{1, 2, -3},
		Colors:        shape.DefaultCubeColors,
	}
}

func (p *Params) validate() error {
	if p.Grid < 1 {
		return fmt.Errorf("grid must be at least 1, not %d", p.Grid)
	}
	return nil
}
