// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/gldemos/shaders"
	"cogentcore.org/gldemos/vbuf"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Params are the tunable parameters of the demo, which can be
// overridden with a TOML or YAML file.
type Params struct {

	// MinSides is the number of sides the prism shrinks to while space is held.
	MinSides float32 `toml:"min_sides" yaml:"min_sides"`

	// MaxSides is the number of sides the prism starts with and grows back to.
	MaxSides float32 `toml:"max_sides" yaml:"max_sides"`

	// ShrinkRate is the number of sides lost per second.
	ShrinkRate float32 `toml:"shrink_rate" yaml:"shrink_rate"`

	// GrowRate is the number of sides gained per second.
	GrowRate float32 `toml:"grow_rate" yaml:"grow_rate"`

	// RotationSpeed is in degrees per second.
	RotationSpeed float32 `toml:"rotation_speed" yaml:"rotation_speed"`

	// Eye is the camera position; the camera looks at the origin with +Z up.
	Eye mgl32.Vec3 `toml:"eye" yaml:"eye"`

	// Shading is the shader program: gouraud or flat.
	Shading string `toml:"shading" yaml:"shading"`

	// LightPos is the point light position for gouraud shading.
	LightPos mgl32.Vec3 `toml:"light_pos" yaml:"light_pos"`

	// LightVec is the light direction for flat shading.
	LightVec mgl32.Vec3 `toml:"light_vec" yaml:"light_vec"`

	Diffuse       mgl32.Vec3 `toml:"diffuse" yaml:"diffuse"`
	Specular      mgl32.Vec3 `toml:"specular" yaml:"specular"`
	SpecularPower float32    `toml:"specular_power" yaml:"specular_power"`
	Ambient       mgl32.Vec3 `toml:"ambient" yaml:"ambient"`
}

func defaultParams() Params {
	return Params{
		MinSides:      3,
		MaxSides:      10,
		ShrinkRate:    0.5,
		GrowRate:      0.6,
		RotationSpeed: 20,
		Eye:           mgl32.Vec3{-4, -4, 2.5},
		Shading:       shaders.Gouraud,
		LightPos:      mgl32.Vec3{-4, -8, 8},
		LightVec:      mgl32.Vec3{1, 2, -3},
		Diffuse:       mgl32.Vec3{0.9, 0.6, 0.2},
		Specular:      mgl32.Vec3{0.5, 0.5, 0.5},
		SpecularPower: 32,
		Ambient:       mgl32.Vec3{0.1, 0.1, 0.1},
	}
}

func (p *Params) validate() error {
	if p.MinSides < 3 {
		return fmt.Errorf("min_sides must be at least 3, not %g", p.MinSides)
	}
	if p.MinSides != math32.Floor(p.MinSides) || p.MaxSides != math32.Floor(p.MaxSides) {
		return fmt.Errorf("min_sides (%g) and max_sides (%g) must be whole numbers", p.MinSides, p.MaxSides)
	}
	if p.MaxSides < p.MinSides {
		return fmt.Errorf("max_sides (%g) must not be less than min_sides (%g)", p.MaxSides, p.MinSides)
	}
	// each side of a flat shaded prism is 12 vertices
	if 12*(int(p.MaxSides)+1) > vbuf.MaxVertices {
		return fmt.Errorf("max_sides (%g) is too large, the prism would exceed %d vertices", p.MaxSides, vbuf.MaxVertices)
	}
	if p.ShrinkRate <= 0 || p.GrowRate <= 0 {
		return fmt.Errorf("shrink_rate and grow_rate must be positive")
	}
	if p.Shading != shaders.Gouraud && p.Shading != shaders.Flat {
		return fmt.Errorf("unknown shading %q, must be %q or %q", p.Shading, shaders.Gouraud, shaders.Flat)
	}
	return nil
}
