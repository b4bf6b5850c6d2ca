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
	MinScale float32 `toml:"min_scale" yaml:"min_scale"`
	MaxScale float32 `toml:"max_scale" yaml:"max_scale"`

	// PulseRate is the change in scale per second.
	PulseRate float32 `toml:"pulse_rate" yaml:"pulse_rate"`

	// SpinSpeed is in degrees per second.
	SpinSpeed float32 `toml:"spin_speed" yaml:"spin_speed"`

	Eye    mgl32.Vec3       `toml:"eye" yaml:"eye"`
	Light  mgl32.Vec3       `toml:"light" yaml:"light"`
	Colors shape.CubeColors `toml:"colors" yaml:"colors"`
}

func defaultParams() Params {
	return Params{
		MinScale:  0.4,
		MaxScale:  1,
		PulseRate: 0.8,
		SpinSpeed: 30,
		Eye:       mgl32.Vec3{-4, -4, 2.5},
		Light:     mgl32.Vec3{1, 2, -3},
		Colors:    shape.DefaultCubeColors,
	}
}

func (p *Params) validate() error {
	if p.MinScale <= 0 || p.MaxScale <= p.MinScale {
		return fmt.Errorf("scales must satisfy 0 < min_scale < max_scale, not %g and %g", p.MinScale, p.MaxScale)
	}
	if p.PulseRate <= 0 {
		return fmt.Errorf("pulse_rate must be positive, not %g", p.PulseRate)
	}
	return nil
}
