// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rotatingmesh shows a rotating prism. Holding space makes it
// lose sides one by one, and releasing space makes it grow them back.
// P toggles wireframe drawing.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/gldemos/glapp"
)

// Config is the command line configuration of rotatingmesh.
type Config struct {
	glapp.Config
}

// newConfig returns the config with the defaults that differ from
// glapp.Config: the prism edges are drawn multisampled.
func newConfig() *Config {
	c := &Config{}
	c.Samples = 2
	return c
}

func main() {
	opts := cli.DefaultOptions("rotatingmesh", "A rotating prism that morphs between polygons.")
	cli.Run(opts, newConfig(), &cli.Cmd[*Config]{
		Func: Run,
		Name: "run",
		Doc:  "Run opens the demo window.",
		Root: true,
	})
}

// Run opens the demo window and runs it until it is closed.
func Run(c *Config) error {
	p := defaultParams()
	if err := glapp.LoadParams(c.Params, &p); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}
	return glapp.Run("RotatingMesh", &c.Config, newLoop(&c.Config, &p))
}
