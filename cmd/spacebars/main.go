// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spacebars shows a grid of colored cubes spinning in
// alternating directions.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/gldemos/glapp"
)

// Config is the command line configuration of spacebars.
type Config struct {
	glapp.Config
}

func main() {
	opts := cli.DefaultOptions("spacebars", "A grid of spinning colored cubes.")
	cli.Run(opts, &Config{}, &cli.Cmd[*Config]{
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
	return glapp.Run("SpaceBars", &c.Config, &loop{cfg: &c.Config, params: &p})
}
