// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pulsingcube shows a spinning cube that grows and shrinks.
// Space pauses and resumes the pulse.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/gldemos/glapp"
)

// Config is the command line configuration of pulsingcube.
type Config struct {
	glapp.Config
}

func main() {
	opts := cli.DefaultOptions("pulsingcube", "A spinning cube that pulses in size.")
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
	return glapp.Run("PulsingCube", &c.Config, &loop{cfg: &c.Config, params: &p, pulse: newPulse(&p)})
}
