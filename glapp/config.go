// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

// Config is the window and runtime configuration shared by all demos.
// It is meant to be embedded in each demo's own command line config.
type Config struct {

	// Width is the initial window width in screen coordinates.
	Width int `default:"800"`

	// Height is the initial window height in screen coordinates.
	Height int `default:"800"`

	// Fullscreen opens the window full screen on the primary monitor.
	Fullscreen bool

	// SwapInterval is the number of screen refreshes to wait between
	// buffer swaps; 1 syncs to the display, 0 renders as fast as possible.
	SwapInterval int `default:"1"`

	// Samples is the number of samples per pixel for multisampling;
	// 0 disables it. Each demo sets its own default.
	Samples int

	// Params is an optional TOML or YAML file with demo parameters.
	Params string

	// Shaders is an optional directory of shader sources that override
	// the built-in ones. Changes to files in it are reloaded while running.
	Shaders string

	// Screenshots is the directory that F12 screenshots are saved to.
	Screenshots string `default:"."`

	// Debug enables debug level logging, including frame rates.
	Debug bool

	// Quiet only logs errors.
	Quiet bool
}
