// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glapp is the application shell of the demos: it opens a glfw
// window with an OpenGL context and drives an EventLoop.
package glapp

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// fpsInterval is how often the frame rate is logged at debug level.
const fpsInterval = 10 * time.Second

// App is a running demo window.
type App struct {

	// Config is the configuration the window was created with.
	Config *Config

	// Title is the window title.
	Title string

	window *glfw.Window
	loop   EventLoop
	start  time.Time
	size   image.Point
	events []Event
}

// Run opens a window with the given title and runs loop in it until
// the window is closed. It must be called from the main goroutine.
// Errors from creating the window or from loop.Startup are returned.
func Run(title string, cfg *Config, loop EventLoop) error {
	SetupLogging(LevelFromFlags(cfg.Debug, cfg.Quiet))

	a := &App{Config: cfg, Title: title, loop: loop, start: time.Now()}
	terminate, err := a.createWindow()
	if err != nil {
		return err
	}
	defer terminate()

	if err := loop.Startup(a); err != nil {
		return fmt.Errorf("%s: startup: %w", title, err)
	}
	slog.Debug("started", "title", title, "size", a.size)
	a.run()
	return nil
}

func (a *App) run() {
	frameCount := 0
	stTime := time.Now()
	for a.pollEvents() {
		a.dispatch()
		a.loop.Update(a)
		errors.Log(a.loop.Draw(a))
		a.swapBuffers()

		frameCount++
		eTime := time.Now()
		dur := eTime.Sub(stTime)
		if dur > fpsInterval {
			slog.Debug("frame rate", "fps", fmt.Sprintf("%.0f", float64(frameCount)/dur.Seconds()))
			frameCount = 0
			stTime = eTime
		}
	}
}

// dispatch delivers the events queued by the glfw callbacks.
func (a *App) dispatch() {
	events := a.events
	a.events = nil
	for _, ev := range events {
		if a.loop.Event(a, ev) {
			continue
		}
		a.defaultEvent(ev)
	}
}

func (a *App) defaultEvent(ev Event) {
	switch {
	case ev.Type == KeyDown && ev.Key == glfw.KeyEscape:
		a.Close()
	case ev.Type == KeyUp && ev.Key == glfw.KeyF12:
		fn, err := a.Screenshot(a.Config.Screenshots)
		if errors.Log(err) == nil {
			slog.Info("saved screenshot", "file", fn)
		}
	}
}

// Ticks returns the time since the app started.
func (a *App) Ticks() time.Duration {
	return time.Since(a.start)
}

// Size returns the framebuffer size in pixels.
func (a *App) Size() image.Point {
	return a.size
}

// AspectRatio returns the framebuffer width divided by its height.
func (a *App) AspectRatio() float32 {
	return aspectRatio(a.size)
}

func aspectRatio(sz image.Point) float32 {
	if sz.X <= 0 || sz.Y <= 0 {
		return 1
	}
	return float32(sz.X) / float32(sz.Y)
}
