// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// createWindow initializes glfw, opens the window with an OpenGL 4.1
// core context made current, and loads the GL functions. The returned
// function destroys the window and terminates glfw.
// IMPORTANT: must be called on the main initial thread!
func (a *App) createWindow() (terminate func(), err error) {
	if err = glfw.Init(); err != nil {
		return nil, fmt.Errorf("glapp: initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if a.Config.Samples > 0 {
		glfw.WindowHint(glfw.Samples, a.Config.Samples)
	}

	width, height := a.Config.Width, a.Config.Height
	var monitor *glfw.Monitor
	if a.Config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}
	window, err := glfw.CreateWindow(width, height, a.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glapp: creating window: %w", err)
	}
	window.MakeContextCurrent()
	if err = gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glapp: initializing OpenGL: %w", err)
	}
	if a.Config.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	a.window = window
	a.SetSwapInterval(a.Config.SwapInterval)

	fw, fh := window.GetFramebufferSize()
	a.size = image.Point{fw, fh}
	gl.Viewport(0, 0, int32(fw), int32(fh))

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		a.events = append(a.events, keyEvent(key, action, mods, a.Ticks()))
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.size = image.Point{width, height}
		gl.Viewport(0, 0, int32(width), int32(height))
		a.events = append(a.events, Event{Type: Resize, Size: a.size, Time: a.Ticks()})
	})

	terminate = func() {
		window.Destroy()
		glfw.Terminate()
	}
	return terminate, nil
}

// SetSwapInterval sets the number of screen refreshes between buffer swaps.
func (a *App) SetSwapInterval(n int) {
	glfw.SwapInterval(n)
}

// Close asks the event loop to stop after the current frame.
func (a *App) Close() {
	a.window.SetShouldClose(true)
}

func (a *App) pollEvents() bool {
	if a.window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

func (a *App) swapBuffers() {
	a.window.SwapBuffers()
}
