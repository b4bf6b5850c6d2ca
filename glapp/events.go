// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

//go:generate core generate

import (
	"image"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// EventTypes are the kinds of Event.
type EventTypes int32 //enums:enum

const (
	// KeyDown is sent when a key is pressed, and repeatedly while it is
	// held down, with Repeat set.
	KeyDown EventTypes = iota

	// KeyUp is sent when a key is released.
	KeyUp

	// Resize is sent when the framebuffer size changes.
	Resize
)

// Event is an input or window event delivered to EventLoop.Event.
type Event struct {
	Type EventTypes

	// Key is the key for KeyDown and KeyUp events.
	Key glfw.Key

	// Mods are the modifier keys held during a key event.
	Mods glfw.ModifierKey

	// Repeat is set on KeyDown events generated by key repeat.
	Repeat bool

	// Time is when the event was received, relative to App.Ticks.
	Time time.Duration

	// Size is the new framebuffer size for Resize events.
	Size image.Point
}

// keyEvent converts a glfw key callback into an Event.
func keyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey, t time.Duration) Event {
	ev := Event{Type: KeyDown, Key: key, Mods: mods, Time: t}
	switch action {
	case glfw.Release:
		ev.Type = KeyUp
	case glfw.Repeat:
		ev.Repeat = true
	}
	return ev
}

// EventLoop is implemented by each demo. Run calls Startup once, then
// repeatedly delivers pending events to Event, and calls Update and
// Draw, all on the thread that owns the GL context.
type EventLoop interface {

	// Startup creates the GL resources. An error aborts Run.
	Startup(a *App) error

	// Event handles an event and returns whether it was used.
	// Unused events get default handling (Escape closes the window,
	// F12 takes a screenshot).
	Event(a *App, ev Event) bool

	// Update advances the animation state.
	Update(a *App)

	// Draw renders a frame. Errors are logged and the loop continues.
	Draw(a *App) error
}
