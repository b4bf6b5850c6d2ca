// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newHandler(&buf, slog.LevelInfo))
	l.Debug("hidden")
	l.Info("shown", "n", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=shown n=3")
}

type testParams struct {
	Sides int        `toml:"sides" yaml:"sides"`
	Rate  float32    `toml:"rate" yaml:"rate"`
	Color [3]float32 `toml:"color" yaml:"color"`
	Name  string     `toml:"name" yaml:"name"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestLoadParams(t *testing.T) {
	defaults := testParams{Sides: 10, Rate: 0.5, Name: "default"}

	p := defaults
	require.NoError(t, LoadParams("", &p))
	assert.Equal(t, defaults, p)

	p = defaults
	fn := writeFile(t, "p.toml", "sides = 6\ncolor = [0.1, 0.2, 0.3]\n")
	require.NoError(t, LoadParams(fn, &p))
	assert.Equal(t, testParams{Sides: 6, Rate: 0.5, Color: [3]float32{0.1, 0.2, 0.3}, Name: "default"}, p)

	p = defaults
	fn = writeFile(t, "p.yaml", "rate: 2\nname: cube\n")
	require.NoError(t, LoadParams(fn, &p))
	assert.Equal(t, testParams{Sides: 10, Rate: 2, Name: "cube"}, p)

	fn = writeFile(t, "p.json", "{}")
	assert.ErrorContains(t, LoadParams(fn, &p), "unsupported extension")

	fn = writeFile(t, "bad.toml", "sides = ")
	assert.ErrorContains(t, LoadParams(fn, &p), "decoding params")

	assert.Error(t, LoadParams(filepath.Join(t.TempDir(), "missing.toml"), &p))
}

func TestSaveFramebuffer(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	img.Set(0, 0, red)
	img.Set(1, 0, red)
	img.Set(0, 1, blue)
	img.Set(1, 1, blue)

	fn := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, saveFramebuffer(img, fn))

	res, err := imgio.Open(fn)
	require.NoError(t, err)
	r, g, b, _ := res.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff}, []uint32{r, g, b})
	r, g, b, _ = res.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})

	assert.Error(t, saveFramebuffer(img, filepath.Join(t.TempDir(), "nodir", "shot.png")))
}

func TestScreenshotName(t *testing.T) {
	tm := time.Date(2025, 3, 4, 5, 6, 7, 80*int(time.Millisecond), time.UTC)
	assert.Equal(t, "rotating-mesh-20250304-050607.080.png", screenshotName("Rotating Mesh", tm))
	assert.Equal(t, "screenshot-20250304-050607.080.png", screenshotName("  ", tm))
}

func TestKeyEvent(t *testing.T) {
	ev := keyEvent(glfw.KeySpace, glfw.Press, 0, time.Second)
	assert.Equal(t, Event{Type: KeyDown, Key: glfw.KeySpace, Time: time.Second}, ev)

	ev = keyEvent(glfw.KeySpace, glfw.Repeat, glfw.ModShift, 2*time.Second)
	assert.Equal(t, KeyDown, ev.Type)
	assert.True(t, ev.Repeat)
	assert.Equal(t, glfw.ModShift, ev.Mods)

	ev = keyEvent(glfw.KeyP, glfw.Release, 0, 0)
	assert.Equal(t, KeyUp, ev.Type)
	assert.False(t, ev.Repeat)

	assert.Equal(t, "KeyUp", KeyUp.String())
	assert.Equal(t, "Resize", Resize.String())
	assert.Equal(t, "7", EventTypes(7).String())

	var et EventTypes
	assert.NoError(t, et.SetString("Resize"))
	assert.Equal(t, Resize, et)
	assert.Error(t, et.SetString("Scroll"))
	assert.Equal(t, []EventTypes{KeyDown, KeyUp, Resize}, EventTypesValues())
	assert.Equal(t, EventTypes(3), EventTypesN)

	text, err := KeyUp.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "KeyUp", string(text))
}

func TestAspectRatio(t *testing.T) {
	assert.Equal(t, float32(2), aspectRatio(image.Point{800, 400}))
	assert.Equal(t, float32(1), aspectRatio(image.Point{800, 0}))
}
