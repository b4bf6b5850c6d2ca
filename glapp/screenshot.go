// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Screenshot saves the current framebuffer contents as a PNG file in
// dir and returns the file name.
func (a *App) Screenshot(dir string) (string, error) {
	sz := a.size
	if sz.X == 0 || sz.Y == 0 {
		return "", fmt.Errorf("glapp: screenshot of empty framebuffer")
	}
	img := image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(sz.X), int32(sz.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	fn := filepath.Join(dir, screenshotName(a.Title, time.Now()))
	return fn, saveFramebuffer(img, fn)
}

// saveFramebuffer writes img, whose rows are bottom-up as read from
// OpenGL, as a top-down PNG file.
func saveFramebuffer(img *image.RGBA, filename string) error {
	if err := imgio.Save(filename, transform.FlipV(img), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("glapp: saving screenshot: %w", err)
	}
	return nil
}

func screenshotName(title string, t time.Time) string {
	name := strings.ToLower(strings.Join(strings.Fields(title), "-"))
	if name == "" {
		name = "screenshot"
	}
	return name + "-" + t.Format("20060102-150405.000") + ".png"
}
