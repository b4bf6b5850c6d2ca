// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glx

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Error is an OpenGL error code reported by gl.GetError.
type Error struct {
	Op   string
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("glx: %s: %s", e.Op, ErrorName(e.Code))
}

// ErrorName returns the name of a GL error code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	}
	return fmt.Sprintf("GL error 0x%04X", code)
}

// CheckError returns the first pending GL error, if any, as an *Error
// for the named operation. Other pending errors are cleared, up to a
// limit, since a lost context can report errors indefinitely.
func CheckError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for range 16 {
		if gl.GetError() == gl.NO_ERROR {
			break
		}
	}
	return &Error{Op: op, Code: code}
}
