// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// LevelFromFlags returns the logging level for the given flags:
// debug takes precedence over quiet, and the default is info.
func LevelFromFlags(debug, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// SetupLogging makes a text handler on stderr at the given level the
// default slog logger.
func SetupLogging(level slog.Level) {
	slog.SetDefault(slog.New(newHandler(os.Stderr, level)))
}

// newHandler returns a text handler that colors level names when w
// is a terminal that supports it.
func newHandler(w io.Writer, level slog.Level) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(levelColor(lvl)).String())
			return a
		},
	})
}

func levelColor(lvl slog.Level) termenv.Color {
	switch {
	case lvl >= slog.LevelError:
		return termenv.ANSIRed
	case lvl >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lvl >= slog.LevelInfo:
		return termenv.ANSIGreen
	}
	return termenv.ANSIBrightBlack
}
