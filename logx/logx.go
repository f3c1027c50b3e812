// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger used by the curves
// commands, with terminal-colored level names.
package logx

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It defaults to Info, or Debug and Warn under the debug and release
// build tags.
var UserLevel = defaultUserLevel

// level is the live level of the default logger, so that
// [SetLevel] applies to a logger that is already installed.
var level = new(slog.LevelVar)

// SetDefaultLogger installs a logger writing to stderr at [UserLevel]
// as the [slog] default.
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// SetLevel sets [UserLevel] and updates any installed logger.
func SetLevel(lvl slog.Level) {
	UserLevel = lvl
	level.Set(lvl)
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s))))
	return lvl, err
}

// NewLogger returns a text logger writing to w at [UserLevel].
// Level names are colored when w is a terminal that supports it.
func NewLogger(w io.Writer) *slog.Logger {
	level.Set(UserLevel)
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				return slog.String(a.Key, LevelString(out, lvl))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LevelString returns the name of the level styled for the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lvl >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
