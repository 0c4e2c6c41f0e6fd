// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vtlog is vtcore's diagnostic logger: a thin wrapper around
// log/slog used to report discarded/unrecognized byte sequences
// (spec.md §4.3, §7) without ever panicking or aborting the parse.
package vtlog

import (
	"context"
	"io"
	"os"

	"log/slog"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
	LevelFatal: "FATAL",
}

type myLogger struct {
	*slog.Logger
	addSource bool
	logLevel  *slog.LevelVar
}

// Log is the package-level logger; tests redirect it with CreateLogger
// (e.g. into io.Discard) the way util.Logger is redirected in aprilsh.
var Log *myLogger

func init() {
	Log = new(myLogger)
	Log.logLevel = new(slog.LevelVar)
	Log.SetLevel(slog.LevelInfo)
	Log.SetOutput(os.Stderr)
}

func (l *myLogger) SetLevel(v slog.Level) { l.logLevel.Set(v) }

func (l *myLogger) SetOutput(w io.Writer) {
	ho := &slog.HandlerOptions{
		AddSource: l.addSource,
		Level:     l.logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				label, ok := levelNames[level]
				if !ok {
					label = level.String()
				}
				a.Value = slog.StringValue(label)
			}
			return a
		},
	}
	l.Logger = slog.New(slog.NewTextHandler(w, ho))
}

// CreateLogger rebuilds the logger against w at the given level,
// without touching slog's package-level default — used by tests to
// redirect into io.Discard.
func (l *myLogger) CreateLogger(w io.Writer, level slog.Level) {
	l.logLevel.Set(level)
	l.SetOutput(w)
}

func (l *myLogger) Trace(msg string, args ...any) {
	l.Logger.Log(context.Background(), LevelTrace, msg, args...)
}
