// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtlog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestCreateLoggerRedirectsOutput(t *testing.T) {
	var buf bytes.Buffer
	Log.CreateLogger(&buf, slog.LevelDebug)

	Log.Debug("hello", "key", "value")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q, want it to contain %q", buf.String(), "hello")
	}
}

func TestLevelBelowThresholdIsSuppressed(t *testing.T) {
	var buf bytes.Buffer
	Log.CreateLogger(&buf, slog.LevelInfo)

	Log.Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output below threshold, got %q", buf.String())
	}
}

func TestTraceUsesCustomLevelLabel(t *testing.T) {
	var buf bytes.Buffer
	Log.CreateLogger(&buf, LevelTrace)

	Log.Trace("tracing")
	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("log output = %q, want it to contain level label TRACE", buf.String())
	}
}
