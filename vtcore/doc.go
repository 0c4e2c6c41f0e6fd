// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vtcore implements an in-memory VT-compatible terminal
// emulator: a byte-stream parser, a dual-buffer screen model with
// scrollback, and a keyboard-to-bytes encoder.
//
// vtcore does not create or read from a pseudo-terminal, does not
// rasterize glyphs, and does not resolve palette indices to pixels —
// those are host responsibilities. A Terminal only consumes bytes via
// Feed and emits bytes via the write-to-master callback in Callbacks.
//
// vtcore is not goroutine-safe. Every exported method on Terminal must
// be called from a single owner goroutine; a caller that needs
// concurrent access must serialize at the Terminal boundary itself.
package vtcore
