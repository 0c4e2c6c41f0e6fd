// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

// Cell is one grid position: a displayable byte plus its rendition.
//
// Char is always a space or a byte in [0x20, 0x7E] — vtcore stores one
// byte per cell and never holds partially-initialized garbage (see the
// package invariant in screen.go's newScreen).
type Cell struct {
	Char byte
	Fg   byte
	Bg   byte

	// Protected cells survive erase (J/K), scroll-region shifts and
	// insert/delete line/char operations. Set by SGR 8, cleared by SGR 0.
	Protected bool

	// Bold is a sticky rendition bit with no further color semantics;
	// the host may use it however it renders bold glyphs.
	Bold bool
}

// blank returns the cell used to fill newly exposed or erased positions.
func blank(fg, bg byte) Cell {
	return Cell{Char: ' ', Fg: fg, Bg: bg}
}
