// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

// Screen is one of a Terminal's two buffers (main or alternate): a
// fixed rows x cols grid of cells, a cursor and the sticky write-time
// rendition SGR updates.
type Screen struct {
	rows, cols int
	cells      []Cell // row-major, len == rows*cols

	cursorRow, cursorCol int // cursorCol may reach cols: pending wrap

	// attrFg/attrBg/attrProtected/attrBold are the sticky rendition
	// applied to the next printed cell; see color.go's applySGR.
	attrFg        byte
	attrBg        byte
	attrProtected bool
	attrBold      bool
}

func newScreen(rows, cols int, def defaultColor) *Screen {
	s := &Screen{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	s.resetAttrs(def)
	s.clear(def)
	return s
}

func (s *Screen) resetAttrs(def defaultColor) {
	s.attrFg = def.fg()
	s.attrBg = def.bg()
	s.attrProtected = false
	s.attrBold = false
}

// clearCells fills every cell with a blank in the terminal's default
// color, leaving the cursor untouched. Callers that must also home the
// cursor through the move-cursor callback (full reset, ESC c) do so
// separately via Terminal.moveCursorTo.
func (s *Screen) clearCells(def defaultColor) {
	b := blank(def.fg(), def.bg())
	for i := range s.cells {
		s.cells[i] = b
	}
}

// clear fills every cell and homes the cursor directly, bypassing any
// move-cursor callback. Used only where no Terminal-level notification
// is expected: initial allocation and alternate-screen activation,
// where cb.refresh() already signals the broad redraw.
func (s *Screen) clear(def defaultColor) {
	s.clearCells(def)
	s.cursorRow, s.cursorCol = 0, 0
}

func (s *Screen) index(row, col int) int { return row*s.cols + col }

func (s *Screen) at(row, col int) *Cell { return &s.cells[s.index(row, col)] }

func (s *Screen) row(r int) []Cell {
	start := r * s.cols
	return s.cells[start : start+s.cols]
}

// clampRow/clampCol keep a coordinate inside the grid; moveCursorTo uses
// these, matching ozterm_move_cursor's saturating clamp.
func (s *Screen) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= s.rows {
		return s.rows - 1
	}
	return row
}

func (s *Screen) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= s.cols {
		return s.cols - 1
	}
	return col
}
