// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

// shift1D moves cells along one axis [lo, hi] by n positions,
// honoring the protected bit per spec.md §4.4: a protected
// destination is never overwritten, and a protected source is skipped
// in favor of the nearest non-protected source further along the
// shift direction, filling with a blank when none remains.
//
// towardLow selects the shift direction: true moves content toward
// lower indices (scroll/delete — up or left), false moves it toward
// higher indices (insert — down or right).
func shift1D(lo, hi, n int, towardLow bool, get func(int) Cell, set func(int, Cell), protected func(int) bool, fill func() Cell) {
	if n <= 0 {
		return
	}
	if span := hi - lo + 1; n > span {
		n = span
	}

	if towardLow {
		for i := lo; i <= hi-n; i++ {
			if protected(i) {
				continue
			}
			src := i + n
			for src <= hi && protected(src) {
				src++
			}
			if src <= hi {
				set(i, get(src))
			} else {
				set(i, fill())
			}
		}
		for i := hi - n + 1; i <= hi; i++ {
			if !protected(i) {
				set(i, fill())
			}
		}
		return
	}

	for i := hi; i >= lo+n; i-- {
		if protected(i) {
			continue
		}
		src := i - n
		for src >= lo && protected(src) {
			src--
		}
		if src >= lo {
			set(i, get(src))
		} else {
			set(i, fill())
		}
	}
	for i := lo; i < lo+n; i++ {
		if !protected(i) {
			set(i, fill())
		}
	}
}

func (t *Terminal) fillBlank() Cell { return blank(t.def.fg(), t.def.bg()) }

// shiftCols shifts the cells of a single row, columns [lo, hi].
func (t *Terminal) shiftCols(row, lo, hi, n int, towardLow bool) {
	s := t.active
	get := func(col int) Cell { return *s.at(row, col) }
	set := func(col int, c Cell) { *s.at(row, col) = c }
	protected := func(col int) bool { return s.at(row, col).Protected }
	shift1D(lo, hi, n, towardLow, get, set, protected, t.fillBlank)
}

// shiftRows shifts whole rows [lo, hi], one column at a time so each
// column's protected cells are handled independently.
func (t *Terminal) shiftRows(lo, hi, n int, towardLow bool) {
	s := t.active
	for x := 0; x < s.cols; x++ {
		get := func(row int) Cell { return *s.at(row, x) }
		set := func(row int, c Cell) { *s.at(row, x) = c }
		protected := func(row int) bool { return s.at(row, x).Protected }
		shift1D(lo, hi, n, towardLow, get, set, protected, t.fillBlank)
	}
}

func clampCount(n, span int) int {
	if n <= 0 {
		n = 1
	}
	if n > span {
		n = span
	}
	return n
}

// scrollRegionUp scrolls [scrollTop, scrollBottom] up by n, no
// scrollback eviction (CSI S).
func (t *Terminal) scrollRegionUp(n int) {
	t.shiftRows(t.scrollTop, t.scrollBottom, n, true)
	t.cb.refresh()
}

// scrollRegionDown scrolls [scrollTop, scrollBottom] down by n (CSI T,
// ESC M reverse index). Never touches scrollback.
func (t *Terminal) scrollRegionDown(n int) {
	t.shiftRows(t.scrollTop, t.scrollBottom, n, false)
	t.cb.refresh()
}

// scrollUpEvict is the newline-triggered variant: each evicted
// scrollTop row is appended to the scrollback ring first, but only
// when the active screen is main (spec.md §4.4).
func (t *Terminal) scrollUpEvict(n int) {
	n = clampCount(n, t.scrollBottom-t.scrollTop+1)
	if t.active == t.main {
		for l := 0; l < n; l++ {
			t.sb.push(t.main.row(t.scrollTop + l))
		}
	}
	t.scrollRegionUp(n)
}

// insertLines inserts n blank lines at row within the scroll region.
func (t *Terminal) insertLines(row, n int) {
	if row < t.scrollTop || row > t.scrollBottom {
		return
	}
	t.shiftRows(row, t.scrollBottom, n, false)
	t.cb.refresh()
}

// deleteLines deletes n lines at row within the scroll region.
func (t *Terminal) deleteLines(row, n int) {
	if row < t.scrollTop || row > t.scrollBottom {
		return
	}
	t.shiftRows(row, t.scrollBottom, n, true)
	t.cb.refresh()
}

// insertChars inserts n blanks at the cursor, shifting the rest of the
// row right.
func (t *Terminal) insertChars(n int) {
	s := t.active
	if s.cursorCol >= s.cols {
		return
	}
	t.shiftCols(s.cursorRow, s.cursorCol, s.cols-1, n, false)
}

// deleteChars deletes n chars at the cursor, shifting the rest of the
// row left.
func (t *Terminal) deleteChars(n int) {
	s := t.active
	if s.cursorCol >= s.cols {
		return
	}
	t.shiftCols(s.cursorRow, s.cursorCol, s.cols-1, n, true)
}

// eraseCell blanks (row, col) unless it is protected.
func (t *Terminal) eraseCell(row, col int) {
	s := t.active
	c := s.at(row, col)
	if c.Protected {
		return
	}
	*c = t.fillBlank()
}

// eraseInDisplay implements CSI J.
func (t *Terminal) eraseInDisplay(mode int) {
	s := t.active
	cy, cx := s.cursorRow, s.cursorCol
	switch mode {
	case 0:
		for x := cx; x < s.cols; x++ {
			t.eraseCell(cy, x)
		}
		for y := cy + 1; y < s.rows; y++ {
			for x := 0; x < s.cols; x++ {
				t.eraseCell(y, x)
			}
		}
	case 1:
		for y := 0; y < cy; y++ {
			for x := 0; x < s.cols; x++ {
				t.eraseCell(y, x)
			}
		}
		for x := 0; x <= cx; x++ {
			t.eraseCell(cy, x)
		}
	default:
		for y := 0; y < s.rows; y++ {
			for x := 0; x < s.cols; x++ {
				t.eraseCell(y, x)
			}
		}
	}
}

// eraseInLine implements CSI K.
func (t *Terminal) eraseInLine(mode int) {
	s := t.active
	y := s.cursorRow
	xStart, xEnd := 0, s.cols-1
	switch mode {
	case 0:
		xStart = s.cursorCol
	case 1:
		xEnd = s.cursorCol
	default:
		// entire line, defaults already cover it
	}
	for x := xStart; x <= xEnd; x++ {
		t.eraseCell(y, x)
	}
}

// decaln implements the DECALN screen alignment test (ESC # 8):
// fill the entire active screen with 'E' in the default color,
// unconditionally — protected cells are not special-cased here,
// matching original_source/ozterm.c's HASH handler.
func (t *Terminal) decaln() {
	s := t.active
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			c := s.at(y, x)
			c.Char = 'E'
			c.Fg, c.Bg = t.def.fg(), t.def.bg()
		}
	}
	t.moveCursorTo(0, 0)
}
