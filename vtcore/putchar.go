// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

const tabWidth = 8

// putCharacter implements spec.md §4.2 on the active screen.
func (t *Terminal) putCharacter(c byte) {
	s := t.active
	switch c {
	case '\n':
		if s.cursorRow == t.scrollBottom {
			t.scrollUpEvict(1)
		} else {
			t.moveCursorTo(s.cursorRow+1, s.cursorCol)
		}
	case '\r':
		t.moveCursorTo(s.cursorRow, 0)
	case '\b':
		if s.cursorCol > 0 {
			t.moveCursorTo(s.cursorRow, s.cursorCol-1)
		}
	case '\t':
		spaces := tabWidth - (s.cursorCol % tabWidth)
		for i := 0; i < spaces; i++ {
			t.putPrintable(' ')
		}
	default:
		t.putPrintable(c)
	}
}

// putPrintable writes one printable (or space) byte at the cursor,
// wrapping first if the cursor is in the pending-wrap position.
func (t *Terminal) putPrintable(c byte) {
	s := t.active

	if s.cursorCol == s.cols {
		s.cursorCol = 0
		if s.cursorRow == t.scrollBottom {
			t.scrollUpEvict(1)
		} else {
			s.cursorRow++
		}
	}

	cell := s.at(s.cursorRow, s.cursorCol)
	cell.Char = c
	cell.Fg, cell.Bg = s.attrFg, s.attrBg
	cell.Protected = s.attrProtected
	cell.Bold = s.attrBold
	t.cb.setCell(s.cursorRow, s.cursorCol, *cell)

	t.advanceCursorAfterPrint()
}
