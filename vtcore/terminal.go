// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

import "fmt"

// scrollbackLines is the default scrollback ring capacity (spec.md §6).
const scrollbackLines = 1000

// referenceDefaultColor mirrors original_source/ozterm.c's
// `terminal->color = 0x0A` (low nibble fg, high nibble bg).
const referenceDefaultColor = defaultColor(0x0A)

// Callbacks is the capability bundle a host supplies to a Terminal.
// Every field is optional; a nil field is simply not invoked. This is
// DESIGN NOTES §9's "capability bundle" resolution — callbacks live in
// one struct handed to NewTerminal rather than as mutable fields on
// the instance.
type Callbacks struct {
	// WriteToMaster delivers reply sequences (DSR/DA/DECID/window ops)
	// and key-encoded bytes destined for the pty master.
	WriteToMaster func(p []byte)

	// Refresh hints that a broad redraw is warranted (screen swap,
	// scrollback view change, scroll-region shifts including a newline
	// or wrap at the region bottom, line insert/delete). DECALN and
	// full reset do not fire it.
	Refresh func()

	// SetCell hints that a single cell changed.
	SetCell func(row, col int, cell Cell)

	// MoveCursor hints that the cursor moved.
	MoveCursor func(oldRow, oldCol, newRow, newCol int)

	// UserData is opaque host state, never read or written by vtcore.
	UserData any
}

func (cb Callbacks) writeToMaster(p []byte) {
	if cb.WriteToMaster != nil && len(p) > 0 {
		cb.WriteToMaster(p)
	}
}

func (cb Callbacks) refresh() {
	if cb.Refresh != nil {
		cb.Refresh()
	}
}

func (cb Callbacks) setCell(row, col int, c Cell) {
	if cb.SetCell != nil {
		cb.SetCell(row, col, c)
	}
}

func (cb Callbacks) moveCursor(oldRow, oldCol, newRow, newCol int) {
	if cb.MoveCursor != nil && (oldRow != newRow || oldCol != newCol) {
		cb.MoveCursor(oldRow, oldCol, newRow, newCol)
	}
}

// Terminal is the whole engine: two fixed-size screens, a scrollback
// ring and the parser state that survives across Feed calls.
type Terminal struct {
	rows, cols int

	main, alt *Screen
	active    *Screen
	altActive bool

	savedRow, savedCol int // global, not per-screen — see DESIGN.md

	def defaultColor

	scrollTop, scrollBottom int

	sb           *scrollback
	scrollOffset int

	cb Callbacks

	parser parserState
}

// NewTerminal allocates and clears both screens and the scrollback
// ring. rows and cols are fixed for the life of the Terminal; there is
// no runtime resize (spec.md §3).
func NewTerminal(rows, cols int, cb Callbacks) (*Terminal, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("vtcore: invalid dimensions %dx%d", rows, cols)
	}

	t := &Terminal{
		rows: rows,
		cols: cols,
		def:  referenceDefaultColor,
		cb:   cb,
	}
	t.main = newScreen(rows, cols, t.def)
	t.alt = newScreen(rows, cols, t.def)
	t.active = t.main
	t.scrollTop, t.scrollBottom = 0, rows-1
	t.sb = newScrollback(scrollbackLines, cols)
	t.parser.reset()

	return t, nil
}

// Rows and Cols report the fixed grid dimensions.
func (t *Terminal) Rows() int { return t.rows }
func (t *Terminal) Cols() int { return t.cols }

// Close releases host references held by the Terminal. vtcore itself
// holds no OS resources; Close exists so hosts that pair construction
// and destruction symmetrically (spec.md §5's "create, destroy" entry
// points) have something to call.
func (t *Terminal) Close() {
	t.cb = Callbacks{}
}

// Cursor reports the active screen's cursor position.
func (t *Terminal) Cursor() (row, col int) {
	return t.active.cursorRow, t.active.cursorCol
}

// AltScreenActive reports whether the alternate screen is active.
func (t *Terminal) AltScreenActive() bool { return t.altActive }

// ScrollRegion reports the current DECSTBM region, inclusive.
func (t *Terminal) ScrollRegion() (top, bottom int) { return t.scrollTop, t.scrollBottom }

// ScrollbackCount reports how many scrollback rows are populated.
func (t *Terminal) ScrollbackCount() int { return t.sb.count }

// ScrollOffset reports the current view offset into scrollback.
func (t *Terminal) ScrollOffset() int { return t.scrollOffset }

// SetScrollOffset moves the scrollback view (spec.md §4.5). 0 means
// live. The offset is clamped to [0, ScrollbackCount()].
func (t *Terminal) SetScrollOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > t.sb.count {
		offset = t.sb.count
	}
	t.scrollOffset = offset
	t.cb.refresh()
}

// VisibleRow returns the cols-wide row the host should render at
// screen row y, honoring the current scrollback view (spec.md §4.5).
func (t *Terminal) VisibleRow(y int) []Cell {
	if t.scrollOffset == 0 {
		return t.active.row(y)
	}
	i := t.sb.count - t.scrollOffset + y
	if i < t.sb.count {
		return t.sb.entry(i)
	}
	return t.active.row(y - t.scrollOffset)
}

// snapScrollView resets the scrollback view to live. Per spec.md §4.5
// this happens on every byte the parser consumes, not only on bytes
// that actually mutate the grid — matching
// original_source/ozterm.c's unconditional check at the bottom of
// ozterm_put_character.
func (t *Terminal) snapScrollView() {
	t.scrollOffset = 0
}

// moveCursorTo clamps (row, col) into the active screen and fires the
// MoveCursor callback, mirroring ozterm_move_cursor's saturating clamp.
// Unlike the direct cursor advance after a printable write, this never
// leaves the cursor in the pending-wrap position (col == cols).
func (t *Terminal) moveCursorTo(row, col int) {
	s := t.active
	row, col = s.clampRow(row), s.clampCol(col)
	oldRow, oldCol := s.cursorRow, s.cursorCol
	s.cursorRow, s.cursorCol = row, col
	t.cb.moveCursor(oldRow, oldCol, row, col)
}

// advanceCursorAfterPrint moves the cursor one column right without
// clamping away the pending-wrap position, mirroring
// original_source/ozterm.c's direct cursor_column++ after a printable
// write (as opposed to routing through ozterm_move_cursor).
func (t *Terminal) advanceCursorAfterPrint() {
	s := t.active
	oldRow, oldCol := s.cursorRow, s.cursorCol
	s.cursorCol++
	t.cb.moveCursor(oldRow, oldCol, s.cursorRow, s.cursorCol)
}

// SwitchToAlt activates the alternate screen, clearing it first. No
// content is preserved across the swap (spec.md §4.6).
func (t *Terminal) SwitchToAlt() {
	t.altActive = true
	t.alt.clear(t.def)
	t.active = t.alt
	t.cb.refresh()
}

// RestoreMain deactivates the alternate screen, returning to main.
func (t *Terminal) RestoreMain() {
	t.altActive = false
	t.active = t.main
	t.cb.refresh()
}
