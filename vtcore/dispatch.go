// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ozkl/vtcore/internal/vtlog"
)

// parseParams splits a CSI parameter string ("5;10") into its numeric
// fields. An empty string yields nil (no parameters at all); an empty
// field between semicolons ("5;;7") yields 0 for that field.
func parseParams(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		out[i] = n
	}
	return out
}

// p1Default1 and p2Default1 apply spec.md §4.3's "default to 1 when
// absent or zero" rule to the first two parameters.
func p1Default1(params []int) int {
	if len(params) < 1 || params[0] == 0 {
		return 1
	}
	return params[0]
}

func p2Default1(params []int) int {
	if len(params) < 2 || params[1] == 0 {
		return 1
	}
	return params[1]
}

// modeDefault0 applies the erase-mode exception noted in spec.md §4.3
// ("except where noted"): J/K default to mode 0 when absent.
func modeDefault0(params []int) int {
	if len(params) < 1 {
		return 0
	}
	return params[0]
}

func (t *Terminal) logUnhandled(final byte, params string, private bool) {
	marker := ""
	if private {
		marker = "?"
	}
	vtlog.Log.With("seq", fmt.Sprintf("CSI %s%s%c", marker, params, final)).
		Debug("unhandled CSI sequence")
}

// dispatchCSI implements the CSI table in spec.md §4.3.
func (t *Terminal) dispatchCSI(final byte, paramStr string, private bool) {
	params := parseParams(paramStr)
	s := t.active

	switch final {
	case 'A':
		t.moveCursorTo(s.cursorRow-p1Default1(params), s.cursorCol)
	case 'B':
		t.moveCursorTo(s.cursorRow+p1Default1(params), s.cursorCol)
	case 'C':
		t.moveCursorTo(s.cursorRow, s.cursorCol+p1Default1(params))
	case 'D':
		t.moveCursorTo(s.cursorRow, s.cursorCol-p1Default1(params))
	case 'H', 'f':
		t.moveCursorTo(p1Default1(params)-1, p2Default1(params)-1)
	case 'd':
		t.moveCursorTo(p1Default1(params)-1, s.cursorCol)
	case 'G':
		t.moveCursorTo(s.cursorRow, p1Default1(params)-1)
	case 'J':
		t.eraseInDisplay(modeDefault0(params))
	case 'K':
		t.eraseInLine(modeDefault0(params))
	case '@':
		t.insertChars(p1Default1(params))
	case 'P':
		t.deleteChars(p1Default1(params))
	case 'L':
		t.insertLines(s.cursorRow, p1Default1(params))
	case 'M':
		t.deleteLines(s.cursorRow, p1Default1(params))
	case 'S':
		t.scrollRegionUp(p1Default1(params))
	case 'T':
		t.scrollRegionDown(p1Default1(params))
	case 'r':
		t.setScrollRegion(p1Default1(params), p2Default1(params))
	case 'm':
		applySGR(s, params, t.def)
	case 'n':
		if strings.TrimSpace(paramStr) == "6" {
			reply := fmt.Sprintf("\x1b[%d;%dR", s.cursorRow+1, s.cursorCol+1)
			t.cb.writeToMaster([]byte(reply))
		} else {
			t.logUnhandled(final, paramStr, private)
		}
	case 'c':
		t.dispatchDA(paramStr, private)
	case 'h':
		t.dispatchModeSet(paramStr, private, true)
	case 'l':
		t.dispatchModeSet(paramStr, private, false)
	case 't':
		t.dispatchWindowOp(paramStr)
	default:
		t.logUnhandled(final, paramStr, private)
	}
}

// setScrollRegion implements CSI r. Besides the screen-bounds check
// the reference performs, an inverted range (top > bottom) is also
// treated as out-of-range and reset to the full screen — spec.md §8
// lists scroll_top <= scroll_bottom as an unconditional invariant.
func (t *Terminal) setScrollRegion(top, bottom int) {
	if top >= 1 && bottom >= 1 && top <= t.rows && bottom <= t.rows && top <= bottom {
		t.scrollTop, t.scrollBottom = top-1, bottom-1
		return
	}
	t.scrollTop, t.scrollBottom = 0, t.rows-1
}

func (t *Terminal) dispatchDA(paramStr string, private bool) {
	if private {
		t.cb.writeToMaster([]byte("\x1b[>0;0;0c"))
		return
	}
	if paramStr == "0" {
		t.cb.writeToMaster([]byte("\x1b[?1;0c"))
		return
	}
	t.logUnhandled('c', paramStr, private)
}

func (t *Terminal) dispatchModeSet(paramStr string, private, set bool) {
	final := byte('l')
	if set {
		final = 'h'
	}
	if !private {
		t.logUnhandled(final, paramStr, private)
		return
	}
	switch paramStr {
	case "1049":
		if set {
			t.SwitchToAlt()
		} else {
			t.RestoreMain()
		}
	case "25", "12", "7", "2004":
		// Cursor visibility/blink, autowrap, bracketed paste: accepted
		// silently (spec.md §4.3); the host owns rendering those.
	default:
		t.logUnhandled(final, paramStr, private)
	}
}

func (t *Terminal) dispatchWindowOp(paramStr string) {
	switch {
	case paramStr == "11":
		t.cb.writeToMaster([]byte("\x1b[1t"))
	case strings.HasPrefix(paramStr, "22;"), strings.HasPrefix(paramStr, "23;"):
		// Title/icon-name stack push/pop: ignored.
	default:
		t.logUnhandled('t', paramStr, false)
	}
}
