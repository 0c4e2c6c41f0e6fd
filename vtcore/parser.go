// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

import "strings"

// parseState is the parser's current state, per spec.md §4.1's closed
// seven-state machine (including the two charset-designation states).
type parseState int

const (
	stNormal parseState = iota
	stEsc
	stCSI
	stOSC
	stG0
	stG1
	stHash
)

const (
	paramBufCap = 31
	oscBufCap   = 63
)

// parserState is the per-Terminal scratch the parser carries across
// Feed calls: current state, the accumulated CSI parameter string, the
// OSC payload, and the CSI private-marker flag. Resolving DESIGN
// NOTES §9's first two bullets: this lives on Terminal, not in
// package-level or function-local static storage, so multiple
// Terminals never share parse state.
type parserState struct {
	state     parseState
	params    strings.Builder
	osc       strings.Builder
	isPrivate bool
}

func (p *parserState) reset() {
	p.state = stNormal
	p.params.Reset()
	p.osc.Reset()
	p.isPrivate = false
}

func isPrintableOrControl(c byte) bool {
	return (c >= 0x20 && c <= 0x7E) || c == '\n' || c == '\r' || c == '\b' || c == '\t'
}

// Feed processes a buffer of raw pty-master output byte by byte.
// Partial escape sequences persist in the Terminal's parser state
// across calls; there is no timeout (spec.md §4.1, §5). Effects on
// the screen are sequential-consistent with the order bytes appear in
// data, and any host callbacks fire synchronously before Feed returns.
func (t *Terminal) Feed(data []byte) {
	for _, c := range data {
		t.processByte(c)
		t.snapScrollView()
	}
}

func (t *Terminal) processByte(c byte) {
	switch t.parser.state {
	case stNormal:
		if c == 0x1B {
			t.parser.reset()
			t.parser.state = stEsc
		} else if isPrintableOrControl(c) {
			t.putCharacter(c)
		}
	case stEsc:
		t.handleEsc(c)
	case stCSI:
		t.handleCSI(c)
	case stOSC:
		t.handleOSC(c)
	case stG0, stG1:
		// Charset designation is acknowledged but not applied
		// (spec.md §1's line-drawing translation is out of scope).
		t.parser.state = stNormal
	case stHash:
		t.handleHash(c)
	}
}

func (t *Terminal) handleEsc(c byte) {
	switch c {
	case '[':
		t.parser.state = stCSI
		t.parser.params.Reset()
		t.parser.isPrivate = false
	case ']':
		t.parser.state = stOSC
		t.parser.osc.Reset()
	case '(':
		t.parser.state = stG0
	case ')':
		t.parser.state = stG1
	case '#':
		t.parser.state = stHash
	case '7':
		t.savedRow, t.savedCol = t.active.cursorRow, t.active.cursorCol
		t.parser.state = stNormal
	case '8':
		t.moveCursorTo(t.savedRow, t.savedCol)
		t.parser.state = stNormal
	case 'c':
		t.active.clearCells(t.def)
		t.moveCursorTo(0, 0)
		t.parser.state = stNormal
	case 'D':
		// IND: move down, no scroll at region bottom — preserved as
		// the reference implements it (Open Question, spec.md §9).
		t.moveCursorTo(t.active.cursorRow+1, t.active.cursorCol)
		t.parser.state = stNormal
	case 'E':
		t.moveCursorTo(t.active.cursorRow+1, 0)
		t.parser.state = stNormal
	case 'M':
		t.scrollRegionDown(1)
		t.parser.state = stNormal
	case 'Z':
		t.cb.writeToMaster([]byte("\x1b[?6c"))
		t.parser.state = stNormal
	case '\\':
		t.parser.state = stNormal
	default:
		t.parser.state = stNormal
	}
}

func (t *Terminal) handleOSC(c byte) {
	switch {
	case c == 0x07:
		t.parser.state = stNormal
	case c == 0x1B:
		// Possible ST (ESC \) terminator; let the ESC state absorb it.
		t.parser.state = stEsc
	default:
		if t.parser.osc.Len() < oscBufCap {
			t.parser.osc.WriteByte(c)
		}
	}
}

func (t *Terminal) handleCSI(c byte) {
	if c == '?' || c == '>' {
		t.parser.isPrivate = true
		return
	}
	if (c >= '0' && c <= '9') || c == ';' {
		if t.parser.params.Len() < paramBufCap {
			t.parser.params.WriteByte(c)
		}
		return
	}
	if c >= 0x40 && c <= 0x7E {
		t.dispatchCSI(c, t.parser.params.String(), t.parser.isPrivate)
		t.parser.state = stNormal
		return
	}
	// Anything else — space, '!', ':', other intermediates, or a stray
	// control byte — is not a valid final byte: abort to normal,
	// matching original_source/ozterm.c's final-byte check
	// (`c < '@' || c > '~'`). The byte itself is discarded; whatever
	// follows is reprocessed from stNormal.
	t.parser.state = stNormal
}

func (t *Terminal) handleHash(c byte) {
	if c == '8' {
		t.decaln()
	}
	t.parser.state = stNormal
}
