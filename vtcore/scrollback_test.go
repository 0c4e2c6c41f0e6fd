// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

import "testing"

func cellRow(s string) []Cell {
	cells := make([]Cell, len(s))
	for i := range s {
		cells[i] = Cell{Char: s[i]}
	}
	return cells
}

func TestScrollbackPushAndEntry(t *testing.T) {
	sb := newScrollback(3, 4)
	sb.push(cellRow("AAAA"))
	sb.push(cellRow("BBBB"))

	if sb.count != 2 {
		t.Fatalf("count = %d, want 2", sb.count)
	}
	if sb.entry(0)[0].Char != 'A' {
		t.Errorf("entry(0) = %v, want starting with A", sb.entry(0))
	}
	if sb.entry(1)[0].Char != 'B' {
		t.Errorf("entry(1) = %v, want starting with B", sb.entry(1))
	}
}

func TestScrollbackSaturatesAtCapacity(t *testing.T) {
	sb := newScrollback(2, 4)
	sb.push(cellRow("AAAA"))
	sb.push(cellRow("BBBB"))
	sb.push(cellRow("CCCC"))

	if sb.count != 2 {
		t.Fatalf("count = %d, want 2 (saturated)", sb.count)
	}
	if sb.entry(0)[0].Char != 'B' {
		t.Errorf("oldest entry after overflow = %v, want starting with B", sb.entry(0))
	}
	if sb.entry(1)[0].Char != 'C' {
		t.Errorf("newest entry = %v, want starting with C", sb.entry(1))
	}
}

func TestVisibleRowFollowsScrollOffset(t *testing.T) {
	term := newTestTerminal(t, 3, 4)
	term.Feed([]byte("1111\r\n2222\r\n3333\r\n4444")) // evicts row "1111" to scrollback

	if term.ScrollbackCount() != 1 {
		t.Fatalf("scrollback count = %d, want 1", term.ScrollbackCount())
	}

	term.SetScrollOffset(1)
	if got := rowString(term, 0); got != "1111" {
		t.Errorf("VisibleRow(0) at offset 1 = %q, want 1111", got)
	}

	term.SetScrollOffset(0)
	if got := rowString(term, 0); got != "2222" {
		t.Errorf("VisibleRow(0) at offset 0 = %q, want 2222", got)
	}
}

func TestFeedResetsScrollOffsetOnEveryByte(t *testing.T) {
	term := newTestTerminal(t, 3, 4)
	term.Feed([]byte("1111\r\n2222\r\n3333\r\n4444"))
	term.SetScrollOffset(1)
	if term.ScrollOffset() != 1 {
		t.Fatalf("ScrollOffset() = %d, want 1", term.ScrollOffset())
	}
	term.Feed([]byte("X"))
	if term.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset() after Feed = %d, want 0 (snapped to live)", term.ScrollOffset())
	}
}
