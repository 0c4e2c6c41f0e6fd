// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

import "testing"

func TestEncodeNamedKeyUnmodified(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeyUp, "\x1b[A"},
		{KeyDown, "\x1b[B"},
		{KeyRight, "\x1b[C"},
		{KeyLeft, "\x1b[D"},
		{KeyHome, "\x1b[H"},
		{KeyEnd, "\x1b[F"},
		{KeyPageUp, "\x1b[5~"},
		{KeyPageDown, "\x1b[6~"},
		{KeyInsert, "\x1b[2~"},
		{KeyDelete, "\x1b[3~"},
		{KeyReturn, "\r"},
		{KeyBackspace, "\x7F"},
		{KeyEscape, "\x1B"},
		{KeyTab, "\t"},
		{KeyF1, "\x1bOP"},
		{KeyF2, "\x1bOQ"},
		{KeyF3, "\x1bOR"},
		{KeyF4, "\x1bOS"},
		{KeyF5, "\x1b[15~"},
		{KeyF12, "\x1b[24~"},
	}
	for _, c := range cases {
		got := string(EncodeNamedKey(0, c.key))
		if got != c.want {
			t.Errorf("EncodeNamedKey(0, %v) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestEncodeNamedKeyWithModifiers(t *testing.T) {
	cases := []struct {
		mod  Modifier
		key  Key
		want string
	}{
		{ModLeftShift | ModCtrl, KeyUp, "\x1b[1;6A"},
		{ModCtrl, KeyUp, "\x1b[1;5A"},
		{ModAlt, KeyRight, "\x1b[1;3C"},
		{ModLeftShift, KeyHome, "\x1b[1;2H"},
		{ModCtrl, KeyF1, "\x1b[1;5P"},
		{ModRightShift, KeyPageUp, "\x1b[5;2~"},
	}
	for _, c := range cases {
		got := string(EncodeNamedKey(c.mod, c.key))
		if got != c.want {
			t.Errorf("EncodeNamedKey(%v, %v) = %q, want %q", c.mod, c.key, got, c.want)
		}
	}
}

func TestEncodeLiteralKey(t *testing.T) {
	cases := []struct {
		mod  Modifier
		b    byte
		want byte
	}{
		{0, 'a', 'a'},
		{ModCtrl, 'a', 1},
		{ModCtrl, 'A', 1},
		{ModCtrl, 'z', 26},
		{ModLeftShift, 'a', 'a'}, // non-ctrl modifiers pass through
	}
	for _, c := range cases {
		got := EncodeLiteralKey(c.mod, c.b)
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("EncodeLiteralKey(%v, %q) = %v, want %v", c.mod, c.b, got, c.want)
		}
	}
}

func TestSendLiteralInvokesWriteToMaster(t *testing.T) {
	var got []byte
	term, err := NewTerminal(10, 10, Callbacks{
		WriteToMaster: func(p []byte) { got = append(got, p...) },
	})
	if err != nil {
		t.Fatal(err)
	}
	term.SendLiteral(ModCtrl, 'c')
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("SendLiteral(ctrl,c) wrote %v, want [3]", got)
	}
}
