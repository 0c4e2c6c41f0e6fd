// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

import "fmt"

// Modifier is a bitmask of held modifier keys, matching spec.md §4.7's
// "modifier mask (bits for LSHIFT, RSHIFT, ALT, CTRL)".
type Modifier uint8

const (
	ModLeftShift Modifier = 1 << iota
	ModRightShift
	ModAlt
	ModCtrl
)

func (m Modifier) modValue() int {
	v := 1
	if m&(ModLeftShift|ModRightShift) != 0 {
		v++
	}
	if m&ModAlt != 0 {
		v += 2
	}
	if m&ModCtrl != 0 {
		v += 4
	}
	return v
}

// Key is a named key from the closed enumeration spec.md §4.7
// defines. Literal bytes (anything not in this enumeration) go
// through EncodeLiteralKey / Terminal.SendLiteral instead.
type Key int

const (
	KeyF1 Key = iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyReturn
	KeyBackspace
	KeyEscape
	KeyTab
)

// csiKey writes "ESC [ <final>" when code==1 and mod is unmodified,
// "ESC [ <code> <final>" for any other code when unmodified, and
// otherwise "ESC [ <code> ; <mod_value> <final>" — spec.md §4.7.
func csiKey(code int, final byte, modVal int) []byte {
	if modVal <= 1 {
		if code == 1 {
			return []byte(fmt.Sprintf("\x1b[%c", final))
		}
		return []byte(fmt.Sprintf("\x1b[%d%c", code, final))
	}
	return []byte(fmt.Sprintf("\x1b[%d;%d%c", code, modVal, final))
}

// EncodeNamedKey renders the outbound byte sequence for a named key
// under the given modifier mask.
func EncodeNamedKey(mod Modifier, key Key) []byte {
	modVal := mod.modValue()

	switch key {
	case KeyReturn:
		return []byte{'\r'}
	case KeyBackspace:
		return []byte{0x7F}
	case KeyEscape:
		return []byte{0x1B}
	case KeyTab:
		return []byte{'\t'}

	case KeyHome:
		return csiKey(1, 'H', modVal)
	case KeyEnd:
		return csiKey(1, 'F', modVal)
	case KeyUp:
		return csiKey(1, 'A', modVal)
	case KeyDown:
		return csiKey(1, 'B', modVal)
	case KeyLeft:
		return csiKey(1, 'D', modVal)
	case KeyRight:
		return csiKey(1, 'C', modVal)
	case KeyPageUp:
		return csiKey(5, '~', modVal)
	case KeyPageDown:
		return csiKey(6, '~', modVal)
	case KeyInsert:
		return csiKey(2, '~', modVal)
	case KeyDelete:
		return csiKey(3, '~', modVal)

	case KeyF1, KeyF2, KeyF3, KeyF4:
		base := byte('P' + (key - KeyF1))
		if modVal == 1 {
			return []byte{0x1B, 'O', base}
		}
		return csiKey(1, base, modVal)

	case KeyF5:
		return csiKey(15, '~', modVal)
	case KeyF6:
		return csiKey(17, '~', modVal)
	case KeyF7:
		return csiKey(18, '~', modVal)
	case KeyF8:
		return csiKey(19, '~', modVal)
	case KeyF9:
		return csiKey(20, '~', modVal)
	case KeyF10:
		return csiKey(21, '~', modVal)
	case KeyF11:
		return csiKey(23, '~', modVal)
	case KeyF12:
		return csiKey(24, '~', modVal)
	}

	return nil
}

func isGraphic(b byte) bool { return b > 0x20 && b < 0x7F }

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

// EncodeLiteralKey renders the outbound bytes for a literal byte (any
// key not in the named enumeration), applying the Ctrl-only transform
// spec.md §4.7 describes. Other modifier combinations pass the byte
// through unchanged, matching original_source/ozterm.c's default case.
func EncodeLiteralKey(mod Modifier, b byte) []byte {
	if mod == ModCtrl && isGraphic(b) {
		return []byte{toUpperASCII(b) - 0x40}
	}
	return []byte{b}
}

// SendKey encodes a named key and delivers it via the write-to-master
// callback.
func (t *Terminal) SendKey(mod Modifier, key Key) {
	t.cb.writeToMaster(EncodeNamedKey(mod, key))
}

// SendLiteral encodes a literal byte and delivers it via the
// write-to-master callback.
func (t *Terminal) SendLiteral(mod Modifier, b byte) {
	t.cb.writeToMaster(EncodeLiteralKey(mod, b))
}
