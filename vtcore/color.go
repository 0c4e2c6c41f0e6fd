// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

// defaultColor packs the terminal's baseline fg/bg into a single byte
// the way the reference implementation's terminal->color field does:
// low nibble is foreground (0-15), high nibble is background (0-15).
// Baseline colors never exceed the 16-color ANSI range; extended
// 256-color values only ever live on individual Cells via SGR 38/48.
type defaultColor byte

func newDefaultColor(fg, bg byte) defaultColor {
	return defaultColor((fg & 0x0F) | (bg&0x0F)<<4)
}

func (d defaultColor) fg() byte { return byte(d) & 0x0F }
func (d defaultColor) bg() byte { return byte(d>>4) & 0x0F }

// applySGR updates the screen's sticky write-time rendition
// (foreground, background, protected, bold) from a CSI ... m parameter
// list, per SPEC_FULL.md §4.8. def is the terminal's baseline color,
// used to resolve 0/39/49. A bare "CSI m" (no parameters at all) is a
// no-op, matching original_source/ozterm.c's `m` handler, which only
// walks param_buf when it is non-empty — it never synthesizes an
// implicit reset.
func applySGR(s *Screen, params []int, def defaultColor) {
	for i := 0; i < len(params); i++ {
		v := params[i]
		switch {
		case v == 0:
			s.attrFg = def.fg()
			s.attrBg = def.bg()
			s.attrProtected = false
			s.attrBold = false
		case v == 1:
			s.attrBold = true
		case v == 8:
			s.attrProtected = true
		case v == 22:
			s.attrBold = false
		case v == 39:
			s.attrFg = def.fg()
		case v == 49:
			s.attrBg = def.bg()
		case v >= 30 && v <= 37:
			s.attrFg = byte(v - 30)
		case v >= 40 && v <= 47:
			s.attrBg = byte(v - 40)
		case v >= 90 && v <= 97:
			s.attrFg = byte(v-90) + 8
		case v >= 100 && v <= 107:
			s.attrBg = byte(v-100) + 8
		case v == 38 || v == 48:
			// Extended color: "38;5;N" / "48;5;N" (256-color palette
			// index) or the out-of-scope truecolor "38;2;r;g;b" form.
			// Either way we must consume the params that follow so the
			// rest of the SGR list stays aligned.
			if i+1 < len(params) && params[i+1] == 5 && i+2 < len(params) {
				idx := byte(params[i+2])
				if v == 38 {
					s.attrFg = idx
				} else {
					s.attrBg = idx
				}
				i += 2
			} else if i+1 < len(params) && params[i+1] == 2 {
				// "38;2;r;g;b" — truecolor is out of scope (Non-goals,
				// spec.md §1); skip the five params without parsing them.
				i += 4
			}
		default:
			// Accepted and ignored, per spec.md §4.3.
		}
	}
}
