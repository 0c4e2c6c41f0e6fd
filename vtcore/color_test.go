// Copyright 2022~2026 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vtcore

import "testing"

func TestDefaultColorPacking(t *testing.T) {
	d := newDefaultColor(5, 10)
	if d.fg() != 5 {
		t.Errorf("fg() = %d, want 5", d.fg())
	}
	if d.bg() != 10 {
		t.Errorf("bg() = %d, want 10", d.bg())
	}
}

func TestApplySGRBasicColors(t *testing.T) {
	s := newScreen(1, 1, referenceDefaultColor)
	applySGR(s, []int{31, 44}, referenceDefaultColor)
	if s.attrFg != 1 {
		t.Errorf("fg = %d, want 1 (red)", s.attrFg)
	}
	if s.attrBg != 4 {
		t.Errorf("bg = %d, want 4 (blue)", s.attrBg)
	}
}

func TestApplySGRBrightColors(t *testing.T) {
	s := newScreen(1, 1, referenceDefaultColor)
	applySGR(s, []int{91, 102}, referenceDefaultColor)
	if s.attrFg != 9 {
		t.Errorf("fg = %d, want 9 (bright red)", s.attrFg)
	}
	if s.attrBg != 10 {
		t.Errorf("bg = %d, want 10 (bright green bg)", s.attrBg)
	}
}

func TestApplySGRResetRestoresDefaults(t *testing.T) {
	s := newScreen(1, 1, referenceDefaultColor)
	applySGR(s, []int{31, 1, 8}, referenceDefaultColor)
	applySGR(s, []int{0}, referenceDefaultColor)
	if s.attrFg != referenceDefaultColor.fg() {
		t.Errorf("fg after reset = %d, want default %d", s.attrFg, referenceDefaultColor.fg())
	}
	if s.attrBold {
		t.Error("bold still set after SGR 0")
	}
	if s.attrProtected {
		t.Error("protected still set after SGR 0")
	}
}

func TestApplySGRBareParamsIsNoop(t *testing.T) {
	s := newScreen(1, 1, referenceDefaultColor)
	applySGR(s, []int{31}, referenceDefaultColor)
	applySGR(s, nil, referenceDefaultColor)
	if s.attrFg != 1 {
		t.Errorf("fg after bare CSI m = %d, want unchanged 1 (red)", s.attrFg)
	}
}

func TestApplySGR256ColorPalette(t *testing.T) {
	s := newScreen(1, 1, referenceDefaultColor)
	applySGR(s, []int{38, 5, 200, 48, 5, 17}, referenceDefaultColor)
	if s.attrFg != 200 {
		t.Errorf("fg = %d, want 200", s.attrFg)
	}
	if s.attrBg != 17 {
		t.Errorf("bg = %d, want 17", s.attrBg)
	}
}

func TestApplySGRProtectedBit(t *testing.T) {
	s := newScreen(1, 1, referenceDefaultColor)
	applySGR(s, []int{8}, referenceDefaultColor)
	if !s.attrProtected {
		t.Error("SGR 8 should set protected")
	}
}

func TestApplySGR39And49ResetToDefault(t *testing.T) {
	s := newScreen(1, 1, referenceDefaultColor)
	applySGR(s, []int{35, 46}, referenceDefaultColor)
	applySGR(s, []int{39, 49}, referenceDefaultColor)
	if s.attrFg != referenceDefaultColor.fg() {
		t.Errorf("fg after 39 = %d, want default", s.attrFg)
	}
	if s.attrBg != referenceDefaultColor.bg() {
		t.Errorf("bg after 49 = %d, want default", s.attrBg)
	}
}
