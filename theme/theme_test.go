// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image/color"
	"testing"
)

func TestLightPalette(t *testing.T) {
	l := Light()
	if got, want := l.Active.Headerbar, rgb(235, 235, 235); got != want {
		t.Errorf("active headerbar = %v, want %v", got, want)
	}
	if got, want := l.Inactive.Headerbar, rgb(250, 250, 250); got != want {
		t.Errorf("inactive headerbar = %v, want %v", got, want)
	}
	if got, want := l.Active.Font, rgb(47, 47, 47); got != want {
		t.Errorf("active font = %v, want %v", got, want)
	}
	// Both states share the border color.
	if l.Active.Border != l.Inactive.Border {
		t.Errorf("border differs between states: %v != %v", l.Active.Border, l.Inactive.Border)
	}
}

func TestForState(t *testing.T) {
	theme := Dark()
	if got := theme.ForState(true); *got != theme.Active {
		t.Errorf("ForState(true) = %v", got)
	}
	if got := theme.ForState(false); *got != theme.Inactive {
		t.Errorf("ForState(false) = %v", got)
	}
}

func TestPaintAntiAlias(t *testing.T) {
	m := Light().Active
	for _, tc := range []struct {
		name string
		p    Paint
		aa   bool
	}{
		{"headerbar", m.HeaderbarPaint(), true},
		{"button idle", m.ButtonIdlePaint(), true},
		{"button hover", m.ButtonHoverPaint(), true},
		{"font", m.FontPaint(), true},
		{"button icon", m.ButtonIconPaint(), false},
		{"border", m.BorderPaint(), false},
	} {
		if tc.p.AntiAlias != tc.aa {
			t.Errorf("%s anti-alias = %v, want %v", tc.name, tc.p.AntiAlias, tc.aa)
		}
	}
	if m.HeaderbarPaint().Color != m.Headerbar {
		t.Error("paint color does not match the map")
	}
}

func TestBorderSizes(t *testing.T) {
	if got := BorderSizeFor(false); got != BorderSize {
		t.Errorf("BorderSizeFor(false) = %d", got)
	}
	if got := BorderSizeFor(true); got != 0 {
		t.Errorf("BorderSizeFor(true) = %d", got)
	}
	if got := VisibleBorderSizeFor(false); got != VisibleBorderSize {
		t.Errorf("VisibleBorderSizeFor(false) = %d", got)
	}
	if got := VisibleBorderSizeFor(true); got != 0 {
		t.Errorf("VisibleBorderSizeFor(true) = %d", got)
	}
}

func TestParseHexColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.NRGBA
	}{
		{"#ebebeb", color.NRGBA{R: 0xeb, G: 0xeb, B: 0xeb, A: 0xff}},
		{"#2A2a2a", color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}},
		{"#10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
	} {
		got, err := parseHexColor(tc.in)
		if err != nil {
			t.Errorf("parseHexColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "ebebeb", "#ebeb", "#ebebeg", "#ebebebebeb"} {
		if _, err := parseHexColor(in); err == nil {
			t.Errorf("parseHexColor(%q) succeeded", in)
		}
	}
}

func TestParseOverrides(t *testing.T) {
	base := Light()
	data := []byte("active:\n  headerbar: \"#102030\"\n  font: \"#ffffff\"\ninactive:\n  border: \"#04050607\"\n")

	got, err := ParseOverrides(data, base)
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	if want := (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}); got.Active.Headerbar != want {
		t.Errorf("active headerbar = %v, want %v", got.Active.Headerbar, want)
	}
	if want := (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}); got.Active.Font != want {
		t.Errorf("active font = %v, want %v", got.Active.Font, want)
	}
	if want := (color.NRGBA{R: 0x04, G: 0x05, B: 0x06, A: 0x07}); got.Inactive.Border != want {
		t.Errorf("inactive border = %v, want %v", got.Inactive.Border, want)
	}
	// Keys absent from the file keep the base palette.
	if got.Active.ButtonIdle != base.Active.ButtonIdle {
		t.Errorf("button idle changed to %v", got.Active.ButtonIdle)
	}
	if got.Inactive.Headerbar != base.Inactive.Headerbar {
		t.Errorf("inactive headerbar changed to %v", got.Inactive.Headerbar)
	}
}

func TestParseOverridesErrors(t *testing.T) {
	base := Light()
	if _, err := ParseOverrides([]byte("active: [unclosed"), base); err == nil {
		t.Error("malformed yaml accepted")
	}
	got, err := ParseOverrides([]byte("active:\n  headerbar: \"red\"\n"), base)
	if err == nil {
		t.Error("invalid color accepted")
	}
	if got != base {
		t.Error("failed parse did not return the base theme")
	}
}
