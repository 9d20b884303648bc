// SPDX-License-Identifier: Unlicense OR MIT

// Package theme provides the Adwaita decoration palette and the
// logical-point metrics shared by the layout and rendering code.
package theme

import "image/color"

// Logical-point metrics of the decoration. Pixel sizes are obtained by
// multiplying with the per-surface integer scale factor.
const (
	// BorderSize is the thickness of the invisible resize border around
	// the window. It also bounds how much of the drop shadow is shown.
	BorderSize = 10
	// VisibleBorderSize is the thickness of the drawn border line.
	VisibleBorderSize = 1
	// HeaderSize is the height of the titlebar.
	HeaderSize = 35
	// CornerRadius is the headerbar top corner radius.
	CornerRadius = 10
	// ResizeHandleSize is the thickness of the pointer input strip that
	// extends outward beyond the visible border.
	ResizeHandleSize = 10
	// ShadowSize is the extent of the drop shadow gradient.
	ShadowSize = 43
)

// BorderSizeFor returns BorderSize, or 0 when the border is hidden.
func BorderSizeFor(hideBorder bool) int {
	if hideBorder {
		return 0
	}
	return BorderSize
}

// VisibleBorderSizeFor returns VisibleBorderSize, or 0 when the border is
// hidden.
func VisibleBorderSizeFor(hideBorder bool) int {
	if hideBorder {
		return 0
	}
	return VisibleBorderSize
}

// Paint is a solid color together with the anti-alias mode shapes filled
// with it use.
type Paint struct {
	Color     color.NRGBA
	AntiAlias bool
}

// ColorMap is the set of colors used to draw one activation state of the
// decoration.
type ColorMap struct {
	Headerbar   color.NRGBA
	ButtonIdle  color.NRGBA
	ButtonHover color.NRGBA
	ButtonIcon  color.NRGBA
	Border      color.NRGBA
	Font        color.NRGBA
}

// HeaderbarPaint returns the paint for the headerbar background.
func (m *ColorMap) HeaderbarPaint() Paint {
	return Paint{Color: m.Headerbar, AntiAlias: true}
}

// ButtonIdlePaint returns the paint for button circles at rest.
func (m *ColorMap) ButtonIdlePaint() Paint {
	return Paint{Color: m.ButtonIdle, AntiAlias: true}
}

// ButtonHoverPaint returns the paint for hovered button circles.
func (m *ColorMap) ButtonHoverPaint() Paint {
	return Paint{Color: m.ButtonHover, AntiAlias: true}
}

// ButtonIconPaint returns the paint for button icons. Icons draw sharp;
// the diagonal close cross opts into anti-aliasing itself.
func (m *ColorMap) ButtonIconPaint() Paint {
	return Paint{Color: m.ButtonIcon}
}

// BorderPaint returns the paint for the visible border.
func (m *ColorMap) BorderPaint() Paint {
	return Paint{Color: m.Border}
}

// FontPaint returns the paint for the title text.
func (m *ColorMap) FontPaint() Paint {
	return Paint{Color: m.Font, AntiAlias: true}
}

// ColorTheme is an immutable pair of color maps, one per activation state.
type ColorTheme struct {
	Active   ColorMap
	Inactive ColorMap
}

// ForState returns the color map for the given activation state.
func (t *ColorTheme) ForState(activated bool) *ColorMap {
	if activated {
		return &t.Active
	}
	return &t.Inactive
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Light returns the Adwaita light palette.
func Light() ColorTheme {
	return ColorTheme{
		Active: ColorMap{
			Headerbar:   rgb(235, 235, 235),
			ButtonIdle:  rgb(216, 216, 216),
			ButtonHover: rgb(207, 207, 207),
			ButtonIcon:  rgb(42, 42, 42),
			Border:      rgb(220, 220, 220),
			Font:        rgb(47, 47, 47),
		},
		Inactive: ColorMap{
			Headerbar:   rgb(250, 250, 250),
			ButtonIdle:  rgb(240, 240, 240),
			ButtonHover: rgb(216, 216, 216),
			ButtonIcon:  rgb(148, 148, 148),
			Border:      rgb(220, 220, 220),
			Font:        rgb(150, 150, 150),
		},
	}
}

// Dark returns the Adwaita dark palette.
func Dark() ColorTheme {
	return ColorTheme{
		Active: ColorMap{
			Headerbar:   rgb(48, 48, 48),
			ButtonIdle:  rgb(69, 69, 69),
			ButtonHover: rgb(79, 79, 79),
			ButtonIcon:  rgb(251, 251, 251),
			Border:      rgb(58, 58, 58),
			Font:        rgb(255, 255, 255),
		},
		Inactive: ColorMap{
			Headerbar:   rgb(36, 36, 36),
			ButtonIdle:  rgb(50, 50, 50),
			ButtonHover: rgb(69, 69, 69),
			ButtonIcon:  rgb(144, 144, 144),
			Border:      rgb(58, 58, 58),
			Font:        rgb(144, 144, 144),
		},
	}
}

// Auto probes the desktop environment and returns Dark when the user
// prefers a dark color scheme, Light otherwise.
func Auto() ColorTheme {
	if PreferDark() {
		return Dark()
	}
	return Light()
}
