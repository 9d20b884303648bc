// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"strings"

	"github.com/wayland-contrib/adwaita/theme"
)

// ButtonKind identifies one of the three titlebar buttons.
type ButtonKind uint8

const (
	ButtonClose ButtonKind = iota
	ButtonMaximize
	ButtonMinimize
)

// Button geometry constants, in logical points.
const (
	buttonSize    = 24.0
	buttonSpacing = 13.0
	buttonMargin  = 5.0
)

// Button is the geometry of one titlebar button within the header
// surface, in logical points.
type Button struct {
	Kind ButtonKind
	// X is the left edge of the button's bounding square.
	X    float64
	Size float64
}

// Y returns the top edge of the bounding square: buttons sit vertically
// centered in the header.
func (b Button) Y() float64 {
	return (theme.HeaderSize - b.Size) / 2
}

// Radius returns the button circle radius.
func (b Button) Radius() float64 {
	return b.Size / 2
}

// CenterX returns the x coordinate of the circle center.
func (b Button) CenterX() float64 {
	return b.X + b.Radius()
}

// CenterY returns the y coordinate of the circle center.
func (b Button) CenterY() float64 {
	return b.Y() + b.Radius()
}

func (b Button) contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Size && y >= b.Y() && y < b.Y()+b.Size
}

// ButtonLayout places buttons on the two sides of the header, outermost
// last on the right and outermost first on the left.
type ButtonLayout struct {
	Left  []ButtonKind
	Right []ButtonKind
}

// DefaultButtonLayout is the Adwaita arrangement: all controls on the
// right, close outermost.
func DefaultButtonLayout() ButtonLayout {
	return ButtonLayout{Right: []ButtonKind{ButtonMinimize, ButtonMaximize, ButtonClose}}
}

// ParseButtonLayout parses a GNOME button-layout setting such as
// `appicon:minimize,maximize,close`. Entries other than the three window
// buttons are ignored. The close button is forced onto the right side
// when the setting omits it.
func ParseButtonLayout(s string) ButtonLayout {
	var l ButtonLayout
	left, right, found := strings.Cut(s, ":")
	if !found {
		right = left
		left = ""
	}
	l.Left = parseButtonNames(left)
	l.Right = parseButtonNames(right)
	if !containsKind(l.Left, ButtonClose) && !containsKind(l.Right, ButtonClose) {
		l.Right = append(l.Right, ButtonClose)
	}
	return l
}

func parseButtonNames(s string) []ButtonKind {
	var kinds []ButtonKind
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "close":
			kinds = append(kinds, ButtonClose)
		case "maximize":
			kinds = append(kinds, ButtonMaximize)
		case "minimize":
			kinds = append(kinds, ButtonMinimize)
		}
	}
	return kinds
}

func containsKind(kinds []ButtonKind, k ButtonKind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Buttons is the arranged set of visible titlebar buttons, grouped by
// header side. All coordinates are in the header surface's logical
// space.
type Buttons struct {
	left  []Button
	right []Button
}

// arrange recomputes the button positions for a header surface of the
// given logical width. marginH is the horizontal inset of the window
// area within the header surface (the visible border allowance).
// Buttons whose capability is missing are left out entirely.
func (bs *Buttons) arrange(width, marginH float64, layout ButtonLayout, caps Capabilities) {
	bs.left = bs.left[:0]
	bs.right = bs.right[:0]

	x := marginH + buttonMargin
	for _, kind := range layout.Left {
		if !buttonAvailable(kind, caps) {
			continue
		}
		bs.left = append(bs.left, Button{Kind: kind, X: x, Size: buttonSize})
		x += buttonSize + buttonSpacing
	}

	x = width - marginH - buttonMargin
	for i := len(layout.Right) - 1; i >= 0; i-- {
		kind := layout.Right[i]
		if !buttonAvailable(kind, caps) {
			continue
		}
		x -= buttonSize
		bs.right = append(bs.right, Button{Kind: kind, X: x, Size: buttonSize})
		x -= buttonSpacing
	}
}

// buttonAvailable reports whether the button may appear at all. Close is
// unconditional; the others follow the host capabilities.
func buttonAvailable(kind ButtonKind, caps Capabilities) bool {
	switch kind {
	case ButtonClose:
		return true
	case ButtonMaximize:
		return caps&CapMaximize != 0
	case ButtonMinimize:
		return caps&CapMinimize != 0
	}
	return false
}

// find returns the button under (x, y), if any.
func (bs *Buttons) find(x, y float64) (ButtonKind, bool) {
	for _, b := range bs.left {
		if b.contains(x, y) {
			return b.Kind, true
		}
	}
	for _, b := range bs.right {
		if b.contains(x, y) {
			return b.Kind, true
		}
	}
	return 0, false
}

// all visits every visible button.
func (bs *Buttons) all(fn func(Button)) {
	for _, b := range bs.left {
		fn(b)
	}
	for _, b := range bs.right {
		fn(b)
	}
}

// leftEnd returns the right edge of the left-side group, or the window
// margin when the group is empty.
func (bs *Buttons) leftEnd(marginH float64) float64 {
	if len(bs.left) == 0 {
		return marginH
	}
	last := bs.left[len(bs.left)-1]
	return last.X + last.Size
}

// rightStart returns the left edge of the right-side group, or width
// minus the window margin when the group is empty.
func (bs *Buttons) rightStart(width, marginH float64) float64 {
	start := width - marginH
	for _, b := range bs.right {
		if b.X < start {
			start = b.X
		}
	}
	return start
}
