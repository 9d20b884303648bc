// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"time"

	"github.com/wayland-contrib/adwaita/theme"
	"github.com/wayland-contrib/adwaita/wl"
)

// WindowState is the set of xdg-toplevel states mirrored into the frame.
type WindowState uint16

const (
	StateActivated WindowState = 1 << iota
	StateMaximized
	StateFullscreen
	StateTiled
	StateResizing
	StateSuspended
)

// stateRedrawMask are the state bits whose change requires a redraw.
const stateRedrawMask = StateActivated | StateMaximized | StateFullscreen | StateTiled

// Capabilities is the set of window-management actions the host reports
// as available. Buttons without their capability are neither drawn nor
// dispatched.
type Capabilities uint8

const (
	CapMaximize Capabilities = 1 << iota
	CapMinimize
	CapFullscreen
	CapWindowMenu
)

// Location identifies where on the decoration a pointer is resting.
type Location uint8

const (
	LocationNone Location = iota
	LocationHead
	LocationTop
	LocationTopRight
	LocationRight
	LocationBottomRight
	LocationBottom
	LocationBottomLeft
	LocationLeft
	LocationTopLeft
	LocationButtonClose
	LocationButtonMaximize
	LocationButtonMinimize
)

// button returns the button kind for button locations.
func (l Location) button() (ButtonKind, bool) {
	switch l {
	case LocationButtonClose:
		return ButtonClose, true
	case LocationButtonMaximize:
		return ButtonMaximize, true
	case LocationButtonMinimize:
		return ButtonMinimize, true
	}
	return 0, false
}

func (l Location) isButton() bool {
	_, ok := l.button()
	return ok
}

func buttonLocation(k ButtonKind) Location {
	switch k {
	case ButtonClose:
		return LocationButtonClose
	case ButtonMaximize:
		return LocationButtonMaximize
	case ButtonMinimize:
		return LocationButtonMinimize
	}
	panic("adwaita: invalid ButtonKind")
}

// resizeEdge returns the xdg resize edge for border locations.
func (l Location) resizeEdge() (ResizeEdge, bool) {
	switch l {
	case LocationTop:
		return EdgeTop, true
	case LocationTopRight:
		return EdgeTopRight, true
	case LocationRight:
		return EdgeRight, true
	case LocationBottomRight:
		return EdgeBottomRight, true
	case LocationBottom:
		return EdgeBottom, true
	case LocationBottomLeft:
		return EdgeBottomLeft, true
	case LocationLeft:
		return EdgeLeft, true
	case LocationTopLeft:
		return EdgeTopLeft, true
	}
	return 0, false
}

// CursorIcon is an X cursor theme name.
type CursorIcon string

const (
	CursorDefault           CursorIcon = "left_ptr"
	CursorTopSide           CursorIcon = "top_side"
	CursorTopRightCorner    CursorIcon = "top_right_corner"
	CursorRightSide         CursorIcon = "right_side"
	CursorBottomRightCorner CursorIcon = "bottom_right_corner"
	CursorBottomSide        CursorIcon = "bottom_side"
	CursorBottomLeftCorner  CursorIcon = "bottom_left_corner"
	CursorLeftSide          CursorIcon = "left_side"
	CursorTopLeftCorner     CursorIcon = "top_left_corner"
)

// cursor returns the cursor shape to show for the location. Resize
// cursors only appear on resizable windows.
func (l Location) cursor(resizable bool) CursorIcon {
	if !resizable {
		return CursorDefault
	}
	switch l {
	case LocationTop:
		return CursorTopSide
	case LocationTopRight:
		return CursorTopRightCorner
	case LocationRight:
		return CursorRightSide
	case LocationBottomRight:
		return CursorBottomRightCorner
	case LocationBottom:
		return CursorBottomSide
	case LocationBottomLeft:
		return CursorBottomLeftCorner
	case LocationLeft:
		return CursorLeftSide
	case LocationTopLeft:
		return CursorTopLeftCorner
	}
	return CursorDefault
}

// ResizeEdge names the window edge a resize drag starts from, matching
// xdg_toplevel.resize_edge.
type ResizeEdge uint8

const (
	EdgeTop ResizeEdge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	EdgeTopLeft
	EdgeTopRight
	EdgeBottomLeft
	EdgeBottomRight
)

// FrameClick distinguishes the pointer buttons the frame reacts to.
type FrameClick uint8

const (
	// ClickNormal is the left mouse button (BTN_LEFT, 0x110).
	ClickNormal FrameClick = iota
	// ClickAlternate is the right mouse button (BTN_RIGHT, 0x111).
	ClickAlternate
)

// FrameActionKind enumerates the host actions a click can request.
type FrameActionKind uint8

const (
	ActionClose FrameActionKind = iota
	ActionMinimize
	ActionMaximize
	ActionUnmaximize
	ActionMove
	ActionResize
	ActionShowMenu
)

// FrameAction is a window-management request the host must forward to the
// compositor.
type FrameAction struct {
	Kind FrameActionKind
	// Edge is set for ActionResize.
	Edge ResizeEdge
	// MenuX, MenuY position ActionShowMenu, relative to the content
	// surface in logical points.
	MenuX, MenuY int
}

// doubleClickWindow is how long two head clicks count as a double click.
const doubleClickWindow = 400 * time.Millisecond

// mouseState tracks the pointer relative to the decoration.
type mouseState struct {
	location Location
	// pressOrigin is where the left button went down; a release commits
	// only when it happens on the same location.
	pressOrigin   Location
	pressed       bool
	x, y          float64
	lastHeadClick time.Time
	haveHeadClick bool
}

// preciseLocation refines a coarse per-part location using the pointer
// position in the part's local coordinates.
func (f *Frame) preciseLocation(coarse Location, x, y float64) Location {
	headerWidth := float64(f.width)
	border := float64(theme.BorderSize)
	switch coarse {
	case LocationHead:
		if kind, ok := f.buttons.find(x, y); ok {
			return buttonLocation(kind)
		}
		return LocationHead
	case LocationTop, LocationTopLeft, LocationTopRight:
		switch {
		case x <= border:
			return LocationTopLeft
		case x >= headerWidth+border:
			return LocationTopRight
		default:
			return LocationTop
		}
	case LocationBottom, LocationBottomLeft, LocationBottomRight:
		switch {
		case x <= border:
			return LocationBottomLeft
		case x >= headerWidth+border:
			return LocationBottomRight
		default:
			return LocationBottom
		}
	case LocationLeft, LocationRight:
		sideHeight := float64(f.height)
		if !f.hideTitlebar {
			sideHeight += theme.HeaderSize
		}
		switch {
		case y <= border:
			if coarse == LocationLeft {
				return LocationTopLeft
			}
			return LocationTopRight
		case y >= sideHeight-border:
			if coarse == LocationLeft {
				return LocationBottomLeft
			}
			return LocationBottomRight
		default:
			return coarse
		}
	default:
		return coarse
	}
}

// ClickPointMoved updates the pointer location from a motion or enter
// event on surface, in the surface's logical coordinates. It returns the
// cursor to show, or ok=false when the surface is not a decoration part.
func (f *Frame) ClickPointMoved(surface wl.Surface, x, y float64) (CursorIcon, bool) {
	if f.parts == nil {
		return "", false
	}
	coarse := f.parts.findSurface(surface)
	if coarse == LocationNone {
		return "", false
	}
	loc := f.preciseLocation(coarse, x, y)
	f.setPointerLocation(loc)
	f.mouse.x, f.mouse.y = x, y
	return loc.cursor(f.resizable), true
}

// ClickPointLeft handles the pointer leaving all decoration surfaces.
func (f *Frame) ClickPointLeft() {
	f.setPointerLocation(LocationNone)
}

// setPointerLocation stores the location and dirties the frame when a
// button highlight changed.
func (f *Frame) setPointerLocation(loc Location) {
	old := f.mouse.location
	if old != loc && (old.isButton() || loc.isButton()) {
		f.dirty = true
	}
	f.mouse.location = loc
}

// OnClick translates a button press or release at the current pointer
// location into a host action.
func (f *Frame) OnClick(click FrameClick, pressed bool) (FrameAction, bool) {
	switch click {
	case ClickNormal:
		return f.onNormalClick(pressed)
	case ClickAlternate:
		return f.onAlternateClick(pressed)
	}
	return FrameAction{}, false
}

func (f *Frame) onNormalClick(pressed bool) (FrameAction, bool) {
	if pressed {
		f.mouse.pressOrigin = f.mouse.location
		f.mouse.pressed = true
		return FrameAction{}, false
	}
	if !f.mouse.pressed {
		return FrameAction{}, false
	}
	origin := f.mouse.pressOrigin
	f.mouse.pressed = false
	f.mouse.pressOrigin = LocationNone
	if origin != f.mouse.location {
		return FrameAction{}, false
	}

	if edge, ok := origin.resizeEdge(); ok {
		if !f.resizable {
			return FrameAction{}, false
		}
		return FrameAction{Kind: ActionResize, Edge: edge}, true
	}

	switch origin {
	case LocationHead:
		now := f.now()
		double := f.mouse.haveHeadClick && now.Sub(f.mouse.lastHeadClick) <= doubleClickWindow
		f.mouse.lastHeadClick = now
		f.mouse.haveHeadClick = true
		if double {
			f.mouse.haveHeadClick = false
			if f.caps&CapMaximize == 0 {
				return FrameAction{}, false
			}
			if f.state&StateMaximized != 0 {
				return FrameAction{Kind: ActionUnmaximize}, true
			}
			return FrameAction{Kind: ActionMaximize}, true
		}
		return FrameAction{Kind: ActionMove}, true
	case LocationButtonClose:
		return FrameAction{Kind: ActionClose}, true
	case LocationButtonMaximize:
		if f.caps&CapMaximize == 0 {
			return FrameAction{}, false
		}
		if f.state&StateMaximized != 0 {
			return FrameAction{Kind: ActionUnmaximize}, true
		}
		return FrameAction{Kind: ActionMaximize}, true
	case LocationButtonMinimize:
		if f.caps&CapMinimize == 0 {
			return FrameAction{}, false
		}
		return FrameAction{Kind: ActionMinimize}, true
	}
	return FrameAction{}, false
}

func (f *Frame) onAlternateClick(pressed bool) (FrameAction, bool) {
	if !pressed {
		return FrameAction{}, false
	}
	loc := f.mouse.location
	if loc != LocationHead && !loc.isButton() {
		return FrameAction{}, false
	}
	if f.caps&CapWindowMenu == 0 {
		return FrameAction{}, false
	}
	return FrameAction{
		Kind:  ActionShowMenu,
		MenuX: int(f.mouse.x),
		MenuY: int(f.mouse.y) - theme.HeaderSize,
	}, true
}
