// SPDX-License-Identifier: Unlicense OR MIT

/*
Package adwaita renders client-side window decorations in the Adwaita
visual style for a Wayland toplevel: a titlebar with close, maximize and
minimize buttons, resize borders, drop shadows and a clipped title text.

The package is a collaborator for a Wayland client toolkit. The host owns
the content surface, the seat, the event queues and the shared memory
pool; the Frame owns five decoration sub-surfaces and the pixels on them.
The host forwards configure events, pointer motion and clicks, and acts
on the FrameActions the Frame returns.
*/
package adwaita

import (
	"image"
	"image/color"

	"github.com/wayland-contrib/adwaita/theme"
)

// TitleText renders the window title into a pixmap the frame blits onto
// the headerbar. Implementations re-render lazily when their inputs
// change.
type TitleText interface {
	// UpdateScale sets the buffer scale the pixmap is rendered at.
	UpdateScale(scale int)
	// UpdateTitle sets the text.
	UpdateTitle(title string)
	// UpdateColor sets the text color.
	UpdateColor(c color.NRGBA)
	// Pixmap returns the rendered title with pre-multiplied alpha, or
	// nil when there is nothing to draw.
	Pixmap() *image.RGBA
}

// Config selects the frame's appearance. The zero value means: probe the
// desktop environment for the color scheme and button layout, render
// titles with the system titlebar font, show the titlebar.
type Config struct {
	// Theme provides the colors. The zero value probes the environment
	// via theme.Auto.
	Theme theme.ColorTheme
	// TitleText overrides the title renderer. Nil selects the built-in
	// one; title rendering is disabled if that fails to initialize.
	TitleText TitleText
	// ButtonLayout is a GNOME-style layout string such as
	// `icon:minimize,maximize,close`. Empty probes the environment and
	// falls back to the Adwaita default.
	ButtonLayout string
	// HideTitlebar drops the header part, leaving borders and shadows.
	HideTitlebar bool
}
