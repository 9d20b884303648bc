// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/wayland-contrib/adwaita/internal/raster"
	"github.com/wayland-contrib/adwaita/theme"
	"github.com/wayland-contrib/adwaita/title"
	"github.com/wayland-contrib/adwaita/wl"
)

// ErrHidden is returned by operations that require visible decorations.
var ErrHidden = errors.New("adwaita: frame is hidden")

// Frame owns the five decoration sub-surfaces around a toplevel content
// surface and keeps their pixels in sync with the window state. The host
// owns the content surface, the pool and the event queue; it forwards
// pointer events to the frame and executes the actions the frame hands
// back.
//
// Frame is not safe for concurrent use.
type Frame struct {
	base          wl.Surface
	shm           wl.ShmPool
	subcompositor wl.Subcompositor

	parts *decorationParts

	width  int
	height int

	state     WindowState
	caps      Capabilities
	resizable bool
	hidden    bool
	dirty     bool

	colors       theme.ColorTheme
	hideTitlebar bool
	hideBorder   bool

	title     string
	titleText TitleText

	buttons      Buttons
	buttonLayout ButtonLayout

	mouse  mouseState
	shadow shadowCache

	// Injectable clock for double-click detection.
	now func() time.Time
}

// New creates the decoration frame for the given content surface. The
// pool and subcompositor stay owned by the caller. A zero Config selects
// the environment-probed theme and the default button layout.
func New(base wl.Surface, shm wl.ShmPool, subcompositor wl.Subcompositor, cfg Config) (*Frame, error) {
	if base == nil {
		return nil, errors.New("adwaita: nil base surface")
	}
	if shm == nil {
		return nil, errors.New("adwaita: nil shm pool")
	}
	if subcompositor == nil {
		return nil, errors.New("adwaita: nil subcompositor")
	}

	colors := cfg.Theme
	if colors == (theme.ColorTheme{}) {
		colors = theme.Auto()
	}

	layout := DefaultButtonLayout()
	if cfg.ButtonLayout != "" {
		layout = ParseButtonLayout(cfg.ButtonLayout)
	} else if s, ok := theme.ButtonLayoutSetting(); ok && s != "" {
		layout = ParseButtonLayout(s)
	}

	titleText := cfg.TitleText
	if titleText == nil {
		// Title rendering is best-effort; everything else keeps
		// working without it.
		if t, err := title.New(); err == nil {
			titleText = t
		}
	}

	f := &Frame{
		base:          base,
		shm:           shm,
		subcompositor: subcompositor,
		parts:         newDecorationParts(base, subcompositor),
		caps:          CapMaximize | CapMinimize | CapFullscreen | CapWindowMenu,
		resizable:     true,
		dirty:         true,
		colors:        colors,
		hideTitlebar:  cfg.HideTitlebar,
		titleText:     titleText,
		buttonLayout:  layout,
		now:           time.Now,
	}
	if f.titleText != nil {
		f.titleText.UpdateColor(f.currentColors().Font)
	}
	return f, nil
}

// Destroy releases the decoration surfaces. The frame must not be used
// afterwards.
func (f *Frame) Destroy() {
	if f.parts != nil {
		f.parts.destroy()
		f.parts = nil
	}
}

func (f *Frame) currentColors() *theme.ColorMap {
	return f.colors.ForState(f.state&StateActivated != 0)
}

// effectiveHideBorder reports whether the visible border is suppressed,
// either by configuration or because the compositor tiles the window
// flush against other surfaces.
func (f *Frame) effectiveHideBorder() bool {
	return f.hideBorder || f.state&(StateMaximized|StateTiled|StateFullscreen) != 0
}

func (f *Frame) layoutConfig() LayoutConfig {
	hideEdges := f.state&(StateMaximized|StateTiled|StateFullscreen) != 0
	return LayoutConfig{
		Width:        f.width,
		Height:       f.height,
		HideTitlebar: f.hideTitlebar,
		HideBorder:   f.effectiveHideBorder(),
		HideEdges:    hideEdges,
	}
}

func (f *Frame) arrangeButtons() {
	margin := float64(theme.VisibleBorderSizeFor(f.effectiveHideBorder()))
	width := float64(f.width) + 2*margin
	f.buttons.arrange(width, margin, f.buttonLayout, f.caps)
}

// UpdateState replaces the window state. The frame becomes dirty only
// when a bit that affects the rendered pixels changed.
func (f *Frame) UpdateState(state WindowState) {
	changed := f.state ^ state
	f.state = state
	if changed&stateRedrawMask != 0 {
		f.dirty = true
	}
	if changed&StateActivated != 0 && f.titleText != nil {
		f.titleText.UpdateColor(f.currentColors().Font)
	}
}

// UpdateCapabilities replaces the host capabilities, re-arranging the
// buttons when they changed.
func (f *Frame) UpdateCapabilities(caps Capabilities) {
	if f.caps == caps {
		return
	}
	f.caps = caps
	f.arrangeButtons()
	f.dirty = true
}

// SetHidden shows or hides the decorations entirely. Hiding destroys the
// sub-surfaces; showing recreates them and schedules a redraw.
func (f *Frame) SetHidden(hidden bool) {
	if f.hidden == hidden {
		return
	}
	f.hidden = hidden
	if hidden {
		if f.parts != nil {
			f.parts.destroy()
			f.parts = nil
		}
		f.dirty = false
		return
	}
	f.parts = newDecorationParts(f.base, f.subcompositor)
	f.parts.relayout(f.layoutConfig())
	f.dirty = true
}

// SetResizable toggles interactive resizing. It affects the cursors
// offered over the edges and the maximize button hover.
func (f *Frame) SetResizable(resizable bool) {
	if f.resizable == resizable {
		return
	}
	f.resizable = resizable
	f.dirty = true
}

// Resize updates the content size, in logical points excluding the
// decorations.
func (f *Frame) Resize(width, height int) error {
	if f.hidden {
		return ErrHidden
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("adwaita: invalid frame size %dx%d", width, height)
	}
	f.width = width
	f.height = height
	if f.parts != nil {
		f.parts.relayout(f.layoutConfig())
	}
	f.arrangeButtons()
	f.dirty = true
	return nil
}

// SetTitle updates the titlebar text.
func (f *Frame) SetTitle(title string) {
	if f.title == title {
		return
	}
	f.title = title
	if f.titleText != nil {
		f.titleText.UpdateTitle(title)
	}
	f.dirty = true
}

// SetConfig applies a new theme and layout configuration.
func (f *Frame) SetConfig(cfg Config) {
	if cfg.Theme != (theme.ColorTheme{}) {
		f.colors = cfg.Theme
	}
	if cfg.ButtonLayout != "" {
		f.buttonLayout = ParseButtonLayout(cfg.ButtonLayout)
	}
	if cfg.TitleText != nil {
		f.titleText = cfg.TitleText
	}
	f.hideTitlebar = cfg.HideTitlebar
	if f.titleText != nil {
		f.titleText.UpdateColor(f.currentColors().Font)
	}
	f.arrangeButtons()
	f.dirty = true
}

// IsDirty reports whether the decorations need a redraw.
func (f *Frame) IsDirty() bool {
	return f.dirty
}

// IsHidden reports whether the decorations are explicitly hidden.
func (f *Frame) IsHidden() bool {
	return f.hidden
}

func (f *Frame) headerVisible() bool {
	return !f.hidden && !f.hideTitlebar && f.state&StateFullscreen == 0
}

// SubtractBorders converts an outer size to the content size the host
// should configure.
func (f *Frame) SubtractBorders(width, height int32) (int32, int32) {
	if f.headerVisible() {
		return width, height - theme.HeaderSize
	}
	return width, height
}

// AddBorders converts a content size back to the outer size.
func (f *Frame) AddBorders(width, height int32) (int32, int32) {
	if f.headerVisible() {
		return width, height + theme.HeaderSize
	}
	return width, height
}

// Location returns the offset of the decorated window's top-left corner
// relative to the content surface.
func (f *Frame) Location() (int32, int32) {
	if f.headerVisible() {
		return 0, -theme.HeaderSize
	}
	return 0, 0
}

// Draw recomposes and commits every visible part. It is a no-op while
// nothing changed. Fullscreen windows get their decorations unmapped
// instead. Parts whose buffer cannot be allocated are skipped and the
// frame stays dirty so the next Draw retries.
func (f *Frame) Draw() {
	if f.parts == nil {
		return
	}
	if f.hidden || f.state&StateFullscreen != 0 {
		for _, p := range f.parts.parts {
			p.unmap()
		}
		f.dirty = false
		return
	}
	if !f.dirty {
		return
	}

	f.parts.relayout(f.layoutConfig())
	f.arrangeButtons()

	active := f.state&StateActivated != 0
	hideBorder := f.effectiveHideBorder()

	ok := true
	for i, p := range f.parts.parts {
		id := PartID(i)
		if p.Hidden {
			p.unmap()
			continue
		}
		if !f.drawPart(id, p, active, hideBorder) {
			ok = false
		}
	}
	if ok {
		f.dirty = false
	}
}

// drawPart rasterizes one part into a fresh pool buffer and commits it.
func (f *Frame) drawPart(id PartID, p *Part, active, hideBorder bool) bool {
	scale := p.scale()
	w := p.SurfaceRect.W * scale
	h := p.SurfaceRect.H * scale
	if w <= 0 || h <= 0 {
		// A zero-sized part is a transient resize race; skip it until
		// the next configure lays it out properly.
		return true
	}
	stride := 4 * w

	buf, pix, err := f.shm.CreateBuffer(int32(w), int32(h), int32(stride), wl.FormatARGB8888)
	if err != nil {
		log.Printf("adwaita: allocating %dx%d buffer for %s: %v", w, h, id, err)
		return false
	}

	canvas := raster.NewCanvas(pix, w, h, stride)
	raster.Clear(canvas)
	f.shadow.draw(canvas, scale, active, id, hideBorder)
	if id == PartHeader && f.titleText != nil {
		f.titleText.UpdateScale(scale)
	}
	f.renderPart(canvas, id, scale)
	raster.Swizzle(canvas)

	surf := p.Surface
	surf.SetBufferScale(int32(scale))
	p.Subsurface.SetPosition(int32(p.SurfaceRect.X), int32(p.SurfaceRect.Y))
	if r := p.InputRect; r != nil {
		surf.SetInputRegion(int32(r.X), int32(r.Y), int32(r.W), int32(r.H))
	} else {
		surf.SetInputRegion(0, 0, 0, 0)
	}
	surf.Attach(buf, 0, 0)
	if surf.Version() >= 4 {
		surf.DamageBuffer(0, 0, int32(w), int32(h))
	} else {
		surf.Damage(0, 0, int32(p.SurfaceRect.W), int32(p.SurfaceRect.H))
	}
	surf.Commit()
	return true
}
