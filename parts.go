// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"github.com/wayland-contrib/adwaita/theme"
	"github.com/wayland-contrib/adwaita/wl"
)

// PartID identifies one of the five decoration panels. The order is the
// render order: the header draws last so its rounded corners overlay the
// edge strips.
type PartID uint8

const (
	PartTop PartID = iota
	PartLeft
	PartRight
	PartBottom
	PartHeader

	partCount = 5
)

func (id PartID) String() string {
	switch id {
	case PartTop:
		return "top"
	case PartLeft:
		return "left"
	case PartRight:
		return "right"
	case PartBottom:
		return "bottom"
	case PartHeader:
		return "header"
	}
	panic("adwaita: invalid PartID")
}

// coarseLocation maps a part to the pointer location reported when the
// pointer enters it, before refinement.
func (id PartID) coarseLocation() Location {
	switch id {
	case PartTop:
		return LocationTop
	case PartLeft:
		return LocationLeft
	case PartRight:
		return LocationRight
	case PartBottom:
		return LocationBottom
	case PartHeader:
		return LocationHead
	}
	panic("adwaita: invalid PartID")
}

// Rect is a rectangle in logical points. X and Y may be negative: part
// positions are relative to the top-left corner of the content surface.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.X+r.W) &&
		y >= float64(r.Y) && y < float64(r.Y+r.H)
}

// LayoutConfig is the full set of inputs to the decoration layout.
type LayoutConfig struct {
	// Width and Height of the content area, in logical points.
	Width, Height int
	HideTitlebar  bool
	HideBorder    bool
	HideEdges     bool
}

// PartLayout is the computed geometry of one part.
type PartLayout struct {
	// SurfaceRect is positioned relative to the content surface.
	SurfaceRect Rect
	// InputRect is the pointer input sub-region within the part's own
	// buffer. nil means the whole buffer accepts input.
	InputRect *Rect
	// Hidden marks parts that must not be mapped for this configuration.
	Hidden bool
}

// CalcLayout computes the five part layouts for cfg. It is a pure
// function: equal configs produce equal results.
func CalcLayout(cfg LayoutConfig) [partCount]PartLayout {
	var parts [partCount]PartLayout

	headerSize := theme.HeaderSize
	if cfg.HideTitlebar {
		headerSize = 0
	}
	heightWithHeader := cfg.Height + headerSize

	border := theme.BorderSizeFor(cfg.HideBorder)
	widthWithBorder := cfg.Width + 2*border
	// The resize input strip extends outward beyond the visible border.
	inputW := widthWithBorder - 2*border + 2*theme.ResizeHandleSize

	parts[PartTop] = PartLayout{
		SurfaceRect: Rect{X: -border, Y: -(headerSize + border), W: widthWithBorder, H: border},
		InputRect: &Rect{
			X: border - theme.ResizeHandleSize,
			Y: border - theme.ResizeHandleSize,
			W: inputW,
			H: theme.ResizeHandleSize,
		},
	}
	parts[PartLeft] = PartLayout{
		SurfaceRect: Rect{X: -border, Y: -headerSize, W: border, H: heightWithHeader},
		InputRect: &Rect{
			X: border - theme.ResizeHandleSize,
			W: theme.ResizeHandleSize,
			H: heightWithHeader,
		},
	}
	parts[PartRight] = PartLayout{
		SurfaceRect: Rect{X: cfg.Width, Y: -headerSize, W: border, H: heightWithHeader},
		InputRect:   &Rect{W: theme.ResizeHandleSize, H: heightWithHeader},
	}
	parts[PartBottom] = PartLayout{
		SurfaceRect: Rect{X: -border, Y: cfg.Height, W: widthWithBorder, H: border},
		InputRect: &Rect{
			X: border - theme.ResizeHandleSize,
			W: inputW,
			H: theme.ResizeHandleSize,
		},
	}
	parts[PartHeader] = PartLayout{
		SurfaceRect: Rect{Y: -theme.HeaderSize, W: cfg.Width, H: theme.HeaderSize},
		Hidden:      cfg.HideTitlebar,
	}

	// The visible borders adjoining the header are drawn with the header
	// so the rounded corners meet the edge strips pixel-flush. Widen the
	// header by a border width on each side to make room.
	if !cfg.HideEdges && !cfg.HideTitlebar {
		v := theme.VisibleBorderSizeFor(cfg.HideBorder)
		parts[PartHeader].SurfaceRect.W += 2 * v
		parts[PartHeader].SurfaceRect.X -= v
	}

	for id := PartTop; id <= PartBottom; id++ {
		r := parts[id].SurfaceRect
		if cfg.HideEdges || r.W <= 0 || r.H <= 0 {
			parts[id].Hidden = true
		}
	}

	return parts
}

// Part is one decoration panel: a sub-surface of the content surface plus
// its current geometry.
type Part struct {
	Surface    wl.Surface
	Subsurface wl.Subsurface

	SurfaceRect Rect
	InputRect   *Rect
	Hidden      bool
}

func newPart(parent wl.Surface, subcompositor wl.Subcompositor) *Part {
	sub, surf := subcompositor.CreateSubsurface(parent)
	// Decorations must update atomically with the content.
	sub.SetSync()
	return &Part{Surface: surf, Subsurface: sub}
}

// destroy releases the part's protocol objects, sub-surface first.
func (p *Part) destroy() {
	p.Subsurface.Destroy()
	p.Surface.Destroy()
}

// unmap detaches the part's buffer so the compositor hides it.
func (p *Part) unmap() {
	p.Surface.Attach(nil, 0, 0)
	p.Surface.Commit()
}

// scale returns the part's integer buffer scale, at least 1.
func (p *Part) scale() int {
	s := int(p.Surface.Data().ScaleFactor)
	if s < 1 {
		return 1
	}
	return s
}

// decorationParts owns the five panels as a unit.
type decorationParts struct {
	parts [partCount]*Part
}

func newDecorationParts(parent wl.Surface, subcompositor wl.Subcompositor) *decorationParts {
	var d decorationParts
	for i := range d.parts {
		d.parts[i] = newPart(parent, subcompositor)
	}
	return &d
}

func (d *decorationParts) destroy() {
	for i, p := range d.parts {
		p.destroy()
		d.parts[i] = nil
	}
}

// relayout applies a freshly computed layout to the parts.
func (d *decorationParts) relayout(cfg LayoutConfig) {
	layout := CalcLayout(cfg)
	for i, p := range d.parts {
		p.SurfaceRect = layout[i].SurfaceRect
		p.InputRect = layout[i].InputRect
		p.Hidden = layout[i].Hidden
	}
}

// findSurface returns the coarse pointer location for the part owning
// surface, or LocationNone for foreign surfaces.
func (d *decorationParts) findSurface(surface wl.Surface) Location {
	for i, p := range d.parts {
		if p.Surface == surface {
			return PartID(i).coarseLocation()
		}
	}
	return LocationNone
}
