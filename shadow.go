// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/wayland-contrib/adwaita/internal/raster"
	"github.com/wayland-contrib/adwaita/theme"
)

// Shadow parameters fitted against a screenshot of a libadwaita window:
// alpha(d) = a·e^(−b·d) + c, with d in logical points from the window
// edge.
var (
	shadowParamsActive   = [3]float64{0.2065055, 0.10461753, -0.0005424462}
	shadowParamsInactive = [3]float64{0.16829729, 0.2042998, 0.0017697986}
)

func shadowValue(pixelDist float64, scale int, active bool) float64 {
	p := shadowParamsInactive
	if active {
		p = shadowParamsActive
	}
	return p[0]*math.Exp(-p[1]*pixelDist/float64(scale)) + p[2]
}

func shadowAlpha(pixelDist float64, scale int, active bool) uint8 {
	a := math.Round(shadowValue(pixelDist, scale, active) * 255)
	return uint8(raster.Clamp(a, 0, 255))
}

type shadowKey struct {
	scale  int
	active bool
}

// renderedShadow holds the shadow source bitmaps for one (scale, active)
// pair: a one-pixel-high gradient strip in its four orientations, and the
// corner ring the four rounded corners sample from. All pixels are black
// with pre-multiplied alpha.
type renderedShadow struct {
	// Strips named for the part they tile; the gradient fades away from
	// the window edge.
	sideRight  *image.NRGBA // ShadowSize×1, fading rightward
	sideLeft   *image.NRGBA // ShadowSize×1, fading leftward
	sideTop    *image.NRGBA // 1×ShadowSize, fading upward
	sideBottom *image.NRGBA // 1×ShadowSize, fading downward
	// corner is a (CornerRadius+ShadowSize)·2 square ring around the
	// window corner circle.
	corner *image.NRGBA
}

func newRenderedShadow(scale int, active bool) *renderedShadow {
	shadowSize := theme.ShadowSize * scale
	cornerRadius := theme.CornerRadius * scale

	base := image.NewNRGBA(image.Rect(0, 0, shadowSize, 1))
	for x := 0; x < shadowSize; x++ {
		alpha := shadowAlpha(float64(x)+0.5, scale, active)
		base.SetNRGBA(x, 0, color.NRGBA{A: alpha})
	}

	size := (cornerRadius + shadowSize) * 2
	corner := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center) - float64(cornerRadius)
			corner.SetNRGBA(x, y, color.NRGBA{A: shadowAlpha(dist, scale, active)})
		}
	}

	sideTop := imaging.Rotate90(base)
	return &renderedShadow{
		sideRight:  base,
		sideLeft:   imaging.FlipH(base),
		sideTop:    sideTop,
		sideBottom: imaging.FlipV(sideTop),
		corner:     corner,
	}
}

// setShadowPixel writes a source pixel into the destination as a plain
// copy. Sources are black, so the NRGBA value doubles as pre-multiplied.
func setShadowPixel(dst *image.RGBA, x, y int, src *image.NRGBA, sx, sy int) {
	a := src.Pix[src.PixOffset(sx, sy)+3]
	i := dst.PixOffset(x, y)
	dst.Pix[i+0] = 0
	dst.Pix[i+1] = 0
	dst.Pix[i+2] = 0
	dst.Pix[i+3] = a
}

// blitRows stamps a horizontal strip onto every row y0..y0+rows-1,
// starting at column x0, clipped to the destination.
func blitRows(dst *image.RGBA, strip *image.NRGBA, x0, y0, rows int) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	n := strip.Rect.Dx()
	for i := 0; i < rows; i++ {
		y := y0 + i
		if y < 0 || y >= h {
			continue
		}
		for sx := 0; sx < n; sx++ {
			x := x0 + sx
			if x < 0 || x >= w {
				continue
			}
			setShadowPixel(dst, x, y, strip, sx, 0)
		}
	}
}

// blitCols stamps a vertical strip onto every column x0..x0+cols-1,
// starting at row y0, clipped to the destination.
func blitCols(dst *image.RGBA, strip *image.NRGBA, x0, y0, cols int) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	n := strip.Rect.Dy()
	for i := 0; i < cols; i++ {
		x := x0 + i
		if x < 0 || x >= w {
			continue
		}
		for sy := 0; sy < n; sy++ {
			y := y0 + sy
			if y < 0 || y >= h {
				continue
			}
			setShadowPixel(dst, x, y, strip, 0, sy)
		}
	}
}

// blitCorner copies a region of the corner ring into dstRect, sampling
// the ring from (srcX, srcY). Samples outside the ring are skipped.
func blitCorner(dst *image.RGBA, ring *image.NRGBA, srcX, srcY int, dstRect image.Rectangle) {
	dstRect = dstRect.Intersect(dst.Rect)
	size := ring.Rect.Dx()
	for y := dstRect.Min.Y; y < dstRect.Max.Y; y++ {
		sy := srcY + y - dstRect.Min.Y
		if sy < 0 || sy >= size {
			continue
		}
		for x := dstRect.Min.X; x < dstRect.Max.X; x++ {
			sx := srcX + x - dstRect.Min.X
			if sx < 0 || sx >= size {
				continue
			}
			setShadowPixel(dst, x, y, ring, sx, sy)
		}
	}
}

// drawPart composes the shadow for one part into dst, which must be the
// part's full pixel size.
func (s *renderedShadow) drawPart(dst *image.RGBA, scale int, id PartID, hideBorder bool) {
	shadowSize := theme.ShadowSize * scale
	cornerRadius := theme.CornerRadius * scale
	visibleBorder := theme.VisibleBorderSizeFor(hideBorder) * scale

	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	half := s.corner.Rect.Dx() / 2

	switch id {
	case PartTop:
		side := max(w-2*half, 0)
		blitCorner(dst, s.corner, 0, -visibleBorder, image.Rect(0, 0, half, h))
		blitCols(dst, s.sideTop, half, visibleBorder, side)
		blitCorner(dst, s.corner, half, -visibleBorder, image.Rect(half+side, 0, half+side+half, h))
	case PartLeft:
		top := cornerRadius
		bottom := cornerRadius - visibleBorder
		side := max(h-top-bottom, 0)
		blitCorner(dst, s.corner, 0, shadowSize, image.Rect(0, 0, w-visibleBorder, top))
		blitRows(dst, s.sideLeft, 0, top, side)
		blitCorner(dst, s.corner, 0, half, image.Rect(0, top+side, w-visibleBorder, top+side+bottom))
	case PartRight:
		top := cornerRadius
		bottom := cornerRadius - visibleBorder
		side := max(h-top-bottom, 0)
		blitCorner(dst, s.corner, half+cornerRadius, shadowSize, image.Rect(visibleBorder, 0, w, top))
		blitRows(dst, s.sideRight, visibleBorder, top, side)
		blitCorner(dst, s.corner, half+cornerRadius, half, image.Rect(visibleBorder, top+side, w, top+side+bottom))
	case PartBottom:
		side := max(w-2*half, 0)
		blitCorner(dst, s.corner, 0, half+cornerRadius-visibleBorder, image.Rect(0, 0, half, h))
		blitCols(dst, s.sideBottom, half, visibleBorder, side)
		blitCorner(dst, s.corner, half, half+cornerRadius-visibleBorder, image.Rect(half+side, 0, half+side+half, h))
	case PartHeader:
		blitCorner(dst, s.corner, shadowSize, shadowSize, image.Rect(0, 0, cornerRadius, cornerRadius))
		blitCorner(dst, s.corner, half, shadowSize, image.Rect(w-cornerRadius, 0, w, cornerRadius))
	}
}

// cachedShadowPart is one part's ready-to-copy shadow pixmap.
type cachedShadowPart struct {
	pix        *image.RGBA
	scale      int
	active     bool
	hideBorder bool
}

func (c *cachedShadowPart) matches(w, h, scale int, active, hideBorder bool) bool {
	return c.pix.Rect.Dx() == w && c.pix.Rect.Dy() == h &&
		c.scale == scale && c.active == active && c.hideBorder == hideBorder
}

// shadowCache keeps the long-lived shadow source bitmaps and the five
// per-part compositions. Sources live for the frame's lifetime; per-part
// pixmaps are recycled whenever their inputs change.
type shadowCache struct {
	rendered map[shadowKey]*renderedShadow
	parts    [partCount]*cachedShadowPart
}

// source returns the shadow source bitmaps for (scale, active),
// rendering them on first use.
func (sc *shadowCache) source(scale int, active bool) *renderedShadow {
	if sc.rendered == nil {
		sc.rendered = make(map[shadowKey]*renderedShadow)
	}
	key := shadowKey{scale: scale, active: active}
	r, ok := sc.rendered[key]
	if !ok {
		r = newRenderedShadow(scale, active)
		sc.rendered[key] = r
	}
	return r
}

// draw copies the shadow for the part into dst, replacing its contents.
// The decoration is painted over it afterwards.
func (sc *shadowCache) draw(dst *image.RGBA, scale int, active bool, id PartID, hideBorder bool) {
	visibleBorder := theme.VisibleBorderSizeFor(hideBorder) * scale
	if theme.CornerRadius*scale <= visibleBorder {
		// Degenerate geometry; nothing sensible to draw.
		return
	}

	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	cache := sc.parts[id]
	if cache != nil && !cache.matches(w, h, scale, active, hideBorder) {
		cache = nil
	}
	if cache == nil {
		pix := image.NewRGBA(image.Rect(0, 0, w, h))
		sc.source(scale, active).drawPart(pix, scale, id, hideBorder)
		cache = &cachedShadowPart{pix: pix, scale: scale, active: active, hideBorder: hideBorder}
		sc.parts[id] = cache
	}
	copy(dst.Pix, cache.pix.Pix)
}
