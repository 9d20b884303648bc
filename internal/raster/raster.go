// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements the small software rasterizer the decoration
renderer draws with.

The canvas is a plain *image.RGBA with pre-multiplied pixels. When it
aliases a wl_shm buffer, Swizzle converts it in place to the ARGB8888
little-endian byte order Wayland expects, as the final step before attach.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/vector"
)

// NewCanvas wraps pix, a stride×height pixel storage, as a canvas of
// width×height pixels. It returns nil if pix is too short.
func NewCanvas(pix []byte, width, height, stride int) *image.RGBA {
	if width <= 0 || height <= 0 || len(pix) < stride*height {
		return nil
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Clear fills the canvas with fully transparent pixels.
func Clear(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}

// FillRect fills r with c, clipped to the canvas, without anti-aliasing.
func FillRect(img *image.RGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// Path is a sequence of straight and cubic Bézier segments. The zero
// value is an empty path.
type Path struct {
	verbs  []verb
	coords []float32
}

type verb uint8

const (
	verbMove verb = iota
	verbLine
	verbQuad
	verbCube
	verbClose
)

func (p *Path) MoveTo(x, y float32) {
	p.verbs = append(p.verbs, verbMove)
	p.coords = append(p.coords, x, y)
}

func (p *Path) LineTo(x, y float32) {
	p.verbs = append(p.verbs, verbLine)
	p.coords = append(p.coords, x, y)
}

func (p *Path) QuadTo(cx, cy, x, y float32) {
	p.verbs = append(p.verbs, verbQuad)
	p.coords = append(p.coords, cx, cy, x, y)
}

func (p *Path) CubeTo(c0x, c0y, c1x, c1y, x, y float32) {
	p.verbs = append(p.verbs, verbCube)
	p.coords = append(p.coords, c0x, c0y, c1x, c1y, x, y)
}

func (p *Path) Close() {
	p.verbs = append(p.verbs, verbClose)
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.verbs) == 0
}

// Fill fills the path with c over the whole canvas, anti-aliased.
func (p *Path) Fill(img *image.RGBA, c color.NRGBA) {
	b := img.Bounds()
	if b.Empty() || p.Empty() {
		return
	}
	vr := vector.NewRasterizer(b.Dx(), b.Dy())
	vr.DrawOp = draw.Over
	p.replay(vr)
	vr.Draw(img, b, image.NewUniform(c), image.Point{})
}

func (p *Path) replay(vr *vector.Rasterizer) {
	i := 0
	for _, v := range p.verbs {
		switch v {
		case verbMove:
			vr.MoveTo(p.coords[i], p.coords[i+1])
			i += 2
		case verbLine:
			vr.LineTo(p.coords[i], p.coords[i+1])
			i += 2
		case verbQuad:
			vr.QuadTo(p.coords[i], p.coords[i+1], p.coords[i+2], p.coords[i+3])
			i += 4
		case verbCube:
			vr.CubeTo(p.coords[i], p.coords[i+1], p.coords[i+2], p.coords[i+3], p.coords[i+4], p.coords[i+5])
			i += 6
		case verbClose:
			vr.ClosePath()
		}
	}
}

// circleK is the cubic Bézier control offset approximating a quarter
// circle.
const circleK = 0.5522848

// AppendCircle appends a full circle of radius r centered on (cx, cy).
func (p *Path) AppendCircle(cx, cy, r float32) {
	k := circleK * r
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
}

// AppendLine appends a stroked straight line from (x0, y0) to (x1, y1) of
// the given width, as a filled quad.
func (p *Path) AppendLine(x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	// Half-width normal of the segment.
	nx := -dy / l * width / 2
	ny := dx / l * width / 2
	p.MoveTo(x0+nx, y0+ny)
	p.LineTo(x1+nx, y1+ny)
	p.LineTo(x1-nx, y1-ny)
	p.LineTo(x0-nx, y0-ny)
	p.Close()
}

// DrawImage draws src at offset, clipped to clip and to the canvas.
func DrawImage(img *image.RGBA, src image.Image, offset image.Point, clip image.Rectangle) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(offset)
	r = r.Intersect(clip).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	sp := src.Bounds().Min.Add(r.Min.Sub(offset))
	draw.Draw(img, r, src, sp, draw.Over)
}

// Swizzle converts the canvas pixels in place from RGBA byte order to the
// ARGB8888 little-endian (B, G, R, A) order of the wl_shm buffer.
func Swizzle(img *image.RGBA) {
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
