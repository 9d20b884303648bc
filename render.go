// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"image"
	"image/color"
	"math"

	"github.com/wayland-contrib/adwaita/internal/raster"
	"github.com/wayland-contrib/adwaita/theme"
)

// renderPart paints the decoration for one part on top of whatever the
// canvas already holds (the shadow). Coordinates are pixels; all logical
// sizes are multiplied by the buffer scale.
func (f *Frame) renderPart(canvas *image.RGBA, id PartID, scale int) {
	if id == PartHeader {
		f.renderHeader(canvas, scale)
		return
	}
	f.renderEdge(canvas, id, scale)
}

// cornerRadius returns the headerbar corner radius in pixels. Maximized
// and tiled windows get square corners.
func (f *Frame) cornerRadius(scale int) float32 {
	if f.state&(StateMaximized|StateTiled) != 0 {
		return 0
	}
	return float32(theme.CornerRadius * scale)
}

// renderEdge fills the visible border strip along the part's inner edge.
// The left and right strips start below the headerbar corner curve so
// they do not poke out straight where the outline bends.
func (f *Frame) renderEdge(canvas *image.RGBA, id PartID, scale int) {
	visible := theme.VisibleBorderSizeFor(f.effectiveHideBorder()) * scale
	if visible == 0 {
		return
	}

	w, h := canvas.Rect.Dx(), canvas.Rect.Dy()
	top := 0
	if !f.hideTitlebar {
		top = int(f.cornerRadius(scale))
	}

	c := f.currentColors().BorderPaint().Color
	switch id {
	case PartLeft:
		raster.FillRect(canvas, image.Rect(w-visible, top, w, h), c)
	case PartRight:
		raster.FillRect(canvas, image.Rect(0, top, visible, h), c)
	case PartBottom:
		raster.FillRect(canvas, image.Rect(0, 0, w, visible), c)
	case PartTop:
		// The top border is drawn by the header so it follows the
		// rounded corners.
	}
}

func (f *Frame) renderHeader(canvas *image.RGBA, scale int) {
	w, h := canvas.Rect.Dx(), canvas.Rect.Dy()
	colors := f.currentColors()
	radius := f.cornerRadius(scale)
	visible := float32(theme.VisibleBorderSizeFor(f.effectiveHideBorder()) * scale)

	// The header surface is widened by the visible border on both sides
	// so the outline hugs the rounded corners. The outer shape is the
	// border color showing through around an inset headerbar fill.
	if visible > 0 {
		outer := roundedHeaderbarPath(0, 0, float32(w), float32(h), radius)
		outer.Fill(canvas, colors.BorderPaint().Color)
	}
	innerRadius := radius - visible
	if innerRadius < 0 {
		innerRadius = 0
	}
	inner := roundedHeaderbarPath(visible, visible, float32(w)-2*visible, float32(h)-2*visible, innerRadius)
	inner.Fill(canvas, colors.HeaderbarPaint().Color)

	f.renderTitle(canvas, scale)

	s := float64(scale)
	f.buttons.all(func(b Button) {
		f.renderButton(canvas, b, s)
	})
}

// renderTitle blits the title pixmap centered in the header, pushed left
// of the right button group and clipped strictly between the two groups
// with a 10 point padding.
func (f *Frame) renderTitle(canvas *image.RGBA, scale int) {
	if f.titleText == nil {
		return
	}
	pm := f.titleText.Pixmap()
	if pm == nil {
		return
	}

	w, h := canvas.Rect.Dx(), canvas.Rect.Dy()
	s := float64(scale)
	margin := float64(theme.VisibleBorderSizeFor(f.effectiveHideBorder()))
	logicalW := float64(w) / s

	pad := 10 * s
	left := f.buttons.leftEnd(margin)*s + pad
	right := f.buttons.rightStart(logicalW, margin)*s - pad
	if right <= left {
		return
	}

	textW := float64(pm.Bounds().Dx())
	textH := float64(pm.Bounds().Dy())

	x := float64(w)/2 - textW/2
	if x+textW > right {
		x = right - textW
	}
	if x < left {
		x = left
	}
	y := float64(h)/2 - textH/2

	clip := image.Rect(int(left), 0, int(right), h)
	raster.DrawImage(canvas, pm, image.Pt(int(x), int(y)), clip)
}

func (f *Frame) renderButton(canvas *image.RGBA, b Button, s float64) {
	colors := f.currentColors()
	hovered := f.mouse.location == buttonLocation(b.Kind)

	fill := colors.ButtonIdlePaint()
	if hovered && (b.Kind != ButtonMaximize || f.resizable) {
		fill = colors.ButtonHoverPaint()
	}

	cx := b.CenterX() * s
	cy := b.CenterY() * s

	var circle raster.Path
	circle.AppendCircle(float32(cx), float32(cy), float32(b.Radius()*s))
	circle.Fill(canvas, fill.Color)

	icon := colors.ButtonIconPaint().Color
	switch b.Kind {
	case ButtonClose:
		// Diagonal cross, anti-aliased.
		half := 3.5 * s
		width := 1.1 * s
		var cross raster.Path
		cross.AppendLine(float32(cx-half), float32(cy-half), float32(cx+half), float32(cy+half), float32(width))
		cross.AppendLine(float32(cx+half), float32(cy-half), float32(cx-half), float32(cy+half), float32(width))
		cross.Fill(canvas, icon)
	case ButtonMaximize:
		size := 8 * s
		line := math.Round(s)
		if f.state&StateMaximized != 0 {
			// Two overlapping squares read as "restore".
			drawSquareOutline(canvas, cx+s, cy-s, size, line, icon)
			drawSquareOutline(canvas, cx-s, cy+s, size, line, icon)
		} else {
			drawSquareOutline(canvas, cx, cy, size, line, icon)
		}
	case ButtonMinimize:
		x0 := int(cx - 4*s)
		y0 := int(cy - s/2)
		raster.FillRect(canvas, image.Rect(x0, y0, x0+int(8*s), y0+int(math.Round(s))), icon)
	}
}

// drawSquareOutline draws a sharp square outline of the given side
// length centered at (cx, cy) using four axis-aligned rectangles.
func drawSquareOutline(canvas *image.RGBA, cx, cy, size, line float64, c color.NRGBA) {
	x0 := int(math.Round(cx - size/2))
	y0 := int(math.Round(cy - size/2))
	x1 := x0 + int(math.Round(size))
	y1 := y0 + int(math.Round(size))
	t := int(line)
	if t < 1 {
		t = 1
	}

	raster.FillRect(canvas, image.Rect(x0, y0, x1, y0+t), c)
	raster.FillRect(canvas, image.Rect(x0, y1-t, x1, y1), c)
	raster.FillRect(canvas, image.Rect(x0, y0, x0+t, y1), c)
	raster.FillRect(canvas, image.Rect(x1-t, y0, x1, y1), c)
}

// roundedHeaderbarPath builds the headerbar outline: the two top corners
// are cubic approximations of quarter circles, the sides and bottom are
// straight, closed at the start.
func roundedHeaderbarPath(x, y, width, height, radius float32) *raster.Path {
	const invSqrt2 = float32(math.Sqrt2 / 2)

	var p raster.Path
	p.MoveTo(x, y+radius)
	p.CubeTo(x, y+radius, x, y+radius-invSqrt2*radius, x+radius, y)
	p.LineTo(x+width-radius, y)
	p.CubeTo(x+width-radius, y, x+width-radius+invSqrt2*radius, y, x+width, y+radius)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.Close()
	return &p
}
