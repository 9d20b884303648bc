// SPDX-License-Identifier: Unlicense OR MIT

// Package title renders single-line window titles into pixmaps. It
// resolves the desktop's titlebar font through fontconfig and falls back
// to an embedded face, so it works without any linked dependencies.
package title

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Text renders a title string with a fixed font. It re-renders only
// when the text, the color or the scale changed.
type Text struct {
	font   *opentype.Font
	ptSize float64

	title string
	color color.NRGBA
	scale int

	pixmap *image.RGBA
	stale  bool
}

// New loads the desktop's titlebar font, falling back to the embedded Go
// Regular face when the system has none.
func New() (*Text, error) {
	pref := TitlebarFont()
	data, err := fontFileMatching(pref)
	if err != nil {
		data = goregular.TTF
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		ft, err = opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("title: parsing fallback font: %w", err)
		}
	}
	return NewWithFont(ft, pref.PtSize), nil
}

// NewWithFont renders with the given face at the given point size.
func NewWithFont(ft *opentype.Font, ptSize float64) *Text {
	return &Text{font: ft, ptSize: ptSize, scale: 1, stale: true}
}

// UpdateScale sets the buffer scale the pixmap is rendered at.
func (t *Text) UpdateScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	if t.scale != scale {
		t.scale = scale
		t.stale = true
	}
}

// UpdateTitle sets the text.
func (t *Text) UpdateTitle(title string) {
	if t.title != title {
		t.title = title
		t.stale = true
	}
}

// UpdateColor sets the text color.
func (t *Text) UpdateColor(c color.NRGBA) {
	if t.color != c {
		t.color = c
		t.stale = true
	}
}

// Pixmap returns the rendered title, or nil when there is nothing to
// draw.
func (t *Text) Pixmap() *image.RGBA {
	if t.stale {
		t.pixmap = t.render()
		t.stale = false
	}
	return t.pixmap
}

func (t *Text) render() *image.RGBA {
	title := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, t.title)
	if title == "" {
		return nil
	}

	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    t.ptSize * float64(t.scale),
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	defer face.Close()

	m := face.Metrics()
	d := font.Drawer{Face: face}
	w := d.MeasureString(title).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Src = image.NewUniform(t.color)
	d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent}
	d.DrawString(title)
	return img
}
