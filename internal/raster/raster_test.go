// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	pix := make([]byte, 4*10*5)
	img := NewCanvas(pix, 10, 5, 4*10)
	if img == nil {
		t.Fatal("NewCanvas returned nil")
	}
	if img.Rect != image.Rect(0, 0, 10, 5) || img.Stride != 40 {
		t.Fatalf("canvas geometry %v stride %d", img.Rect, img.Stride)
	}

	// The canvas aliases the storage.
	img.Pix[0] = 0xab
	if pix[0] != 0xab {
		t.Error("canvas does not alias pix")
	}

	if NewCanvas(pix[:10], 10, 5, 4*10) != nil {
		t.Error("short pix accepted")
	}
	if NewCanvas(pix, 0, 5, 0) != nil {
		t.Error("zero width accepted")
	}
}

func TestClear(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	Clear(img)
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("pixel byte %d = %#x after Clear", i, b)
		}
	}
}

func TestFillRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillRect(img, image.Rect(1, 1, 3, 3), color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("inside pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("outside pixel = %v", got)
	}
	if got := img.RGBAAt(3, 1); got != (color.RGBA{}) {
		t.Errorf("right of rect = %v", got)
	}

	// Out-of-bounds rectangles clip instead of panicking.
	FillRect(img, image.Rect(-5, -5, 100, 2), color.NRGBA{R: 1, A: 255})
	if got := img.RGBAAt(3, 0); got != (color.RGBA{R: 1, A: 255}) {
		t.Errorf("clipped fill pixel = %v", got)
	}
}

func TestPathFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var p Path
	if !p.Empty() {
		t.Fatal("zero path not empty")
	}
	p.Fill(img, color.NRGBA{R: 255, A: 255})
	if img.RGBAAt(5, 5) != (color.RGBA{}) {
		t.Fatal("empty path painted")
	}

	p.MoveTo(2, 2)
	p.LineTo(8, 2)
	p.LineTo(8, 8)
	p.LineTo(2, 8)
	p.Close()
	p.Fill(img, color.NRGBA{R: 255, A: 255})

	if got := img.RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("outside pixel = %v", got)
	}
}

func TestAppendCircle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var p Path
	p.AppendCircle(10, 10, 8)
	p.Fill(img, color.NRGBA{B: 255, A: 255})

	if got := img.RGBAAt(10, 10); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("center pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("far corner alpha = %d", got.A)
	}
	// Just inside the radius along an axis.
	if got := img.RGBAAt(10, 3); got.A == 0 {
		t.Error("top of circle not covered")
	}
}

func TestAppendLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var p Path
	p.AppendLine(2, 10, 18, 10, 4)
	p.Fill(img, color.NRGBA{G: 255, A: 255})

	if got := img.RGBAAt(10, 10); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("line center = %v", got)
	}
	if got := img.RGBAAt(10, 5); got.A != 0 {
		t.Errorf("above line alpha = %d", got.A)
	}

	// Degenerate lines add nothing.
	var q Path
	q.AppendLine(5, 5, 5, 5, 4)
	if !q.Empty() {
		t.Error("zero-length line appended segments")
	}
}

func TestDrawImage(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
		src.Pix[i+3] = 0xff
	}

	DrawImage(dst, src, image.Pt(3, 3), image.Rect(0, 0, 5, 10))
	if got := dst.RGBAAt(4, 4); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("drawn pixel = %v", got)
	}
	// Columns past the clip stay empty.
	if got := dst.RGBAAt(5, 4); got.A != 0 {
		t.Errorf("clipped pixel alpha = %d", got.A)
	}
	if got := dst.RGBAAt(2, 4); got.A != 0 {
		t.Errorf("left of offset alpha = %d", got.A)
	}

	// Offsets entirely outside the canvas are a no-op.
	DrawImage(dst, src, image.Pt(50, 50), dst.Bounds())
}

func TestSwizzle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	Swizzle(img)
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	for i, b := range img.Pix {
		if b != want[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, b, want[i])
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d", got)
	}
	if got := Clamp(11.5, 0.0, 10.0); got != 10.0 {
		t.Errorf("Clamp(11.5, 0, 10) = %v", got)
	}
}
