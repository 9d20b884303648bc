// SPDX-License-Identifier: Unlicense OR MIT

package adwaita

import (
	"errors"
	"image"
	"image/color"

	"github.com/wayland-contrib/adwaita/theme"
	"github.com/wayland-contrib/adwaita/wl"
)

// fakeSurface records the protocol calls the frame issues.
type fakeSurface struct {
	scaleFactor int32
	version     uint32

	bufferScale   int32
	attached      wl.Buffer
	attachCount   int
	detachCount   int
	damageCalls   []image.Rectangle
	damageBufCnt  int
	damageLogCnt  int
	inputRegion   image.Rectangle
	commitCount   int
	destroyed     bool
	lastDamagePix image.Rectangle

	commitLog *[]*fakeSurface
}

func (s *fakeSurface) SetBufferScale(scale int32) { s.bufferScale = scale }

func (s *fakeSurface) Attach(buf wl.Buffer, x, y int32) {
	s.attached = buf
	if buf == nil {
		s.detachCount++
	} else {
		s.attachCount++
	}
}

func (s *fakeSurface) Damage(x, y, w, h int32) {
	s.damageLogCnt++
	s.damageCalls = append(s.damageCalls, image.Rect(int(x), int(y), int(x+w), int(y+h)))
}

func (s *fakeSurface) DamageBuffer(x, y, w, h int32) {
	s.damageBufCnt++
	s.lastDamagePix = image.Rect(int(x), int(y), int(x+w), int(y+h))
}

func (s *fakeSurface) SetInputRegion(x, y, w, h int32) {
	s.inputRegion = image.Rect(int(x), int(y), int(x+w), int(y+h))
}

func (s *fakeSurface) Commit() {
	s.commitCount++
	if s.commitLog != nil {
		*s.commitLog = append(*s.commitLog, s)
	}
}

func (s *fakeSurface) Version() uint32 { return s.version }

func (s *fakeSurface) Data() wl.SurfaceData {
	return wl.SurfaceData{ScaleFactor: s.scaleFactor}
}

func (s *fakeSurface) Destroy() { s.destroyed = true }

type fakeSubsurface struct {
	sync      bool
	x, y      int32
	destroyed bool
}

func (s *fakeSubsurface) SetSync()               { s.sync = true }
func (s *fakeSubsurface) SetPosition(x, y int32) { s.x, s.y = x, y }
func (s *fakeSubsurface) Destroy()               { s.destroyed = true }

// fakeSubcompositor hands out fake surfaces and remembers them in
// creation order, which is the frame's part order.
type fakeSubcompositor struct {
	version     uint32
	scaleFactor int32
	commitLog   []*fakeSurface

	surfaces    []*fakeSurface
	subsurfaces []*fakeSubsurface
}

func (c *fakeSubcompositor) CreateSubsurface(parent wl.Surface) (wl.Subsurface, wl.Surface) {
	surf := &fakeSurface{
		scaleFactor: c.scaleFactor,
		version:     c.version,
		commitLog:   &c.commitLog,
	}
	sub := &fakeSubsurface{}
	c.surfaces = append(c.surfaces, surf)
	c.subsurfaces = append(c.subsurfaces, sub)
	return sub, surf
}

type fakeBuffer struct {
	w, h int32
}

type fakeAlloc struct {
	w, h int32
	pix  []byte
}

// fakeShmPool allocates plain byte slices. Set failures to make the next
// allocations fail.
type fakeShmPool struct {
	allocs   []fakeAlloc
	failures int
}

var errPoolExhausted = errors.New("pool exhausted")

func (p *fakeShmPool) CreateBuffer(w, h, stride int32, format wl.Format) (wl.Buffer, []byte, error) {
	if p.failures > 0 {
		p.failures--
		return nil, nil, errPoolExhausted
	}
	pix := make([]byte, int(stride)*int(h))
	p.allocs = append(p.allocs, fakeAlloc{w: w, h: h, pix: pix})
	return &fakeBuffer{w: w, h: h}, pix, nil
}

func (p *fakeShmPool) Resize(size int32) error { return nil }

// fakeTitle is a no-op title renderer so tests never shell out to
// fc-match.
type fakeTitle struct {
	title  string
	color  color.NRGBA
	scale  int
	pixmap *image.RGBA
}

func (t *fakeTitle) UpdateScale(scale int)     { t.scale = scale }
func (t *fakeTitle) UpdateTitle(title string)  { t.title = title }
func (t *fakeTitle) UpdateColor(c color.NRGBA) { t.color = c }
func (t *fakeTitle) Pixmap() *image.RGBA       { return t.pixmap }

type testEnv struct {
	base *fakeSurface
	pool *fakeShmPool
	sub  *fakeSubcompositor
}

func newTestFrame(t interface {
	Helper()
	Fatalf(string, ...any)
}) (*Frame, *testEnv) {
	t.Helper()
	env := &testEnv{
		base: &fakeSurface{scaleFactor: 1, version: 4},
		pool: &fakeShmPool{},
		sub:  &fakeSubcompositor{version: 4, scaleFactor: 1},
	}
	f, err := New(env.base, env.pool, env.sub, Config{
		Theme:        testTheme(),
		TitleText:    &fakeTitle{},
		ButtonLayout: "icon:minimize,maximize,close",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f, env
}

// testTheme uses distinct channel values so pixel checks can tell the
// colors apart after swizzling.
func testTheme() (t theme.ColorTheme) {
	t.Active.Headerbar = color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	t.Active.ButtonIdle = color.NRGBA{R: 40, G: 50, B: 60, A: 255}
	t.Active.ButtonHover = color.NRGBA{R: 70, G: 80, B: 90, A: 255}
	t.Active.ButtonIcon = color.NRGBA{R: 100, G: 110, B: 120, A: 255}
	t.Active.Border = color.NRGBA{R: 130, G: 140, B: 150, A: 255}
	t.Active.Font = color.NRGBA{R: 160, G: 170, B: 180, A: 255}
	t.Inactive = t.Active
	t.Inactive.Headerbar = color.NRGBA{R: 11, G: 21, B: 31, A: 255}
	return t
}
