// SPDX-License-Identifier: Unlicense OR MIT

/*
Package wl declares the narrow Wayland surface this module requires from
its host toolkit.

The decoration frame never talks to a Wayland connection itself. The host
owns the display, the event queues and the shared memory pool; it hands the
frame opaque handles that satisfy the interfaces below. All methods are
non-blocking by contract and must be called from the host's event loop
thread only.

Implementations of Surface must be comparable with ==; the frame uses
handle identity to route pointer events back to decoration parts.
*/
package wl

// Format is a wl_shm pixel format code.
type Format uint32

// FormatARGB8888 is 32-bit ARGB with pre-multiplied alpha, little-endian
// (byte order B, G, R, A). It is the only format the frame allocates.
const FormatARGB8888 Format = 0

// SurfaceData carries the per-surface state the compositor reported to the
// host, as needed by the frame.
type SurfaceData struct {
	// ScaleFactor is the integer buffer scale for the surface's outputs.
	ScaleFactor int32
}

// Buffer is an opaque wl_buffer handle. The pool that produced it keeps
// ownership; the frame only attaches it.
type Buffer interface{}

// Surface wraps a wl_surface.
type Surface interface {
	SetBufferScale(scale int32)
	// Attach attaches buf at the given offset. A nil buf detaches the
	// current buffer, hiding the surface on the next commit.
	Attach(buf Buffer, x, y int32)
	Damage(x, y, w, h int32)
	DamageBuffer(x, y, w, h int32)
	// SetInputRegion restricts pointer input to the given surface-local
	// rectangle. A rectangle with zero width or height restores the
	// default whole-surface region.
	SetInputRegion(x, y, w, h int32)
	Commit()
	// Version reports the bound wl_surface protocol version.
	Version() uint32
	Data() SurfaceData
	Destroy()
}

// Subsurface wraps a wl_subsurface.
type Subsurface interface {
	SetSync()
	SetPosition(x, y int32)
	Destroy()
}

// Subcompositor creates sub-surfaces of a parent surface.
type Subcompositor interface {
	CreateSubsurface(parent Surface) (Subsurface, Surface)
}

// ShmPool allocates wl_buffers backed by shared memory. The pool keeps its
// own slot reuse; callers treat every buffer as freshly allocated.
type ShmPool interface {
	// CreateBuffer returns a buffer of width×height pixels in the given
	// format together with the writable pixel storage backing it, of
	// length stride×height.
	CreateBuffer(width, height, stride int32, format Format) (Buffer, []byte, error)
	// Resize grows the pool's backing memory to at least size bytes.
	Resize(size int32) error
}
