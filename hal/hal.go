// Package hal abstracts the display surface and keyboard the renderer runs
// against: an ebiten window on desktop, or an in-memory framebuffer for
// headless runs, snapshots, and tests.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by an app step to request an orderly shutdown.
var ErrQuit = errors.New("quit requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp: R, G, B, A byte order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	SetRGB(x, y int, r, g, b uint8)
	At(x, y int) (r, g, b uint8)
	ClearRGB(r, g, b uint8)
	Present() error
}

// Key is a minimal key identifier covering the renderer's controls.
type Key uint8

const (
	KeyUnknown Key = iota

	// Orbit.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Zoom.
	KeyZoomIn
	KeyZoomOut

	// Pan.
	KeyPanUp
	KeyPanDown
	KeyPanLeft
	KeyPanRight

	// Scene selection.
	KeyScene1
	KeyScene2
	KeyScene3
	KeyScene4
	KeyScene5
	KeyScene6
	KeyScene7

	KeyMode
	KeyEscape
)

// KeyState is a polled per-frame snapshot of pressed keys. A key absent from
// the map is not pressed.
type KeyState map[Key]bool

// Pressed reports whether k is down in this snapshot.
func (s KeyState) Pressed(k Key) bool {
	return s != nil && s[k]
}

// Keyboard provides the current key snapshot (best-effort on each platform).
type Keyboard interface {
	State() KeyState
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
