package app

import (
	"helios/hal"
	"helios/heliogl"
)

// fbTarget adapts a hal.Framebuffer to the renderer's pixel target.
type fbTarget struct {
	fb hal.Framebuffer
}

func (t *fbTarget) Size() (w, h int) {
	return t.fb.Width(), t.fb.Height()
}

func (t *fbTarget) SetPixel(x, y int, c heliogl.Color) {
	t.fb.SetRGB(x, y, c.R, c.G, c.B)
}

func (t *fbTarget) Clear(c heliogl.Color) {
	t.fb.ClearRGB(c.R, c.G, c.B)
}
