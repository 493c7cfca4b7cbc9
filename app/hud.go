package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"helios/hal"
)

var (
	hudFont  = &proggy.TinySZ8pt7b
	hudColor = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	hudDim   = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
)

// fbDisplay adapts a hal.Framebuffer to drivers.Displayer so tinyfont can
// draw the overlay text.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetRGB(int(x), int(y), c.R, c.G, c.B)
}

func (d *fbDisplay) Display() error {
	return d.fb.Present()
}

func drawHUD(fb hal.Framebuffer, title, help string) {
	d := &fbDisplay{fb: fb}
	tinyfont.WriteLine(d, hudFont, 6, 14, title, hudColor)
	tinyfont.WriteLine(d, hudFont, 6, int16(fb.Height()-6), help, hudDim)
}
