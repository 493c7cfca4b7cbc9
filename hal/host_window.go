package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"helios/internal/buildinfo"
)

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes or the app step
// returns ErrQuit.
func RunWindow(newApp func(HAL) func() error, width, height int) error {
	h := New(width, height).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Helios (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}
	return nil
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.SetState(pollKeys())
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.buf))
	}

	fb.snapshotRGBA(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}

// keyBindings maps physical keys to the renderer's control set.
var keyBindings = []struct {
	src ebiten.Key
	dst Key
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyM, KeyZoomIn},
	{ebiten.KeyN, KeyZoomOut},
	{ebiten.KeyW, KeyPanUp},
	{ebiten.KeyS, KeyPanDown},
	{ebiten.KeyA, KeyPanLeft},
	{ebiten.KeyD, KeyPanRight},
	{ebiten.KeyDigit1, KeyScene1},
	{ebiten.KeyDigit2, KeyScene2},
	{ebiten.KeyDigit3, KeyScene3},
	{ebiten.KeyDigit4, KeyScene4},
	{ebiten.KeyDigit5, KeyScene5},
	{ebiten.KeyDigit6, KeyScene6},
	{ebiten.KeyDigit7, KeyScene7},
	{ebiten.KeyTab, KeyMode},
	{ebiten.KeyEscape, KeyEscape},
}

func pollKeys() KeyState {
	s := KeyState{}
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.src) {
			s[b.dst] = true
		}
	}
	return s
}
