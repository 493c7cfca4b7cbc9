package app

import (
	"errors"
	"net"
	"testing"

	"helios/hal"
	"helios/heliogl"
)

// stateSetter is implemented by the host keyboard so tests can script input.
type stateSetter interface{ SetState(hal.KeyState) }

func newTestApp(t *testing.T, cfg Config) (*App, stateSetter) {
	t.Helper()
	h := hal.New(96, 72)
	kbd, ok := h.Input().Keyboard().(stateSetter)
	if !ok {
		t.Fatal("host keyboard does not accept scripted state")
	}
	return newApp(h, cfg), kbd
}

func countForeground(fb hal.Framebuffer) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			r, g, b := fb.At(x, y)
			if r != 0x33 || g != 0x55 || b != 0x55 {
				n++
			}
		}
	}
	return n
}

func TestInitialScene(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	if a.scene != 1 {
		t.Fatalf("default scene = %d, want 1", a.scene)
	}

	a, _ = newTestApp(t, Config{Scene: 5})
	if a.scene != 5 {
		t.Fatalf("scene = %d, want 5", a.scene)
	}

	a, _ = newTestApp(t, Config{Scene: 42})
	if a.scene != 1 {
		t.Fatalf("out-of-range start scene = %d, want fallback 1", a.scene)
	}
}

func TestEscapeQuits(t *testing.T) {
	a, kbd := newTestApp(t, Config{})
	kbd.SetState(hal.KeyState{hal.KeyEscape: true})
	if err := a.step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("step with escape = %v, want ErrQuit", err)
	}
}

func TestDigitSelectsScene(t *testing.T) {
	a, kbd := newTestApp(t, Config{})

	kbd.SetState(hal.KeyState{hal.KeyScene3: true})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if a.scene != 3 {
		t.Fatalf("scene = %d, want 3", a.scene)
	}

	// Holding the key across frames must not re-trigger anything odd.
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if a.scene != 3 {
		t.Fatalf("scene after held key = %d, want 3", a.scene)
	}
}

func TestOutOfRangeSceneIgnored(t *testing.T) {
	a, _ := newTestApp(t, Config{Scene: 2})
	a.selectScene(0)
	a.selectScene(8)
	a.selectScene(-1)
	if a.scene != 2 {
		t.Fatalf("scene = %d, want unchanged 2", a.scene)
	}
}

func TestCameraPersistsAcrossSceneSwitch(t *testing.T) {
	a, kbd := newTestApp(t, Config{})

	kbd.SetState(hal.KeyState{hal.KeyZoomOut: true, hal.KeyLeft: true})
	for i := 0; i < 20; i++ {
		if err := a.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	radius, yaw := a.orbit.Radius, a.orbit.Yaw
	if radius <= 5 {
		t.Fatalf("radius = %v, want > 5 after zooming out", radius)
	}

	kbd.SetState(hal.KeyState{hal.KeyScene6: true})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if a.scene != 6 {
		t.Fatalf("scene = %d, want 6", a.scene)
	}
	if a.orbit.Radius != radius || a.orbit.Yaw != yaw {
		t.Fatalf("camera reset on scene switch: radius %v->%v yaw %v->%v",
			radius, a.orbit.Radius, yaw, a.orbit.Yaw)
	}
}

func TestModeCycleEdgeTriggered(t *testing.T) {
	a, kbd := newTestApp(t, Config{})
	if a.r.Mode != heliogl.RenderShaded {
		t.Fatalf("initial mode = %v, want shaded", a.r.Mode)
	}

	// Held across several frames the mode key advances exactly once.
	kbd.SetState(hal.KeyState{hal.KeyMode: true})
	for i := 0; i < 3; i++ {
		if err := a.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if a.r.Mode != heliogl.RenderSolidFlat {
		t.Fatalf("mode after held key = %v, want flat", a.r.Mode)
	}

	kbd.SetState(hal.KeyState{})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	kbd.SetState(hal.KeyState{hal.KeyMode: true})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if a.r.Mode != heliogl.RenderWireframe {
		t.Fatalf("mode after second press = %v, want wireframe", a.r.Mode)
	}
}

func TestSunSceneRendersWarmCenter(t *testing.T) {
	a, _ := newTestApp(t, Config{Scene: 1})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	r, _, b := a.fb.At(a.fb.Width()/2, a.fb.Height()/2)
	if r < 150 {
		t.Fatalf("sun center red channel = %d, want bright", r)
	}
	if r <= b {
		t.Fatalf("sun center r=%d b=%d, want warm (r > b)", r, b)
	}
}

func TestZoomOutShrinksSilhouette(t *testing.T) {
	a, kbd := newTestApp(t, Config{Scene: 1})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	closeCount := countForeground(a.fb)
	if closeCount == 0 {
		t.Fatal("nothing rendered at the default radius")
	}

	kbd.SetState(hal.KeyState{hal.KeyZoomOut: true})
	for i := 0; i < 200; i++ {
		if err := a.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if a.orbit.Radius != 20 {
		t.Fatalf("radius = %v, want clamped to 20", a.orbit.Radius)
	}
	kbd.SetState(hal.KeyState{})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	farCount := countForeground(a.fb)
	if farCount >= closeCount {
		t.Fatalf("silhouette grew when zooming out: %d -> %d", closeCount, farCount)
	}
}

// silhouetteWidth measures the horizontal extent of non-background pixels
// between two rows, so the HUD text lines can be excluded.
func silhouetteWidth(fb hal.Framebuffer, y0, y1 int) int {
	minX, maxX := fb.Width(), -1
	for y := y0; y < y1; y++ {
		for x := 0; x < fb.Width(); x++ {
			r, g, b := fb.At(x, y)
			if r != 0x33 || g != 0x55 || b != 0x55 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	if maxX < minX {
		return 0
	}
	return maxX - minX + 1
}

func TestRingedZoomOutShrinksSilhouetteWidth(t *testing.T) {
	a, kbd := newTestApp(t, Config{Scene: 4})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	y0, y1 := 20, a.fb.Height()-14 // rows clear of the HUD text
	closeW := silhouetteWidth(a.fb, y0, y1)
	if closeW == 0 {
		t.Fatal("ringed scene rendered nothing at the default radius")
	}

	kbd.SetState(hal.KeyState{hal.KeyZoomOut: true})
	for i := 0; i < 200; i++ {
		if err := a.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if a.orbit.Radius != 20 {
		t.Fatalf("radius = %v, want clamped to 20", a.orbit.Radius)
	}
	kbd.SetState(hal.KeyState{})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	farW := silhouetteWidth(a.fb, y0, y1)
	if farW == 0 {
		t.Fatal("ringed scene vanished at the maximum radius")
	}
	if farW >= closeW {
		t.Fatalf("silhouette width did not shrink: %d -> %d", closeW, farW)
	}
}

func TestSunCornersKeepClearColor(t *testing.T) {
	a, _ := newTestApp(t, Config{Scene: 1})
	if err := a.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	w, h := a.fb.Width(), a.fb.Height()
	for _, p := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		r, g, b := a.fb.At(p[0], p[1])
		if r != 0x33 || g != 0x55 || b != 0x55 {
			t.Fatalf("corner (%d,%d) = %d,%d,%d, want background", p[0], p[1], r, g, b)
		}
	}
}

func TestQuitStopsStreamServer(t *testing.T) {
	a, kbd := newTestApp(t, Config{Listen: "127.0.0.1:0"})
	if a.stream == nil {
		t.Fatal("stream server not created")
	}
	addr := a.stream.addr()
	if addr == "" {
		t.Fatal("stream server did not bind")
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial while running: %v", err)
	}
	conn.Close()

	kbd.SetState(hal.KeyState{hal.KeyEscape: true})
	if err := a.step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("step with escape = %v, want ErrQuit", err)
	}

	if conn, err := net.Dial("tcp", addr); err == nil {
		conn.Close()
		t.Fatal("listener still accepting after quit")
	}
}

func TestEverySceneRendersSomething(t *testing.T) {
	for n := 1; n <= sceneCount; n++ {
		a, _ := newTestApp(t, Config{Scene: n})
		for i := 0; i < 3; i++ {
			if err := a.step(); err != nil {
				t.Fatalf("scene %d step: %v", n, err)
			}
		}
		if countForeground(a.fb) == 0 {
			t.Fatalf("scene %d rendered nothing", n)
		}
	}
}

func TestSceneTableComplete(t *testing.T) {
	if sceneCount != 7 {
		t.Fatalf("sceneCount = %d, want 7", sceneCount)
	}
	for n := 1; n <= sceneCount; n++ {
		cfg := sceneConfig(n)
		if cfg == nil {
			t.Fatalf("scene %d missing", n)
		}
		if cfg.Name == "" {
			t.Fatalf("scene %d has no name", n)
		}
		if cfg.Ring && cfg.RingOuter <= cfg.RingInner {
			t.Fatalf("scene %d ring radii inverted: %v..%v", n, cfg.RingInner, cfg.RingOuter)
		}
		if cfg.Moon && cfg.MoonOrbitRadius <= 1 {
			t.Fatalf("scene %d moon orbits inside the body: %v", n, cfg.MoonOrbitRadius)
		}
	}
}
