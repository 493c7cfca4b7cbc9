// Package app drives the per-frame loop: it polls the key snapshot, advances
// the orbit camera and animation time, renders the active scene through
// heliogl, and presents the framebuffer.
package app

import (
	"fmt"

	"github.com/chewxy/math32"

	"helios/hal"
	"helios/heliogl"
	"helios/internal/buildinfo"
	"helios/planet"
)

// Camera input steps per tick.
const (
	orbitStep = math32.Pi / 50
	zoomStep  = 0.1
	panStep   = 0.05
)

// Config selects the initial scene and the optional frame stream address.
type Config struct {
	Scene  int
	Listen string
}

// App owns all mutable render state. It is touched only by the single
// render/input goroutine; the stream server hands over scene requests
// through an atomic slot.
type App struct {
	h   hal.HAL
	log hal.Logger
	fb  hal.Framebuffer
	tgt *fbTarget

	r     *heliogl.Renderer
	s     *heliogl.Scene
	orbit heliogl.OrbitController

	stream *streamServer

	scene  int
	sunID  int
	bodyID int
	ringID int
	moonID int

	tick     uint64
	prevMode bool
}

var sceneKeys = [...]hal.Key{
	hal.KeyScene1, hal.KeyScene2, hal.KeyScene3, hal.KeyScene4,
	hal.KeyScene5, hal.KeyScene6, hal.KeyScene7,
}

// New builds the app and returns its per-frame step function.
func New(h hal.HAL, cfg Config) func() error {
	return newApp(h, cfg).step
}

func newApp(h hal.HAL, cfg Config) *App {
	fb := h.Display().Framebuffer()
	a := &App{
		h:   h,
		log: h.Logger(),
		fb:  fb,
		tgt: &fbTarget{fb: fb},
		orbit: heliogl.OrbitController{
			Radius:    5,
			MinRadius: 1.5,
			MaxRadius: 20,
		},
	}

	a.r = heliogl.NewRenderer(fb.Width(), fb.Height(), true)
	a.r.ClearColor = heliogl.RGB(0x33, 0x55, 0x55)
	a.s = heliogl.CreateScene(4)

	// Shared geometry: one sphere buffer for sun, planet, and moon; one
	// annulus sized for the ringed scene.
	sphereV, sphereI := heliogl.SphereGeometry(32, 48)
	ringCfg := sceneConfig(4)
	ringV, ringI := heliogl.RingGeometry(ringCfg.RingInner, ringCfg.RingOuter, 96)

	a.sunID = a.s.AddMesh(heliogl.Mesh{Vertices: sphereV, Indices: sphereI})
	a.bodyID = a.s.AddMesh(heliogl.Mesh{Vertices: sphereV, Indices: sphereI})
	a.ringID = a.s.AddMesh(heliogl.Mesh{Vertices: ringV, Indices: ringI})
	a.moonID = a.s.AddMesh(heliogl.Mesh{Vertices: sphereV, Indices: sphereI})

	start := cfg.Scene
	if sceneConfig(start) == nil {
		start = 1
	}
	a.selectScene(start)

	if cfg.Listen != "" {
		a.stream = newStreamServer(a.log)
		a.stream.start(cfg.Listen)
	}

	a.log.WriteLineString("helios " + buildinfo.Short() + " ready")
	return a
}

// selectScene activates a 1-based scene index. Out-of-range indices are
// ignored and the current scene is retained. The orbit camera persists
// across switches.
func (a *App) selectScene(n int) {
	cfg := sceneConfig(n)
	if cfg == nil {
		a.log.WriteLineString(fmt.Sprintf("scene: ignoring out-of-range index %d", n))
		return
	}
	if n == a.scene {
		return
	}
	a.scene = n
	a.s.SetMeshEnabled(a.ringID, cfg.Ring)
	a.s.SetMeshEnabled(a.moonID, cfg.Moon)
	a.s.SetMeshEnabled(a.sunID, cfg.Type != planet.TypeSun)
	a.log.WriteLineString(fmt.Sprintf("scene %d: %s", n, cfg.Name))
}

func (a *App) cycleMode() {
	switch a.r.Mode {
	case heliogl.RenderShaded:
		a.r.SetRenderMode(heliogl.RenderSolidFlat)
	case heliogl.RenderSolidFlat:
		a.r.SetRenderMode(heliogl.RenderWireframe)
	default:
		a.r.SetRenderMode(heliogl.RenderShaded)
	}
}

func (a *App) handleCamera(keys hal.KeyState) {
	if keys.Pressed(hal.KeyLeft) {
		a.orbit.Rotate(orbitStep, 0)
	}
	if keys.Pressed(hal.KeyRight) {
		a.orbit.Rotate(-orbitStep, 0)
	}
	if keys.Pressed(hal.KeyUp) {
		a.orbit.Rotate(0, -orbitStep)
	}
	if keys.Pressed(hal.KeyDown) {
		a.orbit.Rotate(0, orbitStep)
	}

	if keys.Pressed(hal.KeyZoomIn) {
		a.orbit.Zoom(-zoomStep)
	}
	if keys.Pressed(hal.KeyZoomOut) {
		a.orbit.Zoom(zoomStep)
	}

	if keys.Pressed(hal.KeyPanLeft) {
		a.orbit.Pan(heliogl.V3(-panStep, 0, 0))
	}
	if keys.Pressed(hal.KeyPanRight) {
		a.orbit.Pan(heliogl.V3(panStep, 0, 0))
	}
	if keys.Pressed(hal.KeyPanUp) {
		a.orbit.Pan(heliogl.V3(0, panStep, 0))
	}
	if keys.Pressed(hal.KeyPanDown) {
		a.orbit.Pan(heliogl.V3(0, -panStep, 0))
	}
}

// animate rebuilds the per-object model matrices and shaders for the frame.
func (a *App) animate(cfg *planet.Config, t float32) {
	spin := heliogl.Mat4RotateY(t * cfg.SpinSpeed)
	a.s.UpdateMeshTransform(a.bodyID, spin)
	a.s.UpdateMeshShader(a.bodyID, planet.Shader(cfg, t))

	if cfg.Ring {
		tilt := heliogl.Mat4RotateZ(0.18)
		ring := heliogl.Mat4Mul(tilt, heliogl.Mat4RotateY(t*cfg.SpinSpeed*0.4))
		a.s.UpdateMeshTransform(a.ringID, ring)
		a.s.UpdateMeshShader(a.ringID, planet.RingShader(cfg, t))
	}

	if cfg.Moon {
		pos := cfg.MoonPosition(t)
		sc := cfg.MoonScale
		m := heliogl.Mat4Mul(
			heliogl.Mat4Translate(pos),
			heliogl.Mat4Mul(heliogl.Mat4RotateY(t*0.02), heliogl.Mat4Scale(heliogl.V3(sc, sc, sc))),
		)
		a.s.UpdateMeshTransform(a.moonID, m)
		a.s.UpdateMeshShader(a.moonID, planet.MoonShader(t))
	}

	if cfg.Type != planet.TypeSun {
		// A small emissive sun at the light position so the light source
		// is visible in every planet scene.
		m := heliogl.Mat4Mul(
			heliogl.Mat4Translate(a.s.Light.Pos),
			heliogl.Mat4Scale(heliogl.V3(0.8, 0.8, 0.8)),
		)
		a.s.UpdateMeshTransform(a.sunID, m)
		a.s.UpdateMeshShader(a.sunID, planet.Shader(sceneConfig(1), t))
	}
}

// step runs one frame. Any error ends the run loop, so the stream listener
// is torn down on the way out.
func (a *App) step() error {
	err := a.frame()
	if err != nil && a.stream != nil {
		a.stream.stop()
	}
	return err
}

func (a *App) frame() error {
	keys := a.h.Input().Keyboard().State()
	if keys.Pressed(hal.KeyEscape) {
		return hal.ErrQuit
	}

	if a.stream != nil {
		if n := a.stream.takePendingScene(); n != 0 {
			a.selectScene(n)
		}
	}
	for i, k := range sceneKeys {
		if keys.Pressed(k) {
			a.selectScene(i + 1)
		}
	}

	mode := keys.Pressed(hal.KeyMode)
	if mode && !a.prevMode {
		a.cycleMode()
	}
	a.prevMode = mode

	a.handleCamera(keys)
	a.orbit.Apply(&a.s.Camera)

	t := float32(a.tick)
	cfg := sceneConfig(a.scene)
	a.animate(cfg, t)
	a.r.Render(a.tgt, a.s)

	drawHUD(a.fb,
		fmt.Sprintf("%d/%d %s", a.scene, sceneCount, cfg.Name),
		"1-7 scene  arrows orbit  n/m zoom  wasd pan  tab mode",
	)

	if a.stream != nil && a.tick%2 == 0 {
		a.stream.broadcast(frameHeader{
			Type:   "frame",
			Width:  a.fb.Width(),
			Height: a.fb.Height(),
			Scene:  a.scene,
			Tick:   a.tick,
		}, a.fb.Buffer())
	}

	if err := a.fb.Present(); err != nil {
		return err
	}
	a.tick++
	return nil
}
