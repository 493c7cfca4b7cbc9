package heliogl

// Default clamp bounds applied when the caller leaves them zero.
const (
	defaultRadius    = 5
	defaultMaxPitch  = 1.5533 // 89°
	defaultMinRadius = 0.5
)

// OrbitController provides orbit/zoom/pan interactions for a camera.
//
// It does not depend on any input system; callers feed it angular and radial
// deltas from whatever source they poll. All state is clamped so that Apply
// always yields a valid, non-degenerate view: pitch stays short of the poles
// and the radius stays strictly positive.
type OrbitController struct {
	Target Vec3
	// Offset pans the look-at point independently of the orbit.
	Offset Vec3

	Yaw    float32
	Pitch  float32
	Radius float32

	MinRadius float32
	MaxRadius float32
	MaxPitch  float32 // symmetric bound; zero means the default ±89°
}

func (c *OrbitController) maxPitch() float32 {
	if c.MaxPitch > 0 {
		return c.MaxPitch
	}
	return defaultMaxPitch
}

func (c *OrbitController) clampRadius(r float32) float32 {
	min := c.MinRadius
	if min <= 0 {
		min = defaultMinRadius
	}
	if r < min {
		r = min
	}
	if c.MaxRadius > 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}

// Rotate adjusts yaw and pitch. Pitch is clamped to avoid gimbal flip.
func (c *OrbitController) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch = Clamp(c.Pitch+deltaPitch, -c.maxPitch(), c.maxPitch())
}

// Zoom adjusts the orbit radius, clamped to [MinRadius, MaxRadius].
func (c *OrbitController) Zoom(delta float32) {
	if c.Radius == 0 {
		c.Radius = defaultRadius
	}
	c.Radius = c.clampRadius(c.Radius + delta)
}

// Pan shifts the look-at point by delta.
func (c *OrbitController) Pan(delta Vec3) {
	c.Offset = c.Offset.Add(delta)
}

// Apply writes the orbit position and look-at target into cam.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.clampRadius(c.Radius)
	if c.Radius == 0 {
		r = c.clampRadius(defaultRadius)
	}

	lookAt := c.Target.Add(c.Offset)
	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulDir(m, V3(0, 0, r))

	cam.Position = lookAt.Add(p)
	cam.Target = lookAt
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}
