package heliogl

import "testing"

func TestOrbitZoomClamp(t *testing.T) {
	c := OrbitController{Radius: 5, MinRadius: 1.5, MaxRadius: 20}

	for i := 0; i < 1000; i++ {
		c.Zoom(0.1)
	}
	if c.Radius != 20 {
		t.Fatalf("radius after zoom out = %v, want 20", c.Radius)
	}

	for i := 0; i < 1000; i++ {
		c.Zoom(-0.1)
	}
	if c.Radius != 1.5 {
		t.Fatalf("radius after zoom in = %v, want 1.5", c.Radius)
	}
}

func TestOrbitZoomDefaultMin(t *testing.T) {
	var c OrbitController
	c.Zoom(-100)
	if c.Radius <= 0 {
		t.Fatalf("radius = %v, want > 0", c.Radius)
	}
}

func TestOrbitPitchClamp(t *testing.T) {
	var c OrbitController
	for i := 0; i < 1000; i++ {
		c.Rotate(0, 0.1)
	}
	if c.Pitch != defaultMaxPitch {
		t.Fatalf("pitch = %v, want %v", c.Pitch, defaultMaxPitch)
	}
	for i := 0; i < 2000; i++ {
		c.Rotate(0, -0.1)
	}
	if c.Pitch != -defaultMaxPitch {
		t.Fatalf("pitch = %v, want %v", c.Pitch, -defaultMaxPitch)
	}
}

func TestOrbitApplyDistance(t *testing.T) {
	c := OrbitController{Radius: 5}
	c.Rotate(1.2, -0.4)
	c.Pan(V3(0.5, -0.25, 0))

	var cam Camera
	c.Apply(&cam)

	lookAt := c.Target.Add(c.Offset)
	if cam.Target != lookAt {
		t.Fatalf("camera target = %v, want %v", cam.Target, lookAt)
	}
	if got := Len(cam.Position.Sub(lookAt)); !near(got, 5) {
		t.Fatalf("orbit distance = %v, want 5", got)
	}
	if cam.Up == (Vec3{}) {
		t.Fatal("camera up left zero")
	}
}

func TestOrbitApplyZeroRadiusUsesDefault(t *testing.T) {
	var c OrbitController
	var cam Camera
	c.Apply(&cam)
	if got := Len(cam.Position.Sub(cam.Target)); !near(got, defaultRadius) {
		t.Fatalf("orbit distance = %v, want %v", got, float32(defaultRadius))
	}
}
