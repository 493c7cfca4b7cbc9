package planet

import (
	"github.com/chewxy/math32"

	"helios/heliogl"
)

// Type tags the closed set of celestial body looks. Shading dispatches on
// this tag in a single switch; there is no open-ended extension point.
type Type uint8

const (
	TypeSun Type = iota + 1
	TypeRocky
	TypeGas
	TypeRinged
	TypeIcy
	TypeVolcanic
	TypeRockyMoon
)

func (t Type) String() string {
	switch t {
	case TypeSun:
		return "sun"
	case TypeRocky:
		return "rocky"
	case TypeGas:
		return "gaseous"
	case TypeRinged:
		return "ringed"
	case TypeIcy:
		return "icy"
	case TypeVolcanic:
		return "volcanic"
	case TypeRockyMoon:
		return "rocky+moon"
	default:
		return "unknown"
	}
}

// Config describes one body: type tag, palette and noise parameters, plus the
// optional ring and moon satellites. A Config is immutable once built; the
// active one is swapped wholesale on scene selection.
type Config struct {
	Type Type
	Name string

	// Surface palette, darkest to brightest.
	Base heliogl.Color
	Mid  heliogl.Color
	High heliogl.Color

	// Noise parameters.
	Scale     float32 // spatial frequency of the surface pattern
	Octaves   int
	Amplitude float32 // pattern contrast, 0..1

	// Ocean turns the rocky path into a sea/land threshold surface with a
	// drifting cloud layer (Base = water, Mid = land, High = clouds).
	Ocean bool

	// Self-rotation, radians per time unit.
	SpinSpeed float32

	// Ring (TypeRinged).
	Ring       bool
	RingInner  float32
	RingOuter  float32
	RingColor  heliogl.Color
	RingShadow heliogl.Color

	// Moon (TypeRockyMoon).
	Moon            bool
	MoonOrbitRadius float32
	MoonScale       float32
	MoonOrbitSpeed  float32
}

// MoonPosition returns the moon center for a given animation time, orbiting
// in the primary's equatorial plane.
func (c *Config) MoonPosition(time float32) heliogl.Vec3 {
	angle := time * c.MoonOrbitSpeed
	return heliogl.V3(
		c.MoonOrbitRadius*math32.Cos(angle),
		0,
		c.MoonOrbitRadius*math32.Sin(angle),
	)
}
