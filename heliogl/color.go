package heliogl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// MulScalar scales the color channels by s clamped to [0,1]. Used for
// lighting attenuation; alpha is preserved.
func (c Color) MulScalar(s float32) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// Scale multiplies the color channels by an arbitrary non-negative factor,
// saturating at white. Factors above 1 brighten (emissive surfaces).
func (c Color) Scale(f float32) Color {
	if f < 0 {
		f = 0
	}
	sat := func(ch uint8) uint8 {
		v := float32(ch) * f
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Color{R: sat(c.R), G: sat(c.G), B: sat(c.B), A: c.A}
}

// Add sums two colors channel-wise, saturating at white.
func (c Color) Add(o Color) Color {
	sat := func(a, b uint8) uint8 {
		v := uint16(a) + uint16(b)
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Color{R: sat(c.R, o.R), G: sat(c.G, o.G), B: sat(c.B, o.B), A: c.A}
}

// LerpColor blends from c to o by t clamped to [0,1].
func (c Color) LerpColor(o Color, t float32) Color {
	t = Clamp01(t)
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return Color{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B), A: mix(c.A, o.A)}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
