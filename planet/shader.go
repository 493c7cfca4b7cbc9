package planet

import (
	"github.com/chewxy/math32"

	"helios/heliogl"
)

// Shader returns the fragment shader for the body's surface at a given
// animation time. Dispatch is a single switch over the closed type set.
func Shader(cfg *Config, time float32) heliogl.FragmentShader {
	switch cfg.Type {
	case TypeSun:
		return func(f heliogl.Fragment) heliogl.Color { return shadeSun(cfg, time, f) }
	case TypeGas:
		return func(f heliogl.Fragment) heliogl.Color { return shadeGas(cfg, time, f) }
	case TypeRinged:
		return func(f heliogl.Fragment) heliogl.Color { return shadeBanded(cfg, time, f) }
	case TypeIcy:
		return func(f heliogl.Fragment) heliogl.Color { return shadeIcy(cfg, time, f) }
	case TypeVolcanic:
		return func(f heliogl.Fragment) heliogl.Color { return shadeVolcanic(cfg, time, f) }
	default: // TypeRocky, TypeRockyMoon
		if cfg.Ocean {
			return func(f heliogl.Fragment) heliogl.Color { return shadeOcean(cfg, time, f) }
		}
		return func(f heliogl.Fragment) heliogl.Color { return shadeRocky(cfg, f) }
	}
}

// RingShader returns the shader for the annulus of a ringed body.
// Rings are unlit banded strips; UV.X is the radial fraction.
func RingShader(cfg *Config, time float32) heliogl.FragmentShader {
	return func(f heliogl.Fragment) heliogl.Color { return shadeRing(cfg, f) }
}

// MoonShader returns the shader for the satellite of a rocky body.
func MoonShader(time float32) heliogl.FragmentShader {
	return shadeMoon
}

// shadeSun is emissive: a warm radial gradient perturbed by turbulence,
// independent of the light direction.
func shadeSun(cfg *Config, time float32, f heliogl.Fragment) heliogl.Color {
	core := heliogl.RGB(255, 255, 255)
	inner := heliogl.RGB(255, 230, 28)
	outer := heliogl.RGB(255, 178, 51)
	rim := heliogl.RGB(204, 102, 0)

	p := f.ObjPos
	radius := math32.Sqrt(p.X*p.X + p.Y*p.Y)
	turb := fbm3(p.X*cfg.Scale, p.Y*cfg.Scale, p.Z*cfg.Scale+time*0.05, cfg.Octaves, 0.5)
	t := heliogl.Clamp01(radius + turb*cfg.Amplitude*0.3)

	var c heliogl.Color
	switch {
	case t < 0.33:
		c = core.LerpColor(inner, t/0.33)
	case t < 0.66:
		c = inner.LerpColor(outer, (t-0.33)/0.33)
	default:
		c = outer.LerpColor(rim, (t-0.66)/0.34)
	}
	return c.Scale(1.5)
}

// shadeRocky produces terrain-like color bands from hash-perturbed noise
// plus ridged crests, scaled by the Lambert term.
func shadeRocky(cfg *Config, f heliogl.Fragment) heliogl.Color {
	p := f.ObjPos
	random := hash2(p.X, p.Y) * 0.3
	n := math32.Abs(fbm3((p.X+random)*cfg.Scale, (p.Y+random)*cfg.Scale, p.Z*cfg.Scale, cfg.Octaves, 0.5))
	crest := ridge3(p.X*cfg.Scale*0.5, p.Y*cfg.Scale*0.5, p.Z*cfg.Scale*0.5)
	n = heliogl.Clamp01(n*(1+cfg.Amplitude) + crest*crest*0.2)

	var surface heliogl.Color
	if n < 0.4 {
		surface = cfg.Base.LerpColor(cfg.Mid, n/0.4)
	} else {
		surface = cfg.Mid.LerpColor(cfg.High, (n-0.4)/0.6)
	}
	return surface.MulScalar(f.Intensity)
}

// shadeOcean is the sea/land threshold variant of the rocky path, with a
// drifting cloud layer. Sampled in object space so the longitude wrap (the
// duplicated u=0/u=1 seam column) shows no discontinuity.
func shadeOcean(cfg *Config, time float32, f heliogl.Fragment) heliogl.Color {
	p := f.ObjPos

	n := noise3(p.X*cfg.Scale, p.Y*cfg.Scale, p.Z*cfg.Scale)
	surface := cfg.Base // water
	if math32.Abs(n) > 0.55-cfg.Amplitude*0.15 {
		surface = cfg.Mid // land
	}

	drift := time * 0.01
	cloud := math32.Abs(math32.Sin(p.X*8+drift) * math32.Cos(p.Z*8+drift))
	cloud = heliogl.Clamp01(cloud-0.5) * 0.9
	surface = surface.LerpColor(cfg.High, cloud)

	return surface.MulScalar(f.Intensity)
}

// shadeGas renders storm belts: bands stretched along latitude with a slow
// drift, plus a fixed vortex. An ambient floor keeps the dark side visible.
func shadeGas(cfg *Config, time float32, f heliogl.Fragment) heliogl.Color {
	y := f.ObjPos.Y + time*0.001
	band := fract(math32.Sin(y*cfg.Scale)*0.5 + 0.5)

	var c heliogl.Color
	switch {
	case band < 0.33:
		c = cfg.Base.LerpColor(cfg.Mid, band/0.33)
	case band < 0.66:
		c = cfg.Mid.LerpColor(cfg.High, (band-0.33)/0.33)
	default:
		c = cfg.High.LerpColor(cfg.Base, (band-0.66)/0.34)
	}

	// Great-spot vortex.
	dx := f.ObjPos.X + 0.2
	dy := f.ObjPos.Y + 0.2
	dist := math32.Sqrt(dx*dx + dy*dy)
	const vortexRadius = 0.3
	spot := (vortexRadius - dist) / vortexRadius
	if spot > 0 {
		c = c.LerpColor(heliogl.RGB(255, 69, 0), spot*spot)
	}

	// Atmospheric scattering floor: the night side never goes fully black.
	i := 0.3 + 0.7*f.Intensity
	return c.MulScalar(i)
}

// shadeBanded is the calmer band pattern for the ringed body itself.
func shadeBanded(cfg *Config, time float32, f heliogl.Fragment) heliogl.Color {
	y := f.ObjPos.Y + time*0.0008
	band := fract(math32.Sin(y*cfg.Scale)*0.5 + 0.5)

	var c heliogl.Color
	switch {
	case band < 0.33:
		c = cfg.Base.LerpColor(cfg.Mid, band/0.33)
	case band < 0.66:
		c = cfg.Mid.LerpColor(cfg.High, (band-0.33)/0.33)
	default:
		c = cfg.High.LerpColor(cfg.Base, (band-0.66)/0.34)
	}
	return c.MulScalar(f.Intensity)
}

// shadeIcy mixes fracture stripes into a pale surface and adds a strong
// specular highlight to read as reflective ice.
func shadeIcy(cfg *Config, time float32, f heliogl.Fragment) heliogl.Color {
	const stripeWidth = 0.15
	combined := f.ObjPos.X*0.7 + f.ObjPos.Y*0.3
	stripe := math32.Abs(math32.Sin(combined / stripeWidth * math32.Pi))
	fracture := (1 - stripe) * (1 - stripe) * (1 - stripe)

	wobble := fbm3(f.ObjPos.X*cfg.Scale, f.ObjPos.Y*cfg.Scale, f.ObjPos.Z*cfg.Scale, cfg.Octaves, 0.5)
	surface := cfg.Base.LerpColor(cfg.High, heliogl.Clamp01(fracture+wobble*cfg.Amplitude))

	// Blinn-less specular: reflect the incoming light about the normal.
	refl := heliogl.Reflect(f.LightDir.Mul(-1), f.Normal)
	spec := heliogl.Clamp01(heliogl.Dot(refl, f.ViewDir))
	spec = math32.Pow(spec, 32)
	surface = surface.LerpColor(heliogl.RGB(255, 255, 255), spec*0.5)

	return surface.MulScalar(f.Intensity)
}

// shadeVolcanic shows glowing lava cracks through dark rock. The emissive
// term is independent of lighting.
func shadeVolcanic(cfg *Config, time float32, f heliogl.Fragment) heliogl.Color {
	p := f.ObjPos
	nx := p.X*cfg.Scale + time*0.1
	ny := p.Y*cfg.Scale - time*0.1
	lavaNoise := fract(math32.Abs(math32.Sin(nx)*math32.Cos(ny)) * 1.5)

	lavaFactor := (lavaNoise - 0.7) / 0.3
	if lavaFactor < 0 {
		lavaFactor = 0
	}

	lava := cfg.High
	surface := cfg.Base.LerpColor(lava, lavaFactor)

	glow := heliogl.Clamp01(lavaFactor * lavaFactor * 0.8)
	glowColor := lava.LerpColor(heliogl.RGB(255, 255, 50), glow)
	surface = surface.LerpColor(glowColor, glow)

	lit := surface.MulScalar(f.Intensity)
	emission := lava.MulScalar(0.8 * lavaFactor)
	return lit.Add(emission)
}

// craters darkens the moon surface; positions and radii are fixed so the
// face is stable frame to frame.
var craters = [...]struct{ x, y, r float32 }{
	{0.1, 0.2, 0.50},
	{-0.3, -0.1, 0.30},
	{0.4, -0.3, 0.20},
	{-0.1, 0.5, 0.40},
	{-0.5, -0.4, 0.25},
	{0.3, 0.4, 0.35},
	{0.1, 0.5, 0.20},
	{0.2, -0.1, 0.25},
	{0.0, -0.6, 0.28},
	{-0.4, 0.2, 0.22},
	{0.5, 0.0, 0.30},
	{-0.2, -0.5, 0.18},
	{0.35, 0.5, 0.24},
	{-0.45, -0.3, 0.20},
}

func shadeMoon(f heliogl.Fragment) heliogl.Color {
	base := heliogl.RGB(169, 169, 169)
	mid := heliogl.RGB(190, 190, 190)
	high := heliogl.RGB(211, 211, 211)

	p := f.ObjPos
	random := hash2(p.X*1.22, p.Y*0.53) * 0.25
	n := math32.Abs(math32.Sin((p.X+random)*12) * math32.Cos((p.Y+random)*12))

	var surface heliogl.Color
	if n < 0.5 {
		surface = base.LerpColor(mid, n/0.5)
	} else {
		surface = mid.LerpColor(high, (n-0.5)/0.5)
	}

	var pit float32
	for _, cr := range craters {
		dx := p.X - cr.x
		dy := p.Y - cr.y
		d := math32.Sqrt(dx*dx + dy*dy)
		t := (cr.r - d) / cr.r
		if t > 0 {
			pit += t * t * t
		}
	}
	surface = surface.LerpColor(heliogl.RGB(100, 100, 100), heliogl.Clamp01(pit))

	return surface.MulScalar(f.Intensity)
}

// shadeRing draws concentric bands across the annulus with a touch of radial
// noise. Unlit on purpose: rings stay readable from any side.
func shadeRing(cfg *Config, f heliogl.Fragment) heliogl.Color {
	radial := f.UV.X
	band := math32.Abs(math32.Sin(radial * 14 * math32.Pi))
	band = band*0.8 + hash2(math32.Floor(radial*14), 0)*0.2
	return cfg.RingColor.LerpColor(cfg.RingShadow, band)
}
