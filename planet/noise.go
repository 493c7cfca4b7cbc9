// Package planet implements the procedural surface shaders for each celestial
// body type, driven by deterministic noise over the mesh's parametric
// coordinates. No texture assets and no random state: the same input always
// produces the same color.
package planet

import "github.com/chewxy/math32"

func fract(v float32) float32 {
	return v - math32.Floor(v)
}

// hash2 is a stateless pseudo-random value in [0,1) for a 2D coordinate.
func hash2(x, y float32) float32 {
	return fract(math32.Sin(x*12.9898+y*78.233) * 43758.5453)
}

// noise3 is a cheap coherent noise built from incommensurate trig products,
// roughly in [-1,1].
func noise3(x, y, z float32) float32 {
	n1 := math32.Sin(x*3.14159) * math32.Cos(y*2.71828) * math32.Sin(z*1.41421)
	n2 := math32.Sin(x*1.73205) * math32.Sin(y*2.23607) * math32.Cos(z*3.16227)
	n3 := math32.Cos(x*2.44949) * math32.Sin(y*1.61803) * math32.Sin(z*2.64575)
	return (n1 + n2*0.5 + n3*0.25) / 1.75
}

// fbm3 sums octaves of noise3 with doubling frequency and a per-octave gain,
// normalized back to roughly [-1,1].
func fbm3(x, y, z float32, octaves int, gain float32) float32 {
	if octaves < 1 {
		octaves = 1
	}
	var sum, amp, norm float32
	amp = 1
	freq := float32(1)
	for o := 0; o < octaves; o++ {
		sum += noise3(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= gain
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// ridge3 folds noise3 into sharp crests in [0,1].
func ridge3(x, y, z float32) float32 {
	return 1 - math32.Abs(noise3(x, y, z))
}
