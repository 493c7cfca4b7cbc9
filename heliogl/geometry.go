package heliogl

import "github.com/chewxy/math32"

// Geometry builders. The returned buffers are built once and shared read-only
// across every mesh that uses the same topology.

// SphereGeometry builds a unit lat/long sphere.
//
// stacks is the number of latitude rows, slices the number of longitude
// columns. UV is (longitude/2π, latitude/π); the normal equals the position
// on the unit sphere.
func SphereGeometry(stacks, slices int) ([]Vertex, []uint16) {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	verts := make([]Vertex, 0, (stacks+1)*(slices+1))
	for st := 0; st <= stacks; st++ {
		theta := math32.Pi * float32(st) / float32(stacks) // 0 at north pole
		y := math32.Cos(theta)
		r := math32.Sin(theta)
		for sl := 0; sl <= slices; sl++ {
			phi := 2 * math32.Pi * float32(sl) / float32(slices)
			p := V3(r*math32.Sin(phi), y, r*math32.Cos(phi))
			verts = append(verts, Vertex{
				Pos:    p,
				Normal: p,
				UV:     V2(float32(sl)/float32(slices), float32(st)/float32(stacks)),
			})
		}
	}

	idx := make([]uint16, 0, stacks*slices*6)
	cols := slices + 1
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			a := uint16(st*cols + sl)
			b := uint16((st+1)*cols + sl)
			idx = append(idx,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}
	return verts, idx
}

// RingGeometry builds a flat annulus in the XZ plane.
//
// UV.X is the radial fraction (0 at the inner edge, 1 at the outer edge) and
// UV.Y the angular fraction. The normal is +Y; the renderer draws both faces.
func RingGeometry(inner, outer float32, segments int) ([]Vertex, []uint16) {
	if inner < 0 {
		inner = 0
	}
	if outer <= inner {
		outer = inner + 1
	}
	if segments < 3 {
		segments = 3
	}

	up := V3(0, 1, 0)
	verts := make([]Vertex, 0, (segments+1)*2)
	for s := 0; s <= segments; s++ {
		frac := float32(s) / float32(segments)
		phi := 2 * math32.Pi * frac
		c := math32.Cos(phi)
		sn := math32.Sin(phi)
		verts = append(verts,
			Vertex{Pos: V3(inner*c, 0, inner*sn), Normal: up, UV: V2(0, frac)},
			Vertex{Pos: V3(outer*c, 0, outer*sn), Normal: up, UV: V2(1, frac)},
		)
	}

	idx := make([]uint16, 0, segments*6)
	for s := 0; s < segments; s++ {
		i0 := uint16(s * 2)
		idx = append(idx,
			i0, i0+1, i0+2,
			i0+2, i0+1, i0+3,
		)
	}
	return verts, idx
}
