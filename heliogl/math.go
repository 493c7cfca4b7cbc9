package heliogl

import "github.com/chewxy/math32"

// Vec2 is a 2D vector, used for parametric surface coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4D homogeneous vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 [16]float32

func V2(x, y float32) Vec2    { return Vec2{X: x, Y: y} }
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) float32 {
	return math32.Sqrt(Dot(v, v))
}

// Normalize returns the unit vector of v, or the zero vector when v has zero
// length. Callers never see NaN.
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// Reflect returns the reflection of incident vector i about normal n.
// n is assumed to be unit length.
func Reflect(i, n Vec3) Vec3 {
	return i.Sub(n.Mul(2 * Dot(i, n)))
}

func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t (not clamped).
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mat4MulPoint transforms a point (w=1) and drops the homogeneous coordinate.
func Mat4MulPoint(m Mat4, v Vec3) Vec3 {
	p := Mat4MulV4(m, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Mat4MulDir transforms a direction (w=0).
func Mat4MulDir(m Mat4, v Vec3) Vec3 {
	p := Mat4MulV4(m, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 0})
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

func Mat4RotateX(rad float32) Mat4 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateY(rad float32) Mat4 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateZ(rad float32) Mat4 {
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateAxis builds a rotation of rad radians about an arbitrary axis
// (Rodrigues form). A zero axis yields the identity.
func Mat4RotateAxis(axis Vec3, rad float32) Mat4 {
	a := Normalize(axis)
	if a == (Vec3{}) {
		return Mat4Identity()
	}
	c := math32.Cos(rad)
	s := math32.Sin(rad)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	f := Normalize(target.Sub(eye))
	s := Normalize(Cross(f, up))
	u := Cross(s, f)

	// Column-major.
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-Dot(s, eye), -Dot(u, eye), Dot(f, eye), 1,
	}
}

func Mat4Perspective(fovYRad, aspect, zNear, zFar float32) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / math32.Tan(fovYRad/2)
	nf := 1 / (zNear - zFar)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zFar + zNear) * nf, -1,
		0, 0, (2 * zFar * zNear) * nf, 0,
	}
}

func Mat4Ortho(left, right, bottom, top, zNear, zFar float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 {
		rl = 1
	}
	if tb == 0 {
		tb = 1
	}
	if fn == 0 {
		fn = 1
	}
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(zFar + zNear) / fn, 1,
	}
}

func Mat4Transpose(m Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[row*4+col] = m[col*4+row]
		}
	}
	return out
}

// det2 pairs used by Mat4Determinant and Mat4Inverse.
func mat4Cofactors(m Mat4) (b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 float32) {
	b00 = m[0]*m[5] - m[1]*m[4]
	b01 = m[0]*m[6] - m[2]*m[4]
	b02 = m[0]*m[7] - m[3]*m[4]
	b03 = m[1]*m[6] - m[2]*m[5]
	b04 = m[1]*m[7] - m[3]*m[5]
	b05 = m[2]*m[7] - m[3]*m[6]
	b06 = m[8]*m[13] - m[9]*m[12]
	b07 = m[8]*m[14] - m[10]*m[12]
	b08 = m[8]*m[15] - m[11]*m[12]
	b09 = m[9]*m[14] - m[10]*m[13]
	b10 = m[9]*m[15] - m[11]*m[13]
	b11 = m[10]*m[15] - m[11]*m[14]
	return
}

func Mat4Determinant(m Mat4) float32 {
	b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 := mat4Cofactors(m)
	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Mat4Inverse returns the inverse of m. ok is false for singular matrices,
// in which case the identity is returned.
func Mat4Inverse(m Mat4) (inv Mat4, ok bool) {
	b00, b01, b02, b03, b04, b05, b06, b07, b08, b09, b10, b11 := mat4Cofactors(m)

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return Mat4Identity(), false
	}
	d := 1 / det

	inv[0] = (m[5]*b11 - m[6]*b10 + m[7]*b09) * d
	inv[1] = (m[2]*b10 - m[1]*b11 - m[3]*b09) * d
	inv[2] = (m[13]*b05 - m[14]*b04 + m[15]*b03) * d
	inv[3] = (m[10]*b04 - m[9]*b05 - m[11]*b03) * d
	inv[4] = (m[6]*b08 - m[4]*b11 - m[7]*b07) * d
	inv[5] = (m[0]*b11 - m[2]*b08 + m[3]*b07) * d
	inv[6] = (m[14]*b02 - m[12]*b05 - m[15]*b01) * d
	inv[7] = (m[8]*b05 - m[10]*b02 + m[11]*b01) * d
	inv[8] = (m[4]*b10 - m[5]*b08 + m[7]*b06) * d
	inv[9] = (m[1]*b08 - m[0]*b10 - m[3]*b06) * d
	inv[10] = (m[12]*b04 - m[13]*b02 + m[15]*b00) * d
	inv[11] = (m[9]*b02 - m[8]*b04 - m[11]*b00) * d
	inv[12] = (m[5]*b07 - m[4]*b09 - m[6]*b06) * d
	inv[13] = (m[0]*b09 - m[1]*b07 + m[2]*b06) * d
	inv[14] = (m[13]*b01 - m[12]*b03 - m[14]*b00) * d
	inv[15] = (m[8]*b03 - m[9]*b01 + m[10]*b00) * d
	return inv, true
}

// PerspectiveDivide maps a clip-space position to normalized device
// coordinates. ok is false when w is zero (point at the camera plane).
func PerspectiveDivide(p Vec4) (Vec3, bool) {
	if p.W == 0 {
		return Vec3{}, false
	}
	inv := 1 / p.W
	return Vec3{X: p.X * inv, Y: p.Y * inv, Z: p.Z * inv}, true
}
