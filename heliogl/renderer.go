package heliogl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
	xv       []xformVertex
}

// xformVertex is a vertex after the transform stage.
type xformVertex struct {
	ndc    Vec3
	sx, sy float32
	invW   float32
	obj    Vec3
	world  Vec3
	normal Vec3
	uv     Vec2
	ok     bool // in front of the near plane
}

const nearEpsilon = 1e-6

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderShaded,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := float32(1)
	if h != 0 {
		aspect = float32(w) / float32(h)
	}
	view := s.Camera.View()
	proj := s.Camera.Projection(aspect)
	camPos := s.Camera.Position

	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, proj, view, m, s.Light, camPos)
	})
}

// transformVertices runs the vertex stage for one mesh into the reusable
// scratch buffer.
func (r *Renderer) transformVertices(w, h int, mvp, model, normalMat Mat4, verts []Vertex) {
	if cap(r.xv) < len(verts) {
		r.xv = make([]xformVertex, len(verts))
	} else {
		r.xv = r.xv[:len(verts)]
	}
	for i := range verts {
		v := &verts[i]
		clip := Mat4MulV4(mvp, Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1})
		xv := &r.xv[i]
		xv.ok = clip.W > nearEpsilon
		if !xv.ok {
			continue
		}
		ndc, _ := PerspectiveDivide(clip)
		xv.ndc = ndc
		xv.invW = 1 / clip.W
		xv.sx = (ndc.X*0.5 + 0.5) * float32(w-1)
		xv.sy = (1 - (ndc.Y*0.5 + 0.5)) * float32(h-1)
		xv.obj = v.Pos
		xv.world = Mat4MulPoint(model, v.Pos)
		xv.normal = Normalize(Mat4MulDir(normalMat, v.Normal))
		xv.uv = v.UV
	}
}

func (r *Renderer) renderMesh(t Target, w, h int, proj, view Mat4, m *Mesh, light Light, camPos Vec3) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}

	// Normals use the inverse-transpose so non-uniform scale keeps them
	// perpendicular; singular transforms fall back to the model matrix.
	normalMat := model
	if inv, ok := Mat4Inverse(model); ok {
		normalMat = Mat4Transpose(inv)
	}

	mvp := Mat4Mul(proj, Mat4Mul(view, model))
	r.transformVertices(w, h, mvp, model, normalMat, m.Vertices)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(r.xv) || i1 >= len(r.xv) || i2 >= len(r.xv) {
			continue
		}

		v0 := &r.xv[i0]
		v1 := &r.xv[i1]
		v2 := &r.xv[i2]

		// Whole-triangle clip: behind the near plane, or fully outside one
		// frustum side. Partial triangles rasterize with a clamped bbox.
		if !v0.ok || !v1.ok || !v2.ok {
			continue
		}
		if outsideFrustum(v0.ndc, v1.ndc, v2.ndc) {
			continue
		}

		switch r.Mode {
		case RenderWireframe:
			c := m.Material.BaseColor
			x0, y0 := int(v0.sx+0.5), int(v0.sy+0.5)
			x1, y1 := int(v1.sx+0.5), int(v1.sy+0.5)
			x2, y2 := int(v2.sx+0.5), int(v2.sy+0.5)
			r.drawLine(t, x0, y0, x1, y1, c)
			r.drawLine(t, x1, y1, x2, y2, c)
			r.drawLine(t, x2, y2, x0, y0, c)
		case RenderSolidFlat:
			n := triangleNormal(v0.world, v1.world, v2.world)
			center := v0.world.Add(v1.world).Add(v2.world).Mul(1.0 / 3.0)
			intensity := lightIntensity(light, n, center)
			r.fillTriangle(t, w, h, v0, v1, v2, nil, m.Material.BaseColor.MulScalar(intensity), light, camPos)
		default:
			sh := m.Material.Shader
			if sh == nil {
				n := triangleNormal(v0.world, v1.world, v2.world)
				center := v0.world.Add(v1.world).Add(v2.world).Mul(1.0 / 3.0)
				intensity := lightIntensity(light, n, center)
				r.fillTriangle(t, w, h, v0, v1, v2, nil, m.Material.BaseColor.MulScalar(intensity), light, camPos)
				break
			}
			r.fillTriangle(t, w, h, v0, v1, v2, sh, m.Material.BaseColor, light, camPos)
		}
	}
}

func outsideFrustum(a, b, c Vec3) bool {
	if a.X < -1 && b.X < -1 && c.X < -1 {
		return true
	}
	if a.X > 1 && b.X > 1 && c.X > 1 {
		return true
	}
	if a.Y < -1 && b.Y < -1 && c.Y < -1 {
		return true
	}
	if a.Y > 1 && b.Y > 1 && c.Y > 1 {
		return true
	}
	if a.Z < -1 && b.Z < -1 && c.Z < -1 {
		return true
	}
	if a.Z > 1 && b.Z > 1 && c.Z > 1 {
		return true
	}
	return false
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n, at Vec3) float32 {
	ld := Normalize(l.Pos.Sub(at))
	d := Dot(n, ld)
	if d < 0 {
		d = -d // flat mode has no winding guarantee
	}
	return Clamp01(Clamp01(l.Ambient) + d*Clamp01(l.Diffuse))
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1]; closer fragment wins, first writer
	// keeps ties.
	d := Clamp01(z*0.5 + 0.5)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func edgeF(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// fillTriangle rasterizes one triangle with an edge-function bounding-box
// walk. When sh is nil every pixel gets flat; otherwise attributes are
// interpolated perspective-correctly and sh is invoked per fragment.
//
// Both windings are filled: ring discs are viewed from either face.
func (r *Renderer) fillTriangle(t Target, w, h int, v0, v1, v2 *xformVertex, sh FragmentShader, flat Color, light Light, camPos Vec3) {
	minX := int(min3f(v0.sx, v1.sx, v2.sx))
	maxX := int(max3f(v0.sx, v1.sx, v2.sx)) + 1
	minY := int(min3f(v0.sy, v1.sy, v2.sy))
	maxY := int(max3f(v0.sy, v1.sy, v2.sy)) + 1
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeF(v0.sx, v0.sy, v1.sx, v1.sy, v2.sx, v2.sy)
	if area == 0 {
		return // degenerate
	}
	invArea := 1 / area

	ambient := Clamp01(light.Ambient)
	diffuse := Clamp01(light.Diffuse)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeF(v1.sx, v1.sy, v2.sx, v2.sy, px, py)
			w1 := edgeF(v2.sx, v2.sy, v0.sx, v0.sy, px, py)
			w2 := edgeF(v0.sx, v0.sy, v1.sx, v1.sy, px, py)

			// Normalizing by the signed area makes the inside test
			// winding-independent: all weights land in [0,1].
			a0 := w0 * invArea
			a1 := w1 * invArea
			a2 := w2 * invArea
			if a0 < 0 || a1 < 0 || a2 < 0 {
				continue
			}

			z := a0*v0.ndc.Z + a1*v1.ndc.Z + a2*v2.ndc.Z
			if !r.depthTest(w, x, y, z) {
				continue
			}

			if sh == nil {
				t.SetPixel(x, y, flat)
				continue
			}

			// Perspective-correct weights: scale by 1/w and renormalize.
			iw := a0*v0.invW + a1*v1.invW + a2*v2.invW
			if iw == 0 {
				continue
			}
			p0 := a0 * v0.invW / iw
			p1 := a1 * v1.invW / iw
			p2 := a2 * v2.invW / iw

			obj := v0.obj.Mul(p0).Add(v1.obj.Mul(p1)).Add(v2.obj.Mul(p2))
			world := v0.world.Mul(p0).Add(v1.world.Mul(p1)).Add(v2.world.Mul(p2))
			n := Normalize(v0.normal.Mul(p0).Add(v1.normal.Mul(p1)).Add(v2.normal.Mul(p2)))
			uv := Vec2{
				X: p0*v0.uv.X + p1*v1.uv.X + p2*v2.uv.X,
				Y: p0*v0.uv.Y + p1*v1.uv.Y + p2*v2.uv.Y,
			}

			lightDir := Normalize(light.Pos.Sub(world))
			diff := Dot(n, lightDir)
			if diff < 0 {
				diff = 0
			}

			frag := Fragment{
				ObjPos:    obj,
				World:     world,
				Normal:    n,
				UV:        uv,
				Depth:     z,
				Intensity: Clamp01(ambient + diff*diffuse),
				LightDir:  lightDir,
				ViewDir:   Normalize(camPos.Sub(world)),
			}
			t.SetPixel(x, y, sh(frag))
		}
	}
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3f(a, b, c float32) float32 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3f(a, b, c float32) float32 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
