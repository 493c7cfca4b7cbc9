package heliogl

import "testing"

// memTarget is an in-memory render target for tests.
type memTarget struct {
	w, h int
	pix  []Color
}

func newMemTarget(w, h int) *memTarget {
	return &memTarget{w: w, h: h, pix: make([]Color, w*h)}
}

func (t *memTarget) Size() (int, int) { return t.w, t.h }

func (t *memTarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.pix[y*t.w+x] = c
}

func (t *memTarget) Clear(c Color) {
	for i := range t.pix {
		t.pix[i] = c
	}
}

func (t *memTarget) at(x, y int) Color { return t.pix[y*t.w+x] }

func (t *memTarget) countNot(c Color) int {
	n := 0
	for _, p := range t.pix {
		if p != c {
			n++
		}
	}
	return n
}

func constantShader(c Color) FragmentShader {
	return func(Fragment) Color { return c }
}

// bigTriangle builds one triangle at world depth z spanning the view.
func bigTriangle(z float32) ([]Vertex, []uint16) {
	return []Vertex{
		{Pos: V3(-3, -3, z), Normal: V3(0, 0, 1)},
		{Pos: V3(3, -3, z), Normal: V3(0, 0, 1)},
		{Pos: V3(0, 4, z), Normal: V3(0, 0, 1)},
	}, []uint16{0, 1, 2}
}

func TestRenderDeterministic(t *testing.T) {
	render := func() *memTarget {
		tgt := newMemTarget(64, 64)
		r := NewRenderer(64, 64, true)
		s := CreateScene(1)
		verts, idx := SphereGeometry(8, 12)
		s.AddMesh(Mesh{
			Vertices: verts,
			Indices:  idx,
			Material: Material{Shader: constantShader(RGB(10, 200, 30))},
		})
		r.Render(tgt, s)
		return tgt
	}

	a, b := render(), render()
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			t.Fatalf("pixel %d differs: %v vs %v", i, a.pix[i], b.pix[i])
		}
	}
	if a.countNot(RGB(0, 0, 0)) == 0 {
		t.Fatal("sphere rendered no pixels")
	}
}

func TestRenderDepthOcclusion(t *testing.T) {
	red := RGB(255, 0, 0)
	blue := RGB(0, 0, 255)

	run := func(nearFirst bool) Color {
		tgt := newMemTarget(64, 64)
		r := NewRenderer(64, 64, true)
		s := CreateScene(2)

		nv, ni := bigTriangle(1) // closer to the z=5 camera
		fv, fi := bigTriangle(-1)
		nearMesh := Mesh{Vertices: nv, Indices: ni, Material: Material{Shader: constantShader(red)}}
		farMesh := Mesh{Vertices: fv, Indices: fi, Material: Material{Shader: constantShader(blue)}}

		if nearFirst {
			s.AddMesh(nearMesh)
			s.AddMesh(farMesh)
		} else {
			s.AddMesh(farMesh)
			s.AddMesh(nearMesh)
		}
		r.Render(tgt, s)
		return tgt.at(32, 32)
	}

	if got := run(true); got != red {
		t.Fatalf("near drawn first: center = %v, want %v", got, red)
	}
	if got := run(false); got != red {
		t.Fatalf("near drawn last: center = %v, want %v", got, red)
	}
}

func TestRenderModes(t *testing.T) {
	clear := RGB(0, 0, 0)
	counts := map[RenderMode]int{}

	for _, mode := range []RenderMode{RenderWireframe, RenderSolidFlat, RenderShaded} {
		tgt := newMemTarget(64, 64)
		r := NewRenderer(64, 64, true)
		r.SetRenderMode(mode)
		s := CreateScene(1)
		verts, idx := bigTriangle(0)
		s.AddMesh(Mesh{
			Vertices: verts,
			Indices:  idx,
			Material: Material{BaseColor: RGB(200, 200, 200), Shader: constantShader(RGB(255, 255, 255))},
		})
		r.Render(tgt, s)
		counts[mode] = tgt.countNot(clear)
	}

	if counts[RenderWireframe] == 0 {
		t.Fatal("wireframe drew nothing")
	}
	if counts[RenderWireframe] >= counts[RenderShaded] {
		t.Fatalf("wireframe %d pixels >= shaded %d; outline should be sparser than fill",
			counts[RenderWireframe], counts[RenderShaded])
	}
	if counts[RenderSolidFlat] == 0 || counts[RenderShaded] == 0 {
		t.Fatalf("fill modes drew nothing: flat=%d shaded=%d",
			counts[RenderSolidFlat], counts[RenderShaded])
	}
}

func TestRenderSkipsDegenerateTriangle(t *testing.T) {
	tgt := newMemTarget(32, 32)
	r := NewRenderer(32, 32, true)
	s := CreateScene(1)
	p := V3(0, 0, 0)
	s.AddMesh(Mesh{
		Vertices: []Vertex{{Pos: p}, {Pos: p}, {Pos: p}},
		Indices:  []uint16{0, 1, 2},
		Material: Material{Shader: constantShader(RGB(255, 0, 0))},
	})
	r.Render(tgt, s)
	if got := tgt.countNot(RGB(0, 0, 0)); got != 0 {
		t.Fatalf("degenerate triangle drew %d pixels", got)
	}
}

func TestRenderRejectsBehindCamera(t *testing.T) {
	tgt := newMemTarget(32, 32)
	r := NewRenderer(32, 32, true)
	s := CreateScene(1)
	verts, idx := bigTriangle(10) // behind the z=5 camera
	s.AddMesh(Mesh{
		Vertices: verts,
		Indices:  idx,
		Material: Material{Shader: constantShader(RGB(255, 0, 0))},
	})
	r.Render(tgt, s)
	if got := tgt.countNot(RGB(0, 0, 0)); got != 0 {
		t.Fatalf("behind-camera triangle drew %d pixels", got)
	}
}

func TestRenderDisabledMeshSkipped(t *testing.T) {
	tgt := newMemTarget(32, 32)
	r := NewRenderer(32, 32, true)
	s := CreateScene(1)
	verts, idx := bigTriangle(0)
	id := s.AddMesh(Mesh{
		Vertices: verts,
		Indices:  idx,
		Material: Material{Shader: constantShader(RGB(255, 0, 0))},
	})
	s.SetMeshEnabled(id, false)
	r.Render(tgt, s)
	if got := tgt.countNot(RGB(0, 0, 0)); got != 0 {
		t.Fatalf("disabled mesh drew %d pixels", got)
	}
}
