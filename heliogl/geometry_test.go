package heliogl

import "testing"

func TestSphereGeometry(t *testing.T) {
	const stacks, slices = 8, 12
	verts, idx := SphereGeometry(stacks, slices)

	if want := (stacks + 1) * (slices + 1); len(verts) != want {
		t.Fatalf("vertices = %d, want %d", len(verts), want)
	}
	if want := stacks * slices * 6; len(idx) != want {
		t.Fatalf("indices = %d, want %d", len(idx), want)
	}
	if len(idx)%3 != 0 {
		t.Fatalf("index count %d not a triangle list", len(idx))
	}

	for i, v := range verts {
		if got := Len(v.Pos); !near(got, 1) {
			t.Fatalf("vertex %d radius = %v, want 1", i, got)
		}
		if got := Len(v.Normal); !near(got, 1) {
			t.Fatalf("vertex %d normal length = %v, want 1", i, got)
		}
		if v.UV.X < 0 || v.UV.X > 1 || v.UV.Y < 0 || v.UV.Y > 1 {
			t.Fatalf("vertex %d uv = %v out of [0,1]", i, v.UV)
		}
	}

	for i, ix := range idx {
		if int(ix) >= len(verts) {
			t.Fatalf("index %d = %d out of range (%d vertices)", i, ix, len(verts))
		}
	}
}

func TestSphereGeometryClampsDegenerateArgs(t *testing.T) {
	verts, idx := SphereGeometry(0, 0)
	if len(verts) == 0 || len(idx) == 0 {
		t.Fatalf("degenerate args produced empty geometry: %d verts %d indices", len(verts), len(idx))
	}
}

func TestRingGeometry(t *testing.T) {
	const inner, outer float32 = 1.3, 2.2
	const segments = 24
	verts, idx := RingGeometry(inner, outer, segments)

	if want := (segments + 1) * 2; len(verts) != want {
		t.Fatalf("vertices = %d, want %d", len(verts), want)
	}
	if want := segments * 6; len(idx) != want {
		t.Fatalf("indices = %d, want %d", len(idx), want)
	}

	for i, v := range verts {
		if v.Pos.Y != 0 {
			t.Fatalf("vertex %d y = %v, want 0", i, v.Pos.Y)
		}
		r := Len(v.Pos)
		if !near(r, inner) && !near(r, outer) {
			t.Fatalf("vertex %d radius = %v, want %v or %v", i, r, inner, outer)
		}
		if v.Normal != V3(0, 1, 0) {
			t.Fatalf("vertex %d normal = %v, want +Y", i, v.Normal)
		}
		// Inner edge carries UV.X 0, outer edge 1.
		if near(r, inner) && v.UV.X != 0 {
			t.Fatalf("inner vertex %d uv.x = %v, want 0", i, v.UV.X)
		}
		if near(r, outer) && v.UV.X != 1 {
			t.Fatalf("outer vertex %d uv.x = %v, want 1", i, v.UV.X)
		}
	}
}

func TestRingGeometryRepairsRadii(t *testing.T) {
	verts, _ := RingGeometry(2, 1, 8)
	var maxR float32
	for _, v := range verts {
		if r := Len(v.Pos); r > maxR {
			maxR = r
		}
	}
	if maxR <= 2 {
		t.Fatalf("outer radius = %v, want > inner", maxR)
	}
}
