package heliogl

// Fragment is the interpolated per-pixel input to a FragmentShader.
//
// Attributes are interpolated perspective-correctly across the triangle.
// ObjPos is the object-space position, the stable domain for procedural
// surface functions; World, Normal, LightDir and ViewDir are world space.
type Fragment struct {
	ObjPos Vec3
	World  Vec3
	Normal Vec3
	UV     Vec2
	Depth  float32

	// Intensity is the precomputed directional-light term
	// clamp01(ambient + diffuse·max(0, n·l)).
	Intensity float32
	// LightDir points from the surface toward the light.
	LightDir Vec3
	// ViewDir points from the surface toward the camera.
	ViewDir Vec3
}

// FragmentShader computes the final color of one fragment.
type FragmentShader func(f Fragment) Color

// Material is a minimal surface description.
//
// When Shader is nil the renderer falls back to flat BaseColor shading.
type Material struct {
	BaseColor Color
	Shader    FragmentShader
}

// Light is a single point light. Direction toward each surface is derived
// from Pos per fragment; nothing is hardcoded per object.
type Light struct {
	Pos     Vec3
	Ambient float32 // 0..1
	Diffuse float32 // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// Perspective.
	FOVYRad float32

	// Orthographic (half-height).
	OrthoSize float32

	Near float32
	Far  float32
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		top := size
		bottom := -size
		right := size * aspect
		left := -right
		return Mat4Ortho(left, right, bottom, top, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = 1.0
		}
		return Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Vertex is a mesh vertex. UV is the parametric surface coordinate used to
// seed procedural noise consistently across instances of the same mesh.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	UV     Vec2
	Color  Color
}

// Mesh is a triangle mesh with an object transform.
//
// Vertex and index buffers are treated as immutable by the renderer and may
// be shared between meshes.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform Mat4
	Material  Material
}

// Scene is a collection of objects to render under one camera and light.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:     CameraPerspective,
			Position: V3(0, 0, 5),
			Target:   V3(0, 0, 0),
			Up:       V3(0, 1, 0),
			FOVYRad:  0.785398, // 45°
			Near:     0.1,
			Far:      1000,

			OrthoSize: 1,
		},
		Light: Light{
			Pos:     V3(8, 6, 10),
			Ambient: 0.15,
			Diffuse: 0.85,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Transform = m
}

// UpdateMeshShader updates a mesh fragment shader by id.
func (s *Scene) UpdateMeshShader(id int, sh FragmentShader) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Material.Shader = sh
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
