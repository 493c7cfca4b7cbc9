// Package heliogl provides a small, predictable software 3D engine for Helios.
//
// It is intended for interactive visualization of a handful of meshes: spheres,
// ring discs, and similar low-poly shapes, viewed through an orbit camera.
// It is not a game engine and does not provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Fragment shading → Frame output.
//
// The renderer is software-only and draws into a caller-provided Target. Meshes
// may carry a per-fragment shader; attributes (normal, UV, object position) are
// interpolated perspective-correctly before the shader runs. The render hot
// path reuses internal buffers and avoids allocations.
//
// All math is float32 and all angles are radians.
package heliogl
