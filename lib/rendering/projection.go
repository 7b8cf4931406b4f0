package rendering

import "github.com/go-gl/mathgl/mgl32"

// Projection maps pixel coordinates, origin at the top left, to clip space.
// Depth values in [-depth, depth] stay inside the view volume; depth is
// clamped to at least 1 so that an empty scene still gets a usable matrix.
func Projection(width, height int, depth float32) mgl32.Mat4 {
	if depth < 1 {
		depth = 1
	}
	return mgl32.Ortho(0, float32(width), float32(height), 0, -depth, depth)
}
