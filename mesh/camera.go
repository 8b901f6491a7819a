package mesh

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera. The pick buffer must be rendered with the
// same camera as the visible frame.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3

	// FovY is the vertical field of view in degrees.
	FovY      float32
	Near, Far float32
}

// DefaultCamera looks at the origin from +Z.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 0, 5},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   45,
		Near:   0.1,
		Far:    100,
	}
}

// View returns the view matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

// Projection returns the projection matrix for a w×h viewport.
func (c Camera) Projection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Project maps a world position to window coordinates of a w×h viewport
// with the origin at the top-left, as used by pick buffers.
func (c Camera) Project(v mgl32.Vec3, w, h int) (x, y float32) {
	win := mgl32.Project(v, c.View(), c.Projection(w, h), 0, 0, w, h)
	return win.X(), float32(h) - win.Y()
}
