package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Eye towards Target.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// Projection parameters
	FOV         float32 // Vertical field of view in radians
	AspectRatio float32 // Width / Height
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane

	viewProj mgl32.Mat4
	dirty    bool
}

// NewCamera creates a camera at (0, 0, 4) looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Eye:         mgl32.Vec3{0, 0, 4},
		Up:          mgl32.Vec3{0, 1, 0},
		FOV:         math.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         100,
		dirty:       true,
	}
}

// SetPosition moves the camera eye.
func (c *Camera) SetPosition(eye mgl32.Vec3) {
	c.Eye = eye
	c.dirty = true
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
	c.dirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float32) {
	c.AspectRatio = aspect
	c.dirty = true
}

// ViewProjection returns the combined view-projection matrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	if c.dirty {
		view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
		proj := mgl32.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.viewProj = proj.Mul4(view)
		c.dirty = false
	}
	return c.viewProj
}

// Project transforms a world point to screen coordinates on a width x height
// target. ok is false if the point is behind the camera or outside the
// clip volume.
func (c *Camera) Project(p mgl32.Vec3, width, height int) (x, y float32, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}

	x = (ndc.X() + 1) * 0.5 * float32(width)
	y = (1 - ndc.Y()) * 0.5 * float32(height) // Y is flipped
	return x, y, true
}
