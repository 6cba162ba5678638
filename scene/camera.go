package scene

import (
	"math"

	"github.com/gogpu/sdfmarch"
)

// worldUp is the reference up vector used to derive the camera's
// orthonormal basis.
var worldUp = marcher.V3(0, 1, 0)

// Ray is a world-space ray cast through a pixel.
type Ray struct {
	Origin marcher.Vec3
	Dir    marcher.Vec3
}

// Camera maps pixel coordinates to world-space rays. It derives an
// orthonormal basis (right, up, forward) from Center/LookAt and a
// pixel-scale factor from Fov and the render target dimensions.
type Camera struct {
	Center      marcher.Vec3
	LookAt      marcher.Vec3
	Fov         float32 // radians
	VerticalFov bool

	width, height int

	right, up, forward marcher.Vec3
	pixelScale         float32
}

// NewCamera constructs a camera looking from center toward lookAt with the
// given field of view (radians). Call SetSceneSize before casting rays.
func NewCamera(center, lookAt marcher.Vec3, fov float32, verticalFov bool) *Camera {
	c := &Camera{Center: center, LookAt: lookAt, Fov: fov, VerticalFov: verticalFov}
	c.rebuildBasis()
	return c
}

// rebuildBasis recomputes the orthonormal (right, up, forward) basis from
// Center/LookAt. If forward is parallel to worldUp, falls back to the
// world Z axis as the up reference to avoid a degenerate cross product.
func (c *Camera) rebuildBasis() {
	forward := c.LookAt.Sub(c.Center).Normalize()
	if forward.IsZero() {
		forward = marcher.V3(0, 0, -1)
	}
	upRef := worldUp
	if absf32(forward.Dot(upRef)) > 0.999 {
		upRef = marcher.V3(0, 0, 1)
	}
	right := forward.Cross(upRef).Normalize()
	up := right.Cross(forward).Normalize()

	c.forward = forward
	c.right = right
	c.up = up
}

// SetSceneSize sets the render target dimensions and recomputes the
// pixel-scale factor: fov_scale = 2·tan(fov/2); pixel_scale =
// fov_scale / (vertical ? height : width).
func (c *Camera) SetSceneSize(width, height int) {
	c.width, c.height = width, height
	c.rebuildBasis()

	fovScale := 2 * float32(math.Tan(float64(c.Fov)/2))
	denom := float32(width)
	if c.VerticalFov {
		denom = float32(height)
	}
	if denom == 0 {
		c.pixelScale = 0
		return
	}
	c.pixelScale = fovScale / denom
}

// RayFor returns the world-space ray through pixel (x, y):
// direction = forward + right·((x−w/2)·pixel_scale) − up·((y−h/2)·pixel_scale),
// normalized; origin is the camera center.
func (c *Camera) RayFor(x, y float32) Ray {
	dx := (x - float32(c.width)/2) * c.pixelScale
	dy := (y - float32(c.height)/2) * c.pixelScale

	dir := c.forward.Add(c.right.Mul(dx)).Sub(c.up.Mul(dy)).Normalize()
	return Ray{Origin: c.Center, Dir: dir}
}

// Basis returns the camera's current orthonormal (right, up, forward)
// vectors, mainly for tests and introspection.
func (c *Camera) Basis() (right, up, forward marcher.Vec3) {
	return c.right, c.up, c.forward
}
