package scene

import (
	"math"

	"github.com/gogpu/sdfmarch"
)

// ObjectKind identifies which RenderObject variant a value holds:
// Sphere(radius), Plane(normal, height), Cube(half-extents),
// Custom(function: point→scalar), or Composite.
type ObjectKind int

const (
	ObjectSphere ObjectKind = iota
	ObjectPlane
	ObjectCube
	ObjectCustom
	ObjectComposite
)

// CustomDistanceFunc computes a signed distance in object-local space.
// Implementations are expected to be Lipschitz-1 so sphere tracing
// converges correctly.
type CustomDistanceFunc func(marcher.Vec3) float32

// SurfaceInfo controls how a surface reflects light.
type SurfaceInfo struct {
	// Albedo scales the direct-lighting contribution. Defaults to 1.
	Albedo float32
	// Metallic tints reflections by the surface color. Defaults to 0.
	Metallic float32
	// Dielectric adds uncolored reflection. Defaults to 0.
	Dielectric float32
}

// DefaultSurfaceInfo returns the default surface: albedo 1, metallic 0,
// dielectric 0.
func DefaultSurfaceInfo() SurfaceInfo {
	return SurfaceInfo{Albedo: 1}
}

// RenderObject is a tagged-variant SDF primitive or CSG composite. Every
// RenderObject caches both its forward transform and its inverse
// (inverse*forward = identity within 1e-5); the inverse is recomputed
// whenever SetTransform is called.
type RenderObject struct {
	Kind ObjectKind

	Material *Material
	Surface  SurfaceInfo

	// Sphere
	Radius float32

	// Plane: Normal is assumed unit.
	Normal marcher.Vec3
	Height float32

	// Cube
	HalfExtents marcher.Vec3

	// Custom
	DistanceFn CustomDistanceFunc

	// Composite
	Composite *Composite

	transform marcher.Transform
	inverse   marcher.Transform
}

func newObject(kind ObjectKind) *RenderObject {
	return &RenderObject{
		Kind:      kind,
		Surface:   DefaultSurfaceInfo(),
		transform: marcher.Identity(),
		inverse:   marcher.Identity(),
	}
}

// NewSphere creates a sphere of the given radius centered at local origin.
func NewSphere(radius float32) *RenderObject {
	o := newObject(ObjectSphere)
	o.Radius = radius
	return o
}

// NewPlane creates an infinite plane with the given (assumed unit) normal
// and signed height offset from the origin.
func NewPlane(normal marcher.Vec3, height float32) *RenderObject {
	o := newObject(ObjectPlane)
	o.Normal = normal
	o.Height = height
	return o
}

// NewCube creates an axis-aligned box with the given half-extents.
func NewCube(halfExtents marcher.Vec3) *RenderObject {
	o := newObject(ObjectCube)
	o.HalfExtents = halfExtents
	return o
}

// NewCustomObject creates an object whose distance function is supplied by
// the caller. fn must be Lipschitz-1 for correct sphere tracing.
func NewCustomObject(fn CustomDistanceFunc) *RenderObject {
	o := newObject(ObjectCustom)
	o.DistanceFn = fn
	return o
}

// NewComposite creates a CSG combinator object over the given children.
// Panics if children is empty: constructing one with zero children is a
// programming error in the scene builder, not a runtime condition to
// tolerate silently.
func NewComposite(op CompositeOp, k float32, children ...*RenderObject) *RenderObject {
	if len(children) == 0 {
		panic("scene: composite must contain at least one child")
	}
	o := newObject(ObjectComposite)
	o.Composite = &Composite{Op: op, K: k, Children: children}
	return o
}

// SetTransform assigns the object's transform and recomputes its cached
// inverse. Degenerate transforms fall back to identity, logged by
// [marcher.Transform.Invert].
func (o *RenderObject) SetTransform(t marcher.Transform) {
	o.transform = t
	o.inverse = t.Invert()
}

// Transform returns the object's current transform.
func (o *RenderObject) Transform() marcher.Transform { return o.transform }

// Distance returns the signed distance to the surface, in object-local
// space (i.e. point has already been mapped through the object's inverse
// transform, and through any enclosing composite's local frame).
func (o *RenderObject) Distance(point marcher.Vec3) float32 {
	switch o.Kind {
	case ObjectSphere:
		return point.Length() - o.Radius
	case ObjectPlane:
		return o.Normal.Dot(point) - o.Height
	case ObjectCube:
		d := point.Abs().Sub(o.HalfExtents)
		outside := marcher.MaxV(d, marcher.Vec3Zero)
		inside := min32(d.MaxComponent(), 0)
		return outside.Length() + inside
	case ObjectCustom:
		if o.DistanceFn == nil {
			return float32(math.Inf(1))
		}
		return o.DistanceFn(point)
	case ObjectComposite:
		return o.Composite.distance(point)
	default:
		return float32(math.Inf(1))
	}
}

// TransformedDistance applies the object's cached inverse transform to
// worldPoint before evaluating Distance: external callers always go
// through this rather than Distance directly.
func (o *RenderObject) TransformedDistance(worldPoint marcher.Vec3) float32 {
	return o.Distance(o.inverse.ApplyPoint(worldPoint))
}

// ColorAt returns the object's color in object-local space (see Distance
// for the meaning of "local"). A RenderObject without a bound material
// reports white. Composite color ignores the composite's own material
// binding even if one were set; it is purely the children's
// distance-weighted blend.
func (o *RenderObject) ColorAt(point marcher.Vec3) marcher.Color {
	if o.Kind == ObjectComposite {
		return o.Composite.color(point)
	}
	if o.Material == nil {
		return marcher.White
	}
	return o.Material.Sample(point)
}

// TransformedColor applies the object's cached inverse transform to
// worldPoint before evaluating ColorAt.
func (o *RenderObject) TransformedColor(worldPoint marcher.Vec3) marcher.Color {
	return o.ColorAt(o.inverse.ApplyPoint(worldPoint))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
