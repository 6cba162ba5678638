package scene

import (
	"math"

	"github.com/gogpu/sdfmarch"
)

// MaterialKind identifies which variant a Material holds: SolidColor,
// Checker(c0,c1), Gradient(c0,c1), or Custom(function: point→color).
// Tagged variants keep the hot color lookup devirtualized instead of
// dispatching through an interface on every shaded pixel.
type MaterialKind int

const (
	MaterialSolidColor MaterialKind = iota
	MaterialChecker
	MaterialGradient
	MaterialCustom
)

// CustomColorFunc samples a color at a point in the material's local space.
// Implementations should be cheap: called once per shaded pixel (and again
// per reflection/shadow bounce).
type CustomColorFunc func(marcher.Vec3) marcher.Color

// Material binds a color-at-point rule to an optional local transform.
// Color sampling happens in material-local coordinates: the point passed
// to a RenderObject's color query is transformed by the material's cached
// inverse transform before Sample dispatches on Kind.
type Material struct {
	Kind MaterialKind

	// C0, C1 are the two colors used by Checker and Gradient variants.
	C0, C1 marcher.Color

	// Fn is the user function backing MaterialCustom.
	Fn CustomColorFunc

	transform marcher.Transform
	inverse   marcher.Transform
}

// NewSolidColorMaterial creates a material that always returns c.
func NewSolidColorMaterial(c marcher.Color) *Material {
	return &Material{Kind: MaterialSolidColor, C0: c, transform: marcher.Identity(), inverse: marcher.Identity()}
}

// NewCheckerMaterial creates a two-color checkerboard material.
func NewCheckerMaterial(c0, c1 marcher.Color) *Material {
	return &Material{Kind: MaterialChecker, C0: c0, C1: c1, transform: marcher.Identity(), inverse: marcher.Identity()}
}

// NewGradientMaterial creates a radial gradient material between c0 and c1.
func NewGradientMaterial(c0, c1 marcher.Color) *Material {
	return &Material{Kind: MaterialGradient, C0: c0, C1: c1, transform: marcher.Identity(), inverse: marcher.Identity()}
}

// NewCustomMaterial creates a material backed by an arbitrary function.
func NewCustomMaterial(fn CustomColorFunc) *Material {
	return &Material{Kind: MaterialCustom, Fn: fn, transform: marcher.Identity(), inverse: marcher.Identity()}
}

// SetTransform assigns the material's local transform and recomputes its
// cached inverse. A degenerate transform falls back to identity (logged by
// [marcher.Transform.Invert]); the cache is always fresh immediately after
// this call returns.
func (m *Material) SetTransform(t marcher.Transform) {
	m.transform = t
	m.inverse = t.Invert()
}

// Transform returns the material's current local transform.
func (m *Material) Transform() marcher.Transform { return m.transform }

// Sample returns the color at worldPoint, first mapping it into
// material-local space via the cached inverse transform.
func (m *Material) Sample(worldPoint marcher.Vec3) marcher.Color {
	p := m.inverse.ApplyPoint(worldPoint)
	switch m.Kind {
	case MaterialSolidColor:
		return m.C0
	case MaterialChecker:
		fx := math.Floor(float64(p.X))
		fy := math.Floor(float64(p.Y))
		fz := math.Floor(float64(p.Z))
		sum := int64(fx) + int64(fy) + int64(fz)
		if sum%2 == 0 {
			return m.C0
		}
		return m.C1
	case MaterialGradient:
		mag := float64(p.Length())
		_, frac := math.Modf(mag)
		if frac < 0 {
			frac += 1
		}
		return m.C0.Lerp(m.C1, float32(frac))
	case MaterialCustom:
		if m.Fn == nil {
			return marcher.White
		}
		return m.Fn(p)
	default:
		return marcher.White
	}
}
