package scene

import "github.com/gogpu/sdfmarch"

// LightKind identifies which Light variant a value holds: Ambient(color),
// Point(position, color), or Directional(direction_unit, color).
type LightKind int

const (
	LightAmbient LightKind = iota
	LightPoint
	LightDirectional
)

// Light is a tagged-variant scene light. Position is meaningful only for
// Point; DirectionUnit only for Directional and is expected unit-length.
type Light struct {
	Kind          LightKind
	Color         marcher.Color
	Position      marcher.Vec3
	DirectionUnit marcher.Vec3
}

// NewAmbientLight returns a light that contributes color unconditionally
// and never casts a shadow.
func NewAmbientLight(color marcher.Color) Light {
	return Light{Kind: LightAmbient, Color: color}
}

// NewPointLight returns a light at position that casts shadows.
func NewPointLight(position marcher.Vec3, color marcher.Color) Light {
	return Light{Kind: LightPoint, Color: color, Position: position}
}

// NewDirectionalLight returns a light shining along directionUnit (the
// direction the light travels, not the direction toward the light) that
// does not cast shadows.
func NewDirectionalLight(directionUnit marcher.Vec3, color marcher.Color) Light {
	return Light{Kind: LightDirectional, Color: color, DirectionUnit: directionUnit}
}

// CastsShadow reports whether this light's contribution should be gated by
// a shadow march.
func (l Light) CastsShadow() bool {
	return l.Kind == LightPoint
}

// Contribution returns the light's radiance at a surface point with the
// given unit normal. Point and Directional both return black when the
// surface faces away from the light.
func (l Light) Contribution(point, normal marcher.Vec3) marcher.Color {
	switch l.Kind {
	case LightAmbient:
		return l.Color
	case LightPoint:
		toLight := l.Position.Sub(point).Normalize()
		angle := normal.Dot(toLight)
		if angle <= 0 {
			return marcher.Black
		}
		return l.Color.Mul(angle)
	case LightDirectional:
		angle := normal.Dot(l.DirectionUnit.Neg())
		if angle <= 0 {
			return marcher.Black
		}
		return l.Color.Mul(angle)
	default:
		return marcher.Black
	}
}

// DirectionAndDistance returns the unit direction from point toward this
// light, and the distance to travel along it, for use when casting a
// shadow ray. Only meaningful for Point lights.
func (l Light) DirectionAndDistance(point marcher.Vec3) (direction marcher.Vec3, distance float32) {
	delta := l.Position.Sub(point)
	distance = delta.Length()
	if distance == 0 {
		return marcher.Vec3Zero, 0
	}
	return delta.Div(distance), distance
}
