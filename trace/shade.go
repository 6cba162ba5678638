package trace

import (
	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
)

// TraceColor marches ray through s and shades the result, spec.md §4.7,
// recursing into reflections up to depth bounces. Reaching depth 0 returns
// black; a ray that misses every object returns background.
func TraceColor(s *scene.Scene, ray scene.Ray, depth int, background marcher.Color) marcher.Color {
	if depth <= 0 {
		return marcher.Black
	}

	hit := March(s, ray, marcher.MaxLength)
	if !hit.Found {
		return background
	}

	obj, _ := s.Nearest(hit.Point)
	if obj == nil {
		return background
	}

	normal := EstimateNormal(s, hit.Point)
	surfaceColor := obj.TransformedColor(hit.Point)

	return shadeHit(s, ray, hit.Point, normal, surfaceColor, obj.Surface, depth, background)
}

// shadeHit implements spec.md §4.7 steps 1-3: an optional reflection
// bounce blended by metallic/dielectric, plus each light's albedo-scaled,
// shadow-gated contribution. The result is not clamped; clamping happens
// only at the framebuffer boundary.
func shadeHit(
	s *scene.Scene,
	ray scene.Ray,
	point, normal marcher.Vec3,
	surfaceColor marcher.Color,
	surface scene.SurfaceInfo,
	depth int,
	background marcher.Color,
) marcher.Color {
	const epsilon = 1e-6

	var result marcher.Color

	if absf32(surface.Dielectric) > epsilon || absf32(surface.Metallic) > epsilon {
		reflectDir := reflect(ray.Dir, normal)
		origin := point.Add(normal.Mul(marcher.SecondaryOffset))
		reflected := TraceColor(s, scene.Ray{Origin: origin, Dir: reflectDir}, depth-1, background)

		result = result.Add(reflected.MulC(surfaceColor).Mul(surface.Metallic))
		result = result.Add(reflected.Mul(surface.Dielectric))
	}

	for _, light := range s.Lights {
		if !light.CastsShadow() {
			result = result.Add(light.Contribution(point, normal).MulC(surfaceColor).Mul(surface.Albedo))
			continue
		}

		dir, dist := light.DirectionAndDistance(point)
		shadowOrigin := point.Add(normal.Mul(marcher.SecondaryOffset))
		shadow := ShadowMarch(s, scene.Ray{Origin: shadowOrigin, Dir: dir}, dist, marcher.ShadowPenumbraK)
		if shadow <= 0 {
			continue
		}

		contribution := light.Contribution(point, normal).MulC(surfaceColor).Mul(surface.Albedo * shadow)
		result = result.Add(contribution)
	}

	return result
}

// reflect computes the reflection of incoming direction v off unit normal
// n, spec.md §4.7: r = v - 2·(v·n)·n, renormalized.
func reflect(v, n marcher.Vec3) marcher.Vec3 {
	r := v.Sub(n.Mul(2 * v.Dot(n)))
	return r.Normalize()
}
