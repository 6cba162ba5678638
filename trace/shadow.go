package trace

import (
	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
)

// ShadowMarch casts a shadow ray through s up to maxLength and returns a
// penumbra factor in [0,1], spec.md §4.5: 0 means fully occluded; the
// running minimum of penumbraK·d/t produces a soft-edged shadow rather
// than a binary one.
func ShadowMarch(s *scene.Scene, ray scene.Ray, maxLength, penumbraK float32) float32 {
	shadow := float32(1)
	t := float32(0)

	for t < maxLength {
		p := ray.Origin.Add(ray.Dir.Mul(t))
		d := s.MinDistance(p)
		if d < marcher.MinStep {
			return 0
		}
		if v := penumbraK * d / t; v < shadow {
			shadow = v
		}
		t += d
	}

	return shadow
}
