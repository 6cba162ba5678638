// Package trace implements sphere tracing: marching rays through a scene's
// signed-distance field to find surface hits, estimating normals, and
// shading the result.
package trace

import (
	"math"

	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
)

// Hit describes the result of marching a ray into a scene.
type Hit struct {
	Found           bool
	Point           marcher.Vec3
	T               float32
	MinDistanceSeen float32
}

// March sphere-traces ray through s up to maxLength, spec.md §4.4. Starts
// at t = MIN_STEP and steps by the scene's local distance estimate at each
// point, terminating on a hit (|d| < MIN_STEP) or a step budget
// (StepLimit) in addition to maxLength — whichever comes first.
// MinDistanceSeen is the smallest distance observed along the march, which
// a caller can use to render object outlines even on a miss.
func March(s *scene.Scene, ray scene.Ray, maxLength float32) Hit {
	t := float32(marcher.MinStep)
	minDistance := float32(math.Inf(1))

	for steps := 0; t < maxLength; steps++ {
		p := ray.Origin.Add(ray.Dir.Mul(t))
		d := s.MinDistance(p)
		if d < minDistance {
			minDistance = d
		}

		if absf32(d) < marcher.MinStep || steps > marcher.StepLimit {
			return Hit{Found: true, Point: p, T: t, MinDistanceSeen: minDistance}
		}
		t += d
	}

	return Hit{Found: false, MinDistanceSeen: minDistance}
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
