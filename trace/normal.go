package trace

import (
	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
)

// normalEpsilon is the central-difference step used to estimate surface
// normals, spec.md §4.6 ("epsilon = 10·MIN_STEP").
const normalEpsilon = 10 * marcher.MinStep

// EstimateNormal computes the unit surface normal at p via a central
// difference of the scene's distance field along each axis, spec.md §4.6.
func EstimateNormal(s *scene.Scene, p marcher.Vec3) marcher.Vec3 {
	ex := marcher.V3(normalEpsilon, 0, 0)
	ey := marcher.V3(0, normalEpsilon, 0)
	ez := marcher.V3(0, 0, normalEpsilon)

	nx := s.MinDistance(p.Add(ex)) - s.MinDistance(p.Sub(ex))
	ny := s.MinDistance(p.Add(ey)) - s.MinDistance(p.Sub(ey))
	nz := s.MinDistance(p.Add(ez)) - s.MinDistance(p.Sub(ez))

	return marcher.V3(nx, ny, nz).Normalize()
}
