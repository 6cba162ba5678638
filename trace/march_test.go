package trace

import (
	"math"
	"testing"

	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
)

func TestMarchHitsSphere(t *testing.T) {
	s := scene.NewScene()
	s.AddObject(scene.NewSphere(1))

	ray := scene.Ray{Origin: marcher.V3(0, 0, -5), Dir: marcher.V3(0, 0, 1)}
	hit := March(s, ray, marcher.MaxLength)

	if !hit.Found {
		t.Fatal("expected a hit")
	}
	if absf32(hit.T-4) > 1e-2 {
		t.Errorf("hit.T = %v, want ~4", hit.T)
	}
	if absf32(hit.Point.Length()-1) > 1e-2 {
		t.Errorf("hit.Point = %+v, want on unit sphere surface", hit.Point)
	}
}

func TestMarchMissesEmptyScene(t *testing.T) {
	s := scene.NewScene()
	ray := scene.Ray{Origin: marcher.V3(0, 0, -5), Dir: marcher.V3(0, 0, 1)}
	hit := March(s, ray, marcher.MaxLength)

	if hit.Found {
		t.Error("expected a miss on an empty scene")
	}
	if !math.IsInf(float64(hit.MinDistanceSeen), 1) {
		t.Errorf("MinDistanceSeen = %v, want +Inf on an empty scene", hit.MinDistanceSeen)
	}
}

func TestMarchMissesWhenRayPointsAway(t *testing.T) {
	s := scene.NewScene()
	s.AddObject(scene.NewSphere(1))

	ray := scene.Ray{Origin: marcher.V3(0, 0, -5), Dir: marcher.V3(0, 0, -1)}
	hit := March(s, ray, marcher.MaxLength)

	if hit.Found {
		t.Error("expected a miss when the ray points away from the sphere")
	}
}
