package trace

import (
	"testing"

	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
)

func TestShadowMarchFullyOccluded(t *testing.T) {
	s := scene.NewScene()
	s.AddObject(scene.NewSphere(1))

	// Cast from just outside the sphere toward its center: immediately
	// occluded.
	ray := scene.Ray{Origin: marcher.V3(2, 0, 0), Dir: marcher.V3(-1, 0, 0)}
	shadow := ShadowMarch(s, ray, 10, marcher.ShadowPenumbraK)

	if shadow != 0 {
		t.Errorf("ShadowMarch() = %v, want 0 (fully occluded)", shadow)
	}
}

func TestShadowMarchUnoccluded(t *testing.T) {
	s := scene.NewScene()
	s.AddObject(scene.NewSphere(1))

	// Ray from far away, pointing away from the sphere entirely: never
	// gets close to the surface.
	ray := scene.Ray{Origin: marcher.V3(10, 10, 10), Dir: marcher.V3(0, 1, 0)}
	shadow := ShadowMarch(s, ray, 5, marcher.ShadowPenumbraK)

	if shadow <= 0 {
		t.Errorf("ShadowMarch() = %v, want > 0 (unoccluded)", shadow)
	}
}

func TestShadowMarchBoundedInUnitInterval(t *testing.T) {
	s := scene.NewScene()
	s.AddObject(scene.NewSphere(1))

	ray := scene.Ray{Origin: marcher.V3(0, 5, 0), Dir: marcher.V3(0, 1, 0)}
	shadow := ShadowMarch(s, ray, 5, marcher.ShadowPenumbraK)

	if shadow < 0 || shadow > 1 {
		t.Errorf("ShadowMarch() = %v, want within [0,1]", shadow)
	}
}
