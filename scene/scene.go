package scene

import (
	"math"

	"github.com/gogpu/sdfmarch"
)

// Builder populates a Scene with camera, lights, and objects for a given
// frame time. Callers supply this; the renderer calls it once per frame.
type Builder func(s *Scene, time float32)

// Scene owns the camera, the ordered list of top-level RenderObjects, and
// the ordered list of Lights for one frame. A Scene is rebuilt every
// frame: Reset clears it, then a Builder repopulates it.
type Scene struct {
	Camera  *Camera
	Objects []*RenderObject
	Lights  []Light

	width, height int
}

// NewScene returns an empty scene with no camera, objects, or lights.
func NewScene() *Scene {
	return &Scene{}
}

// Reset clears objects and lights and drops the camera, readying the
// scene for a Builder to repopulate it. Buffer dimensions are preserved
// across Reset, since they describe the render target, not scene content.
func (s *Scene) Reset() {
	s.Camera = nil
	s.Objects = s.Objects[:0]
	s.Lights = s.Lights[:0]
}

// AddObject appends a top-level RenderObject to the scene.
func (s *Scene) AddObject(o *RenderObject) {
	s.Objects = append(s.Objects, o)
}

// AddLight appends a Light to the scene.
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// SetCamera assigns the scene's camera and immediately sizes it to the
// scene's current buffer dimensions.
func (s *Scene) SetCamera(c *Camera) {
	s.Camera = c
	if s.Camera != nil {
		s.Camera.SetSceneSize(s.width, s.height)
	}
}

// SetSceneSize records the render target's pixel dimensions and, if a
// camera is already bound, resizes it to match.
func (s *Scene) SetSceneSize(width, height int) {
	s.width, s.height = width, height
	if s.Camera != nil {
		s.Camera.SetSceneSize(width, height)
	}
}

// Build resets the scene, invokes builder with the new time, and
// reapplies the current buffer size to whatever camera the builder set.
func (s *Scene) Build(builder Builder, time float32) {
	s.Reset()
	if builder != nil {
		builder(s, time)
	}
	s.SetSceneSize(s.width, s.height)
}

// MinDistance returns the minimum transformed distance over every
// top-level object. An empty scene reports +Inf.
func (s *Scene) MinDistance(point marcher.Vec3) float32 {
	d := float32(math.Inf(1))
	for _, o := range s.Objects {
		d = min32(d, o.TransformedDistance(point))
	}
	return d
}

// Nearest returns the top-level object whose transformed distance at
// point is smallest, along with that distance. Returns (nil, +Inf) for an
// empty scene. Shading uses this to resolve which object's material and
// surface info apply at a hit point.
func (s *Scene) Nearest(point marcher.Vec3) (*RenderObject, float32) {
	var best *RenderObject
	bestD := float32(math.Inf(1))
	for _, o := range s.Objects {
		if d := o.TransformedDistance(point); d < bestD {
			bestD = d
			best = o
		}
	}
	return best, bestD
}
