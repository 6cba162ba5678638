// Package marcher provides the math and cross-cutting primitives shared by
// the sdfmarch signed-distance-field ray marcher: 3D vectors, 3×4 affine
// transforms, unclamped float colors, tunable rendering constants, and a
// package-wide structured logger.
//
// # Architecture
//
// Higher-level packages build on these primitives:
//
//   - scene: the SDF scene graph (primitives, CSG, materials, lights, camera)
//   - trace: the sphere tracer (primary, shadow, and reflection rays)
//   - internal/schedule: tile partitioning, the worker pool, and the
//     double-buffered frame lifecycle
//   - renderer: the presentation-facing façade driven by a frame loop
//
// # Coordinate system
//
// World space is right-handed: X increases right, Y increases up, Z
// increases toward the viewer. Camera rays point into the scene along -Z
// by default.
package marcher
