// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package renderer is the presentation-facing façade over the scheduler:
// construct one with a scene builder and a buffer size, then drive it with
// Update/RenderFrame each tick and read Buffer in between.
//
// Thread Safety: a Renderer's Update/RenderFrame/Resize/Cancel methods are
// intended to be called from a single frame-driving goroutine. Buffer may
// be read concurrently with an in-progress RenderFrame; tile writes are
// partitioned so no two workers touch the same pixel, but a reader may
// observe a partially-rendered frame if IsDone is false.
//
// Example:
//
//	r := renderer.New(0, myBuilder, 800, 600, marcher.DefaultBackground, false)
//	defer r.Shutdown()
//	for frame := 0; frame < 60; frame++ {
//	    if r.IsDone() {
//	        r.Update(1.0 / 60)
//	        r.RenderFrame()
//	    }
//	    present(r.Buffer())
//	}
package renderer

import (
	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/internal/schedule"
	"github.com/gogpu/sdfmarch/scene"
)

// Renderer drives one scene's frame lifecycle: rebuild, schedule, present.
// It is a thin façade over schedule.FrameState, matching spec.md §6.1's
// presentation API (NewRenderer, Resize, Update, RenderFrame, IsDone,
// Buffer).
type Renderer struct {
	frame *schedule.FrameState
}

// New constructs a ready-to-use Renderer. workers <= 0 uses GOMAXPROCS.
// debug selects the finer-grained tile count used for progress-reporting
// builds instead of the production tile count.
func New(workers int, builder scene.Builder, width, height int, background marcher.Color, debug bool) *Renderer {
	return &Renderer{
		frame: schedule.NewFrameState(workers, builder, width, height, background, debug),
	}
}

// IsDone reports whether the current frame has finished rendering.
func (r *Renderer) IsDone() bool { return r.frame.IsDone() }

// Update advances time by dt and rebuilds the scene. A no-op unless IsDone.
func (r *Renderer) Update(dt float32) { r.frame.Update(dt) }

// RenderFrame schedules the rebuilt scene across the worker pool.
// A no-op unless IsDone.
func (r *Renderer) RenderFrame() { r.frame.RenderFrame() }

// Cancel stops the in-flight frame as soon as possible.
func (r *Renderer) Cancel() { r.frame.Cancel() }

// Resize changes the render target's pixel dimensions, cancelling any
// in-flight frame first.
func (r *Renderer) Resize(width, height int) { r.frame.Resize(width, height) }

// Shutdown stops the worker pool. The Renderer must not be used
// afterward.
func (r *Renderer) Shutdown() { r.frame.Shutdown() }

// Buffer returns the current pixel buffer, which may be mid-render if
// IsDone is false. The returned type is [marcher.Buffer], a public type
// in the root package, so presentation-layer callers never need to
// import internal/schedule to name it (spec.md §6.1 "buffer() →
// &[Color]").
func (r *Renderer) Buffer() *marcher.Buffer { return r.frame.Buffer() }

// Stats reports the renderer's current scheduling counters, the
// SPEC_FULL.md introspection supplement to spec.md §6.1's API.
func (r *Renderer) Stats() schedule.Stats { return r.frame.StatsSnapshot() }
