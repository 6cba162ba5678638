// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"testing"
	"time"

	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
)

func sphereBuilder(s *scene.Scene, time float32) {
	s.AddObject(scene.NewSphere(1))
	s.AddLight(scene.NewAmbientLight(marcher.RGB(0.5, 0.5, 0.5)))
	s.SetCamera(scene.NewCamera(marcher.V3(0, 0, -5), marcher.V3(0, 0, 0), 1.0, false))
}

func waitUntilDone(t *testing.T, r *Renderer, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if r.IsDone() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("renderer did not finish before timeout")
}

func TestRendererFullFrameLifecycle(t *testing.T) {
	r := New(4, sphereBuilder, 40, 40, marcher.DefaultBackground, false)
	defer r.Shutdown()

	if !r.IsDone() {
		t.Fatal("a fresh renderer should report done")
	}

	r.Update(0)
	r.RenderFrame()
	waitUntilDone(t, r, 2*time.Second)

	center := r.Buffer().At(20, 20)
	if center == marcher.DefaultBackground {
		t.Error("center pixel should show the sphere")
	}
}

func TestRendererResizeThenRender(t *testing.T) {
	r := New(2, sphereBuilder, 40, 40, marcher.DefaultBackground, false)
	defer r.Shutdown()

	r.Resize(80, 60)
	if w, h := r.Buffer().Width, r.Buffer().Height; w != 80 || h != 60 {
		t.Errorf("buffer size = %dx%d, want 80x60", w, h)
	}

	r.Update(0)
	r.RenderFrame()
	waitUntilDone(t, r, 2*time.Second)
}

func TestRendererStatsReflectCompletedFrame(t *testing.T) {
	r := New(3, sphereBuilder, 40, 40, marcher.DefaultBackground, true)
	defer r.Shutdown()

	r.Update(0.25)
	r.RenderFrame()
	waitUntilDone(t, r, 2*time.Second)

	stats := r.Stats()
	if stats.Workers != 3 {
		t.Errorf("Workers = %d, want 3", stats.Workers)
	}
	if stats.DoneTiles != stats.TileCount || stats.TileCount == 0 {
		t.Errorf("stats = %+v, want a fully-done nonzero tile count", stats)
	}
}
