package schedule

import (
	"runtime"

	"github.com/gogpu/sdfmarch"
	"github.com/gogpu/sdfmarch/scene"
	"github.com/gogpu/sdfmarch/trace"
)

// FrameState owns the worker pool, the scene, and the pixel buffer for one
// render loop, implementing the frame lifecycle of spec.md §4.9: is_done,
// update, render_frame, cancel, resize, shutdown.
type FrameState struct {
	pool    *Pool
	builder scene.Builder
	sc      *scene.Scene
	buffer  *marcher.Buffer
	tiles   []*Tile
	time    float32

	workers    int
	debug      bool
	background marcher.Color
}

// NewFrameState constructs a FrameState with workers goroutines (0 means
// GOMAXPROCS), an initial buffer of width×height neutral-filled pixels,
// and the given background color used for rays that miss every object.
// debug selects the finer-grained JobCoreMultiplierDebug tile count used
// for more frequent progress reporting; false selects the production
// JobCoreMultiplierRelease count.
func NewFrameState(workers int, builder scene.Builder, width, height int, background marcher.Color, debug bool) *FrameState {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	fs := &FrameState{
		builder:    builder,
		sc:         scene.NewScene(),
		buffer:     marcher.NewBuffer(width, height),
		workers:    workers,
		debug:      debug,
		background: background,
	}
	fs.buffer.Fill(background)
	fs.sc.SetSceneSize(width, height)
	fs.pool = NewPool(workers, fs.renderTile)
	return fs
}

// renderTile walks a tile's pixels in raster order with stride
// marcher.InitialStepSize, shading each sampled pixel via the scene and
// filling the stride×stride block it represents, spec.md §4.9 "Worker
// loop". A stride greater than 1 produces a coarse block-preview pass;
// the default of 1 samples and writes every pixel individually.
func (fs *FrameState) renderTile(t *Tile) {
	cam := fs.sc.Camera
	if cam == nil {
		return
	}
	stride := marcher.InitialStepSize
	for y := t.MinY; y < t.MaxY; y += stride {
		for x := t.MinX; x < t.MaxX; x += stride {
			ray := cam.RayFor(float32(x)+0.5, float32(y)+0.5)
			color := trace.TraceColor(fs.sc, ray, marcher.MaxReflectionDepth, fs.background)
			fs.fillBlock(x, y, stride, t, color)
		}
	}
}

// fillBlock writes color to every pixel in the stride×stride block whose
// top-left corner is (x,y), clipped to the owning tile's bounds so a
// coarse preview pass never writes outside its assigned rectangle.
func (fs *FrameState) fillBlock(x, y, stride int, t *Tile, color marcher.Color) {
	maxY := y + stride
	if maxY > t.MaxY {
		maxY = t.MaxY
	}
	maxX := x + stride
	if maxX > t.MaxX {
		maxX = t.MaxX
	}
	for by := y; by < maxY; by++ {
		for bx := x; bx < maxX; bx++ {
			fs.buffer.Set(bx, by, color)
		}
	}
}

// IsDone reports whether every tile in the current frame's tile list is
// marked done.
func (fs *FrameState) IsDone() bool {
	for _, t := range fs.tiles {
		if !t.Done() {
			return false
		}
	}
	return true
}

// Update advances time by dt, rebuilds the scene via the frame's builder,
// and reapplies the current buffer size to it, spec.md §4.9 "update(dt)".
// A no-op (logged at Debug) unless IsDone().
func (fs *FrameState) Update(dt float32) {
	if !fs.IsDone() {
		marcher.Logger().Debug("marcher: update skipped, frame not done")
		return
	}
	fs.time += dt
	marcher.Logger().Debug("marcher: update", "dt", dt, "time", fs.time)
	fs.sc.Build(fs.builder, fs.time)
	fs.sc.SetSceneSize(fs.buffer.Width, fs.buffer.Height)
}

// jobCount returns the tile target for BuildTiles: workers × the
// release or debug job-core multiplier, spec.md §4.9.
func (fs *FrameState) jobCount() int {
	multiplier := marcher.JobCoreMultiplierRelease
	if fs.debug {
		multiplier = marcher.JobCoreMultiplierDebug
	}
	return fs.workers * multiplier
}

// RenderFrame partitions the buffer into a fresh tile list and hands it to
// the worker pool, spec.md §4.9 "render_frame". A no-op (logged at Debug)
// unless IsDone().
func (fs *FrameState) RenderFrame() {
	if !fs.IsDone() {
		marcher.Logger().Debug("marcher: render_frame skipped, frame not done")
		return
	}
	fs.tiles = BuildTiles(fs.buffer.Width, fs.buffer.Height, fs.jobCount())
	marcher.Logger().Debug("marcher: render_frame", "tiles", len(fs.tiles), "workers", fs.workers)
	fs.pool.Submit(fs.tiles)
}

// Cancel marks every un-popped tile done and busy-waits for in-flight
// tiles to finish, spec.md §4.9 "cancel".
func (fs *FrameState) Cancel() {
	marcher.Logger().Debug("marcher: cancel", "tiles", len(fs.tiles))
	fs.pool.CancelRemaining()
	for !fs.IsDone() {
		runtime.Gosched()
	}
}

// Resize changes the buffer dimensions, spec.md §4.9 "resize(w, h)":
// cancels any in-flight frame first, then reallocates and neutral-fills
// the buffer only if the dimensions actually changed. A zero or negative
// dimension is a no-op, spec.md §7 "Zero-size buffer on resize".
func (fs *FrameState) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	marcher.Logger().Debug("marcher: resize", "width", width, "height", height,
		"prevWidth", fs.buffer.Width, "prevHeight", fs.buffer.Height)
	if !fs.IsDone() {
		fs.Cancel()
	}
	if width == fs.buffer.Width && height == fs.buffer.Height {
		return
	}
	fs.buffer = marcher.NewBuffer(width, height)
	fs.buffer.Fill(fs.background)
	fs.sc.SetSceneSize(width, height)
}

// Shutdown stops the worker pool, spec.md §4.9 "shutdown (on drop)".
func (fs *FrameState) Shutdown() {
	marcher.Logger().Debug("marcher: shutdown")
	fs.pool.Shutdown()
}

// Buffer returns the frame's current pixel buffer.
func (fs *FrameState) Buffer() *marcher.Buffer { return fs.buffer }

// Stats reports lightweight introspection counters, the SPEC_FULL.md
// supplement to spec.md's frame lifecycle: tile and worker counts for a
// presenting frame driver to display (e.g. in a debug overlay).
type Stats struct {
	Workers    int
	TileCount  int
	DoneTiles  int
	FrameTime  float32
	DebugTiles bool
}

// StatsSnapshot snapshots the frame's current scheduling counters.
func (fs *FrameState) StatsSnapshot() Stats {
	done := 0
	for _, t := range fs.tiles {
		if t.Done() {
			done++
		}
	}
	return Stats{
		Workers:    fs.workers,
		TileCount:  len(fs.tiles),
		DoneTiles:  done,
		FrameTime:  fs.time,
		DebugTiles: fs.debug,
	}
}
