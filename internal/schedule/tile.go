// Package schedule implements the tiled worker-pool scheduler that drives
// one render frame: partitioning the pixel buffer into tiles, handing them
// out to a fixed set of goroutines, and tracking frame completion.
package schedule

import "sync/atomic"

// Tile is a rectangular scheduling unit over a shared frame buffer,
// spec.md §3 ("Tile — {min_x, min_y, max_x, max_y, done: atomic bool}").
// Unlike the teacher's parallel.Tile, which owns a fixed 64x64 pixel
// buffer for a standalone rasterizer, this Tile is a pure rectangle
// descriptor: the buffer it describes is shared across every tile in a
// frame.
type Tile struct {
	MinX, MinY, MaxX, MaxY int

	done atomic.Bool
}

// Done reports whether this tile has finished (or been cancelled).
func (t *Tile) Done() bool { return t.done.Load() }

// MarkDone marks the tile complete.
func (t *Tile) MarkDone() { t.done.Store(true) }

// Width and Height return the tile's pixel extents.
func (t *Tile) Width() int  { return t.MaxX - t.MinX }
func (t *Tile) Height() int { return t.MaxY - t.MinY }
