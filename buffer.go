package marcher

// Buffer is the pixel buffer a Renderer writes into and a presentation
// layer reads from, spec.md §6.1 ("buffer() → &[Color] of length
// width*height, row-major, origin top-left"). It lives in the root
// package, rather than internal/schedule where the worker pool writes
// it, because the presentation layer is an external collaborator
// (spec.md §1) that cannot import an internal package: this is the
// nameable type spec.md §6.1 actually describes.
//
// Worker writes are partitioned by tile, so concurrent Set calls never
// touch the same pixel (spec.md §3 "Ownership"); Pixels holds unclamped
// colors, clamped to [0,1] only by the presenter (spec.md §3, §7).
type Buffer struct {
	Width, Height int
	Pixels        []Color
}

// NewBuffer allocates a buffer filled with the zero color.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pixels: make([]Color, width*height)}
}

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c Color) {
	for i := range b.Pixels {
		b.Pixels[i] = c
	}
}

// Set writes a pixel, silently ignoring out-of-bounds coordinates.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pixels[y*b.Width+x] = c
}

// At reads a pixel, returning black for out-of-bounds coordinates.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Black
	}
	return b.Pixels[y*b.Width+x]
}
