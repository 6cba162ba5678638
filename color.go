package marcher

// Color represents a triple of red, green, blue channels. Shading math is
// deliberately unclamped: intermediate colors can exceed
// [0,1] or go negative, and arithmetic here never clamps. Clamping happens
// only at presentation time, via [Color.Clamp01].
type Color struct {
	R, G, B float32
}

// RGB creates a color from components. No clamping is performed.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Black, White, and the default background color named in spec.md §8
// ("A pixel whose primary ray misses all objects yields skBackgroundColor").
var (
	Black             = Color{}
	White             = Color{R: 1, G: 1, B: 1}
	DefaultBackground = Color{R: 0.2, G: 0.3, B: 0.4}
)

// Add returns the sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Mul returns the color scaled by a scalar.
func (c Color) Mul(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// MulC returns the component-wise (Hadamard) product of two colors, used
// to tint a reflection or light contribution by a surface albedo color.
func (c Color) MulC(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Lerp performs linear interpolation between two colors. t=0 returns c,
// t=1 returns o.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

// Clamp01 clamps each channel to [0,1]. Called only at presentation time,
// never from shading code (spec.md §3, §7 "shading math that produces NaN
// or negative channels is tolerated — clamping at present-time masks it").
func (c Color) Clamp01() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
