package scene

import (
	"math"

	"github.com/gogpu/sdfmarch"
)

// CompositeOp identifies a CSG combinator.
type CompositeOp int

const (
	CompositeUnion CompositeOp = iota
	CompositeIntersection
	CompositeDifference
	CompositeSmoothUnion
	CompositeBlend
)

// blendSentinel substitutes for an out-of-range child index in Blend.
const blendSentinel = 1e12

// shortCircuitColorEpsilon is the distance threshold at which a
// composite's color query short-circuits to a single child's color
// instead of blending.
const shortCircuitColorEpsilon = 10 * marcher.MinStep

// Composite combines an ordered list of child RenderObjects under a CSG
// operator. Invariant: len(Children) >= 1, enforced at construction time
// by NewComposite.
type Composite struct {
	Op       CompositeOp
	K        float32 // SmoothUnion/Blend parameter
	Children []*RenderObject
}

// distance evaluates the combinator over the children's own
// TransformedDistance at point (point is in this composite's local frame;
// children's transforms are interpreted relative to that same frame,
// which is how nested composites compose).
func (c *Composite) distance(point marcher.Vec3) float32 {
	switch c.Op {
	case CompositeUnion:
		return c.unionDistance(point)
	case CompositeIntersection:
		return c.intersectionDistance(point)
	case CompositeDifference:
		return c.differenceDistance(point)
	case CompositeSmoothUnion:
		return c.smoothUnionDistance(point)
	case CompositeBlend:
		return c.blendDistance(point)
	default:
		return float32(math.Inf(1))
	}
}

func (c *Composite) unionDistance(point marcher.Vec3) float32 {
	acc := c.Children[0].TransformedDistance(point)
	for _, child := range c.Children[1:] {
		acc = min32(acc, child.TransformedDistance(point))
	}
	return acc
}

// intersectionDistance seeds the max-reduction at 0 rather than -Inf.
// For points entirely outside every child the sign is still correct, but
// for a point inside all children (every dᵢ negative) the result clamps
// at 0 instead of the true (negative) interior distance, flattening the
// composite's interior signed-distance field near the surface. Kept as
// observed rather than redesigned; see DESIGN.md.
func (c *Composite) intersectionDistance(point marcher.Vec3) float32 {
	acc := float32(0)
	for _, child := range c.Children {
		acc = max32(acc, child.TransformedDistance(point))
	}
	return acc
}

// differenceDistance: the first child is positive, the rest subtract:
// max(d₀, −d₁, −d₂, …).
func (c *Composite) differenceDistance(point marcher.Vec3) float32 {
	acc := c.Children[0].TransformedDistance(point)
	for _, child := range c.Children[1:] {
		acc = max32(acc, -child.TransformedDistance(point))
	}
	return acc
}

// smoothUnionDistance folds children left-to-right with the smooth-min
// polynomial smooth_union(a,b,k) = min(a,b) - h³·k/6, where
// h = max(k - |a-b|, 0) / k.
func (c *Composite) smoothUnionDistance(point marcher.Vec3) float32 {
	acc := c.Children[0].TransformedDistance(point)
	for _, child := range c.Children[1:] {
		acc = smoothUnion(acc, child.TransformedDistance(point), c.K)
	}
	return acc
}

func smoothUnion(a, b, k float32) float32 {
	h := max32(k-absf32(a-b), 0) / k
	return min32(a, b) - h*h*h*k/6
}

// blendDistance implements Blend: i = floor(k), j = i+1, t = k-i; result
// is lerp(child_i, child_j, t), with out-of-range indices substituted by
// blendSentinel. Uses signed int arithmetic throughout and assumes the
// precondition k >= 0; see DESIGN.md for why an unsigned cast was
// rejected.
func (c *Composite) blendDistance(point marcher.Vec3) float32 {
	di, dj, t := c.blendIndices()
	vi := c.childDistanceOrSentinel(di, point)
	vj := c.childDistanceOrSentinel(dj, point)
	return vi + (vj-vi)*t
}

func (c *Composite) blendIndices() (i, j int, t float32) {
	fi := math.Floor(float64(c.K))
	i = int(fi)
	j = i + 1
	t = c.K - float32(fi)
	return i, j, t
}

func (c *Composite) childDistanceOrSentinel(idx int, point marcher.Vec3) float32 {
	if idx < 0 || idx >= len(c.Children) {
		return blendSentinel
	}
	return c.Children[idx].TransformedDistance(point)
}

func (c *Composite) childColorOrSentinel(idx int, point marcher.Vec3) marcher.Color {
	if idx < 0 || idx >= len(c.Children) {
		return marcher.Black
	}
	return c.Children[idx].TransformedColor(point)
}

// color returns the composite's color at point. Blend overrides with its
// own index-based color lerp identical in shape to blendDistance; every
// other combinator uses a distance-weighted blend: weight wᵢ = 1/dᵢ^0.9
// (dᵢ the absolute transformed distance of child i), short-circuiting to
// a single child's color once dᵢ drops below shortCircuitColorEpsilon.
func (c *Composite) color(point marcher.Vec3) marcher.Color {
	if c.Op == CompositeBlend {
		i, j, t := c.blendIndices()
		ci := c.childColorOrSentinel(i, point)
		cj := c.childColorOrSentinel(j, point)
		return ci.Lerp(cj, t)
	}

	var weightedSum marcher.Color
	var weightTotal float32
	for _, child := range c.Children {
		d := absf32(child.TransformedDistance(point))
		if d < shortCircuitColorEpsilon {
			return child.TransformedColor(point)
		}
		w := float32(math.Pow(float64(d), -0.9))
		weightedSum = weightedSum.Add(child.TransformedColor(point).Mul(w))
		weightTotal += w
	}
	if weightTotal == 0 {
		return marcher.Black
	}
	return weightedSum.Mul(1 / weightTotal)
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
