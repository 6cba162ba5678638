package marcher

import "math"

// Transform represents a 3D affine transformation: a 3×3 rotation/scale
// block plus a translation column, stored row-major:
//
//	| M00 M01 M02 | Tx |
//	| M10 M11 M12 | Ty |
//	| M20 M21 M22 | Tz |
//
// This represents x' = M*x + T.
//
// Every RenderObject and Material caches both the forward Transform and its
// inverse; [Transform.Invert] falls back to the identity matrix when the
// determinant is degenerate (<1e-5 in absolute value) rather than returning
// an error, per spec.md §7 "Degenerate transform" — the fallback is logged
// at Warn via the package logger.
type Transform struct {
	M [3][3]float32
	T Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		M: [3][3]float32{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	}
}

// TranslateBy creates a pure translation transform.
func TranslateBy(t Vec3) Transform {
	tr := Identity()
	tr.T = t
	return tr
}

// ScaleBy creates a pure scaling transform.
func ScaleBy(s Vec3) Transform {
	return Transform{
		M: [3][3]float32{
			{s.X, 0, 0},
			{0, s.Y, 0},
			{0, 0, s.Z},
		},
	}
}

// RotateY creates a rotation transform around the Y axis (angle in radians).
func RotateY(angle float32) Transform {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Transform{
		M: [3][3]float32{
			{c, 0, s},
			{0, 1, 0},
			{-s, 0, c},
		},
	}
}

// ApplyPoint transforms a position: M*p + T.
func (tr Transform) ApplyPoint(p Vec3) Vec3 {
	return Vec3{
		X: tr.M[0][0]*p.X + tr.M[0][1]*p.Y + tr.M[0][2]*p.Z + tr.T.X,
		Y: tr.M[1][0]*p.X + tr.M[1][1]*p.Y + tr.M[1][2]*p.Z + tr.T.Y,
		Z: tr.M[2][0]*p.X + tr.M[2][1]*p.Y + tr.M[2][2]*p.Z + tr.T.Z,
	}
}

// ApplyDirection transforms a direction: M*v (no translation).
func (tr Transform) ApplyDirection(v Vec3) Vec3 {
	return Vec3{
		X: tr.M[0][0]*v.X + tr.M[0][1]*v.Y + tr.M[0][2]*v.Z,
		Y: tr.M[1][0]*v.X + tr.M[1][1]*v.Y + tr.M[1][2]*v.Z,
		Z: tr.M[2][0]*v.X + tr.M[2][1]*v.Y + tr.M[2][2]*v.Z,
	}
}

// Compose returns tr * other (apply other first, then tr).
func (tr Transform) Compose(other Transform) Transform {
	var out Transform
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += tr.M[r][k] * other.M[k][c]
			}
			out.M[r][c] = sum
		}
	}
	out.T = tr.ApplyDirection(other.T).Add(tr.T)
	return out
}

// determinant3 returns the determinant of the 3×3 rotation/scale block.
func (tr Transform) determinant3() float32 {
	m := tr.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert returns the inverse transform such that
// tr.Compose(tr.Invert()) ≈ Identity() within 1e-5 Frobenius norm.
//
// If the 3×3 block's determinant has absolute value below 1e-5 the matrix
// is numerically degenerate; Invert logs at Warn and returns the identity
// transform instead of propagating an error, per spec.md §7.
func (tr Transform) Invert() Transform {
	det := tr.determinant3()
	if float32(math.Abs(float64(det))) < 1e-5 {
		Logger().Warn("marcher: degenerate transform, falling back to identity", "determinant", det)
		return Identity()
	}

	m := tr.M
	invDet := 1 / det

	var inv [3][3]float32
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet

	out := Transform{M: inv}
	// T' = -inv * T
	out.T = out.ApplyDirection(tr.T).Neg()
	return out
}

// Right, Up, Forward, Translation extract the basis columns/translation.
func (tr Transform) Right() Vec3 {
	return Vec3{X: tr.M[0][0], Y: tr.M[1][0], Z: tr.M[2][0]}
}

func (tr Transform) Up() Vec3 {
	return Vec3{X: tr.M[0][1], Y: tr.M[1][1], Z: tr.M[2][1]}
}

func (tr Transform) Forward() Vec3 {
	return Vec3{X: tr.M[0][2], Y: tr.M[1][2], Z: tr.M[2][2]}
}

func (tr Transform) Translation() Vec3 {
	return tr.T
}

// IsIdentity returns true if the transform is exactly the identity.
func (tr Transform) IsIdentity() bool {
	id := Identity()
	return tr.M == id.M && tr.T == id.T
}

// FrobeniusDistance returns the Frobenius-norm distance between two
// transforms, treating the 3×3 block and the translation column jointly.
// Used by invariant tests verifying tr.Compose(tr.Invert()) ≈ Identity().
func (tr Transform) FrobeniusDistance(other Transform) float32 {
	var sumSq float32
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			d := tr.M[r][c] - other.M[r][c]
			sumSq += d * d
		}
	}
	d := tr.T.Sub(other.T)
	sumSq += d.X*d.X + d.Y*d.Y + d.Z*d.Z
	return float32(math.Sqrt(float64(sumSq)))
}
