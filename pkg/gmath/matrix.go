package gmath

import "math"

// Matrix4 is a 4x4 affine matrix in row-major storage acting on
// column vectors: a point p maps to M*p. It exists for interchange
// with matrix-based pipelines; Transform is the primary
// representation.
type Matrix4 struct {
	M [4][4]float64
}

// Matrix4Identity returns the identity matrix.
func Matrix4Identity() Matrix4 {
	var m Matrix4
	m.M[0][0], m.M[1][1], m.M[2][2], m.M[3][3] = 1, 1, 1, 1
	return m
}

// MatrixFromScaleRotationTranslation composes scale, then rotation,
// then translation into a single affine matrix (M = T*R*S).
func MatrixFromScaleRotationTranslation(scale Vector, rotation Quat, translation Vector) Matrix4 {
	x, y, z, w := rotation.X, rotation.Y, rotation.Z, rotation.W

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	var m Matrix4
	m.M[0][0] = (1 - 2*(yy+zz)) * scale.X
	m.M[1][0] = 2 * (xy + wz) * scale.X
	m.M[2][0] = 2 * (xz - wy) * scale.X

	m.M[0][1] = 2 * (xy - wz) * scale.Y
	m.M[1][1] = (1 - 2*(xx+zz)) * scale.Y
	m.M[2][1] = 2 * (yz + wx) * scale.Y

	m.M[0][2] = 2 * (xz + wy) * scale.Z
	m.M[1][2] = 2 * (yz - wx) * scale.Z
	m.M[2][2] = (1 - 2*(xx+yy)) * scale.Z

	m.M[0][3] = translation.X
	m.M[1][3] = translation.Y
	m.M[2][3] = translation.Z
	m.M[3][3] = 1
	return m
}

// Mul returns the matrix product m*other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.M[row][k] * other.M[k][col]
			}
			out.M[row][col] = sum
		}
	}
	return out
}

// TransformPoint applies the full affine map to a position (w = 1).
func (m Matrix4) TransformPoint(p Vector) Vector {
	return Vector{
		m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3],
		m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3],
		m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3],
	}
}

// TransformVector applies the linear part only (w = 0), ignoring the
// translation column.
func (m Matrix4) TransformVector(v Vector) Vector {
	return Vector{
		m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// axis returns column i of the upper-left 3x3 block.
func (m Matrix4) axis(i int) Vector {
	return Vector{m.M[0][i], m.M[1][i], m.M[2][i]}
}

// Determinant3 returns the determinant of the upper-left 3x3 block.
// A negative value indicates a reflection.
func (m Matrix4) Determinant3() float64 {
	return m.axis(0).Dot(m.axis(1).Cross(m.axis(2)))
}

// Decompose splits an affine matrix back into scale, rotation and
// translation. A reflection (negative determinant) folds its sign
// into Scale.X; the choice of axis is arbitrary but must be fixed, and
// X is the pinned convention here.
func (m Matrix4) Decompose() (scale Vector, rotation Quat, translation Vector) {
	translation = Vector{m.M[0][3], m.M[1][3], m.M[2][3]}

	x, y, z := m.axis(0), m.axis(1), m.axis(2)
	scale = Vector{x.Size(), y.Size(), z.Size()}
	if m.Determinant3() < 0 {
		scale.X = -scale.X
	}

	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return scale, QuatIdentity(), translation
	}

	rotation = quatFromAxes(x.Scale(1/scale.X), y.Scale(1/scale.Y), z.Scale(1/scale.Z))
	return scale, rotation, translation
}

// quatFromAxes builds a quaternion from three orthonormal basis
// columns using Shepperd's method: branch on the largest diagonal
// term to keep the divisor well away from zero.
func quatFromAxes(x, y, z Vector) Quat {
	r00, r11, r22 := x.X, y.Y, z.Z
	trace := r00 + r11 + r22

	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return Quat{
			X: (y.Z - z.Y) / s,
			Y: (z.X - x.Z) / s,
			Z: (x.Y - y.X) / s,
			W: s / 4,
		}
	case r00 > r11 && r00 > r22:
		s := math.Sqrt(1+r00-r11-r22) * 2
		return Quat{
			X: s / 4,
			Y: (y.X + x.Y) / s,
			Z: (z.X + x.Z) / s,
			W: (y.Z - z.Y) / s,
		}
	case r11 > r22:
		s := math.Sqrt(1+r11-r00-r22) * 2
		return Quat{
			X: (y.X + x.Y) / s,
			Y: s / 4,
			Z: (z.Y + y.Z) / s,
			W: (z.X - x.Z) / s,
		}
	default:
		s := math.Sqrt(1+r22-r00-r11) * 2
		return Quat{
			X: (z.X + x.Z) / s,
			Y: (z.Y + y.Z) / s,
			Z: s / 4,
			W: (x.Y - y.X) / s,
		}
	}
}

// IsNearlyEqual reports whether every entry of m and other differs by
// at most tolerance.
func (m Matrix4) IsNearlyEqual(other Matrix4, tolerance float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !IsNearlyEqual(m.M[row][col], other.M[row][col], tolerance) {
				return false
			}
		}
	}
	return true
}
