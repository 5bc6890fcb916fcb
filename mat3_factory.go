package g3d

import "github.com/gogpu/g3d/internal/scalar"

// RotationX returns the right-handed rotation by angle radians about the X axis.
func RotationX[S Scalar](angle S) Mat3[S] {
	s, c := scalar.SinCos(angle)
	return M3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationY returns the right-handed rotation by angle radians about the Y axis.
func RotationY[S Scalar](angle S) Mat3[S] {
	s, c := scalar.SinCos(angle)
	return M3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZ returns the right-handed rotation by angle radians about the Z axis.
func RotationZ[S Scalar](angle S) Mat3[S] {
	s, c := scalar.SinCos(angle)
	return M3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// Rotation returns the rotation by angle radians about the unit axis a
// (Rodrigues' formula). For a basis axis the result is element-for-element
// the matching RotationX, RotationY or RotationZ.
//
// a must be unit length; a debug-check build panics with ErrNotUnit otherwise.
func Rotation[S Scalar](angle S, a Vec3[S]) Mat3[S] {
	if debugChecks.Load() {
		check("Rotation", unitError(a))
	}
	s, c := scalar.SinCos(angle)
	d := 1 - c

	// Diagonal written as a² + c(1 - a²) so basis axes give exactly 1 and c.
	aa := a.Hadamard(a)
	sa := a.Mul(s)

	axay := a.X * a.Y * d
	axaz := a.X * a.Z * d
	ayaz := a.Y * a.Z * d

	return M3(
		aa.X+c*(1-aa.X), axay-sa.Z, axaz+sa.Y,
		axay+sa.Z, aa.Y+c*(1-aa.Y), ayaz-sa.X,
		axaz-sa.Y, ayaz+sa.X, aa.Z+c*(1-aa.Z),
	)
}

// Reflection returns the Householder reflection I - 2·a⊗a through the plane
// orthogonal to the unit vector a. Reflection(a) is its own inverse.
func Reflection[S Scalar](a Vec3[S]) Mat3[S] {
	if debugChecks.Load() {
		check("Reflection", unitError(a))
	}
	m2a := a.Mul(-2)
	sq := m2a.Hadamard(a)

	axay := m2a.X * a.Y
	axaz := m2a.X * a.Z
	ayaz := m2a.Y * a.Z

	return M3(
		sq.X+1, axay, axaz,
		axay, sq.Y+1, ayaz,
		axaz, ayaz, sq.Z+1,
	)
}

// Involution returns 2·a⊗a - I, the half-turn about the unit axis a.
// It equals Reflection(a).Neg() and squares to the identity.
func Involution[S Scalar](a Vec3[S]) Mat3[S] {
	if debugChecks.Load() {
		check("Involution", unitError(a))
	}
	p2a := a.Mul(2)
	sq := p2a.Hadamard(a)

	axay := p2a.X * a.Y
	axaz := p2a.X * a.Z
	ayaz := p2a.Y * a.Z

	return M3(
		sq.X-1, axay, axaz,
		axay, sq.Y-1, ayaz,
		axaz, ayaz, sq.Z-1,
	)
}

// Scale3 returns the diagonal scale by sx, sy, sz along the coordinate axes.
func Scale3[S Scalar](sx, sy, sz S) Mat3[S] {
	return M3(
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	)
}

// UniformScale returns the scale by s in every direction.
func UniformScale[S Scalar](s S) Mat3[S] {
	return Scale3(s, s, s)
}

// ScaleAlong returns I + (s-1)·a⊗a, the scale by s along the unit axis a
// that leaves the orthogonal plane fixed.
func ScaleAlong[S Scalar](s S, a Vec3[S]) Mat3[S] {
	if debugChecks.Load() {
		check("ScaleAlong", unitError(a))
	}
	as := a.Mul(s - 1)

	axay := as.X * a.Y
	axaz := as.X * a.Z
	ayaz := as.Y * a.Z

	return M3(
		as.X*a.X+1, axay, axaz,
		axay, as.Y*a.Y+1, ayaz,
		axaz, ayaz, as.Z*a.Z+1,
	)
}

// Skew returns I + tan(angle)·a⊗b, the shear that moves a point along a in
// proportion to its projection onto b.
//
// Neither axis is normalized: the shear magnitude is exactly tan(angle)·a⊗b,
// so callers that pass non-unit axes get |a|·|b| folded into the shear.
func Skew[S Scalar](angle S, a, b Vec3[S]) Mat3[S] {
	ta := a.Mul(scalar.Tan(angle))

	return M3(
		ta.X*b.X+1, ta.X*b.Y, ta.X*b.Z,
		ta.Y*b.X, ta.Y*b.Y+1, ta.Y*b.Z,
		ta.Z*b.X, ta.Z*b.Y, ta.Z*b.Z+1,
	)
}
