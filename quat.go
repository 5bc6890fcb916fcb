package g3d

import (
	"fmt"

	"github.com/gogpu/g3d/internal/scalar"
)

// Quat is a quaternion xi + yj + zk + w with vector part (X, Y, Z) and
// scalar part W.
//
// Unit quaternions represent rotations. The convention throughout g3d is
// the Hamilton product with active rotation v' = q·v·q*: rotating by q1 and
// then by q2 is the rotation q2.Mul(q1), and
//
//	q2.Mul(q1).RotationMatrix() == q2.RotationMatrix().Mul(q1.RotationMatrix())
//
// General quaternions support the ring operations without any unit-length
// invariant being enforced.
type Quat[S Scalar] struct {
	X, Y, Z, W S
}

// Q is a convenience function to create a Quat.
func Q[S Scalar](x, y, z, w S) Quat[S] {
	return Quat[S]{X: x, Y: y, Z: z, W: w}
}

// QuatFromParts creates the quaternion with vector part v and scalar part s.
func QuatFromParts[S Scalar](v Vec3[S], s S) Quat[S] {
	return Quat[S]{X: v.X, Y: v.Y, Z: v.Z, W: s}
}

// IdentityQuat returns the unit quaternion (0, 0, 0, 1), the null rotation.
func IdentityQuat[S Scalar]() Quat[S] {
	return Quat[S]{W: 1}
}

// QuatFromAxisAngle returns the unit quaternion rotating by angle radians
// about the unit axis a.
func QuatFromAxisAngle[S Scalar](a Vec3[S], angle S) Quat[S] {
	if debugChecks.Load() {
		check("QuatFromAxisAngle", unitError(a))
	}
	s, c := scalar.SinCos(angle / 2)
	return QuatFromParts(a.Mul(s), c)
}

// QuatFromRotationMatrix returns the unit quaternion representing the
// rotation matrix m. m must be orthogonal with determinant +1; any other
// input gives an unspecified quaternion.
//
// The extraction pivots on the largest of the trace and the three diagonal
// elements, so the divisor 4·pivot never approaches zero.
func QuatFromRotationMatrix[S Scalar](m Mat3[S]) Quat[S] {
	m00, m11, m22 := m.C0.X, m.C1.Y, m.C2.Z
	trace := m00 + m11 + m22

	var q Quat[S]
	switch {
	case trace > 0:
		q.W = scalar.Sqrt(trace+1) * 0.5
		f := 0.25 / q.W
		q.X = (m.C1.Z - m.C2.Y) * f
		q.Y = (m.C2.X - m.C0.Z) * f
		q.Z = (m.C0.Y - m.C1.X) * f
	case m00 > m11 && m00 > m22:
		q.X = scalar.Sqrt(m00-m11-m22+1) * 0.5
		f := 0.25 / q.X
		q.Y = (m.C0.Y + m.C1.X) * f
		q.Z = (m.C2.X + m.C0.Z) * f
		q.W = (m.C1.Z - m.C2.Y) * f
	case m11 > m22:
		q.Y = scalar.Sqrt(m11-m00-m22+1) * 0.5
		f := 0.25 / q.Y
		q.X = (m.C0.Y + m.C1.X) * f
		q.Z = (m.C1.Z + m.C2.Y) * f
		q.W = (m.C2.X - m.C0.Z) * f
	default:
		q.Z = scalar.Sqrt(m22-m00-m11+1) * 0.5
		f := 0.25 / q.Z
		q.X = (m.C2.X + m.C0.Z) * f
		q.Y = (m.C1.Z + m.C2.Y) * f
		q.W = (m.C0.Y - m.C1.X) * f
	}
	return q
}

// VectorPart returns (X, Y, Z).
func (q Quat[S]) VectorPart() Vec3[S] {
	return Vec3[S]{X: q.X, Y: q.Y, Z: q.Z}
}

// Neg returns -q. It represents the same rotation as q.
func (q Quat[S]) Neg() Quat[S] {
	return Quat[S]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Add returns the componentwise sum of two quaternions.
func (q Quat[S]) Add(r Quat[S]) Quat[S] {
	return Quat[S]{X: q.X + r.X, Y: q.Y + r.Y, Z: q.Z + r.Z, W: q.W + r.W}
}

// Sub returns the componentwise difference of two quaternions.
func (q Quat[S]) Sub(r Quat[S]) Quat[S] {
	return Quat[S]{X: q.X - r.X, Y: q.Y - r.Y, Z: q.Z - r.Z, W: q.W - r.W}
}

// Scale returns the quaternion with every component multiplied by s.
func (q Quat[S]) Scale(s S) Quat[S] {
	return Quat[S]{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Conjugate returns (-X, -Y, -Z, W). For a unit quaternion this is the
// inverse rotation.
func (q Quat[S]) Conjugate() Quat[S] {
	return Quat[S]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Length returns the magnitude sqrt(x² + y² + z² + w²).
func (q Quat[S]) Length() S {
	return scalar.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Mul returns the Hamilton product q·r. It is not commutative.
func (q Quat[S]) Mul(r Quat[S]) Quat[S] {
	return Quat[S]{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// RotationMatrix returns the rotation matrix of the unit quaternion q.
// For a non-unit q the result is in general not orthogonal.
func (q Quat[S]) RotationMatrix() Mat3[S] {
	x2, y2, z2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return M3(
		1-2*(y2+z2), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(x2+z2), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(x2+y2),
	)
}

// Approx returns true if every component of q is within epsilon of r.
func (q Quat[S]) Approx(r Quat[S], epsilon S) bool {
	return scalar.Abs(q.X-r.X) <= epsilon &&
		scalar.Abs(q.Y-r.Y) <= epsilon &&
		scalar.Abs(q.Z-r.Z) <= epsilon &&
		scalar.Abs(q.W-r.W) <= epsilon
}

// String returns a string representation of the quaternion.
func (q Quat[S]) String() string {
	return fmt.Sprintf("Quat(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}
