package g3d

import (
	"fmt"

	"github.com/gogpu/g3d/internal/scalar"
)

// Vec3 represents a 3D free vector: a direction and magnitude with no fixed
// location. The zero value is the zero vector.
//
// Vec3 has three distinct products that must not be confused:
// [Vec3.Dot] (scalar), [Vec3.Cross] (vector) and [Vec3.Hadamard]
// (componentwise).
type Vec3[S Scalar] struct {
	X, Y, Z S
}

// V3 is a convenience function to create a Vec3.
func V3[S Scalar](x, y, z S) Vec3[S] {
	return Vec3[S]{X: x, Y: y, Z: z}
}

// Vec3FromSlice creates a Vec3 from exactly three components.
// It panics if len(c) != 3.
func Vec3FromSlice[S Scalar](c []S) Vec3[S] {
	if len(c) != 3 {
		panic(fmt.Sprintf("g3d: Vec3FromSlice needs 3 components, got %d", len(c)))
	}
	return Vec3[S]{X: c[0], Y: c[1], Z: c[2]}
}

// Zero3 returns the zero vector.
func Zero3[S Scalar]() Vec3[S] { return Vec3[S]{} }

// One3 returns the vector (1, 1, 1).
func One3[S Scalar]() Vec3[S] { return Vec3[S]{X: 1, Y: 1, Z: 1} }

// UnitX returns the basis vector i = (1, 0, 0).
func UnitX[S Scalar]() Vec3[S] { return Vec3[S]{X: 1} }

// UnitY returns the basis vector j = (0, 1, 0).
func UnitY[S Scalar]() Vec3[S] { return Vec3[S]{Y: 1} }

// UnitZ returns the basis vector k = (0, 0, 1).
func UnitZ[S Scalar]() Vec3[S] { return Vec3[S]{Z: 1} }

// At returns component i (0=X, 1=Y, 2=Z). It panics for any other index.
func (v Vec3[S]) At(i int) S {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("g3d: Vec3 index %d out of range", i))
}

// Add returns the sum of two vectors.
func (v Vec3[S]) Add(w Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3[S]) Sub(w Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns the negation of the vector.
func (v Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3[S]) Mul(s S) Vec3[S] {
	return Vec3[S]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// MulScalar returns s * v. It is the same value as v.Mul(s).
func MulScalar[S Scalar](s S, v Vec3[S]) Vec3[S] {
	return v.Mul(s)
}

// Div returns the vector divided by a scalar.
// Dividing by zero yields infinite or NaN components.
func (v Vec3[S]) Div(s S) Vec3[S] {
	return Vec3[S]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Hadamard returns the componentwise product (x1*x2, y1*y2, z1*z2).
func (v Vec3[S]) Hadamard(w Vec3[S]) Vec3[S] {
	return Vec3[S]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3[S]) Dot(w Vec3[S]) S {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
// The result is orthogonal to both operands and v × w = -(w × v).
func (v Vec3[S]) Cross(w Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Outer returns the rank-1 matrix v ⊗ w whose columns are
// v*w.X, v*w.Y and v*w.Z.
func (v Vec3[S]) Outer(w Vec3[S]) Mat3[S] {
	return Mat3[S]{C0: v.Mul(w.X), C1: v.Mul(w.Y), C2: v.Mul(w.Z)}
}

// Length returns the Euclidean norm (magnitude) of the vector.
func (v Vec3[S]) Length() S {
	return scalar.Sqrt(v.LengthSq())
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec3[S]) LengthSq() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
//
// The zero vector has no direction: the result is NaN in every component,
// or a panic with ErrZeroVector when debug checks are enabled.
func (v Vec3[S]) Normalize() Vec3[S] {
	if debugChecks.Load() {
		check("Vec3.Normalize", nonZeroError(v))
	}
	return v.Div(v.Length())
}

// TryNormalize is Normalize with an error for the zero vector instead of NaN.
func (v Vec3[S]) TryNormalize() (Vec3[S], error) {
	if err := nonZeroError(v); err != nil {
		return Vec3[S]{}, fmt.Errorf("Vec3.TryNormalize: %w", err)
	}
	return v.Div(v.Length()), nil
}

// Project returns the projection of v onto w: w * (v·w / w·w).
// w must be non-zero.
func (v Vec3[S]) Project(w Vec3[S]) Vec3[S] {
	if debugChecks.Load() {
		check("Vec3.Project", nonZeroError(w))
	}
	return w.Mul(v.Dot(w) / w.Dot(w))
}

// Reject returns the component of v orthogonal to w: v - v.Project(w).
// w must be non-zero.
func (v Vec3[S]) Reject(w Vec3[S]) Vec3[S] {
	return v.Sub(v.Project(w))
}

// ScalarTripleProduct returns (a × b) · c, the signed volume of the
// parallelepiped spanned by a, b and c.
func ScalarTripleProduct[S Scalar](a, b, c Vec3[S]) S {
	return a.Cross(b).Dot(c)
}

// Rotate returns v rotated by the unit quaternion q, the vector part of
// q·(v, 0)·q*. It uses the closed form
//
//	v' = v(w² - b·b) + b(2 v·b) + (b × v)(2w)
//
// where b is the vector part of q, so no intermediate quaternion is built.
func (v Vec3[S]) Rotate(q Quat[S]) Vec3[S] {
	b := q.VectorPart()
	t1 := v.Mul(q.W*q.W - b.LengthSq())
	t2 := b.Mul(2 * v.Dot(b))
	t3 := b.Cross(v).Mul(2 * q.W)
	return t1.Add(t2).Add(t3)
}

// ToPoint converts Vec3 to the point reached by displacing the origin by v.
func (v Vec3[S]) ToPoint() Point3[S] {
	return Point3[S](v)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec3[S]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3[S]) Approx(w Vec3[S], epsilon S) bool {
	return scalar.Abs(v.X-w.X) <= epsilon &&
		scalar.Abs(v.Y-w.Y) <= epsilon &&
		scalar.Abs(v.Z-w.Z) <= epsilon
}

// String returns a string representation of the vector.
func (v Vec3[S]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}
