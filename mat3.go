package g3d

import "fmt"

// Mat3 represents a linear map of 3D space as three column vectors.
//
// Element (r, c) lives in column c, row r:
//
//	| C0.X  C1.X  C2.X |
//	| C0.Y  C1.Y  C2.Y |
//	| C0.Z  C1.Z  C2.Z |
//
// The zero value is the zero matrix. Orthogonality is never enforced by the
// type; rotation factories document it as a postcondition instead.
type Mat3[S Scalar] struct {
	C0, C1, C2 Vec3[S]
}

// M3 creates a matrix from nine scalars in row-major order.
func M3[S Scalar](
	a00, a01, a02,
	a10, a11, a12,
	a20, a21, a22 S,
) Mat3[S] {
	return Mat3[S]{
		C0: Vec3[S]{X: a00, Y: a10, Z: a20},
		C1: Vec3[S]{X: a01, Y: a11, Z: a21},
		C2: Vec3[S]{X: a02, Y: a12, Z: a22},
	}
}

// Mat3FromColumns creates a matrix from its three columns.
func Mat3FromColumns[S Scalar](c0, c1, c2 Vec3[S]) Mat3[S] {
	return Mat3[S]{C0: c0, C1: c1, C2: c2}
}

// Mat3FromSlice creates a matrix from exactly nine scalars in row-major order.
// It panics if len(rowMajor) != 9.
func Mat3FromSlice[S Scalar](rowMajor []S) Mat3[S] {
	if len(rowMajor) != 9 {
		panic(fmt.Sprintf("g3d: Mat3FromSlice needs 9 elements, got %d", len(rowMajor)))
	}
	r := rowMajor
	return M3(r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7], r[8])
}

// Identity3 returns the identity matrix.
func Identity3[S Scalar]() Mat3[S] {
	return Mat3[S]{C0: UnitX[S](), C1: UnitY[S](), C2: UnitZ[S]()}
}

// Col returns column c. It panics unless 0 <= c < 3.
func (m Mat3[S]) Col(c int) Vec3[S] {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	}
	panic(fmt.Sprintf("g3d: Mat3 column %d out of range", c))
}

// Row returns row r. It panics unless 0 <= r < 3.
func (m Mat3[S]) Row(r int) Vec3[S] {
	return Vec3[S]{X: m.C0.At(r), Y: m.C1.At(r), Z: m.C2.At(r)}
}

// At returns the element in row r, column c.
// It panics if either index is out of range.
func (m Mat3[S]) At(r, c int) S {
	return m.Col(c).At(r)
}

// Add returns the elementwise sum of two matrices.
func (m Mat3[S]) Add(n Mat3[S]) Mat3[S] {
	return Mat3[S]{C0: m.C0.Add(n.C0), C1: m.C1.Add(n.C1), C2: m.C2.Add(n.C2)}
}

// Sub returns the elementwise difference of two matrices.
func (m Mat3[S]) Sub(n Mat3[S]) Mat3[S] {
	return Mat3[S]{C0: m.C0.Sub(n.C0), C1: m.C1.Sub(n.C1), C2: m.C2.Sub(n.C2)}
}

// Neg returns the elementwise negation of the matrix.
func (m Mat3[S]) Neg() Mat3[S] {
	return Mat3[S]{C0: m.C0.Neg(), C1: m.C1.Neg(), C2: m.C2.Neg()}
}

// Scale returns the matrix with every element multiplied by s.
func (m Mat3[S]) Scale(s S) Mat3[S] {
	return Mat3[S]{C0: m.C0.Mul(s), C1: m.C1.Mul(s), C2: m.C2.Mul(s)}
}

// Mul returns the matrix product m * n, the map that applies n first and
// then m. Matrix multiplication is not commutative.
func (m Mat3[S]) Mul(n Mat3[S]) Mat3[S] {
	return Mat3[S]{C0: m.MulVec(n.C0), C1: m.MulVec(n.C1), C2: m.MulVec(n.C2)}
}

// MulVec applies the linear map to a vector.
func (m Mat3[S]) MulVec(v Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: m.C0.X*v.X + m.C1.X*v.Y + m.C2.X*v.Z,
		Y: m.C0.Y*v.X + m.C1.Y*v.Y + m.C2.Y*v.Z,
		Z: m.C0.Z*v.X + m.C1.Z*v.Y + m.C2.Z*v.Z,
	}
}

// MulPoint applies the linear map to the displacement of p from the origin.
func (m Mat3[S]) MulPoint(p Point3[S]) Point3[S] {
	return Point3[S](m.MulVec(p.Vector()))
}

// Transpose returns the matrix with rows and columns exchanged.
func (m Mat3[S]) Transpose() Mat3[S] {
	return Mat3[S]{C0: m.Row(0), C1: m.Row(1), C2: m.Row(2)}
}

// Determinant returns (C0 × C1) · C2.
func (m Mat3[S]) Determinant() S {
	return ScalarTripleProduct(m.C0, m.C1, m.C2)
}

// Inverse returns the inverse matrix.
//
// The rows of the inverse are C1×C2, C2×C0 and C0×C1 divided by the
// determinant. A singular matrix yields infinite or NaN elements, or a
// panic with ErrSingular when debug checks are enabled.
func (m Mat3[S]) Inverse() Mat3[S] {
	inv, det := m.inverse()
	if debugChecks.Load() {
		check("Mat3.Inverse", determinantError(det))
	}
	return inv
}

// TryInverse is Inverse with an error for singular matrices instead of Inf/NaN.
func (m Mat3[S]) TryInverse() (Mat3[S], error) {
	inv, det := m.inverse()
	if err := determinantError(det); err != nil {
		return Mat3[S]{}, fmt.Errorf("Mat3.TryInverse: %w", err)
	}
	return inv, nil
}

func (m Mat3[S]) inverse() (Mat3[S], S) {
	r0 := m.C1.Cross(m.C2)
	r1 := m.C2.Cross(m.C0)
	r2 := m.C0.Cross(m.C1)

	det := r2.Dot(m.C2)
	invDet := 1 / det

	return M3(
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	).Scale(invDet), det
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Mat3[S]) IsIdentity() bool {
	return m == Identity3[S]()
}

// Approx returns true if every element of m is within epsilon of n.
func (m Mat3[S]) Approx(n Mat3[S], epsilon S) bool {
	return m.C0.Approx(n.C0, epsilon) &&
		m.C1.Approx(n.C1, epsilon) &&
		m.C2.Approx(n.C2, epsilon)
}

// String returns the matrix in row-major order.
func (m Mat3[S]) String() string {
	return fmt.Sprintf("Mat3[%v %v %v; %v %v %v; %v %v %v]",
		m.C0.X, m.C1.X, m.C2.X,
		m.C0.Y, m.C1.Y, m.C2.Y,
		m.C0.Z, m.C1.Z, m.C2.Z)
}
