package g3d

import (
	"fmt"

	"github.com/gogpu/g3d/internal/scalar"
)

// Transform represents a 3D affine transformation x ↦ M·x + T.
//
// It is a 4x4 homogeneous matrix whose last row is (0, 0, 0, 1), stored
// without that row:
//
//	| C0.X  C1.X  C2.X  T.X |
//	| C0.Y  C1.Y  C2.Y  T.Y |
//	| C0.Z  C1.Z  C2.Z  T.Z |
//
// Composition chains like matrices: a.Mul(b) applies b first, then a.
type Transform[S Scalar] struct {
	// M is the linear part (rotation, scale, skew).
	M Mat3[S]
	// T is the translation, the image of the origin.
	T Point3[S]
}

// NewTransform creates a transform from its linear part and translation.
func NewTransform[S Scalar](m Mat3[S], t Point3[S]) Transform[S] {
	return Transform[S]{M: m, T: t}
}

// TransformFromColumns creates a transform from the three columns of its
// linear part and its translation.
func TransformFromColumns[S Scalar](a, b, c Vec3[S], t Point3[S]) Transform[S] {
	return Transform[S]{M: Mat3FromColumns(a, b, c), T: t}
}

// T4 creates a transform from the top three rows of its 4x4 matrix, in
// row-major order.
func T4[S Scalar](
	a00, a01, a02, a03,
	a10, a11, a12, a13,
	a20, a21, a22, a23 S,
) Transform[S] {
	return Transform[S]{
		M: M3(a00, a01, a02, a10, a11, a12, a20, a21, a22),
		T: Point3[S]{X: a03, Y: a13, Z: a23},
	}
}

// Translation returns the transform that moves every point by v.
func Translation[S Scalar](v Vec3[S]) Transform[S] {
	return Transform[S]{M: Identity3[S](), T: v.ToPoint()}
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform[S Scalar]() Transform[S] {
	return Transform[S]{M: Identity3[S]()}
}

// Col returns column c of the linear part. It panics unless 0 <= c < 3.
func (t Transform[S]) Col(c int) Vec3[S] {
	return t.M.Col(c)
}

// Mul returns the composition t∘u: the transform that applies u, then t.
func (t Transform[S]) Mul(u Transform[S]) Transform[S] {
	return Transform[S]{
		M: t.M.Mul(u.M),
		T: t.T.Add(t.M.MulVec(u.T.Vector())),
	}
}

// TransformVector applies the linear part to a direction; translation is ignored.
func (t Transform[S]) TransformVector(v Vec3[S]) Vec3[S] {
	return t.M.MulVec(v)
}

// TransformPoint applies the full transform to a point.
func (t Transform[S]) TransformPoint(p Point3[S]) Point3[S] {
	return t.T.Add(t.M.MulVec(p.Vector()))
}

// TransformNormal multiplies the normal n by the transpose of the linear
// part: (n·C0, n·C1, n·C2).
//
// Normals transform by the inverse transpose. To carry a normal from the
// space B into the space A, pass the A-to-B transform h: the B-to-A
// inverse is then supplied implicitly, and only the transpose is applied
// here.
func (t Transform[S]) TransformNormal(n Vec3[S]) Vec3[S] {
	return Vec3[S]{X: n.Dot(t.M.C0), Y: n.Dot(t.M.C1), Z: n.Dot(t.M.C2)}
}

// Inverse returns the inverse transform.
//
// This is the cofactor inverse of the 4x4 matrix specialized to the known
// (0, 0, 0, 1) last row. A singular linear part yields infinite or NaN
// elements, or a panic with ErrSingular when debug checks are enabled.
func (t Transform[S]) Inverse() Transform[S] {
	inv, det := t.inverse()
	if debugChecks.Load() {
		check("Transform.Inverse", determinantError(det))
	}
	return inv
}

// TryInverse is Inverse with an error for a singular linear part.
func (t Transform[S]) TryInverse() (Transform[S], error) {
	inv, det := t.inverse()
	if err := determinantError(det); err != nil {
		return Transform[S]{}, fmt.Errorf("Transform.TryInverse: %w", err)
	}
	return inv, nil
}

func (t Transform[S]) inverse() (Transform[S], S) {
	a, b, c := t.M.C0, t.M.C1, t.M.C2
	d := t.T.Vector()

	s := a.Cross(b)
	r := c.Cross(d)

	det := s.Dot(c)
	invDet := 1 / det
	s = s.Mul(invDet)
	r = r.Mul(invDet)
	v := c.Mul(invDet)

	r0 := b.Cross(v)
	r1 := v.Cross(a)

	return T4(
		r0.X, r0.Y, r0.Z, -b.Dot(r),
		r1.X, r1.Y, r1.Z, a.Dot(r),
		s.X, s.Y, s.Z, -d.Dot(s),
	), det
}

// IsIdentity returns true if the transform is exactly the identity.
func (t Transform[S]) IsIdentity() bool {
	return t == IdentityTransform[S]()
}

// Approx returns true if the linear parts and translations are within epsilon.
func (t Transform[S]) Approx(u Transform[S], epsilon S) bool {
	return t.M.Approx(u.M, epsilon) && t.T.Approx(u.T, epsilon)
}

// rotationError returns ErrNotRigid unless M is orthonormal with
// determinant +1 within tol.
func (t Transform[S]) rotationError(tol S) error {
	mtm := t.M.Transpose().Mul(t.M)
	if !mtm.Approx(Identity3[S](), tol) || !(scalar.Abs(t.M.Determinant()-1) <= tol) {
		return ErrNotRigid
	}
	return nil
}

// String returns the top three rows of the 4x4 matrix.
func (t Transform[S]) String() string {
	m := t.M
	return fmt.Sprintf("Transform[%v %v %v %v; %v %v %v %v; %v %v %v %v]",
		m.C0.X, m.C1.X, m.C2.X, t.T.X,
		m.C0.Y, m.C1.Y, m.C2.Y, t.T.Y,
		m.C0.Z, m.C1.Z, m.C2.Z, t.T.Z)
}
