package g3d

import (
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/gogpu/g3d/internal/scalar"
)

// QuatToGonum converts q to a gonum quaternion (Real is the scalar part).
func QuatToGonum[S Scalar](q Quat[S]) quat.Number {
	return quat.Number{
		Real: float64(q.W),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}

// QuatFromGonum converts a gonum quaternion.
func QuatFromGonum[S Scalar](n quat.Number) Quat[S] {
	return Quat[S]{X: S(n.Imag), Y: S(n.Jmag), Z: S(n.Kmag), W: S(n.Real)}
}

// TransformToDualQuat encodes a rigid transform as a unit dual quaternion
// r + ε(t·r)/2, with r the rotation and t the translation as a pure
// quaternion. The rotation applies first, as with TransformPoint.
//
// The linear part must be a rotation. Other input gives a meaningless
// result, or a panic with ErrNotRigid when debug checks are enabled.
func TransformToDualQuat[S Scalar](t Transform[S]) dualquat.Number {
	if debugChecks.Load() {
		check("TransformToDualQuat", t.rotationError(scalar.UnitTolerance[S]()))
	}
	r := dualquat.Number{Real: QuatToGonum(QuatFromRotationMatrix(t.M))}
	d := dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Scale(0.5, QuatToGonum(QuatFromParts(t.T.Vector(), 0))),
	}
	return dualquat.Mul(d, r)
}

// TransformFromDualQuat decodes a unit dual quaternion into a rigid
// transform. The translation is the vector part of 2·dual·real*.
func TransformFromDualQuat[S Scalar](n dualquat.Number) Transform[S] {
	rot := QuatFromGonum[S](n.Real)
	tr := QuatFromGonum[S](quat.Scale(2, quat.Mul(n.Dual, quat.Conj(n.Real))))
	return NewTransform(rot.RotationMatrix(), tr.VectorPart().ToPoint())
}
