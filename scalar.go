package g3d

import "github.com/gogpu/g3d/internal/scalar"

// Scalar is the constraint satisfied by every component type: float32,
// float64 and named types over them. All g3d types are generic over it and
// behave identically at either width, modulo precision.
type Scalar = scalar.Float

// unitError returns ErrNotUnit unless |a| is 1 within the width's tolerance.
// A NaN component fails the comparison and is rejected.
func unitError[S Scalar](a Vec3[S]) error {
	if !(scalar.Abs(a.LengthSq()-1) <= scalar.UnitTolerance[S]()) {
		return ErrNotUnit
	}
	return nil
}

// nonZeroError returns ErrZeroVector for the zero vector.
func nonZeroError[S Scalar](v Vec3[S]) error {
	if v.IsZero() {
		return ErrZeroVector
	}
	return nil
}

// determinantError returns ErrSingular for a zero or non-finite determinant.
func determinantError[S Scalar](det S) error {
	if det == 0 || !scalar.IsFinite(det) {
		return ErrSingular
	}
	return nil
}
