// Package scalar dispatches elementary functions on a generic float type.
//
// float32 values go through github.com/chewxy/math32 so that single
// precision callers never round-trip through float64. Every other width
// uses the standard math package.
package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types the kernel is generic over.
type Float interface {
	constraints.Float
}

// Is32 reports whether S is a single-precision type.
func Is32[S Float]() bool {
	var z S
	return unsafe.Sizeof(z) == 4
}

// Sqrt returns the square root of x.
func Sqrt[S Float](x S) S {
	if Is32[S]() {
		return S(math32.Sqrt(float32(x)))
	}
	return S(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[S Float](x S) S {
	if Is32[S]() {
		return S(math32.Sin(float32(x)))
	}
	return S(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[S Float](x S) S {
	if Is32[S]() {
		return S(math32.Cos(float32(x)))
	}
	return S(math.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[S Float](x S) (sin, cos S) {
	if Is32[S]() {
		s, c := math32.Sincos(float32(x))
		return S(s), S(c)
	}
	s, c := math.Sincos(float64(x))
	return S(s), S(c)
}

// Tan returns the tangent of the radian argument x.
func Tan[S Float](x S) S {
	if Is32[S]() {
		return S(math32.Tan(float32(x)))
	}
	return S(math.Tan(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[S Float](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[S Float](x S) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Epsilon is the difference between 1 and the next representable value of S.
func Epsilon[S Float]() S {
	if Is32[S]() {
		return S(0x1p-23)
	}
	return S(0x1p-52)
}

// UnitTolerance bounds |x·x - 1| for a vector to still count as unit length.
// It leaves room for the rounding of a Normalize call and a few products.
func UnitTolerance[S Float]() S {
	if Is32[S]() {
		return S(1e-5)
	}
	return S(1e-12)
}
