package g3d

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions to and from the fixed-width array types of
// golang.org/x/image/math. Those matrices are row major: m[3*r+c] for
// Mat3 and m[4*r+c] for Mat4.

// Vec3ToF64 converts v to an f64.Vec3.
func Vec3ToF64[S Scalar](v Vec3[S]) f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vec3ToF32 converts v to an f32.Vec3.
func Vec3ToF32[S Scalar](v Vec3[S]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3FromF64 converts an f64.Vec3.
func Vec3FromF64[S Scalar](v f64.Vec3) Vec3[S] {
	return Vec3[S]{X: S(v[0]), Y: S(v[1]), Z: S(v[2])}
}

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32[S Scalar](v f32.Vec3) Vec3[S] {
	return Vec3[S]{X: S(v[0]), Y: S(v[1]), Z: S(v[2])}
}

// Mat3ToF64 converts m to a row-major f64.Mat3.
func Mat3ToF64[S Scalar](m Mat3[S]) f64.Mat3 {
	var out f64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = float64(m.At(r, c))
		}
	}
	return out
}

// Mat3ToF32 converts m to a row-major f32.Mat3.
func Mat3ToF32[S Scalar](m Mat3[S]) f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = float32(m.At(r, c))
		}
	}
	return out
}

// Mat3FromF64 converts a row-major f64.Mat3.
func Mat3FromF64[S Scalar](m f64.Mat3) Mat3[S] {
	return M3(
		S(m[0]), S(m[1]), S(m[2]),
		S(m[3]), S(m[4]), S(m[5]),
		S(m[6]), S(m[7]), S(m[8]),
	)
}

// Mat3FromF32 converts a row-major f32.Mat3.
func Mat3FromF32[S Scalar](m f32.Mat3) Mat3[S] {
	return M3(
		S(m[0]), S(m[1]), S(m[2]),
		S(m[3]), S(m[4]), S(m[5]),
		S(m[6]), S(m[7]), S(m[8]),
	)
}

// TransformToF64Mat4 returns the full homogeneous matrix of t, with the
// bottom row (0, 0, 0, 1).
func TransformToF64Mat4[S Scalar](t Transform[S]) f64.Mat4 {
	var out f64.Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[4*r+c] = float64(t.M.At(r, c))
		}
		out[4*r+3] = float64(t.T.At(r))
	}
	out[15] = 1
	return out
}

// TransformToF32Mat4 is TransformToF64Mat4 at single precision.
func TransformToF32Mat4[S Scalar](t Transform[S]) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[4*r+c] = float32(t.M.At(r, c))
		}
		out[4*r+3] = float32(t.T.At(r))
	}
	out[15] = 1
	return out
}

// TransformFromF64Mat4 reads the top three rows of m. The bottom row is
// assumed to be (0, 0, 0, 1) and is not inspected.
func TransformFromF64Mat4[S Scalar](m f64.Mat4) Transform[S] {
	return T4(
		S(m[0]), S(m[1]), S(m[2]), S(m[3]),
		S(m[4]), S(m[5]), S(m[6]), S(m[7]),
		S(m[8]), S(m[9]), S(m[10]), S(m[11]),
	)
}
