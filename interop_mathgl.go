package g3d

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from github.com/go-gl/mathgl. mathgl matrices are
// column major like Mat3, so columns copy straight across.

// Vec3ToMgl64 converts v to an mgl64.Vec3.
func Vec3ToMgl64[S Scalar](v Vec3[S]) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vec3ToMgl32 converts v to an mgl32.Vec3.
func Vec3ToMgl32[S Scalar](v Vec3[S]) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3FromMgl64 converts an mgl64.Vec3.
func Vec3FromMgl64[S Scalar](v mgl64.Vec3) Vec3[S] {
	return Vec3[S]{X: S(v[0]), Y: S(v[1]), Z: S(v[2])}
}

// Vec3FromMgl32 converts an mgl32.Vec3.
func Vec3FromMgl32[S Scalar](v mgl32.Vec3) Vec3[S] {
	return Vec3[S]{X: S(v[0]), Y: S(v[1]), Z: S(v[2])}
}

// Mat3ToMgl64 converts m to an mgl64.Mat3.
func Mat3ToMgl64[S Scalar](m Mat3[S]) mgl64.Mat3 {
	var out mgl64.Mat3
	for c := 0; c < 3; c++ {
		col := Vec3ToMgl64(m.Col(c))
		copy(out[3*c:3*c+3], col[:])
	}
	return out
}

// Mat3ToMgl32 converts m to an mgl32.Mat3.
func Mat3ToMgl32[S Scalar](m Mat3[S]) mgl32.Mat3 {
	var out mgl32.Mat3
	for c := 0; c < 3; c++ {
		col := Vec3ToMgl32(m.Col(c))
		copy(out[3*c:3*c+3], col[:])
	}
	return out
}

// Mat3FromMgl64 converts an mgl64.Mat3.
func Mat3FromMgl64[S Scalar](m mgl64.Mat3) Mat3[S] {
	return Mat3FromColumns(
		Vec3[S]{X: S(m[0]), Y: S(m[1]), Z: S(m[2])},
		Vec3[S]{X: S(m[3]), Y: S(m[4]), Z: S(m[5])},
		Vec3[S]{X: S(m[6]), Y: S(m[7]), Z: S(m[8])},
	)
}

// Mat3FromMgl32 converts an mgl32.Mat3.
func Mat3FromMgl32[S Scalar](m mgl32.Mat3) Mat3[S] {
	return Mat3FromColumns(
		Vec3[S]{X: S(m[0]), Y: S(m[1]), Z: S(m[2])},
		Vec3[S]{X: S(m[3]), Y: S(m[4]), Z: S(m[5])},
		Vec3[S]{X: S(m[6]), Y: S(m[7]), Z: S(m[8])},
	)
}

// TransformToMgl64 returns the homogeneous matrix of t as an mgl64.Mat4.
func TransformToMgl64[S Scalar](t Transform[S]) mgl64.Mat4 {
	m := t.M
	return mgl64.Mat4{
		float64(m.C0.X), float64(m.C0.Y), float64(m.C0.Z), 0,
		float64(m.C1.X), float64(m.C1.Y), float64(m.C1.Z), 0,
		float64(m.C2.X), float64(m.C2.Y), float64(m.C2.Z), 0,
		float64(t.T.X), float64(t.T.Y), float64(t.T.Z), 1,
	}
}

// TransformToMgl32 returns the homogeneous matrix of t as an mgl32.Mat4.
func TransformToMgl32[S Scalar](t Transform[S]) mgl32.Mat4 {
	m := t.M
	return mgl32.Mat4{
		float32(m.C0.X), float32(m.C0.Y), float32(m.C0.Z), 0,
		float32(m.C1.X), float32(m.C1.Y), float32(m.C1.Z), 0,
		float32(m.C2.X), float32(m.C2.Y), float32(m.C2.Z), 0,
		float32(t.T.X), float32(t.T.Y), float32(t.T.Z), 1,
	}
}

// TransformFromMgl64 reads the affine part of m. The bottom row is
// ignored, so a projective matrix loses its perspective terms.
func TransformFromMgl64[S Scalar](m mgl64.Mat4) Transform[S] {
	return TransformFromColumns(
		Vec3[S]{X: S(m[0]), Y: S(m[1]), Z: S(m[2])},
		Vec3[S]{X: S(m[4]), Y: S(m[5]), Z: S(m[6])},
		Vec3[S]{X: S(m[8]), Y: S(m[9]), Z: S(m[10])},
		Point3[S]{X: S(m[12]), Y: S(m[13]), Z: S(m[14])},
	)
}

// QuatToMgl64 converts q. Both use the Hamilton product, so products map
// to products.
func QuatToMgl64[S Scalar](q Quat[S]) mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: Vec3ToMgl64(q.VectorPart())}
}

// QuatToMgl32 converts q.
func QuatToMgl32[S Scalar](q Quat[S]) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: Vec3ToMgl32(q.VectorPart())}
}

// QuatFromMgl64 converts an mgl64.Quat.
func QuatFromMgl64[S Scalar](q mgl64.Quat) Quat[S] {
	return QuatFromParts(Vec3FromMgl64[S](q.V), S(q.W))
}

// QuatFromMgl32 converts an mgl32.Quat.
func QuatFromMgl32[S Scalar](q mgl32.Quat) Quat[S] {
	return QuatFromParts(Vec3FromMgl32[S](q.V), S(q.W))
}
