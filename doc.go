// Package g3d provides a 3D geometric algebra kernel for Go.
//
// # Overview
//
// g3d implements the value types of affine 3D geometry: vectors, points,
// 3x3 matrices, quaternions and affine transforms. Every type is generic
// over a floating-point scalar and behaves identically at float32 and
// float64, modulo precision. It is designed to sit underneath the GoGPU
// ecosystem: the gpu subpackage uploads g3d values to WGSL shaders.
//
// # Quick Start
//
//	import "github.com/gogpu/g3d"
//
//	// Rotate a quarter turn about z, then move up by one
//	r := g3d.RotationZ(math.Pi / 2)
//	t := g3d.NewTransform(r, g3d.P3(0.0, 0.0, 1.0))
//
//	p := t.TransformPoint(g3d.P3(1.0, 0.0, 0.0)) // ≈ (0, 1, 1)
//	back := t.Inverse().TransformPoint(p)        // ≈ (1, 0, 0)
//
// # Types
//
//   - Vec3: free vector with dot, cross, outer product, projection
//   - Point3: affine position; Point3 - Point3 is a Vec3, there is no Point3 + Point3
//   - Mat3: linear map stored as three columns, with rotation, reflection,
//     involution, scale and skew factories
//   - Quat: quaternion with Hamilton product, conversions to and from rotation matrices
//   - Transform: affine map x ↦ M·x + T, composed like matrices
//
// All values are immutable; every operation returns a new value, so they
// are safe to share between goroutines.
//
// # Conventions
//
// Coordinates are right-handed and angles are in radians. Matrices are
// column vectors multiplied on the left: a.Mul(b) applies b first. For
// quaternions, rotating by q1 then q2 is q2.Mul(q1).
//
// # Preconditions
//
// Geometric preconditions (unit axes, non-zero vectors, invertible
// matrices) are not checked by default and bad input propagates as NaN or
// Inf. SetDebugChecks(true) turns them into panics with a
// *PreconditionError; TryNormalize and TryInverse return errors instead.
// Index and length violations always panic.
//
// # Interoperability
//
// Conversions are provided for golang.org/x/image/math (f32, f64),
// github.com/go-gl/mathgl (mgl32, mgl64) and gonum.org/v1/gonum/num
// (quat, dualquat).
package g3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
