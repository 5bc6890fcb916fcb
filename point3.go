package g3d

import (
	"fmt"

	"github.com/gogpu/g3d/internal/scalar"
)

// Point3 represents a position in 3D affine space.
//
// Unlike Vec3 which represents a displacement, Point3 represents a location.
// Points are not closed under addition: Point + Vec3 is a Point and
// Point - Point is a Vec3, but there is no Point + Point.
type Point3[S Scalar] struct {
	X, Y, Z S
}

// P3 is a convenience function to create a Point3.
func P3[S Scalar](x, y, z S) Point3[S] {
	return Point3[S]{X: x, Y: y, Z: z}
}

// Point3FromSlice creates a Point3 from exactly three coordinates.
// It panics if len(c) != 3.
func Point3FromSlice[S Scalar](c []S) Point3[S] {
	if len(c) != 3 {
		panic(fmt.Sprintf("g3d: Point3FromSlice needs 3 coordinates, got %d", len(c)))
	}
	return Point3[S]{X: c[0], Y: c[1], Z: c[2]}
}

// Origin returns the point (0, 0, 0).
func Origin[S Scalar]() Point3[S] { return Point3[S]{} }

// At returns coordinate i (0=X, 1=Y, 2=Z). It panics for any other index.
func (p Point3[S]) At(i int) S {
	return Vec3[S](p).At(i)
}

// Add returns the point displaced by v.
func (p Point3[S]) Add(v Vec3[S]) Point3[S] {
	return Point3[S]{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3[S]) Sub(q Point3[S]) Vec3[S] {
	return Vec3[S]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Vector returns the displacement from the origin to p.
func (p Point3[S]) Vector() Vec3[S] {
	return Vec3[S](p)
}

// Distance returns the distance between two points.
func (p Point3[S]) Distance(q Point3[S]) S {
	return p.Sub(q).Length()
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point3[S]) Approx(q Point3[S], epsilon S) bool {
	return scalar.Abs(p.X-q.X) <= epsilon &&
		scalar.Abs(p.Y-q.Y) <= epsilon &&
		scalar.Abs(p.Z-q.Z) <= epsilon
}

// String returns a string representation of the point.
func (p Point3[S]) String() string {
	return fmt.Sprintf("Point3(%v, %v, %v)", p.X, p.Y, p.Z)
}
