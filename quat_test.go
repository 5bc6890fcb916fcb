package g3d

import (
	"math"
	"testing"
)

func TestQuat_Multiplication(t *testing.T) {
	q1 := Q(1.0, 0.0, 0.0, 1.0)
	q2 := Q(0.0, 1.0, 0.0, 1.0)
	if got := q1.Mul(q2); got != Q(1.0, 1.0, 1.0, 1.0) {
		t.Errorf("q1·q2 = %v, want (1, 1, 1, 1)", got)
	}
	if got := q2.Mul(q1); got != Q(1.0, 1.0, -1.0, 1.0) {
		t.Errorf("q2·q1 = %v, want (1, 1, -1, 1)", got)
	}
}

func TestQuat_HamiltonBasis(t *testing.T) {
	i := Q(1.0, 0, 0, 0)
	j := Q(0, 1.0, 0, 0)
	k := Q(0, 0, 1.0, 0)
	minusOne := Q(0, 0, 0, -1.0)

	tests := []struct {
		name string
		got  Quat[float64]
		want Quat[float64]
	}{
		{"i²", i.Mul(i), minusOne},
		{"j²", j.Mul(j), minusOne},
		{"k²", k.Mul(k), minusOne},
		{"ijk", i.Mul(j).Mul(k), minusOne},
		{"ij", i.Mul(j), k},
		{"ji", j.Mul(i), k.Neg()},
		{"jk", j.Mul(k), i},
		{"ki", k.Mul(i), j},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestQuat_RingOperations(t *testing.T) {
	q := Q(1.0, -2.0, 3.0, 4.0)
	r := Q(0.5, 0.5, -1.0, 2.0)

	if got := q.Add(r); got != Q(1.5, -1.5, 2.0, 6.0) {
		t.Errorf("q + r = %v", got)
	}
	if got := q.Sub(r); got != Q(0.5, -2.5, 4.0, 2.0) {
		t.Errorf("q - r = %v", got)
	}
	if got := q.Neg(); got != Q(-1.0, 2.0, -3.0, -4.0) {
		t.Errorf("-q = %v", got)
	}
	if got := q.Scale(2); got != Q(2.0, -4.0, 6.0, 8.0) {
		t.Errorf("2q = %v", got)
	}
	if got := q.Conjugate(); got != Q(-1.0, 2.0, -3.0, 4.0) {
		t.Errorf("q* = %v", got)
	}
	if got := q.Length(); got != math.Sqrt(30) {
		t.Errorf("|q| = %v, want √30", got)
	}
	if got := q.VectorPart(); got != V3(1.0, -2.0, 3.0) {
		t.Errorf("VectorPart = %v", got)
	}
	if got := QuatFromParts(V3(1.0, -2.0, 3.0), 4.0); got != q {
		t.Errorf("QuatFromParts = %v, want %v", got, q)
	}
	// q·q* = |q|² with zero vector part.
	if got := q.Mul(q.Conjugate()); got != Q(0.0, 0.0, 0.0, 30.0) {
		t.Errorf("q·q* = %v, want (0, 0, 0, 30)", got)
	}
	// (q·r)* = r*·q*
	if got, want := q.Mul(r).Conjugate(), r.Conjugate().Mul(q.Conjugate()); got != want {
		t.Errorf("(qr)* = %v, want r*q* = %v", got, want)
	}
}

func TestQuat_RotateMatchesSandwich(t *testing.T) {
	v := V3(1.0, 0.0, 0.0)
	q := Q(0.0, 1.0, 0.0, 1.0)

	sandwich := q.Mul(QuatFromParts(v, 0)).Mul(q.Conjugate())
	if got := v.Rotate(q); got != sandwich.VectorPart() {
		t.Errorf("closed form %v != sandwich %v", got, sandwich.VectorPart())
	}

	axes := []Vec3[float64]{
		UnitX[float64](),
		V3(1.0, 1.0, 1.0).Normalize(),
		V3(-0.3, 0.8, 0.1).Normalize(),
	}
	for _, a := range axes {
		for _, angle := range []float64{0.25, 1.7, -2.9} {
			q := QuatFromAxisAngle(a, angle)
			for _, v := range propertyVectors {
				want := q.Mul(QuatFromParts(v, 0)).Mul(q.Conjugate()).VectorPart()
				tol := 1e-14 * (1 + v.Length())
				if got := v.Rotate(q); !got.Approx(want, tol) {
					t.Errorf("Rotate(%v, %v) = %v, sandwich = %v", v, q, got, want)
				}
			}
		}
	}
}

func TestQuat_RotationMatrixMatchesRotate(t *testing.T) {
	a := V3(2.0, -1.0, 0.5).Normalize()
	angle := 1.3
	q := QuatFromAxisAngle(a, angle)

	m := q.RotationMatrix()
	if want := Rotation(angle, a); !m.Approx(want, 1e-14) {
		t.Errorf("RotationMatrix = %v, want Rodrigues %v", m, want)
	}
	for _, v := range propertyVectors {
		tol := 1e-13 * (1 + v.Length())
		if got, want := m.MulVec(v), v.Rotate(q); !got.Approx(want, tol) {
			t.Errorf("M·%v = %v, Rotate = %v", v, got, want)
		}
	}
}

func TestQuat_CompositionOrder(t *testing.T) {
	q1 := QuatFromAxisAngle(UnitX[float64](), 0.7)
	q2 := QuatFromAxisAngle(V3(0.0, 0.6, 0.8), -1.1)
	v := V3(0.3, -2.0, 1.5)

	// Rotating by q1 then q2 is the rotation q2·q1.
	stepwise := v.Rotate(q1).Rotate(q2)
	if got := v.Rotate(q2.Mul(q1)); !got.Approx(stepwise, 1e-14) {
		t.Errorf("v.Rotate(q2·q1) = %v, want %v", got, stepwise)
	}

	got := q2.Mul(q1).RotationMatrix()
	want := q2.RotationMatrix().Mul(q1.RotationMatrix())
	if !got.Approx(want, 1e-14) {
		t.Errorf("M(q2·q1) = %v, want M(q2)·M(q1) = %v", got, want)
	}
	if q1.Mul(q2).RotationMatrix().Approx(want, 1e-6) {
		t.Error("q1·q2 gave the same rotation as q2·q1 for non-commuting rotations")
	}
}

func TestQuat_RotationMatrixRoundTrip(t *testing.T) {
	m := RotationZ(math.Pi / 2)
	q := QuatFromRotationMatrix(m)
	m1 := q.RotationMatrix()

	eps := math.Nextafter(1, 2) - 1
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if d := math.Abs(m.At(i, j) - m1.At(i, j)); d > eps {
				t.Errorf("[%d,%d] = %v, want %v", i, j, m1.At(i, j), m.At(i, j))
			}
		}
	}

	v := V3(1.0, 0.0, 0.0)
	vRot := m.MulVec(v)
	v1Rot := m1.MulVec(v)
	if !vRot.Approx(v1Rot, eps) {
		t.Errorf("M·v = %v, M'·v = %v", vRot, v1Rot)
	}
}

// TestQuat_FromRotationMatrixBranches drives each of the four pivots:
// positive trace, then the largest of the x, y and z diagonal elements.
func TestQuat_FromRotationMatrixBranches(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3[float64]
		angle float64
	}{
		{"trace positive", V3(1.0, 2.0, 3.0).Normalize(), 0.4},
		{"x pivot", UnitX[float64](), math.Pi},
		{"x pivot off-axis", V3(0.9, 0.3, 0.1).Normalize(), 2.9},
		{"y pivot", UnitY[float64](), 3.0},
		{"y pivot off-axis", V3(0.2, 0.95, -0.1).Normalize(), -2.8},
		{"z pivot", UnitZ[float64](), math.Pi},
		{"z pivot off-axis", V3(-0.1, 0.2, 0.97).Normalize(), 2.7},
		{"trace exactly -1", V3(0.0, 0.6, 0.8), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Rotation(tt.angle, tt.axis)
			q := QuatFromRotationMatrix(m)

			if l := q.Length(); math.Abs(l-1) > 1e-14 {
				t.Errorf("|q| = %v, want 1", l)
			}
			if got := q.RotationMatrix(); !got.Approx(m, 1e-14) {
				t.Errorf("round trip = %v, want %v", got, m)
			}

			want := QuatFromAxisAngle(tt.axis, tt.angle)
			if !q.Approx(want, 1e-14) && !q.Approx(want.Neg(), 1e-14) {
				t.Errorf("q = %v, want ±%v", q, want)
			}
		})
	}
}

func TestQuat_IdentityAndAxisAngle(t *testing.T) {
	id := IdentityQuat[float64]()
	if !id.RotationMatrix().IsIdentity() {
		t.Errorf("identity quaternion matrix = %v", id.RotationMatrix())
	}
	if got := QuatFromRotationMatrix(Identity3[float64]()); got != id {
		t.Errorf("QuatFromRotationMatrix(I) = %v, want %v", got, id)
	}

	q := QuatFromAxisAngle(UnitZ[float64](), math.Pi/2)
	if got := UnitX[float64]().Rotate(q); !got.Approx(UnitY[float64](), 1e-14) {
		t.Errorf("i rotated a quarter turn about k = %v, want j", got)
	}
}

func TestQuat_Float32(t *testing.T) {
	m := RotationZ(float32(math.Pi / 2))
	q := QuatFromRotationMatrix(m)
	if got := q.RotationMatrix(); !got.Approx(m, 1e-6) {
		t.Errorf("float32 round trip = %v, want %v", got, m)
	}
	if got := Q[float32](1, 0, 0, 1).Mul(Q[float32](0, 1, 0, 1)); got != Q[float32](1, 1, 1, 1) {
		t.Errorf("float32 q1·q2 = %v", got)
	}
}
