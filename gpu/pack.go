//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/g3d"
)

// Byte sizes of the WGSL host-shareable types written by this package.
const (
	// TransformSize is mat4x4<f32>: four vec4<f32> columns.
	TransformSize = 64

	// NormalMatrixSize is mat3x3<f32>: three vec3<f32> columns, each
	// padded to 16 bytes.
	NormalMatrixSize = 48

	// Vec3Size is a tightly packed float32x3 vertex attribute.
	Vec3Size = 12
)

func putF32[S g3d.Scalar](buf []byte, v S) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
}

func putVec3[S g3d.Scalar](buf []byte, v g3d.Vec3[S]) {
	putF32(buf[0:4], v.X)
	putF32(buf[4:8], v.Y)
	putF32(buf[8:12], v.Z)
}

// PutTransform writes t into buf as a column-major mat4x4<f32> with last
// row (0, 0, 0, 1). buf must hold at least TransformSize bytes.
func PutTransform[S g3d.Scalar](buf []byte, t g3d.Transform[S]) {
	_ = buf[TransformSize-1]
	for c := 0; c < 3; c++ {
		putVec3(buf[16*c:], t.Col(c))
		putF32[S](buf[16*c+12:], 0)
	}
	putVec3(buf[48:], t.T.Vector())
	putF32[S](buf[60:], 1)
}

// PackTransform returns t as a new mat4x4<f32> buffer.
func PackTransform[S g3d.Scalar](t g3d.Transform[S]) []byte {
	buf := make([]byte, TransformSize)
	PutTransform(buf, t)
	return buf
}

// PackTransforms packs one mat4x4<f32> per transform, the per-instance
// data for InstanceTransformLayout.
func PackTransforms[S g3d.Scalar](ts []g3d.Transform[S]) []byte {
	buf := make([]byte, len(ts)*TransformSize)
	for i := range ts {
		PutTransform(buf[i*TransformSize:], ts[i])
	}
	return buf
}

// PutNormalMatrix writes the inverse transpose of t's linear part into buf
// as a mat3x3<f32>. Padding bytes are zeroed. buf must hold at least
// NormalMatrixSize bytes.
//
// A singular linear part writes non-finite values, or panics with
// g3d.ErrSingular when debug checks are enabled.
func PutNormalMatrix[S g3d.Scalar](buf []byte, t g3d.Transform[S]) {
	_ = buf[NormalMatrixSize-1]
	inv := t.M.Inverse()
	for c := 0; c < 3; c++ {
		// Column c of (M⁻¹)ᵀ is row c of M⁻¹.
		putVec3(buf[16*c:], inv.Row(c))
		putF32[S](buf[16*c+12:], 0)
	}
}

// PackNormalMatrix returns the normal matrix of t as a new buffer.
func PackNormalMatrix[S g3d.Scalar](t g3d.Transform[S]) []byte {
	buf := make([]byte, NormalMatrixSize)
	PutNormalMatrix(buf, t)
	return buf
}

// PackVec3s packs vectors as consecutive float32x3 attributes, the vertex
// data for PositionLayout.
func PackVec3s[S g3d.Scalar](vs []g3d.Vec3[S]) []byte {
	buf := make([]byte, len(vs)*Vec3Size)
	for i, v := range vs {
		putVec3(buf[i*Vec3Size:], v)
	}
	return buf
}

// PackPoints is PackVec3s for positions.
func PackPoints[S g3d.Scalar](ps []g3d.Point3[S]) []byte {
	buf := make([]byte, len(ps)*Vec3Size)
	for i, p := range ps {
		putVec3(buf[i*Vec3Size:], p.Vector())
	}
	return buf
}

// PackSceneUniform returns the InstancedWGSL uniform for a view transform:
// the view itself followed by its normal matrix.
func PackSceneUniform[S g3d.Scalar](view g3d.Transform[S]) []byte {
	buf := make([]byte, SceneUniformSize)
	PutTransform(buf, view)
	PutNormalMatrix(buf[TransformSize:], view)
	return buf
}
