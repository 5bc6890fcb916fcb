//go:build !nogpu

package gpu

import "github.com/gogpu/gputypes"

// LayoutOption configures a vertex buffer layout.
//
// Example:
//
//	// Transforms as per-vertex data starting at location 3
//	l := gpu.InstanceTransformLayout(
//		gpu.WithShaderLocation(3),
//		gpu.WithStepMode(gputypes.VertexStepModeVertex),
//	)
type LayoutOption func(*layoutOptions)

type layoutOptions struct {
	location uint32
	stepMode gputypes.VertexStepMode
}

// WithShaderLocation sets the first @location used by the layout.
// Multi-attribute layouts occupy consecutive locations from there.
func WithShaderLocation(loc uint32) LayoutOption {
	return func(o *layoutOptions) {
		o.location = loc
	}
}

// WithStepMode sets whether the buffer advances per vertex or per instance.
func WithStepMode(m gputypes.VertexStepMode) LayoutOption {
	return func(o *layoutOptions) {
		o.stepMode = m
	}
}

func applyLayoutOptions(defaults layoutOptions, opts []LayoutOption) layoutOptions {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PositionLayout describes a PackVec3s or PackPoints buffer: one
// float32x3 attribute, location 0, stepped per vertex by default.
func PositionLayout(opts ...LayoutOption) gputypes.VertexBufferLayout {
	o := applyLayoutOptions(layoutOptions{stepMode: gputypes.VertexStepModeVertex}, opts)
	return gputypes.VertexBufferLayout{
		ArrayStride: Vec3Size,
		StepMode:    o.stepMode,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: o.location},
		},
	}
}

// InstanceTransformLayout describes a PackTransforms buffer: four
// float32x4 columns at consecutive locations starting at 0, stepped per
// instance by default. WGSL rebuilds the matrix with
// mat4x4<f32>(c0, c1, c2, c3).
func InstanceTransformLayout(opts ...LayoutOption) gputypes.VertexBufferLayout {
	o := applyLayoutOptions(layoutOptions{stepMode: gputypes.VertexStepModeInstance}, opts)
	return gputypes.VertexBufferLayout{
		ArrayStride: TransformSize,
		StepMode:    o.stepMode,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: o.location},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: o.location + 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: o.location + 2},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: o.location + 3},
		},
	}
}

// SceneUniformSize is the byte size of the InstancedWGSL uniform: a
// PackTransform view followed by a PackNormalMatrix.
const SceneUniformSize = TransformSize + NormalMatrixSize

// SceneBindingEntry returns the bind group layout entry for the
// InstancedWGSL uniform at the given binding.
func SceneBindingEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: SceneUniformSize,
		},
	}
}
