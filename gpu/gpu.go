//go:build !nogpu

// Package gpu prepares g3d values for upload to WebGPU buffers and ships
// WGSL helpers that mirror the g3d transform operations.
//
// The package never owns a device. It produces little-endian byte slices
// laid out for WGSL host-shareable types, vertex buffer layouts for
// gogpu/gputypes pipelines, and SPIR-V compiled by gogpu/naga. Creating
// buffers and pipelines is left to the caller's renderer.
//
// Usage:
//
//	spirv, err := gpu.CompilePrelude(gpu.InstancedWGSL)
//	...
//	layouts := []gputypes.VertexBufferLayout{
//		gpu.PositionLayout(),
//		gpu.InstanceTransformLayout(gpu.WithShaderLocation(1)),
//	}
//	instances := gpu.PackTransforms(models)
package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/g3d"
)

// PreludeWGSL declares g3d_transform_point, g3d_transform_vector,
// g3d_transform_normal and g3d_rotate. CompilePrelude prepends it to a
// shader; callers using their own compiler can do the same.
//
//go:embed shaders/prelude.wgsl
var PreludeWGSL string

// InstancedWGSL is a minimal instanced mesh shader built on the prelude.
// It reads PositionLayout at location 0, InstanceTransformLayout at
// locations 1 to 4, and a uniform at group(0) binding(0) holding a
// PackTransform view followed by a PackNormalMatrix.
//
//go:embed shaders/instanced.wgsl
var InstancedWGSL string

// CompilePrelude compiles PreludeWGSL followed by source to SPIR-V words.
func CompilePrelude(source string) ([]uint32, error) {
	return compileWGSL(PreludeWGSL + "\n" + source)
}

// compileWGSL compiles WGSL source to a SPIR-V uint32 slice.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		g3d.Logger().Warn("gpu: shader compilation failed", "err", err)
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("failed to compile shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	g3d.Logger().Debug("gpu: shader compiled", "wgsl_bytes", len(source), "spirv_words", len(spirvCode))
	return spirvCode, nil
}
