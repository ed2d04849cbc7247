package cmdchain

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// BindPoint selects the pipeline domain a bind applies to.
type BindPoint uint8

const (
	// BindPointCompute is the compute pipeline bind point.
	BindPointCompute BindPoint = iota

	// BindPointGraphics is the graphics pipeline bind point.
	BindPointGraphics

	// BindPointRayTracing is the ray tracing pipeline bind point.
	BindPointRayTracing
)

// String returns the bind point name.
func (p BindPoint) String() string {
	switch p {
	case BindPointCompute:
		return "Compute"
	case BindPointGraphics:
		return "Graphics"
	case BindPointRayTracing:
		return "RayTracing"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Recorder is the command buffer a chain records into.
//
// Each method records one primitive and may fail, typically because the
// underlying command buffer is not in a recordable state. Chains call the
// methods in append order and stop at the first error.
//
// Implementations need not be safe for concurrent use; the caller holds
// exclusive access to a Recorder for the duration of Build.
type Recorder interface {
	// RecordDispatch records a compute dispatch of x*y*z workgroups.
	RecordDispatch(x, y, z uint32) error

	// RecordBindPipeline binds pipeline at the given bind point.
	RecordBindPipeline(point BindPoint, pipeline hal.ComputePipeline) error

	// RecordBindDescriptorSets binds sets to consecutive slots starting at
	// firstSet. dynamicOffsets is empty for chains built by this package.
	RecordBindDescriptorSets(point BindPoint, layout hal.PipelineLayout, firstSet uint32, sets []hal.BindGroup, dynamicOffsets []uint32) error

	// RecordBindIndexBuffer binds buffer as the index buffer, starting at
	// offset bytes, with elements of the given index type.
	RecordBindIndexBuffer(buffer hal.Buffer, offset uint64, index IndexType) error
}
