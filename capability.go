package cmdchain

import "github.com/gogpu/wgpu/hal"

// Unbound is the compatibility marker of a pipeline or layout slot that
// nothing has been bound to yet.
//
// Pipeline and layout slots share the marker, so a pipeline that uses no
// descriptor sets can declare Unbound as its compatibility and dispatch
// without a layout bind.
type Unbound struct{}

// ComputePipeline is implemented by values that can be bound as the compute
// pipeline of a chain.
//
// K is the pipeline's compatibility marker: any type, usually an empty
// struct, that names the resource layout the pipeline was created with.
// Compatibility only exists to carry K in the method set; chains never call
// it.
type ComputePipeline[K any] interface {
	// ComputePipeline returns the native pipeline handle.
	ComputePipeline() hal.ComputePipeline

	// Compatibility returns the pipeline's compatibility marker.
	Compatibility() K
}

// ComputeLayout is implemented by values that can be bound as the compute
// layout of a chain. K must equal the marker of the pipeline it serves.
type ComputeLayout[K any] interface {
	// PipelineLayout returns the native layout handle.
	PipelineLayout() hal.PipelineLayout

	// FirstSet returns the first descriptor-set slot to bind at.
	FirstSet() uint32

	// DescriptorSets returns the descriptor sets to bind, in slot order
	// starting at FirstSet. The slice may be empty.
	DescriptorSets() []hal.BindGroup

	// Compatibility returns the layout's compatibility marker.
	Compatibility() K
}

// IndexBuffer is implemented by values that can be bound as an index buffer.
// T is the element type; the recorded index format is derived from it.
type IndexBuffer[T VertexIndex] interface {
	// Buffer returns the native buffer handle.
	Buffer() hal.Buffer

	// Offset returns the byte offset at which index data begins.
	Offset() uint64

	// Element returns the zero value of the element type.
	Element() T
}
