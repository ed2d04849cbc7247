package cmdchain

import "github.com/gogpu/wgpu/hal"

// Pipeline is a ComputePipeline over a raw HAL handle, tagged with the
// compatibility marker K.
//
//	type blurLayout struct{}
//	p := cmdchain.NewPipeline[blurLayout](halPipeline)
type Pipeline[K any] struct {
	handle hal.ComputePipeline
}

// NewPipeline tags a HAL compute pipeline with the marker K.
func NewPipeline[K any](handle hal.ComputePipeline) Pipeline[K] {
	return Pipeline[K]{handle: handle}
}

// ComputePipeline implements ComputePipeline.
func (p Pipeline[K]) ComputePipeline() hal.ComputePipeline { return p.handle }

// Compatibility implements ComputePipeline.
func (Pipeline[K]) Compatibility() K {
	var k K
	return k
}

// Layout is a ComputeLayout over a raw HAL pipeline layout and the bind
// groups to bind with it, tagged with the compatibility marker K.
type Layout[K any] struct {
	handle   hal.PipelineLayout
	firstSet uint32
	sets     []hal.BindGroup
}

// NewLayout tags a HAL pipeline layout with the marker K. The sets are bound
// in order starting at slot firstSet. The slice is copied.
func NewLayout[K any](handle hal.PipelineLayout, firstSet uint32, sets ...hal.BindGroup) Layout[K] {
	return Layout[K]{
		handle:   handle,
		firstSet: firstSet,
		sets:     append([]hal.BindGroup(nil), sets...),
	}
}

// PipelineLayout implements ComputeLayout.
func (l Layout[K]) PipelineLayout() hal.PipelineLayout { return l.handle }

// FirstSet implements ComputeLayout.
func (l Layout[K]) FirstSet() uint32 { return l.firstSet }

// DescriptorSets implements ComputeLayout.
func (l Layout[K]) DescriptorSets() []hal.BindGroup { return l.sets }

// Compatibility implements ComputeLayout.
func (Layout[K]) Compatibility() K {
	var k K
	return k
}

// Indices is an IndexBuffer over a raw HAL buffer whose contents are
// elements of type T starting at a byte offset.
type Indices[T VertexIndex] struct {
	buffer hal.Buffer
	offset uint64
}

// NewIndices declares buffer as holding T indices from offset onwards.
//
//	idx := cmdchain.NewIndices[uint16](buf, 128)
func NewIndices[T VertexIndex](buffer hal.Buffer, offset uint64) Indices[T] {
	return Indices[T]{buffer: buffer, offset: offset}
}

// Buffer implements IndexBuffer.
func (b Indices[T]) Buffer() hal.Buffer { return b.buffer }

// Offset implements IndexBuffer.
func (b Indices[T]) Offset() uint64 { return b.offset }

// Element implements IndexBuffer.
func (Indices[T]) Element() T {
	var t T
	return t
}
