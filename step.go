package cmdchain

import "github.com/gogpu/wgpu/hal"

// StepKind identifies the recording action a chain node adds.
type StepKind uint8

const (
	StepDispatch            StepKind = iota // Dispatch compute work
	StepBindComputePipeline                 // Bind a compute pipeline
	StepBindComputeLayout                   // Bind descriptor sets for a compute layout
	StepBindIndexBuffer                     // Bind an index buffer
)

var stepKindNames = [...]string{
	StepDispatch:            "Dispatch",
	StepBindComputePipeline: "BindComputePipeline",
	StepBindComputeLayout:   "BindComputeLayout",
	StepBindIndexBuffer:     "BindIndexBuffer",
}

// String returns the string representation of a StepKind.
func (k StepKind) String() string {
	if int(k) < len(stepKindNames) {
		return stepKindNames[k]
	}
	return "Unknown"
}

// step is one recording action. The set of implementations is closed.
type step interface {
	kind() StepKind
	record(r Recorder) error
}

type dispatchStep struct {
	dims [3]uint32
}

func (dispatchStep) kind() StepKind { return StepDispatch }

func (s dispatchStep) record(r Recorder) error {
	return r.RecordDispatch(s.dims[0], s.dims[1], s.dims[2])
}

// pipelineSource is the part of ComputePipeline a bind step needs.
type pipelineSource interface {
	ComputePipeline() hal.ComputePipeline
}

type bindComputePipelineStep struct {
	pipeline pipelineSource
}

func (bindComputePipelineStep) kind() StepKind { return StepBindComputePipeline }

func (s bindComputePipelineStep) record(r Recorder) error {
	return r.RecordBindPipeline(BindPointCompute, s.pipeline.ComputePipeline())
}

// layoutSource is the part of ComputeLayout a bind step needs.
type layoutSource interface {
	PipelineLayout() hal.PipelineLayout
	FirstSet() uint32
	DescriptorSets() []hal.BindGroup
}

type bindComputeLayoutStep struct {
	layout layoutSource
}

func (bindComputeLayoutStep) kind() StepKind { return StepBindComputeLayout }

func (s bindComputeLayoutStep) record(r Recorder) error {
	return r.RecordBindDescriptorSets(
		BindPointCompute,
		s.layout.PipelineLayout(),
		s.layout.FirstSet(),
		s.layout.DescriptorSets(),
		nil,
	)
}

// indexSource is the part of IndexBuffer a bind step needs.
type indexSource interface {
	Buffer() hal.Buffer
	Offset() uint64
}

type bindIndexBufferStep struct {
	buffer indexSource
	index  IndexType
}

func (bindIndexBufferStep) kind() StepKind { return StepBindIndexBuffer }

func (s bindIndexBufferStep) record(r Recorder) error {
	return r.RecordBindIndexBuffer(s.buffer.Buffer(), s.buffer.Offset(), s.index)
}
