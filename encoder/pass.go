package encoder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/cmdchain"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Pass errors.
var (
	// ErrNilEncoder is returned when NewPass is called with a nil encoder.
	ErrNilEncoder = errors.New("encoder: command encoder is nil")

	// ErrNoComputePass is returned when the encoder did not open a compute pass.
	ErrNoComputePass = errors.New("encoder: command encoder returned no compute pass")

	// ErrNotHALDevice is returned when a DeviceProvider's device is not a hal.Device.
	ErrNotHALDevice = errors.New("encoder: provider device is not a hal.Device")

	// ErrPassEnded is returned when a primitive is recorded into an ended pass.
	ErrPassEnded = errors.New("encoder: pass has already ended")

	// ErrUnsupportedBindPoint is returned for graphics and ray tracing binds.
	ErrUnsupportedBindPoint = errors.New("encoder: bind point not supported by a compute pass")

	// ErrNilPipeline is returned when a nil pipeline is bound.
	ErrNilPipeline = errors.New("encoder: compute pipeline is nil")

	// ErrNilBindGroup is returned when a descriptor set is nil.
	ErrNilBindGroup = errors.New("encoder: bind group is nil")

	// ErrBindGroupIndexOutOfRange is returned when a set slot exceeds the maximum.
	ErrBindGroupIndexOutOfRange = errors.New("encoder: bind group index exceeds maximum")

	// ErrDynamicOffsetsAmbiguous is returned when dynamic offsets are given
	// for more than one set; HAL takes offsets per bind group.
	ErrDynamicOffsetsAmbiguous = errors.New("encoder: dynamic offsets need exactly one bind group")

	// ErrNoIndexTarget is returned when an index buffer is bound without an index target.
	ErrNoIndexTarget = errors.New("encoder: no index target configured")

	// ErrNilBuffer is returned when a nil index buffer is bound.
	ErrNilBuffer = errors.New("encoder: index buffer is nil")

	// ErrUnsupportedIndexFormat is returned for index types WebGPU cannot express.
	ErrUnsupportedIndexFormat = errors.New("encoder: index type has no WebGPU format")

	// ErrIndexOffsetNotAligned is returned when an index offset is not a
	// multiple of the index size.
	ErrIndexOffsetNotAligned = errors.New("encoder: index offset must be aligned to the index size")
)

// PassState represents the state of a Pass.
type PassState int

const (
	// PassStateRecording means the pass is actively recording commands.
	PassStateRecording PassState = iota

	// PassStateEnded means the pass has been ended.
	PassStateEnded
)

// String returns the string representation of PassState.
func (s PassState) String() string {
	switch s {
	case PassStateRecording:
		return "Recording"
	case PassStateEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// IndexTarget receives index buffer binds. hal.RenderPassEncoder and
// hal.RenderBundleEncoder both implement it.
type IndexTarget interface {
	SetIndexBuffer(buffer hal.Buffer, format gputypes.IndexFormat, offset uint64)
}

// Pass records cmdchain primitives into a HAL compute pass.
//
// Pass wraps hal.ComputePassEncoder, whose methods cannot fail, and adds the
// validation that makes each primitive return an error instead:
//   - RecordBindPipeline: SetPipeline on the compute pass
//   - RecordBindDescriptorSets: one SetBindGroup per set
//   - RecordDispatch: Dispatch on the compute pass
//   - RecordBindIndexBuffer: SetIndexBuffer on the configured IndexTarget
//
// Thread Safety:
// Pass guards its own state with a mutex, but commands must be recorded from
// a single goroutine to keep their order meaningful.
//
// State Machine:
//
//	Recording -> End() -> Ended
type Pass struct {
	// mu protects mutable state.
	mu sync.Mutex

	opts options

	// encoder is the parent command encoder.
	encoder hal.CommandEncoder

	// compute is the HAL compute pass.
	compute hal.ComputePassEncoder

	// state is the current pass state.
	state PassState

	// pipeline is the currently bound pipeline (if any).
	pipeline hal.ComputePipeline

	// layout is the layout of the last descriptor-set bind (if any).
	layout hal.PipelineLayout

	dispatchCount uint32
}

// NewPass begins a compute pass on enc. enc must be encoding
// (BeginEncoding has been called).
func NewPass(enc hal.CommandEncoder, opts ...Option) (*Pass, error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	compute := enc.BeginComputePass(&hal.ComputePassDescriptor{Label: o.label})
	if compute == nil {
		return nil, ErrNoComputePass
	}

	cmdchain.Logger().Info("encoder: compute pass begun", "label", o.label)
	return &Pass{
		opts:    o,
		encoder: enc,
		compute: compute,
		state:   PassStateRecording,
	}, nil
}

// NewPassFromProvider creates a command encoder on the provider's device,
// begins encoding and opens a Pass on it. The provider's Device must be a
// hal.Device.
func NewPassFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Pass, error) {
	if provider == nil {
		return nil, ErrNotHALDevice
	}
	device, ok := provider.Device().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNotHALDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	enc, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: o.label})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := enc.BeginEncoding(o.label); err != nil {
		enc.Destroy()
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	p, err := NewPass(enc, opts...)
	if err != nil {
		enc.DiscardEncoding()
		enc.Destroy()
		return nil, err
	}
	return p, nil
}

// State returns the current pass state.
func (p *Pass) State() PassState {
	if p == nil {
		return PassStateEnded
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsEnded returns true if the pass has been ended.
func (p *Pass) IsEnded() bool {
	return p.State() == PassStateEnded
}

// checkRecording returns an error if the pass is not in Recording state.
// The caller must hold p.mu.
func (p *Pass) checkRecording() error {
	if p.state != PassStateRecording {
		return ErrPassEnded
	}
	return nil
}

// RecordBindPipeline implements cmdchain.Recorder.
func (p *Pass) RecordBindPipeline(point cmdchain.BindPoint, pipeline hal.ComputePipeline) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkRecording(); err != nil {
		return fmt.Errorf("bind pipeline: %w", err)
	}
	if point != cmdchain.BindPointCompute {
		return fmt.Errorf("bind pipeline: %w: %s", ErrUnsupportedBindPoint, point)
	}
	if pipeline == nil {
		return ErrNilPipeline
	}

	p.pipeline = pipeline
	p.compute.SetPipeline(pipeline)
	return nil
}

// RecordBindDescriptorSets implements cmdchain.Recorder. Set i is bound at
// slot firstSet+i.
func (p *Pass) RecordBindDescriptorSets(point cmdchain.BindPoint, layout hal.PipelineLayout, firstSet uint32, sets []hal.BindGroup, dynamicOffsets []uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkRecording(); err != nil {
		return fmt.Errorf("bind descriptor sets: %w", err)
	}
	if point != cmdchain.BindPointCompute {
		return fmt.Errorf("bind descriptor sets: %w: %s", ErrUnsupportedBindPoint, point)
	}
	if last := uint64(firstSet) + uint64(len(sets)); len(sets) > 0 && last > uint64(p.opts.maxBindGroups) {
		return fmt.Errorf("%w: slots %d..%d, maximum %d",
			ErrBindGroupIndexOutOfRange, firstSet, last-1, p.opts.maxBindGroups-1)
	}
	if len(dynamicOffsets) > 0 && len(sets) != 1 {
		return ErrDynamicOffsetsAmbiguous
	}
	for i, set := range sets {
		if set == nil {
			return fmt.Errorf("%w: slot %d", ErrNilBindGroup, firstSet+uint32(i))
		}
	}

	p.layout = layout
	for i, set := range sets {
		p.compute.SetBindGroup(firstSet+uint32(i), set, dynamicOffsets)
	}
	return nil
}

// RecordDispatch implements cmdchain.Recorder.
//
// WebGPU allows zero workgroups (a no-op dispatch), so counts are not
// validated here.
func (p *Pass) RecordDispatch(x, y, z uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkRecording(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	p.dispatchCount++
	p.compute.Dispatch(x, y, z)
	return nil
}

// RecordBindIndexBuffer implements cmdchain.Recorder. The bind goes to the
// IndexTarget configured with WithIndexTarget.
func (p *Pass) RecordBindIndexBuffer(buffer hal.Buffer, offset uint64, index cmdchain.IndexType) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkRecording(); err != nil {
		return fmt.Errorf("bind index buffer: %w", err)
	}
	if p.opts.indexTarget == nil {
		return ErrNoIndexTarget
	}
	if buffer == nil {
		return ErrNilBuffer
	}
	format := index.Format()
	if format == gputypes.IndexFormatUndefined {
		return fmt.Errorf("%w: %s", ErrUnsupportedIndexFormat, index)
	}
	if offset%uint64(format.Size()) != 0 {
		return fmt.Errorf("%w: offset %d, index size %d", ErrIndexOffsetNotAligned, offset, format.Size())
	}

	p.opts.indexTarget.SetIndexBuffer(buffer, format, offset)
	return nil
}

// End completes the compute pass. End is idempotent.
func (p *Pass) End() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == PassStateEnded {
		return
	}
	p.state = PassStateEnded
	p.compute.End()
	cmdchain.Logger().Info("encoder: compute pass ended",
		"label", p.opts.label, "dispatches", p.dispatchCount)
}

// Finish ends the pass if needed and finishes the parent encoder, returning
// the command buffer ready for submission.
func (p *Pass) Finish() (hal.CommandBuffer, error) {
	p.End()
	cb, err := p.encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	return cb, nil
}

// Encoder returns the parent command encoder.
func (p *Pass) Encoder() hal.CommandEncoder {
	return p.encoder
}

// Pipeline returns the currently bound pipeline, or nil.
func (p *Pass) Pipeline() hal.ComputePipeline {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pipeline
}

// Layout returns the layout of the last descriptor-set bind, or nil.
func (p *Pass) Layout() hal.PipelineLayout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout
}

// DispatchCount returns the number of dispatch calls made during this pass.
func (p *Pass) DispatchCount() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dispatchCount
}

var _ cmdchain.Recorder = (*Pass)(nil)
