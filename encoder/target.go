package encoder

import (
	"fmt"

	"github.com/gogpu/cmdchain"
	"github.com/gogpu/cmdchain/recording"
	"github.com/gogpu/wgpu/hal"
)

// TargetName is the recording target name HeadlessTarget registers under.
const TargetName = "hal"

func init() {
	recording.Register(TargetName, func() cmdchain.Recorder {
		t, err := NewHeadlessTarget(WithLabel(TargetName))
		if err != nil {
			cmdchain.Logger().Error("encoder: headless target unavailable", "err", err)
			return nil
		}
		return t
	})
}

// HeadlessTarget is a Pass on a device of its own, opened with OpenHeadless.
// Index buffer binds go to a render pass on a second command encoder of the
// same device.
type HeadlessTarget struct {
	*Pass

	provider *Provider
	indexEnc hal.CommandEncoder
	render   hal.RenderPassEncoder
}

// NewHeadlessTarget opens a headless device and a Pass on it. WithIndexTarget
// in opts is overridden.
func NewHeadlessTarget(opts ...Option) (*HeadlessTarget, error) {
	provider, err := OpenHeadless()
	if err != nil {
		return nil, err
	}

	indexEnc, err := provider.HALDevice().CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "index"})
	if err != nil {
		provider.Close()
		return nil, fmt.Errorf("create index encoder: %w", err)
	}
	if err := indexEnc.BeginEncoding("index"); err != nil {
		indexEnc.Destroy()
		provider.Close()
		return nil, fmt.Errorf("begin index encoding: %w", err)
	}
	render := indexEnc.BeginRenderPass(&hal.RenderPassDescriptor{Label: "index"})

	passOpts := append(opts[:len(opts):len(opts)], WithIndexTarget(render))
	pass, err := provider.NewPass(passOpts...)
	if err != nil {
		render.End()
		indexEnc.DiscardEncoding()
		indexEnc.Destroy()
		provider.Close()
		return nil, err
	}

	return &HeadlessTarget{
		Pass:     pass,
		provider: provider,
		indexEnc: indexEnc,
		render:   render,
	}, nil
}

// HALDevice returns the device the target records on. Resources bound into
// the target must be created on it.
func (t *HeadlessTarget) HALDevice() hal.Device {
	return t.provider.HALDevice()
}

// Provider returns the headless provider backing the target.
func (t *HeadlessTarget) Provider() *Provider {
	return t.provider
}

// Finish ends both passes and returns the compute command buffer followed by
// the index command buffer.
func (t *HeadlessTarget) Finish() ([]hal.CommandBuffer, error) {
	compute, err := t.Pass.Finish()
	if err != nil {
		return nil, err
	}
	t.render.End()
	index, err := t.indexEnc.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end index encoding: %w", err)
	}
	return []hal.CommandBuffer{compute, index}, nil
}

// Close releases the encoders and the device.
func (t *HeadlessTarget) Close() {
	t.Pass.End()
	if t.indexEnc != nil {
		t.indexEnc.Destroy()
		t.indexEnc = nil
	}
	if enc := t.Pass.Encoder(); enc != nil {
		enc.Destroy()
	}
	t.provider.Close()
}

var _ cmdchain.Recorder = (*HeadlessTarget)(nil)
