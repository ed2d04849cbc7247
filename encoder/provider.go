package encoder

import (
	"errors"
	"fmt"

	"github.com/gogpu/cmdchain"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// ErrNoAdapter is returned when a backend exposes no adapters.
var ErrNoAdapter = errors.New("encoder: backend exposed no adapters")

// Provider is a gpucontext.DeviceProvider over a HAL device opened without a
// surface. It is what the command line tool and tests record into when no
// window system is involved.
type Provider struct {
	instance hal.Instance
	adapter  hal.ExposedAdapter
	device   hal.Device
	queue    hal.Queue
}

// OpenHeadless opens a Provider on the noop HAL backend. Every HAL call
// succeeds and does nothing.
func OpenHeadless() (*Provider, error) {
	return OpenBackend(noop.API{})
}

// OpenBackend opens a Provider on the first adapter backend exposes, with
// default limits and no optional features.
func OpenBackend(backend hal.Backend) (*Provider, error) {
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return nil, fmt.Errorf("create %s instance: %w", backend.Variant(), err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: %s", ErrNoAdapter, backend.Variant())
	}
	exposed := adapters[0]

	open, err := exposed.Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open adapter %q: %w", exposed.Info.Name, err)
	}

	cmdchain.Logger().Info("encoder: device opened",
		"backend", backend.Variant(), "adapter", exposed.Info.Name)
	return &Provider{
		instance: instance,
		adapter:  exposed,
		device:   open.Device,
		queue:    open.Queue,
	}, nil
}

// Device returns the hal.Device.
func (p *Provider) Device() gpucontext.Device {
	return p.device
}

// Queue returns the hal.Queue.
func (p *Provider) Queue() gpucontext.Queue {
	return p.queue
}

// SurfaceFormat returns TextureFormatUndefined; a headless provider has no
// surface.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Adapter returns the hal.Adapter the device was opened on.
func (p *Provider) Adapter() gpucontext.Adapter {
	return p.adapter.Adapter
}

// AdapterInfo returns the adapter name and type.
func (p *Provider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: p.adapter.Info.Name,
		Type: adapterType(p.adapter.Info.DeviceType),
	}
}

// HALDevice returns the device without the gpucontext type token.
func (p *Provider) HALDevice() hal.Device {
	return p.device
}

// Limits returns the limits of the adapter, which the device was opened with.
func (p *Provider) Limits() gputypes.Limits {
	return p.adapter.Capabilities.Limits
}

// NewPass opens a Pass on this provider's device, bounded by the adapter's
// MaxBindGroups limit.
func (p *Provider) NewPass(opts ...Option) (*Pass, error) {
	opts = append([]Option{WithMaxBindGroups(p.Limits().MaxBindGroups)}, opts...)
	return NewPassFromProvider(p, opts...)
}

// Close destroys the device and the instance.
func (p *Provider) Close() {
	if p.device != nil {
		p.device.Destroy()
		p.device = nil
	}
	if p.instance != nil {
		p.instance.Destroy()
		p.instance = nil
	}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

var _ gpucontext.DeviceProvider = (*Provider)(nil)
