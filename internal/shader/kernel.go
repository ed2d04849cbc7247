package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ErrEmptyStorage is returned when a kernel is described without a storage buffer size.
var ErrEmptyStorage = errors.New("shader: storage buffer size must be positive")

// KernelDescriptor describes a single-buffer compute kernel.
type KernelDescriptor struct {
	// Label prefixes the debug labels of every created object.
	Label string

	// Source is the WGSL source. It must declare a read_write storage buffer
	// at group 0, binding 0.
	Source string

	// EntryPoint defaults to "main".
	EntryPoint string

	// StorageSize is the size in bytes of the storage buffer.
	StorageSize uint64
}

// Kernel owns the HAL objects of one compute kernel.
type Kernel struct {
	device hal.Device

	Module     hal.ShaderModule
	BindLayout hal.BindGroupLayout
	Layout     hal.PipelineLayout
	Pipeline   hal.ComputePipeline
	Storage    hal.Buffer
	Group      hal.BindGroup
}

// NewKernel creates every object of the kernel described by desc. On error,
// objects created so far are destroyed.
func NewKernel(device hal.Device, desc KernelDescriptor) (*Kernel, error) {
	if desc.StorageSize == 0 {
		return nil, ErrEmptyStorage
	}
	entry := desc.EntryPoint
	if entry == "" {
		entry = "main"
	}

	k := &Kernel{device: device}
	var err error

	k.Module, err = CreateShaderModule(device, desc.Label+"_shader", desc.Source)
	if err != nil {
		return nil, err
	}

	k.BindLayout, err = device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: desc.Label + "_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: gputypes.ShaderStageCompute,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage},
		}},
	})
	if err != nil {
		k.Destroy()
		return nil, fmt.Errorf("create bind group layout: %w", err)
	}

	k.Layout, err = device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            desc.Label + "_layout",
		BindGroupLayouts: []hal.BindGroupLayout{k.BindLayout},
	})
	if err != nil {
		k.Destroy()
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	k.Pipeline, err = device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  desc.Label + "_pipeline",
		Layout: k.Layout,
		Compute: hal.ComputeState{
			Module:     k.Module,
			EntryPoint: entry,
		},
	})
	if err != nil {
		k.Destroy()
		return nil, fmt.Errorf("create compute pipeline: %w", err)
	}

	k.Storage, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: desc.Label + "_storage",
		Size:  desc.StorageSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		k.Destroy()
		return nil, fmt.Errorf("create storage buffer: %w", err)
	}

	k.Group, err = device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  desc.Label + "_bind_group",
		Layout: k.BindLayout,
		Entries: []gputypes.BindGroupEntry{{
			Binding: 0,
			Resource: gputypes.BufferBinding{
				Buffer: k.Storage.NativeHandle(),
				Size:   desc.StorageSize,
			},
		}},
	})
	if err != nil {
		k.Destroy()
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	return k, nil
}

// CreateIndexBuffer creates a buffer usable as an index buffer.
func CreateIndexBuffer(device hal.Device, label string, size uint64) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create index buffer %q: %w", label, err)
	}
	return buf, nil
}

// Destroy releases the kernel's objects in reverse creation order. Destroy
// is safe to call on a partially created kernel and more than once.
func (k *Kernel) Destroy() {
	if k == nil || k.device == nil {
		return
	}
	d := k.device

	if k.Group != nil {
		d.DestroyBindGroup(k.Group)
		k.Group = nil
	}
	if k.Storage != nil {
		d.DestroyBuffer(k.Storage)
		k.Storage = nil
	}
	if k.Pipeline != nil {
		d.DestroyComputePipeline(k.Pipeline)
		k.Pipeline = nil
	}
	if k.Layout != nil {
		d.DestroyPipelineLayout(k.Layout)
		k.Layout = nil
	}
	if k.BindLayout != nil {
		d.DestroyBindGroupLayout(k.BindLayout)
		k.BindLayout = nil
	}
	if k.Module != nil {
		d.DestroyShaderModule(k.Module)
		k.Module = nil
	}
}
