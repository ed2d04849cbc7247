package shader

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop HAL device for testing.
func createNoopDevice(t *testing.T) (hal.Device, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, cleanup
}

// skipIfUnsupported skips the test when naga reports a missing feature.
func skipIfUnsupported(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	msg := err.Error()
	if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
		t.Skipf("Skipping: naga feature not yet implemented: %v", err)
	}
}

func TestCompileWGSL(t *testing.T) {
	if ScaleWGSL == "" {
		t.Fatal("scale shader source is empty")
	}

	words, err := CompileWGSL(ScaleWGSL)
	skipIfUnsupported(t, err)
	if err != nil {
		t.Fatalf("CompileWGSL() error = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	if words[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want %#x", words[0], 0x07230203)
	}
}

func TestCompileWGSLInvalid(t *testing.T) {
	_, err := CompileWGSL("fn main( {")
	if err == nil {
		t.Fatal("CompileWGSL() of invalid source should fail")
	}
	if !strings.Contains(err.Error(), "compile shader") {
		t.Errorf("error = %q, want compile shader prefix", err)
	}
}

func TestNewKernel(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	k, err := NewKernel(device, KernelDescriptor{
		Label:       "scale",
		Source:      ScaleWGSL,
		StorageSize: 256,
	})
	skipIfUnsupported(t, err)
	if err != nil {
		t.Fatalf("NewKernel() error = %v", err)
	}

	if k.Module == nil || k.BindLayout == nil || k.Layout == nil {
		t.Error("shader module and layouts should be created")
	}
	if k.Pipeline == nil || k.Storage == nil || k.Group == nil {
		t.Error("pipeline, storage buffer and bind group should be created")
	}

	k.Destroy()
	if k.Pipeline != nil || k.Group != nil || k.Module != nil {
		t.Error("Destroy() should clear every handle")
	}
	// Second Destroy is a no-op.
	k.Destroy()
}

func TestNewKernelEmptyStorage(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	_, err := NewKernel(device, KernelDescriptor{Label: "scale", Source: ScaleWGSL})
	if !errors.Is(err, ErrEmptyStorage) {
		t.Errorf("NewKernel() error = %v, want %v", err, ErrEmptyStorage)
	}
}

func TestNewKernelInvalidSource(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	_, err := NewKernel(device, KernelDescriptor{
		Label:       "broken",
		Source:      "@compute fn",
		StorageSize: 64,
	})
	if err == nil {
		t.Fatal("NewKernel() with invalid source should fail")
	}
}

func TestCreateIndexBuffer(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	buf, err := CreateIndexBuffer(device, "indices", 512)
	if err != nil {
		t.Fatalf("CreateIndexBuffer() error = %v", err)
	}
	if buf == nil {
		t.Fatal("CreateIndexBuffer() returned nil buffer")
	}
	device.DestroyBuffer(buf)
}

func TestKernelDestroyNil(t *testing.T) {
	var k *Kernel
	k.Destroy()
}
