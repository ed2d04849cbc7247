// Package shader compiles WGSL compute kernels and creates the HAL objects a
// command chain binds: shader module, bind group layout, pipeline layout,
// compute pipeline and one bind group over a storage buffer.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// ScaleWGSL doubles each u32 of the storage buffer at group 0, binding 0.
//
//go:embed shaders/scale.wgsl
var ScaleWGSL string

// ScaleWorkgroupSize is the workgroup size declared by ScaleWGSL.
const ScaleWorkgroupSize = 64

// ErrInvalidSPIRV is returned when compiled output is not a whole number of
// 32-bit words.
var ErrInvalidSPIRV = errors.New("shader: SPIR-V size is not a multiple of 4")

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}

// CreateShaderModule compiles source and creates a HAL shader module from it.
// Compiled SPIR-V is kept in a process-wide cache.
func CreateShaderModule(device hal.Device, label, source string) (hal.ShaderModule, error) {
	words, err := defaultCache.Compile(source)
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module %q: %w", label, err)
	}
	return module, nil
}
