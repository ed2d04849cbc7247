package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes the chain the record command builds.
type Scenario struct {
	// Label names the recording.
	Label string `yaml:"label"`

	// Dispatch holds one to three workgroup counts.
	Dispatch []uint32 `yaml:"dispatch"`

	// FirstSet is the slot the kernel's descriptor set is bound at.
	FirstSet uint32 `yaml:"first_set"`

	// Shader is a WGSL file; empty uses the built-in scale kernel.
	Shader string `yaml:"shader"`

	// StorageSize is the kernel's storage buffer size in bytes.
	StorageSize uint64 `yaml:"storage_size"`

	// Index configures an optional index buffer bind.
	Index IndexConfig `yaml:"index"`
}

// IndexConfig describes the index buffer bind of a scenario.
type IndexConfig struct {
	// Type is none, uint8, uint16 or uint32. Empty means none.
	Type string `yaml:"type"`

	// Offset is the byte offset of the first index.
	Offset uint64 `yaml:"offset"`

	// Size is the index buffer size in bytes.
	Size uint64 `yaml:"size"`
}

// Scenario errors.
var (
	ErrDispatchDimensions = errors.New("dispatch needs one to three workgroup counts")
	ErrUnknownIndexType   = errors.New("unknown index type")
)

// DefaultScenario returns the scenario used without --config: a 64x1x1
// dispatch of the scale kernel with no index buffer.
func DefaultScenario() Scenario {
	return Scenario{
		Label:       "scale",
		Dispatch:    []uint32{64},
		StorageSize: 64 * 64 * 4,
		Index:       IndexConfig{Size: 1024},
	}
}

// LoadScenario reads a YAML scenario. Fields the file omits keep their
// DefaultScenario values.
func LoadScenario(path string) (Scenario, error) {
	s := DefaultScenario()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the dispatch dimensions and the index type.
func (s Scenario) Validate() error {
	if n := len(s.Dispatch); n < 1 || n > 3 {
		return fmt.Errorf("%w: got %d", ErrDispatchDimensions, n)
	}
	switch s.Index.Type {
	case "", "none", "uint8", "uint16", "uint32":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIndexType, s.Index.Type)
	}
}

// HasIndex reports whether the scenario binds an index buffer.
func (s Scenario) HasIndex() bool {
	return s.Index.Type != "" && s.Index.Type != "none"
}
