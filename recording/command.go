package recording

import (
	"fmt"
	"reflect"

	"github.com/gogpu/cmdchain"
	"github.com/gogpu/wgpu/hal"
)

// CommandType identifies the type of a recorded primitive.
type CommandType uint8

const (
	CmdDispatch           CommandType = iota // Dispatch compute work
	CmdBindPipeline                          // Bind a pipeline
	CmdBindDescriptorSets                    // Bind descriptor sets
	CmdBindIndexBuffer                       // Bind an index buffer
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDispatch:           "Dispatch",
	CmdBindPipeline:       "BindPipeline",
	CmdBindDescriptorSets: "BindDescriptorSets",
	CmdBindIndexBuffer:    "BindIndexBuffer",
}

// commandSteps maps each CommandType to the chain step that records it.
var commandSteps = [...]cmdchain.StepKind{
	CmdDispatch:           cmdchain.StepDispatch,
	CmdBindPipeline:       cmdchain.StepBindComputePipeline,
	CmdBindDescriptorSets: cmdchain.StepBindComputeLayout,
	CmdBindIndexBuffer:    cmdchain.StepBindIndexBuffer,
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded primitives.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// DispatchCommand records a compute dispatch.
type DispatchCommand struct {
	X, Y, Z uint32
}

// Type implements Command.
func (DispatchCommand) Type() CommandType { return CmdDispatch }

func (c DispatchCommand) String() string {
	return fmt.Sprintf("Dispatch(%d, %d, %d)", c.X, c.Y, c.Z)
}

// BindPipelineCommand records a pipeline bind.
type BindPipelineCommand struct {
	Point    cmdchain.BindPoint
	Pipeline hal.ComputePipeline
}

// Type implements Command.
func (BindPipelineCommand) Type() CommandType { return CmdBindPipeline }

func (c BindPipelineCommand) String() string {
	return fmt.Sprintf("BindPipeline(%s, %T)", c.Point, c.Pipeline)
}

// BindDescriptorSetsCommand records a descriptor-set bind.
type BindDescriptorSetsCommand struct {
	Point          cmdchain.BindPoint
	Layout         hal.PipelineLayout
	FirstSet       uint32
	Sets           []hal.BindGroup
	DynamicOffsets []uint32
}

// Type implements Command.
func (BindDescriptorSetsCommand) Type() CommandType { return CmdBindDescriptorSets }

func (c BindDescriptorSetsCommand) String() string {
	return fmt.Sprintf("BindDescriptorSets(%s, first=%d, sets=%d, offsets=%v)",
		c.Point, c.FirstSet, len(c.Sets), c.DynamicOffsets)
}

// BindIndexBufferCommand records an index buffer bind.
type BindIndexBufferCommand struct {
	Buffer hal.Buffer
	Offset uint64
	Index  cmdchain.IndexType
}

// Type implements Command.
func (BindIndexBufferCommand) Type() CommandType { return CmdBindIndexBuffer }

func (c BindIndexBufferCommand) String() string {
	return fmt.Sprintf("BindIndexBuffer(offset=%d, %s)", c.Offset, c.Index)
}

// equalCommand reports whether a and b record the same primitive with the
// same handles and arguments.
func equalCommand(a, b Command) bool {
	switch x := a.(type) {
	case DispatchCommand:
		y, ok := b.(DispatchCommand)
		return ok && x == y
	case BindPipelineCommand:
		y, ok := b.(BindPipelineCommand)
		return ok && x.Point == y.Point && sameHandle(x.Pipeline, y.Pipeline)
	case BindDescriptorSetsCommand:
		y, ok := b.(BindDescriptorSetsCommand)
		if !ok || x.Point != y.Point || !sameHandle(x.Layout, y.Layout) || x.FirstSet != y.FirstSet {
			return false
		}
		if len(x.Sets) != len(y.Sets) || len(x.DynamicOffsets) != len(y.DynamicOffsets) {
			return false
		}
		for i := range x.Sets {
			if !sameHandle(x.Sets[i], y.Sets[i]) {
				return false
			}
		}
		for i := range x.DynamicOffsets {
			if x.DynamicOffsets[i] != y.DynamicOffsets[i] {
				return false
			}
		}
		return true
	case BindIndexBufferCommand:
		y, ok := b.(BindIndexBufferCommand)
		return ok && x.Offset == y.Offset && x.Index == y.Index && sameHandle(x.Buffer, y.Buffer)
	default:
		return false
	}
}

// sameHandle compares two caller-supplied handles. Handles whose dynamic
// value is not comparable (value types holding slices or maps) are compared
// by content.
func sameHandle(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
