package main

import (
	"fmt"

	"github.com/gogpu/cmdchain"
	"github.com/gogpu/wgpu/hal"
)

// kernelMarker is the compatibility marker shared by the pipeline and layout
// of the scenario kernel.
type kernelMarker struct{}

// resources are the handles a scenario chain binds.
type resources struct {
	pipeline hal.ComputePipeline
	layout   hal.PipelineLayout
	sets     []hal.BindGroup
	index    hal.Buffer
}

// buildChain builds: layout bind, pipeline bind, optional index bind, dispatch.
func buildChain(s Scenario, res resources) (cmdchain.Builder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	layout := cmdchain.NewLayout[kernelMarker](res.layout, s.FirstSet, res.sets...)
	pipeline := cmdchain.NewPipeline[kernelMarker](res.pipeline)
	c := cmdchain.BindComputePipeline(cmdchain.BindComputeLayout(cmdchain.Begin(), layout), pipeline)

	switch s.Index.Type {
	case "uint8":
		return dispatch(cmdchain.BindIndexBuffer(c, cmdchain.NewIndices[uint8](res.index, s.Index.Offset)), s.Dispatch)
	case "uint16":
		return dispatch(cmdchain.BindIndexBuffer(c, cmdchain.NewIndices[uint16](res.index, s.Index.Offset)), s.Dispatch)
	case "uint32":
		return dispatch(cmdchain.BindIndexBuffer(c, cmdchain.NewIndices[uint32](res.index, s.Index.Offset)), s.Dispatch)
	default:
		return dispatch(c, s.Dispatch)
	}
}

// dispatch appends a dispatch whose dimension count is chosen at run time.
func dispatch[I cmdchain.IndexElement](
	c cmdchain.Commands[kernelMarker, kernelMarker, cmdchain.Unbound, cmdchain.Unbound, cmdchain.Unbound, cmdchain.Unbound, I],
	dims []uint32,
) (cmdchain.Builder, error) {
	switch len(dims) {
	case 1:
		return cmdchain.Dispatch(c, dims[0]), nil
	case 2:
		return cmdchain.Dispatch(c, [2]uint32(dims)), nil
	case 3:
		return cmdchain.Dispatch(c, [3]uint32(dims)), nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrDispatchDimensions, len(dims))
	}
}
