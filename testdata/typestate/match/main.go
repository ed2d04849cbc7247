// Package match builds chains that must type-check.
package match

import (
	"github.com/gogpu/cmdchain"
	"github.com/gogpu/wgpu/hal"
)

type blur struct{}

func Chains(p hal.ComputePipeline, l hal.PipelineLayout, set hal.BindGroup, idx hal.Buffer) []cmdchain.Builder {
	pipeline := cmdchain.NewPipeline[blur](p)
	layout := cmdchain.NewLayout[blur](l, 0, set)

	a := cmdchain.Dispatch(cmdchain.BindComputePipeline(cmdchain.BindComputeLayout(cmdchain.Begin(), layout), pipeline), uint32(64))
	b := cmdchain.Dispatch(cmdchain.BindComputeLayout(cmdchain.BindComputePipeline(cmdchain.Begin(), pipeline), layout), [2]uint32{8, 8})
	c := cmdchain.Dispatch(cmdchain.BindIndexBuffer(a, cmdchain.NewIndices[uint16](idx, 128)), [3]uint32{1, 2, 3})
	d := cmdchain.Dispatch(cmdchain.BindComputePipeline(cmdchain.Begin(), cmdchain.NewPipeline[cmdchain.Unbound](p)), [1]uint32{4})
	return []cmdchain.Builder{a, b, c, d}
}
