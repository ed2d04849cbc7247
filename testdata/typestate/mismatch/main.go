// Package mismatch dispatches with a layout whose marker differs from the
// pipeline's. It must not type-check.
package mismatch

import (
	"github.com/gogpu/cmdchain"
	"github.com/gogpu/wgpu/hal"
)

type blur struct{}

type reduce struct{}

func Chain(p hal.ComputePipeline, l hal.PipelineLayout) cmdchain.Builder {
	c := cmdchain.BindComputePipeline(cmdchain.Begin(), cmdchain.NewPipeline[blur](p))
	c2 := cmdchain.BindComputeLayout(c, cmdchain.NewLayout[reduce](l, 0))
	return cmdchain.Dispatch(c2, uint32(64))
}
