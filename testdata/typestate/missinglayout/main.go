// Package missinglayout dispatches a pipeline that needs a layout before any
// layout is bound. It must not type-check.
package missinglayout

import (
	"github.com/gogpu/cmdchain"
	"github.com/gogpu/wgpu/hal"
)

type blur struct{}

func Chain(p hal.ComputePipeline) cmdchain.Builder {
	c := cmdchain.BindComputePipeline(cmdchain.Begin(), cmdchain.NewPipeline[blur](p))
	return cmdchain.Dispatch(c, uint32(64))
}
