// Package missingpipeline dispatches with a layout but no pipeline. It must
// not type-check.
package missingpipeline

import (
	"github.com/gogpu/cmdchain"
	"github.com/gogpu/wgpu/hal"
)

type blur struct{}

func Chain(l hal.PipelineLayout) cmdchain.Builder {
	c := cmdchain.BindComputeLayout(cmdchain.Begin(), cmdchain.NewLayout[blur](l, 0))
	return cmdchain.Dispatch(c, [3]uint32{1, 1, 1})
}
