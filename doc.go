// Package cmdchain builds GPU command-recording sequences whose pipeline and
// layout compatibility is checked by the Go type checker.
//
// # Overview
//
// A chain is assembled from four builder functions, each wrapping the
// previous chain in a new node:
//
//   - BindComputeLayout binds a layout's descriptor sets at the compute bind point
//   - BindComputePipeline binds a compute pipeline
//   - BindIndexBuffer binds an index buffer, with the index format taken
//     from the buffer's element type
//   - Dispatch dispatches compute work
//
// Build records the chain into a Recorder, in the order the actions were
// appended.
//
// # Compatibility Markers
//
// Pipelines and layouts carry a compatibility marker type K. A chain tracks
// the marker of the last bound compute pipeline and the last bound compute
// layout as type parameters, and Dispatch only accepts a chain where both
// are the same type. Dispatching with a layout built for a different
// pipeline is a compile error, not a runtime check:
//
//	type blurSets struct{}
//
//	pipeline := cmdchain.NewPipeline[blurSets](halPipeline)
//	layout := cmdchain.NewLayout[blurSets](halLayout, 0, inputGroup, outputGroup)
//
//	c := cmdchain.Begin()
//	c1 := cmdchain.BindComputeLayout(c, layout)
//	c2 := cmdchain.BindComputePipeline(c1, pipeline)
//	c3 := cmdchain.Dispatch(c2, [2]uint32{width / 8, height / 8})
//
//	if err := c3.Build(pass); err != nil {
//	    return err
//	}
//
// A pipeline that binds no descriptor sets may use Unbound as its marker
// and dispatch without any layout bound. Markers are an approximation:
// the check is on the declared marker, not on the sets a shader reads.
//
// # Type Erasure
//
// Every chain implements Builder, so chains in different type states can be
// stored behind one interface and recorded later.
//
// # Recorders
//
// The Recorder interface is the command buffer. Sub-packages provide two
// implementations:
//   - encoder: records into a gogpu/wgpu HAL compute pass
//   - recording: captures primitives as typed commands for inspection
//     and playback
package cmdchain
