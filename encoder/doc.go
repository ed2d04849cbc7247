// Package encoder records cmdchain chains into gogpu/wgpu HAL command
// encoders.
//
// A Pass opens a compute pass on a hal.CommandEncoder and implements
// cmdchain.Recorder on top of it. HAL encoders never report errors, so Pass
// validates each primitive first (pass state, bind point, nil handles, slot
// range, index format and alignment) and returns a sentinel error instead of
// forwarding an invalid call.
//
// # Usage
//
//	enc, _ := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "frame"})
//	_ = enc.BeginEncoding("frame")
//
//	pass, err := encoder.NewPass(enc, encoder.WithLabel("blur"))
//	if err != nil {
//	    return err
//	}
//	if err := chain.Build(pass); err != nil {
//	    return err
//	}
//	cb, err := pass.Finish()
//
// Index buffers are bound in render passes, not compute passes, so
// RecordBindIndexBuffer needs an IndexTarget (a hal.RenderPassEncoder or
// hal.RenderBundleEncoder) supplied with WithIndexTarget.
package encoder
