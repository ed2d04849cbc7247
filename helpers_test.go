package cmdchain

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// testMarker is the compatibility marker shared by testPipeline and testLayout.
type testMarker struct{}

// otherMarker is a marker incompatible with testMarker.
type otherMarker struct{}

// fakeHandle stands in for pipelines, layouts and bind groups. It has a
// field so that distinct handles compare unequal.
type fakeHandle struct{ name string }

func (*fakeHandle) Destroy() {}

func (h *fakeHandle) String() string { return h.name }

// fakeBuffer stands in for hal.Buffer.
type fakeBuffer struct{ name string }

func (*fakeBuffer) Destroy()              {}
func (*fakeBuffer) NativeHandle() uintptr { return 0 }

var (
	pipelineHandle = &fakeHandle{name: "pipeline"}
	layoutHandle   = &fakeHandle{name: "layout"}
	setA           = &fakeHandle{name: "setA"}
	setB           = &fakeHandle{name: "setB"}
	indexBuffer    = &fakeBuffer{name: "indices"}
)

func testPipeline() Pipeline[testMarker] {
	return NewPipeline[testMarker](pipelineHandle)
}

func testLayout(firstSet uint32, sets ...hal.BindGroup) Layout[testMarker] {
	return NewLayout[testMarker](layoutHandle, firstSet, sets...)
}

// spyCall is one primitive received by spyRecorder.
type spyCall struct {
	op       string
	point    BindPoint
	pipeline hal.ComputePipeline
	layout   hal.PipelineLayout
	firstSet uint32
	sets     []hal.BindGroup
	offsets  []uint32
	dims     [3]uint32
	buffer   hal.Buffer
	offset   uint64
	index    IndexType
}

func (c spyCall) String() string {
	switch c.op {
	case "dispatch":
		return fmt.Sprintf("dispatch%v", c.dims)
	case "pipeline":
		return fmt.Sprintf("pipeline(%s, %v)", c.point, c.pipeline)
	case "sets":
		return fmt.Sprintf("sets(%s, %v, first=%d, %v, offsets=%v)", c.point, c.layout, c.firstSet, c.sets, c.offsets)
	case "index":
		return fmt.Sprintf("index(%d, %s)", c.offset, c.index)
	default:
		return c.op
	}
}

var errSpyRejected = errors.New("spy: command buffer not recording")

// spyRecorder records every primitive it receives. When fail is set, the
// call with index failAt is rejected and nothing is recorded for it.
type spyRecorder struct {
	calls  []spyCall
	fail   bool
	failAt int
	seen   int
}

func (s *spyRecorder) add(c spyCall) error {
	n := s.seen
	s.seen++
	if s.fail && n == s.failAt {
		return errSpyRejected
	}
	s.calls = append(s.calls, c)
	return nil
}

func (s *spyRecorder) RecordDispatch(x, y, z uint32) error {
	return s.add(spyCall{op: "dispatch", dims: [3]uint32{x, y, z}})
}

func (s *spyRecorder) RecordBindPipeline(point BindPoint, pipeline hal.ComputePipeline) error {
	return s.add(spyCall{op: "pipeline", point: point, pipeline: pipeline})
}

func (s *spyRecorder) RecordBindDescriptorSets(point BindPoint, layout hal.PipelineLayout, firstSet uint32, sets []hal.BindGroup, dynamicOffsets []uint32) error {
	return s.add(spyCall{op: "sets", point: point, layout: layout, firstSet: firstSet, sets: sets, offsets: dynamicOffsets})
}

func (s *spyRecorder) RecordBindIndexBuffer(buffer hal.Buffer, offset uint64, index IndexType) error {
	return s.add(spyCall{op: "index", buffer: buffer, offset: offset, index: index})
}

// describe renders calls for comparison in failure messages.
func describe(calls []spyCall) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}
