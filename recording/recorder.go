package recording

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/cmdchain"
	"github.com/gogpu/wgpu/hal"
)

// ErrInjectedFailure is returned by a Recorder configured with WithFailure
// and a nil error.
var ErrInjectedFailure = errors.New("recording: injected failure")

// Option configures a Recorder.
type Option func(*options)

type options struct {
	label   string
	failAt  int
	failErr error
}

func defaultOptions() options {
	return options{failAt: -1}
}

// WithLabel names the recorder. The label prefixes String output.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithFailure makes the primitive at position at (0-based, counting every
// call since creation or Reset) fail with err instead of being recorded.
// A nil err is replaced by ErrInjectedFailure.
func WithFailure(at int, err error) Option {
	return func(o *options) {
		if err == nil {
			err = ErrInjectedFailure
		}
		o.failAt = at
		o.failErr = err
	}
}

// Recorder captures primitives as commands. It implements cmdchain.Recorder.
// Use Finish to obtain an immutable Recording that can be inspected or
// replayed into another recorder.
//
// Example:
//
//	rec := recording.NewRecorder()
//	if err := chain.Build(rec); err != nil {
//	    return err
//	}
//	r := rec.Finish()
//	fmt.Println(r)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	opts     options
	commands []Command
	calls    int
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...Option) *Recorder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{
		opts:     o,
		commands: make([]Command, 0, 16),
	}
}

// RecordDispatch implements cmdchain.Recorder.
func (r *Recorder) RecordDispatch(x, y, z uint32) error {
	return r.add(DispatchCommand{X: x, Y: y, Z: z})
}

// RecordBindPipeline implements cmdchain.Recorder.
func (r *Recorder) RecordBindPipeline(point cmdchain.BindPoint, pipeline hal.ComputePipeline) error {
	return r.add(BindPipelineCommand{Point: point, Pipeline: pipeline})
}

// RecordBindDescriptorSets implements cmdchain.Recorder.
// The slices are copied.
func (r *Recorder) RecordBindDescriptorSets(point cmdchain.BindPoint, layout hal.PipelineLayout, firstSet uint32, sets []hal.BindGroup, dynamicOffsets []uint32) error {
	return r.add(BindDescriptorSetsCommand{
		Point:          point,
		Layout:         layout,
		FirstSet:       firstSet,
		Sets:           append([]hal.BindGroup(nil), sets...),
		DynamicOffsets: append([]uint32(nil), dynamicOffsets...),
	})
}

// RecordBindIndexBuffer implements cmdchain.Recorder.
func (r *Recorder) RecordBindIndexBuffer(buffer hal.Buffer, offset uint64, index cmdchain.IndexType) error {
	return r.add(BindIndexBufferCommand{Buffer: buffer, Offset: offset, Index: index})
}

func (r *Recorder) add(c Command) error {
	call := r.calls
	r.calls++
	if r.opts.failErr != nil && call == r.opts.failAt {
		cmdchain.Logger().Debug("recording: injecting failure",
			"label", r.opts.label, "call", call, "command", c.Type().String())
		return fmt.Errorf("%s: %w", c.Type(), r.opts.failErr)
	}
	r.commands = append(r.commands, c)
	return nil
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands and restarts call counting.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.calls = 0
}

// Finish returns an immutable Recording of the commands captured so far.
// The Recorder may keep recording; later commands do not affect the result.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		label:    r.opts.label,
		commands: append([]Command(nil), r.commands...),
	}
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	label    string
	commands []Command
}

// Label returns the label of the Recorder that produced the recording.
func (r *Recording) Label() string {
	return r.label
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Types returns the type of every recorded command, in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Steps returns the chain step of every recorded command, in order. With
// it a Recording passed to cmdchain.From is listed by the chain's Steps.
func (r *Recording) Steps() []cmdchain.StepKind {
	steps := make([]cmdchain.StepKind, len(r.commands))
	for i, c := range r.commands {
		steps[i] = commandSteps[c.Type()]
	}
	return steps
}

// Equal reports whether r and other hold the same primitives with the same
// arguments in the same order. Labels are ignored.
func (r *Recording) Equal(other *Recording) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.commands) != len(other.commands) {
		return false
	}
	for i := range r.commands {
		if !equalCommand(r.commands[i], other.commands[i]) {
			return false
		}
	}
	return true
}

// Playback replays the recording into dst, stopping at the first error.
func (r *Recording) Playback(dst cmdchain.Recorder) error {
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case DispatchCommand:
			err = dst.RecordDispatch(c.X, c.Y, c.Z)
		case BindPipelineCommand:
			err = dst.RecordBindPipeline(c.Point, c.Pipeline)
		case BindDescriptorSetsCommand:
			err = dst.RecordBindDescriptorSets(c.Point, c.Layout, c.FirstSet, c.Sets, c.DynamicOffsets)
		case BindIndexBufferCommand:
			err = dst.RecordBindIndexBuffer(c.Buffer, c.Offset, c.Index)
		}
		if err != nil {
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

// Build implements cmdchain.Builder, so a Recording can be used as the root
// of a new chain with cmdchain.From.
func (r *Recording) Build(dst cmdchain.Recorder) error {
	return r.Playback(dst)
}

// String returns one line per command, numbered from 0.
func (r *Recording) String() string {
	var b strings.Builder
	if r.label != "" {
		fmt.Fprintf(&b, "%s:\n", r.label)
	}
	for i, c := range r.commands {
		fmt.Fprintf(&b, "%3d  %v\n", i, c)
	}
	return b.String()
}

var (
	_ cmdchain.Recorder = (*Recorder)(nil)
	_ cmdchain.Builder  = (*Recording)(nil)
)
