package encoder

// DefaultMaxBindGroups is the WebGPU default for maxBindGroups.
const DefaultMaxBindGroups = 4

// Option configures a Pass during creation.
//
// Example:
//
//	pass, err := encoder.NewPass(enc,
//	    encoder.WithLabel("blur"),
//	    encoder.WithIndexTarget(renderPass),
//	)
type Option func(*options)

// options holds optional configuration for Pass creation.
type options struct {
	label         string
	maxBindGroups uint32
	indexTarget   IndexTarget
}

// defaultOptions returns the default pass options.
func defaultOptions() options {
	return options{
		maxBindGroups: DefaultMaxBindGroups,
	}
}

// WithLabel sets the debug label of the compute pass and, for
// NewPassFromProvider, of the command encoder.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithMaxBindGroups sets the number of bind group slots the device supports,
// usually gputypes.Limits.MaxBindGroups. Zero keeps the default.
func WithMaxBindGroups(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBindGroups = n
		}
	}
}

// WithIndexTarget sets where index buffer binds are recorded. Without one,
// RecordBindIndexBuffer fails with ErrNoIndexTarget.
func WithIndexTarget(t IndexTarget) Option {
	return func(o *options) {
		o.indexTarget = t
	}
}
