package form

// CallOption tunes a single controller operation.
type CallOption func(*callOptions)

type callOptions struct {
	silent     bool
	keepForced bool
}

// Silent suppresses listener notification for this call.
func Silent() CallOption {
	return func(o *callOptions) {
		o.silent = true
	}
}

// KeepForcedErrors makes Validate leave forced errors in place instead
// of clearing them before the pass.
func KeepForcedErrors() CallOption {
	return func(o *callOptions) {
		o.keepForced = true
	}
}

func applyCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
