package dispatcher

// DefaultMaxCount caps repeat counts unless WithMaxCount says otherwise.
const DefaultMaxCount = 10000

type options struct {
	stats         bool
	recoverPanics bool
	maxCount      int
}

func defaultOptions() options {
	return options{
		recoverPanics: true,
		maxCount:      DefaultMaxCount,
	}
}

// Option configures a Dispatcher.
type Option func(*options)

// WithStats enables per-action dispatch statistics.
func WithStats() Option {
	return func(o *options) {
		o.stats = true
	}
}

// WithoutPanicRecovery lets handler panics propagate to the caller.
func WithoutPanicRecovery() Option {
	return func(o *options) {
		o.recoverPanics = false
	}
}

// WithMaxCount caps the repeat count of every action at n.
// Zero removes the cap.
func WithMaxCount(n int) Option {
	return func(o *options) {
		o.maxCount = n
	}
}
