package tsutil

// Option tunes the precondition checks of a resample call
type Option func(*settings)

type settings struct {
	orderCheck bool
}

// WithOrderCheck validates that the source and sample time axes are non-decreasing.
// Without it a decreasing axis silently produces wrong values.
func WithOrderCheck() Option {
	return func(s *settings) {
		s.orderCheck = true
	}
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
