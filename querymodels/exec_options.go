package querymodels

import "time"

// BackoffPolicy returns the delay to sleep before retrying a throttled
// request. The argument is the number of consecutive throttles observed so
// far (1 for the first retry); policies must be non-decreasing in it. The
// counter resets after a successful request.
type BackoffPolicy func(consecutiveThrottles int) time.Duration

const (
	defaultBackoffBase = 50 * time.Millisecond
	defaultBackoffCap  = time.Second
)

// DefaultBackoff doubles a 50ms base delay per consecutive throttle,
// capped at one second.
func DefaultBackoff(consecutiveThrottles int) time.Duration {
	d := defaultBackoffBase
	for i := 1; i < consecutiveThrottles; i++ {
		d *= 2
		if d >= defaultBackoffCap {
			return defaultBackoffCap
		}
	}
	return d
}

// ExecOptions configures page-sequence execution
type ExecOptions struct {
	Backoff            BackoffPolicy // Delay policy for throttle retries (default: DefaultBackoff)
	MaxThrottleRetries int           // Throttle retries per request; 0 means unbounded (default)
	BufferSize         int           // Channel buffer size for streamed consumption (default: 1)
}

// ExecOption is a functional option for configuring execution
type ExecOption func(*ExecOptions)

// DefaultExecOptions returns default execution options
func DefaultExecOptions() ExecOptions {
	return ExecOptions{
		Backoff:    DefaultBackoff,
		BufferSize: 1,
	}
}

// WithBackoff sets the throttle backoff policy
func WithBackoff(policy BackoffPolicy) ExecOption {
	return func(opts *ExecOptions) {
		opts.Backoff = policy
	}
}

// WithMaxThrottleRetries caps the throttle retries per request. Retries are
// unbounded by default; setting a cap turns exhaustion into a surfaced error.
func WithMaxThrottleRetries(n int) ExecOption {
	return func(opts *ExecOptions) {
		opts.MaxThrottleRetries = n
	}
}

// WithBufferSize sets the channel buffer size used by streamed consumption
func WithBufferSize(size int) ExecOption {
	return func(opts *ExecOptions) {
		opts.BufferSize = size
	}
}
