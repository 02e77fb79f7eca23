package channel

import (
	"time"

	"github.com/emove/nio/internal/metrics"
	"github.com/emove/nio/log"
)

// OnClosed is invoked once the channel is closed, with the close cause.
type OnClosed func(ch *Channel, err error)

type Option func(ops *options)

type options struct {
	logger        log.Logger
	metrics       *metrics.Registry
	asyncListener bool
	backoffBase   time.Duration
	backoffMax    time.Duration
	onClosed      []OnClosed
}

func defaultOptions() *options {
	return &options{
		logger: log.GetLogger(),
	}
}

func WithLogger(l log.Logger) Option {
	return func(ops *options) {
		if l != nil {
			ops.logger = l
		}
	}
}

func WithMetrics(r *metrics.Registry) Option {
	return func(ops *options) {
		ops.metrics = r
	}
}

// WithAsyncListener runs completion listeners on the shared worker pool
// instead of the goroutine calling Flush.
func WithAsyncListener() Option {
	return func(ops *options) {
		ops.asyncListener = true
	}
}

// WithBackoff bounds the wait of Drain between two blocked flushes. Zero
// values keep the iox defaults.
func WithBackoff(base, max time.Duration) Option {
	return func(ops *options) {
		ops.backoffBase = base
		ops.backoffMax = max
	}
}

func AddOnClosed(onClosed ...OnClosed) Option {
	return func(ops *options) {
		ops.onClosed = append(ops.onClosed, onClosed...)
	}
}
