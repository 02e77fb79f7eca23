package nio

import (
	"time"

	"github.com/emove/nio/internal/channel"
	"github.com/emove/nio/internal/metrics"
	"github.com/emove/nio/log"
	_go "github.com/emove/nio/pkg/pool/go"
	"github.com/prometheus/client_golang/prometheus"
)

type Option interface {
	Apply(*options)
}

type options struct {
	channelOps []channel.Option
	maxIovecs  int
}

type channelOption struct {
	f func(ops *options)
}

func newOption(f func(ops *options)) Option {
	return &channelOption{
		f: f,
	}
}

func (fco *channelOption) Apply(ops *options) {
	fco.f(ops)
}

// WithLogger sets the logger, the global logger by default.
func WithLogger(l log.Logger) Option {
	return newOption(func(ops *options) {
		ops.channelOps = append(ops.channelOps, channel.WithLogger(l))
	})
}

// WithMetrics records channel metrics on m, see NewMetrics.
func WithMetrics(m *Metrics) Option {
	return newOption(func(ops *options) {
		if m != nil {
			ops.channelOps = append(ops.channelOps, channel.WithMetrics(m.r))
		}
	})
}

// WithAsyncListener runs completion listeners on a shared goroutine pool.
func WithAsyncListener() Option {
	return newOption(func(ops *options) {
		ops.channelOps = append(ops.channelOps, channel.WithAsyncListener())
	})
}

// MaxListenerPoolCapacity sets the size of the listener pool. It only takes
// effect before the first channel using WithAsyncListener is created.
func MaxListenerPoolCapacity(size int) Option {
	return newOption(func(ops *options) {
		_go.DefaultAntsPoolSize = size
	})
}

// WithMaxIovecs caps the buffers passed to a single writev.
func WithMaxIovecs(n int) Option {
	return newOption(func(ops *options) {
		ops.maxIovecs = n
	})
}

// WithBackoff bounds the waits of Drain.
func WithBackoff(base, max time.Duration) Option {
	return newOption(func(ops *options) {
		ops.channelOps = append(ops.channelOps, channel.WithBackoff(base, max))
	})
}

func WithOnChannelClosed(onChannelClosed ...OnChannelClosed) Option {
	return newOption(func(ops *options) {
		for _, hook := range onChannelClosed {
			hook := hook
			ops.channelOps = append(ops.channelOps, channel.AddOnClosed(func(ch *channel.Channel, err error) {
				hook(ch, err)
			}))
		}
	})
}

// Metrics is a set of Prometheus collectors shared by channels.
type Metrics struct {
	r *metrics.Registry
}

// NewMetrics registers the channel collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{r: metrics.NewRegistry(reg)}
}
