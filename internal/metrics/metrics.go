// Package metrics provides Prometheus instrumentation for channel writes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "nio"
	subsystem = "channel"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Registry holds the collectors shared by every channel created with it.
type Registry struct {
	BytesWritten  prometheus.Counter
	WriteCalls    prometheus.Counter
	PartialWrites prometheus.Counter
	WouldBlock    prometheus.Counter
	Operations    *prometheus.CounterVec
	PendingBytes  prometheus.Gauge
}

// NewRegistry registers the collectors with reg. Use one Registry per
// registerer: registering twice panics.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		BytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_written_total",
			Help:      "Total number of bytes accepted by the transport",
		}),
		WriteCalls: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "write_calls_total",
			Help:      "Total number of scatter writes issued",
		}),
		PartialWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "partial_writes_total",
			Help:      "Scatter writes that left bytes of the operation unsent",
		}),
		WouldBlock: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "would_block_total",
			Help:      "Flushes stopped because the transport could not make progress",
		}),
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Completed write operations by result",
		}, []string{"result"}),
		PendingBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pending_bytes",
			Help:      "Bytes queued on channels and not yet accepted",
		}),
	}
}

// The helpers below accept a nil receiver so callers need no enabled check.

func (r *Registry) Written(n int, partial bool) {
	if r == nil {
		return
	}
	r.WriteCalls.Inc()
	r.BytesWritten.Add(float64(n))
	r.PendingBytes.Sub(float64(n))
	if partial {
		r.PartialWrites.Inc()
	}
}

func (r *Registry) Blocked() {
	if r == nil {
		return
	}
	r.WouldBlock.Inc()
}

func (r *Registry) Queued(n int) {
	if r == nil {
		return
	}
	r.PendingBytes.Add(float64(n))
}

// Done counts a finished operation and drops its unsent bytes from the
// pending gauge.
func (r *Registry) Done(unsent int, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.Operations.WithLabelValues(ResultFailure).Inc()
		r.PendingBytes.Sub(float64(unsent))
		return
	}
	r.Operations.WithLabelValues(ResultSuccess).Inc()
}
