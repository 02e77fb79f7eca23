package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry(prometheus.NewRegistry())

	r.Queued(10)
	r.Written(4, true)
	r.Written(6, false)
	r.Done(0, nil)

	r.Queued(3)
	r.Blocked()
	r.Done(3, errors.New("broken pipe"))

	assert.Equal(t, float64(10), testutil.ToFloat64(r.BytesWritten))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.WriteCalls))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.PartialWrites))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.WouldBlock))
	assert.Equal(t, float64(0), testutil.ToFloat64(r.PendingBytes))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.Operations.WithLabelValues(ResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.Operations.WithLabelValues(ResultFailure)))
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.Queued(1)
		r.Written(1, false)
		r.Blocked()
		r.Done(1, nil)
	})
}

func TestDoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRegistry(reg)
	assert.Panics(t, func() { NewRegistry(reg) })
}
