package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveStep(2 * time.Millisecond)
	r.ObserveStep(3 * time.Millisecond)
	r.ObserveRun("optimal", 4.5)
	r.ObserveRun("optimal", 0.5)
	r.ObserveRun("iteration_limit", 1.25)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.iterations))
	assert.Equal(t, 1.25, testutil.ToFloat64(r.objective))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.runs.WithLabelValues("optimal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("iteration_limit")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.runs))
	assert.Equal(t, 1, testutil.CollectAndCount(r.stepDuration))
}

func TestRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveStep(time.Second)
		r.ObserveRun("optimal", 1)
	})
}
