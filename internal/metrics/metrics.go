// Package metrics exposes Prometheus collectors for solver runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tundr"

// Recorder records solver activity. A nil *Recorder discards everything.
type Recorder struct {
	runs         *prometheus.CounterVec
	iterations   prometheus.Counter
	stepDuration prometheus.Histogram
	objective    prometheus.Gauge
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "runs_total",
			Help:      "Solver runs by outcome: the final status, or cancelled/failed.",
		}, []string{"outcome"}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "iterations_total",
			Help:      "Algorithm steps taken across all runs.",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "step_duration_seconds",
			Help:      "Wall time of a single algorithm step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		objective: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "objective_value",
			Help:      "Objective value at the final candidate of the most recent run.",
		}),
	}

	for _, c := range []prometheus.Collector{r.runs, r.iterations, r.stepDuration, r.objective} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveStep records one completed step.
func (r *Recorder) ObserveStep(d time.Duration) {
	if r == nil {
		return
	}
	r.iterations.Inc()
	r.stepDuration.Observe(d.Seconds())
}

// ObserveRun records the outcome of a run and its final objective value.
func (r *Recorder) ObserveRun(outcome string, value float64) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(outcome).Inc()
	r.objective.Set(value)
}
