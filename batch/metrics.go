// SPDX-License-Identifier: MIT

package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a Runner.
type Metrics struct {
	invocations *prometheus.CounterVec // by status: ok, error
	duration    prometheus.Histogram
	inFlight    prometheus.Gauge
	runs        *prometheus.CounterVec // by status: ok, error
}

// NewMetrics creates the batch collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gradual",
			Subsystem: "batch",
			Name:      "invocations_total",
			Help:      "Total number of program invocations",
		}, []string{"status"}),

		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gradual",
			Subsystem: "batch",
			Name:      "invocation_duration_seconds",
			Help:      "Program invocation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms to ~16s
		}),

		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gradual",
			Subsystem: "batch",
			Name:      "invocations_in_flight",
			Help:      "Number of program invocations currently running",
		}),

		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gradual",
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Total number of batch runs",
		}, []string{"status"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.invocations, m.duration, m.inFlight, m.runs} {
		if err := reg.Register(c); err != nil {
			return nil, batchErrorf("NewMetrics", err)
		}
	}

	return m, nil
}

func (m *Metrics) begin() time.Time {
	if m != nil {
		m.inFlight.Inc()
	}

	return time.Now()
}

func (m *Metrics) end(start time.Time, err error) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.duration.Observe(time.Since(start).Seconds())
	m.invocations.WithLabelValues(status(err)).Inc()
}

func (m *Metrics) run(err error) {
	if m != nil {
		m.runs.WithLabelValues(status(err)).Inc()
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
