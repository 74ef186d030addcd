package uptime

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects sweep and probe outcomes.
type Metrics struct {
	sweeps        *prometheus.CounterVec
	probes        *prometheus.CounterVec
	probeDuration *prometheus.HistogramVec
}

// NewMetrics creates the sweep collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		sweeps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uptime_sweeps_total",
				Help: "Monitor sweeps by outcome (run, skipped, failed).",
			},
			[]string{"outcome"},
		),
		probes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uptime_probes_total",
				Help: "Monitor probes by monitor id and result.",
			},
			[]string{"monitor", "ok"},
		),
		probeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uptime_probe_duration_seconds",
				Help:    "Latency of monitor probes.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
			},
			[]string{"monitor"},
		),
	}

	for _, c := range []prometheus.Collector{m.sweeps, m.probes, m.probeDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveSweep counts one sweep outcome. A nil receiver is a no-op.
func (m *Metrics) ObserveSweep(outcome string) {
	if m == nil {
		return
	}
	m.sweeps.WithLabelValues(outcome).Inc()
}

// ObserveProbe records one probe result. A nil receiver is a no-op.
func (m *Metrics) ObserveProbe(monitorID string, ok bool, d time.Duration) {
	if m == nil {
		return
	}
	m.probes.WithLabelValues(monitorID, strconv.FormatBool(ok)).Inc()
	m.probeDuration.WithLabelValues(monitorID).Observe(d.Seconds())
}
