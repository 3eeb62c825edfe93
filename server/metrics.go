package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazepath"
)

// metrics are registered per Server so that several servers (and tests)
// can coexist in one process.
type metrics struct {
	runs      *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	explored  *prometheus.HistogramVec
	rejected  prometheus.Counter
	streaming prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazepath_runs_total",
			Help: "Searches by algorithm and outcome (found, not_found, cancelled, error)",
		}, []string{"algorithm", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_run_duration_seconds",
			Help:    "Wall-clock search duration, pacing included",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		explored: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_nodes_explored",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		}, []string{"algorithm"}),
		rejected: f.NewCounter(prometheus.CounterOpts{
			Name: "mazepath_busy_rejections_total",
			Help: "Requests rejected because a search was already running",
		}),
		streaming: f.NewGauge(prometheus.GaugeOpts{
			Name: "mazepath_streams_active",
			Help: "Open SSE search streams",
		}),
	}
}

func (m *metrics) observe(alg mazepath.Algorithm, outcome string, elapsed time.Duration, explored int) {
	m.runs.WithLabelValues(alg.String(), outcome).Inc()
	m.duration.WithLabelValues(alg.String()).Observe(elapsed.Seconds())
	m.explored.WithLabelValues(alg.String()).Observe(float64(explored))
}
