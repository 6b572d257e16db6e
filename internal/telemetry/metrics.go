package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for one simulation run.
type Metrics struct {
	registry *prometheus.Registry

	Population   prometheus.Gauge
	Generation   prometheus.Gauge
	Chunks       prometheus.Gauge
	Steps        prometheus.Counter
	StepDuration prometheus.Histogram
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Population: f.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Number of live cells.",
		}),
		Generation: f.NewGauge(prometheus.GaugeOpts{
			Name: "life_generation",
			Help: "Number of completed generations.",
		}),
		Chunks: f.NewGauge(prometheus.GaugeOpts{
			Name: "life_chunks",
			Help: "Number of materialized chunks (unbounded worlds only).",
		}),
		Steps: f.NewCounter(prometheus.CounterOpts{
			Name: "life_steps_total",
			Help: "Total generations computed.",
		}),
		StepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "life_step_duration_seconds",
			Help:    "Wall time of a single generation.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveStep records one generation and the counters that followed it.
func (m *Metrics) ObserveStep(d time.Duration, generation, population, chunks int) {
	if m == nil {
		return
	}
	m.Steps.Inc()
	m.StepDuration.Observe(d.Seconds())
	m.Set(generation, population, chunks)
}

// Set updates the gauges without counting a step.
func (m *Metrics) Set(generation, population, chunks int) {
	if m == nil {
		return
	}
	m.Generation.Set(float64(generation))
	m.Population.Set(float64(population))
	m.Chunks.Set(float64(chunks))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
