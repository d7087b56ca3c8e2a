package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/san-kum/gravsim/internal/universe"
)

// Exporter publishes run progress as Prometheus metrics. It is a
// sim.Observer.
type Exporter struct {
	registry *prometheus.Registry

	steps     prometheus.Counter
	simulated prometheus.Gauge
	lastDt    prometheus.Gauge
	dt        prometheus.Histogram
	bodies    prometheus.Gauge
	energy    prometheus.Gauge
}

func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gravsim",
			Name:      "steps_total",
			Help:      "Completed integration steps.",
		}),
		simulated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gravsim",
			Name:      "simulated_seconds",
			Help:      "Simulated time elapsed in the universe.",
		}),
		lastDt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gravsim",
			Name:      "step_dt_seconds",
			Help:      "dt of the most recent step.",
		}),
		dt: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gravsim",
			Name:      "step_dt_distribution_seconds",
			Help:      "Distribution of step sizes.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 13),
		}),
		bodies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gravsim",
			Name:      "bodies",
			Help:      "Registered bodies.",
		}),
		energy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gravsim",
			Name:      "total_energy",
			Help:      "Total energy in engine units.",
		}),
	}
	e.registry.MustRegister(e.steps, e.simulated, e.lastDt, e.dt, e.bodies, e.energy)
	return e
}

// Registry exposes the registry for serving or gathering.
func (e *Exporter) Registry() *prometheus.Registry { return e.registry }

func (e *Exporter) OnStep(u *universe.Universe, dt float64) {
	e.steps.Inc()
	e.simulated.Set(u.Elapsed())
	e.lastDt.Set(dt)
	e.dt.Observe(dt)
	e.bodies.Set(float64(u.Len()))
	e.energy.Set(u.Energy())
}

// Snapshot gathers the registry into metric name → value. Histograms report
// their sample count.
func (e *Exporter) Snapshot() (map[string]float64, error) {
	families, err := e.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out[mf.GetName()] = value(mf.GetType(), m)
		}
	}
	return out, nil
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	}
	return 0
}
