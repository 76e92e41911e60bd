package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fwi_predictor"

// Outcome labels for PredictionsTotal.
const (
	OutcomeSuccess          = "success"
	OutcomeModelUnavailable = "model_unavailable"
	OutcomeInputError       = "input_error"
)

// Metrics holds the Prometheus collectors for the prediction service.
type Metrics struct {
	PredictionsTotal   *prometheus.CounterVec // labels: outcome={success,model_unavailable,input_error}
	PredictionDuration prometheus.Histogram
	ModelLoaded        prometheus.Gauge

	registry *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a dedicated registry.
func New() *Metrics {
	m := newMetrics()
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// NewForTesting creates Metrics without the runtime collectors so tests can
// assert on exact exposition output.
func NewForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	m := &Metrics{
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Prediction requests by outcome.",
		}, []string{"outcome"}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent parsing, scaling and predicting one request.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		ModelLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_loaded",
			Help:      "1 when the scaler and regressor were loaded, 0 otherwise.",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.PredictionsTotal,
		m.PredictionDuration,
		m.ModelLoaded,
	)

	// Pre-create every outcome series so they are exported at zero.
	for _, outcome := range []string{OutcomeSuccess, OutcomeModelUnavailable, OutcomeInputError} {
		m.PredictionsTotal.WithLabelValues(outcome)
	}

	return m
}

func (m *Metrics) SetModelLoaded(loaded bool) {
	if loaded {
		m.ModelLoaded.Set(1)
		return
	}
	m.ModelLoaded.Set(0)
}

func (m *Metrics) ObservePrediction(outcome string, seconds float64) {
	m.PredictionsTotal.WithLabelValues(outcome).Inc()
	m.PredictionDuration.Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
