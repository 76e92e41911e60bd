package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/OldStager01/fwi-predictor/internal/metrics"
)

func TestObservePrediction(t *testing.T) {
	m := metrics.NewForTesting()

	m.ObservePrediction(metrics.OutcomeSuccess, 0.0002)
	m.ObservePrediction(metrics.OutcomeSuccess, 0.0003)
	m.ObservePrediction(metrics.OutcomeInputError, 0.0001)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues(metrics.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues(metrics.OutcomeInputError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues(metrics.OutcomeModelUnavailable)))
}

func TestSetModelLoaded(t *testing.T) {
	m := metrics.NewForTesting()

	m.SetModelLoaded(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModelLoaded))

	m.SetModelLoaded(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ModelLoaded))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.SetModelLoaded(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "fwi_predictor_model_loaded 1")
	assert.Contains(t, body, `fwi_predictor_predictions_total{outcome="model_unavailable"} 0`)
	assert.Contains(t, body, "go_goroutines")
}
