package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/fwi-predictor/api/middleware"
	"github.com/OldStager01/fwi-predictor/internal/predictor"
)

type PredictHandler struct {
	service *predictor.Service
}

func NewPredictHandler(service *predictor.Service) *PredictHandler {
	return &PredictHandler{service: service}
}

type PredictionResponse struct {
	Status  string   `json:"status"`
	Result  *float64 `json:"result,omitempty"`
	Display string   `json:"display"`
	Error   string   `json:"error,omitempty"`
}

// Form renders the prediction form with no result.
func (h *PredictHandler) Form(c *gin.Context) {
	renderForm(c, "", false)
}

// Submit renders the form together with the prediction outcome. The page is
// always served with 200; failures are shown in the result area.
func (h *PredictHandler) Submit(c *gin.Context) {
	outcome := h.predict(c)
	renderForm(c, outcome.Display(), outcome.OK())
}

// API godoc
// @Summary Predict FWI
// @Description Predicts the Fire Weather Index from form-encoded measurements
// @Tags predictions
// @Accept x-www-form-urlencoded
// @Produce json
// @Param Temperature formData number false "Temperature"
// @Param RH formData number false "Relative humidity"
// @Success 200 {object} PredictionResponse
// @Failure 400 {object} PredictionResponse
// @Failure 503 {object} PredictionResponse
// @Router /api/v1/predict [post]
func (h *PredictHandler) API(c *gin.Context) {
	outcome := h.predict(c)

	resp := PredictionResponse{
		Status:  outcome.Kind.String(),
		Display: outcome.Display(),
	}

	status := http.StatusOK
	switch outcome.Kind {
	case predictor.KindSuccess:
		// JSON has no encoding for NaN or infinities.
		if !math.IsNaN(outcome.Value) && !math.IsInf(outcome.Value, 0) {
			value := outcome.Value
			resp.Result = &value
		}
	case predictor.KindInputError:
		status = http.StatusBadRequest
		resp.Error = outcome.Message
	default:
		status = http.StatusServiceUnavailable
		resp.Error = outcome.Message
	}

	c.JSON(status, resp)
}

func (h *PredictHandler) predict(c *gin.Context) predictor.Outcome {
	var outcome predictor.Outcome
	// Parse up front so an unreadable body is reported instead of being
	// treated as a form with every field absent.
	if err := c.Request.ParseForm(); err != nil {
		outcome = h.service.Reject(c.Request.Context(), err)
	} else {
		outcome = h.service.Predict(c.Request.Context(), c)
	}
	c.Set(middleware.OutcomeKey, outcome.Kind.String())
	return outcome
}
