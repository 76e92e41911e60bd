package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/fwi-predictor/internal/logger"
)

// OutcomeKey is the gin context key prediction handlers store the outcome
// kind under, so the access log can report it next to the status code.
const OutcomeKey = "prediction_outcome"

// RequestLogger writes one access-log line per request. Prediction routes
// always answer the form with 200, so the outcome kind is what tells a
// rejected or unavailable prediction apart from a successful one.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"status":     status,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		}

		if traceID := GetTraceID(c); traceID != "" {
			fields["trace_id"] = traceID
		}

		outcome := c.GetString(OutcomeKey)
		if outcome != "" {
			fields["outcome"] = outcome
		}

		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := logger.WithFields(fields)

		switch {
		case status >= 500:
			entry.Error("server error")
		case status >= 400:
			entry.Warn("client error")
		case outcome != "" && outcome != "success":
			entry.Warn("prediction not served")
		default:
			entry.Info("request completed")
		}
	}
}
