package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/OldStager01/fwi-predictor/internal/logger"
)

const (
	TraceIDHeader = "X-Trace-ID"

	traceIDKey       = "trace_id"
	maxTraceIDLength = 128
)

// TraceID tags each request with an id. A caller-supplied X-Trace-ID is kept
// when it is short printable ASCII; anything else is replaced by a fresh
// UUID so it cannot corrupt log lines. The id goes on the gin context, on
// the request context for downstream logging, and back on the response.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		c.Set(traceIDKey, traceID)
		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))
		c.Header(TraceIDHeader, traceID)

		c.Next()
	}
}

func GetTraceID(c *gin.Context) string {
	return c.GetString(traceIDKey)
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
