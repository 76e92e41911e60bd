package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldStager01/fwi-predictor/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceID_GeneratesAndPropagates(t *testing.T) {
	var fromContext string
	router := gin.New()
	router.Use(TraceID())
	router.GET("/", func(c *gin.Context) {
		fromContext = logger.TraceIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get(TraceIDHeader)
	assert.Len(t, header, 36)
	assert.Equal(t, header, fromContext)
}

func TestTraceID_KeepsCallerID(t *testing.T) {
	router := gin.New()
	router.Use(TraceID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetTraceID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "caller-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "caller-42", rec.Body.String())
	assert.Equal(t, "caller-42", rec.Header().Get(TraceIDHeader))
}

func TestTraceID_ReplacesInvalidCallerID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "too long", id: strings.Repeat("a", 129)},
		{name: "contains space", id: "two words"},
		{name: "contains control character", id: "abc\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(TraceID())
			router.GET("/", func(c *gin.Context) {
				c.String(http.StatusOK, GetTraceID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(TraceIDHeader, tt.id)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, tt.id, rec.Body.String())
			assert.Len(t, rec.Body.String(), 36)
		})
	}
}

func TestRequestLogger_RecordsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	router := gin.New()
	router.Use(TraceID(), RequestLogger())
	router.POST("/predict", func(c *gin.Context) {
		c.Set(OutcomeKey, "input_error")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/predict", nil)
	req.Header.Set(TraceIDHeader, "trace-7")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "input_error", entry["outcome"])
	assert.Equal(t, "trace-7", entry["trace_id"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "prediction not served", entry["msg"])
}

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig()))
	router.POST("/api/v1/predict", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/predict", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS(CORSConfig{AllowOrigins: []string{"http://allowed.test"}}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://other.test")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestSizeLimit(t *testing.T) {
	router := gin.New()
	router.Use(RequestSizeLimit(16))
	router.POST("/", func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.String(http.StatusOK, err.Error())
			return
		}
		c.String(http.StatusOK, c.Request.PostForm.Get("RH"))
	})

	tests := []struct {
		name          string
		body          string
		contentLength bool
		want          string
	}{
		{name: "small body", body: "RH=1", contentLength: true, want: "1"},
		{name: "large body", body: "RH=" + strings.Repeat("9", 64), contentLength: true, want: "http: request body too large"},
		{name: "large body without length", body: "RH=" + strings.Repeat("9", 64), want: "http: request body too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if !tt.contentLength {
				req.ContentLength = -1
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "form-action 'self'")
}
