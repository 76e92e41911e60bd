package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/fwi-predictor/api/handlers"
	"github.com/OldStager01/fwi-predictor/api/middleware"
	"github.com/OldStager01/fwi-predictor/internal/metrics"
	"github.com/OldStager01/fwi-predictor/internal/predictor"
	"github.com/OldStager01/fwi-predictor/pkg/config"
	"github.com/OldStager01/fwi-predictor/web"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     config.APIConfig
	metricsCfg config.MetricsConfig
	service    *predictor.Service
	metrics    *metrics.Metrics
}

// NewServer wires the routes. m may be nil when metrics are disabled.
func NewServer(cfg *config.Config, service *predictor.Service, m *metrics.Metrics) *Server {
	switch cfg.App.Mode {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	s := &Server{
		router:     router,
		config:     cfg.API,
		metricsCfg: cfg.Metrics,
		service:    service,
		metrics:    m,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.API.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.TraceID())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins:     s.config.CORS.AllowedOrigins,
		AllowMethods:     s.config.CORS.AllowedMethods,
		AllowHeaders:     s.config.CORS.AllowedHeaders,
		ExposeHeaders:    s.config.CORS.ExposedHeaders,
		AllowCredentials: s.config.CORS.AllowCredentials,
	}))
	s.router.Use(middleware.RequestSizeLimit(s.config.MaxBodyBytes))
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.service)
	predictHandler := handlers.NewPredictHandler(s.service)

	// Health
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/health/ready", healthHandler.Ready)
	s.router.GET("/health/live", healthHandler.Live)

	// Pages
	s.router.GET("/", handlers.Index)
	s.router.GET("/predict", predictHandler.Form)
	s.router.POST("/predict", predictHandler.Submit)

	// JSON API
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/predict", predictHandler.API)
	}

	if s.metricsCfg.Enabled && s.metrics != nil {
		s.router.GET(s.metricsCfg.Path, gin.WrapH(s.metrics.Handler()))
	}
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ServeHTTP delegates to the router, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
