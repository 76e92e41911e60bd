package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OldStager01/fwi-predictor/api"
	"github.com/OldStager01/fwi-predictor/internal/logger"
	"github.com/OldStager01/fwi-predictor/internal/metrics"
	"github.com/OldStager01/fwi-predictor/internal/model"
	"github.com/OldStager01/fwi-predictor/internal/predictor"
	"github.com/OldStager01/fwi-predictor/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Setup(cfg.App.LogLevel, cfg.App.Mode)
	logFile := logger.SetFile(logger.FileOptions{
		Path:       cfg.App.LogFile.Path,
		MaxSizeMB:  cfg.App.LogFile.MaxSizeMB,
		MaxBackups: cfg.App.LogFile.MaxBackups,
		MaxAgeDays: cfg.App.LogFile.MaxAgeDays,
		Compress:   cfg.App.LogFile.Compress,
	})
	defer logFile.Close()

	logger.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Mode)

	// A missing or broken model does not stop the server; predictions report
	// the model as unavailable instead.
	artifacts := model.LoadOrUnavailable(model.Paths{
		Scaler:    cfg.Model.ScalerPath,
		Regressor: cfg.Model.RegressorPath,
	})

	var m *metrics.Metrics
	opts := []predictor.Option{}
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, predictor.WithMetrics(m))
	}
	service := predictor.NewService(artifacts, opts...)

	server := api.NewServer(cfg, service, m)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on %s", server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdownChan:
		logger.Infof("Received signal %v, shutting down", sig)
	}

	timeout := cfg.App.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
