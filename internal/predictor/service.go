package predictor

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/OldStager01/fwi-predictor/internal/logger"
	"github.com/OldStager01/fwi-predictor/internal/metrics"
	"github.com/OldStager01/fwi-predictor/internal/model"
	"github.com/OldStager01/fwi-predictor/pkg/models"
)

// Service turns posted measurements into an FWI prediction.
type Service struct {
	artifacts *model.Artifacts
	metrics   *metrics.Metrics
	clock     clockwork.Clock
}

type Option func(*Service)

// WithClock overrides the clock used to time predictions.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithMetrics records every outcome in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(artifacts *model.Artifacts, opts ...Option) *Service {
	if artifacts == nil {
		artifacts = model.Unavailable()
	}

	s := &Service{
		artifacts: artifacts,
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.metrics != nil {
		s.metrics.SetModelLoaded(artifacts.Available())
	}
	return s
}

// Ready reports whether predictions can be served.
func (s *Service) Ready() bool {
	return s.artifacts.Available()
}

// Predict never fails: every problem is reported through the Outcome.
func (s *Service) Predict(ctx context.Context, form FormSource) Outcome {
	return s.run(ctx, func() Outcome {
		vector, err := ParseFeatures(form)
		if err != nil {
			return InputError(err.Error())
		}
		return s.evaluate(vector)
	})
}

// Reject reports a request whose form could not be read at all. It goes
// through the same availability check and accounting as Predict.
func (s *Service) Reject(ctx context.Context, err error) Outcome {
	return s.run(ctx, func() Outcome {
		return InputError(err.Error())
	})
}

func (s *Service) run(ctx context.Context, fn func() Outcome) Outcome {
	start := s.clock.Now()

	outcome := ModelUnavailable()
	if s.artifacts.Available() {
		outcome = fn()
	}

	if s.metrics != nil {
		s.metrics.ObservePrediction(outcome.Kind.String(), s.clock.Since(start).Seconds())
	}

	switch outcome.Kind {
	case KindSuccess:
		logger.DebugCtxf(ctx, "prediction %s", outcome.Display())
	case KindInputError:
		logger.WarnCtxf(ctx, "prediction rejected: %s", outcome.Message)
	default:
		logger.WarnCtx(ctx, "prediction requested while model is not loaded")
	}
	return outcome
}

func (s *Service) evaluate(vector models.FeatureVector) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = InputError(fmt.Sprint(r))
		}
	}()

	scaled, err := s.artifacts.Scaler().Transform(vector.Values())
	if err != nil {
		return InputError(err.Error())
	}

	value, err := s.artifacts.Regressor().Predict(scaled)
	if err != nil {
		return InputError(err.Error())
	}

	return Success(Round(value, ResultDigits))
}
