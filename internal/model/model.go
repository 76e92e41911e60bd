// Package model holds the fitted scaler and regressor used for predictions
// and loads them from their JSON artifact files.
package model

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionMismatch  = errors.New("feature dimension mismatch")
	ErrUnsupportedKind    = errors.New("unsupported artifact kind")
	ErrUnsupportedVersion = errors.New("unsupported artifact version")
	ErrFeatureNames       = errors.New("artifact feature names do not match")
)

// Scaler normalises a raw feature vector before it reaches the regressor.
type Scaler interface {
	Transform(x []float64) ([]float64, error)
}

// Regressor maps a normalised feature vector to a scalar prediction.
type Regressor interface {
	Predict(x []float64) (float64, error)
}

// StandardScaler applies (x - mean) / scale per feature.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// NewStandardScaler copies mean and scale. A zero scale is replaced by 1 so
// constant features pass through centred but unscaled.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("%w: scaler has no features", ErrDimensionMismatch)
	}
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("%w: scaler mean has %d values, scale has %d", ErrDimensionMismatch, len(mean), len(scale))
	}

	s := &StandardScaler{
		mean:  make([]float64, len(mean)),
		scale: make([]float64, len(scale)),
	}
	copy(s.mean, mean)
	for i, v := range scale {
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}
	return s, nil
}

func (s *StandardScaler) NumFeatures() int {
	return len(s.mean)
}

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.mean) {
		return nil, fmt.Errorf("%w: X has %d features, but StandardScaler is expecting %d features as input",
			ErrDimensionMismatch, len(x), len(s.mean))
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.mean[i]) / s.scale[i]
	}
	return out, nil
}

// LinearRegressor evaluates intercept + coef . x. Ridge, lasso and ordinary
// least squares all share this prediction form.
type LinearRegressor struct {
	coef      []float64
	intercept float64
}

func NewLinearRegressor(coef []float64, intercept float64) (*LinearRegressor, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("%w: regressor has no coefficients", ErrDimensionMismatch)
	}

	r := &LinearRegressor{
		coef:      make([]float64, len(coef)),
		intercept: intercept,
	}
	copy(r.coef, coef)
	return r, nil
}

func (r *LinearRegressor) NumFeatures() int {
	return len(r.coef)
}

func (r *LinearRegressor) Predict(x []float64) (float64, error) {
	if len(x) != len(r.coef) {
		return 0, fmt.Errorf("%w: X has %d features, but the regressor is expecting %d features as input",
			ErrDimensionMismatch, len(x), len(r.coef))
	}

	y := r.intercept
	for i, v := range x {
		y += r.coef[i] * v
	}
	return y, nil
}
