package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OldStager01/fwi-predictor/internal/logger"
	"github.com/OldStager01/fwi-predictor/pkg/models"
)

const (
	ArtifactVersion = 1

	KindStandardScaler = "standard_scaler"
	KindRidge          = "ridge"
	KindLinear         = "linear"
	KindLasso          = "lasso"
)

// Paths locates the two artifact files.
type Paths struct {
	Scaler    string
	Regressor string
}

type scalerFile struct {
	Kind         string    `json:"kind"`
	Version      int       `json:"version"`
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

type regressorFile struct {
	Kind         string    `json:"kind"`
	Version      int       `json:"version"`
	FeatureNames []string  `json:"feature_names"`
	Coef         []float64 `json:"coef"`
	Intercept    float64   `json:"intercept"`
}

// Load reads and validates both artifacts.
func Load(paths Paths) (*Artifacts, error) {
	scaler, err := LoadScaler(paths.Scaler)
	if err != nil {
		return nil, err
	}

	regressor, err := LoadRegressor(paths.Regressor)
	if err != nil {
		return nil, err
	}

	if scaler.NumFeatures() != regressor.NumFeatures() {
		return nil, fmt.Errorf("%w: scaler has %d features, regressor has %d",
			ErrDimensionMismatch, scaler.NumFeatures(), regressor.NumFeatures())
	}

	return NewArtifacts(scaler, regressor), nil
}

// LoadOrUnavailable never fails: a load error is logged and the unavailable
// sentinel is returned so the server can still start.
func LoadOrUnavailable(paths Paths) *Artifacts {
	artifacts, err := Load(paths)
	if err != nil {
		logger.WithError(err).WithFields(map[string]interface{}{
			"scaler_path":    paths.Scaler,
			"regressor_path": paths.Regressor,
		}).Error("Model loading error, predictions are disabled")
		return Unavailable()
	}

	logger.WithFields(map[string]interface{}{
		"scaler_path":    paths.Scaler,
		"regressor_path": paths.Regressor,
	}).Info("Model artifacts loaded")
	return artifacts
}

func LoadScaler(path string) (*StandardScaler, error) {
	var doc scalerFile
	if err := readArtifact(path, &doc); err != nil {
		return nil, err
	}

	if doc.Kind != KindStandardScaler {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedKind, doc.Kind)
	}
	if err := checkHeader(path, doc.Version, doc.FeatureNames); err != nil {
		return nil, err
	}
	if len(doc.Mean) != models.FeatureCount {
		return nil, fmt.Errorf("%s: %w: mean has %d values, want %d",
			path, ErrDimensionMismatch, len(doc.Mean), models.FeatureCount)
	}

	scaler, err := NewStandardScaler(doc.Mean, doc.Scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scaler, nil
}

func LoadRegressor(path string) (*LinearRegressor, error) {
	var doc regressorFile
	if err := readArtifact(path, &doc); err != nil {
		return nil, err
	}

	switch doc.Kind {
	case KindRidge, KindLinear, KindLasso:
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedKind, doc.Kind)
	}
	if err := checkHeader(path, doc.Version, doc.FeatureNames); err != nil {
		return nil, err
	}
	if len(doc.Coef) != models.FeatureCount {
		return nil, fmt.Errorf("%s: %w: coef has %d values, want %d",
			path, ErrDimensionMismatch, len(doc.Coef), models.FeatureCount)
	}

	regressor, err := NewLinearRegressor(doc.Coef, doc.Intercept)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return regressor, nil
}

func readArtifact(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read model artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode model artifact %s: %w", path, err)
	}
	return nil
}

func checkHeader(path string, version int, names []string) error {
	if version != ArtifactVersion {
		return fmt.Errorf("%s: %w %d", path, ErrUnsupportedVersion, version)
	}

	expected := models.FeatureNames()
	if len(names) != len(expected) {
		return fmt.Errorf("%s: %w: got %v", path, ErrFeatureNames, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			return fmt.Errorf("%s: %w: position %d is %q, want %q", path, ErrFeatureNames, i, names[i], expected[i])
		}
	}
	return nil
}

// WriteScaler persists a fitted standard scaler in artifact form.
func WriteScaler(path string, mean, scale []float64) error {
	return writeArtifact(path, scalerFile{
		Kind:         KindStandardScaler,
		Version:      ArtifactVersion,
		FeatureNames: models.FeatureNames(),
		Mean:         mean,
		Scale:        scale,
	})
}

// WriteRegressor persists fitted linear coefficients in artifact form.
func WriteRegressor(path, kind string, coef []float64, intercept float64) error {
	return writeArtifact(path, regressorFile{
		Kind:         kind,
		Version:      ArtifactVersion,
		FeatureNames: models.FeatureNames(),
		Coef:         coef,
		Intercept:    intercept,
	})
}

func writeArtifact(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model artifact: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	return nil
}
