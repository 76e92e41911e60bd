// Command modelgen writes a sample scaler and ridge regressor in the artifact
// format the predictor loads, for local runs without a trained model.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OldStager01/fwi-predictor/internal/logger"
	"github.com/OldStager01/fwi-predictor/internal/model"
)

// Feature statistics and ridge coefficients fitted on the Algerian forest
// fires dataset, in model feature order.
var (
	sampleMean  = []float64{32.1523, 62.0412, 15.4938, 0.7617, 77.8423, 14.6804, 4.7422, 0.5638, 0.4938}
	sampleScale = []float64{3.6283, 14.8280, 2.8054, 2.0034, 14.3496, 12.3912, 4.1458, 0.4959, 0.5000}
	sampleCoef  = []float64{-0.0541, -0.1872, 0.0311, -0.0398, -0.7794, 3.6471, 4.7512, 0.3814, -0.3581}

	sampleIntercept = 7.0496
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("out", "models", "directory to write scaler.json and ridge.json into")
	force := flag.Bool("force", false, "overwrite existing artifacts")
	flag.Parse()

	scalerPath := filepath.Join(*out, "scaler.json")
	regressorPath := filepath.Join(*out, "ridge.json")

	if !*force {
		for _, path := range []string{scalerPath, regressorPath} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, use -force to overwrite", path)
			}
		}
	}

	if err := model.WriteScaler(scalerPath, sampleMean, sampleScale); err != nil {
		return err
	}
	if err := model.WriteRegressor(regressorPath, model.KindRidge, sampleCoef, sampleIntercept); err != nil {
		return err
	}

	// Read both back so a bad write is caught here rather than at server start.
	if _, err := model.Load(model.Paths{Scaler: scalerPath, Regressor: regressorPath}); err != nil {
		return fmt.Errorf("written artifacts do not load: %w", err)
	}

	logger.Infof("Wrote sample artifacts to %s and %s", scalerPath, regressorPath)
	return nil
}
