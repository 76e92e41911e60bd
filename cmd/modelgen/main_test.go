package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OldStager01/fwi-predictor/pkg/models"
)

func TestSampleArtifactsMatchFeatureCount(t *testing.T) {
	assert.Len(t, sampleMean, models.FeatureCount)
	assert.Len(t, sampleScale, models.FeatureCount)
	assert.Len(t, sampleCoef, models.FeatureCount)
}
