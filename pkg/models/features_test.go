package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OldStager01/fwi-predictor/pkg/models"
)

func TestFeatureNames_Order(t *testing.T) {
	assert.Equal(t,
		[]string{"Temperature", "RH", "Ws", "Rain", "FFMC", "DMC", "ISI", "Classes", "Region"},
		models.FeatureNames(),
	)
}

func TestFeatureNames_ReturnsCopy(t *testing.T) {
	names := models.FeatureNames()
	names[0] = "changed"

	assert.Equal(t, "Temperature", models.FeatureNames()[0])
}

func TestFeatureVector_SetAndValues(t *testing.T) {
	var v models.FeatureVector
	for i, name := range models.FeatureNames() {
		assert.True(t, v.Set(name, float64(i+1)))
	}

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, v.Values())
	assert.Len(t, v.Values(), models.FeatureCount)
}

func TestFeatureVector_SetUnknown(t *testing.T) {
	var v models.FeatureVector
	assert.False(t, v.Set("Humidity", 1))
	assert.Equal(t, make([]float64, models.FeatureCount), v.Values())
}
