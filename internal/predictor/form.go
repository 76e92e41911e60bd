package predictor

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/OldStager01/fwi-predictor/pkg/models"
)

// FormSource exposes posted form fields. *gin.Context satisfies it.
type FormSource interface {
	GetPostForm(key string) (string, bool)
}

// FormValues adapts url.Values to FormSource.
type FormValues url.Values

func (f FormValues) GetPostForm(key string) (string, bool) {
	values, ok := f[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// ParseFeatures reads the nine feature fields. Absent fields are 0; a field
// that is present but not a number is an error, including an empty one.
func ParseFeatures(form FormSource) (models.FeatureVector, error) {
	var vector models.FeatureVector
	for _, name := range models.FeatureNames() {
		raw, ok := form.GetPostForm(name)
		if !ok {
			continue
		}

		value, err := parseFloat(raw)
		if err != nil {
			return models.FeatureVector{}, err
		}
		vector.Set(name, value)
	}
	return vector, nil
}

func parseFloat(raw string) (float64, error) {
	literal, ok := decimalLiteral(strings.TrimSpace(raw))
	if !ok {
		return 0, fmt.Errorf("could not convert string to float: '%s'", raw)
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// Out-of-range literals saturate to +/-Inf instead of failing.
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return 0, fmt.Errorf("could not convert string to float: '%s'", raw)
	}
	return value, nil
}

// decimalLiteral rejects hexadecimal floats and removes underscores that
// separate digits ("1_000"). Any other underscore makes the literal invalid.
func decimalLiteral(s string) (string, bool) {
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", false
	}
	if !strings.Contains(s, "_") {
		return s, true
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
