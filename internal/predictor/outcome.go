package predictor

import (
	"math"
	"strconv"
)

// ModelUnavailableMessage is shown for every prediction while the artifacts
// are missing.
const ModelUnavailableMessage = "Model not loaded. Check server logs."

// ResultDigits is the number of decimal digits a prediction is rounded to.
const ResultDigits = 4

type Kind int

const (
	KindSuccess Kind = iota
	KindModelUnavailable
	KindInputError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindModelUnavailable:
		return "model_unavailable"
	case KindInputError:
		return "input_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one prediction request.
type Outcome struct {
	Kind    Kind
	Value   float64
	Message string
}

func Success(value float64) Outcome {
	return Outcome{Kind: KindSuccess, Value: value}
}

func ModelUnavailable() Outcome {
	return Outcome{Kind: KindModelUnavailable, Message: ModelUnavailableMessage}
}

func InputError(message string) Outcome {
	return Outcome{Kind: KindInputError, Message: message}
}

func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// Display renders the outcome the way the result page shows it.
func (o Outcome) Display() string {
	switch o.Kind {
	case KindSuccess:
		return strconv.FormatFloat(o.Value, 'f', ResultDigits, 64)
	case KindInputError:
		return "Error: " + o.Message
	default:
		return ModelUnavailableMessage
	}
}

// Round rounds the exact binary value of x to the given number of decimal
// digits, ties to even. NaN and infinities are returned unchanged.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}
