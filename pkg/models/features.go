package models

// Feature names in the order the scaler and regressor were fitted on.
const (
	FeatureTemperature = "Temperature"
	FeatureRH          = "RH"
	FeatureWs          = "Ws"
	FeatureRain        = "Rain"
	FeatureFFMC        = "FFMC"
	FeatureDMC         = "DMC"
	FeatureISI         = "ISI"
	FeatureClasses     = "Classes"
	FeatureRegion      = "Region"
)

// FeatureCount is the length of every feature vector.
const FeatureCount = 9

var featureNames = [FeatureCount]string{
	FeatureTemperature,
	FeatureRH,
	FeatureWs,
	FeatureRain,
	FeatureFFMC,
	FeatureDMC,
	FeatureISI,
	FeatureClasses,
	FeatureRegion,
}

// FeatureNames returns a copy of the ordered feature names.
func FeatureNames() []string {
	names := make([]string, FeatureCount)
	copy(names, featureNames[:])
	return names
}

// FeatureVector holds one set of weather and fire-index measurements.
type FeatureVector struct {
	Temperature float64 `json:"Temperature"`
	RH          float64 `json:"RH"`
	Ws          float64 `json:"Ws"`
	Rain        float64 `json:"Rain"`
	FFMC        float64 `json:"FFMC"`
	DMC         float64 `json:"DMC"`
	ISI         float64 `json:"ISI"`
	Classes     float64 `json:"Classes"`
	Region      float64 `json:"Region"`
}

// Values returns the vector in model order.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.Temperature,
		f.RH,
		f.Ws,
		f.Rain,
		f.FFMC,
		f.DMC,
		f.ISI,
		f.Classes,
		f.Region,
	}
}

// Set assigns value to the named feature and reports whether the name is known.
func (f *FeatureVector) Set(name string, value float64) bool {
	switch name {
	case FeatureTemperature:
		f.Temperature = value
	case FeatureRH:
		f.RH = value
	case FeatureWs:
		f.Ws = value
	case FeatureRain:
		f.Rain = value
	case FeatureFFMC:
		f.FFMC = value
	case FeatureDMC:
		f.DMC = value
	case FeatureISI:
		f.ISI = value
	case FeatureClasses:
		f.Classes = value
	case FeatureRegion:
		f.Region = value
	default:
		return false
	}
	return true
}
