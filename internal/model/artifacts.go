package model

// Artifacts is the fitted scaler and regressor pair. It is built once at
// startup and never mutated, so it is safe to share between requests.
type Artifacts struct {
	scaler    Scaler
	regressor Regressor
}

// NewArtifacts pairs a scaler with a regressor. If either is nil the result
// reports itself as unavailable.
func NewArtifacts(scaler Scaler, regressor Regressor) *Artifacts {
	if scaler == nil || regressor == nil {
		return Unavailable()
	}
	return &Artifacts{scaler: scaler, regressor: regressor}
}

// Unavailable returns the sentinel used when the artifacts could not be loaded.
func Unavailable() *Artifacts {
	return &Artifacts{}
}

func (a *Artifacts) Available() bool {
	return a != nil && a.scaler != nil && a.regressor != nil
}

func (a *Artifacts) Scaler() Scaler {
	if a == nil {
		return nil
	}
	return a.scaler
}

func (a *Artifacts) Regressor() Regressor {
	if a == nil {
		return nil
	}
	return a.regressor
}
