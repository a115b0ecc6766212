// Package experiment defines the value objects exchanged between the
// synthetic generator, the statistical discrimination framework and the
// scaling-signature classifier. Everything here is created from inputs and
// never mutated.
package experiment

import (
	"sszqubits/domain/core"
)

// ModelName identifies one of the three competing drift models.
type ModelName string

const (
	// ModelNull predicts zero deterministic drift at any separation.
	ModelNull ModelName = "null"
	// ModelFixed predicts drift with the slope pinned to the model value.
	ModelFixed ModelName = "fixed_ssz"
	// ModelFree fits the slope from the data.
	ModelFree ModelName = "free"
)

// Verdict is the outcome of a discrimination run.
type Verdict string

const (
	VerdictSupported    Verdict = "supported"
	VerdictDisfavored   Verdict = "disfavored"
	VerdictInconclusive Verdict = "inconclusive"
)

// Confound names a mundane noise process that can masquerade as height-
// correlated drift in a poorly controlled experiment.
type Confound string

const (
	ConfoundNone      Confound = "none"
	ConfoundThermal   Confound = "thermal"
	ConfoundLONoise   Confound = "lo_noise"
	ConfoundVibration Confound = "vibration"
	ConfoundMagnetic  Confound = "magnetic"
	ConfoundCharge    Confound = "charge"
)

// Confounds lists every modeled confound, in classifier tie-break priority
// order.
func Confounds() []Confound {
	return []Confound{
		ConfoundThermal,
		ConfoundLONoise,
		ConfoundVibration,
		ConfoundMagnetic,
		ConfoundCharge,
	}
}

// Measurement is one observed phase at a given height separation. Frequency
// is ANGULAR [rad/s]; generators converting from Hz multiply by 2*pi before
// constructing a Measurement.
type Measurement struct {
	ID               core.MeasurementID
	HeightDifference float64 // [m]
	ObservedPhase    float64 // [rad]
	Uncertainty      float64 // 1-sigma [rad], > 0
	Frequency        float64 // angular [rad/s], > 0
	ElapsedTime      float64 // [s], >= 0
	Environment      map[string]float64
}

// NewMeasurement validates and constructs a Measurement.
func NewMeasurement(deltaH, phase, sigma, omega, elapsed float64) (Measurement, error) {
	if sigma <= 0 {
		return Measurement{}, core.ErrNonPositiveSigma
	}
	if omega <= 0 {
		return Measurement{}, core.ErrNonPositiveOmega
	}
	if elapsed < 0 {
		return Measurement{}, core.ErrNegativeTime
	}
	return Measurement{
		ID:               core.NewMeasurementID(),
		HeightDifference: deltaH,
		ObservedPhase:    phase,
		Uncertainty:      sigma,
		Frequency:        omega,
		ElapsedTime:      elapsed,
	}, nil
}

// WithEnvironment returns a copy carrying environmental readings.
func (m Measurement) WithEnvironment(env map[string]float64) Measurement {
	cp := make(map[string]float64, len(env))
	for k, v := range env {
		cp[k] = v
	}
	m.Environment = cp
	return m
}

// FitResult is the complete output of the statistical discrimination
// framework for one dataset. Output-only; nothing downstream mutates it.
type FitResult struct {
	Slope              float64
	SlopeUncertainty   float64
	ConfidenceInterval [2]float64 // 95%
	PredictedSlope     float64    // the fixed-model slope tested against
	ChiSquare          map[ModelName]float64
	DeltaChiSquare     float64 // chi2(null) - chi2(free), 1 dof
	DeltaChiSquareP    float64
	Verdict            Verdict
}

// Contains reports whether the 95% confidence interval covers slope.
func (f FitResult) Contains(slope float64) bool {
	return slope >= f.ConfidenceInterval[0] && slope <= f.ConfidenceInterval[1]
}

// ValidationCase is one historical redshift benchmark: the model prediction
// against the published measurement.
type ValidationCase struct {
	Name              string
	Predicted         float64
	Measured          float64
	Uncertainty       float64
	ToleranceFraction float64
	Passed            bool
}

// Classification is the scaling-signature classifier's output: the best
// matching confound (or none, meaning the data scales like genuine drift)
// with a score per candidate.
type Classification struct {
	Best   Confound
	Scores map[Confound]float64
}
