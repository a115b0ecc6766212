package physics

import "math"

// CompensationPhase returns the corrective phase that cancels the predicted
// deterministic drift: the exact negation of PhaseDrift for the same
// arguments. If the underlying process really is the modeled drift, applying
// it leaves a residual of zero to floating-point epsilon. If the process is a
// stochastic confound uncorrelated with height separation, applying it leaves
// the variance unchanged; that asymmetry is the experimental discriminator.
func (c Constants) CompensationPhase(omega, deltaH, t, mass, refRadius float64) (float64, []WarningCode, error) {
	drift, warnings, err := c.PhaseDrift(omega, deltaH, t, mass, refRadius)
	if err != nil {
		return 0, nil, err
	}
	return -drift, warnings, nil
}

// ApplyCompensation adds a compensation phase to a measured phase.
func ApplyCompensation(measuredPhase, compensation float64) float64 {
	return measuredPhase + compensation
}

// BellFidelity maps an accumulated phase error onto Bell-state fidelity,
// F = cos^2(phi/2).
func BellFidelity(phaseError float64) float64 {
	cos := math.Cos(phaseError / 2)
	return cos * cos
}
