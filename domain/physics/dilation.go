package physics

import (
	"sszqubits/domain/core"
)

// WarningCode flags a best-effort result that was computed under degraded
// numerical conditions. A warning accompanies a value; it never replaces one.
type WarningCode string

const (
	// WarningPrecisionLoss marks a differential-dilation result where the
	// height separation is no longer small against the reference radius and
	// the linearized formula was abandoned for the exact two-point form.
	WarningPrecisionLoss WarningCode = "PRECISION_LOSS"
)

// LinearizationLimit is the |dh|/R ratio above which DifferentialTimeDilation
// switches from the linearized formula to the exact two-point form. Below the
// limit the linearization error is bounded by ~dh/R itself; above it the
// warning documents that the caller asked for a regime outside the small
// separation assumption.
const LinearizationLimit = 1e-3

// TimeDilation computes D(r) = 1/(1 + Xi(r)), the ratio of local proper time
// rate to the far-field rate. Strictly in (0, 1]; increases with r in the
// weak field.
func (c Constants) TimeDilation(radius, mass float64) (float64, error) {
	xi, err := c.SegmentDensity(radius, mass)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + xi), nil
}

// DifferentialTimeDilation computes the differential dilation between two
// points separated by deltaH above refRadius.
//
// For |deltaH| small against refRadius it returns the closed-form weak-field
// linearization r_s*dh/R^2. Subtracting two TimeDilation values here would
// cancel catastrophically: at mm-scale separations against an Earth-scale
// radius the difference sits ~13 orders of magnitude below the values
// themselves, past the 15-16 significant digits a float64 carries.
//
// Above LinearizationLimit it falls back to the exact two-point form
// r_s*dh/(R*(R+dh)), which agrees with the linearization in the limit and
// stays cancellation-free; the result carries WarningPrecisionLoss.
func (c Constants) DifferentialTimeDilation(deltaH, mass, refRadius float64) (float64, []WarningCode, error) {
	if refRadius <= 0 {
		return 0, nil, core.ErrNonPositiveRadius
	}
	if refRadius+deltaH <= 0 {
		return 0, nil, core.NewDomainError("delta_h", deltaH)
	}
	rs, err := c.SchwarzschildRadius(mass)
	if err != nil {
		return 0, nil, err
	}

	ratio := deltaH / refRadius
	if ratio < 0 {
		ratio = -ratio
	}
	if ratio > LinearizationLimit {
		exact := rs * deltaH / (refRadius * (refRadius + deltaH))
		return exact, []WarningCode{WarningPrecisionLoss}, nil
	}
	return rs * deltaH / (refRadius * refRadius), nil, nil
}

// PhaseDrift computes the accumulated relative phase between two oscillators
// separated by deltaH over elapsed time t:
//
//	dPhi = omega * dD(deltaH) * t
//
// omega is ANGULAR frequency [rad/s]; callers holding a linear frequency f in
// Hz must pass 2*pi*f. Linear in each of omega, deltaH and t by construction.
func (c Constants) PhaseDrift(omega, deltaH, t, mass, refRadius float64) (float64, []WarningCode, error) {
	if omega <= 0 {
		return 0, nil, core.ErrNonPositiveOmega
	}
	if t < 0 {
		return 0, nil, core.ErrNegativeTime
	}
	dd, warnings, err := c.DifferentialTimeDilation(deltaH, mass, refRadius)
	if err != nil {
		return 0, nil, err
	}
	return omega * dd * t, warnings, nil
}

// DriftSlope returns the model-predicted slope of phase drift with respect to
// height separation, alpha = dPhi/d(dh) = omega * r_s * t / R^2. This is the
// fixed-model slope the statistical framework tests fitted slopes against.
func (c Constants) DriftSlope(omega, t, mass, refRadius float64) (float64, error) {
	if omega <= 0 {
		return 0, core.ErrNonPositiveOmega
	}
	if t < 0 {
		return 0, core.ErrNegativeTime
	}
	if refRadius <= 0 {
		return 0, core.ErrNonPositiveRadius
	}
	rs, err := c.SchwarzschildRadius(mass)
	if err != nil {
		return 0, err
	}
	return omega * rs * t / (refRadius * refRadius), nil
}
