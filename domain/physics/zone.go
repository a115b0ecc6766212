package physics

import (
	"sszqubits/domain/core"
)

// ZoneWidth computes the maximum height separation for which two oscillators
// sharing the reference frequency and duration stay within phase tolerance
// eps:
//
//	z(eps) = 4 * eps * R^2 / r_s
//
// Strictly increasing in eps. The inverse relationship with PhaseDrift is
// exact: dD evaluated at deltaH = z(eps) equals 4*eps, so the drift there is
// omega * 4*eps * t.
func (c Constants) ZoneWidth(eps, mass, refRadius float64) (float64, error) {
	if eps <= 0 {
		return 0, core.ErrNonPositiveEps
	}
	if refRadius <= 0 {
		return 0, core.ErrNonPositiveRadius
	}
	rs, err := c.SchwarzschildRadius(mass)
	if err != nil {
		return 0, err
	}
	return 4 * eps * refRadius * refRadius / rs, nil
}

// CoherentZone returns the height interval [hMin, hMax] around centerHeight
// within which the segment density varies by less than maxXiVariation. Inside
// such a zone qubits share sufficiently similar timing that pairwise drift
// stays below the corresponding tolerance.
func (c Constants) CoherentZone(centerHeight, maxXiVariation, mass, refRadius float64) (hMin, hMax float64, err error) {
	if maxXiVariation <= 0 {
		return 0, 0, core.ErrNonPositiveEps
	}
	rCenter := refRadius + centerHeight
	xiCenter, err := c.SegmentDensity(rCenter, mass)
	if err != nil {
		return 0, 0, err
	}
	rs, err := c.SchwarzschildRadius(mass)
	if err != nil {
		return 0, 0, err
	}

	xiLow := xiCenter - maxXiVariation/2
	xiHigh := xiCenter + maxXiVariation/2
	if xiLow <= 0 {
		xiLow = 1e-20
	}

	// Weak-field inversion: higher r means lower Xi.
	rMax := rs / (2 * xiLow)
	rMin := rs / (2 * xiHigh)

	hMin = rMin - refRadius
	if hMin < 0 {
		hMin = 0
	}
	hMax = rMax - refRadius
	return hMin, hMax, nil
}

// OptimalHeight inverts the weak-field density for a target Xi: the height
// above the reference radius at which Xi(R+h) = targetXi.
func (c Constants) OptimalHeight(targetXi, mass, refRadius float64) (float64, error) {
	if targetXi <= 0 {
		return 0, core.NewDomainError("target_xi", targetXi)
	}
	if refRadius <= 0 {
		return 0, core.ErrNonPositiveRadius
	}
	rs, err := c.SchwarzschildRadius(mass)
	if err != nil {
		return 0, err
	}
	return rs/(2*targetXi) - refRadius, nil
}
