package physics

import (
	"math"

	"sszqubits/domain/core"
)

// Dephasing couplings of the decoherence model. The gains are empirical
// calibration constants of the model, chosen so the segment-density and
// gradient terms become visible at Earth's weak field; the spatial extent is
// a typical qubit size over which the gradient dephases.
const (
	qubitSpatialExtent    = 1e-6 // [m]
	densityDephasingGain  = 1e9
	gradientDephasingGain = 1e15
	mismatchDephasingGain = 1e12
)

// DecoherenceRate returns the dephasing rate 1/s of the qubit with the
// segment-density enhancement applied to its intrinsic 1/T2: the local
// density couples the qubit to spacetime structure, and, when includeGradient
// is set, the density gradient dephases it across its spatial extent.
func (q Qubit) DecoherenceRate(c Constants, includeGradient bool) (float64, error) {
	if q.CoherenceTime <= 0 {
		return 0, core.NewDomainError("coherence_time", q.CoherenceTime)
	}
	base := 1 / q.CoherenceTime

	xi, err := c.SegmentDensity(q.Radius(c), c.ReferenceMass)
	if err != nil {
		return 0, err
	}
	gamma := base * (1 + xi*densityDephasingGain)

	if includeGradient {
		grad, err := c.SegmentGradient(q.Radius(c), c.ReferenceMass, RegimeAuto)
		if err != nil {
			return 0, err
		}
		deltaXi := math.Abs(grad) * qubitSpatialExtent
		gamma += base * deltaXi * gradientDephasingGain
	}
	return gamma, nil
}

// EffectiveT2 returns the coherence time left after the density and gradient
// enhancements, always shorter than the intrinsic T2.
func (q Qubit) EffectiveT2(c Constants) (float64, error) {
	gamma, err := q.DecoherenceRate(c, true)
	if err != nil {
		return 0, err
	}
	return 1 / gamma, nil
}

// DecoherenceTime returns the joint coherence window of an entangled pair.
// Both members dephase independently and the segment mismatch between their
// heights adds a shared channel, so the pair always decoheres faster than
// either member alone.
func (p QubitPair) DecoherenceTime(c Constants) (float64, error) {
	gammaA, err := p.A.DecoherenceRate(c, true)
	if err != nil {
		return 0, err
	}
	gammaB, err := p.B.DecoherenceRate(c, true)
	if err != nil {
		return 0, err
	}
	mm, err := p.Mismatch(c)
	if err != nil {
		return 0, err
	}
	return 1 / (gammaA + gammaB + mm.DeltaXi*mismatchDephasingGain), nil
}
