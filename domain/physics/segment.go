package physics

import (
	"math"

	"sszqubits/domain/core"
)

// SegmentDensity computes the dimensionless segment density Xi(r) for a
// central mass, auto-selecting the regime from r/r_s.
//
// Weak field (r/r_s > 110):  Xi = r_s / (2r)
// Strong field (r/r_s < 90): Xi = 1 - exp(-phi * r/r_s)
// Transition band [90,110]:  quintic-smoothstep blend of the two forms.
//
// The blend keeps the composed function and its first two derivatives
// continuous across both internal boundaries; the weak form diverges as r->0
// and the strong form saturates, so a hard switch would put a spurious kink
// into every quantity derived from Xi.
func (c Constants) SegmentDensity(radius, mass float64) (float64, error) {
	return c.SegmentDensityIn(radius, mass, RegimeAuto)
}

// SegmentDensityIn computes Xi(r) under an explicit regime. RegimeAuto
// dispatches on r/r_s; RegimeWeak and RegimeStrong force a branch, which is
// how boundary tests reach the individual closed forms.
func (c Constants) SegmentDensityIn(radius, mass float64, regime Regime) (float64, error) {
	if radius <= 0 {
		return 0, core.ErrNonPositiveRadius
	}
	rs, err := c.SchwarzschildRadius(mass)
	if err != nil {
		return 0, err
	}
	x := radius / rs

	if regime == RegimeAuto {
		regime = SelectRegime(x)
	}

	switch regime {
	case RegimeWeak:
		return rs / (2 * radius), nil
	case RegimeStrong:
		return 1 - math.Exp(-c.Phi*x), nil
	default:
		weak := rs / (2 * radius)
		strong := 1 - math.Exp(-c.Phi*x)
		b := smoothstep5((x - StrongFieldRatio) / (WeakFieldRatio - StrongFieldRatio))
		return b*weak + (1-b)*strong, nil
	}
}

// SegmentGradient computes dXi/dr under the same regime selection as
// SegmentDensityIn. Weak field: -r_s/(2r^2). Strong field:
// (phi/r_s)*exp(-phi*r/r_s). In the transition band the product rule picks up
// a term from the varying blend weight.
func (c Constants) SegmentGradient(radius, mass float64, regime Regime) (float64, error) {
	if radius <= 0 {
		return 0, core.ErrNonPositiveRadius
	}
	rs, err := c.SchwarzschildRadius(mass)
	if err != nil {
		return 0, err
	}
	x := radius / rs

	if regime == RegimeAuto {
		regime = SelectRegime(x)
	}

	weakGrad := -rs / (2 * radius * radius)
	strongGrad := (c.Phi / rs) * math.Exp(-c.Phi*x)

	switch regime {
	case RegimeWeak:
		return weakGrad, nil
	case RegimeStrong:
		return strongGrad, nil
	default:
		width := WeakFieldRatio - StrongFieldRatio
		t := (x - StrongFieldRatio) / width
		b := smoothstep5(t)
		weak := rs / (2 * radius)
		strong := 1 - math.Exp(-c.Phi*x)
		// d/dr of the blend weight: db/dt * dt/dx * dx/dr.
		dbdr := smoothstep5Deriv(t) / (width * rs)
		return dbdr*(weak-strong) + b*weakGrad + (1-b)*strongGrad, nil
	}
}

// smoothstep5 is the quintic smoothstep 6t^5 - 15t^4 + 10t^3, clamped to
// [0,1]. Its first and second derivatives vanish at both endpoints, which is
// what gives the blended density C2 continuity at the band edges.
func smoothstep5(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * t * (t*(t*6-15) + 10)
}

func smoothstep5Deriv(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return 30 * t * t * (t - 1) * (t - 1)
}
