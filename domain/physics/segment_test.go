package physics

import (
	"math"
	"testing"

	"sszqubits/domain/core"
)

func relDiff(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}

func TestSegmentDensity_WeakFieldEarthSurface(t *testing.T) {
	c := Earth()
	rs, err := c.SchwarzschildRadius(c.ReferenceMass)
	if err != nil {
		t.Fatalf("schwarzschild radius: %v", err)
	}

	xi, err := c.SegmentDensity(c.ReferenceRadius, c.ReferenceMass)
	if err != nil {
		t.Fatalf("segment density: %v", err)
	}

	want := rs / (2 * c.ReferenceRadius)
	if relDiff(xi, want) > 1e-15 {
		t.Fatalf("expected weak-field form at Earth surface: got %.15e want %.15e", xi, want)
	}
	// ~7e-10 at the surface
	if xi < 5e-10 || xi > 1e-9 {
		t.Fatalf("surface segment density out of expected range: %.3e", xi)
	}
}

func TestSegmentDensity_StrongFieldSaturates(t *testing.T) {
	c := Earth()
	rs, _ := c.SchwarzschildRadius(c.ReferenceMass)

	// Deep inside the strong regime the saturation form approaches 1.
	xi, err := c.SegmentDensity(50*rs, c.ReferenceMass)
	if err != nil {
		t.Fatalf("segment density: %v", err)
	}
	want := 1 - math.Exp(-c.Phi*50)
	if relDiff(xi, want) > 1e-15 {
		t.Fatalf("expected strong-field form: got %.15e want %.15e", xi, want)
	}
	if xi <= 0 || xi >= 1 {
		t.Fatalf("strong-field density must stay in (0,1): %.3e", xi)
	}
}

func TestSegmentDensity_DomainErrors(t *testing.T) {
	c := Earth()

	if _, err := c.SegmentDensity(-1, c.ReferenceMass); !core.IsDomainError(err) {
		t.Fatalf("expected domain error for negative radius, got %v", err)
	}
	if _, err := c.SegmentDensity(0, c.ReferenceMass); !core.IsDomainError(err) {
		t.Fatalf("expected domain error for zero radius, got %v", err)
	}
	if _, err := c.SegmentDensity(1, -5); !core.IsDomainError(err) {
		t.Fatalf("expected domain error for negative mass, got %v", err)
	}
}

func TestSegmentDensity_ContinuityAtBoundaries(t *testing.T) {
	c := Earth()
	rs, _ := c.SchwarzschildRadius(c.ReferenceMass)

	for _, boundary := range []float64{StrongFieldRatio, WeakFieldRatio} {
		rb := boundary * rs
		eps := 1e-10 * rb

		below, err := c.SegmentDensity(rb-eps, c.ReferenceMass)
		if err != nil {
			t.Fatalf("below boundary %v: %v", boundary, err)
		}
		above, err := c.SegmentDensity(rb+eps, c.ReferenceMass)
		if err != nil {
			t.Fatalf("above boundary %v: %v", boundary, err)
		}
		if d := relDiff(below, above); d > 1e-9 {
			t.Fatalf("value jump at x=%v: below=%.15e above=%.15e rel=%.3e", boundary, below, above, d)
		}
	}
}

func TestSegmentGradient_ContinuityAtBoundaries(t *testing.T) {
	c := Earth()
	rs, _ := c.SchwarzschildRadius(c.ReferenceMass)

	for _, boundary := range []float64{StrongFieldRatio, WeakFieldRatio} {
		rb := boundary * rs
		eps := 1e-10 * rb

		below, err := c.SegmentGradient(rb-eps, c.ReferenceMass, RegimeAuto)
		if err != nil {
			t.Fatalf("gradient below boundary %v: %v", boundary, err)
		}
		above, err := c.SegmentGradient(rb+eps, c.ReferenceMass, RegimeAuto)
		if err != nil {
			t.Fatalf("gradient above boundary %v: %v", boundary, err)
		}
		if d := relDiff(below, above); d > 1e-9 {
			t.Fatalf("gradient jump at x=%v: below=%.15e above=%.15e rel=%.3e", boundary, below, above, d)
		}
	}
}

func TestSegmentGradient_MatchesNumericDerivativeAcrossSeams(t *testing.T) {
	c := Earth()
	rs, _ := c.SchwarzschildRadius(c.ReferenceMass)

	// Central differences straddling each seam and inside the band must agree
	// with the analytic gradient; a hard regime switch would fail this.
	for _, x := range []float64{89.999, 90.001, 100.0, 109.999, 110.001} {
		r := x * rs
		h := 1e-7 * r

		lo, err := c.SegmentDensity(r-h, c.ReferenceMass)
		if err != nil {
			t.Fatalf("density at x=%v-h: %v", x, err)
		}
		hi, err := c.SegmentDensity(r+h, c.ReferenceMass)
		if err != nil {
			t.Fatalf("density at x=%v+h: %v", x, err)
		}
		numeric := (hi - lo) / (2 * h)

		analytic, err := c.SegmentGradient(r, c.ReferenceMass, RegimeAuto)
		if err != nil {
			t.Fatalf("gradient at x=%v: %v", x, err)
		}
		if d := relDiff(numeric, analytic); d > 1e-5 {
			t.Fatalf("gradient mismatch at x=%v: numeric=%.9e analytic=%.9e rel=%.3e", x, numeric, analytic, d)
		}
	}
}

func TestSegmentDensity_ForcedRegimes(t *testing.T) {
	c := Earth()
	rs, _ := c.SchwarzschildRadius(c.ReferenceMass)
	r := 100 * rs // inside the band

	weak, err := c.SegmentDensityIn(r, c.ReferenceMass, RegimeWeak)
	if err != nil {
		t.Fatalf("forced weak: %v", err)
	}
	strong, err := c.SegmentDensityIn(r, c.ReferenceMass, RegimeStrong)
	if err != nil {
		t.Fatalf("forced strong: %v", err)
	}
	auto, err := c.SegmentDensity(r, c.ReferenceMass)
	if err != nil {
		t.Fatalf("auto: %v", err)
	}

	lo, hi := math.Min(weak, strong), math.Max(weak, strong)
	if auto < lo || auto > hi {
		t.Fatalf("blended value %.6e outside branch envelope [%.6e, %.6e]", auto, lo, hi)
	}
}

func TestParseRegime(t *testing.T) {
	cases := map[string]Regime{
		"":       RegimeAuto,
		"auto":   RegimeAuto,
		"weak":   RegimeWeak,
		"Strong": RegimeStrong,
		" WEAK ": RegimeWeak,
	}
	for in, want := range cases {
		got, err := ParseRegime(in)
		if err != nil {
			t.Fatalf("ParseRegime(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRegime(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseRegime("medium"); !core.IsConfigurationError(err) {
		t.Fatalf("expected configuration error for unknown regime, got %v", err)
	}
}

func TestSelectRegime(t *testing.T) {
	if got := SelectRegime(1000); got != RegimeWeak {
		t.Fatalf("x=1000: got %v", got)
	}
	if got := SelectRegime(10); got != RegimeStrong {
		t.Fatalf("x=10: got %v", got)
	}
	if got := SelectRegime(100); got != RegimeTransition {
		t.Fatalf("x=100: got %v", got)
	}
	if got := SelectRegime(StrongFieldRatio); got != RegimeTransition {
		t.Fatalf("x=90 belongs to the band: got %v", got)
	}
	if got := SelectRegime(WeakFieldRatio); got != RegimeTransition {
		t.Fatalf("x=110 belongs to the band: got %v", got)
	}
}
