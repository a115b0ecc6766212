package validation

import (
	"math"
	"testing"

	"sszqubits/domain/core"
	"sszqubits/domain/physics"
)

func TestFractionalShift_TowerExperiment(t *testing.T) {
	c := physics.Earth()

	shift, err := FractionalShift(c, earthRadius, earthRadius+22.5)
	if err != nil {
		t.Fatalf("fractional shift: %v", err)
	}

	// Independent route: g*dh/c^2, ~2.45e-15 for 22.5 m.
	g, err := c.SurfaceGravity(c.ReferenceMass, c.ReferenceRadius)
	if err != nil {
		t.Fatalf("surface gravity: %v", err)
	}
	want := g * 22.5 / (c.SpeedOfLight * c.SpeedOfLight)
	if math.Abs(shift-want)/want > 1e-4 {
		t.Fatalf("tower shift: got %.6e want %.6e", shift, want)
	}
	if math.Abs(shift-2.45e-15)/2.45e-15 > 0.02 {
		t.Fatalf("tower shift: got %.4e want ~2.45e-15", shift)
	}
}

func TestFractionalShift_RejectsBadRadii(t *testing.T) {
	c := physics.Earth()
	if _, err := FractionalShift(c, 0, earthRadius); !core.IsDomainError(err) {
		t.Fatalf("expected domain error, got %v", err)
	}
}

func TestEvaluate_PoundRebkaPasses(t *testing.T) {
	c := physics.Earth()

	vc, err := Evaluate(c, Benchmarks()[0])
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !vc.Passed {
		t.Fatalf("tower benchmark must pass: predicted %.4e vs measured %.4e", vc.Predicted, vc.Measured)
	}
	if math.Abs(vc.Predicted-vc.Measured)/vc.Measured > 0.20 {
		t.Fatalf("prediction departs from publication by more than 20%%")
	}
}

func TestRunSuite_AllBenchmarksPass(t *testing.T) {
	c := physics.Earth()

	cases, err := RunSuite(c)
	if err != nil {
		t.Fatalf("suite: %v", err)
	}
	if len(cases) != 4 {
		t.Fatalf("expected 4 benchmarks, got %d", len(cases))
	}
	for _, vc := range cases {
		if !vc.Passed {
			t.Fatalf("%s failed: predicted %.4e measured %.4e +/- %.2e (tol %.0f%%)",
				vc.Name, vc.Predicted, vc.Measured, vc.Uncertainty, vc.ToleranceFraction*100)
		}
	}
}

func TestRunSuite_GPSDailyShift(t *testing.T) {
	c := physics.Earth()

	cases, err := RunSuite(c)
	if err != nil {
		t.Fatalf("suite: %v", err)
	}
	var predicted float64
	found := false
	for _, vc := range cases {
		if vc.Name == Benchmarks()[1].Name {
			predicted = vc.Predicted
			found = true
		}
	}
	if !found {
		t.Fatalf("GPS benchmark missing from suite")
	}
	// ~45.7 microseconds of gravitational blueshift per day.
	if math.Abs(predicted-45.7) > 1.5 {
		t.Fatalf("GPS daily shift: got %.2f us/day want ~45.7", predicted)
	}
}
