package fit

import (
	"math"
	"math/rand"
	"testing"

	"sszqubits/domain/core"
)

func TestResiduals_StandardNormalPulls(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	heights := make([]float64, 200)
	for i := range heights {
		heights[i] = 0.1 + 0.4*float64(i)/200
	}
	slope := 2e-9
	sigma := 1e-9

	ms := makeMeasurements(t, heights, slope, sigma, func() float64 {
		return rng.NormFloat64() * sigma
	})
	summary, err := Residuals(ms, slope)
	if err != nil {
		t.Fatalf("residuals: %v", err)
	}
	if math.Abs(summary.Mean) > 0.2 {
		t.Fatalf("pull mean %.3f too far from 0", summary.Mean)
	}
	if summary.StdDev < 0.8 || summary.StdDev > 1.2 {
		t.Fatalf("pull spread %.3f too far from 1", summary.StdDev)
	}
	if summary.MaxAbs > 5 {
		t.Fatalf("max pull %.3f implausibly large for 200 samples", summary.MaxAbs)
	}
}

func TestResiduals_DetectsWrongSlope(t *testing.T) {
	heights := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	slope := 1e-6
	sigma := 1e-9

	ms := makeMeasurements(t, heights, slope, sigma, nil)
	summary, err := Residuals(ms, 2*slope)
	if err != nil {
		t.Fatalf("residuals: %v", err)
	}
	if summary.MaxAbs < 10 {
		t.Fatalf("expected large pulls against a wrong slope, got max %.3f", summary.MaxAbs)
	}
}

func TestResiduals_EmptyInput(t *testing.T) {
	if _, err := Residuals(nil, 1); !core.IsInsufficientDataError(err) {
		t.Fatalf("expected insufficient data error, got %v", err)
	}
}
