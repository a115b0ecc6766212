package fit

import (
	"math"
	"math/rand"
	"testing"

	"sszqubits/domain/core"
	"sszqubits/domain/experiment"
)

const testOmega = 2 * math.Pi * 5e9

func makeMeasurements(t *testing.T, heights []float64, slope, sigma float64, noise func() float64) []experiment.Measurement {
	t.Helper()
	out := make([]experiment.Measurement, 0, len(heights))
	for _, h := range heights {
		phase := slope * h
		if noise != nil {
			phase += noise()
		}
		m, err := experiment.NewMeasurement(h, phase, sigma, testOmega, 1.0)
		if err != nil {
			t.Fatalf("measurement at h=%v: %v", h, err)
		}
		out = append(out, m)
	}
	return out
}

func TestSlope_ExactRecoveryNoiseless(t *testing.T) {
	heights := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	injected := 3.7e-10

	fit, err := Slope(makeMeasurements(t, heights, injected, 1e-6, nil))
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(fit.Slope-injected)/injected > 1e-12 {
		t.Fatalf("noiseless recovery: got %.15e want %.15e", fit.Slope, injected)
	}
	if fit.Uncertainty <= 0 {
		t.Fatalf("uncertainty must be positive, got %v", fit.Uncertainty)
	}
}

func TestSlope_InsufficientData(t *testing.T) {
	// Replicates at a single height cannot identify a slope.
	heights := []float64{0.25, 0.25, 0.25, 0.25}
	_, err := Slope(makeMeasurements(t, heights, 1e-9, 1e-6, nil))
	if !core.IsInsufficientDataError(err) {
		t.Fatalf("expected insufficient data error, got %v", err)
	}

	_, err = Slope(nil)
	if !core.IsInsufficientDataError(err) {
		t.Fatalf("expected insufficient data error for empty input, got %v", err)
	}
}

func TestSlope_WeightsDownweightNoisyPoints(t *testing.T) {
	// One wildly off point with huge sigma must barely move the fit.
	heights := []float64{0.1, 0.2, 0.3, 0.4}
	injected := 2e-10
	clean := makeMeasurements(t, heights, injected, 1e-8, nil)

	outlier, err := experiment.NewMeasurement(0.5, 100*injected*0.5, 1e-2, testOmega, 1.0)
	if err != nil {
		t.Fatalf("outlier: %v", err)
	}
	fit, err := Slope(append(clean, outlier))
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(fit.Slope-injected)/injected > 1e-3 {
		t.Fatalf("high-sigma outlier moved the fit: got %.6e want %.6e", fit.Slope, injected)
	}
}

func TestSlope_ConfidenceIntervalCoverage(t *testing.T) {
	// Injected slope plus Gaussian noise at the stated sigma: the 95% CI must
	// cover the truth at roughly the nominal rate.
	rng := rand.New(rand.NewSource(42))
	heights := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	injected := 5e-10
	sigma := 3e-10

	const trials = 500
	covered := 0
	for i := 0; i < trials; i++ {
		ms := makeMeasurements(t, heights, injected, sigma, func() float64 {
			return rng.NormFloat64() * sigma
		})
		fit, err := Slope(ms)
		if err != nil {
			t.Fatalf("fit: %v", err)
		}
		ci := fit.ConfidenceInterval(0.95)
		if injected >= ci[0] && injected <= ci[1] {
			covered++
		}
	}

	rate := float64(covered) / trials
	if rate < 0.92 {
		t.Fatalf("CI coverage %.3f below expected ~0.95", rate)
	}
	if rate > 0.99 {
		t.Fatalf("CI coverage %.3f suspiciously above nominal", rate)
	}
}

func TestCompareModels_SupportedOnCleanSignal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	heights := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	predicted := 1e-3
	sigma := 1e-6

	ms := makeMeasurements(t, heights, predicted, sigma, func() float64 {
		return rng.NormFloat64() * sigma
	})
	result, err := CompareModels(ms, predicted)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if result.Verdict != experiment.VerdictSupported {
		t.Fatalf("expected supported, got %v (slope=%.4e p=%.4e)", result.Verdict, result.Slope, result.DeltaChiSquareP)
	}
	if result.ChiSquare[experiment.ModelFree] > result.ChiSquare[experiment.ModelNull] {
		t.Fatalf("free model cannot fit worse than null")
	}
	if result.DeltaChiSquareP >= 0.05 {
		t.Fatalf("clean signal must yield significant drift, p=%v", result.DeltaChiSquareP)
	}
}

func TestCompareModels_DisfavoredOnWrongSlope(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	heights := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	predicted := 1e-3
	sigma := 1e-6

	// True slope five times the prediction: drift exists but the model value
	// is excluded.
	ms := makeMeasurements(t, heights, 5*predicted, sigma, func() float64 {
		return rng.NormFloat64() * sigma
	})
	result, err := CompareModels(ms, predicted)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if result.Verdict != experiment.VerdictDisfavored {
		t.Fatalf("expected disfavored, got %v", result.Verdict)
	}
}

func TestCompareModels_InconclusiveWithoutDrift(t *testing.T) {
	heights := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	predicted := 1e-12 // far below the noise floor
	sigma := 1e-6

	// Flat data: the prediction is not excluded, but no drift is detected
	// either.
	ms := makeMeasurements(t, heights, 0, sigma, nil)
	result, err := CompareModels(ms, predicted)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if result.Verdict != experiment.VerdictInconclusive {
		t.Fatalf("expected inconclusive on pure noise, got %v", result.Verdict)
	}
}
