package validation

import (
	"math"

	"sszqubits/domain/core"
	"sszqubits/domain/experiment"
	"sszqubits/domain/physics"
)

// FractionalShift computes the dilation ratio between two radii minus one,
// evaluated analytically as r_s/2 * (1/rLow - 1/rHigh). The analytic form
// matters: dividing two TimeDilation values and subtracting one loses most
// significant digits at the 1e-15 scale these experiments resolve.
func FractionalShift(c physics.Constants, rLow, rHigh float64) (float64, error) {
	if rLow <= 0 || rHigh <= 0 {
		return 0, core.ErrNonPositiveRadius
	}
	rs, err := c.SchwarzschildRadius(c.ReferenceMass)
	if err != nil {
		return 0, err
	}
	return rs / 2 * (1/rLow - 1/rHigh), nil
}

// Evaluate runs one benchmark: predict, compare, decide. A case passes when
// the gap between prediction and publication fits inside the published
// uncertainty plus the tolerance band.
func Evaluate(c physics.Constants, b Benchmark) (experiment.ValidationCase, error) {
	shift, err := FractionalShift(c, b.LowRadius, b.HighRadius)
	if err != nil {
		return experiment.ValidationCase{}, err
	}
	predicted := shift * b.Scale

	gap := math.Abs(predicted - b.Measured)
	allowed := b.Uncertainty + b.ToleranceFraction*math.Abs(b.Measured)

	return experiment.ValidationCase{
		Name:              b.Name,
		Predicted:         predicted,
		Measured:          b.Measured,
		Uncertainty:       b.Uncertainty,
		ToleranceFraction: b.ToleranceFraction,
		Passed:            gap <= allowed,
	}, nil
}

// RunSuite evaluates every historical benchmark against the configured
// constants.
func RunSuite(c physics.Constants) ([]experiment.ValidationCase, error) {
	benchmarks := Benchmarks()
	out := make([]experiment.ValidationCase, 0, len(benchmarks))
	for _, b := range benchmarks {
		vc, err := Evaluate(c, b)
		if err != nil {
			return nil, err
		}
		out = append(out, vc)
	}
	return out, nil
}
