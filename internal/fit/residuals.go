package fit

import (
	"math"

	"github.com/montanaflynn/stats"

	"sszqubits/domain/core"
	"sszqubits/domain/experiment"
)

// ResidualSummary describes the pull distribution (residual over sigma) of a
// dataset against a fixed slope. For a correct model with honest error bars
// the pulls are standard normal: mean near 0, spread near 1.
type ResidualSummary struct {
	Mean   float64
	Median float64
	StdDev float64
	MaxAbs float64
}

// Residuals computes the pull summary of measurements against slope.
func Residuals(measurements []experiment.Measurement, slope float64) (ResidualSummary, error) {
	if len(measurements) == 0 {
		return ResidualSummary{}, core.NewInsufficientDataError(0, 1)
	}

	pulls := make([]float64, 0, len(measurements))
	maxAbs := 0.0
	for _, m := range measurements {
		if m.Uncertainty <= 0 {
			return ResidualSummary{}, core.ErrNonPositiveSigma
		}
		pull := (m.ObservedPhase - slope*m.HeightDifference) / m.Uncertainty
		pulls = append(pulls, pull)
		if a := math.Abs(pull); a > maxAbs {
			maxAbs = a
		}
	}

	mean, err := stats.Mean(pulls)
	if err != nil {
		return ResidualSummary{}, err
	}
	median, err := stats.Median(pulls)
	if err != nil {
		return ResidualSummary{}, err
	}
	sd := 0.0
	if len(pulls) > 1 {
		sd, err = stats.StandardDeviationSample(pulls)
		if err != nil {
			return ResidualSummary{}, err
		}
	}

	return ResidualSummary{Mean: mean, Median: median, StdDev: sd, MaxAbs: maxAbs}, nil
}
