// Package fit implements the statistical discrimination framework: a
// weighted least-squares slope through the origin, its confidence interval,
// and a three-model chi-square comparison that turns a dataset into a
// verdict.
package fit

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"sszqubits/domain/core"
	"sszqubits/domain/experiment"
)

// minDistinctHeights is the smallest number of distinct height separations a
// slope can be identified from.
const minDistinctHeights = 2

// SlopeFit is the weighted least-squares slope of observed phase against
// height separation, constrained through the origin.
type SlopeFit struct {
	Slope       float64
	Uncertainty float64 // 1-sigma
}

// Slope fits phase = alpha * deltaH by weighted least squares with weights
// 1/sigma^2. Returns InsufficientDataError when fewer than two distinct
// height separations are present, since a single abscissa cannot identify a
// slope no matter how many replicates it carries.
func Slope(measurements []experiment.Measurement) (SlopeFit, error) {
	distinct := countDistinctHeights(measurements)
	if distinct < minDistinctHeights {
		return SlopeFit{}, core.NewInsufficientDataError(distinct, minDistinctHeights)
	}

	var sumXY, sumXX float64
	for _, m := range measurements {
		if m.Uncertainty <= 0 {
			return SlopeFit{}, core.ErrNonPositiveSigma
		}
		w := 1 / (m.Uncertainty * m.Uncertainty)
		sumXY += w * m.HeightDifference * m.ObservedPhase
		sumXX += w * m.HeightDifference * m.HeightDifference
	}
	if sumXX == 0 {
		return SlopeFit{}, core.NewInsufficientDataError(distinct, minDistinctHeights)
	}

	return SlopeFit{
		Slope:       sumXY / sumXX,
		Uncertainty: 1 / math.Sqrt(sumXX),
	}, nil
}

// ConfidenceInterval returns the symmetric interval at the given confidence
// level, e.g. 0.95.
func (f SlopeFit) ConfidenceInterval(level float64) [2]float64 {
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + level/2)
	return [2]float64{f.Slope - z*f.Uncertainty, f.Slope + z*f.Uncertainty}
}

func countDistinctHeights(measurements []experiment.Measurement) int {
	seen := make(map[float64]struct{}, len(measurements))
	for _, m := range measurements {
		seen[m.HeightDifference] = struct{}{}
	}
	return len(seen)
}
