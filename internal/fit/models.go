package fit

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"sszqubits/domain/experiment"
)

const (
	confidenceLevel = 0.95
	// A fitted slope more than three sigma from the model prediction
	// disfavors the model outright.
	disfavorSigma = 3.0
	// Delta chi-square significance for preferring the free-slope model over
	// the null.
	driftAlpha = 0.05
)

// ChiSquare evaluates sum(((phase - slope*deltaH)/sigma)^2) for a fixed
// slope.
func ChiSquare(measurements []experiment.Measurement, slope float64) float64 {
	var total float64
	for _, m := range measurements {
		r := (m.ObservedPhase - slope*m.HeightDifference) / m.Uncertainty
		total += r * r
	}
	return total
}

// CompareModels runs the three-model discrimination against a dataset:
// the null model (zero slope), the fixed model (slope = predictedSlope) and
// the free model (fitted slope). The chi-square gap between null and free
// carries one degree of freedom.
//
// Verdict rules:
//   - the fitted slope sits more than three sigma from the prediction:
//     disfavored, regardless of how significant the drift itself is;
//   - the prediction lies inside the 95% CI and the free model beats the
//     null at the 5% level: supported;
//   - anything else: inconclusive.
func CompareModels(measurements []experiment.Measurement, predictedSlope float64) (experiment.FitResult, error) {
	free, err := Slope(measurements)
	if err != nil {
		return experiment.FitResult{}, err
	}

	chi := map[experiment.ModelName]float64{
		experiment.ModelNull:  ChiSquare(measurements, 0),
		experiment.ModelFixed: ChiSquare(measurements, predictedSlope),
		experiment.ModelFree:  ChiSquare(measurements, free.Slope),
	}

	deltaChi := chi[experiment.ModelNull] - chi[experiment.ModelFree]
	if deltaChi < 0 {
		deltaChi = 0
	}
	p := distuv.ChiSquared{K: 1}.Survival(deltaChi)

	result := experiment.FitResult{
		Slope:              free.Slope,
		SlopeUncertainty:   free.Uncertainty,
		ConfidenceInterval: free.ConfidenceInterval(confidenceLevel),
		PredictedSlope:     predictedSlope,
		ChiSquare:          chi,
		DeltaChiSquare:     deltaChi,
		DeltaChiSquareP:    p,
	}
	result.Verdict = verdict(result)
	return result, nil
}

func verdict(r experiment.FitResult) experiment.Verdict {
	pull := math.Abs(r.Slope-r.PredictedSlope) / r.SlopeUncertainty
	if pull > disfavorSigma {
		return experiment.VerdictDisfavored
	}
	if r.Contains(r.PredictedSlope) && r.DeltaChiSquareP < driftAlpha {
		return experiment.VerdictSupported
	}
	return experiment.VerdictInconclusive
}
