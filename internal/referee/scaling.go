package referee

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"sszqubits/domain/experiment"
)

// exponentTolerance bounds how far a fitted power-law exponent may sit from
// the predicted value of 1 and still pass.
const exponentTolerance = 0.15

// powerLawExponent fits log|y| against log(x) and returns the slope. The
// drift model predicts exponent 1 on every axis; confounds land elsewhere.
func powerLawExponent(xs, ys []float64) (float64, error) {
	var logx, logy []float64
	for i := range xs {
		if xs[i] <= 0 {
			continue
		}
		y := math.Abs(ys[i])
		if y == 0 {
			continue
		}
		logx = append(logx, math.Log(xs[i]))
		logy = append(logy, math.Log(y))
	}
	if distinctCount(logx) < 2 {
		return 0, fmt.Errorf("need at least 2 distinct abscissae, have %d", distinctCount(logx))
	}
	_, slope := stat.LinearRegression(logx, logy, nil, false)
	return slope, nil
}

func distinctCount(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}

func exponentResult(name string, exponent float64, axis string) Result {
	passed := math.Abs(exponent-1) <= exponentTolerance
	r := Result{
		GateName:     name,
		Passed:       passed,
		Statistic:    exponent,
		StandardUsed: fmt.Sprintf("log-log exponent of phase vs %s within %.2f of 1", axis, exponentTolerance),
	}
	if !passed {
		r.FailureReason = fmt.Sprintf("fitted exponent %.3f departs from linear scaling", exponent)
	}
	return r
}

// HeightScaling checks that observed phase, normalized by frequency and
// elapsed time, grows linearly with height separation.
type HeightScaling struct{}

func (h *HeightScaling) Execute(measurements []experiment.Measurement) Result {
	var xs, ys []float64
	for _, m := range measurements {
		denom := m.Frequency * m.ElapsedTime
		if denom <= 0 || m.HeightDifference <= 0 {
			continue
		}
		xs = append(xs, m.HeightDifference)
		ys = append(ys, m.ObservedPhase/denom)
	}
	exp, err := powerLawExponent(xs, ys)
	if err != nil {
		return failed(GateHeightScaling, err.Error())
	}
	return exponentResult(GateHeightScaling, exp, "height separation")
}

// FrequencyScaling checks that phase, normalized by height separation and
// elapsed time, grows linearly with angular frequency.
type FrequencyScaling struct{}

func (f *FrequencyScaling) Execute(measurements []experiment.Measurement) Result {
	var xs, ys []float64
	for _, m := range measurements {
		denom := m.HeightDifference * m.ElapsedTime
		if denom <= 0 || m.Frequency <= 0 {
			continue
		}
		xs = append(xs, m.Frequency)
		ys = append(ys, m.ObservedPhase/denom)
	}
	exp, err := powerLawExponent(xs, ys)
	if err != nil {
		return failed(GateFrequencyScaling, err.Error())
	}
	return exponentResult(GateFrequencyScaling, exp, "angular frequency")
}

// TimeScaling checks that phase, normalized by height separation and
// frequency, grows linearly with elapsed time. Random-walk noise shows up
// here with exponent ~0.5, static offsets with ~0.
type TimeScaling struct{}

func (ts *TimeScaling) Execute(measurements []experiment.Measurement) Result {
	var xs, ys []float64
	for _, m := range measurements {
		denom := m.HeightDifference * m.Frequency
		if denom <= 0 || m.ElapsedTime <= 0 {
			continue
		}
		xs = append(xs, m.ElapsedTime)
		ys = append(ys, m.ObservedPhase/denom)
	}
	exp, err := powerLawExponent(xs, ys)
	if err != nil {
		return failed(GateTimeScaling, err.Error())
	}
	return exponentResult(GateTimeScaling, exp, "elapsed time")
}
