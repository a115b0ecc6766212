package referee

import (
	"math"

	"sszqubits/domain/experiment"
)

// signature is the expected referee response pattern for one confound.
// Exponent expectations refine the coarse pass/fail bits: thermal, local-
// oscillator noise and charge drift all fail the frequency gate the same
// way, but they separate on the time axis (1 vs 0.5 vs 0), and magnetic
// pickup alone shows the inverse-frequency exponent.
type signature struct {
	height, frequency, time, compensation bool
	frequencyExp                          float64
	timeExp                               float64
}

var signatures = map[experiment.Confound]signature{
	experiment.ConfoundThermal:   {height: false, frequency: false, time: true, compensation: false, frequencyExp: 0, timeExp: 1},
	experiment.ConfoundLONoise:   {height: false, frequency: false, time: false, compensation: false, frequencyExp: 0, timeExp: 0.5},
	experiment.ConfoundVibration: {height: false, frequency: true, time: true, compensation: false, frequencyExp: 1, timeExp: 1},
	experiment.ConfoundMagnetic:  {height: false, frequency: false, time: true, compensation: false, frequencyExp: -1, timeExp: 1},
	experiment.ConfoundCharge:    {height: false, frequency: false, time: false, compensation: false, frequencyExp: 0, timeExp: 0},
}

// exponentMatchTolerance is how close a fitted exponent must come to a
// signature's expected exponent to earn the refinement bonus.
const exponentMatchTolerance = 0.3

// Classify reads the four referee results back into the most plausible
// explanation. All gates passing means the data scales like genuine drift;
// any failure triggers signature matching across the modeled confounds,
// with ties resolved in fixed priority order.
func Classify(results []Result) experiment.Classification {
	byGate := make(map[string]Result, len(results))
	allPassed := len(results) > 0
	for _, r := range results {
		byGate[r.GateName] = r
		if !r.Passed {
			allPassed = false
		}
	}
	if allPassed {
		return experiment.Classification{Best: experiment.ConfoundNone, Scores: map[experiment.Confound]float64{}}
	}

	scores := make(map[experiment.Confound]float64, len(signatures))
	best := experiment.ConfoundNone
	bestScore := math.Inf(-1)
	for _, candidate := range experiment.Confounds() {
		s := score(byGate, signatures[candidate])
		scores[candidate] = s
		if s > bestScore {
			bestScore = s
			best = candidate
		}
	}
	return experiment.Classification{Best: best, Scores: scores}
}

func score(byGate map[string]Result, sig signature) float64 {
	var total float64
	expected := map[string]bool{
		GateHeightScaling:      sig.height,
		GateFrequencyScaling:   sig.frequency,
		GateTimeScaling:        sig.time,
		GateCompensationRetest: sig.compensation,
	}
	for gate, want := range expected {
		r, ok := byGate[gate]
		if !ok {
			continue
		}
		if r.Passed == want {
			total++
		}
	}
	if r, ok := byGate[GateFrequencyScaling]; ok {
		if math.Abs(r.Statistic-sig.frequencyExp) <= exponentMatchTolerance {
			total++
		}
	}
	if r, ok := byGate[GateTimeScaling]; ok {
		if math.Abs(r.Statistic-sig.timeExp) <= exponentMatchTolerance {
			total++
		}
	}
	return total
}
