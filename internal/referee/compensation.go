package referee

import (
	"fmt"
	"math"

	"sszqubits/domain/experiment"
	"sszqubits/domain/physics"
)

// rmsReductionThreshold is the fraction of RMS phase that model-derived
// compensation must remove for the reversal check to pass.
const rmsReductionThreshold = 0.9

// CompensationReversal applies the model's corrective phase to every
// measurement and compares residual RMS to the raw RMS. Deterministic
// segment-density drift collapses to the noise floor; a stochastic confound
// uncorrelated with the model keeps its variance.
//
// Constants must be the configuration the measurements were taken (or
// generated) under; there is no implicit default.
type CompensationReversal struct {
	Constants physics.Constants
}

func (cr *CompensationReversal) Execute(measurements []experiment.Measurement) Result {
	c := cr.Constants
	if err := c.Validate(); err != nil {
		return failed(GateCompensationRetest, err.Error())
	}
	if len(measurements) == 0 {
		return failed(GateCompensationRetest, "no measurements")
	}

	var rawSq, residSq float64
	for _, m := range measurements {
		comp, _, err := c.CompensationPhase(m.Frequency, m.HeightDifference, m.ElapsedTime, c.ReferenceMass, c.ReferenceRadius)
		if err != nil {
			return failed(GateCompensationRetest, err.Error())
		}
		resid := physics.ApplyCompensation(m.ObservedPhase, comp)
		rawSq += m.ObservedPhase * m.ObservedPhase
		residSq += resid * resid
	}
	if rawSq == 0 {
		return failed(GateCompensationRetest, "zero raw phase power")
	}

	reduction := 1 - math.Sqrt(residSq/rawSq)
	passed := reduction >= rmsReductionThreshold
	r := Result{
		GateName:     GateCompensationRetest,
		Passed:       passed,
		Statistic:    reduction,
		StandardUsed: fmt.Sprintf("compensation removes >= %.0f%% of RMS phase", rmsReductionThreshold*100),
	}
	if !passed {
		r.FailureReason = fmt.Sprintf("compensation removed only %.1f%% of RMS phase", reduction*100)
	}
	return r
}
