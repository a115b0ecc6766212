// Package referee implements the scaling-signature checks. Each referee
// checks one axis of the drift model's predicted scaling law; genuine
// segment-density drift passes all four, while each mundane confound fails
// them in a characteristic pattern the classifier reads back.
package referee

import (
	"sszqubits/domain/experiment"
	"sszqubits/domain/physics"
)

// Result carries one referee's pass/fail decision plus the fitted exponent
// or statistic behind it.
type Result struct {
	GateName      string  `json:"gate_name"`
	Passed        bool    `json:"passed"`
	Statistic     float64 `json:"statistic"`
	StandardUsed  string  `json:"standard_used"`
	FailureReason string  `json:"failure_reason,omitempty"`
}

// Referee is the contract every scaling check satisfies.
type Referee interface {
	Execute(measurements []experiment.Measurement) Result
}

// Gate names.
const (
	GateHeightScaling      = "Height_Scaling"
	GateFrequencyScaling   = "Frequency_Scaling"
	GateTimeScaling        = "Time_Scaling"
	GateCompensationRetest = "Compensation_Reversal"
)

// ByName is the referee factory. The constants are the same configuration the
// rest of the pipeline runs under; the compensation gate derives its corrective
// phases from them. Returns nil for unknown names.
func ByName(name string, c physics.Constants) Referee {
	switch name {
	case GateHeightScaling:
		return &HeightScaling{}
	case GateFrequencyScaling:
		return &FrequencyScaling{}
	case GateTimeScaling:
		return &TimeScaling{}
	case GateCompensationRetest:
		return &CompensationReversal{Constants: c}
	default:
		return nil
	}
}

// All returns the full gate in canonical order, built against the given
// constants.
func All(c physics.Constants) []Referee {
	return []Referee{
		&HeightScaling{},
		&FrequencyScaling{},
		&TimeScaling{},
		&CompensationReversal{Constants: c},
	}
}

func failed(name, reason string) Result {
	return Result{GateName: name, Passed: false, FailureReason: reason}
}
