package synth

import (
	"sszqubits/domain/core"
	"sszqubits/domain/physics"
)

// BellModel selects how a simulated entanglement sequence treats drift.
type BellModel string

const (
	// BellBaseline runs with no height separation: the control arm.
	BellBaseline BellModel = "baseline"
	// BellDrift accumulates uncorrected drift across the gate sequence.
	BellDrift BellModel = "drift"
	// BellCompensated applies the corrective phase at the stated efficiency.
	BellCompensated BellModel = "compensated"
)

// CompensationEfficiency is the fraction of predicted drift a realistic
// control system removes.
const CompensationEfficiency = 0.99

// BellConfig describes a simulated Bell-pair gate sequence across a height
// separation.
type BellConfig struct {
	Qubits    physics.QubitPair
	GateCount int
	Model     BellModel
	Constants physics.Constants
}

// BellOutcome is the simulated end-of-sequence state quality.
type BellOutcome struct {
	AccumulatedPhase float64
	ResidualPhase    float64
	Fidelity         float64
}

// SimulateBellState runs a gate sequence of GateCount two-qubit gates and
// returns the accumulated relative phase, the residual after the selected
// correction policy, and the resulting Bell fidelity.
func SimulateBellState(cfg BellConfig) (BellOutcome, error) {
	if cfg.GateCount <= 0 {
		return BellOutcome{}, core.NewDomainError("gate_count", float64(cfg.GateCount))
	}
	c := cfg.Constants
	if err := c.Validate(); err != nil {
		return BellOutcome{}, err
	}

	gateTime := (cfg.Qubits.A.GateTime + cfg.Qubits.B.GateTime) / 2
	elapsed := float64(cfg.GateCount) * gateTime

	var accumulated float64
	if cfg.Model != BellBaseline {
		drift, _, err := cfg.Qubits.PhaseDriftOver(c, elapsed)
		if err != nil {
			return BellOutcome{}, err
		}
		accumulated = drift
	}

	residual := accumulated
	if cfg.Model == BellCompensated {
		comp, _, err := cfg.Qubits.CompensationOver(c, elapsed)
		if err != nil {
			return BellOutcome{}, err
		}
		residual = physics.ApplyCompensation(accumulated, CompensationEfficiency*comp)
	}

	return BellOutcome{
		AccumulatedPhase: accumulated,
		ResidualPhase:    residual,
		Fidelity:         physics.BellFidelity(residual),
	}, nil
}

// RecoveredFraction compares drift and compensated outcomes for the same
// pair and sequence: the fraction of fidelity loss the correction wins back.
func RecoveredFraction(drift, compensated BellOutcome) float64 {
	lossUncorrected := 1 - drift.Fidelity
	if lossUncorrected == 0 {
		return 1
	}
	lossCorrected := 1 - compensated.Fidelity
	return 1 - lossCorrected/lossUncorrected
}
