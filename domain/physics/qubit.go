package physics

import (
	"math"

	"sszqubits/domain/core"
)

// Qubit is an immutable description of one oscillator in a platform scenario.
// A new scenario means a new Qubit, never a mutation. Frequency is LINEAR
// frequency in Hz; drift calculations convert to angular internally.
type Qubit struct {
	ID            core.QubitID
	Frequency     float64 // [Hz], > 0
	Height        float64 // [m] above the reference radius; may be negative
	CoherenceTime float64 // T2 [s], > 0
	GateTime      float64 // [s], > 0
}

// NewQubit validates and constructs a Qubit.
func NewQubit(id core.QubitID, frequency, height, coherenceTime, gateTime float64) (Qubit, error) {
	if frequency <= 0 {
		return Qubit{}, core.NewDomainError("frequency", frequency)
	}
	if coherenceTime <= 0 {
		return Qubit{}, core.NewDomainError("coherence_time", coherenceTime)
	}
	if gateTime <= 0 {
		return Qubit{}, core.NewDomainError("gate_time", gateTime)
	}
	return Qubit{
		ID:            id,
		Frequency:     frequency,
		Height:        height,
		CoherenceTime: coherenceTime,
		GateTime:      gateTime,
	}, nil
}

// Omega returns the angular frequency 2*pi*f [rad/s].
func (q Qubit) Omega() float64 {
	return 2 * math.Pi * q.Frequency
}

// Radius returns the distance from the reference body's center.
func (q Qubit) Radius(c Constants) float64 {
	return c.ReferenceRadius + q.Height
}

// QubitPair holds two qubits plus their derived height difference. The pair
// does not own the qubits; it reads them.
type QubitPair struct {
	A, B Qubit
}

// NewQubitPair constructs a pair.
func NewQubitPair(a, b Qubit) QubitPair {
	return QubitPair{A: a, B: b}
}

// HeightDifference returns |h_a - h_b|.
func (p QubitPair) HeightDifference() float64 {
	return math.Abs(p.A.Height - p.B.Height)
}

// PhaseDriftOver returns the accumulated relative phase between the pair over
// elapsed time t, using the mean angular frequency of the two qubits.
func (p QubitPair) PhaseDriftOver(c Constants, t float64) (float64, []WarningCode, error) {
	omega := (p.A.Omega() + p.B.Omega()) / 2
	return c.PhaseDrift(omega, p.HeightDifference(), t, c.ReferenceMass, c.ReferenceRadius)
}

// CompensationOver returns the corrective phase for the pair over elapsed
// time t.
func (p QubitPair) CompensationOver(c Constants, t float64) (float64, []WarningCode, error) {
	drift, warnings, err := p.PhaseDriftOver(c, t)
	if err != nil {
		return 0, nil, err
	}
	return -drift, warnings, nil
}

// SegmentMismatch describes the density and dilation gap between the members
// of a pair, the quantities that drive cross-zone phase errors.
type SegmentMismatch struct {
	DeltaXi       float64
	DeltaDilation float64
	DriftPerGate  float64
}

// Mismatch computes the segment mismatch for the pair. The dilation gap is
// evaluated with the cancellation-safe differential, not by subtracting two
// near-equal dilation factors.
func (p QubitPair) Mismatch(c Constants) (SegmentMismatch, error) {
	xiA, err := c.SegmentDensity(p.A.Radius(c), c.ReferenceMass)
	if err != nil {
		return SegmentMismatch{}, err
	}
	xiB, err := c.SegmentDensity(p.B.Radius(c), c.ReferenceMass)
	if err != nil {
		return SegmentMismatch{}, err
	}
	dd, _, err := c.DifferentialTimeDilation(p.HeightDifference(), c.ReferenceMass, c.ReferenceRadius)
	if err != nil {
		return SegmentMismatch{}, err
	}
	gateTime := (p.A.GateTime + p.B.GateTime) / 2
	omega := (p.A.Omega() + p.B.Omega()) / 2
	return SegmentMismatch{
		DeltaXi:       math.Abs(xiA - xiB),
		DeltaDilation: math.Abs(dd),
		DriftPerGate:  omega * math.Abs(dd) * gateTime,
	}, nil
}

// GateTimingCorrection returns the factor gate durations calibrated at
// referenceHeight must be scaled by when executed at the qubit's height.
func (q Qubit) GateTimingCorrection(c Constants, referenceHeight float64) (float64, error) {
	dQubit, err := c.TimeDilation(q.Radius(c), c.ReferenceMass)
	if err != nil {
		return 0, err
	}
	dRef, err := c.TimeDilation(c.ReferenceRadius+referenceHeight, c.ReferenceMass)
	if err != nil {
		return 0, err
	}
	return dRef / dQubit, nil
}

// GateTiming captures the two-qubit gate recommendations for a pair.
type GateTiming struct {
	OptimalGateTime float64
	TimingAsymmetry float64
	MaxFidelityLoss float64
}

// GateTiming computes the optimal two-qubit gate duration, the timing
// asymmetry needed to keep the members in step, and the fidelity loss if the
// asymmetry goes uncorrected.
func (p QubitPair) GateTiming(c Constants) (GateTiming, error) {
	dA, err := c.TimeDilation(p.A.Radius(c), c.ReferenceMass)
	if err != nil {
		return GateTiming{}, err
	}
	dB, err := c.TimeDilation(p.B.Radius(c), c.ReferenceMass)
	if err != nil {
		return GateTiming{}, err
	}
	dAvg := (dA + dB) / 2

	// The raw dilation subtraction underflows for realistic separations, so
	// derive the asymmetry from the cancellation-safe differential instead.
	dd, _, err := c.DifferentialTimeDilation(p.HeightDifference(), c.ReferenceMass, c.ReferenceRadius)
	if err != nil {
		return GateTiming{}, err
	}
	asymmetry := math.Abs(dd) / dAvg

	phaseError := 2 * math.Pi * asymmetry
	return GateTiming{
		OptimalGateTime: math.Sqrt(p.A.GateTime*p.B.GateTime) / dAvg,
		TimingAsymmetry: asymmetry,
		MaxFidelityLoss: 1 - BellFidelity(phaseError),
	}, nil
}
