package physics

import (
	"math"
	"testing"

	"sszqubits/domain/core"
)

func makeLabQubit(t *testing.T, height float64) Qubit {
	t.Helper()
	q, err := NewQubit(core.NewQubitID(), 5e9, height, 100e-6, 40e-9)
	if err != nil {
		t.Fatalf("qubit: %v", err)
	}
	return q
}

func TestDecoherenceRate_MatchesDensityAndGradient(t *testing.T) {
	c := Earth()
	q := makeLabQubit(t, 0)

	xi, err := c.SegmentDensity(q.Radius(c), c.ReferenceMass)
	if err != nil {
		t.Fatalf("density: %v", err)
	}
	grad, err := c.SegmentGradient(q.Radius(c), c.ReferenceMass, RegimeAuto)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}
	base := 1 / q.CoherenceTime
	want := base*(1+xi*densityDephasingGain) + base*math.Abs(grad)*qubitSpatialExtent*gradientDephasingGain

	got, err := q.DecoherenceRate(c, true)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if relDiff(got, want) > 1e-12 {
		t.Fatalf("rate %.12e departs from composed value %.12e", got, want)
	}

	withoutGrad, err := q.DecoherenceRate(c, false)
	if err != nil {
		t.Fatalf("rate without gradient: %v", err)
	}
	if withoutGrad >= got {
		t.Fatalf("gradient term must add dephasing: %v >= %v", withoutGrad, got)
	}
}

func TestEffectiveT2_ShorterThanIntrinsic(t *testing.T) {
	c := Earth()
	q := makeLabQubit(t, 0)

	t2, err := q.EffectiveT2(c)
	if err != nil {
		t.Fatalf("effective T2: %v", err)
	}
	if t2 >= q.CoherenceTime {
		t.Fatalf("effective T2 %.6e not shorter than intrinsic %.6e", t2, q.CoherenceTime)
	}
	// At Earth's surface the density term costs roughly 40% of T2.
	if ratio := t2 / q.CoherenceTime; ratio < 0.5 || ratio > 0.7 {
		t.Fatalf("surface T2 ratio %.4f outside expected band", ratio)
	}
}

func TestEffectiveT2_ImprovesWithAltitude(t *testing.T) {
	c := Earth()
	ground, err := makeLabQubit(t, 0).EffectiveT2(c)
	if err != nil {
		t.Fatalf("ground: %v", err)
	}
	raised, err := makeLabQubit(t, 1000).EffectiveT2(c)
	if err != nil {
		t.Fatalf("raised: %v", err)
	}
	if raised <= ground {
		t.Fatalf("density falls with altitude, T2 must grow: %.9e <= %.9e", raised, ground)
	}
}

func TestPairDecoherenceTime_FasterThanEitherMember(t *testing.T) {
	c := Earth()
	pair := NewQubitPair(makeLabQubit(t, 0), makeLabQubit(t, 0.5))

	joint, err := pair.DecoherenceTime(c)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	t2A, err := pair.A.EffectiveT2(c)
	if err != nil {
		t.Fatalf("member a: %v", err)
	}
	t2B, err := pair.B.EffectiveT2(c)
	if err != nil {
		t.Fatalf("member b: %v", err)
	}
	if joint >= t2A || joint >= t2B {
		t.Fatalf("joint window %.6e must undercut both members (%.6e, %.6e)", joint, t2A, t2B)
	}
}

func TestDecoherenceRate_RejectsZeroCoherenceTime(t *testing.T) {
	c := Earth()
	q := Qubit{Frequency: 5e9, GateTime: 40e-9}
	if _, err := q.DecoherenceRate(c, true); !core.IsDomainError(err) {
		t.Fatalf("expected domain error, got %v", err)
	}
}
