// Package synth generates synthetic measurement sets with a known ground
// truth: either genuine segment-density drift or one of the modeled
// confounds, plus Gaussian phase noise. The classifier and fit packages are
// tested against these gold-standard sets.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"sszqubits/domain/core"
	"sszqubits/domain/experiment"
	"sszqubits/domain/physics"
)

// Reference scales the confound amplitudes are expressed against.
const (
	refHeight = 0.1               // [m]
	refTime   = 1.0               // [s]
	refOmega  = 2 * math.Pi * 5e9 // [rad/s]
)

type Config struct {
	Seed        int64
	Heights     []float64 // [m], distinct separations
	Frequencies []float64 // [Hz], linear; converted to angular internally
	Times       []float64 // [s]
	Sigma       float64   // 1-sigma additive phase noise [rad]

	// Confound selects the injected ground truth. ConfoundNone injects the
	// drift model itself.
	Confound experiment.Confound
	// ConfoundScale is the confound phase amplitude [rad] at the reference
	// height, frequency and time.
	ConfoundScale float64

	Constants physics.Constants
}

func DefaultConfig() Config {
	return Config{
		Seed:          42,
		Heights:       []float64{0.1, 0.2, 0.3, 0.4, 0.5},
		Frequencies:   []float64{5e9, 7e9, 10e9},
		Times:         []float64{1, 10, 100},
		Sigma:         1e-8,
		Confound:      experiment.ConfoundNone,
		ConfoundScale: 1e-6,
		Constants:     physics.Earth(),
	}
}

// Generate produces one measurement per (height, frequency, time) grid cell.
// Deterministic for a fixed Config.
func Generate(cfg Config) ([]experiment.Measurement, error) {
	if cfg.Sigma <= 0 {
		return nil, core.ErrNonPositiveSigma
	}
	c := cfg.Constants
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	out := make([]experiment.Measurement, 0, len(cfg.Heights)*len(cfg.Frequencies)*len(cfg.Times))
	for _, h := range cfg.Heights {
		for _, f := range cfg.Frequencies {
			omega := 2 * math.Pi * f
			for _, elapsed := range cfg.Times {
				truth, err := truePhase(cfg, c, omega, h, elapsed, rng)
				if err != nil {
					return nil, err
				}
				phase := truth + rng.NormFloat64()*cfg.Sigma
				m, err := experiment.NewMeasurement(h, phase, cfg.Sigma, omega, elapsed)
				if err != nil {
					return nil, err
				}
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// truePhase injects the selected ground truth. Confound runs carry NO real
// drift: the injected term is the mundane process alone, so a classifier
// that calls them genuine has been fooled.
func truePhase(cfg Config, c physics.Constants, omega, h, elapsed float64, rng *rand.Rand) (float64, error) {
	switch cfg.Confound {
	case experiment.ConfoundNone:
		drift, _, err := c.PhaseDrift(omega, h, elapsed, c.ReferenceMass, c.ReferenceRadius)
		return drift, err
	case experiment.ConfoundThermal:
		// Thermal gradients bend with the square of separation and grow
		// linearly in time, with no carrier-frequency dependence.
		r := h / refHeight
		return cfg.ConfoundScale * r * r * (elapsed / refTime), nil
	case experiment.ConfoundLONoise:
		// Local-oscillator random walk: sqrt(t) growth, height-blind.
		jitter := math.Abs(1 + 0.1*rng.NormFloat64())
		return cfg.ConfoundScale * math.Sqrt(elapsed/refTime) * jitter, nil
	case experiment.ConfoundVibration:
		// Mechanical pickup modulates the carrier directly: proportional to
		// omega and t, but blind to height separation.
		return cfg.ConfoundScale * (omega / refOmega) * (elapsed / refTime), nil
	case experiment.ConfoundMagnetic:
		// Zeeman-like shifts scale inversely with carrier frequency.
		return cfg.ConfoundScale * (refOmega / omega) * (elapsed / refTime), nil
	case experiment.ConfoundCharge:
		// Trapped-charge offsets are static.
		return cfg.ConfoundScale, nil
	default:
		return 0, fmt.Errorf("unknown confound %q", cfg.Confound)
	}
}
