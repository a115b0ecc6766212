package physics

import (
	"strings"

	"sszqubits/domain/core"
)

// Regime selects which closed form of the segment density applies. Dispatch is
// a typed enum so an unrecognized regime is impossible past the parsing edge.
type Regime int

const (
	// RegimeAuto selects by the ratio r/r_s.
	RegimeAuto Regime = iota
	// RegimeWeak forces the weak-field form r_s/(2r).
	RegimeWeak
	// RegimeStrong forces the saturation form 1-exp(-phi*r/r_s).
	RegimeStrong
	// RegimeTransition is the blended band; only ever produced by selection,
	// never requested directly.
	RegimeTransition
)

// Boundary ratios of the transition band, in units of r_s. The band is
// symmetric around 100*r_s with non-zero width so the weak and strong forms
// are each queried only outside it. Exported so tests can exercise the seams.
const (
	StrongFieldRatio = 90.0
	WeakFieldRatio   = 110.0
)

// ParseRegime converts a user-facing regime string into the enum. Only the
// CLI/API edge should call this; everything below dispatches on Regime.
func ParseRegime(s string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return RegimeAuto, nil
	case "weak":
		return RegimeWeak, nil
	case "strong":
		return RegimeStrong, nil
	default:
		return RegimeAuto, core.NewRegimeError(s)
	}
}

// String returns the canonical name.
func (r Regime) String() string {
	switch r {
	case RegimeWeak:
		return "weak"
	case RegimeStrong:
		return "strong"
	case RegimeTransition:
		return "transition"
	default:
		return "auto"
	}
}

// SelectRegime resolves RegimeAuto for a given ratio x = r/r_s.
func SelectRegime(x float64) Regime {
	switch {
	case x > WeakFieldRatio:
		return RegimeWeak
	case x < StrongFieldRatio:
		return RegimeStrong
	default:
		return RegimeTransition
	}
}
