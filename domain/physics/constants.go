package physics

import (
	"math"

	"sszqubits/domain/core"
)

// Constants is the immutable physical configuration every calculation receives
// explicitly. There is no package-level mutable state: callers construct one
// (usually via Earth) and pass it around, which keeps every function pure and
// testable in isolation.
type Constants struct {
	SpeedOfLight          float64 // c [m/s]
	GravitationalConstant float64 // G [m^3/(kg*s^2)]
	Phi                   float64 // geometric constant, golden ratio
	ReferenceMass         float64 // default central mass [kg]
	ReferenceRadius       float64 // default distance from its center [m]
}

// Earth returns the default configuration: SI constants with Earth as the
// reference body. Phi is a fixed configuration constant of the model; it is
// not derived here and must not be tuned.
func Earth() Constants {
	return Constants{
		SpeedOfLight:          299792458.0,
		GravitationalConstant: 6.67430e-11,
		Phi:                   (1 + math.Sqrt(5)) / 2,
		ReferenceMass:         5.972e24,
		ReferenceRadius:       6.371e6,
	}
}

// Validate checks that the configuration is physically meaningful.
func (c Constants) Validate() error {
	if c.SpeedOfLight <= 0 {
		return core.NewDomainError("speed_of_light", c.SpeedOfLight)
	}
	if c.GravitationalConstant <= 0 {
		return core.NewDomainError("gravitational_constant", c.GravitationalConstant)
	}
	if c.Phi <= 0 {
		return core.NewDomainError("phi", c.Phi)
	}
	if c.ReferenceMass <= 0 {
		return core.ErrNonPositiveMass
	}
	if c.ReferenceRadius <= 0 {
		return core.ErrNonPositiveRadius
	}
	return nil
}

// SchwarzschildRadius returns r_s = 2GM/c^2 for the given mass.
func (c Constants) SchwarzschildRadius(mass float64) (float64, error) {
	if mass <= 0 {
		return 0, core.ErrNonPositiveMass
	}
	return 2 * c.GravitationalConstant * mass / (c.SpeedOfLight * c.SpeedOfLight), nil
}

// SurfaceGravity returns GM/r^2 at the given radius.
func (c Constants) SurfaceGravity(mass, radius float64) (float64, error) {
	if mass <= 0 {
		return 0, core.ErrNonPositiveMass
	}
	if radius <= 0 {
		return 0, core.ErrNonPositiveRadius
	}
	return c.GravitationalConstant * mass / (radius * radius), nil
}
