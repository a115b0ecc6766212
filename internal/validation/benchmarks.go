// Package validation checks the model against published gravitational
// redshift measurements, from the original tower experiment down to tabletop
// optical clocks and up to navigation satellites.
package validation

// Benchmark is one historical experiment: two radii, the published value and
// its uncertainty, and the acceptance tolerance appropriate to the
// experiment's era and technique.
type Benchmark struct {
	Name string

	// LowRadius and HighRadius are distances from the body's center [m];
	// HighRadius > LowRadius.
	LowRadius  float64
	HighRadius float64

	// Measured is the published value in the benchmark's native unit,
	// Uncertainty its published 1-sigma error.
	Measured    float64
	Uncertainty float64

	// Scale converts a dimensionless fractional shift into the native unit
	// (1 for fractional shifts, seconds-per-day times 1e6 for us/day).
	Scale float64

	// ToleranceFraction is the additional relative slack beyond the
	// published uncertainty.
	ToleranceFraction float64
}

const (
	earthRadius      = 6.371e6
	gpsOrbitAltitude = 20200e3
	microsPerDay     = 86400 * 1e6
)

// Benchmarks returns the historical validation suite.
func Benchmarks() []Benchmark {
	return []Benchmark{
		{
			Name:              "Pound-Rebka 1960 (22.5 m tower)",
			LowRadius:         earthRadius,
			HighRadius:        earthRadius + 22.5,
			Measured:          2.57e-15,
			Uncertainty:       0.26e-15,
			Scale:             1,
			ToleranceFraction: 0.15,
		},
		{
			Name:              "GPS gravitational blueshift (us/day)",
			LowRadius:         earthRadius,
			HighRadius:        earthRadius + gpsOrbitAltitude,
			Measured:          45.7,
			Uncertainty:       1.0,
			Scale:             microsPerDay,
			ToleranceFraction: 0.15,
		},
		{
			Name:              "NIST optical clocks 2010 (33 cm)",
			LowRadius:         earthRadius,
			HighRadius:        earthRadius + 0.33,
			Measured:          4.1e-17,
			Uncertainty:       1.6e-17,
			Scale:             1,
			ToleranceFraction: 0.25,
		},
		{
			Name:              "Tokyo Skytree 2020 (450 m)",
			LowRadius:         earthRadius,
			HighRadius:        earthRadius + 450,
			Measured:          4.94e-14,
			Uncertainty:       0.26e-14,
			Scale:             1,
			ToleranceFraction: 0.20,
		},
	}
}
