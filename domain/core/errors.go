package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Non-physical input
	ErrDomain            = errors.New("non-physical input")
	ErrNonPositiveRadius = fmt.Errorf("%w: radius must be positive", ErrDomain)
	ErrNonPositiveMass   = fmt.Errorf("%w: mass must be positive", ErrDomain)
	ErrNegativeTime      = fmt.Errorf("%w: elapsed time must be non-negative", ErrDomain)
	ErrNonPositiveOmega  = fmt.Errorf("%w: angular frequency must be positive", ErrDomain)
	ErrNonPositiveEps    = fmt.Errorf("%w: phase tolerance must be positive", ErrDomain)

	// Configuration errors
	ErrUnknownRegime = errors.New("unrecognized regime")

	// Statistical errors
	ErrInsufficientData = errors.New("insufficient data for fit")
	ErrNonPositiveSigma = fmt.Errorf("%w: measurement uncertainty must be positive", ErrDomain)
)

// Error constructors with context

func NewDomainError(field string, value float64) error {
	return fmt.Errorf("%w: %s = %g", ErrDomain, field, value)
}

func NewRegimeError(regime string) error {
	return fmt.Errorf("%w: %q", ErrUnknownRegime, regime)
}

func NewInsufficientDataError(distinct, required int) error {
	return fmt.Errorf("%w: %d distinct abscissae, need at least %d", ErrInsufficientData, distinct, required)
}

// Error checking helpers

func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownRegime)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
