package experiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"sszqubits/domain/core"
)

func TestNewMeasurement_Validation(t *testing.T) {
	omega := 2 * math.Pi * 5e9

	m, err := NewMeasurement(0.1, 1e-7, 1e-9, omega, 1.0)
	require.NoError(t, err)
	require.False(t, core.ID(m.ID).IsEmpty())
	require.Equal(t, 0.1, m.HeightDifference)

	_, err = NewMeasurement(0.1, 1e-7, 0, omega, 1.0)
	require.ErrorIs(t, err, core.ErrDomain)

	_, err = NewMeasurement(0.1, 1e-7, 1e-9, 0, 1.0)
	require.ErrorIs(t, err, core.ErrDomain)

	_, err = NewMeasurement(0.1, 1e-7, 1e-9, omega, -1)
	require.ErrorIs(t, err, core.ErrDomain)
}

func TestMeasurement_WithEnvironmentCopies(t *testing.T) {
	m, err := NewMeasurement(0.1, 1e-7, 1e-9, 2*math.Pi*5e9, 1.0)
	require.NoError(t, err)

	env := map[string]float64{"temperature_k": 0.015}
	withEnv := m.WithEnvironment(env)
	env["temperature_k"] = 300 // mutating the source must not leak in

	require.Equal(t, 0.015, withEnv.Environment["temperature_k"])
	require.Nil(t, m.Environment)
}

func TestFitResult_Contains(t *testing.T) {
	r := FitResult{ConfidenceInterval: [2]float64{1, 3}}
	require.True(t, r.Contains(2))
	require.True(t, r.Contains(1))
	require.True(t, r.Contains(3))
	require.False(t, r.Contains(0.99))
	require.False(t, r.Contains(3.01))
}

func TestConfounds_PriorityOrder(t *testing.T) {
	expected := []Confound{ConfoundThermal, ConfoundLONoise, ConfoundVibration, ConfoundMagnetic, ConfoundCharge}
	require.Equal(t, expected, Confounds())
}
