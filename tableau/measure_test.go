package tableau_test

import (
	"testing"

	"github.com/katalvlaran/chp/rng"
	"github.com/katalvlaran/chp/tableau"
	"github.com/stretchr/testify/require"
)

func TestMeasureRejectsOutOfRangeQubitAndBias(t *testing.T) {
	tb, err := tableau.New(1)
	require.NoError(t, err)
	src := rng.NewMathRand(1)

	_, err = tb.Measure(src, 5, 0.5)
	require.ErrorIs(t, err, tableau.ErrQubitOutOfRange)

	_, err = tb.Measure(src, 0, 1.5)
	require.ErrorIs(t, err, tableau.ErrInvalidBias)

	_, err = tb.Measure(src, 0, -0.1)
	require.ErrorIs(t, err, tableau.ErrInvalidBias)
}

// TestScenarioIdentity pins that measuring a fresh |0⟩ qubit always yields
// a determined false.
func TestScenarioIdentity(t *testing.T) {
	tb, err := tableau.New(1)
	require.NoError(t, err)
	src := rng.NewMathRand(1)

	r, err := tb.Measure(src, 0, tableau.DefaultBias)
	require.NoError(t, err)
	require.Equal(t, tableau.MeasureResult{Value: false, Determined: true}, r)
}

// TestScenarioBitFlip pins that H;S;S;H is a Pauli X, so measuring
// afterward is a determined true.
func TestScenarioBitFlip(t *testing.T) {
	tb, err := tableau.New(1)
	require.NoError(t, err)
	src := rng.NewMathRand(1)

	require.NoError(t, tb.Hadamard(0))
	require.NoError(t, tb.Phase(0))
	require.NoError(t, tb.Phase(0))
	require.NoError(t, tb.Hadamard(0))

	r, err := tb.Measure(src, 0, tableau.DefaultBias)
	require.NoError(t, err)
	require.Equal(t, tableau.MeasureResult{Value: true, Determined: true}, r)
}

// TestScenarioEPRPair pins that H(0);CNOT(0,1) entangles the pair; the
// first measurement is random, the second is forced equal to it.
func TestScenarioEPRPair(t *testing.T) {
	tb, err := tableau.New(2)
	require.NoError(t, err)
	src := rng.NewMathRand(1)

	require.NoError(t, tb.Hadamard(0))
	require.NoError(t, tb.CNOT(0, 1))

	v1, err := tb.Measure(src, 0, tableau.DefaultBias)
	require.NoError(t, err)
	require.False(t, v1.Determined)

	v2, err := tb.Measure(src, 1, tableau.DefaultBias)
	require.NoError(t, err)
	require.True(t, v2.Determined)

	require.Equal(t, v1.Value, v2.Value)
}

// TestScenarioSecondMeasurementIsDetermined pins the general invariant: two
// successive measurements of the same qubit with no intervening mutation
// agree, and the second is always determined.
func TestScenarioSecondMeasurementIsDetermined(t *testing.T) {
	tb, err := tableau.New(2)
	require.NoError(t, err)
	src := rng.NewMathRand(1)

	require.NoError(t, tb.Hadamard(0))

	first, err := tb.Measure(src, 0, tableau.DefaultBias)
	require.NoError(t, err)

	second, err := tb.Measure(src, 0, tableau.DefaultBias)
	require.NoError(t, err)

	require.True(t, second.Determined)
	require.Equal(t, first.Value, second.Value)
}

// TestScenarioKickbackVsStabilizer pins the exact pretty-printed tableau
// after a fixed eight-gate sequence on three qubits, then three bias=0
// measurements walking through the random and determined branches.
func TestScenarioKickbackVsStabilizer(t *testing.T) {
	tb, err := tableau.New(3)
	require.NoError(t, err)
	src := rng.NewMathRand(1)

	require.NoError(t, tb.Hadamard(2))
	require.NoError(t, tb.CNOT(2, 0))
	require.NoError(t, tb.CNOT(2, 1))
	require.NoError(t, tb.Phase(0))
	require.NoError(t, tb.Phase(1))
	require.NoError(t, tb.Hadamard(0))
	require.NoError(t, tb.Hadamard(1))
	require.NoError(t, tb.Hadamard(2))

	require.Equal(t, "-Y..\n-.Y.\n+..X\n----\n+X.X\n+.XX\n+YYZ", tb.String())

	v0, err := tb.Measure(src, 0, 0)
	require.NoError(t, err)
	require.Equal(t, tableau.MeasureResult{Value: false, Determined: false}, v0)

	v1, err := tb.Measure(src, 1, 0)
	require.NoError(t, err)
	require.Equal(t, tableau.MeasureResult{Value: false, Determined: false}, v1)

	v2, err := tb.Measure(src, 2, 0)
	require.NoError(t, err)
	require.Equal(t, tableau.MeasureResult{Value: true, Determined: true}, v2)
}
