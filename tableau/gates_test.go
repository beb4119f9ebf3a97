package tableau_test

import (
	"testing"

	"github.com/katalvlaran/chp/tableau"
	"github.com/stretchr/testify/require"
)

func TestCNOTRejectsOutOfRangeAndAliasedQubits(t *testing.T) {
	tb, err := tableau.New(2)
	require.NoError(t, err)

	require.ErrorIs(t, tb.CNOT(-1, 0), tableau.ErrQubitOutOfRange)
	require.ErrorIs(t, tb.CNOT(0, 2), tableau.ErrQubitOutOfRange)
	require.ErrorIs(t, tb.CNOT(1, 1), tableau.ErrAliasedQubits)
}

func TestHadamardRejectsOutOfRange(t *testing.T) {
	tb, err := tableau.New(1)
	require.NoError(t, err)
	require.ErrorIs(t, tb.Hadamard(1), tableau.ErrQubitOutOfRange)
}

func TestPhaseRejectsOutOfRange(t *testing.T) {
	tb, err := tableau.New(1)
	require.NoError(t, err)
	require.ErrorIs(t, tb.Phase(-1), tableau.ErrQubitOutOfRange)
}

// TestHadamardIsSelfInverse pins the invariant that H;H is identity.
func TestHadamardIsSelfInverse(t *testing.T) {
	tb, err := tableau.New(3)
	require.NoError(t, err)
	before := tb.String()

	require.NoError(t, tb.Hadamard(1))
	require.NoError(t, tb.Hadamard(1))

	require.Equal(t, before, tb.String())
}

// TestPhaseFourTimesIsIdentity pins the invariant that S applied 4 times
// is identity.
func TestPhaseFourTimesIsIdentity(t *testing.T) {
	tb, err := tableau.New(2)
	require.NoError(t, err)
	// Put some structure on the tableau first so the check is non-trivial.
	require.NoError(t, tb.Hadamard(0))
	require.NoError(t, tb.CNOT(0, 1))
	before := tb.String()

	for i := 0; i < 4; i++ {
		require.NoError(t, tb.Phase(0))
	}

	require.Equal(t, before, tb.String())
}

// TestCNOTIsSelfInverse pins the invariant that CNOT;CNOT is identity.
func TestCNOTIsSelfInverse(t *testing.T) {
	tb, err := tableau.New(3)
	require.NoError(t, err)
	require.NoError(t, tb.Hadamard(0))
	require.NoError(t, tb.Hadamard(2))
	before := tb.String()

	require.NoError(t, tb.CNOT(0, 2))
	require.NoError(t, tb.CNOT(0, 2))

	require.Equal(t, before, tb.String())
}
