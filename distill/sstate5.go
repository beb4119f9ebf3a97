package distill

import (
	"github.com/katalvlaran/chp/gates"
	"github.com/katalvlaran/chp/rng"
	"github.com/katalvlaran/chp/tableau"
)

// lowSpacePhasors are the seven ancilla phasors the 5-qubit low-space
// distillation circuit cycles through, indexed 0-6.
var lowSpacePhasors = [7][]int{
	{0},
	{1},
	{2},
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

const lowSpaceAncilla = 4

// runLowSpace5 runs the 5-qubit low-space distillation circuit on a fresh
// tableau, injecting a Z error on the ancilla immediately after the phase
// gate for every phasor index present in faults. It returns the final
// Y-basis measurement of qubit 3 (the distilled S state) and the
// computational-basis measurements of qubits 0-2 (the parity checks).
func runLowSpace5(src rng.Source, faults map[int]bool) (y tableau.MeasureResult, checks [3]tableau.MeasureResult, err error) {
	t, err := tableau.New(5)
	if err != nil {
		return tableau.MeasureResult{}, checks, err
	}

	for e, phasor := range lowSpacePhasors {
		for _, k := range phasor {
			if err := gates.XNOT(t, lowSpaceAncilla, k); err != nil {
				return tableau.MeasureResult{}, checks, err
			}
		}
		if err := t.Phase(lowSpaceAncilla); err != nil {
			return tableau.MeasureResult{}, checks, err
		}
		if faults[e] {
			if err := gates.Z(t, lowSpaceAncilla); err != nil {
				return tableau.MeasureResult{}, checks, err
			}
		}

		v, err := gates.MeasureXAndReset(t, src, lowSpaceAncilla, tableau.DefaultBias)
		if err != nil {
			return tableau.MeasureResult{}, checks, err
		}
		if v.Determined {
			return tableau.MeasureResult{}, checks, ErrNotDetermined
		}
		if v.Value {
			for _, k := range phasor {
				if err := gates.X(t, k); err != nil {
					return tableau.MeasureResult{}, checks, err
				}
			}
		}
	}

	y, err = gates.MeasureY(t, src, 3, tableau.DefaultBias)
	if err != nil {
		return tableau.MeasureResult{}, checks, err
	}
	for k := 0; k < 3; k++ {
		checks[k], err = t.Measure(src, k, tableau.DefaultBias)
		if err != nil {
			return tableau.MeasureResult{}, checks, err
		}
	}
	return y, checks, nil
}

// SState5 runs the 5-qubit low-space distillation circuit with no injected
// faults and reports whether the result matched the fault-free expectation:
// a determined false for the distilled S state's Y measurement and for all
// three parity checks.
func SState5(src rng.Source) (bool, error) {
	y, checks, err := runLowSpace5(src, nil)
	if err != nil {
		return false, err
	}
	if !y.Determined || y.Value {
		return false, nil
	}
	for _, c := range checks {
		if !c.Determined || c.Value {
			return false, nil
		}
	}
	return true, nil
}
