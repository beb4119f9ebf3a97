package distill

import (
	"github.com/katalvlaran/chp/gates"
	"github.com/katalvlaran/chp/rng"
	"github.com/katalvlaran/chp/tableau"
)

// sstate9Stabilizers are the four weight-4 Steane-code stabilizer supports
// checked by the low-depth distillation circuit, indexed by data qubit.
var sstate9Stabilizers = [4][]int{
	{0, 1, 2, 3},
	{0, 1, 4, 5},
	{0, 2, 4, 6},
	{1, 2, 4, 7},
}

// sstate9Checks pairs each of the first three stabilizer measurements with
// the data-qubit measurements it must agree in parity with.
var sstate9Checks = [3]struct {
	stabilizer int
	qubits     []int
}{
	{stabilizer: 0, qubits: sstate9Stabilizers[0]},
	{stabilizer: 1, qubits: sstate9Stabilizers[1]},
	{stabilizer: 2, qubits: sstate9Stabilizers[2]},
}

const sstate9Ancilla = 8

// SState9 runs the 9-qubit low-depth S-state distillation circuit on a
// fresh tableau: it consumes a freshly zeroed 9-qubit tableau (qubit 8 is
// the ancilla), measures the four Steane-code stabilizers via the ancilla,
// applies Phase then Hadamard to each of the first seven data qubits and
// measures it, corrects qubit 7's sign from the combined parity of every outcome,
// and returns the final Y-basis measurement of qubit 7 — the distilled S
// state — which the circuit's algebra guarantees is always a determined
// true.
//
// parities reports, for each of the three Steane parity checks, whether the
// corresponding stabilizer and data measurements disagreed; a correct
// tableau always yields all three false. err is ErrParityCheckFailed if any
// parity check disagreed, or ErrNotDetermined if a measurement's
// determinacy was not the one the circuit guarantees.
func SState9(src rng.Source) (result tableau.MeasureResult, parities [3]bool, err error) {
	t, err := tableau.New(9)
	if err != nil {
		return tableau.MeasureResult{}, parities, err
	}

	var stabilizerOutcomes [4]tableau.MeasureResult
	for i, support := range sstate9Stabilizers {
		for _, k := range support {
			if err := gates.XNOT(t, sstate9Ancilla, k); err != nil {
				return tableau.MeasureResult{}, parities, err
			}
		}
		v, err := gates.MeasureZAndReset(t, src, sstate9Ancilla, tableau.DefaultBias)
		if err != nil {
			return tableau.MeasureResult{}, parities, err
		}
		if v.Determined {
			return tableau.MeasureResult{}, parities, ErrNotDetermined
		}
		stabilizerOutcomes[i] = v
	}

	var qubitOutcomes [7]tableau.MeasureResult
	for k := 0; k < 7; k++ {
		if err := t.Phase(k); err != nil {
			return tableau.MeasureResult{}, parities, err
		}
		if err := t.Hadamard(k); err != nil {
			return tableau.MeasureResult{}, parities, err
		}
		v, err := t.Measure(src, k, tableau.DefaultBias)
		if err != nil {
			return tableau.MeasureResult{}, parities, err
		}
		qubitOutcomes[k] = v
	}

	parity := 0
	for _, v := range stabilizerOutcomes {
		if v.Value {
			parity++
		}
	}
	for _, v := range qubitOutcomes {
		if v.Value {
			parity++
		}
	}
	if parity%2 != 0 {
		if err := gates.Z(t, 7); err != nil {
			return tableau.MeasureResult{}, parities, err
		}
	}

	for i, c := range sstate9Checks {
		sum := 0
		if stabilizerOutcomes[c.stabilizer].Value {
			sum++
		}
		for _, q := range c.qubits {
			if qubitOutcomes[q].Value {
				sum++
			}
		}
		parities[i] = sum%2 != 0
	}
	for _, p := range parities {
		if p {
			err = ErrParityCheckFailed
			break
		}
	}

	result, measureErr := gates.MeasureY(t, src, 7, tableau.DefaultBias)
	if measureErr != nil {
		return tableau.MeasureResult{}, parities, measureErr
	}
	if !result.Determined {
		return result, parities, ErrNotDetermined
	}
	return result, parities, err
}
