package gates

import (
	"github.com/katalvlaran/chp/rng"
	"github.com/katalvlaran/chp/tableau"
)

// MeasureX measures qubit a in the X basis by conjugating with Hadamard.
func MeasureX(t *tableau.Tableau, src rng.Source, a int, bias float64) (tableau.MeasureResult, error) {
	if err := t.Hadamard(a); err != nil {
		return tableau.MeasureResult{}, err
	}
	v, err := t.Measure(src, a, bias)
	if err != nil {
		return tableau.MeasureResult{}, err
	}
	if err := t.Hadamard(a); err != nil {
		return tableau.MeasureResult{}, err
	}
	return v, nil
}

// MeasureY measures qubit a in the Y basis by conjugating with HYZ.
func MeasureY(t *tableau.Tableau, src rng.Source, a int, bias float64) (tableau.MeasureResult, error) {
	if err := HYZ(t, a); err != nil {
		return tableau.MeasureResult{}, err
	}
	v, err := t.Measure(src, a, bias)
	if err != nil {
		return tableau.MeasureResult{}, err
	}
	if err := HYZ(t, a); err != nil {
		return tableau.MeasureResult{}, err
	}
	return v, nil
}

// MeasureZ measures qubit a in the computational (Z) basis. It is a direct
// passthrough to tableau.Measure, named for symmetry with MeasureX/MeasureY.
func MeasureZ(t *tableau.Tableau, src rng.Source, a int, bias float64) (tableau.MeasureResult, error) {
	return t.Measure(src, a, bias)
}

// MeasureXAndReset measures qubit a in the X basis, then resets it to the
// computational-basis |0⟩ state regardless of the outcome observed. The
// qubit is not rotated back into the X basis, so it is not left in |+⟩.
func MeasureXAndReset(t *tableau.Tableau, src rng.Source, a int, bias float64) (tableau.MeasureResult, error) {
	if err := t.Hadamard(a); err != nil {
		return tableau.MeasureResult{}, err
	}
	return measureZAndReset(t, src, a, bias)
}

// MeasureYAndReset measures qubit a in the Y basis, then resets it to the
// computational-basis |0⟩ state regardless of the outcome observed. The
// qubit is not rotated back into the Y basis, so it is not left in a Y
// eigenstate.
func MeasureYAndReset(t *tableau.Tableau, src rng.Source, a int, bias float64) (tableau.MeasureResult, error) {
	if err := HYZ(t, a); err != nil {
		return tableau.MeasureResult{}, err
	}
	return measureZAndReset(t, src, a, bias)
}

// MeasureZAndReset measures qubit a in the computational basis, then forces
// it back to |0⟩ regardless of the outcome observed.
func MeasureZAndReset(t *tableau.Tableau, src rng.Source, a int, bias float64) (tableau.MeasureResult, error) {
	return measureZAndReset(t, src, a, bias)
}

func measureZAndReset(t *tableau.Tableau, src rng.Source, a int, bias float64) (tableau.MeasureResult, error) {
	v, err := t.Measure(src, a, bias)
	if err != nil {
		return tableau.MeasureResult{}, err
	}
	if v.Value {
		if err := X(t, a); err != nil {
			return tableau.MeasureResult{}, err
		}
	}
	return v, nil
}
