package tableau

import (
	"fmt"

	"github.com/katalvlaran/chp/rng"
)

// MeasureResult is the immutable outcome of a computational-basis
// measurement: the value observed, and whether the current stabilizer group
// forced that value (Determined) or a genuine random bit was consumed.
type MeasureResult struct {
	Value      bool
	Determined bool
}

// DefaultBias is the fair-coin probability used by callers that don't need
// to bias the random branch (the core's bias=0.5 default).
const DefaultBias = 0.5

// Equal compares two results field-by-field.
func (r MeasureResult) Equal(other MeasureResult) bool {
	return r.Value == other.Value && r.Determined == other.Determined
}

// Bool reports the measurement's outcome value, for callers that only care
// about the value and not whether it was forced.
func (r MeasureResult) Bool() bool { return r.Value }

func (r MeasureResult) String() string {
	kind := "random"
	if r.Determined {
		kind = "determined"
	}
	return fmt.Sprintf("%t (%s)", r.Value, kind)
}

// Measure performs a computational-basis (Z-basis) measurement of qubit q.
// bias is the probability that a random outcome is true; src supplies the
// bit consumed when the outcome is not already determined by the current
// stabilizer group.
//
// Dispatch: the random branch is taken iff some stabilizer row (the
// smallest such row index, for reproducible tie-breaking) anticommutes with
// Z_q; otherwise the branch is determined.
func (t *Tableau) Measure(src rng.Source, q int, bias float64) (MeasureResult, error) {
	if err := t.validateQubit(q); err != nil {
		return MeasureResult{}, err
	}
	if bias < 0 || bias > 1 {
		return MeasureResult{}, ErrInvalidBias
	}

	n := t.n
	p := -1
	for row := n; row < 2*n; row++ {
		if bitAt(t.x[row], q) {
			p = row
			break
		}
	}
	if p >= 0 {
		return t.measureRandom(src, q, p, bias)
	}
	return t.measureDetermined(q), nil
}

// measureRandom implements the random measurement branch: the chosen
// anticommuting stabilizer p is copied into its paired destabilizer row
// p-n, a fresh ±Z_a stabilizer with a freshly drawn sign replaces row p, and
// every other row that anticommutes with Z_a is multiplied by the old
// stabilizer (now held in row p-n) so that it commutes with Z_a.
func (t *Tableau) measureRandom(src rng.Source, a, p int, bias float64) (MeasureResult, error) {
	n := t.n

	t.copyRow(p-n, p)
	t.zeroRow(p)
	setBit(t.z[p], a, true)

	b, err := src.Bit(bias)
	if err != nil {
		return MeasureResult{}, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	t.sign[p] = b

	for i := 0; i < 2*n; i++ {
		// Row p-n holds the old stabilizer itself and is skipped. Row p is
		// skipped as well, although after the reset above it carries no X
		// bits and would never match (see DESIGN.md).
		if i != p-n && i != p && bitAt(t.x[i], a) {
			t.rowMult(i, p-n)
		}
	}
	return MeasureResult{Value: t.sign[p], Determined: false}, nil
}

// measureDetermined implements the determined measurement branch: every
// destabilizer that anticommutes with Z_a is folded into the scratch row,
// whose resulting sign is the forced measurement outcome.
func (t *Tableau) measureDetermined(a int) MeasureResult {
	n := t.n
	scratch := 2 * n

	t.zeroRow(scratch)
	for i := 0; i < n; i++ {
		if bitAt(t.x[i], a) {
			t.rowMult(scratch, i+n)
		}
	}
	return MeasureResult{Value: t.sign[scratch], Determined: true}
}
