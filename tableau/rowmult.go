package tableau

import "github.com/katalvlaran/chp/pauli"

// rowMult updates row i to represent the Pauli product (row k · row i),
// preserving every invariant on row i. Row k is left untouched.
//
// Algorithm:
//  1. Sum the per-qubit Pauli-product phase of row i against row k.
//  2. That sum must be even (the rows must commute); reducing it modulo 4
//     and taking bit 1 gives the sign-column parity contribution.
//  3. XOR row k's sign (and the parity bit) into row i's sign.
//  4. XOR row k's X and Z bits into row i's, qubit by qubit — done here as a
//     whole-word XOR over the packed columns.
//
// Complexity: O(n) for the phase sum, O(n/64) for the XOR.
func (t *Tableau) rowMult(i, k int) {
	total := 0
	for j := 0; j < t.n; j++ {
		total += pauli.Phase(
			bitAt(t.x[i], j), bitAt(t.z[i], j),
			bitAt(t.x[k], j), bitAt(t.z[k], j),
		)
	}

	mod4 := ((total % 4) + 4) % 4
	if mod4 != 0 && mod4 != 2 {
		panic(&InvariantError{Row: i, Other: k, Total: total, Dump: t.String()})
	}
	parity := (mod4 >> 1) & 1

	t.sign[i] = (t.sign[i] != t.sign[k]) != (parity == 1)
	for w := range t.x[i] {
		t.x[i][w] ^= t.x[k][w]
		t.z[i][w] ^= t.z[k][w]
	}
}
