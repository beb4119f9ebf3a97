package tableau

// validateQubit checks q against [0, n).
func (t *Tableau) validateQubit(q int) error {
	if q < 0 || q >= t.n {
		return ErrQubitOutOfRange
	}
	return nil
}

// CNOT applies a controlled-NOT gate with the given control and target
// qubits to every row, including the scratch row (its bits are always zero
// outside measurement, so the update there is a harmless no-op; iterating
// uniformly avoids a branch per row).
//
// The sign update is computed from a snapshot of the pre-update bits, since
// the column XORs below would otherwise change the very bits it depends on.
//
// Complexity: O(n) rows, O(1) work per row.
func (t *Tableau) CNOT(control, target int) error {
	if err := t.validateQubit(control); err != nil {
		return err
	}
	if err := t.validateQubit(target); err != nil {
		return err
	}
	if control == target {
		return ErrAliasedQubits
	}

	for i, rows := 0, t.rows(); i < rows; i++ {
		xc := bitAt(t.x[i], control)
		zt := bitAt(t.z[i], target)
		xt := bitAt(t.x[i], target)
		zc := bitAt(t.z[i], control)

		if xc && zt && xt == zc {
			t.sign[i] = !t.sign[i]
		}
		setBit(t.x[i], target, xt != xc)
		setBit(t.z[i], control, zc != zt)
	}
	return nil
}

// Hadamard applies an H gate to qubit q across every row: the sign flips
// wherever the qubit currently carries a Y (x=1,z=1), then the X and Z bits
// of that qubit are swapped.
//
// Complexity: O(n) rows, O(1) work per row.
func (t *Tableau) Hadamard(q int) error {
	if err := t.validateQubit(q); err != nil {
		return err
	}
	for i, rows := 0, t.rows(); i < rows; i++ {
		x := bitAt(t.x[i], q)
		z := bitAt(t.z[i], q)
		if x && z {
			t.sign[i] = !t.sign[i]
		}
		setBit(t.x[i], q, z)
		setBit(t.z[i], q, x)
	}
	return nil
}

// Phase applies an S gate to qubit q across every row: the sign flips
// wherever the qubit carries a Y, then the Z bit absorbs the X bit.
//
// Complexity: O(n) rows, O(1) work per row.
func (t *Tableau) Phase(q int) error {
	if err := t.validateQubit(q); err != nil {
		return err
	}
	for i, rows := 0, t.rows(); i < rows; i++ {
		x := bitAt(t.x[i], q)
		z := bitAt(t.z[i], q)
		if x && z {
			t.sign[i] = !t.sign[i]
		}
		setBit(t.z[i], q, z != x)
	}
	return nil
}
