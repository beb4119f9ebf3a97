package gates

import "github.com/katalvlaran/chp/tableau"

// X applies a Pauli X to qubit a.
func X(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Hadamard(a) },
	)
}

// Y applies a Pauli Y to qubit a.
func Y(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Hadamard(a) },
	)
}

// Z applies a Pauli Z to qubit a.
func Z(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
	)
}

// SqrtX is a +90 degree rotation around the X axis.
func SqrtX(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Hadamard(a) },
	)
}

// SqrtXDag is a -90 degree rotation around the X axis.
func SqrtXDag(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Hadamard(a) },
	)
}

// SqrtZ is a +90 degree rotation around the Z axis; identical to Phase, kept
// as a distinct name so callers reading a circuit don't have to remember
// that Phase and SqrtZ are the same gate.
func SqrtZ(t *tableau.Tableau, a int) error {
	return t.Phase(a)
}

// SqrtZDag is a -90 degree rotation around the Z axis.
func SqrtZDag(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
	)
}

// HXZ is a 180 degree rotation around the X+Z axis; identical to Hadamard.
func HXZ(t *tableau.Tableau, a int) error {
	return t.Hadamard(a)
}

// HYZ is a 180 degree rotation around the Y+Z axis.
func HYZ(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
	)
}

// HXY is a 180 degree rotation around the X+Y axis.
func HXY(t *tableau.Tableau, a int) error {
	return sequence(
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Phase(a) },
		func() error { return t.Hadamard(a) },
		func() error { return t.Phase(a) },
	)
}

// XNOT applies an X gate to b controlled by an X-axis control on a.
func XNOT(t *tableau.Tableau, a, b int) error {
	return sequence(
		func() error { return t.Hadamard(a) },
		func() error { return t.CNOT(a, b) },
		func() error { return t.Hadamard(a) },
	)
}

// CZ applies a Z gate to b controlled by a Z-axis control on a.
func CZ(t *tableau.Tableau, a, b int) error {
	return sequence(
		func() error { return t.Hadamard(b) },
		func() error { return t.CNOT(a, b) },
		func() error { return t.Hadamard(b) },
	)
}

func sequence(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
