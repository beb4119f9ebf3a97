package tableau_test

import (
	"fmt"

	"github.com/katalvlaran/chp/rng"
	"github.com/katalvlaran/chp/tableau"
)

// ExampleTableau_String shows the destabilizer/stabilizer dump of a fresh
// 2-qubit tableau: every destabilizer is a bare X on its own qubit, every
// stabilizer a bare Z.
func ExampleTableau_String() {
	tb, err := tableau.New(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tb.String())
	// Output:
	// +X.
	// +.X
	// ---
	// +Z.
	// +.Z
}

// ExampleTableau_Measure builds a GHZ-like three-qubit state and measures
// all three qubits in order with a fixed bias of 0, walking through the
// kickback-vs-stabilizer case: the first two qubits come up random, the
// third is forced.
func ExampleTableau_Measure() {
	tb, err := tableau.New(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tb.Hadamard(2)
	tb.CNOT(2, 0)
	tb.CNOT(2, 1)
	tb.Phase(0)
	tb.Phase(1)
	tb.Hadamard(0)
	tb.Hadamard(1)
	tb.Hadamard(2)

	fmt.Println(tb.String())

	src := rng.NewMathRand(1)
	for q := 0; q < 3; q++ {
		r, err := tb.Measure(src, q, 0)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("qubit %d: %s\n", q, r)
	}
	// Output:
	// -Y..
	// -.Y.
	// +..X
	// ----
	// +X.X
	// +.XX
	// +YYZ
	// qubit 0: false (random)
	// qubit 1: false (random)
	// qubit 2: true (determined)
}
