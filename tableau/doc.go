// Package tableau implements the Aaronson-Gottesman stabilizer tableau: a
// (2n+1)×(2n+1) bit-matrix tracking an n-qubit stabilizer state through the
// Clifford group (CNOT, Hadamard, Phase) and computational-basis
// measurement.
//
// Layout:
//
//	X-block       columns [0, n)   — one bit per (row, qubit)
//	Z-block       columns [n, 2n)  — one bit per (row, qubit)
//	sign column   column 2n        — one bit per row
//
//	destabilizer rows [0, n)
//	stabilizer   rows [n, 2n)
//	scratch row  2n                — used only inside a determined measurement
//
// X and Z are stored packed, one machine word per 64 qubits per row, so
// row-multiplication's whole-row XOR (the hottest path in measurement) runs
// at native word width rather than one bit at a time.
package tableau
