// Package distill implements the two S-state magic-state distillation
// routines built from stabilizer primitives: a 9-qubit low-depth circuit
// that distills one S state with three Steane-code parity checks, and a
// 5-qubit low-space circuit used both to distill an S state and, with Z
// faults injected on every combination of a caller-chosen number of its
// seven ancilla phasors, to classify how those faults are caught or missed.
package distill
