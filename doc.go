// Package chp is a reference implementation of the Aaronson-Gottesman CHP
// algorithm for efficient classical simulation of stabilizer quantum
// circuits.
//
// 🧮 What is chp?
//
//	A small, dependency-light library that keeps a symbolic stabilizer
//	tableau for an n-qubit state and evolves it under the Clifford group:
//
//	  • Core primitives: Hadamard, Phase (S), CNOT, and Z-basis measurement
//	  • Derived gates: X, Y, Z, the square roots of X and Z, basis-change
//	    Hadamards, CZ, and measure-and-reset variants
//	  • A magic-state distillation routine built entirely from the above
//
// ✨ Why chp?
//
//   - Polynomial, not exponential — an n-qubit stabilizer state is tracked
//     with O(n²) bits instead of 2ⁿ complex amplitudes.
//   - Deterministic — every randomized measurement branch is driven by an
//     injected, seedable bit source; identical seeds and operation
//     sequences reproduce identical tableaus.
//   - Pure Go — no cgo, no BLAS, no hidden dependencies in the core.
//
// Everything lives under focused subpackages:
//
//	pauli/    — the single-qubit Pauli-product phase function
//	tableau/  — the bit-matrix, the three Clifford primitives, measurement
//	rng/      — pluggable, seedable random-bit sources
//	gates/    — the derived convenience gate layer
//	distill/  — S-state (magic-state) distillation over the core
//	session/  — a logging wrapper around a tableau for ambient observability
//
//	go get github.com/katalvlaran/chp
package chp
