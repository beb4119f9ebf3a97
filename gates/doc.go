// Package gates derives the common single- and two-qubit Clifford gates,
// plus basis measurements, from the three Clifford primitives tableau
// exposes (CNOT, Hadamard, Phase) and its Measure. Every gate here is a short fixed
// sequence of those primitives — there is no additional tableau state or
// bookkeeping, so each function is a thin, stateless wrapper around a
// *tableau.Tableau.
package gates
