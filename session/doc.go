// Package session wraps a *tableau.Tableau with the configuration and
// logging a caller driving real circuits wants but the hot bit-matrix core
// has no business carrying: a default measurement bias, an injected
// rng.Source, and a line of log output for every gate and measurement.
package session
