// Package rng provides the pluggable random-bit source consumed by a
// measurement's random branch. A Source must be reproducible: identical
// seeds and call sequences must produce identical bitstreams, so that two
// runs with the same seed and the same operations reproduce the same
// tableau.
//
// MathRand is the default, math/rand-backed source, built the same way the
// retrieval pack's own deterministic-RNG helper (tsp/rng.go) derives
// reproducible streams from a seed. ShakeSource is a SHAKE256-XOF-backed
// alternative for callers who want a cryptographically diffused bitstream
// instead of a classic PRNG.
package rng
