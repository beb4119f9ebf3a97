package rng

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// ShakeSource is a Source backed by a SHAKE256 extendable-output function,
// for callers who want a cryptographically diffused, seed-reproducible
// bitstream instead of math/rand's PRNG (e.g. when seeding from external
// entropy that should not leak structure into the simulated measurement
// statistics).
type ShakeSource struct {
	xof sha3.ShakeHash
}

// NewShakeSource absorbs seed into a fresh SHAKE256 state; squeezing from
// it is deterministic for a given seed, satisfying the same
// seed-reproducibility contract as MathRand.
func NewShakeSource(seed []byte) *ShakeSource {
	xof := sha3.NewShake256()
	_, _ = xof.Write(seed)
	return &ShakeSource{xof: xof}
}

// Bit squeezes 8 bytes from the XOF, converts them to a uniform real in
// [0,1) using the same 53-significant-bit construction math/rand uses, and
// returns true iff that real is < bias.
func (s *ShakeSource) Bit(bias float64) (bool, error) {
	var buf [8]byte
	if _, err := s.xof.Read(buf[:]); err != nil {
		return false, err
	}
	u := binary.LittleEndian.Uint64(buf[:])
	f := float64(u>>11) / (1 << 53)
	return f < bias, nil
}
