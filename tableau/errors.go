package tableau

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-contract violations. Public operations return
// these rather than panic, so callers can use errors.Is. Invariant
// violations inside row multiplication are a different kind of failure (a
// bug, not a runtime condition) and panic instead; see InvariantError.
var (
	// ErrInvalidSize indicates New was called with n < 1.
	ErrInvalidSize = errors.New("tableau: n must be >= 1")

	// ErrQubitOutOfRange indicates a qubit index outside [0, n).
	ErrQubitOutOfRange = errors.New("tableau: qubit index out of range")

	// ErrAliasedQubits indicates CNOT was called with control == target.
	ErrAliasedQubits = errors.New("tableau: control and target must differ")

	// ErrInvalidBias indicates a measurement bias outside [0, 1].
	ErrInvalidBias = errors.New("tableau: bias must be in [0,1]")

	// ErrRandomSource wraps a failure from the injected random bit source.
	ErrRandomSource = errors.New("tableau: random source failed")
)

// InvariantError reports that row multiplication found two rows that do not
// commute (an odd total phase), which can only happen if the tableau's
// internal state was corrupted by something outside the public API. It is
// never returned; row multiplication panics with it.
type InvariantError struct {
	Row, Other int
	Total      int
	Dump       string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("tableau: row %d and row %d do not commute (phase sum=%d)\n%s",
		e.Row, e.Other, e.Total, e.Dump)
}
