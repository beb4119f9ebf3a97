package distill

import "errors"

var (
	// ErrNotDetermined is returned when a measurement's determinacy differs
	// from what the distillation circuit's algebra guarantees: an ancilla
	// measurement that should be random comes back determined, or the final
	// output measurement that should be determined comes back random.
	ErrNotDetermined = errors.New("distill: expected measurement was not determined")

	// ErrParityCheckFailed is returned when a Steane-code stabilizer parity
	// check disagrees with the qubit measurements it corresponds to.
	ErrParityCheckFailed = errors.New("distill: stabilizer parity check failed")
)
