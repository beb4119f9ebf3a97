package session

import (
	"github.com/katalvlaran/chp/gates"
	"github.com/katalvlaran/chp/tableau"
)

// Session drives a *tableau.Tableau under a fixed Config: every gate call
// and measurement is logged, and Measure draws from the configured source
// and bias without the caller having to thread them through every call.
type Session struct {
	tb  *tableau.Tableau
	cfg Config
}

// New allocates an n-qubit Session in the all-|0⟩ state.
func New(n int, opts ...Option) (*Session, error) {
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	tb, err := tableau.New(n)
	if err != nil {
		return nil, err
	}
	return &Session{tb: tb, cfg: cfg}, nil
}

// Tableau exposes the underlying tableau for callers that need direct
// access (the pretty-printer, bespoke circuits not covered by Session's
// methods).
func (s *Session) Tableau() *tableau.Tableau { return s.tb }

func (s *Session) logGate(op string, qubits ...int) {
	if s.cfg.Logger == nil {
		return
	}
	s.cfg.Logger.Printf("gate op=%s qubits=%v", op, qubits)
}

func (s *Session) logMeasure(op string, q int, r tableau.MeasureResult) {
	if s.cfg.Logger == nil {
		return
	}
	s.cfg.Logger.Printf("measure op=%s qubit=%d value=%t determined=%t", op, q, r.Value, r.Determined)
}

// CNOT applies a controlled-NOT with the given control and target.
func (s *Session) CNOT(control, target int) error {
	if err := s.tb.CNOT(control, target); err != nil {
		return err
	}
	s.logGate("cnot", control, target)
	return nil
}

// Hadamard applies a Hadamard to qubit q.
func (s *Session) Hadamard(q int) error {
	if err := s.tb.Hadamard(q); err != nil {
		return err
	}
	s.logGate("hadamard", q)
	return nil
}

// Phase applies the phase (S) gate to qubit q.
func (s *Session) Phase(q int) error {
	if err := s.tb.Phase(q); err != nil {
		return err
	}
	s.logGate("phase", q)
	return nil
}

// Measure performs a computational-basis measurement of qubit q using the
// Session's configured source and bias.
func (s *Session) Measure(q int) (tableau.MeasureResult, error) {
	r, err := s.tb.Measure(s.cfg.Source, q, s.cfg.Bias)
	if err != nil {
		return tableau.MeasureResult{}, err
	}
	s.logMeasure("measure_z", q, r)
	return r, nil
}

// X applies a Pauli X to qubit q.
func (s *Session) X(q int) error {
	if err := gates.X(s.tb, q); err != nil {
		return err
	}
	s.logGate("x", q)
	return nil
}

// Y applies a Pauli Y to qubit q.
func (s *Session) Y(q int) error {
	if err := gates.Y(s.tb, q); err != nil {
		return err
	}
	s.logGate("y", q)
	return nil
}

// Z applies a Pauli Z to qubit q.
func (s *Session) Z(q int) error {
	if err := gates.Z(s.tb, q); err != nil {
		return err
	}
	s.logGate("z", q)
	return nil
}

// MeasureX measures qubit q in the X basis.
func (s *Session) MeasureX(q int) (tableau.MeasureResult, error) {
	r, err := gates.MeasureX(s.tb, s.cfg.Source, q, s.cfg.Bias)
	if err != nil {
		return tableau.MeasureResult{}, err
	}
	s.logMeasure("measure_x", q, r)
	return r, nil
}

// MeasureY measures qubit q in the Y basis.
func (s *Session) MeasureY(q int) (tableau.MeasureResult, error) {
	r, err := gates.MeasureY(s.tb, s.cfg.Source, q, s.cfg.Bias)
	if err != nil {
		return tableau.MeasureResult{}, err
	}
	s.logMeasure("measure_y", q, r)
	return r, nil
}

// XNOT applies an X gate to target controlled by an X-axis control.
func (s *Session) XNOT(control, target int) error {
	if err := gates.XNOT(s.tb, control, target); err != nil {
		return err
	}
	s.logGate("xnot", control, target)
	return nil
}

// CZ applies a controlled-Z between a and b.
func (s *Session) CZ(a, b int) error {
	if err := gates.CZ(s.tb, a, b); err != nil {
		return err
	}
	s.logGate("cz", a, b)
	return nil
}

// String renders the underlying tableau's current state.
func (s *Session) String() string { return s.tb.String() }
