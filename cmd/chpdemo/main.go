// Command chpdemo runs the six worked stabilizer-circuit scenarios and
// prints each circuit's tableau and measurement outcomes.
//
// Scenario 1: measuring a fresh qubit is determined false.
// Scenario 2: H;S;S;H turns |0⟩ into the |1⟩ eigenstate of Z.
// Scenario 3: H;CNOT builds an EPR pair; the two measurements agree.
// Scenario 4: an eight-gate circuit on three qubits walks through both
// the random and the determined measurement branch.
// Scenario 5: the 9-qubit low-depth S-state distillation routine.
// Scenario 6: the 5-qubit low-space distillation's fault-free run.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/chp/distill"
	"github.com/katalvlaran/chp/rng"
	"github.com/katalvlaran/chp/session"
)

func main() {
	scenarioIdentity()
	scenarioBitFlip()
	scenarioEPRPair()
	scenarioKickback()
	scenarioSState9()
	scenarioSState5()
}

func scenarioIdentity() {
	s, err := session.New(1)
	if err != nil {
		log.Fatalf("scenario 1: %v", err)
	}
	v, err := s.Measure(0)
	if err != nil {
		log.Fatalf("scenario 1: %v", err)
	}
	fmt.Printf("scenario 1 (identity): %s\n", v)
}

func scenarioBitFlip() {
	s, err := session.New(1)
	if err != nil {
		log.Fatalf("scenario 2: %v", err)
	}
	for _, op := range []func(int) error{s.Hadamard, s.Phase, s.Phase, s.Hadamard} {
		if err := op(0); err != nil {
			log.Fatalf("scenario 2: %v", err)
		}
	}
	v, err := s.Measure(0)
	if err != nil {
		log.Fatalf("scenario 2: %v", err)
	}
	fmt.Printf("scenario 2 (bit flip): %s\n", v)
}

func scenarioEPRPair() {
	s, err := session.New(2)
	if err != nil {
		log.Fatalf("scenario 3: %v", err)
	}
	if err := s.Hadamard(0); err != nil {
		log.Fatalf("scenario 3: %v", err)
	}
	if err := s.CNOT(0, 1); err != nil {
		log.Fatalf("scenario 3: %v", err)
	}
	v1, err := s.Measure(0)
	if err != nil {
		log.Fatalf("scenario 3: %v", err)
	}
	v2, err := s.Measure(1)
	if err != nil {
		log.Fatalf("scenario 3: %v", err)
	}
	fmt.Printf("scenario 3 (EPR pair): qubit 0 = %s, qubit 1 = %s\n", v1, v2)
}

func scenarioKickback() {
	s, err := session.New(3)
	if err != nil {
		log.Fatalf("scenario 4: %v", err)
	}
	steps := []struct {
		op   func() error
		name string
	}{
		{func() error { return s.Hadamard(2) }, "H(2)"},
		{func() error { return s.CNOT(2, 0) }, "CNOT(2,0)"},
		{func() error { return s.CNOT(2, 1) }, "CNOT(2,1)"},
		{func() error { return s.Phase(0) }, "S(0)"},
		{func() error { return s.Phase(1) }, "S(1)"},
		{func() error { return s.Hadamard(0) }, "H(0)"},
		{func() error { return s.Hadamard(1) }, "H(1)"},
		{func() error { return s.Hadamard(2) }, "H(2)"},
	}
	for _, step := range steps {
		if err := step.op(); err != nil {
			log.Fatalf("scenario 4 (%s): %v", step.name, err)
		}
	}
	fmt.Printf("scenario 4 (kickback vs stabilizer) tableau:\n%s\n", s)
	for q := 0; q < 3; q++ {
		v, err := s.Measure(q)
		if err != nil {
			log.Fatalf("scenario 4: %v", err)
		}
		fmt.Printf("  qubit %d: %s\n", q, v)
	}
}

func scenarioSState9() {
	src := rng.NewMathRand(1)
	result, parities, err := distill.SState9(src)
	if err != nil {
		log.Fatalf("scenario 5: %v", err)
	}
	fmt.Printf("scenario 5 (S-state, low-depth): result=%s parities=%v\n", result, parities)
}

func scenarioSState5() {
	src := rng.NewMathRand(1)
	ok, err := distill.SState5(src)
	if err != nil {
		log.Fatalf("scenario 6: %v", err)
	}
	fmt.Printf("scenario 6 (S-state, low-space, fault-free): ok=%t\n", ok)
}
