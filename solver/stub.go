package solver

import (
	"fmt"

	"github.com/lmarchetti/reachtube/ffnet"
)

// Stub is a deterministic fake Solver for tests: it always returns the
// configured Status, Solution, and Objective, ignoring its inputs.
// Configuring Status to StatusSolverError lets tests exercise the
// analyzer's failure path without a concrete convex solver.
type Stub struct {
	Status     Status
	Solution   []float64
	Objective  float64
	FailureMsg string
}

var _ Solver = (*Stub)(nil)

// Solve ignores every argument and returns the Stub's configured result.
// When Status is StatusSolverError, Solve also returns a non-nil error
// wrapping ErrSolverFailed.
func (s *Stub) Solve(Q *ffnet.Mat, Aeq *ffnet.Mat, beq []float64, Aineq *ffnet.Mat, bineq []float64, c []float64, sense Sense) (Status, []float64, float64, error) {
	if s.Status == StatusSolverError {
		msg := s.FailureMsg
		if msg == "" {
			msg = "stub solver configured to fail"
		}
		return s.Status, nil, 0, fmt.Errorf("%s: %w", msg, ErrSolverFailed)
	}
	return s.Status, s.Solution, s.Objective, nil
}
