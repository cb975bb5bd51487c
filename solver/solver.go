package solver

import (
	"errors"
	"fmt"

	"github.com/lmarchetti/reachtube/ffnet"
)

// ErrSolverFailed is the sentinel family wrapped by every fatal error a
// Solver implementation returns from Solve.
var ErrSolverFailed = errors.New("solver: solve failed")

// Status reports the outcome of a Solve call.
type Status int

const (
	// StatusOptimal indicates Solve found a global optimum.
	StatusOptimal Status = iota
	// StatusInfeasible indicates the problem has no feasible point.
	StatusInfeasible
	// StatusSolverError indicates the solver itself failed (numerical
	// breakdown, iteration limit, external process error); never a
	// legitimate infeasibility signal.
	StatusSolverError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusSolverError:
		return "solver_error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Sense selects whether Solve minimizes or maximizes the objective.
type Sense int

const (
	// Minimize directs Solve to minimize c^T x.
	Minimize Sense = iota
	// Maximize directs Solve to maximize c^T x.
	Maximize
)

// Solver solves a quadratically-constrained program of the form
//
//	optimize   c^T x                 (subject to sense)
//	subject to Aeq*x = beq
//	           Aineq*x <= bineq
//	           x^T Q x <= 0
//
// Q, Aeq, and Aineq may be nil when the corresponding constraint set is
// empty. Implementations external to this module are expected to bridge
// to a concrete convex solver; this package provides only the contract
// and a deterministic Stub for tests.
type Solver interface {
	Solve(Q *ffnet.Mat, Aeq *ffnet.Mat, beq []float64, Aineq *ffnet.Mat, bineq []float64, c []float64, sense Sense) (Status, []float64, float64, error)
}
