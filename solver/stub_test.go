package solver_test

import (
	"testing"

	"github.com/lmarchetti/reachtube/solver"
	"github.com/stretchr/testify/require"
)

func TestStubReturnsConfiguredOptimal(t *testing.T) {
	s := &solver.Stub{Status: solver.StatusOptimal, Solution: []float64{1, 2}, Objective: 3.5}

	status, sol, obj, err := s.Solve(nil, nil, nil, nil, nil, nil, solver.Minimize)
	require.NoError(t, err)
	require.Equal(t, solver.StatusOptimal, status)
	require.Equal(t, []float64{1, 2}, sol)
	require.Equal(t, 3.5, obj)
}

func TestStubReturnsSolverError(t *testing.T) {
	s := &solver.Stub{Status: solver.StatusSolverError, FailureMsg: "diverged"}

	status, sol, _, err := s.Solve(nil, nil, nil, nil, nil, nil, solver.Maximize)
	require.Error(t, err)
	require.ErrorIs(t, err, solver.ErrSolverFailed)
	require.Equal(t, solver.StatusSolverError, status)
	require.Nil(t, sol)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "optimal", solver.StatusOptimal.String())
	require.Equal(t, "infeasible", solver.StatusInfeasible.String())
	require.Equal(t, "solver_error", solver.StatusSolverError.String())
}
