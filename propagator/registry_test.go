package propagator_test

import (
	"testing"

	"github.com/lmarchetti/reachtube/propagator"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateNamePanics(t *testing.T) {
	require.Panics(t, func() {
		propagator.Register("IBP", func(propagator.Option) propagator.Propagator { return nil })
	})
}

func TestWithEpsilonRejectsNegative(t *testing.T) {
	require.Panics(t, func() {
		propagator.WithEpsilon(-1)
	})
}

func TestWithSolverRejectsNil(t *testing.T) {
	require.Panics(t, func() {
		propagator.WithSolver(nil)
	})
}

func TestWithDiagnosticSinkRejectsNil(t *testing.T) {
	require.Panics(t, func() {
		propagator.WithDiagnosticSink(nil)
	})
}
