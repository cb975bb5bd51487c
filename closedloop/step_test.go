package closedloop_test

import (
	"context"
	"testing"

	"github.com/lmarchetti/reachtube/closedloop"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
	"github.com/lmarchetti/reachtube/plants"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/vecbox"
	"github.com/stretchr/testify/require"
)

func mustMat(t *testing.T, rows, cols int, vals []float64) *ffnet.Mat {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i*cols+j]))
		}
	}
	return m
}

func linearController(t *testing.T) *ffnet.Network {
	t.Helper()
	l0 := ffnet.Layer{W: mustMat(t, 1, 2, []float64{-1, -1}), B: []float64{0}, Act: ffnet.ActivationLinear}
	net, err := ffnet.NewNetwork([]ffnet.Layer{l0})
	require.NoError(t, err)
	return net
}

func TestStepProducesContainingState(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)

	input, err := vecbox.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	next, err := closedloop.Step(context.Background(), input, ibp, net, plant)
	require.NoError(t, err)

	nextBox, ok := next.(*vecbox.Box)
	require.True(t, ok)
	require.Len(t, nextBox.Lo, 2)
	for i := range nextBox.Lo {
		require.LessOrEqual(t, nextBox.Lo[i], nextBox.Hi[i])
	}
}

func TestStepWideningInputWidensOutput(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)

	narrow, err := vecbox.NewBox([]float64{-0.5, -0.5}, []float64{0.5, 0.5})
	require.NoError(t, err)
	wide, err := vecbox.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	outNarrow, err := closedloop.Step(context.Background(), narrow, ibp, net, plant)
	require.NoError(t, err)
	outWide, err := closedloop.Step(context.Background(), wide, ibp, net, plant)
	require.NoError(t, err)

	n := outNarrow.(*vecbox.Box)
	w := outWide.(*vecbox.Box)
	for i := range n.Lo {
		require.LessOrEqual(t, w.Lo[i], n.Lo[i]+1e-9)
		require.GreaterOrEqual(t, w.Hi[i], n.Hi[i]-1e-9)
	}
}

func TestStepRejectsNonBoxConstraint(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)

	a := mustMat(t, 1, 2, []float64{1, 0})
	poly, err := vecbox.NewPolytope(a, []float64{1})
	require.NoError(t, err)

	_, err = closedloop.Step(context.Background(), poly, ibp, net, plant)
	require.ErrorIs(t, err, closedloop.ErrUnsupportedConstraintType)
}
