package propagator_test

import (
	"context"
	"testing"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
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

func twoLayerReLUNet(t *testing.T) *ffnet.Network {
	t.Helper()
	l0 := ffnet.Layer{
		W:   mustMat(t, 2, 2, []float64{1, 0, 0, 1}),
		B:   []float64{-1, -1},
		Act: ffnet.ActivationReLU,
	}
	l1 := ffnet.Layer{
		W:   mustMat(t, 1, 2, []float64{1, 1}),
		B:   []float64{0},
		Act: ffnet.ActivationLinear,
	}
	net, err := ffnet.NewNetwork([]ffnet.Layer{l0, l1})
	require.NoError(t, err)
	return net
}

func TestIBPBoundContainsExactEvaluations(t *testing.T) {
	net := twoLayerReLUNet(t)
	input, err := vecbox.NewBox([]float64{0, 0}, []float64{2, 2})
	require.NoError(t, err)

	prop, err := propagator.New("IBP")
	require.NoError(t, err)
	require.Equal(t, "IBP", prop.Name())

	out, err := prop.Bound(context.Background(), input, net)
	require.NoError(t, err)

	for _, corner := range [][]float64{{0, 0}, {2, 0}, {0, 2}, {2, 2}, {1, 1}} {
		y, err := net.Eval(corner)
		require.NoError(t, err)
		require.True(t, y[0] >= out.Lo[0]-1e-9 && y[0] <= out.Hi[0]+1e-9)
	}
}

func TestIBPRejectsDimMismatch(t *testing.T) {
	net := twoLayerReLUNet(t)
	input, err := vecbox.NewBox([]float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(t, err)

	prop, err := propagator.New("IBP")
	require.NoError(t, err)

	_, err = prop.Bound(context.Background(), input, net)
	require.ErrorIs(t, err, propagator.ErrInputDimMismatch)
}

func TestNewRejectsUnknownPropagator(t *testing.T) {
	_, err := propagator.New("nonexistent")
	require.ErrorIs(t, err, propagator.ErrUnknownPropagator)
}
