package ffnet_test

import (
	"testing"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
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

func TestNewNetworkRejectsEmpty(t *testing.T) {
	_, err := ffnet.NewNetwork(nil)
	require.ErrorIs(t, err, ffnet.ErrEmptyNetwork)
}

func TestNewNetworkRejectsShapeMismatch(t *testing.T) {
	l0 := ffnet.Layer{W: mustMat(t, 2, 2, []float64{1, 0, 0, 1}), B: []float64{0, 0}, Act: ffnet.ActivationReLU}
	l1 := ffnet.Layer{W: mustMat(t, 1, 3, []float64{1, 1, 1}), B: []float64{0}, Act: ffnet.ActivationLinear}

	_, err := ffnet.NewNetwork([]ffnet.Layer{l0, l1})
	require.ErrorIs(t, err, ffnet.ErrLayerShapeMismatch)
}

func TestNewNetworkRejectsBadBiasLength(t *testing.T) {
	l0 := ffnet.Layer{W: mustMat(t, 2, 2, []float64{1, 0, 0, 1}), B: []float64{0}, Act: ffnet.ActivationReLU}

	_, err := ffnet.NewNetwork([]ffnet.Layer{l0})
	require.ErrorIs(t, err, ffnet.ErrLayerShapeMismatch)
}

func TestEvalReLUNetwork(t *testing.T) {
	// Two-layer net: identity weight then subtract 1, ReLU, then sum, linear.
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
	require.Equal(t, 2, net.NumLayers())
	require.Equal(t, 2, net.InputSize())
	require.Equal(t, 1, net.OutputSize())

	out, err := net.Eval([]float64{2, 0})
	require.NoError(t, err)
	// layer0: [2-1, 0-1] = [1, -1] -> relu -> [1, 0]
	// layer1: 1*1 + 1*0 = 1
	require.Equal(t, []float64{1}, out)
}

func TestEvalRejectsWrongInputLength(t *testing.T) {
	l0 := ffnet.Layer{W: mustMat(t, 1, 2, []float64{1, 1}), B: []float64{0}, Act: ffnet.ActivationLinear}
	net, err := ffnet.NewNetwork([]ffnet.Layer{l0})
	require.NoError(t, err)

	_, err = net.Eval([]float64{1, 2, 3})
	require.ErrorIs(t, err, ffnet.ErrInputShapeMismatch)
}

func TestLayerIndexOutOfRange(t *testing.T) {
	l0 := ffnet.Layer{W: mustMat(t, 1, 1, []float64{1}), B: []float64{0}, Act: ffnet.ActivationLinear}
	net, err := ffnet.NewNetwork([]ffnet.Layer{l0})
	require.NoError(t, err)

	_, err = net.Layer(5)
	require.ErrorIs(t, err, ffnet.ErrLayerIndexOutOfRange)

	l, err := net.Layer(0)
	require.NoError(t, err)
	require.Equal(t, ffnet.ActivationLinear, l.Act)
}
