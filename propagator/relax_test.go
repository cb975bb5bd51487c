package propagator_test

import (
	"context"
	"testing"

	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/vecbox"
	"github.com/stretchr/testify/require"
)

func TestCROWNBoundIsSoundAndNoLooserThanIBP(t *testing.T) {
	net := twoLayerReLUNet(t)
	input, err := vecbox.NewBox([]float64{0, 0}, []float64{2, 2})
	require.NoError(t, err)

	crown, err := propagator.New("CROWN")
	require.NoError(t, err)
	require.Equal(t, "CROWN", crown.Name())

	ibp, err := propagator.New("IBP")
	require.NoError(t, err)

	crownOut, err := crown.Bound(context.Background(), input, net)
	require.NoError(t, err)
	ibpOut, err := ibp.Bound(context.Background(), input, net)
	require.NoError(t, err)

	require.GreaterOrEqual(t, crownOut.Lo[0], ibpOut.Lo[0]-1e-9)
	require.LessOrEqual(t, crownOut.Hi[0], ibpOut.Hi[0]+1e-9)

	for _, corner := range [][]float64{{0, 0}, {2, 0}, {0, 2}, {2, 2}, {0.5, 1.5}} {
		y, err := net.Eval(corner)
		require.NoError(t, err)
		require.True(t, y[0] >= crownOut.Lo[0]-1e-9 && y[0] <= crownOut.Hi[0]+1e-9)
	}
}

func TestFastLinBoundIsSound(t *testing.T) {
	net := twoLayerReLUNet(t)
	input, err := vecbox.NewBox([]float64{0, 0}, []float64{2, 2})
	require.NoError(t, err)

	fastLin, err := propagator.New("FastLin")
	require.NoError(t, err)
	require.Equal(t, "FastLin", fastLin.Name())

	out, err := fastLin.Bound(context.Background(), input, net)
	require.NoError(t, err)

	for _, corner := range [][]float64{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		y, err := net.Eval(corner)
		require.NoError(t, err)
		require.True(t, y[0] >= out.Lo[0]-1e-9 && y[0] <= out.Hi[0]+1e-9)
	}
}

func TestDegenerateNeuronEmitsNumericalWarning(t *testing.T) {
	// A zero-width input box forces every hidden neuron's
	// pre-activation bound to a point (U - L == 0 <= epsilon).
	l0 := ffnet.Layer{W: mustMat(t, 1, 1, []float64{1}), B: []float64{0}, Act: ffnet.ActivationReLU}
	l1 := ffnet.Layer{W: mustMat(t, 1, 1, []float64{1}), B: []float64{0}, Act: ffnet.ActivationLinear}
	net, err := ffnet.NewNetwork([]ffnet.Layer{l0, l1})
	require.NoError(t, err)

	input, err := vecbox.NewBox([]float64{0}, []float64{0})
	require.NoError(t, err)

	sink := &diagnostics.Collecting{}
	crown, err := propagator.New("CROWN", propagator.WithDiagnosticSink(sink))
	require.NoError(t, err)

	out, err := crown.Bound(context.Background(), input, net)
	require.NoError(t, err)
	require.InDelta(t, 0, out.Lo[0], 1e-9)
	require.InDelta(t, 0, out.Hi[0], 1e-9)
	require.NotEmpty(t, sink.Events)
	require.Equal(t, diagnostics.EventNumericalWarning, sink.Events[0].Kind)
}
