package analyzer_test

import (
	"context"
	"testing"
	"time"

	"github.com/lmarchetti/reachtube/analyzer"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
	"github.com/lmarchetti/reachtube/plants"
	"github.com/lmarchetti/reachtube/reachconfig"
	"github.com/lmarchetti/reachtube/solver"
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

func baseConfig() reachconfig.Configuration {
	return reachconfig.Configuration{
		PlantType:       "DoubleIntegrator",
		ControllerID:    "linear",
		PropagatorType:  reachconfig.PropagatorIBP,
		BoundaryType:    reachconfig.BoundaryBox,
		PartitionerType: reachconfig.PartitionerNone,
		TMax:            3,
		Direction:       reachconfig.DirectionForward,
		Seed:            1,
	}
}

func TestForwardProducesTubeOfLengthTMaxPlusOne(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	s0, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	result, err := analyzer.Forward(context.Background(), cfg, plant, net, s0)
	require.NoError(t, err)
	require.Len(t, result.Tube, cfg.TMax+1)
	require.Len(t, result.CellsPerStep, cfg.TMax)
	require.False(t, result.Truncated)
}

func TestForwardRejectsBackwardConfiguredDirection(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	s0, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Direction = reachconfig.DirectionBackward
	_, err = analyzer.Forward(context.Background(), cfg, plant, net, s0)
	require.ErrorIs(t, err, analyzer.ErrUnsupportedDirection)
}

func TestForwardRejectsInvalidConfiguration(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	s0, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.TMax = 0
	_, err = analyzer.Forward(context.Background(), cfg, plant, net, s0)
	require.ErrorIs(t, err, reachconfig.ErrInvalidValue)
}

func TestForwardTruncatesOnExpiredDeadline(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	s0, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	cfg := baseConfig()
	result, err := analyzer.Forward(ctx, cfg, plant, net, s0)
	require.NoError(t, err)
	require.True(t, result.Truncated)
	require.Len(t, result.Tube, 1)
}

func TestForwardEstimateErrorPopulatesPerStepError(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	s0, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.EstimateError = true
	result, err := analyzer.Forward(context.Background(), cfg, plant, net, s0)
	require.NoError(t, err)
	require.Len(t, result.PerStepError, cfg.TMax)
	require.GreaterOrEqual(t, result.AvgError(), 0.0)
}

func TestForwardSDPWithoutSolverFails(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	s0, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.PropagatorType = reachconfig.PropagatorSDP
	_, err = analyzer.Forward(context.Background(), cfg, plant, net, s0)
	require.ErrorIs(t, err, analyzer.ErrMissingSolver)
}

func TestForwardSDPWithSolverSucceeds(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	s0, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.PropagatorType = reachconfig.PropagatorSDP
	cfg.TMax = 1
	stub := &solver.Stub{Status: solver.StatusOptimal}
	result, err := analyzer.Forward(context.Background(), cfg, plant, net, s0, analyzer.WithSolver(stub))
	require.NoError(t, err)
	require.Len(t, result.Tube, 2)
}

func TestBackwardProducesTubeEndingAtTarget(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	target, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Direction = reachconfig.DirectionBackward
	result, err := analyzer.Backward(context.Background(), cfg, plant, net, target)
	require.NoError(t, err)
	require.Len(t, result.Tube, cfg.TMax+1)

	last := result.Tube[len(result.Tube)-1].(*vecbox.Box)
	require.InDeltaSlice(t, target.Lo, last.Lo, 1e-9)
	require.InDeltaSlice(t, target.Hi, last.Hi, 1e-9)
}

func TestBackwardStepWidensMonotonically(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	target, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Direction = reachconfig.DirectionBackward
	cfg.TMax = 3
	result, err := analyzer.Backward(context.Background(), cfg, plant, net, target)
	require.NoError(t, err)

	for i := 0; i+1 < len(result.Tube); i++ {
		earlier := result.Tube[i].(*vecbox.Box)
		later := result.Tube[i+1].(*vecbox.Box)
		earlierVol, _ := earlier.Volume()
		laterVol, _ := later.Volume()
		require.GreaterOrEqual(t, earlierVol, laterVol-1e-9)
	}
}

func TestBackwardRejectsForwardConfiguredDirection(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	target, err := vecbox.NewBox([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	require.NoError(t, err)

	cfg := baseConfig()
	_, err = analyzer.Backward(context.Background(), cfg, plant, net, target)
	require.ErrorIs(t, err, analyzer.ErrUnsupportedDirection)
}
