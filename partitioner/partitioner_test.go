package partitioner_test

import (
	"context"
	"testing"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
	"github.com/lmarchetti/reachtube/partitioner"
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

func TestNoneProducesSingleCell(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)
	none, err := partitioner.New("None")
	require.NoError(t, err)
	require.Equal(t, "None", none.Name())

	input, err := vecbox.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	out, cells, err := none.BoundStep(context.Background(), input, ibp, net, plant, nil)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	require.NotNil(t, out)
}

func TestUniformGridProducesMoreCellsThanNone(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)
	uniform, err := partitioner.New("Uniform", partitioner.WithNumPartitions([]int{2, 2}))
	require.NoError(t, err)
	require.Equal(t, "Uniform", uniform.Name())

	input, err := vecbox.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	out, cells, err := uniform.BoundStep(context.Background(), input, ibp, net, plant, nil)
	require.NoError(t, err)
	require.Len(t, cells, 4)
	require.NotNil(t, out)
}

func TestUniformRejectsPartitionCountMismatch(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)
	uniform, err := partitioner.New("Uniform", partitioner.WithNumPartitions([]int{2, 2, 2}))
	require.NoError(t, err)

	input, err := vecbox.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	_, _, err = uniform.BoundStep(context.Background(), input, ibp, net, plant, nil)
	require.ErrorIs(t, err, partitioner.ErrPartitionCountMismatch)
}

func TestSimGuidedTerminatesAndProducesCells(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)
	sim, err := partitioner.New("SimGuided",
		partitioner.WithMaxCells(8),
		partitioner.WithTolerance(0.01),
		partitioner.WithSampleCount(16),
		partitioner.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, "SimGuided", sim.Name())

	input, err := vecbox.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	out, cells, err := sim.BoundStep(context.Background(), input, ibp, net, plant, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cells), 1)
	require.LessOrEqual(t, len(cells), 8)
	require.NotNil(t, out)
}

func TestGreedySimGuidedTerminatesAndProducesCells(t *testing.T) {
	plant, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)
	net := linearController(t)
	ibp, err := propagator.New("IBP")
	require.NoError(t, err)
	greedy, err := partitioner.New("GreedySimGuided",
		partitioner.WithMaxCells(8),
		partitioner.WithTolerance(0.01),
		partitioner.WithSampleCount(16),
		partitioner.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, "GreedySimGuided", greedy.Name())

	input, err := vecbox.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)

	out, cells, err := greedy.BoundStep(context.Background(), input, ibp, net, plant, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cells), 1)
	require.LessOrEqual(t, len(cells), 8)
	require.NotNil(t, out)
}

func TestNewRejectsUnknownPartitioner(t *testing.T) {
	_, err := partitioner.New("nonexistent")
	require.ErrorIs(t, err, partitioner.ErrUnknownPartitioner)
}

func TestRegisterDuplicateNamePanics(t *testing.T) {
	require.Panics(t, func() {
		partitioner.Register("None", func(partitioner.Option) partitioner.Partitioner { return nil })
	})
}
