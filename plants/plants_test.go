package plants_test

import (
	"testing"

	"github.com/lmarchetti/reachtube/plants"
	"github.com/stretchr/testify/require"
)

func TestNewDoubleIntegratorValidates(t *testing.T) {
	_, err := plants.NewDoubleIntegrator(0, -1, 1)
	require.Error(t, err)

	_, err = plants.NewDoubleIntegrator(0.1, 1, -1)
	require.Error(t, err)

	p, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)

	n, m := p.Dims()
	require.Equal(t, 2, n)
	require.Equal(t, 1, m)
	require.Equal(t, 0.1, p.SampleTime())

	uMin, uMax := p.ActuatorBounds()
	require.Equal(t, []float64{-1}, uMin)
	require.Equal(t, []float64{1}, uMax)
}

func TestDoubleIntegratorMatricesShape(t *testing.T) {
	p, err := plants.NewDoubleIntegrator(0.1, -1, 1)
	require.NoError(t, err)

	A, B, c := p.Matrices()
	require.Equal(t, 2, A.Rows())
	require.Equal(t, 2, A.Cols())
	require.Equal(t, 2, B.Rows())
	require.Equal(t, 1, B.Cols())
	require.Equal(t, []float64{0, 0}, c)
}

func TestNewQuadrotorValidates(t *testing.T) {
	_, err := plants.NewQuadrotor(0.05, 1.0, 9.81, []float64{0}, []float64{10, 1})
	require.Error(t, err)

	q, err := plants.NewQuadrotor(0.05, 1.0, 9.81, []float64{0, -1}, []float64{20, 1})
	require.NoError(t, err)

	n, m := q.Dims()
	require.Equal(t, 6, n)
	require.Equal(t, 2, m)

	A, B, c := q.Matrices()
	require.Equal(t, 6, A.Rows())
	require.Equal(t, 2, B.Cols())
	require.Len(t, c, 6)
}
