package matrix_test

import (
	"testing"

	"github.com/lmarchetti/reachtube/matrix"
	"github.com/stretchr/testify/require"
)

func TestInverseIdentity(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := inv.At(i, j)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}
}

func TestInverseGeneral(t *testing.T) {
	m := dense(t, 2, 2, []float64{4, 7, 2, 6})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	prod, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := prod.At(i, j)
			if i == j {
				require.InDelta(t, 1.0, v, 1e-9)
			} else {
				require.InDelta(t, 0.0, v, 1e-9)
			}
		}
	}
}

func TestInverseRejectsNonSquare(t *testing.T) {
	m := dense(t, 2, 3, make([]float64, 6))

	_, err := matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrMatrixDimensionMismatch)
}

func TestInverseRejectsSingular(t *testing.T) {
	m := dense(t, 2, 2, []float64{1, 2, 2, 4})

	_, err := matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrSingular)
}
