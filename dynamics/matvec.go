package dynamics

import (
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
)

// matVec is a thin wrapper around matrix.MatVec for the *ffnet.Mat alias,
// kept local so step.go does not need to know matrix is the backing
// package for ffnet.Mat.
func matVec(m *ffnet.Mat, x []float64) ([]float64, error) {
	return matrix.MatVec(m, x)
}
