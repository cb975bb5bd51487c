package vecbox

import (
	"math/rand"

	"github.com/lmarchetti/reachtube/ffnet"
)

// Constraint represents a bounded region of R^n. Box and Polytope are the
// two implementations; every operation validates its dimension against
// the constraint's own Dim() and returns a wrapped ErrDimensionMismatch
// on mismatch rather than panicking.
type Constraint interface {
	// Dim returns the ambient dimension n of the constraint.
	Dim() int

	// Contains reports whether p lies inside the constraint.
	// Returns ErrDimensionMismatch if len(p) != Dim().
	Contains(p []float64) (bool, error)

	// Sample draws n points from (or near) the constraint, using rng for
	// all randomness. Returns ErrInvalidSampleCount if n <= 0.
	Sample(n int, rng *rand.Rand) ([][]float64, error)

	// AffineImage returns the representation of {M*x + d : x in this
	// constraint}. Returns ErrDimensionMismatch if m.Cols() != Dim() or
	// len(d) != m.Rows().
	AffineImage(m *ffnet.Mat, d []float64) (Constraint, error)

	// Volume returns a scalar measure of the constraint's extent, used
	// for diagnostics and the analyzer's avg_error computation.
	Volume() (float64, error)
}
