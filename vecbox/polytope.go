package vecbox

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
)

// maxRejectionAttempts bounds rejection sampling against a polytope's
// bounding box so a near-empty polytope cannot spin Sample forever.
const maxRejectionAttempts = 10000

// Polytope is a bounded region {x in R^n : A*x <= B} with a non-empty
// interior.
type Polytope struct {
	A *ffnet.Mat
	B []float64
}

var _ Constraint = (*Polytope)(nil)

// NewPolytope validates that A.Rows() == len(B) and returns a *Polytope.
func NewPolytope(a *ffnet.Mat, b []float64) (*Polytope, error) {
	if a.Rows() != len(b) {
		return nil, fmt.Errorf("vecbox: A rows %d != len(B) %d: %w", a.Rows(), len(b), ErrDimensionMismatch)
	}
	return &Polytope{A: a, B: b}, nil
}

// BoxToPolytope expresses b as a Polytope in canonical halfspace form,
// two rows per axis (x_i <= Hi[i], -x_i <= -Lo[i]). It is the
// conversion the Uniform partitioner applies to a propagator's boxed
// output when the configured boundary type is "polytope", so that
// unioning several cells via Hull produces a genuine Polytope instead
// of silently widening back into a box.
func BoxToPolytope(b *Box) (*Polytope, error) {
	dim := b.Dim()
	a, err := matrix.NewDense(2*dim, dim)
	if err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}
	bRows := make([]float64, 2*dim)
	for i := 0; i < dim; i++ {
		if err := a.Set(2*i, i, 1); err != nil {
			return nil, fmt.Errorf("vecbox: %w", err)
		}
		bRows[2*i] = b.Hi[i]
		if err := a.Set(2*i+1, i, -1); err != nil {
			return nil, fmt.Errorf("vecbox: %w", err)
		}
		bRows[2*i+1] = -b.Lo[i]
	}
	return NewPolytope(a, bRows)
}

// Dim returns A.Cols().
func (p *Polytope) Dim() int { return p.A.Cols() }

// Contains reports whether A*x <= B holds elementwise.
func (p *Polytope) Contains(x []float64) (bool, error) {
	if err := validateVec("Polytope.Contains", x, p.Dim()); err != nil {
		return false, err
	}
	row, err := matrix.MatVec(p.A, x)
	if err != nil {
		return false, fmt.Errorf("vecbox: %w", err)
	}
	for i, v := range row {
		if v > p.B[i] {
			return false, nil
		}
	}
	return true, nil
}

// boundingBox computes an axis-aligned box from the constraint rows
// that are axis-aligned (A[i] has a single nonzero entry), taking the
// tightest bound each such row implies on its axis. Rows with more
// than one nonzero entry are skipped, so the box may be looser than the
// polytope's true bounding box, and an axis that no axis-aligned row
// bounds on both sides yields ErrUnboundedPolytope.
//
// It seeds rejection sampling in Sample and Volume and the fallback
// support bound in hull.go; Sample discards points that fail the exact
// Contains check regardless of how loose the box is.
func (p *Polytope) boundingBox() (*Box, error) {
	dim := p.Dim()
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	for i := range lo {
		lo[i] = math.Inf(-1)
		hi[i] = math.Inf(1)
	}

	rows := p.A.Rows()
	for r := 0; r < rows; r++ {
		nzIdx, nzVal, nzCount := -1, 0.0, 0
		for j := 0; j < dim; j++ {
			v, _ := p.A.At(r, j)
			if v != 0 {
				nzIdx, nzVal = j, v
				nzCount++
			}
		}
		if nzCount != 1 {
			continue
		}
		bound := p.B[r] / nzVal
		if nzVal > 0 {
			if bound < hi[nzIdx] {
				hi[nzIdx] = bound
			}
		} else {
			if bound > lo[nzIdx] {
				lo[nzIdx] = bound
			}
		}
	}

	for i := 0; i < dim; i++ {
		if math.IsInf(lo[i], -1) || math.IsInf(hi[i], 1) {
			return nil, ErrUnboundedPolytope
		}
	}

	return &Box{Lo: lo, Hi: hi}, nil
}

// Sample draws n points from the polytope via rejection sampling against
// its bounding box.
func (p *Polytope) Sample(n int, rng *rand.Rand) ([][]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}
	box, err := p.boundingBox()
	if err != nil {
		return nil, err
	}

	out := make([][]float64, 0, n)
	for len(out) < n {
		accepted := false
		for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
			cand, err := box.Sample(1, rng)
			if err != nil {
				return nil, err
			}
			ok, err := p.Contains(cand[0])
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, cand[0])
				accepted = true
				break
			}
		}
		if !accepted {
			return nil, fmt.Errorf("vecbox: rejection sampling exhausted %d attempts: %w", maxRejectionAttempts, ErrUnboundedPolytope)
		}
	}

	return out, nil
}

// AffineImage computes the image of the polytope under y = m*x + d for a
// square, invertible m: substituting x = m^-1*(y-d) into A*x <= B gives
// (A*m^-1)*y <= B + (A*m^-1)*d.
func (p *Polytope) AffineImage(m *ffnet.Mat, d []float64) (Constraint, error) {
	if err := ValidateSameDim(m.Cols(), p.Dim()); err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}
	if err := validateVec("Polytope.AffineImage", d, m.Rows()); err != nil {
		return nil, err
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("vecbox: affine image of a polytope requires a square map, got %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	inv, err := matrix.Inverse(m)
	if err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}

	newA, err := matrix.Mul(p.A, inv)
	if err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}
	newAD, err := matrix.MatVec(newA, d)
	if err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}

	newB := make([]float64, len(p.B))
	for i := range p.B {
		newB[i] = p.B[i] + newAD[i]
	}

	newADense, ok := newA.(*matrix.Dense)
	if !ok {
		newADense = newA.Clone().(*matrix.Dense)
	}

	return &Polytope{A: newADense, B: newB}, nil
}

// Volume estimates the polytope's volume via Monte Carlo integration
// against its bounding box: the fraction of samples accepted by Contains
// times the bounding box's own volume.
func (p *Polytope) Volume() (float64, error) {
	const samples = 2000
	box, err := p.boundingBox()
	if err != nil {
		return 0, err
	}
	boxVol, err := box.Volume()
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(1))
	accepted := 0
	for i := 0; i < samples; i++ {
		cand, err := box.Sample(1, rng)
		if err != nil {
			return 0, err
		}
		ok, err := p.Contains(cand[0])
		if err != nil {
			return 0, err
		}
		if ok {
			accepted++
		}
	}

	return boxVol * float64(accepted) / float64(samples), nil
}
