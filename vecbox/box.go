package vecbox

import (
	"fmt"
	"math/rand"

	"github.com/lmarchetti/reachtube/ffnet"
)

// Box is an axis-aligned box {x in R^n : Lo[i] <= x[i] <= Hi[i] for all i}.
type Box struct {
	Lo, Hi []float64
}

var _ Constraint = (*Box)(nil)

// NewBox validates lo/hi (same length, elementwise lo <= hi) and returns
// a *Box. Callers that already trust their inputs may construct a Box
// literal directly; NewBox exists for the fail-fast path.
func NewBox(lo, hi []float64) (*Box, error) {
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("vecbox: lo/hi length %d != %d: %w", len(lo), len(hi), ErrDimensionMismatch)
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return nil, fmt.Errorf("vecbox: Lo[%d]=%g > Hi[%d]=%g: %w", i, lo[i], i, hi[i], ErrInvalidBounds)
		}
	}
	return &Box{Lo: lo, Hi: hi}, nil
}

// Dim returns len(Lo).
func (b *Box) Dim() int { return len(b.Lo) }

// Contains reports whether p lies within [Lo, Hi] elementwise.
func (b *Box) Contains(p []float64) (bool, error) {
	if err := validateVec("Box.Contains", p, b.Dim()); err != nil {
		return false, err
	}
	for i, v := range p {
		if v < b.Lo[i] || v > b.Hi[i] {
			return false, nil
		}
	}
	return true, nil
}

// Sample draws n points uniformly at random from the box.
func (b *Box) Sample(n int, rng *rand.Rand) ([][]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}
	dim := b.Dim()
	out := make([][]float64, n)
	for k := 0; k < n; k++ {
		p := make([]float64, dim)
		for i := 0; i < dim; i++ {
			span := b.Hi[i] - b.Lo[i]
			p[i] = b.Lo[i] + rng.Float64()*span
		}
		out[k] = p
	}
	return out, nil
}

// AffineImage computes the interval-arithmetic image of the box under
// y = m*x + d: for each output row i,
//
//	lo'[i] = d[i] + sum_j (w_ij >= 0 ? w_ij*Lo[j] : w_ij*Hi[j])
//	hi'[i] = d[i] + sum_j (w_ij >= 0 ? w_ij*Hi[j] : w_ij*Lo[j])
//
// This is exact for an axis-aligned box and is the same W+/W- split
// used by the IBP propagator.
func (b *Box) AffineImage(m *ffnet.Mat, d []float64) (Constraint, error) {
	if err := ValidateSameDim(m.Cols(), b.Dim()); err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}
	if err := validateVec("Box.AffineImage", d, m.Rows()); err != nil {
		return nil, err
	}

	rows, cols := m.Rows(), m.Cols()
	lo := make([]float64, rows)
	hi := make([]float64, rows)
	for i := 0; i < rows; i++ {
		loAcc, hiAcc := d[i], d[i]
		for j := 0; j < cols; j++ {
			w, _ := m.At(i, j)
			if w >= 0 {
				loAcc += w * b.Lo[j]
				hiAcc += w * b.Hi[j]
			} else {
				loAcc += w * b.Hi[j]
				hiAcc += w * b.Lo[j]
			}
		}
		lo[i], hi[i] = loAcc, hiAcc
	}

	return &Box{Lo: lo, Hi: hi}, nil
}

// Volume returns the product of (Hi[i] - Lo[i]) over all dimensions.
func (b *Box) Volume() (float64, error) {
	vol := 1.0
	for i := range b.Lo {
		vol *= b.Hi[i] - b.Lo[i]
	}
	return vol, nil
}

// MinkowskiAddBox returns the Minkowski sum of b and o: elementwise sum
// of the corresponding bounds.
func (b *Box) MinkowskiAddBox(o *Box) (*Box, error) {
	if err := ValidateSameDim(b.Dim(), o.Dim()); err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}
	dim := b.Dim()
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lo[i] = b.Lo[i] + o.Lo[i]
		hi[i] = b.Hi[i] + o.Hi[i]
	}
	return &Box{Lo: lo, Hi: hi}, nil
}
