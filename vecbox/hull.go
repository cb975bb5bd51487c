package vecbox

import (
	"fmt"
	"math"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
)

// Hull returns a constraint of the same variant enclosing all of cs:
// the smallest enclosing box for boxes, and for polytopes the outer
// approximation described at hullPolytopes (not in general the
// smallest). Every element of cs must be the same concrete type (*Box
// or *Polytope); Hull returns ErrMixedVariants otherwise. The result
// does not depend on the order of cs.
func Hull(cs []Constraint) (Constraint, error) {
	if len(cs) == 0 {
		return nil, ErrEmptyConstraintSet
	}

	switch cs[0].(type) {
	case *Box:
		return hullBoxes(cs)
	case *Polytope:
		return hullPolytopes(cs)
	default:
		return nil, fmt.Errorf("vecbox: unsupported constraint type %T", cs[0])
	}
}

func hullBoxes(cs []Constraint) (Constraint, error) {
	first, ok := cs[0].(*Box)
	if !ok {
		return nil, ErrMixedVariants
	}
	dim := first.Dim()
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	copy(lo, first.Lo)
	copy(hi, first.Hi)

	for _, c := range cs[1:] {
		b, ok := c.(*Box)
		if !ok {
			return nil, ErrMixedVariants
		}
		if err := ValidateSameDim(b.Dim(), dim); err != nil {
			return nil, fmt.Errorf("vecbox: %w", err)
		}
		for i := 0; i < dim; i++ {
			if b.Lo[i] < lo[i] {
				lo[i] = b.Lo[i]
			}
			if b.Hi[i] > hi[i] {
				hi[i] = b.Hi[i]
			}
		}
	}

	return &Box{Lo: lo, Hi: hi}, nil
}

// hullPolytopes returns a *Polytope containing the union of cs: for
// every distinct halfspace direction appearing in any cell's A (rows
// normalized and deduplicated), the returned row's offset is the
// largest support value of that direction across all cells, so every
// cell (and thus their union) satisfies each returned row. A
// direction a cell has no exact row for falls back to the support of
// that cell's own bounding box, which contains the cell, so the bound stays
// sound though looser.
func hullPolytopes(cs []Constraint) (Constraint, error) {
	polys := make([]*Polytope, len(cs))
	for i, c := range cs {
		p, ok := c.(*Polytope)
		if !ok {
			return nil, ErrMixedVariants
		}
		if i > 0 {
			if err := ValidateSameDim(p.Dim(), polys[0].Dim()); err != nil {
				return nil, fmt.Errorf("vecbox: %w", err)
			}
		}
		polys[i] = p
	}
	dim := polys[0].Dim()

	var dirs [][]float64
	for _, p := range polys {
		for r := 0; r < p.A.Rows(); r++ {
			unit, ok := unitRow(p.A, r, dim)
			if !ok {
				continue
			}
			if findDirection(dirs, unit) == -1 {
				dirs = append(dirs, unit)
			}
		}
	}

	bRows := make([]float64, len(dirs))
	for di, a := range dirs {
		best := math.Inf(-1)
		for _, p := range polys {
			s, err := supportValue(p, a)
			if err != nil {
				return nil, err
			}
			if s > best {
				best = s
			}
		}
		bRows[di] = best
	}

	a, err := matrix.NewDense(len(dirs), dim)
	if err != nil {
		return nil, fmt.Errorf("vecbox: %w", err)
	}
	for r, row := range dirs {
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err := a.Set(r, j, v); err != nil {
				return nil, fmt.Errorf("vecbox: %w", err)
			}
		}
	}

	return NewPolytope(a, bRows)
}

// unitRow reads row r of a and normalizes it to unit length, reporting
// false for an all-zero row (no direction to contribute).
func unitRow(a *ffnet.Mat, r, dim int) ([]float64, bool) {
	raw := make([]float64, dim)
	var normSq float64
	for j := 0; j < dim; j++ {
		v, _ := a.At(r, j)
		raw[j] = v
		normSq += v * v
	}
	if normSq == 0 {
		return nil, false
	}
	norm := math.Sqrt(normSq)
	for j := range raw {
		raw[j] /= norm
	}
	return raw, true
}

func findDirection(dirs [][]float64, cand []float64) int {
	const tol = 1e-9
	for idx, d := range dirs {
		same := true
		for j := range cand {
			if math.Abs(cand[j]-d[j]) > tol {
				same = false
				break
			}
		}
		if same {
			return idx
		}
	}
	return -1
}

// supportValue bounds max{a.x : x in p} from above. If p already has
// a row in exactly direction a, that row's own offset is exact;
// otherwise the bound is computed over p's bounding box, which
// contains p, so the result over-approximates but never
// under-approximates the true support.
func supportValue(p *Polytope, a []float64) (float64, error) {
	dim := p.Dim()
	for r := 0; r < p.A.Rows(); r++ {
		unit, ok := unitRow(p.A, r, dim)
		if !ok {
			continue
		}
		if findDirection([][]float64{unit}, a) == 0 {
			norm := rowNorm(p.A, r, dim)
			return p.B[r] / norm, nil
		}
	}

	box, err := p.boundingBox()
	if err != nil {
		return 0, err
	}
	var sum float64
	for j, aj := range a {
		if aj >= 0 {
			sum += aj * box.Hi[j]
		} else {
			sum += aj * box.Lo[j]
		}
	}
	return sum, nil
}

func rowNorm(a *ffnet.Mat, r, dim int) float64 {
	var normSq float64
	for j := 0; j < dim; j++ {
		v, _ := a.At(r, j)
		normSq += v * v
	}
	return math.Sqrt(normSq)
}
